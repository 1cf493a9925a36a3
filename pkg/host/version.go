package host

import (
	"fmt"

	"golang.org/x/mod/semver"
)

// MinProtocolVersion is the oldest host protocol this runtime can drive.
const MinProtocolVersion = "v1.0.0"

// CheckVersion validates the version string a Host reports and verifies it
// is at least MinProtocolVersion.
func CheckVersion(v string) error {
	if !semver.IsValid(v) {
		return fmt.Errorf("host reported invalid protocol version %q", v)
	}
	if semver.Compare(v, MinProtocolVersion) < 0 {
		return fmt.Errorf("host protocol %s is older than minimum supported %s", v, MinProtocolVersion)
	}
	return nil
}
