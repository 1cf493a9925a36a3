package handle

import (
	"github.com/google/uuid"

	"github.com/go-sketch/sketch/pkg/host"
)

// RadioGroup is an element handle over a container of mutually exclusive
// option inputs. Every option added through one group shares one
// generated group name, so the host enforces the exclusivity.
type RadioGroup struct {
	Element

	name string
}

// newRadioGroup wraps a fresh container, generating a process-unique
// group name. Deriving the name from document order is order-dependent
// and breaks when same-named inputs are not contiguous, so a generated
// identifier is used instead; observable grouping semantics are the same.
func newRadioGroup(h host.Host, n host.Node) *RadioGroup {
	g := &RadioGroup{
		Element: newElement(h, n),
		name:    "radio-" + uuid.NewString(),
	}
	g.owner = g
	return g
}

// adoptRadioGroup wraps a previously created group container found in the
// tree, reusing the group name its inputs already carry.
func adoptRadioGroup(h host.Host, n host.Node) *RadioGroup {
	g := &RadioGroup{Element: newElement(h, n)}
	g.owner = g
	for _, c := range n.Children() {
		if c.Tag() == "input" && c.InputType() == "radio" {
			g.name = c.Attr("name")
			break
		}
	}
	if g.name == "" {
		g.name = "radio-" + uuid.NewString()
	}
	return g
}

// Kind returns KindRadioGroup.
func (g *RadioGroup) Kind() Kind { return KindRadioGroup }

// GroupName returns the generated group name shared by all options.
func (g *RadioGroup) GroupName() string { return g.name }

// Option appends one option input to the group container, plus an
// adjacent label when label is non-empty. The input's value defaults to the
// label. The raw option node is returned for advanced use; it is not a
// handle.
func (g *RadioGroup) Option(label string, value ...string) host.Node {
	val := label
	if len(value) > 0 {
		val = value[0]
	}

	input := g.h.CreateInput("radio")
	input.SetAttr("name", g.name)
	input.SetAttr("value", val)
	g.node.Append(input)

	if label != "" {
		lbl := g.h.CreateNode("label")
		lbl.SetText(label)
		g.node.Append(lbl)
	}
	return input
}

// SetSelected marks the option whose value equals value as checked and
// unchecks the rest.
func (g *RadioGroup) SetSelected(value string) {
	for _, opt := range g.inputs() {
		if opt.Attr("value") == value {
			opt.SetAttr("checked", "true")
		} else {
			opt.RemoveAttr("checked")
		}
	}
}

// Selected returns the value of the checked option, reporting false when
// nothing is checked.
func (g *RadioGroup) Selected() (string, bool) {
	for _, opt := range g.inputs() {
		if opt.Attr("checked") != "" {
			return opt.Attr("value"), true
		}
	}
	return "", false
}

// Value returns the value of the checked option, or the empty-string
// sentinel when nothing is checked.
func (g *RadioGroup) Value() string {
	v, _ := g.Selected()
	return v
}

// inputs returns only the input children of the container, never labels.
func (g *RadioGroup) inputs() []host.Node {
	var out []host.Node
	for _, c := range g.node.Children() {
		if c.Tag() == "input" && c.InputType() == "radio" {
			out = append(out, c)
		}
	}
	return out
}
