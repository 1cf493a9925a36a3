package handle

import "github.com/go-sketch/sketch/pkg/host"

// Select is an element handle over a selection-list control. The backing
// option list is the host node's own child list; option labels are not
// required to be unique, and every label-keyed operation acts on the
// first match.
type Select struct {
	Element
}

func newSelect(h host.Host, n host.Node) *Select {
	s := &Select{Element: newElement(h, n)}
	s.owner = s
	return s
}

// Kind returns KindSelect.
func (s *Select) Kind() Kind { return KindSelect }

// Multiple reports whether the control allows multiple selections.
func (s *Select) Multiple() bool { return s.node.Attr("multiple") != "" }

// Option adds or updates the option labeled label. When the option
// already exists its value is updated, and its label too if label and
// value were previously identical, keeping them synchronized. When it
// does not exist a new option is appended, its value defaulting to the
// label when no value argument is supplied.
func (s *Select) Option(label string, value ...string) {
	val := label
	if len(value) > 0 {
		val = value[0]
	}

	if opt := s.findOption(label); opt != nil {
		synced := opt.Text() == opt.Attr("value")
		opt.SetAttr("value", val)
		if synced {
			opt.SetText(val)
		}
		return
	}

	opt := s.h.CreateNode("option")
	opt.SetText(label)
	opt.SetAttr("value", val)
	s.node.Append(opt)
}

// RemoveOption removes the first option labeled label, if any. An option
// re-added later under the same label is a fresh option, not a
// resurrection of the removed one.
func (s *Select) RemoveOption(label string) {
	if opt := s.findOption(label); opt != nil {
		s.node.RemoveChild(opt)
	}
}

// Selected returns the single selected value. When no option carries an
// explicit selection the host's default applies: the first option.
func (s *Select) Selected() string {
	var first string
	for i, opt := range s.options() {
		if i == 0 {
			first = opt.Attr("value")
		}
		if opt.Attr("selected") != "" {
			return opt.Attr("value")
		}
	}
	return first
}

// SelectedValues returns every selected value of a multiple-selection
// control, in option order.
func (s *Select) SelectedValues() []string {
	var out []string
	for _, opt := range s.options() {
		if opt.Attr("selected") != "" {
			out = append(out, opt.Attr("value"))
		}
	}
	return out
}

// SetSelected marks the option whose value equals value as the active
// selection. Only meaningful for single-selection controls; on a
// multiple-selection control it does nothing.
func (s *Select) SetSelected(value string) {
	if s.Multiple() {
		return
	}
	for _, opt := range s.options() {
		if opt.Attr("value") == value {
			opt.SetAttr("selected", "true")
		} else {
			opt.RemoveAttr("selected")
		}
	}
}

// Disable disables the entire control.
func (s *Select) Disable() { s.node.SetAttr("disabled", "true") }

// DisableOption disables only the option whose value equals value.
func (s *Select) DisableOption(value string) {
	for _, opt := range s.options() {
		if opt.Attr("value") == value {
			opt.SetAttr("disabled", "true")
			return
		}
	}
}

func (s *Select) options() []host.Node {
	var out []host.Node
	for _, c := range s.node.Children() {
		if c.Tag() == "option" {
			out = append(out, c)
		}
	}
	return out
}

func (s *Select) findOption(label string) host.Node {
	for _, opt := range s.options() {
		if opt.Text() == label {
			return opt
		}
	}
	return nil
}
