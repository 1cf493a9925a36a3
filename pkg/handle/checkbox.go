package handle

import "github.com/go-sketch/sketch/pkg/host"

// Checkbox is an element handle over a checkbox input.
type Checkbox struct {
	Element
}

func newCheckbox(h host.Host, n host.Node) *Checkbox {
	c := &Checkbox{Element: newElement(h, n)}
	c.owner = c
	return c
}

// Kind returns KindCheckbox.
func (c *Checkbox) Kind() Kind { return KindCheckbox }

// Checked reports whether the box is checked.
func (c *Checkbox) Checked() bool { return c.node.Attr("checked") != "" }

// SetChecked checks or unchecks the box.
func (c *Checkbox) SetChecked(checked bool) {
	if checked {
		c.node.SetAttr("checked", "true")
		return
	}
	c.node.RemoveAttr("checked")
}
