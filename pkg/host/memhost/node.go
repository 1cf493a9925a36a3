package memhost

import "github.com/go-sketch/sketch/pkg/host"

// Node is an in-memory host node.
type Node struct {
	tag       string
	inputType string
	text      string

	// self preserves the outer identity when Node is embedded, so that
	// parent links point at the MediaNode rather than its inner Node.
	self host.Node

	parent   host.Node
	children []host.Node

	attrs    map[string]string
	handlers map[string][]*binding

	// X, Y, W, H record the last geometry mirrored via SetBounds.
	X, Y, W, H float64
}

// binding is one composed event subscription.
type binding struct {
	fn func(host.Event)
}

func newNode(tag, inputType string) *Node {
	n := &Node{
		tag:       tag,
		inputType: inputType,
		attrs:     map[string]string{},
		handlers:  map[string][]*binding{},
	}
	n.self = n
	return n
}

// Tag returns the node's tag category.
func (n *Node) Tag() string { return n.tag }

// InputType returns the input subtype, or "" for non-input nodes.
func (n *Node) InputType() string { return n.inputType }

// Parent returns the node's parent, or nil when detached.
func (n *Node) Parent() host.Node { return n.parent }

// Children returns the node's child list.
func (n *Node) Children() []host.Node { return n.children }

// Append adds child to the end of the child list, detaching it from any
// previous parent first.
func (n *Node) Append(child host.Node) {
	child.Detach()
	n.children = append(n.children, child)
	if c, ok := child.(interface{ setParent(host.Node) }); ok {
		c.setParent(n.self)
	}
}

// RemoveChild unlinks child from the child list.
func (n *Node) RemoveChild(child host.Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			if cc, ok := child.(interface{ setParent(host.Node) }); ok {
				cc.setParent(nil)
			}
			return
		}
	}
}

// Detach unlinks the node from its parent, if any.
func (n *Node) Detach() {
	if n.parent != nil {
		n.parent.RemoveChild(n.self)
	}
}

func (n *Node) setParent(p host.Node) { n.parent = p }

// Attr returns the attribute value, or "" when unset.
func (n *Node) Attr(name string) string { return n.attrs[name] }

// SetAttr sets an attribute value.
func (n *Node) SetAttr(name, value string) { n.attrs[name] = value }

// RemoveAttr deletes an attribute.
func (n *Node) RemoveAttr(name string) { delete(n.attrs, name) }

// Text returns the node's own text content.
func (n *Node) Text() string { return n.text }

// SetText sets the node's own text content.
func (n *Node) SetText(text string) { n.text = text }

// SetBounds records the mirrored geometry.
func (n *Node) SetBounds(x, y, w, h float64) {
	n.X, n.Y, n.W, n.H = x, y, w, h
}

// Bind subscribes fn to kind and returns the remover for that one
// subscription. Bindings for the same kind compose in bind order.
func (n *Node) Bind(kind string, fn func(host.Event)) func() {
	if fn == nil {
		return func() {}
	}
	b := &binding{fn: fn}
	n.handlers[kind] = append(n.handlers[kind], b)
	return func() {
		list := n.handlers[kind]
		for i, cur := range list {
			if cur == b {
				n.handlers[kind] = append(list[:i], list[i+1:]...)
				break
			}
		}
		if len(n.handlers[kind]) == 0 {
			delete(n.handlers, kind)
		}
	}
}

// Bound reports whether any handler is bound for kind.
func (n *Node) Bound(kind string) bool { return len(n.handlers[kind]) > 0 }

// Emit delivers an event to every handler bound for kind, in bind order.
func (n *Node) Emit(kind string, data map[string]any) {
	for _, b := range append([]*binding(nil), n.handlers[kind]...) {
		b.fn(host.Event{Kind: kind, Data: data})
	}
}
