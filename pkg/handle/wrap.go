package handle

import "github.com/go-sketch/sketch/pkg/host"

// Kind identifies which capability variant a handle carries.
type Kind int

const (
	// KindElement is a plain element handle with no extra capability.
	KindElement Kind = iota
	// KindCheckbox is a checkbox input handle.
	KindCheckbox
	// KindSelect is a selection-list handle.
	KindSelect
	// KindRadioGroup is a mutually exclusive option group handle.
	KindRadioGroup
	// KindMedia is a playable media handle.
	KindMedia
)

// String returns a human-readable label for the kind.
func (k Kind) String() string {
	switch k {
	case KindCheckbox:
		return "checkbox"
	case KindSelect:
		return "select"
	case KindRadioGroup:
		return "radiogroup"
	case KindMedia:
		return "media"
	default:
		return "element"
	}
}

// Handle is the uniform wrapper over one host node. Concrete types are
// *Element, *Checkbox, *Select, *RadioGroup and *Media; callers
// type-switch on the variant or query Kind.
type Handle interface {
	Kind() Kind
	Node() host.Node
	Base() *Element
	Remove() error
}

// Wrap inspects a host node and returns the handle variant matching its
// shape. First match wins:
//
//  1. checkbox input → *Checkbox
//  2. audio/video → *Media
//  3. selection list → *Select (idempotent: re-wrapping an existing
//     select yields an equivalent capability, not a duplicate)
//  4. container whose every child is a radio input or label →
//     *RadioGroup (how a previously created group is recognized when
//     picked back out of the tree)
//  5. anything else → plain *Element
//
// Wrap never registers the handle; registration happens at the creation
// call sites, so re-wrapping a node found in the tree does not
// double-register it.
func Wrap(h host.Host, n host.Node) Handle {
	switch {
	case n.Tag() == "input" && n.InputType() == "checkbox":
		return newCheckbox(h, n)
	case n.Tag() == "audio" || n.Tag() == "video":
		if mn, ok := n.(host.MediaNode); ok {
			return newMedia(h, mn)
		}
		return NewElement(h, n)
	case n.Tag() == "select":
		return newSelect(h, n)
	case isRadioContainer(n):
		return adoptRadioGroup(h, n)
	default:
		return NewElement(h, n)
	}
}

// isRadioContainer reports whether every child of n is a radio input or a
// label. Containers need at least one child to qualify.
func isRadioContainer(n host.Node) bool {
	children := n.Children()
	if len(children) == 0 {
		return false
	}
	for _, c := range children {
		if c.Tag() == "label" {
			continue
		}
		if c.Tag() == "input" && c.InputType() == "radio" {
			continue
		}
		return false
	}
	return true
}
