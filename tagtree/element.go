package tagtree

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// A Mode decides which shape an element has and how it is serialized.
type Mode uint8

const (
	// ModeClosed is an element with an opening and a closing tag.
	ModeClosed Mode = iota
	// ModeVoid is a self-closing element, which never has children.
	ModeVoid
	// ModeText is a run of literal text, without tag name or attributes.
	ModeText
	// ModeFragment is a container without tags of its own, like the document root.
	ModeFragment
)

// String returns a string representation of the Mode.
func (m Mode) String() string {
	switch m {
	case ModeClosed:
		return "Closed"
	case ModeVoid:
		return "Void"
	case ModeText:
		return "Text"
	case ModeFragment:
		return "Fragment"
	}
	return "Invalid(" + strconv.Itoa(int(m)) + ")"
}

func (m Mode) allowsChildren() bool {
	return m == ModeClosed || m == ModeFragment
}

// RefID identifies an element for its whole lifetime. It is never reused.
type RefID uuid.UUID

func (id RefID) String() string {
	return uuid.UUID(id).String()
}

// Element is a node of the tree: a tag instance, a text run or a fragment.
// Elements are created by a Document and are not safe for concurrent use.
type Element struct {
	id       RefID
	doc      *Document
	parent   *Element
	children []*Element

	tag   string
	mode  Mode
	attrs attrList
	text  string

	// Serialized form, valid only when dirty is false
	cache string
	dirty bool
}

// RefID returns the reference id of the element.
func (e *Element) RefID() RefID { return e.id }

// Document returns the document that created or adopted the element.
func (e *Element) Document() *Document { return e.doc }

// Parent returns the parent element, or nil for a detached element or the root.
func (e *Element) Parent() *Element { return e.parent }

// TagName returns the tag name. It is empty for text and fragment elements.
func (e *Element) TagName() string { return e.tag }

// Mode returns the mode of the element.
func (e *Element) Mode() Mode { return e.mode }

// Children returns a copy of the list of children.
func (e *Element) Children() []*Element {
	list := make([]*Element, len(e.children))
	copy(list, e.children)
	return list
}

// FirstChild returns the first child, or nil.
func (e *Element) FirstChild() *Element {
	if len(e.children) == 0 {
		return nil
	}
	return e.children[0]
}

// GetAttribute returns the attribute with the given name.
func (e *Element) GetAttribute(name string) (Attribute, bool) {
	i := e.attrs.index(name)
	if i == -1 {
		return Attribute{}, false
	}
	return e.attrs[i], true
}

// HasAttribute reports whether the attribute is present, with or without value.
func (e *Element) HasAttribute(name string) bool {
	return e.attrs.index(name) != -1
}

// Attributes returns a copy of the attributes in serialization order.
func (e *Element) Attributes() []Attribute {
	return e.attrs.clone()
}

// SetAttribute sets name="value". Setting the current value is a no-op.
func (e *Element) SetAttribute(name, value string) error {
	return e.setAttribute("SetAttribute", Attribute{Key: name, Val: value})
}

// SetBareAttribute sets an attribute without value, serialized as its bare name.
func (e *Element) SetBareAttribute(name string) error {
	return e.setAttribute("SetBareAttribute", Attribute{Key: name, NoValue: true})
}

func (e *Element) setAttribute(op string, a Attribute) error {
	if e.mode == ModeText {
		return mutationError(op, ErrTextNode)
	}
	if e.attrs.set(a) {
		e.changed()
	}
	return nil
}

// RemoveAttribute deletes the attribute if present.
func (e *Element) RemoveAttribute(name string) {
	if e.attrs.remove(name) {
		e.changed()
	}
}

// ID returns the value of the id attribute.
func (e *Element) ID() string {
	a, _ := e.GetAttribute("id")
	return a.Val
}

// SetID sets the id attribute.
func (e *Element) SetID(id string) error {
	return e.SetAttribute("id", id)
}

// ClassName returns the value of the class attribute.
func (e *Element) ClassName() string {
	a, _ := e.GetAttribute("class")
	return a.Val
}

// SetClassName sets the class attribute.
func (e *Element) SetClassName(className string) error {
	return e.SetAttribute("class", className)
}

// ClassList returns the whitespace separated tokens of the class attribute.
func (e *Element) ClassList() []string {
	return strings.Fields(e.ClassName())
}

// tagString returns a string representation of the tag name and attributes.
func (e *Element) tagString() string {
	var sb strings.Builder
	sb.WriteString(e.tag)
	e.attrs.writeTo(&sb)
	return sb.String()
}

// String returns a short description of the element for logs.
func (e *Element) String() string {
	switch e.mode {
	case ModeText:
		return "#text"
	case ModeFragment:
		return "#fragment"
	}
	return "<" + e.tagString() + ">"
}
