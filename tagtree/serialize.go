package tagtree

import (
	"strings"

	"github.com/hesusruiz/tagtree/sliceedit"
)

// raw returns the memoized serialization of e, rebuilding it when dirty.
// Text nodes are already trimmed when the document trims whitespace,
// but the result as a whole is not.
func (e *Element) raw() string {
	if !e.dirty {
		return e.cache
	}

	var sb strings.Builder
	e.render(&sb)
	e.cache = sb.String()
	e.dirty = false

	return e.cache
}

func (e *Element) render(sb *strings.Builder) {
	switch e.mode {

	case ModeText:
		sb.WriteString(e.trim(e.text))

	case ModeVoid:
		// Void elements are always written self-closed, whatever the source was
		sb.WriteByte(startTag)
		sb.WriteString(e.tagString())
		sb.WriteString(" />")

	case ModeFragment:
		e.renderChildren(sb)

	default:
		sb.WriteByte(startTag)
		sb.WriteString(e.tagString())
		sb.WriteByte(endTag)
		e.renderChildren(sb)
		sb.WriteString("</")
		sb.WriteString(e.tag)
		sb.WriteByte(endTag)

	}
}

func (e *Element) renderChildren(sb *strings.Builder) {
	for _, child := range e.children {
		sb.WriteString(child.raw())
	}
}

func (e *Element) trimWhitespace() bool {
	return e.doc != nil && e.doc.cfg.TrimWhitespace
}

// trim collapses whitespace runs and trims both ends when the document asks for it.
func (e *Element) trim(s string) string {
	if !e.trimWhitespace() {
		return s
	}
	return sliceedit.CollapseWhitespace(s)
}

// Stringify returns the markup of the element and its subtree.
func (e *Element) Stringify() string {
	return e.trim(e.raw())
}

// OuterHTML is the same as Stringify.
func (e *Element) OuterHTML() string {
	return e.Stringify()
}

// InnerHTML returns the markup of the children, or the literal content of a text node.
func (e *Element) InnerHTML() string {
	switch e.mode {
	case ModeText:
		return e.trim(e.text)
	case ModeVoid:
		return ""
	}

	var sb strings.Builder
	e.renderChildren(&sb)
	return e.trim(sb.String())
}

// TextContent returns the concatenated literal content of all text nodes in the subtree.
func (e *Element) TextContent() string {
	if e.mode == ModeText {
		return e.trim(e.text)
	}

	var sb strings.Builder
	e.walk(func(n *Element) bool {
		if n.mode == ModeText {
			sb.WriteString(n.trim(n.text))
		}
		return true
	})
	return e.trim(sb.String())
}
