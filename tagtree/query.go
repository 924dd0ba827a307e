package tagtree

import "strings"

// walk visits the descendants of e in document order, depth first.
// It stops as soon as fn returns false, and reports whether it visited everything.
func (e *Element) walk(fn func(*Element) bool) bool {
	for _, c := range e.children {
		if !c.walkSelf(fn) {
			return false
		}
	}
	return true
}

// walkSelf is like walk but visits e first.
func (e *Element) walkSelf(fn func(*Element) bool) bool {
	if !fn(e) {
		return false
	}
	return e.walk(fn)
}

// Descendants returns every element below e in document order.
func (e *Element) Descendants() []*Element {
	list := []*Element{}
	e.walk(func(n *Element) bool {
		list = append(list, n)
		return true
	})
	return list
}

// GetElementById returns the first descendant whose id attribute is id, or nil.
// A bare id attribute has no value and never matches.
func (e *Element) GetElementById(id string) *Element {
	var found *Element
	e.walk(func(n *Element) bool {
		if n.mode == ModeText {
			return true
		}
		if a, ok := n.GetAttribute("id"); ok && !a.NoValue && a.Val == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// GetElementsByTagName returns the descendants with the given tag name, in document order.
// The match is exact.
func (e *Element) GetElementsByTagName(tag string) []*Element {
	list := []*Element{}
	e.walk(func(n *Element) bool {
		if n.mode != ModeText && n.mode != ModeFragment && n.tag == tag {
			list = append(list, n)
		}
		return true
	})
	return list
}

// GetElementsByClassName returns the descendants having className among
// the tokens of their class attribute, in document order.
func (e *Element) GetElementsByClassName(className string) []*Element {
	list := []*Element{}
	className = strings.TrimSpace(className)
	if className == "" {
		return list
	}
	e.walk(func(n *Element) bool {
		for _, c := range n.ClassList() {
			if c == className {
				list = append(list, n)
				break
			}
		}
		return true
	})
	return list
}

// GetElementByRefID returns the element in the subtree of e, e included,
// with the given reference id, or nil.
func (e *Element) GetElementByRefID(id RefID) *Element {
	var found *Element
	e.walkSelf(func(n *Element) bool {
		if n.id == id {
			found = n
			return false
		}
		return true
	})
	return found
}
