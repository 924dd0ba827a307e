package tagtree

// contains reports whether other is e or one of its descendants.
func (e *Element) contains(other *Element) bool {
	for n := other; n != nil; n = n.parent {
		if n == e {
			return true
		}
	}
	return false
}

// checkInsert validates that nodes can become children of e.
// Nothing is modified, so a failed operation leaves the tree unchanged.
func (e *Element) checkInsert(op string, nodes []*Element) error {
	if !e.mode.allowsChildren() {
		return mutationError(op, ErrChildlessMode)
	}
	for _, n := range nodes {
		if n == nil {
			return mutationError(op, ErrTypeMismatch)
		}
		if n.contains(e) {
			return mutationError(op, ErrHierarchy)
		}
	}
	return nil
}

// unlink removes child from the children of e without any notification.
func (e *Element) unlink(child *Element) {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i:i], e.children[i+1:]...)
			break
		}
	}
	child.parent = nil
}

// detachFrom removes e from its current parent, unless that parent is next.
// The old parent is notified of the change.
func (e *Element) detachFrom(next *Element) {
	old := e.parent
	if old == nil || old == next {
		return
	}
	old.unlink(e)
	old.changed()
}

// adopt moves the subtree rooted at n into the document of e.
func (e *Element) adopt(n *Element) {
	if n.doc == e.doc {
		return
	}
	n.walkSelf(func(m *Element) bool {
		m.doc = e.doc
		m.dirty = true
		return true
	})
}

// InsertBefore inserts node as a child of e, immediately before ref.
// A nil ref appends node at the end. node is first detached from its
// previous parent.
func (e *Element) InsertBefore(node, ref *Element) error {
	if err := e.checkInsert("InsertBefore", []*Element{node}); err != nil {
		return err
	}
	if ref != nil && ref.parent != e {
		return mutationError("InsertBefore", ErrTypeMismatch)
	}

	// Inserting a child before itself leaves it where it is
	if ref == node {
		return nil
	}

	node.detachFrom(e)
	if node.parent == e {
		e.unlink(node)
	}

	pos := len(e.children)
	if ref != nil {
		for i, c := range e.children {
			if c == ref {
				pos = i
				break
			}
		}
	}

	e.children = append(e.children, nil)
	copy(e.children[pos+1:], e.children[pos:])
	e.children[pos] = node

	e.adopt(node)
	node.parent = e
	e.changed()

	return nil
}

// AppendChild adds node at the end of the children of e.
func (e *Element) AppendChild(node *Element) error {
	return e.InsertBefore(node, nil)
}

// PrependChild adds node at the beginning of the children of e.
func (e *Element) PrependChild(node *Element) error {
	return e.InsertBefore(node, e.FirstChild())
}

// HasChild reports whether node is a direct child of e.
func (e *Element) HasChild(node *Element) bool {
	return node != nil && node.parent == e
}

// ChildrenRefIDs returns the reference ids of the direct children.
func (e *Element) ChildrenRefIDs() []RefID {
	list := make([]RefID, 0, len(e.children))
	for _, c := range e.children {
		list = append(list, c.id)
	}
	return list
}

// dedupe removes repeated nodes keeping the first occurrence.
func dedupe(nodes []*Element) []*Element {
	seen := make(map[*Element]bool, len(nodes))
	list := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		if !seen[n] {
			seen[n] = true
			list = append(list, n)
		}
	}
	return list
}

// ReplaceChild puts nodes, in order, where old is in the children of e.
// Given nodes that were already children of e move to that position.
// It does nothing if old is not a direct child of e.
func (e *Element) ReplaceChild(old *Element, nodes ...*Element) error {
	if old == nil {
		return mutationError("ReplaceChild", ErrTypeMismatch)
	}
	if err := e.checkInsert("ReplaceChild", nodes); err != nil {
		return err
	}
	if !e.HasChild(old) {
		return nil
	}

	nodes = dedupe(nodes)
	replacing := make(map[*Element]bool, len(nodes))
	for _, n := range nodes {
		replacing[n] = true
		n.detachFrom(e)
	}

	list := make([]*Element, 0, len(e.children)+len(nodes))
	for _, c := range e.children {
		switch {
		case c == old:
			list = append(list, nodes...)
		case replacing[c]:
			// Moved to the position of old
		default:
			list = append(list, c)
		}
	}

	if !replacing[old] {
		old.parent = nil
	}
	for _, n := range nodes {
		e.adopt(n)
		n.parent = e
	}
	e.children = list
	e.changed()

	return nil
}

// ReplaceChildren replaces all the children of e with nodes.
func (e *Element) ReplaceChildren(nodes ...*Element) error {
	if err := e.checkInsert("ReplaceChildren", nodes); err != nil {
		return err
	}

	nodes = dedupe(nodes)
	replacing := make(map[*Element]bool, len(nodes))
	for _, n := range nodes {
		replacing[n] = true
		n.detachFrom(e)
	}

	for _, c := range e.children {
		if !replacing[c] {
			c.parent = nil
		}
	}
	for _, n := range nodes {
		e.adopt(n)
		n.parent = e
	}
	e.children = nodes
	e.changed()

	return nil
}

// RemoveChild removes every direct child matching the reference id of any of nodes.
// The change is propagated once.
func (e *Element) RemoveChild(nodes ...*Element) error {
	ids := make(map[RefID]bool, len(nodes))
	for _, n := range nodes {
		if n == nil {
			return mutationError("RemoveChild", ErrTypeMismatch)
		}
		ids[n.id] = true
	}

	list := make([]*Element, 0, len(e.children))
	for _, c := range e.children {
		if ids[c.id] {
			c.parent = nil
			continue
		}
		list = append(list, c)
	}

	if len(list) == len(e.children) {
		return nil
	}
	e.children = list
	e.changed()

	return nil
}

// Remove detaches e from its parent. It does nothing for a detached element.
func (e *Element) Remove() error {
	if e.parent == nil {
		return nil
	}
	return e.parent.RemoveChild(e)
}

// setText replaces the literal content of a text node.
func (e *Element) setText(text string) {
	if e.text == text {
		return
	}
	e.text = text
	e.changed()
}

// SetTextContent replaces the children of e with a single text node holding
// text verbatim; tags inside text are not parsed. On a text node it replaces
// the content.
func (e *Element) SetTextContent(text string) error {
	switch e.mode {
	case ModeText:
		e.setText(text)
		return nil
	case ModeVoid:
		return mutationError("SetTextContent", ErrChildlessMode)
	}
	return e.ReplaceChildren(e.doc.CreateTextElement(text))
}

// SetInnerHTML parses markup and replaces the children of e with the result.
// On a text node the markup is stored as literal content.
// If markup is malformed, e is left unchanged.
func (e *Element) SetInnerHTML(markup string) error {
	switch e.mode {
	case ModeText:
		e.setText(markup)
		return nil
	case ModeVoid:
		return mutationError("SetInnerHTML", ErrChildlessMode)
	}

	nodes, err := e.doc.parseFragment(markup)
	if err != nil {
		return err
	}
	return e.ReplaceChildren(nodes...)
}

// SetOuterHTML parses markup and puts the result in place of e in its parent.
// It does nothing if e has no parent.
func (e *Element) SetOuterHTML(markup string) error {
	if e.parent == nil {
		return nil
	}

	nodes, err := e.doc.parseFragment(markup)
	if err != nil {
		return err
	}
	return e.parent.ReplaceChild(e, nodes...)
}
