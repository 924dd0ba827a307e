package tagtree

// A ChangeListener is called after every mutation, once the tree is settled,
// with the element whose attributes, children or text changed.
type ChangeListener func(changed *Element)

// changed marks e and its ancestors as needing a new serialization and
// notifies the listeners of the document.
//
// A dirty element always has dirty ancestors, so the walk stops at the first
// ancestor that is already dirty. Caches are rebuilt lazily on the next read.
func (e *Element) changed() {
	for n := e; n != nil && !n.dirty; n = n.parent {
		n.dirty = true
	}
	if e.doc != nil {
		e.doc.notify(e)
	}
}

// Subscribe registers a listener for changes in any element of the document.
// The returned function removes it.
func (d *Document) Subscribe(fn ChangeListener) (cancel func()) {
	id := d.nextListener
	d.nextListener++
	d.listeners[id] = fn
	return func() {
		delete(d.listeners, id)
	}
}

func (d *Document) notify(e *Element) {
	d.log.Debugw("element changed", "element", e, "ref", e.id)
	for _, fn := range d.listeners {
		fn(e)
	}
}
