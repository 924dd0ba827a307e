// Package tagtree parses HTML-like markup into a mutable element tree and
// serializes it back.
//
// The parser is deliberately lenient: it only knows about tags, attributes
// and text. Comments, entities and raw-text elements like script are not
// special. A Document owns a fragment root whose children are the top level
// elements, and every mutation of the tree invalidates the memoized markup
// of the affected elements and is reported to the document listeners.
package tagtree

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Document is the result of a parse. It creates elements and owns the root.
type Document struct {
	cfg      Config
	log      *zap.SugaredLogger
	fragment *Element

	listeners    map[int]ChangeListener
	nextListener int
}

// NewDocument returns an empty document using cfg.
func NewDocument(cfg Config) *Document {
	if cfg.VoidTags == nil {
		cfg.VoidTags = NewVoidSet()
	}
	d := &Document{
		cfg:       cfg,
		log:       zap.NewNop().Sugar(),
		listeners: make(map[int]ChangeListener),
	}
	d.fragment = d.newElement("", ModeFragment)
	return d
}

// SetLogger sets the logger used to trace changes in the document.
func (d *Document) SetLogger(logger *zap.SugaredLogger) {
	if logger != nil {
		d.log = logger
	}
}

// Config returns the configuration the document was built with.
func (d *Document) Config() Config { return d.cfg }

// Fragment returns the root of the tree.
func (d *Document) Fragment() *Element { return d.fragment }

// Children returns the top level elements.
func (d *Document) Children() []*Element { return d.fragment.Children() }

func (d *Document) newElement(tag string, mode Mode) *Element {
	return &Element{
		id:    RefID(uuid.New()),
		doc:   d,
		tag:   tag,
		mode:  mode,
		dirty: true,
	}
}

// CreateElement returns a new detached element. Tags in the void set of the
// document create void elements.
func (d *Document) CreateElement(tag string) *Element {
	mode := ModeClosed
	if d.cfg.VoidTags.Contains(tag) {
		mode = ModeVoid
	}
	return d.newElement(tag, mode)
}

// Descriptor describes an element to be created with CreateElementFrom.
type Descriptor struct {
	TagName     string
	Mode        Mode // zero means closed, unless the tag is in the void set
	Attributes  []Attribute
	TextContent string
}

// CreateElementFrom returns a new detached element built from desc.
// TextContent becomes the only child for closed elements, or the content of text elements.
func (d *Document) CreateElementFrom(desc Descriptor) *Element {
	var e *Element
	switch desc.Mode {
	case ModeText:
		return d.CreateTextElement(desc.TextContent)
	case ModeClosed:
		e = d.CreateElement(desc.TagName)
	default:
		e = d.newElement(desc.TagName, desc.Mode)
	}

	for _, a := range desc.Attributes {
		e.attrs.set(a)
	}
	if desc.TextContent != "" && e.mode.allowsChildren() {
		e.attach(d.CreateTextElement(desc.TextContent))
	}
	return e
}

// CreateTextElement returns a new detached text element holding text verbatim.
func (d *Document) CreateTextElement(text string) *Element {
	e := d.newElement("", ModeText)
	e.text = text
	return e
}

// attach appends child without notifying anybody. Used while building.
func (e *Element) attach(child *Element) {
	child.parent = e
	e.children = append(e.children, child)
	e.dirty = true
}

// AppendChild adds node at the end of the top level elements.
func (d *Document) AppendChild(node *Element) error { return d.fragment.AppendChild(node) }

// PrependChild adds node at the beginning of the top level elements.
func (d *Document) PrependChild(node *Element) error { return d.fragment.PrependChild(node) }

// ReplaceChild replaces a top level element with nodes.
func (d *Document) ReplaceChild(old *Element, nodes ...*Element) error {
	return d.fragment.ReplaceChild(old, nodes...)
}

// RemoveChild removes top level elements.
func (d *Document) RemoveChild(nodes ...*Element) error { return d.fragment.RemoveChild(nodes...) }

// HasChild reports whether node is a top level element.
func (d *Document) HasChild(node *Element) bool { return d.fragment.HasChild(node) }

// Descendants returns all the elements of the document in document order.
func (d *Document) Descendants() []*Element { return d.fragment.Descendants() }

func (d *Document) GetElementById(id string) *Element { return d.fragment.GetElementById(id) }

func (d *Document) GetElementsByTagName(tag string) []*Element {
	return d.fragment.GetElementsByTagName(tag)
}

func (d *Document) GetElementsByClassName(className string) []*Element {
	return d.fragment.GetElementsByClassName(className)
}

// GetElementByRefID returns the attached element with the given reference id, or nil.
func (d *Document) GetElementByRefID(id RefID) *Element {
	return d.fragment.GetElementByRefID(id)
}

// Stringify returns the markup of the whole document.
func (d *Document) Stringify() string { return d.fragment.Stringify() }
