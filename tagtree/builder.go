package tagtree

import (
	"os"

	"go.uber.org/zap"
)

// Parser builds documents from markup using a fixed configuration.
type Parser struct {
	cfg Config
	log *zap.SugaredLogger

	// the name of the file being processed, for error messages
	fileName string
}

// NewParser returns a parser for cfg. A nil logger disables tracing.
func NewParser(cfg Config, logger *zap.SugaredLogger) *Parser {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Parser{cfg: cfg, log: logger}
}

// Parse builds a document from markup with the default configuration.
func Parse(markup string) (*Document, error) {
	return NewParser(DefaultConfig(), nil).Parse(markup)
}

// Parse builds a document from markup. On a structural error it returns
// a *ParseError and no document.
func (p *Parser) Parse(markup string) (*Document, error) {
	doc := NewDocument(p.cfg)
	doc.SetLogger(p.log)

	if err := doc.build(doc.fragment, markup, p.fileName); err != nil {
		return nil, err
	}
	return doc, nil
}

// ParseFile reads a whole file and parses it. Errors carry the file name.
func (p *Parser) ParseFile(fileName string) (*Document, error) {
	src, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	fp := *p
	fp.fileName = fileName
	return fp.Parse(string(src))
}

// build parses markup and appends the resulting elements to root.
// Elements still open at the end of the input are closed implicitly.
func (d *Document) build(root *Element, markup, fileName string) error {

	// current is the innermost open element, or nil at the root level
	var current *Element
	var stack []*Element

	parent := func() *Element {
		if current == nil {
			return root
		}
		return current
	}

	i := 0
	for i < len(markup) {

		start, end, ok := FindTagPosition(markup, i)
		if !ok {
			parent().attach(d.CreateTextElement(markup[i:]))
			break
		}

		if start > i {
			parent().attach(d.CreateTextElement(markup[i:start]))
			i = start
		}

		tag := ParseTag(markup[start:end], d.cfg.VoidTags)

		if tag.Kind == ClosingTag {

			if current == nil {
				d.log.Debugw("unmatched closing tag", "tag", tag.Name, "offset", start)
				return newParseError(markup, fileName, start, tag.Name, "", ErrUnmatchedCloseTag)
			}
			if current.tag != tag.Name {
				d.log.Debugw("mismatched closing tag", "tag", tag.Name, "open", current.tag, "offset", start)
				return newParseError(markup, fileName, start, tag.Name, current.tag, ErrMismatchedTagPair)
			}

			d.log.Debugw("close", "tag", tag.Name, "depth", len(stack))
			if len(stack) == 0 {
				current = nil
			} else {
				current = stack[len(stack)-1]
				stack = stack[:len(stack)-1]
			}

		} else {

			mode := ModeClosed
			if tag.childless() {
				mode = ModeVoid
			}
			e := d.newElement(tag.Name, mode)
			for _, a := range tag.Attrs {
				e.attrs.set(a)
			}
			parent().attach(e)

			d.log.Debugw("open", "tag", tag.Name, "kind", tag.Kind, "depth", len(stack))
			if mode == ModeClosed {
				if current != nil {
					stack = append(stack, current)
				}
				current = e
			}

		}

		i = end
	}

	return nil
}

func newParseError(markup, fileName string, offset int, tag, expected string, err error) *ParseError {
	line, col := lineColumn(markup, offset)
	return &ParseError{
		Filename: fileName,
		Line:     line,
		Column:   col,
		Offset:   offset,
		Tag:      tag,
		Expected: expected,
		Err:      err,
	}
}

// parseFragment parses markup with the configuration of d and returns the
// top level elements, detached and owned by d.
func (d *Document) parseFragment(markup string) ([]*Element, error) {
	tmp := d.newElement("", ModeFragment)
	if err := d.build(tmp, markup, ""); err != nil {
		return nil, err
	}

	nodes := tmp.children
	for _, n := range nodes {
		n.parent = nil
	}
	return nodes, nil
}
