// Package render presents documents for humans: colored markup for the
// terminal or the browser, and diagrams of the element tree.
package render

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	hlhtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultStyle is the chroma style used when none is given.
const DefaultStyle = "github"

// Highlight writes markup to w with syntax coloring.
// formatterName is any chroma formatter, like "terminal256" or "html".
func Highlight(w io.Writer, markup, styleName, formatterName string) error {

	// Determine lexer.
	l := lexers.Get("html")
	if l == nil {
		l = lexers.Analyse(markup)
	}
	if l == nil {
		l = lexers.Fallback
	}
	l = chroma.Coalesce(l)

	if styleName == "" {
		styleName = DefaultStyle
	}
	s := styles.Get(styleName)

	var f chroma.Formatter
	if formatterName == "html" {
		f = hlhtml.New(hlhtml.Standalone(false), hlhtml.PreventSurroundingPre(true))
	} else {
		f = formatters.Get(formatterName)
	}

	it, err := l.Tokenise(nil, markup)
	if err != nil {
		return fmt.Errorf("tokenising markup: %w", err)
	}

	return f.Format(w, s, it)
}
