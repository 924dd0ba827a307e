package render

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/hesusruiz/tagtree/sliceedit"
	"github.com/hesusruiz/tagtree/tagtree"
	"oss.terrastruct.com/d2/d2graph"
	"oss.terrastruct.com/d2/d2layouts/d2dagrelayout"
	"oss.terrastruct.com/d2/d2lib"
	"oss.terrastruct.com/d2/d2renderers/d2svg"
	"oss.terrastruct.com/d2/d2themes/d2themescatalog"
	"oss.terrastruct.com/d2/lib/textmeasure"
)

// maxLabel is the longest text label shown in a diagram
const maxLabel = 24

// D2Source describes the element tree of doc in the D2 diagram language.
// The root is the "document" node, every element gets a node labeled with
// its tag, and edges go from parents to children. Blank text is omitted.
func D2Source(doc *tagtree.Document) string {
	var sb strings.Builder

	sb.WriteString("direction: down\n")
	sb.WriteString("document: \"#document\"\n")

	keys := map[*tagtree.Element]string{doc.Fragment(): "document"}

	for i, e := range doc.Descendants() {
		label := nodeLabel(e)
		if label == "" {
			continue
		}

		parent, ok := keys[e.Parent()]
		if !ok {
			// Descendant of an omitted node
			continue
		}

		key := "n" + strconv.Itoa(i+1)
		keys[e] = key

		fmt.Fprintf(&sb, "%s: %s\n", key, quote(label))
		if e.Mode() == tagtree.ModeText {
			fmt.Fprintf(&sb, "%s.shape: text\n", key)
		}
		fmt.Fprintf(&sb, "%s -> %s\n", parent, key)
	}

	return sb.String()
}

func nodeLabel(e *tagtree.Element) string {
	if e.Mode() != tagtree.ModeText {
		return e.String()
	}

	text := []rune(sliceedit.CollapseWhitespace(e.TextContent()))
	if len(text) > maxLabel {
		return string(text[:maxLabel]) + "..."
	}
	return string(text)
}

// quote writes s as a D2 double quoted string.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

// DiagramSVG renders the element tree of doc as an SVG image.
func DiagramSVG(ctx context.Context, doc *tagtree.Document) ([]byte, error) {
	return SVG(ctx, D2Source(doc))
}

// SVG compiles a D2 description and renders it with the dagre layout.
func SVG(ctx context.Context, source string) ([]byte, error) {

	ruler, err := textmeasure.NewRuler()
	if err != nil {
		return nil, fmt.Errorf("creating text ruler: %w", err)
	}

	defaultLayout := func(ctx context.Context, g *d2graph.Graph) error {
		return d2dagrelayout.Layout(ctx, g, nil)
	}
	diagram, _, err := d2lib.Compile(ctx, source, &d2lib.CompileOptions{
		Layout: defaultLayout,
		Ruler:  ruler,
	})
	if err != nil {
		return nil, fmt.Errorf("compiling diagram: %w", err)
	}

	body, err := d2svg.Render(diagram, &d2svg.RenderOpts{
		Pad:     d2svg.DEFAULT_PADDING,
		ThemeID: d2themescatalog.NeutralDefault.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering diagram: %w", err)
	}

	return body, nil
}
