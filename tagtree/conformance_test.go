package tagtree

import (
	"errors"
	"io"
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// checkBalanced tokenizes markup with the x/net/html tokenizer and checks
// that every start tag is closed in order and every void element is self closed.
func checkBalanced(t *testing.T, markup string, voids VoidSet) {
	t.Helper()

	var open []string
	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if !errors.Is(z.Err(), io.EOF) {
				t.Fatalf("tokenizer error: %v", z.Err())
			}
			if len(open) != 0 {
				t.Errorf("%q: unclosed elements %v", markup, open)
			}
			return
		case html.StartTagToken:
			name, _ := z.TagName()
			if voids.Contains(string(name)) {
				t.Errorf("%q: void element <%s> is not self closed", markup, name)
				continue
			}
			open = append(open, string(name))
		case html.EndTagToken:
			name, _ := z.TagName()
			if len(open) == 0 || open[len(open)-1] != string(name) {
				t.Fatalf("%q: unexpected </%s>, open %v", markup, name, open)
			}
			open = open[:len(open)-1]
		}
	}
}

func TestStringifyIsBalanced(t *testing.T) {
	inputs := []string{
		`<ul><li>one</li><li>two</li></ul>`,
		"<div>\n<p class=\"a\">x<br>y</p>\n<img src=\"i.png\">\n</div>",
		`<table><tr><td>a</td><td><input type="text" disabled></td></tr></table>`,
		`<section><article><h1>t</h1><p>unclosed`,
	}
	voids := DefaultConfig().VoidTags

	for _, in := range inputs {
		doc, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", in, err)
		}
		checkBalanced(t, doc.Stringify(), voids)
	}
}

func TestAttributesMatchTokenizer(t *testing.T) {
	doc := mustParse(t, `<a href="/x" data-id='7' download>link</a>`)

	z := html.NewTokenizer(strings.NewReader(doc.Stringify()))
	if z.Next() != html.StartTagToken {
		t.Fatalf("first token is not a start tag")
	}

	var got []Attribute
	_, more := z.TagName()
	for more {
		var key, val []byte
		key, val, more = z.TagAttr()
		got = append(got, Attribute{Key: string(key), Val: string(val)})
	}

	a := doc.GetElementsByTagName("a")[0]
	want := a.Attributes()
	if len(got) != len(want) {
		t.Fatalf("tokenizer found %d attributes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Key != want[i].Key || got[i].Val != want[i].Val {
			t.Errorf("attribute %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
