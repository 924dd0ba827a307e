package tagtree

import "testing"

func TestChangeListener(t *testing.T) {
	doc := mustParse(t, `<div id="a"><p id="b">x</p></div><div id="c"></div>`)
	a, b, c := doc.GetElementById("a"), doc.GetElementById("b"), doc.GetElementById("c")

	var got []*Element
	cancel := doc.Subscribe(func(e *Element) {
		got = append(got, e)
	})

	if err := b.SetAttribute("class", "k"); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != b {
		t.Fatalf("listener got %v, want [b]", got)
	}

	// Setting the same value is not a change
	if err := b.SetAttribute("class", "k"); err != nil {
		t.Fatal(err)
	}
	b.RemoveAttribute("missing")
	if len(got) != 1 {
		t.Errorf("listener called %d times, want 1", len(got))
	}

	// Moving an element changes both parents
	got = nil
	if err := c.AppendChild(b); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != a || got[1] != c {
		t.Errorf("listener got %v, want [a c]", got)
	}

	cancel()
	got = nil
	b.RemoveAttribute("class")
	if len(got) != 0 {
		t.Errorf("listener called after cancel")
	}
}

func TestLazySerialization(t *testing.T) {
	doc := mustParse(t, `<div id="a"><p id="b">x</p></div><div id="c"><i>y</i></div>`)
	root := doc.Fragment()
	a, b, c := doc.GetElementById("a"), doc.GetElementById("b"), doc.GetElementById("c")

	want := `<div id="a"><p id="b">x</p></div><div id="c"><i>y</i></div>`
	if got := doc.Stringify(); got != want {
		t.Fatalf("Stringify() = %q, want %q", got, want)
	}
	for _, e := range []*Element{root, a, b, c} {
		if e.dirty {
			t.Fatalf("%v is dirty after serialization", e)
		}
	}

	if err := b.SetID("bb"); err != nil {
		t.Fatal(err)
	}
	for _, e := range []*Element{root, a, b} {
		if !e.dirty {
			t.Errorf("%v is not dirty after a change below it", e)
		}
	}
	if c.dirty {
		t.Errorf("sibling subtree was invalidated")
	}

	want = `<div id="a"><p id="bb">x</p></div><div id="c"><i>y</i></div>`
	if got := doc.Stringify(); got != want {
		t.Errorf("Stringify() = %q, want %q", got, want)
	}

	// A child serialized on its own leaves the ancestors dirty and correct
	if err := b.SetTextContent("z"); err != nil {
		t.Fatal(err)
	}
	if got := b.Stringify(); got != `<p id="bb">z</p>` {
		t.Errorf("Stringify() = %q", got)
	}
	want = `<div id="a"><p id="bb">z</p></div><div id="c"><i>y</i></div>`
	if got := doc.Stringify(); got != want {
		t.Errorf("Stringify() = %q, want %q", got, want)
	}
}
