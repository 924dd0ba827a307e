package tagtree

import "testing"

func keepWhitespace() Config {
	keep := false
	return Configure(Options{TrimWhitespace: &keep})
}

func TestStringify(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		markup string
		want   string
	}{
		{
			name:   "trim collapses blank lines",
			cfg:    DefaultConfig(),
			markup: "  <section>\n\n  foo\n  bar\n</section>",
			want:   "<section>foo bar</section>",
		},
		{
			name:   "keep whitespace",
			cfg:    keepWhitespace(),
			markup: "  <section>\n\n  foo\n  bar\n</section>\n",
			want:   "  <section>\n\n  foo\n  bar\n</section>\n",
		},
		{
			name:   "void written self closed",
			cfg:    keepWhitespace(),
			markup: `<p>a<br>b<hr/>c</p>`,
			want:   `<p>a<br />b<hr />c</p>`,
		},
		{
			name:   "attribute order and bare attributes",
			cfg:    DefaultConfig(),
			markup: `<input  type="checkbox"   checked name=x>`,
			want:   `<input type="checkbox" checked name="x" />`,
		},
		{
			name:   "quoted blanks collapse",
			cfg:    DefaultConfig(),
			markup: `<div class="a   b"></div>`,
			want:   `<div class="a b"></div>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := NewParser(tt.cfg, nil).Parse(tt.markup)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got := doc.Stringify(); got != tt.want {
				t.Errorf("Stringify() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAttributeSerialization(t *testing.T) {
	doc := mustParse(t, `<div implicit></div>`)
	div := doc.GetElementsByTagName("div")[0]

	a, ok := div.GetAttribute("implicit")
	if !ok || !a.NoValue || a.Val != "" {
		t.Fatalf("GetAttribute(implicit) = %+v, %v", a, ok)
	}
	if got := div.Stringify(); got != `<div implicit></div>` {
		t.Errorf("Stringify() = %q", got)
	}

	// A value replaces the bare form in place
	if err := div.SetAttribute("id", ""); err != nil {
		t.Fatal(err)
	}
	if err := div.SetAttribute("implicit", "yes"); err != nil {
		t.Fatal(err)
	}
	if err := div.SetBareAttribute("hidden"); err != nil {
		t.Fatal(err)
	}
	if got, want := div.Stringify(), `<div implicit="yes" id="" hidden></div>`; got != want {
		t.Errorf("Stringify() = %q, want %q", got, want)
	}

	// Values are not escaped
	if err := div.SetAttribute("title", `say "hi"`); err != nil {
		t.Fatal(err)
	}
	div.RemoveAttribute("implicit")
	div.RemoveAttribute("id")
	if got, want := div.Stringify(), `<div hidden title="say "hi""></div>`; got != want {
		t.Errorf("Stringify() = %q, want %q", got, want)
	}
}

func TestContentAccessors(t *testing.T) {
	doc, err := NewParser(keepWhitespace(), nil).Parse(`<div><p>Hello <b>world</b></p><input></div>`)
	if err != nil {
		t.Fatal(err)
	}
	div := doc.GetElementsByTagName("div")[0]
	input := doc.GetElementsByTagName("input")[0]

	if got, want := div.TextContent(), "Hello world"; got != want {
		t.Errorf("TextContent() = %q, want %q", got, want)
	}
	if got, want := div.InnerHTML(), `<p>Hello <b>world</b></p><input />`; got != want {
		t.Errorf("InnerHTML() = %q, want %q", got, want)
	}
	if got, want := div.OuterHTML(), `<div><p>Hello <b>world</b></p><input /></div>`; got != want {
		t.Errorf("OuterHTML() = %q, want %q", got, want)
	}
	if got := input.InnerHTML(); got != "" {
		t.Errorf("InnerHTML() of void = %q", got)
	}
	if got := div.FirstChild().FirstChild().InnerHTML(); got != "Hello " {
		t.Errorf("InnerHTML() of text = %q", got)
	}
}

func TestModeString(t *testing.T) {
	tests := []struct {
		m    Mode
		want string
	}{
		{ModeClosed, "Closed"},
		{ModeVoid, "Void"},
		{ModeText, "Text"},
		{ModeFragment, "Fragment"},
		{Mode(9), "Invalid(9)"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", tt.m, got, tt.want)
		}
	}
}

func TestDoubleQuoteInSingleQuotedValue(t *testing.T) {
	doc := mustParse(t, `<a title='say "hi"'></a>`)
	a := doc.GetElementsByTagName("a")[0]

	if got, _ := a.GetAttribute("title"); got.Val != `say "hi"` {
		t.Errorf("GetAttribute(title) = %q", got.Val)
	}

	// The value is written back between double quotes without escaping,
	// so a second parse splits it
	once := doc.Stringify()
	if want := `<a title="say "hi""></a>`; once != want {
		t.Fatalf("Stringify() = %q, want %q", once, want)
	}
	twice := mustParse(t, once).Stringify()
	if want := `<a title="say " hi""></a>`; twice != want {
		t.Errorf("Stringify() after a second parse = %q, want %q", twice, want)
	}
	if thrice := mustParse(t, twice).Stringify(); thrice != twice {
		t.Errorf("Stringify() after a third parse = %q, want %q", thrice, twice)
	}
}
