package sliceedit

import (
	"reflect"
	"testing"
)

func TestFindAll(t *testing.T) {
	tests := []struct {
		name string
		buf  string
		item string
		want []int
	}{
		{name: "none", buf: "abc", item: "x", want: []int{}},
		{name: "empty item", buf: "abc", item: "", want: []int{}},
		{name: "several", buf: "a<b<c", item: "<", want: []int{1, 3}},
		{name: "non overlapping", buf: "aaaa", item: "aa", want: []int{0, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindAll([]byte(tt.buf), tt.item); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FindAll() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBufferReplaceAllString(t *testing.T) {
	b := NewBuffer([]byte("<p>a</p><p>b</p>"))
	b.ReplaceAllString("p>", "li>")
	if got, want := b.String(), "<li>a</li><li>b</li>"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBufferDeleteAllString(t *testing.T) {
	b := NewBuffer([]byte("a--b--c"))
	b.DeleteAllString("--")
	if got, want := string(b.Bytes()), "abc"; got != want {
		t.Errorf("Bytes() = %q, want %q", got, want)
	}
}

func TestWhitespaceRuns(t *testing.T) {
	got := WhitespaceRuns([]byte(" a \n\tb"))
	want := [][2]int{{0, 1}, {2, 5}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("WhitespaceRuns() = %v, want %v", got, want)
	}
}

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "plain", want: "plain"},
		{in: "   ", want: ""},
		{in: "  foo\n  bar\n", want: "foo bar"},
		{in: "a b", want: "a b"},
		{in: "<section>\n\n  foo\n  bar\n</section>", want: "<section> foo bar </section>"},
		{in: "\t<p>x</p>\r\n<p>y</p>", want: "<p>x</p> <p>y</p>"},
	}
	for _, tt := range tests {
		if got := CollapseWhitespace(tt.in); got != tt.want {
			t.Errorf("CollapseWhitespace(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
