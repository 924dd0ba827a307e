package tagtree

import (
	"strconv"
	"strings"
)

// A TagKind classifies a scanned tag.
type TagKind uint8

const (
	// An OpeningTag looks like <a>.
	OpeningTag TagKind = iota
	// A ClosingTag looks like </a>.
	ClosingTag
	// A SelfClosingTag looks like <a/>.
	SelfClosingTag
	// A VoidTag has a name in the configured void set, like <br>.
	VoidTag
)

// String returns a string representation of the TagKind.
func (k TagKind) String() string {
	switch k {
	case OpeningTag:
		return "Opening"
	case ClosingTag:
		return "Closing"
	case SelfClosingTag:
		return "SelfClosing"
	case VoidTag:
		return "Void"
	}
	return "Invalid(" + strconv.Itoa(int(k)) + ")"
}

// Tag is the result of analysing one scanned tag.
type Tag struct {
	Name  string
	Kind  TagKind
	Attrs []Attribute
}

// childless reports whether an element built from the tag can not have children.
func (t Tag) childless() bool {
	return t.Kind == SelfClosingTag || t.Kind == VoidTag
}

// ParseTag classifies a tag like `<div id="x" hidden>` or `</div>` into its
// name, kind and attributes. Tags whose name is in voidTags are always void,
// with or without a trailing slash.
func ParseTag(tagSpec string, voidTags VoidSet) Tag {

	// Trim the brackets and collapse the whitespace
	tagSpec = strings.TrimPrefix(tagSpec, string(startTag))
	tagSpec = strings.TrimSuffix(tagSpec, string(endTag))
	tagSpec = strings.Join(strings.Fields(tagSpec), " ")

	// A closing tag has only a name, and blanks inside it are ignored
	if strings.HasPrefix(tagSpec, "/") {
		return Tag{
			Name: strings.ReplaceAll(tagSpec[1:], " ", ""),
			Kind: ClosingTag,
		}
	}

	t := Tag{Kind: OpeningTag}

	if strings.HasSuffix(tagSpec, "/") {
		t.Kind = SelfClosingTag
		tagSpec = strings.TrimSpace(tagSpec[:len(tagSpec)-1])
	}

	// The tag name is the first word, the rest are attributes
	name, rest := readWord(tagSpec)
	t.Name = name
	t.Attrs = readAttributes(rest)

	if voidTags.Contains(t.Name) {
		t.Kind = VoidTag
	}

	return t
}

func skipWhiteSpace(s string) string {
	return strings.TrimLeft(s, " ")
}

// readWord returns the text up to the first blank and the rest after it.
func readWord(s string) (word string, rest string) {
	word, rest, found := strings.Cut(s, " ")
	if !found {
		return s, ""
	}
	return word, skipWhiteSpace(rest)
}

// readAttributes scans the attribute part of a tag from left to right.
// A repeated key keeps its first position and takes the last value.
func readAttributes(tagSpec string) []Attribute {
	var attrs attrList

	for tagSpec = skipWhiteSpace(tagSpec); len(tagSpec) > 0; tagSpec = skipWhiteSpace(tagSpec) {
		var attr Attribute
		attr, tagSpec = readAttribute(tagSpec)
		if attr.Key != "" {
			attrs.set(attr)
		}
	}

	return attrs
}

// readAttribute reads one 'key', 'key="value"' or 'key=value' item.
func readAttribute(tagSpec string) (Attribute, string) {
	attr := Attribute{NoValue: true}

	// The key ends on whitespace or the '=' sign
	i := strings.IndexAny(tagSpec, " =")
	if i == -1 {
		attr.Key = tagSpec
		return attr, ""
	}
	attr.Key = tagSpec[:i]

	// Without an '=' sign, this is an attribute without value
	rest := skipWhiteSpace(tagSpec[i:])
	if len(rest) == 0 || rest[0] != '=' {
		return attr, rest
	}

	attr.NoValue = false
	attr.Val, rest = readAttrValue(skipWhiteSpace(rest[1:]))
	return attr, rest
}

// readAttrValue reads a quoted value, or an unquoted word.
func readAttrValue(tagSpec string) (value string, rest string) {
	if len(tagSpec) == 0 {
		return "", ""
	}

	switch quote := tagSpec[0]; quote {
	case '"', '\'':
		end := strings.IndexByte(tagSpec[1:], quote)
		if end == -1 {
			// Unterminated quote, the value runs to the end of the tag
			return tagSpec[1:], ""
		}
		return tagSpec[1 : end+1], tagSpec[end+2:]
	}

	return readWord(tagSpec)
}
