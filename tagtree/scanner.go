package tagtree

import "strings"

const startTag = '<'
const endTag = '>'

// FindTagPosition returns the position of the next complete tag in text,
// searching from offset from. end is one past the closing '>', so
// text[start:end] is the whole tag. ok is false when no complete tag remains.
//
// The first '>' after the '<' ends the tag, so quoted attribute values
// containing '>' are not supported.
func FindTagPosition(text string, from int) (start, end int, ok bool) {
	if from < 0 {
		from = 0
	}
	if from >= len(text) {
		return -1, -1, false
	}

	left := strings.IndexByte(text[from:], startTag)
	if left == -1 {
		return -1, -1, false
	}
	start = from + left

	right := strings.IndexByte(text[start:], endTag)
	if right == -1 {
		return -1, -1, false
	}

	return start, start + right + 1, true
}
