package tagtree

import (
	"errors"
	"fmt"
)

// Structural errors abort a parse. They are wrapped in a *ParseError.
var (
	ErrUnmatchedCloseTag = errors.New("no open tag to match")
	ErrMismatchedTagPair = errors.New("mismatching tag pair")
)

// Mutation errors are reported before anything is spliced, so the tree is
// left untouched. They are wrapped in a *MutationError.
var (
	ErrTypeMismatch  = errors.New("expected a node")
	ErrHierarchy     = errors.New("node would become its own ancestor")
	ErrChildlessMode = errors.New("element can not have children")
	ErrTextNode      = errors.New("text nodes carry no attributes")
)

// ParseError describes a structural error found while building a tree.
type ParseError struct {
	Filename string
	Line     int
	Column   int
	Offset   int
	Tag      string // name found in the closing tag
	Expected string // name of the element that was open, if any
	Err      error
}

func (e *ParseError) Error() string {
	var msg string
	if e.Expected != "" {
		msg = fmt.Sprintf("%v: expected </%s> but received </%s>", e.Err, e.Expected, e.Tag)
	} else {
		msg = fmt.Sprintf("%v: </%s>", e.Err, e.Tag)
	}
	if e.Filename != "" {
		return fmt.Sprintf("%s:%d:%d: %s", e.Filename, e.Line, e.Column, msg)
	}
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, msg)
}

func (e *ParseError) Unwrap() error { return e.Err }

// MutationError is returned by the mutation API when an argument is rejected.
type MutationError struct {
	Op  string
	Err error
}

func (e *MutationError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *MutationError) Unwrap() error { return e.Err }

func mutationError(op string, err error) error {
	return &MutationError{Op: op, Err: err}
}

// lineColumn converts a byte offset into 1-based line and column numbers.
func lineColumn(src string, offset int) (line, column int) {
	line, column = 1, 1
	for i := 0; i < offset && i < len(src); i++ {
		if src[i] == '\n' {
			line++
			column = 1
			continue
		}
		column++
	}
	return line, column
}
