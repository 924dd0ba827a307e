// Copyright 2023 Jesus Ruiz. All rights reserved.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

// Package sliceedit extends the functionalities of rsc.io/edit to
// implement eficient buffered editing of byte slices.
// It requires a single allocation for many operations.
package sliceedit

import (
	"bytes"

	"rsc.io/edit"
)

// A Buffer is a queue of edits to apply to a given byte slice.
// Queued edits must not overlap.
type Buffer struct {
	ed  *edit.Buffer
	buf []byte
}

// NewBuffer returns a new buffer to accumulate changes to an initial data slice.
// The returned buffer maintains a reference to the data, so the caller must ensure
// the data is not modified until after the Buffer is done being used.
func NewBuffer(buf []byte) *Buffer {
	return &Buffer{
		ed:  edit.NewBuffer(buf),
		buf: buf, // Just for our internal queries, we do not modify anything in it
	}
}

// FindAll finds all non-overlapping instances of item in buf.
func FindAll(buf []byte, item string) []int {
	found := []int{}

	if len(item) == 0 {
		return found
	}

	realOffset := 0

	for {
		i := bytes.Index(buf, []byte(item))
		if i == -1 {
			return found
		}
		found = append(found, i+realOffset)
		buf = buf[i+len(item):]
		realOffset = realOffset + i + len(item)
	}
}

// Replace replaces buf[start:end] with new.
func (b *Buffer) Replace(start, end int, new string) {
	b.ed.Replace(start, end, new)
}

// Delete deletes buf[start:end].
func (b *Buffer) Delete(start, end int) {
	b.ed.Delete(start, end)
}

// DeleteAllString deletes every instance of s.
func (b *Buffer) DeleteAllString(s string) {
	hits := FindAll(b.buf, s)
	for _, hit := range hits {
		b.ed.Delete(hit, hit+len(s))
	}
}

// ReplaceAllString replaces every instance of old with new.
func (b *Buffer) ReplaceAllString(old string, new string) {
	hits := FindAll(b.buf, old)
	for _, hit := range hits {
		b.ed.Replace(hit, hit+len(old), new)
	}
}

// Bytes returns a new byte slice containing the original data
// with the queued edits applied.
func (b *Buffer) Bytes() []byte {
	return b.ed.Bytes()
}

// String returns a string containing the original data
// with the queued edits applied.
func (b *Buffer) String() string {
	return string(b.ed.Bytes())
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

// WhitespaceRuns returns the [start, end) offsets of every maximal run of
// ASCII whitespace in buf, in increasing order.
func WhitespaceRuns(buf []byte) [][2]int {
	var runs [][2]int
	for i := 0; i < len(buf); i++ {
		if !isSpace(buf[i]) {
			continue
		}
		start := i
		for i < len(buf) && isSpace(buf[i]) {
			i++
		}
		runs = append(runs, [2]int{start, i})
	}
	return runs
}

// CollapseWhitespace replaces every run of whitespace in s with a single blank
// and removes the whitespace at both ends.
func CollapseWhitespace(s string) string {
	buf := []byte(s)

	runs := WhitespaceRuns(buf)
	if len(runs) == 0 {
		return s
	}

	b := NewBuffer(buf)
	for _, r := range runs {
		start, end := r[0], r[1]

		// Leading and trailing runs disappear completely
		if start == 0 || end == len(buf) {
			b.Delete(start, end)
			continue
		}

		// A single blank is already in its final form
		if end-start == 1 && buf[start] == ' ' {
			continue
		}

		b.Replace(start, end, " ")
	}

	return b.String()
}
