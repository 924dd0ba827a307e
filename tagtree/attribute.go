package tagtree

import "strings"

// An Attribute is an attribute key-value pair. NoValue marks an attribute
// written without a value, like 'hidden' in <div hidden>, which is different
// from an attribute with an empty value.
type Attribute struct {
	Key     string
	Val     string
	NoValue bool
}

// String renders the attribute as it appears inside a tag.
// Values are written as they are, without escaping quotes.
func (a Attribute) String() string {
	if a.NoValue {
		return a.Key
	}
	return a.Key + `="` + a.Val + `"`
}

// attrList keeps attributes in insertion order.
type attrList []Attribute

func (l attrList) index(key string) int {
	for i, a := range l {
		if a.Key == key {
			return i
		}
	}
	return -1
}

// set adds or updates an attribute, keeping the position of an existing key.
// It reports whether the list changed.
func (l *attrList) set(a Attribute) bool {
	i := l.index(a.Key)
	if i == -1 {
		*l = append(*l, a)
		return true
	}
	if (*l)[i] == a {
		return false
	}
	(*l)[i] = a
	return true
}

func (l *attrList) remove(key string) bool {
	i := l.index(key)
	if i == -1 {
		return false
	}
	*l = append((*l)[:i], (*l)[i+1:]...)
	return true
}

func (l attrList) clone() attrList {
	if l == nil {
		return nil
	}
	m := make(attrList, len(l))
	copy(m, l)
	return m
}

func (l attrList) writeTo(sb *strings.Builder) {
	for _, a := range l {
		sb.WriteByte(' ')
		sb.WriteString(a.String())
	}
}
