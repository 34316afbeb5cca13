package jsondiff

import (
	"strconv"
	"strings"
)

// Key is a single step into a document: an array index or an object field
// name
type Key struct {
	field string
	idx   int
	isIdx bool
}

// Idx creates a Key addressing the array element at index i
func Idx(i int) Key {
	return Key{idx: i, isIdx: true}
}

// Field creates a Key addressing the object member named f
func Field(f string) Key {
	return Key{field: f}
}

func (k Key) String() string {
	if k.isIdx {
		return "[" + strconv.Itoa(k.idx) + "]"
	}
	return "." + k.field
}

// Path locates a value inside a document as the sequence of keys leading to
// it from the root. The zero value is the root itself. Paths never mutate
// after construction
type Path struct {
	keys []Key
}

// Append returns a new Path extended with next. The receiver is unchanged &
// shares no backing storage with the result, so sibling descents can extend
// the same parent path without interfering
func (p Path) Append(next Key) Path {
	keys := make([]Key, len(p.keys)+1)
	copy(keys, p.keys)
	keys[len(p.keys)] = next
	return Path{keys: keys}
}

// IsRoot reports whether p addresses the document root
func (p Path) IsRoot() bool {
	return len(p.keys) == 0
}

// Keys returns a copy of the key sequence, empty at the root
func (p Path) Keys() []Key {
	keys := make([]Key, len(p.keys))
	copy(keys, p.keys)
	return keys
}

// String renders the root as "(root)" & any other path as the concatenation
// of its keys, eg `.users[2].name`
func (p Path) String() string {
	if len(p.keys) == 0 {
		return "(root)"
	}
	b := &strings.Builder{}
	for _, k := range p.keys {
		b.WriteString(k.String())
	}
	return b.String()
}
