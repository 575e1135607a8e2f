package core

import "strings"

// DefaultTag is what every out-of-range catalog lookup resolves to.
const DefaultTag Tag = "other"

// Tag is a category label. Two tags are the same tag when their names match.
type Tag string

func (t Tag) String() string {
	return string(t)
}

// TagCatalog is the ordered, index-addressable list of tags a user can pick from.
type TagCatalog struct {
	tags []Tag
}

// NewTagCatalog builds a catalog from configured names.
// Blank names are dropped and duplicates keep their first position.
func NewTagCatalog(names []string) TagCatalog {
	seen := make(map[Tag]struct{}, len(names))
	tags := make([]Tag, 0, len(names))
	for _, n := range names {
		t := Tag(strings.TrimSpace(n))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		tags = append(tags, t)
	}
	return TagCatalog{tags: tags}
}

// Tags returns a copy of the catalog in order.
func (c TagCatalog) Tags() []Tag {
	return append([]Tag(nil), c.tags...)
}

func (c TagCatalog) Len() int {
	return len(c.tags)
}

// Resolve returns the tag at index, or DefaultTag when index is out of range.
func (c TagCatalog) Resolve(index int) Tag {
	if index < 0 || index >= len(c.tags) {
		return DefaultTag
	}
	return c.tags[index]
}

// IndexOf reports the position of t in the catalog.
func (c TagCatalog) IndexOf(t Tag) (int, bool) {
	for i, v := range c.tags {
		if v == t {
			return i, true
		}
	}
	return 0, false
}

func (c TagCatalog) Next(index int) int {
	return NextIndex(index, len(c.tags))
}

func (c TagCatalog) Prev(index int) int {
	return PrevIndex(index, len(c.tags))
}

// NextIndex steps forward modulo length. Zero length leaves index as is.
func NextIndex(index, length int) int {
	if length <= 0 {
		return index
	}
	return ((index+1)%length + length) % length
}

// PrevIndex steps backward modulo length. Zero length leaves index as is.
func PrevIndex(index, length int) int {
	if length <= 0 {
		return index
	}
	return ((index-1)%length + length) % length
}
