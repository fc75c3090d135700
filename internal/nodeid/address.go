package nodeid

import (
	"strconv"
	"strings"
)

// NoIndex marks a segment without an explicit index.
const NoIndex = -1

// PathSegment is one `name` or `name[index]` element of an address.
type PathSegment struct {
	Name  string
	Index int
}

// NewPathSegment creates a segment without an index.
func NewPathSegment(name string) PathSegment {
	return PathSegment{Name: name, Index: NoIndex}
}

// NewPathSegmentWithIndex creates a segment with an index.
func NewPathSegmentWithIndex(name string, index int) PathSegment {
	return PathSegment{Name: name, Index: index}
}

// HasIndex reports whether the segment carries an explicit index.
func (ps PathSegment) HasIndex() bool {
	return ps.Index != NoIndex
}

// Address is a parsed path.
type Address struct {
	Path []PathSegment
}

// String renders the canonical form of the address.
func (a *Address) String() string {
	if a == nil {
		return ""
	}
	var sb strings.Builder
	for i, segment := range a.Path {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(segment.Name)
		if segment.HasIndex() {
			sb.WriteByte('[')
			sb.WriteString(strconv.Itoa(segment.Index))
			sb.WriteByte(']')
		}
	}
	return sb.String()
}
