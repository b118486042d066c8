package coords

import (
	"strings"
)

// Location is a point in design space, expressed per-axis in normalized
// coordinates. Axes not present in a location sit at their default, i.e. 0.
//
// Entries are kept sorted by axis tag, so equality, ordering and the canonical
// string form are independent of insertion order. The zero value is the
// default location (no axes).
type Location struct {
	axes []axisPos
}

type axisPos struct {
	tag   Tag
	coord NormalizedCoord
}

// NewLocation creates the default location. Coordinates are added with OnAxis.
func NewLocation() Location {
	return Location{}
}

// OnAxis returns a copy of the location with the coordinate for tag set,
// replacing any previous coordinate on that axis.
func (loc Location) OnAxis(tag Tag, c NormalizedCoord) Location {
	axes := make([]axisPos, 0, len(loc.axes)+1)
	inserted := false
	for _, a := range loc.axes {
		if a.tag == tag {
			axes = append(axes, axisPos{tag, c})
			inserted = true
			continue
		}
		if !inserted && a.tag > tag {
			axes = append(axes, axisPos{tag, c})
			inserted = true
		}
		axes = append(axes, a)
	}
	if !inserted {
		axes = append(axes, axisPos{tag, c})
	}
	return Location{axes: axes}
}

// Coord returns the coordinate for an axis tag.
// Axes not contained in the location report their default, 0, and false.
func (loc Location) Coord(tag Tag) (NormalizedCoord, bool) {
	for _, a := range loc.axes {
		if a.tag == tag {
			return a.coord, true
		}
	}
	return 0, false
}

// Has tells if the location carries an explicit coordinate for tag.
func (loc Location) Has(tag Tag) bool {
	_, ok := loc.Coord(tag)
	return ok
}

// Axes returns the axis tags of the location, sorted.
func (loc Location) Axes() []Tag {
	tags := make([]Tag, len(loc.axes))
	for i, a := range loc.axes {
		tags[i] = a.tag
	}
	return tags
}

// Len returns the number of axes with an explicit coordinate.
func (loc Location) Len() int {
	return len(loc.axes)
}

// IsDefault tells if every coordinate of the location is 0.
func (loc Location) IsDefault() bool {
	for _, a := range loc.axes {
		if a.coord != 0 {
			return false
		}
	}
	return true
}

// Each calls f for every (tag, coordinate) pair, in tag order.
func (loc Location) Each(f func(tag Tag, c NormalizedCoord)) {
	for _, a := range loc.axes {
		f(a.tag, a.coord)
	}
}

// Compare establishes a total order over locations: lexicographic over the
// tag-sorted (tag, coordinate) pairs, with a strict prefix ordering first.
// It returns -1, 0 or 1.
func (loc Location) Compare(other Location) int {
	n := len(loc.axes)
	if len(other.axes) < n {
		n = len(other.axes)
	}
	for i := 0; i < n; i++ {
		a, b := loc.axes[i], other.axes[i]
		if a.tag != b.tag {
			if a.tag < b.tag {
				return -1
			}
			return 1
		}
		if a.coord != b.coord {
			if a.coord < b.coord {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(loc.axes) < len(other.axes):
		return -1
	case len(loc.axes) > len(other.axes):
		return 1
	}
	return 0
}

// Equal tells if two locations carry identical coordinates on identical axes.
func (loc Location) Equal(other Location) bool {
	return loc.Compare(other) == 0
}

// String returns the canonical form of the location, e.g. "wdth=-1,wght=0.5".
// It doubles as a hash key for locations.
func (loc Location) String() string {
	var b strings.Builder
	for i, a := range loc.axes {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(a.tag.String())
		b.WriteByte('=')
		b.WriteString(a.coord.String())
	}
	return b.String()
}
