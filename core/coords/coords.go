package coords

import (
	"strconv"

	"github.com/felipesanches/fontc/core"
)

// UserCoord is a position on an axis in user space, e.g. weight 400.
type UserCoord float64

// DesignCoord is a position on an axis in design space, i.e. the space
// interpolation masters are placed in.
type DesignCoord float64

// NormalizedCoord is a position on an axis in [-1, 1] space, with 0 at the
// axis default. This is the coordinate system of the binary font.
type NormalizedCoord float64

func (c UserCoord) String() string       { return fmtCoord(float64(c)) }
func (c DesignCoord) String() string     { return fmtCoord(float64(c)) }
func (c NormalizedCoord) String() string { return fmtCoord(float64(c)) }

// fmtCoord formats a coordinate with the shortest exact decimal representation,
// e.g. 0, -1, 0.5. Location strings and feature text rely on this being stable.
func fmtCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// CoordMapping is one example of a user ↔ design coordinate correspondence.
type CoordMapping struct {
	User   UserCoord
	Design DesignCoord
}

// CoordConverter maps between user and design coordinates of one axis by
// piecewise linear interpolation over a set of example mappings, and
// normalizes coordinates relative to the axis extremes and default.
//
// The examples must be ordered by ascending user coordinate and the mapping
// must be monotonic. A converter is immutable once constructed.
type CoordConverter struct {
	examples   []CoordMapping
	defaultIdx int
}

// NewCoordConverter creates a converter from examples of user ↔ design mapping,
// with the example at defaultIdx mapping the axis default.
func NewCoordConverter(examples []CoordMapping, defaultIdx int) (*CoordConverter, error) {
	if len(examples) > 0 && (defaultIdx < 0 || defaultIdx >= len(examples)) {
		return nil, core.Error(core.EINVALID, "default index %d outside of %d mapping examples",
			defaultIdx, len(examples))
	}
	for i := 1; i < len(examples); i++ {
		if examples[i].User < examples[i-1].User {
			return nil, core.Error(core.EINVALID, "mapping examples not ordered at user coordinate %s",
				examples[i].User)
		}
	}
	exs := make([]CoordMapping, len(examples))
	copy(exs, examples)
	return &CoordConverter{examples: exs, defaultIdx: defaultIdx}, nil
}

// Unmapped creates a converter for an axis without a designer-supplied mapping,
// i.e. user and design space coincide.
func Unmapped(min, def, max UserCoord) *CoordConverter {
	conv, _ := NewCoordConverter([]CoordMapping{
		{User: min, Design: DesignCoord(min)},
		{User: def, Design: DesignCoord(def)},
		{User: max, Design: DesignCoord(max)},
	}, 1)
	return conv
}

// Examples returns a copy of the converter's mapping examples.
func (conv *CoordConverter) Examples() []CoordMapping {
	exs := make([]CoordMapping, len(conv.examples))
	copy(exs, conv.examples)
	return exs
}

// DefaultIdx returns the index of the example mapping the axis default.
func (conv *CoordConverter) DefaultIdx() int {
	return conv.defaultIdx
}

// ToDesign converts a user coordinate to design space.
// Coordinates outside of the mapped range are clamped to the extremes.
func (conv *CoordConverter) ToDesign(u UserCoord) DesignCoord {
	if len(conv.examples) == 0 {
		return DesignCoord(u) // identity for point axes
	}
	if u <= conv.examples[0].User {
		return conv.examples[0].Design
	}
	last := conv.examples[len(conv.examples)-1]
	if u >= last.User {
		return last.Design
	}
	for i := 1; i < len(conv.examples); i++ {
		lo, hi := conv.examples[i-1], conv.examples[i]
		if u > hi.User {
			continue
		}
		if hi.User == lo.User {
			return lo.Design
		}
		t := float64(u-lo.User) / float64(hi.User-lo.User)
		return lo.Design + DesignCoord(t*float64(hi.Design-lo.Design))
	}
	return last.Design
}

// ToUser converts a design coordinate back to user space.
// Coordinates outside of the mapped range are clamped to the extremes.
func (conv *CoordConverter) ToUser(d DesignCoord) UserCoord {
	if len(conv.examples) == 0 {
		return UserCoord(d)
	}
	if d <= conv.examples[0].Design {
		return conv.examples[0].User
	}
	last := conv.examples[len(conv.examples)-1]
	if d >= last.Design {
		return last.User
	}
	for i := 1; i < len(conv.examples); i++ {
		lo, hi := conv.examples[i-1], conv.examples[i]
		if d > hi.Design {
			continue
		}
		if hi.Design == lo.Design {
			return lo.User
		}
		t := float64(d-lo.Design) / float64(hi.Design-lo.Design)
		return lo.User + UserCoord(t*float64(hi.User-lo.User))
	}
	return last.User
}

// Normalize maps a user coordinate to [-1, 1], with the default example at 0,
// the first example at -1 and the last example at +1. The mapping runs through
// design space, i.e. a designer-supplied user→design mapping skews normalization
// the same way it skews interpolation.
func (conv *CoordConverter) Normalize(u UserCoord) NormalizedCoord {
	if len(conv.examples) < 2 {
		return 0 // point axis
	}
	d := conv.ToDesign(u)
	dmin := conv.examples[0].Design
	ddef := conv.examples[conv.defaultIdx].Design
	dmax := conv.examples[len(conv.examples)-1].Design
	var n float64
	switch {
	case d < ddef && ddef > dmin:
		n = float64(d-ddef) / float64(ddef-dmin)
	case d > ddef && dmax > ddef:
		n = float64(d-ddef) / float64(dmax-ddef)
	default:
		n = 0
	}
	if n < -1 {
		n = -1
	} else if n > 1 {
		n = 1
	}
	return NormalizedCoord(n)
}
