package ir

import (
	"github.com/felipesanches/fontc/core"
	"github.com/felipesanches/fontc/core/coords"
	"github.com/felipesanches/fontc/core/variations"
)

// Axis is one design-variation axis of a font. Immutable once constructed;
// within a font an axis is uniquely identified by its tag.
type Axis struct {
	Tag       coords.Tag
	Name      string
	Min       coords.UserCoord
	Default   coords.UserCoord
	Max       coords.UserCoord
	Hidden    bool
	Converter *coords.CoordConverter
}

// Normalize maps a user coordinate on this axis to [-1, 1].
func (a *Axis) Normalize(u coords.UserCoord) coords.NormalizedCoord {
	return a.Converter.Normalize(u)
}

// StaticMetadata is the global, non-glyph font metadata: units-per-em, the
// declared axis order, and the variation model over the master locations.
// It is produced once by an upstream importer and read-only thereafter.
type StaticMetadata struct {
	UnitsPerEm uint16
	Axes       []Axis
	Model      *variations.Model
}

// NewStaticMetadata builds static metadata over a set of master locations.
// The default location is always part of the model, whether listed or not.
func NewStaticMetadata(unitsPerEm uint16, axes []Axis, masterLocations []coords.Location) (*StaticMetadata, error) {
	if unitsPerEm == 0 {
		return nil, core.Error(core.EINVALID, "units-per-em must be positive")
	}
	axisOrder := make([]coords.Tag, len(axes))
	seen := make(map[coords.Tag]bool, len(axes))
	for i, a := range axes {
		if seen[a.Tag] {
			return nil, core.Error(core.EINVALID, "duplicate axis tag %s", a.Tag)
		}
		seen[a.Tag] = true
		axisOrder[i] = a.Tag
	}
	locs := make([]coords.Location, 0, len(masterLocations)+1)
	locs = append(locs, coords.NewLocation()) // default master
	locs = append(locs, masterLocations...)
	model, err := variations.NewModel(locs, axisOrder)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("static metadata: %d axes, %d master locations", len(axes), len(masterLocations))
	return &StaticMetadata{
		UnitsPerEm: unitsPerEm,
		Axes:       axes,
		Model:      model,
	}, nil
}

// Axis returns the declared index and definition of an axis tag.
// Absence is a normal query result, not an error.
func (meta *StaticMetadata) Axis(tag coords.Tag) (int, *Axis, bool) {
	for i := range meta.Axes {
		if meta.Axes[i].Tag == tag {
			return i, &meta.Axes[i], true
		}
	}
	return 0, nil, false
}
