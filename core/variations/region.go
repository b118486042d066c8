package variations

import (
	"strings"

	"github.com/felipesanches/fontc/core/coords"
)

// Tent is one axis's (start, peak, end) influence triple of a region.
// Influence is 1 at the peak and falls off linearly to 0 at start and end.
type Tent struct {
	Lower coords.NormalizedCoord
	Peak  coords.NormalizedCoord
	Upper coords.NormalizedCoord
}

// IsDefault tells if the tent is the default tent (0, 0, 0).
func (t Tent) IsDefault() bool {
	return t.Lower == 0 && t.Peak == 0 && t.Upper == 0
}

// ScalarAt returns the influence factor of the tent at an axis position,
// following the OpenType region-scalar rules: a tent with peak 0, an invalid
// tent, or one spanning both sides of the default contributes factor 1.
func (t Tent) ScalarAt(v coords.NormalizedCoord) float64 {
	if t.Peak == 0 {
		return 1
	}
	if t.Lower > t.Peak || t.Peak > t.Upper {
		return 1
	}
	if t.Lower < 0 && t.Upper > 0 {
		return 1
	}
	if v == t.Peak {
		return 1
	}
	if v <= t.Lower || t.Upper <= v {
		return 0
	}
	if v < t.Peak {
		return float64(v-t.Lower) / float64(t.Peak-t.Lower)
	}
	return float64(t.Upper-v) / float64(t.Upper-t.Peak)
}

// Region is one interpolation region: for each axis a tent of influence.
// Entries are kept sorted by axis tag. Axes without a tent count as default
// tents, i.e. they do not constrain the region.
type Region struct {
	axes []axisTent
}

type axisTent struct {
	tag  coords.Tag
	tent Tent
}

// NewRegion creates an empty region.
func NewRegion() Region {
	return Region{}
}

// WithTent returns a copy of the region with the tent for tag set.
func (r Region) WithTent(tag coords.Tag, tent Tent) Region {
	axes := make([]axisTent, 0, len(r.axes)+1)
	inserted := false
	for _, a := range r.axes {
		if a.tag == tag {
			axes = append(axes, axisTent{tag, tent})
			inserted = true
			continue
		}
		if !inserted && a.tag > tag {
			axes = append(axes, axisTent{tag, tent})
			inserted = true
		}
		axes = append(axes, a)
	}
	if !inserted {
		axes = append(axes, axisTent{tag, tent})
	}
	return Region{axes: axes}
}

// Tent returns the tent for an axis tag, if the region carries one.
func (r Region) Tent(tag coords.Tag) (Tent, bool) {
	for _, a := range r.axes {
		if a.tag == tag {
			return a.tent, true
		}
	}
	return Tent{}, false
}

// IsDefault tells if every tent of the region is the default tent, i.e. the
// region describes the default master and contributes no deltas.
func (r Region) IsDefault() bool {
	for _, a := range r.axes {
		if !a.tent.IsDefault() {
			return false
		}
	}
	return true
}

// ScalarAt returns the region's influence at a location: the product of the
// per-axis tent factors. Axes absent from the location sit at 0.
func (r Region) ScalarAt(loc coords.Location) float64 {
	scalar := 1.0
	for _, a := range r.axes {
		v, _ := loc.Coord(a.tag)
		scalar *= a.tent.ScalarAt(v)
		if scalar == 0 {
			return 0
		}
	}
	return scalar
}

// Each calls f for every (tag, tent) pair, in tag order.
func (r Region) Each(f func(tag coords.Tag, tent Tent)) {
	for _, a := range r.axes {
		f(a.tag, a.tent)
	}
}

func (r Region) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, a := range r.axes {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(a.tag.String())
		b.WriteByte('[')
		b.WriteString(a.tent.Lower.String())
		b.WriteByte(',')
		b.WriteString(a.tent.Peak.String())
		b.WriteByte(',')
		b.WriteString(a.tent.Upper.String())
		b.WriteByte(']')
	}
	b.WriteByte('}')
	return b.String()
}
