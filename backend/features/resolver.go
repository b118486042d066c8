package features

import (
	"fmt"
	"math"

	"github.com/benoitkugler/textlayout/fonts/truetype"

	"github.com/felipesanches/fontc/core/coords"
	"github.com/felipesanches/fontc/core/variations"
	"github.com/felipesanches/fontc/ir"
)

// MissingTentError reports a resolved region lacking a tent for an axis the
// font declares. That is an inconsistency between the font's axis list and
// the variation model, never silently defaulted.
type MissingTentError struct {
	Tag coords.Tag
}

func (e *MissingTentError) Error() string {
	return fmt.Sprintf("missing a tent for %s", e.Tag)
}

// FeaVariationInfo answers the external compiler's design-space questions for
// one font: axis lookup by tag and resolution of multi-location metrics into
// a default value plus sparse per-region deltas.
type FeaVariationInfo struct {
	axes map[coords.Tag]indexedAxis
	meta *ir.StaticMetadata
}

type indexedAxis struct {
	index int
	axis  *ir.Axis
}

var _ VariationInfo = (*FeaVariationInfo)(nil)

// NewFeaVariationInfo creates variation info over a font's static metadata.
func NewFeaVariationInfo(meta *ir.StaticMetadata) *FeaVariationInfo {
	axes := make(map[coords.Tag]indexedAxis, len(meta.Axes))
	for i := range meta.Axes {
		axes[meta.Axes[i].Tag] = indexedAxis{index: i, axis: &meta.Axes[i]}
	}
	return &FeaVariationInfo{axes: axes, meta: meta}
}

// Axis returns the declared index and definition of an axis tag, or ok=false
// when the font does not declare the axis.
func (vi *FeaVariationInfo) Axis(tag truetype.Tag) (int, *ir.Axis, bool) {
	entry, ok := vi.axes[TagFromTL(tag)]
	if !ok {
		return 0, nil, false
	}
	return entry.index, entry.axis, true
}

// ResolveVariableMetric turns integer metric samples keyed by location into
// the scalar at the default location plus one rounded delta per non-default
// region, regions given as tents in the font's declared axis order.
//
// Every sampled location must be supported by the variation model; there is
// no extrapolation and no nearest-neighbor fallback. Pure function.
func (vi *FeaVariationInfo) ResolveVariableMetric(values *coords.LocationValues) (int16, []RegionDelta, error) {
	model := vi.meta.Model

	// Compute deltas using float64 as 1d point and delta, then ship them home
	// as int16.
	seqs := make([]variations.PointSeq, 0, values.Len())
	values.Each(func(loc coords.Location, value float64) {
		seqs = append(seqs, variations.PointSeq{Loc: loc, Values: []float64{value}})
	})

	// Samples are only usable at locations the variation model supports.
	for _, seq := range seqs {
		if !model.Supports(seq.Loc) {
			return 0, nil, &variations.UnsupportedLocationError{Loc: seq.Loc}
		}
	}

	seqDeltas, err := model.Deltas(seqs)
	if err != nil {
		return 0, nil, err
	}
	// Only 1 value per region for our input
	for _, sd := range seqDeltas {
		if len(sd.Values) != 1 {
			panic(fmt.Sprintf("%d values?!", len(sd.Values)))
		}
	}

	// Compute the default on the unrounded deltas, rounding once after the sum
	// to avoid compounding error across regions.
	defaultLoc := model.DefaultLocation()
	var defaultSum float32
	for _, sd := range seqDeltas {
		scalar := sd.Region.ScalarAt(defaultLoc)
		if scalar == 0 {
			continue
		}
		defaultSum += float32(scalar) * float32(sd.Values[0])
	}
	defaultValue := otRound(float64(defaultSum))

	var deltas []RegionDelta
	for _, sd := range seqDeltas {
		if sd.Region.IsDefault() {
			continue
		}
		// Region axis coordinate records go in the order of axes given in
		// the fvar table.
		axes := make([]variations.Tent, 0, len(vi.meta.Axes))
		for i := range vi.meta.Axes {
			tent, ok := sd.Region.Tent(vi.meta.Axes[i].Tag)
			if !ok {
				return 0, nil, &MissingTentError{Tag: vi.meta.Axes[i].Tag}
			}
			axes = append(axes, tent)
		}
		deltas = append(deltas, RegionDelta{Axes: axes, Delta: otRound(sd.Values[0])})
	}

	return defaultValue, deltas, nil
}

// otRound rounds to the nearest integer, ties away from zero.
func otRound(v float64) int16 {
	return int16(math.Round(v))
}
