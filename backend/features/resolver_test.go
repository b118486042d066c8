package features

import (
	"testing"

	"github.com/benoitkugler/textlayout/fonts/truetype"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felipesanches/fontc/core/coords"
	"github.com/felipesanches/fontc/core/variations"
	"github.com/felipesanches/fontc/ir"
)

// weightVariableMetadata builds a weight axis with masters at the extremes,
// plus a no-op 'point' width axis which must be ignored by resolution.
func weightVariableMetadata(t *testing.T, min, def, max coords.UserCoord) *ir.StaticMetadata {
	t.Helper()
	wght := coords.T("wght")
	meta, err := ir.NewStaticMetadata(1024,
		[]ir.Axis{
			{
				Tag:       wght,
				Name:      "Weight",
				Min:       min,
				Default:   def,
				Max:       max,
				Converter: coords.Unmapped(min, def, max),
			},
			{
				Tag:       coords.T("wdth"),
				Name:      "Width",
				Converter: coords.Unmapped(0, 0, 0),
			},
		},
		[]coords.Location{
			coords.NewLocation().OnAxis(wght, -1),
			coords.NewLocation().OnAxis(wght, 0),
			coords.NewLocation().OnAxis(wght, 1),
		})
	require.NoError(t, err)
	return meta
}

func wght(v coords.NormalizedCoord) coords.Location {
	return coords.NewLocation().OnAxis(coords.T("wght"), v)
}

func isDefaultRegion(axes []variations.Tent) bool {
	for _, tent := range axes {
		if !tent.IsDefault() {
			return false
		}
	}
	return true
}

func TestResolveKern(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontc.backend")
	defer teardown()
	//
	meta := weightVariableMetadata(t, 300, 400, 700)
	varInfo := NewFeaVariationInfo(meta)

	def, regions, err := varInfo.ResolveVariableMetric(coords.NewLocationValues().
		Set(wght(-1), 10).
		Set(wght(0), 15).
		Set(wght(1), 20))
	require.NoError(t, err)
	assert.Equal(t, int16(15), def)
	require.Len(t, regions, 2)
	regionValues := make([]int16, 0, len(regions))
	for _, rd := range regions {
		assert.False(t, isDefaultRegion(rd.Axes), "expected no default region among deltas")
		// tents in declared axis order: wght first, then the point wdth axis
		require.Len(t, rd.Axes, 2)
		assert.True(t, rd.Axes[1].IsDefault(), "expected a default tent on the unused width axis")
		regionValues = append(regionValues, rd.Delta+def)
	}
	assert.Equal(t, []int16{10, 20}, regionValues)
	assert.Equal(t, variations.Tent{Lower: -1, Peak: -1, Upper: 0}, regions[0].Axes[0])
	assert.Equal(t, variations.Tent{Lower: 0, Peak: 1, Upper: 1}, regions[1].Axes[0])
}

func TestResolveReproducesSamples(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontc.backend")
	defer teardown()
	//
	meta := weightVariableMetadata(t, 300, 400, 700)
	varInfo := NewFeaVariationInfo(meta)
	samples := map[coords.NormalizedCoord]float64{-1: -93, 0: -55, 1: 17}

	values := coords.NewLocationValues()
	for pos, v := range samples {
		values.Set(wght(pos), v)
	}
	def, regions, err := varInfo.ResolveVariableMetric(values)
	require.NoError(t, err)
	for pos, want := range samples {
		sum := float64(def)
		for _, rd := range regions {
			scalar := 1.0
			for i, tent := range rd.Axes {
				v, _ := wght(pos).Coord(meta.Axes[i].Tag)
				scalar *= tent.ScalarAt(v)
			}
			sum += scalar * float64(rd.Delta)
		}
		// one rounding step per summed term
		assert.InDelta(t, want, sum, 0.5*float64(len(regions)+1), "at wght=%v", pos)
	}
}

func TestResolveUnsupportedLocation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontc.backend")
	defer teardown()
	//
	meta := weightVariableMetadata(t, 300, 400, 700)
	varInfo := NewFeaVariationInfo(meta)

	def, regions, err := varInfo.ResolveVariableMetric(coords.NewLocationValues().
		Set(wght(0), 15).
		Set(wght(0.5), 17))
	require.Error(t, err)
	var unsupported *variations.UnsupportedLocationError
	assert.ErrorAs(t, err, &unsupported)
	// no partial result
	assert.Equal(t, int16(0), def)
	assert.Nil(t, regions)
}

func TestResolveMissingTent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontc.backend")
	defer teardown()
	//
	// a model covering fewer axes than the font declares is a configuration
	// error and must surface, never silently default
	wghtTag := coords.T("wght")
	model, err := variations.NewModel([]coords.Location{
		wght(0), wght(-1), wght(1),
	}, []coords.Tag{wghtTag})
	require.NoError(t, err)
	meta := &ir.StaticMetadata{
		UnitsPerEm: 1000,
		Axes: []ir.Axis{
			{Tag: wghtTag, Name: "Weight", Converter: coords.Unmapped(300, 400, 700)},
			{Tag: coords.T("wdth"), Name: "Width", Converter: coords.Unmapped(50, 100, 125)},
		},
		Model: model,
	}
	varInfo := NewFeaVariationInfo(meta)
	_, _, err = varInfo.ResolveVariableMetric(coords.NewLocationValues().
		Set(wght(-1), 10).
		Set(wght(0), 15).
		Set(wght(1), 20))
	require.Error(t, err)
	var missing *MissingTentError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, coords.T("wdth"), missing.Tag)
}

func TestAxisLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontc.backend")
	defer teardown()
	//
	meta := weightVariableMetadata(t, 300, 400, 700)
	varInfo := NewFeaVariationInfo(meta)

	i, axis, ok := varInfo.Axis(truetype.Tag(coords.T("wght")))
	require.True(t, ok)
	assert.Equal(t, 0, i)
	assert.Equal(t, "Weight", axis.Name)
	i, axis, ok = varInfo.Axis(TagToTL(coords.T("wdth")))
	require.True(t, ok)
	assert.Equal(t, 1, i)
	assert.Equal(t, "Width", axis.Name)
	_, _, ok = varInfo.Axis(TagToTL(coords.T("opsz")))
	assert.False(t, ok, "expected absence to be a normal query result")
}

func TestOtRoundTiesAwayFromZero(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontc.backend")
	defer teardown()
	//
	assert.Equal(t, int16(3), otRound(2.5))
	assert.Equal(t, int16(-3), otRound(-2.5))
	assert.Equal(t, int16(2), otRound(2.4))
	assert.Equal(t, int16(-2), otRound(-2.4))
	assert.Equal(t, int16(0), otRound(0))
}
