package features

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felipesanches/fontc/core/coords"
	"github.com/felipesanches/fontc/ir"
)

// testKerning builds kerning with all participant combinations and a pair
// that is only partially specified across the kerned locations.
// Values are inserted in varying order to prove output order independence.
func testKerning(shuffled bool) *ir.Kerning {
	wght := coords.T("wght")
	atV := coords.NewLocationValues()
	if shuffled {
		atV.Set(wght1(wght), -120).Set(wght0(wght), -100)
	} else {
		atV.Set(wght0(wght), -100).Set(wght1(wght), -120)
	}
	return ir.NewKerning().
		AddGroup("kern1.A", []ir.GlyphName{"A", "Aacute"}).
		AddGroup("kern2.V", []ir.GlyphName{"V", "W"}).
		AddKern(ir.Glyph("A"), ir.Glyph("V"), atV).
		AddKern(ir.Glyph("A"), ir.Group("kern2.V"),
			coords.NewLocationValues().Set(wght0(wght), -80)).
		AddKern(ir.Group("kern1.A"), ir.Glyph("A"),
			coords.NewLocationValues().Set(wght1(wght), -40)).
		AddKern(ir.Group("kern1.A"), ir.Group("kern2.V"),
			coords.NewLocationValues().Set(wght1(wght), -60))
}

func wght0(tag coords.Tag) coords.Location {
	return coords.NewLocation().OnAxis(tag, 0)
}

func wght1(tag coords.Tag) coords.Location {
	return coords.NewLocation().OnAxis(tag, 1)
}

func TestKerningFeaText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontc.backend")
	defer teardown()
	//
	fea, err := CreateKerningFea(testKerning(false))
	require.NoError(t, err)
	want := "\n\n# fontc generated kerning\n\n" +
		"@kern1.A = [A Aacute];\n" +
		"@kern2.V = [V W];\n" +
		"\n\n" +
		"feature kern {\n" +
		"  pos A V (wght=0n:-100 wght=1n:-120);\n" +
		"  enum pos A @kern2.V (wght=0n:-80 wght=1n:0);\n" +
		"  enum pos @kern1.A A (wght=0n:0 wght=1n:-40);\n" +
		"  pos @kern1.A @kern2.V (wght=0n:0 wght=1n:-60);\n" +
		"} kern;\n"
	assert.Equal(t, want, fea)
}

func TestKerningFeaDeterministic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontc.backend")
	defer teardown()
	//
	a, err := CreateKerningFea(testKerning(false))
	require.NoError(t, err)
	b, err := CreateKerningFea(testKerning(true))
	require.NoError(t, err)
	assert.Equal(t, a, b, "expected byte-identical text for equal-content kerning")
}

func TestKerningFeaEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontc.backend")
	defer teardown()
	//
	fea, err := CreateKerningFea(ir.NewKerning())
	require.NoError(t, err)
	assert.Equal(t, "\n\n# fontc generated kerning\n\n", fea,
		"expected empty kerning to yield only the generated-by marker")
}

func TestKerningFeaSingletonGroup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontc.backend")
	defer teardown()
	//
	wght := coords.T("wght")
	k := ir.NewKerning().
		AddGroup("kern1.Je", []ir.GlyphName{"Je"}).
		AddKern(ir.Group("kern1.Je"), ir.Group("kern1.Je"),
			coords.NewLocationValues().Set(wght0(wght), 5))
	fea, err := CreateKerningFea(k)
	require.NoError(t, err)
	assert.Contains(t, fea, "@kern1.Je = [Je];\n", "expected singleton groups to be kept as-is")
	assert.Contains(t, fea, "  pos @kern1.Je @kern1.Je (wght=0n:5);\n")
}

func TestKerningFeaMultiAxisLocation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontc.backend")
	defer teardown()
	//
	wght, wdth := coords.T("wght"), coords.T("wdth")
	loc := coords.NewLocation().OnAxis(wght, 0.5).OnAxis(wdth, -1)
	k := ir.NewKerning().
		AddKern(ir.Glyph("T"), ir.Glyph("o"),
			coords.NewLocationValues().Set(loc, -25))
	fea, err := CreateKerningFea(k)
	require.NoError(t, err)
	assert.Contains(t, fea, "  pos T o (wdth=-1n,wght=0.5n:-25);\n")
}

func TestEnumerated(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontc.backend")
	defer teardown()
	//
	glyph, group := ir.Glyph("A"), ir.Group("kern2.V")
	assert.False(t, enumerated(glyph, glyph))
	assert.False(t, enumerated(group, group))
	assert.True(t, enumerated(glyph, group))
	assert.True(t, enumerated(group, glyph))
}
