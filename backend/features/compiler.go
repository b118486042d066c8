package features

import (
	"github.com/benoitkugler/textlayout/fonts/truetype"

	"github.com/felipesanches/fontc/core/coords"
	"github.com/felipesanches/fontc/core/variations"
	"github.com/felipesanches/fontc/ir"
)

// GlyphID is a glyph's identifier in the binary tables, i.e. its position in
// the glyph order.
type GlyphID uint16

// GlyphMap maps glyph names to their identifiers.
type GlyphMap map[ir.GlyphName]GlyphID

// NewGlyphMap builds the name → identifier map from a glyph order. An empty
// order is a valid degenerate case; compilation will be improbable but must
// be allowed to proceed.
func NewGlyphMap(order *ir.GlyphOrder) GlyphMap {
	if order.IsEmpty() {
		tracer().Infof("glyph order is empty; feature compile improbable")
	}
	m := make(GlyphMap, order.Len())
	for i, name := range order.Names() {
		m[name] = GlyphID(i)
	}
	return m
}

// RegionDelta is one resolved per-region contribution of a variable metric:
// the region's tents, one per axis in the font's declared axis order, and the
// rounded delta to apply within it.
type RegionDelta struct {
	Axes  []variations.Tent
	Delta int16
}

// VariationInfo is the callback contract the external feature compiler uses
// to reason about the design space while building variable values.
// Axis lookup by tag reports absence as a normal result. Metric resolution
// turns per-location samples into a default value plus per-region deltas;
// see FeaVariationInfo for the semantics.
type VariationInfo interface {
	Axis(tag truetype.Tag) (index int, axis *ir.Axis, ok bool)
	ResolveVariableMetric(values *coords.LocationValues) (int16, []RegionDelta, error)
}

// Compilation is the external compiler's result: up to three independent
// binary table fragments. A font need not have any of the three.
type Compilation struct {
	Gpos []byte
	Gsub []byte
	Gdef []byte
}

// CompileRequest carries everything the external compiler needs for one run.
type CompileRequest struct {
	// Root identifies the root source. With a Resolver set it is handed to
	// the resolver verbatim, so an in-memory root uses the resolver's
	// sentinel path; without one it is a file path.
	Root string
	// Glyphs maps glyph names to identifiers.
	Glyphs GlyphMap
	// ProjectRoot optionally names the directory include statements resolve
	// against.
	ProjectRoot string
	// Resolver optionally overlays source resolution; nil means plain files.
	Resolver SourceResolver
	// VarInfo answers design-space questions during compilation.
	VarInfo VariationInfo
}

// Compiler is the external feature compiler at its boundary: it parses and
// compiles feature source into binary table fragments, or fails with a
// structured parse/compile error.
type Compiler interface {
	Compile(req *CompileRequest) (*Compilation, error)
}
