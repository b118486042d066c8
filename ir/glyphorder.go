package ir

import (
	"github.com/emirpasic/gods/sets/linkedhashset"
)

// GlyphName names a glyph within a font.
type GlyphName = string

// GlyphOrder is the ordered, de-duplicated sequence of glyph names of a font.
// Position in the order is the glyph's identifier in the binary tables.
type GlyphOrder struct {
	names *linkedhashset.Set
}

// NewGlyphOrder creates an empty glyph order.
func NewGlyphOrder() *GlyphOrder {
	return &GlyphOrder{names: linkedhashset.New()}
}

// Add appends glyph names, ignoring names already present.
func (g *GlyphOrder) Add(names ...GlyphName) *GlyphOrder {
	for _, name := range names {
		g.names.Add(name)
	}
	return g
}

// Contains tells if a glyph name is part of the order.
func (g *GlyphOrder) Contains(name GlyphName) bool {
	return g.names.Contains(name)
}

// Names returns the glyph names in order.
func (g *GlyphOrder) Names() []GlyphName {
	values := g.names.Values()
	names := make([]GlyphName, len(values))
	for i, v := range values {
		names[i] = v.(GlyphName)
	}
	return names
}

// Len returns the number of glyphs.
func (g *GlyphOrder) Len() int {
	return g.names.Size()
}

// IsEmpty tells if the order holds no glyphs.
func (g *GlyphOrder) IsEmpty() bool {
	return g.names.Size() == 0
}
