package features

import (
	"github.com/benoitkugler/textlayout/fonts/truetype"

	"github.com/felipesanches/fontc/core/coords"
)

// The external compiler boundary speaks the textlayout OpenType types.

// TagToTL makes a typecast from an internal axis tag to a textlayout
// truetype tag.
func TagToTL(t coords.Tag) truetype.Tag {
	return truetype.Tag(t)
}

// TagFromTL makes a typecast from a textlayout truetype tag to an internal
// axis tag.
func TagFromTL(t truetype.Tag) coords.Tag {
	return coords.Tag(t)
}
