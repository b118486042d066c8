package ir

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/felipesanches/fontc/core/coords"
)

// KernParticipant is one side of a kerning pair: either a single glyph or a
// reference to a named kerning group.
type KernParticipant struct {
	Name    string
	IsGroup bool
}

// Glyph creates a participant referring to a single glyph.
func Glyph(name GlyphName) KernParticipant {
	return KernParticipant{Name: name}
}

// Group creates a participant referring to a kerning group.
func Group(name string) KernParticipant {
	return KernParticipant{Name: name, IsGroup: true}
}

// KernPair keys one kerning pair by its two participants. Pairs are
// directional: (A, B) and (B, A) are distinct entries.
type KernPair struct {
	Side1 KernParticipant
	Side2 KernParticipant
}

// Kerning is the kerning intermediate representation of a font: named glyph
// groups plus per-pair advance adjustments sampled across design space.
// Groups and pairs remember their insertion order; feature synthesis emits
// them in exactly that order.
type Kerning struct {
	groups *linkedhashmap.Map // group name → []GlyphName
	kerns  *linkedhashmap.Map // KernPair → *coords.LocationValues
}

// NewKerning creates an empty kerning IR.
func NewKerning() *Kerning {
	return &Kerning{
		groups: linkedhashmap.New(),
		kerns:  linkedhashmap.New(),
	}
}

// AddGroup registers a named group of glyphs. Re-adding a name replaces its
// members but keeps the original position in the group order.
func (k *Kerning) AddGroup(name string, members []GlyphName) *Kerning {
	ms := make([]GlyphName, len(members))
	copy(ms, members)
	k.groups.Put(name, ms)
	return k
}

// Group returns the members of a named group.
func (k *Kerning) Group(name string) ([]GlyphName, bool) {
	v, ok := k.groups.Get(name)
	if !ok {
		return nil, false
	}
	return v.([]GlyphName), true
}

// AddKern sets the per-location values of one kerning pair.
func (k *Kerning) AddKern(side1, side2 KernParticipant, values *coords.LocationValues) *Kerning {
	k.kerns.Put(KernPair{Side1: side1, Side2: side2}, values)
	return k
}

// EachGroup calls f for every group, in insertion order.
func (k *Kerning) EachGroup(f func(name string, members []GlyphName)) {
	k.groups.Each(func(key, value interface{}) {
		f(key.(string), value.([]GlyphName))
	})
}

// EachKern calls f for every kerning pair, in insertion order.
func (k *Kerning) EachKern(f func(pair KernPair, values *coords.LocationValues)) {
	k.kerns.Each(func(key, value interface{}) {
		f(key.(KernPair), value.(*coords.LocationValues))
	})
}

// GroupCount returns the number of groups.
func (k *Kerning) GroupCount() int {
	return k.groups.Size()
}

// KernCount returns the number of kerning pairs.
func (k *Kerning) KernCount() int {
	return k.kerns.Size()
}

// IsEmpty tells if the IR carries no kerning pairs. Groups alone do not count;
// without pairs there is nothing to emit.
func (k *Kerning) IsEmpty() bool {
	return k.kerns.Size() == 0
}
