package coords

import "sort"

// LocationValues is a mapping from locations to scalar values, kept sorted by
// the canonical location order. Kerning pairs use it for their per-location
// advance adjustments, and variable-metric resolution takes one as input.
type LocationValues struct {
	entries []locationValue
}

type locationValue struct {
	loc   Location
	value float64
}

// NewLocationValues creates an empty mapping.
func NewLocationValues() *LocationValues {
	return &LocationValues{}
}

// Set inserts or replaces the value at a location.
func (lv *LocationValues) Set(loc Location, value float64) *LocationValues {
	i := sort.Search(len(lv.entries), func(i int) bool {
		return lv.entries[i].loc.Compare(loc) >= 0
	})
	if i < len(lv.entries) && lv.entries[i].loc.Equal(loc) {
		lv.entries[i].value = value
		return lv
	}
	lv.entries = append(lv.entries, locationValue{})
	copy(lv.entries[i+1:], lv.entries[i:])
	lv.entries[i] = locationValue{loc: loc, value: value}
	return lv
}

// Value returns the value at a location, if present.
func (lv *LocationValues) Value(loc Location) (float64, bool) {
	i := sort.Search(len(lv.entries), func(i int) bool {
		return lv.entries[i].loc.Compare(loc) >= 0
	})
	if i < len(lv.entries) && lv.entries[i].loc.Equal(loc) {
		return lv.entries[i].value, true
	}
	return 0, false
}

// Locations returns the locations of the mapping, in canonical order.
func (lv *LocationValues) Locations() []Location {
	locs := make([]Location, len(lv.entries))
	for i, e := range lv.entries {
		locs[i] = e.loc
	}
	return locs
}

// Len returns the number of locations in the mapping.
func (lv *LocationValues) Len() int {
	return len(lv.entries)
}

// Each calls f for every (location, value) pair, in canonical location order.
func (lv *LocationValues) Each(f func(loc Location, value float64)) {
	for _, e := range lv.entries {
		f(e.loc, e.value)
	}
}
