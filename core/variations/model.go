package variations

import (
	"fmt"
	"sort"

	"github.com/felipesanches/fontc/core"
	"github.com/felipesanches/fontc/core/coords"
)

// UnsupportedLocationError reports a design-space point the variation model
// cannot interpolate. The model never extrapolates or approximates, so any
// sample at an unsupported location is fatal to the computation using it.
type UnsupportedLocationError struct {
	Loc coords.Location
}

func (e *UnsupportedLocationError) Error() string {
	return fmt.Sprintf("no variation model for %s", e.Loc)
}

// PointSeq is a sequence of values sampled at one location. All sequences
// handed to Model.Deltas must have the same length.
type PointSeq struct {
	Loc    coords.Location
	Values []float64
}

// SeqDeltas is the per-region contribution from decomposing point sequences:
// one delta per sequence position.
type SeqDeltas struct {
	Region Region
	Values []float64
}

// Model is a variation model over a fixed set of master locations.
// It answers which locations it supports and decomposes values sampled at
// master locations into per-region deltas. Immutable once constructed.
type Model struct {
	axisOrder  []coords.Tag
	locations  []coords.Location // sorted, default first
	regions    []Region          // parallel to locations
	defaultLoc coords.Location
	index      map[string]int // canonical location string → position
}

// NewModel builds a variation model over master locations. The default
// location (all axes at 0) must be among them. Locations are de-duplicated.
func NewModel(locations []coords.Location, axisOrder []coords.Tag) (*Model, error) {
	var defaultLoc coords.Location
	for _, tag := range axisOrder {
		defaultLoc = defaultLoc.OnAxis(tag, 0)
	}
	seen := make(map[string]bool)
	var locs []coords.Location
	hasDefault := false
	for _, loc := range locations {
		loc = padToAxes(loc, axisOrder)
		key := loc.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		locs = append(locs, loc)
		if loc.IsDefault() {
			hasDefault = true
		}
	}
	if !hasDefault {
		return nil, core.Error(core.EINVALID, "variation model requires a master at the default location")
	}
	sortLocations(locs)
	m := &Model{
		axisOrder:  axisOrder,
		locations:  locs,
		defaultLoc: defaultLoc,
		index:      make(map[string]int, len(locs)),
	}
	for i, loc := range locs {
		m.index[loc.String()] = i
	}
	m.regions = m.locationsToRegions()
	m.narrowRegions()
	tracer().Debugf("variation model over %d masters, %d axes", len(locs), len(axisOrder))
	return m, nil
}

// padToAxes fills in explicit 0 coordinates for declared axes a location omits.
func padToAxes(loc coords.Location, axisOrder []coords.Tag) coords.Location {
	for _, tag := range axisOrder {
		if !loc.Has(tag) {
			loc = loc.OnAxis(tag, 0)
		}
	}
	return loc
}

// sortLocations orders masters the way deltas are seated: the default first,
// then masters on fewer axes, ties broken by the canonical location order.
func sortLocations(locs []coords.Location) {
	sort.SliceStable(locs, func(i, j int) bool {
		a, b := locs[i], locs[j]
		ad, bd := a.IsDefault(), b.IsDefault()
		if ad != bd {
			return ad
		}
		an, bn := onAxisCount(a), onAxisCount(b)
		if an != bn {
			return an < bn
		}
		return a.Compare(b) < 0
	})
}

func onAxisCount(loc coords.Location) int {
	n := 0
	loc.Each(func(_ coords.Tag, c coords.NormalizedCoord) {
		if c != 0 {
			n++
		}
	})
	return n
}

// locationsToRegions derives each master's raw region: a tent peaked at the
// master, extending to the extreme seen on that axis on the master's side of
// the default.
func (m *Model) locationsToRegions() []Region {
	axisMin := make(map[coords.Tag]coords.NormalizedCoord)
	axisMax := make(map[coords.Tag]coords.NormalizedCoord)
	for _, loc := range m.locations {
		loc.Each(func(tag coords.Tag, c coords.NormalizedCoord) {
			if c < axisMin[tag] {
				axisMin[tag] = c
			}
			if c > axisMax[tag] {
				axisMax[tag] = c
			}
		})
	}
	regions := make([]Region, len(m.locations))
	for i, loc := range m.locations {
		region := NewRegion()
		for _, tag := range m.axisOrder {
			v, _ := loc.Coord(tag)
			switch {
			case v > 0:
				region = region.WithTent(tag, Tent{Lower: 0, Peak: v, Upper: axisMax[tag]})
			case v < 0:
				region = region.WithTent(tag, Tent{Lower: axisMin[tag], Peak: v, Upper: 0})
			default:
				region = region.WithTent(tag, Tent{})
			}
		}
		regions[i] = region
	}
	return regions
}

// narrowRegions shrinks each region against earlier masters that sit inside
// it on the same axes, so every master's region scalar is 1 at its own
// location and 0 at every earlier master.
func (m *Model) narrowRegions() {
	for i := range m.regions {
		region := m.regions[i]
		locAxes := onAxes(region)
		for j := 0; j < i; j++ {
			prev := m.regions[j]
			if !sameAxes(onAxes(prev), locAxes) {
				continue
			}
			relevant := true
			for _, tag := range locAxes {
				tent, _ := region.Tent(tag)
				prevTent, _ := prev.Tent(tag)
				if prevTent.Peak != tent.Peak &&
					!(tent.Lower < prevTent.Peak && prevTent.Peak < tent.Upper) {
					relevant = false
					break
				}
			}
			if !relevant {
				continue
			}
			// narrow the axis (or axes, on a tie) with the steepest cut
			bestRatio := -1.0
			bestTents := make(map[coords.Tag]Tent)
			for _, tag := range locAxes {
				tent, _ := region.Tent(tag)
				prevTent, _ := prev.Tent(tag)
				val, peak := prevTent.Peak, tent.Peak
				var narrowed Tent
				var ratio float64
				switch {
				case val < peak:
					narrowed = Tent{Lower: val, Peak: peak, Upper: tent.Upper}
					ratio = float64(val-peak) / float64(tent.Lower-peak)
				case peak < val:
					narrowed = Tent{Lower: tent.Lower, Peak: peak, Upper: val}
					ratio = float64(val-peak) / float64(tent.Upper-peak)
				default:
					continue
				}
				if ratio > bestRatio {
					bestTents = make(map[coords.Tag]Tent)
					bestRatio = ratio
				}
				if ratio == bestRatio {
					bestTents[tag] = narrowed
				}
			}
			for tag, tent := range bestTents {
				region = region.WithTent(tag, tent)
			}
		}
		m.regions[i] = region
	}
}

func onAxes(r Region) []coords.Tag {
	var tags []coords.Tag
	r.Each(func(tag coords.Tag, tent Tent) {
		if !tent.IsDefault() {
			tags = append(tags, tag)
		}
	})
	return tags
}

func sameAxes(a, b []coords.Tag) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a { // both tag-sorted
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Supports tells if the model can interpolate at a location, i.e. the
// location is one of the model's masters.
func (m *Model) Supports(loc coords.Location) bool {
	_, ok := m.index[padToAxes(loc, m.axisOrder).String()]
	return ok
}

// DefaultLocation returns the model's default location, all axes at 0.
func (m *Model) DefaultLocation() coords.Location {
	return m.defaultLoc
}

// Locations returns the model's master locations in model order.
func (m *Model) Locations() []coords.Location {
	locs := make([]coords.Location, len(m.locations))
	copy(locs, m.locations)
	return locs
}

// Deltas decomposes point sequences sampled at master locations into one
// delta sequence per region, in model order. Every input location must be
// supported; sequences must have equal length. Masters without a sample are
// skipped, i.e. sparse input decomposes over the sub-model of sampled masters.
func (m *Model) Deltas(seqs []PointSeq) ([]SeqDeltas, error) {
	if len(seqs) == 0 {
		return nil, nil
	}
	width := len(seqs[0].Values)
	values := make(map[string][]float64, len(seqs))
	for _, seq := range seqs {
		if len(seq.Values) != width {
			return nil, core.Error(core.EINVALID, "point sequences of unequal length: %d vs %d",
				width, len(seq.Values))
		}
		loc := padToAxes(seq.Loc, m.axisOrder)
		if _, ok := m.index[loc.String()]; !ok {
			return nil, &UnsupportedLocationError{Loc: seq.Loc}
		}
		values[loc.String()] = seq.Values
	}
	var deltas []SeqDeltas
	var seated []int // indices into m.locations with computed deltas
	for i, loc := range m.locations {
		sample, ok := values[loc.String()]
		if !ok {
			continue
		}
		delta := make([]float64, width)
		copy(delta, sample)
		for di, j := range seated {
			scalar := m.regions[j].ScalarAt(loc)
			if scalar == 0 {
				continue
			}
			for k := 0; k < width; k++ {
				delta[k] -= scalar * deltas[di].Values[k]
			}
		}
		deltas = append(deltas, SeqDeltas{Region: m.regions[i], Values: delta})
		seated = append(seated, i)
	}
	return deltas, nil
}
