/*
Package variations decomposes a variable font's design space into
interpolation regions.

A variation model is built over the set of locations interpolation masters sit
at. Every location owns one region, a per-axis "tent" of influence, and values
sampled at the master locations decompose into one delta per region. Summing
the deltas, weighted by each region's scalar at a target location, reproduces
the sampled value at that location. This is the decomposition the binary
variation tables (ItemVariationStore et al.) are built on.

The model mirrors the fonttools VariationModel semantics: the default master
comes first, regions of later masters are narrowed against earlier ones, and
deltas are computed master by master.

# Status

Work in progress.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package variations

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontc.variations'
func tracer() tracing.Trace {
	return tracing.Select("fontc.variations")
}
