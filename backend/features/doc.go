/*
Package features compiles OpenType feature source into binary layout tables.

This is the feature-compilation work unit of the backend: it synthesizes a
variable kern feature from the kerning IR, merges it with authored feature
source, and hands the combined text to an external feature compiler, together
with a variation-info callback that resolves multi-location metrics into a
default value plus per-region deltas. The compiler's result splits into up to
three binary table fragments (GPOS, GSUB, GDEF), written into shared build
state as one atomic group.

The feature-language grammar and GPOS/GSUB/GDEF table layout live in the
external compiler; only the contract to it is defined here.

# Status

Work in progress.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package features

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontc.backend'
func tracer() tracing.Trace {
	return tracing.Select("fontc.backend")
}
