/*
Package ir holds the font intermediate representation this compiler backend
consumes.

Format-specific importers (UFO, Glyphs, …) produce the IR once per build
generation: static metadata (axes, units-per-em, the variation model), the
glyph order, grouped kerning, and authored feature source. All of it is
read-only for backend work units.

# Status

Work in progress.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package ir

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontc.ir'
func tracer() tracing.Trace {
	return tracing.Select("fontc.ir")
}
