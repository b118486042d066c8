/*
Package coords models the coordinate spaces of a variable font's design space.

A variable font axis knows three coordinate systems: user coordinates, as
presented to font users (e.g. weight 400), design coordinates, as used by
type designers for interpolation masters, and normalized coordinates in the
range [-1, 1], as stored in the binary font. Package coords provides distinct
types for all three, a converter between them, and locations, i.e. points in
design space addressed per-axis by normalized coordinates.

Converters and locations are persisted across build generations; their
serialized representations live in this package as well.

# Status

Work in progress.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package coords

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontc.coords'
func tracer() tracing.Trace {
	return tracing.Select("fontc.coords")
}
