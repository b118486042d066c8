/*
Package orchestration defines the contract between the incremental build
scheduler and backend work units.

A work unit declares, before it runs, the shared build-state entries it reads
and the outputs it produces. Outputs listed as also-completing are finished
atomically with the unit: the scheduler must not run any of their consumers
before the unit returns. Build state itself is a set of typed, append-only
slots: each is written at most once per build generation, and a second write
is a programming error, not a runtime condition.

The scheduler lives outside this module; it guarantees a unit is not invoked
before its declared reads are available and that no two units write the same
slot.

# Status

Work in progress.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package orchestration

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontc.backend'
func tracer() tracing.Trace {
	return tracing.Select("fontc.backend")
}
