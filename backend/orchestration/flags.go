package orchestration

import (
	"github.com/npillmayer/schuko/gconf"
)

// Flags are the build-wide switches backend work units honor.
type Flags struct {
	// EmitDebug dumps the merged feature source to the debug directory even
	// when compilation succeeds.
	EmitDebug bool
	// EmitIR writes per-work completion markers, letting a later build phase
	// distinguish "ran and produced nothing" from "never ran".
	EmitIR bool
}

// FlagsFromConfig reads the build flags from the global configuration.
// Configuration keys: 'emit-debug', 'emit-ir'.
func FlagsFromConfig() Flags {
	flags := Flags{
		EmitDebug: gconf.GetBool("emit-debug"),
		EmitIR:    gconf.GetBool("emit-ir"),
	}
	tracer().Debugf("build flags: emit-debug=%v emit-ir=%v", flags.EmitDebug, flags.EmitIR)
	return flags
}
