package orchestration

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/felipesanches/fontc/ir"
)

// Slot is a typed, append-only build-state cell. It is written at most once
// per build generation; a second write panics, since only a scheduler bug or
// a misbehaving work unit can cause one.
type Slot[T any] struct {
	id    WorkId
	mu    sync.Mutex
	value T
	set   bool
}

// NewSlot creates an empty slot for a build-state id.
func NewSlot[T any](id WorkId) *Slot[T] {
	return &Slot[T]{id: id}
}

// Id returns the build-state id of the slot.
func (s *Slot[T]) Id() WorkId {
	return s.id
}

// Set finalizes the slot's value. Writing a finalized slot panics.
func (s *Slot[T]) Set(value T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.set {
		panic(fmt.Sprintf("slot %s written twice", s.id))
	}
	s.value = value
	s.set = true
	tracer().Debugf("slot %s finalized", s.id)
}

// Get returns the slot's value, and whether it has been finalized.
func (s *Slot[T]) Get() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, s.set
}

// MustGet returns the slot's value and panics if the slot is not finalized,
// i.e. the scheduler violated the declared read dependencies.
func (s *Slot[T]) MustGet() T {
	v, ok := s.Get()
	if !ok {
		panic(fmt.Sprintf("slot %s read before being finalized", s.id))
	}
	return v
}

// IsSet tells if the slot has been finalized.
func (s *Slot[T]) IsSet() bool {
	_, ok := s.Get()
	return ok
}

// Context is the shared build state a backend work unit sees: the frontend IR
// slots it may read and the binary table slots it may produce, plus build
// flags and the directories build artifacts go to.
type Context struct {
	Flags    Flags
	BuildDir string

	// frontend IR, read-only for backend work
	StaticMetadata *Slot[*ir.StaticMetadata]
	GlyphOrder     *Slot[*ir.GlyphOrder]
	Kerning        *Slot[*ir.Kerning]
	Features       *Slot[ir.Features]

	// backend outputs
	Gpos *Slot[[]byte]
	Gsub *Slot[[]byte]
	Gdef *Slot[[]byte]
}

// NewContext creates build state for one build generation. Artifacts (debug
// output, completion markers) go beneath buildDir.
func NewContext(buildDir string, flags Flags) *Context {
	return &Context{
		Flags:          flags,
		BuildDir:       buildDir,
		StaticMetadata: NewSlot[*ir.StaticMetadata](WorkStaticMetadata),
		GlyphOrder:     NewSlot[*ir.GlyphOrder](WorkGlyphOrder),
		Kerning:        NewSlot[*ir.Kerning](WorkKerning),
		Features:       NewSlot[ir.Features](WorkFeatures),
		Gpos:           NewSlot[[]byte](WorkGpos),
		Gsub:           NewSlot[[]byte](WorkGsub),
		Gdef:           NewSlot[[]byte](WorkGdef),
	}
}

// DebugDir returns the directory debug artifacts are written to.
func (ctx *Context) DebugDir() string {
	return filepath.Join(ctx.BuildDir, "debug")
}

// DebugFeatureFile returns the path the merged feature source is dumped to
// for postmortem inspection.
func (ctx *Context) DebugFeatureFile() string {
	return filepath.Join(ctx.DebugDir(), "features.fea")
}

// MarkerFile returns the path of the completion marker for a work id. The
// marker's existence means "this work ran during the current generation",
// whether or not it produced output.
func (ctx *Context) MarkerFile(id WorkId) string {
	return filepath.Join(ctx.BuildDir, id.String()+".marker")
}
