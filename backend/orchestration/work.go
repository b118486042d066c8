package orchestration

// WorkId identifies a unit of work, or an output slot produced by one, within
// a build generation.
type WorkId int

const (
	// frontend outputs, inputs to the backend
	WorkStaticMetadata WorkId = iota
	WorkGlyphOrder
	WorkKerning
	WorkFeatures
	// backend
	WorkFeatureCompile
	WorkGpos
	WorkGsub
	WorkGdef
)

func (id WorkId) String() string {
	switch id {
	case WorkStaticMetadata:
		return "static-metadata"
	case WorkGlyphOrder:
		return "glyph-order"
	case WorkKerning:
		return "kerning"
	case WorkFeatures:
		return "features"
	case WorkFeatureCompile:
		return "feature-compile"
	case WorkGpos:
		return "gpos"
	case WorkGsub:
		return "gsub"
	case WorkGdef:
		return "gdef"
	}
	return "unknown"
}

// Access is a declared set of slots a work unit touches.
type Access map[WorkId]bool

// AccessSet creates an access declaration from slot identifiers.
func AccessSet(ids ...WorkId) Access {
	acc := make(Access, len(ids))
	for _, id := range ids {
		acc[id] = true
	}
	return acc
}

// Contains tells if the declaration covers a slot.
func (acc Access) Contains(id WorkId) bool {
	return acc[id]
}

// Work is one unit of build work. The scheduler runs Exec synchronously once
// all slots in ReadAccess are available; when Exec returns without error, the
// unit's own id and every id in AlsoCompletes count as completed together.
type Work interface {
	Id() WorkId
	ReadAccess() Access
	AlsoCompletes() []WorkId
	Exec(ctx *Context) error
}
