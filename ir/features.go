package ir

import (
	"os"

	"github.com/felipesanches/fontc/core"
)

// FeaturesKind discriminates the Features variants.
type FeaturesKind int

const (
	// FeaturesEmpty means no authored feature source exists.
	FeaturesEmpty FeaturesKind = iota
	// FeaturesFile means feature source lives in a file on disk.
	FeaturesFile
	// FeaturesMemory means feature source is held in memory, e.g. because
	// generated text was merged into it.
	FeaturesMemory
)

// Features is the authored feature source of a font: a tagged variant of
// Empty, File (path plus optional include directory) or Memory (text plus
// optional include directory). Exactly one variant is active.
type Features struct {
	kind       FeaturesKind
	path       string
	content    string
	includeDir string
}

// EmptyFeatures creates the Empty variant.
func EmptyFeatures() Features {
	return Features{kind: FeaturesEmpty}
}

// FileFeatures creates the File variant. includeDir may be empty.
func FileFeatures(path string, includeDir string) Features {
	return Features{kind: FeaturesFile, path: path, includeDir: includeDir}
}

// MemoryFeatures creates the Memory variant. includeDir may be empty.
func MemoryFeatures(content string, includeDir string) Features {
	return Features{kind: FeaturesMemory, content: content, includeDir: includeDir}
}

// Kind returns the active variant.
func (f Features) Kind() FeaturesKind {
	return f.kind
}

// IsEmpty tells if no feature source exists.
func (f Features) IsEmpty() bool {
	return f.kind == FeaturesEmpty
}

// Path returns the source file path of the File variant.
func (f Features) Path() string {
	return f.path
}

// Content returns the in-memory text of the Memory variant.
func (f Features) Content() string {
	return f.content
}

// IncludeDir returns the include directory, if one is configured.
func (f Features) IncludeDir() string {
	return f.includeDir
}

// MergeKerning appends generated kerning feature text to authored features,
// always yielding the Memory variant. A File variant is read to text first;
// its include directory carries over. Pure: f itself is not modified.
func MergeKerning(f Features, kernFea string) (Features, error) {
	switch f.kind {
	case FeaturesEmpty:
		return MemoryFeatures(kernFea, ""), nil
	case FeaturesMemory:
		return MemoryFeatures(f.content+kernFea, f.includeDir), nil
	case FeaturesFile:
		content, err := os.ReadFile(f.path)
		if err != nil {
			return Features{}, core.WrapError(err, core.EIO, "cannot read feature file %s", f.path)
		}
		return MemoryFeatures(string(content)+kernFea, f.includeDir), nil
	}
	return Features{}, core.Error(core.EINTERNAL, "unknown features variant %d", f.kind)
}
