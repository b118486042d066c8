package features

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// SourceResolver resolves a relative path to feature-source text. It is a
// capability handed to the external compiler; the compiler asks it for the
// root source and for every include it encounters.
type SourceResolver interface {
	GetContents(relPath string) (string, error)
}

// SourceLoadError wraps any failure to resolve a source path.
type SourceLoadError struct {
	Path string
	Err  error
}

func (e *SourceLoadError) Error() string {
	return fmt.Sprintf("cannot load source %q: %v", e.Path, e.Err)
}

func (e *SourceLoadError) Unwrap() error {
	return e.Err
}

// ErrNoIncludePath reports an include request on a resolver that has no
// include directory configured.
var ErrNoIncludePath = errors.New("no include path available")

// FileExpectedError reports an include path that resolved to something other
// than a regular file.
type FileExpectedError struct {
	Path string
}

func (e *FileExpectedError) Error() string {
	return fmt.Sprintf("expected a file at %s", e.Path)
}

// FilesystemResolver resolves every path against a root directory on disk.
type FilesystemResolver struct {
	Root string
}

// GetContents resolves relPath beneath the root directory and reads it.
func (r *FilesystemResolver) GetContents(relPath string) (string, error) {
	return readBeneath(r.Root, relPath)
}

// InMemoryResolver serves one synthetic path from memory and delegates every
// other path to an include directory on disk. The feature source might be
// generated in memory, such as to inject synthesized kerning, while compiling
// a disk-based source with a well defined include path.
type InMemoryResolver struct {
	// ContentPath is the sentinel root identifier, usually "".
	ContentPath string
	// Content is returned verbatim for ContentPath.
	Content string
	// IncludeDir optionally backs every other path. Empty means includes fail.
	IncludeDir string
}

// GetContents returns the in-memory content for the sentinel path and
// resolves every other path against the include directory. No caching: only
// the initial content lives in memory, every other read goes to storage.
func (r *InMemoryResolver) GetContents(relPath string) (string, error) {
	if relPath == r.ContentPath {
		return r.Content, nil
	}
	if r.IncludeDir == "" {
		return "", &SourceLoadError{Path: relPath, Err: ErrNoIncludePath}
	}
	return readBeneath(r.IncludeDir, relPath)
}

// readBeneath joins a relative path to a directory, canonicalizes it, and
// reads the resulting regular file.
func readBeneath(dir, relPath string) (string, error) {
	joined := filepath.Join(dir, relPath)
	path, err := filepath.Abs(joined)
	if err != nil {
		return "", &SourceLoadError{Path: relPath, Err: err}
	}
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", &SourceLoadError{Path: relPath, Err: &FileExpectedError{Path: path}}
	}
	tracer().Debugf("resolved %q to %q", relPath, path)
	content, err := os.ReadFile(path)
	if err != nil {
		return "", &SourceLoadError{Path: relPath, Err: err}
	}
	return string(content), nil
}
