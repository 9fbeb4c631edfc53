// Package fs provides file system adapters for walking and fingerprinting stylesheet sources.
package fs

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/swatch/internal/core/domain"
	"go.trai.ch/zerr"
)

// maxLinkDepth bounds how many symlinked directories are followed in a row.
const maxLinkDepth = 8

// DefaultIgnores are directory names that never contribute to a fingerprint.
var DefaultIgnores = []string{".git", ".jj", domain.SwatchDirName}

// Walker provides file walking functionality.
type Walker struct {
	ignores []string
}

// NewWalker creates a new Walker skipping the given directory names.
func NewWalker(ignores ...string) *Walker {
	if len(ignores) == 0 {
		ignores = DefaultIgnores
	}
	return &Walker{ignores: slices.Clone(ignores)}
}

// Walk yields every regular file under root in lexical order.
// Symlinked directories, root included, are followed up to a fixed depth and
// their files are reported below the link path.
// A branch that cannot be read yields its path with a non-nil error and
// the walk continues with the next sibling.
func (w *Walker) Walk(root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		w.walk(root, 0, yield)
	}
}

// walk walks the directory behind dir, which may be a symlink, and reports
// every path relative to dir.
func (w *Walker) walk(dir string, depth int, yield func(string, error) bool) bool {
	target, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return yield(dir, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", dir))
	}

	stopped := false
	_ = filepath.WalkDir(target, func(resolved string, d fs.DirEntry, err error) error {
		path := rebase(dir, target, resolved)
		if err != nil {
			if !yield(path, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", path)) {
				stopped = true
				return filepath.SkipAll
			}
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if resolved != target && w.ignored(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if d.Type()&fs.ModeSymlink != 0 {
			info, statErr := os.Stat(resolved)
			if statErr != nil {
				return w.yieldErr(path, zerr.Wrap(statErr, domain.ErrPathStatFailed.Error()), yield, &stopped)
			}
			if info.IsDir() {
				if w.ignored(d.Name()) {
					return nil
				}
				if depth >= maxLinkDepth {
					return w.yieldErr(path, zerr.With(domain.ErrNotADirectory, "depth", depth), yield, &stopped)
				}
				if !w.walk(path, depth+1, yield) {
					stopped = true
					return filepath.SkipAll
				}
				return nil
			}
		}

		if !yield(path, nil) {
			stopped = true
			return filepath.SkipAll
		}
		return nil
	})
	return !stopped
}

// rebase maps resolved, a path below target, onto the same position below dir.
func rebase(dir, target, resolved string) string {
	rel, err := filepath.Rel(target, resolved)
	if err != nil {
		return resolved
	}
	return filepath.Join(dir, rel)
}

func (w *Walker) yieldErr(path string, err error, yield func(string, error) bool, stopped *bool) error {
	if !yield(path, zerr.With(err, "path", path)) {
		*stopped = true
		return filepath.SkipAll
	}
	return nil
}

func (w *Walker) ignored(name string) bool {
	for _, pattern := range w.ignores {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}
