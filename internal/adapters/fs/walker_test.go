package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/swatch/internal/adapters/fs"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
}

func collect(t *testing.T, w *fs.Walker, root string) []string {
	t.Helper()
	var files []string
	for path, err := range w.Walk(root) {
		require.NoError(t, err)
		rel, relErr := filepath.Rel(root, path)
		require.NoError(t, relErr)
		files = append(files, filepath.ToSlash(rel))
	}
	return files
}

func TestWalker_Walk(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, map[string]string{
		".git/config":            "git config",
		".swatch/cache/main.css": "body{}",
		"partials/_b.scss":       "b",
		"partials/_a.scss":       "a",
		"main.scss":              "@import 'a';",
		"ignored/file":           "ignored",
	})

	files := collect(t, fs.NewWalker(".git", ".swatch", "ignored"), tmpDir)

	assert.Equal(t, []string{"main.scss", "partials/_a.scss", "partials/_b.scss"}, files)
}

func TestWalker_DefaultIgnores(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, map[string]string{
		".jj/store":              "x",
		".swatch/cache/main.css": "body{}",
		"main.scss":              "a{}",
	})

	assert.Equal(t, []string{"main.scss"}, collect(t, fs.NewWalker(), tmpDir))
}

func TestWalker_FollowsSymlinkedDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	shared := t.TempDir()
	writeTree(t, shared, map[string]string{"_colors.scss": "$c: red;"})
	writeTree(t, tmpDir, map[string]string{"main.scss": "a{}"})
	if err := os.Symlink(shared, filepath.Join(tmpDir, "shared")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	assert.Equal(t, []string{"main.scss", "shared/_colors.scss"}, collect(t, fs.NewWalker(), tmpDir))
}

func TestWalker_BrokenSymlinkYieldsError(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, map[string]string{"main.scss": "a{}"})
	if err := os.Symlink(filepath.Join(tmpDir, "missing"), filepath.Join(tmpDir, "dangling")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	var errs int
	var files int
	for _, err := range fs.NewWalker().Walk(tmpDir) {
		if err != nil {
			errs++
			continue
		}
		files++
	}

	assert.Equal(t, 1, errs)
	assert.Equal(t, 1, files)
}

func TestWalker_EarlyBreak(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, map[string]string{"a.scss": "", "b.scss": "", "c.scss": ""})

	count := 0
	for range fs.NewWalker().Walk(tmpDir) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestWalker_SymlinkedRoot(t *testing.T) {
	target := t.TempDir()
	writeTree(t, target, map[string]string{"main.scss": "a{}", "partials/_a.scss": "a"})
	link := filepath.Join(t.TempDir(), "site")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	assert.Equal(t, []string{"main.scss", "partials/_a.scss"}, collect(t, fs.NewWalker(), link))
}

func TestWalker_SymlinkCycleYieldsError(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, map[string]string{"main.scss": "a{}"})
	if err := os.Symlink(tmpDir, filepath.Join(tmpDir, "loop")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	var errs int
	for _, err := range fs.NewWalker().Walk(tmpDir) {
		if err != nil {
			errs++
		}
	}
	assert.Equal(t, 1, errs, "the cycle is cut at the depth limit")
}
