package pipeline_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/swatch/internal/core/domain"
	"go.trai.ch/swatch/internal/core/ports/mocks"
	"go.trai.ch/swatch/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
)

const baseURL = "https://example.com/wp-content"

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
		require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	}
}

func newSourceRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"themes/site/scss/main.scss":       "@import 'partial';\nbody { color: $primary; }\n",
		"themes/site/scss/_partial.scss":   "$primary: red !default;\n",
		"themes/site/scss/editor.scss.php": "p { margin: 0; }\n",
		"themes/site/scss/..scss":          "",
		"themes/site/scss/dir.scss/keep":   "",
	})
	return root
}

func TestResolver_Resolve_Paths(t *testing.T) {
	root := newSourceRoot(t)
	cfg := &domain.Config{Source: domain.SourceConfig{Root: root, BaseURL: baseURL + "/"}}
	resolver := pipeline.NewResolver(cfg, nil, nil)
	sourceDir := filepath.Join(root, "themes", "site", "scss")

	tests := []struct {
		name       string
		request    string
		sourceFile string
		handle     string
	}{
		{
			name:       "base url with query",
			request:    baseURL + "/themes/site/scss/main.scss?ver=6.4",
			sourceFile: "main.scss",
			handle:     "themes-site-scss-main",
		},
		{
			name:       "fragment",
			request:    baseURL + "/themes/site/scss/main.scss#top",
			sourceFile: "main.scss",
			handle:     "themes-site-scss-main",
		},
		{
			name:       "root relative path",
			request:    "/themes/site/scss/main.scss",
			sourceFile: "main.scss",
			handle:     "themes-site-scss-main",
		},
		{
			name:       "relative path",
			request:    "themes/site/scss/main.scss",
			sourceFile: "main.scss",
			handle:     "themes-site-scss-main",
		},
		{
			name:       "php suffix",
			request:    baseURL + "/themes/site/scss/editor.scss.php?ver=1",
			sourceFile: "editor.scss.php",
			handle:     "themes-site-scss-editorphp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cc, err := resolver.Resolve(tt.request, domain.Handle{})
			require.NoError(t, err)

			assert.Equal(t, tt.request, cc.Request)
			assert.Equal(t, sourceDir, cc.SourceDir)
			assert.Equal(t, filepath.Join(sourceDir, tt.sourceFile), cc.SourceFile)
			assert.Equal(t, tt.handle, cc.Handle.String())
		})
	}
}

func TestResolver_Resolve_ExplicitHandle(t *testing.T) {
	root := newSourceRoot(t)
	resolver := pipeline.NewResolver(&domain.Config{Source: domain.SourceConfig{Root: root}}, nil, nil)

	cc, err := resolver.Resolve("/themes/site/scss/main.scss", domain.MustHandle("theme-style"))
	require.NoError(t, err)
	assert.Equal(t, "theme-style", cc.Handle.String())
}

func TestResolver_Resolve_Unresolvable(t *testing.T) {
	root := newSourceRoot(t)
	cfg := &domain.Config{Source: domain.SourceConfig{Root: root, BaseURL: baseURL}}
	resolver := pipeline.NewResolver(cfg, nil, nil)

	tests := []struct {
		name    string
		request string
	}{
		{name: "missing source", request: baseURL + "/themes/site/scss/missing.scss"},
		{name: "escapes root", request: baseURL + "/../../etc/passwd.scss"},
		{name: "escapes root relative", request: "themes/../../outside.scss"},
		{name: "foreign host", request: "https://cdn.example.org/themes/site/scss/main.scss"},
		{name: "base url prefix only", request: baseURL + "-other/themes/site/scss/main.scss"},
		{name: "not a stylesheet", request: baseURL + "/themes/site/scss/_partial.css"},
		{name: "directory", request: baseURL + "/themes/site/scss/dir.scss"},
		{name: "empty", request: ""},
		{name: "handle sanitizes to empty", request: baseURL + "/themes/site/scss/..scss"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cc, err := resolver.Resolve(tt.request, domain.Handle{})
			require.Error(t, err)
			assert.Nil(t, cc)
			assert.True(t, errors.Is(err, domain.ErrUnresolvableSource))
		})
	}
}

func TestResolver_Resolve_VariableMergeOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	root := newSourceRoot(t)
	cfg := &domain.Config{
		Source:   domain.SourceConfig{Root: root},
		AssetURL: "https://example.com/wp-content/themes/site",
		Variables: map[string]domain.Value{
			"primary": domain.Raw("red"),
			"accent":  domain.Raw("black"),
			"gap":     domain.Raw("2px"),
		},
	}

	registry := pipeline.NewRegistry()
	registry.AddVariable("accent", domain.Raw("white"))

	hook := mocks.NewMockVariableHook(ctrl)
	hook.EXPECT().
		Variables(domain.MustHandle("themes-site-scss-main"), gomock.Any()).
		DoAndReturn(func(_ domain.Handle, base domain.Variables) (map[string]domain.Value, error) {
			assert.Equal(t, "white", base["accent"], "hook sees the base variables")
			return map[string]domain.Value{
				"primary":                 domain.Raw("green"),
				pipeline.ThemeURLVariable: domain.Raw("ignored"),
				"palette": domain.Map(
					domain.MapEntry{Key: "brand", Value: domain.Raw("#0af")},
					domain.MapEntry{Key: "label", Value: domain.String("a, b")},
				),
			}, nil
		})

	cc, err := pipeline.NewResolver(cfg, registry, hook).Resolve("/themes/site/scss/main.scss", domain.Handle{})
	require.NoError(t, err)

	assert.Equal(t, domain.Variables{
		"primary":                 "green",
		"accent":                  "white",
		"gap":                     "2px",
		"palette":                 `(brand: #0af, label: "a, b")`,
		pipeline.ThemeURLVariable: `"https://example.com/wp-content/themes/site"`,
	}, cc.Variables)
}

func TestResolver_Resolve_HookError(t *testing.T) {
	ctrl := gomock.NewController(t)
	hook := mocks.NewMockVariableHook(ctrl)
	hook.EXPECT().Variables(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

	resolver := pipeline.NewResolver(&domain.Config{Source: domain.SourceConfig{Root: newSourceRoot(t)}}, nil, hook)

	_, err := resolver.Resolve("/themes/site/scss/main.scss", domain.Handle{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnresolvableSource))
	assert.ErrorContains(t, err, "boom")
}

func TestResolver_Resolve_SnapshotsRegistry(t *testing.T) {
	root := newSourceRoot(t)
	registry := pipeline.NewRegistry()
	registry.Register("double", func(args []string) (string, error) { return args[0], nil })
	registry.Register("gone", func([]string) (string, error) { return "", nil })
	registry.Unregister("gone")

	resolver := pipeline.NewResolver(&domain.Config{
		Source: domain.SourceConfig{Root: root, ImportPaths: []string{"/usr/share/scss"}},
	}, registry, nil)

	cc, err := resolver.Resolve("/themes/site/scss/main.scss", domain.Handle{})
	require.NoError(t, err)

	registry.Register("late", func([]string) (string, error) { return "", nil })

	assert.NotContains(t, cc.Functions, "late")
	assert.Contains(t, cc.EffectiveFunctions(), "double")
	assert.NotContains(t, cc.EffectiveFunctions(), "gone")
	assert.Equal(t, []string{cc.SourceDir, "/usr/share/scss"}, cc.SearchPaths())
}
