package pipeline

import (
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/swatch/internal/core/domain"
	"go.trai.ch/swatch/internal/core/ports"
	"go.trai.ch/zerr"
)

// ThemeURLVariable is the built-in variable holding the asset base URL.
const ThemeURLVariable = "theme-url"

// Resolver maps stylesheet requests onto CompilationContexts.
type Resolver struct {
	root        string
	baseURL     string
	importPaths []string
	assetURL    string
	themeVars   map[string]domain.Value
	registry    *Registry
	hook        ports.VariableHook
}

// NewResolver creates a Resolver for cfg. registry and hook may be nil.
func NewResolver(cfg *domain.Config, registry *Registry, hook ports.VariableHook) *Resolver {
	root := cfg.Source.Root
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	if registry == nil {
		registry = NewRegistry()
	}
	return &Resolver{
		root:        root,
		baseURL:     strings.TrimSuffix(cfg.Source.BaseURL, "/"),
		importPaths: cfg.Source.ImportPaths,
		assetURL:    cfg.AssetURL,
		themeVars:   cfg.Variables,
		registry:    registry,
		hook:        hook,
	}
}

// Resolve builds the CompilationContext for request. A zero handle is
// derived from the source path below the root. Every failure is reported as
// domain.ErrUnresolvableSource.
func (r *Resolver) Resolve(request string, handle domain.Handle) (*domain.CompilationContext, error) {
	rel, err := r.relativePath(request)
	if err != nil {
		return nil, unresolvable(err, request)
	}

	sourceFile := filepath.Join(r.root, filepath.FromSlash(rel))
	info, err := os.Stat(sourceFile)
	if err != nil {
		return nil, unresolvable(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), request)
	}
	if info.IsDir() {
		return nil, unresolvable(zerr.With(zerr.New("source is a directory"), "path", sourceFile), request)
	}

	if handle.IsZero() {
		handle, err = domain.HandleFromPath(rel)
		if err != nil {
			return nil, unresolvable(err, request)
		}
	}

	functions, unregistered, registered := r.registry.Snapshot()
	cc := &domain.CompilationContext{
		Request:      request,
		SourceDir:    filepath.Dir(sourceFile),
		SourceFile:   sourceFile,
		Handle:       handle,
		Variables:    domain.Variables{},
		Functions:    functions,
		Unregistered: unregistered,
		ImportPaths:  r.importPaths,
	}

	if err := r.mergeVariables(cc, registered); err != nil {
		return nil, unresolvable(err, request)
	}
	return cc, nil
}

// mergeVariables applies the base variables, then the hook overrides, then
// the built-in defaults. Later writes win.
func (r *Resolver) mergeVariables(cc *domain.CompilationContext, registered map[string]domain.Value) error {
	cc.Variables.MergeValues(r.themeVars)
	cc.Variables.MergeValues(registered)

	if r.hook != nil {
		overrides, err := r.hook.Variables(cc.Handle, cc.Variables.Clone())
		if err != nil {
			return zerr.With(zerr.Wrap(err, "variable hook failed"), "handle", cc.Handle.String())
		}
		cc.Variables.MergeValues(overrides)
	}

	cc.Variables[ThemeURLVariable] = domain.String(r.assetURL).Literal()
	return nil
}

// relativePath strips the query, fragment and base URL from request and
// returns a slash separated path below the source root.
func (r *Resolver) relativePath(request string) (string, error) {
	raw, _, _ := strings.Cut(request, "#")
	raw, _, _ = strings.Cut(raw, "?")

	var p string
	switch rest, ok := cutBase(raw, r.baseURL); {
	case ok:
		unescaped, err := url.PathUnescape(rest)
		if err != nil {
			return "", zerr.Wrap(err, "invalid request path")
		}
		p = unescaped
	default:
		u, err := url.Parse(raw)
		if err != nil {
			return "", zerr.Wrap(err, "invalid request URL")
		}
		if u.Scheme != "" || u.Host != "" {
			return "", zerr.With(zerr.New("request is outside the source base URL"), "base_url", r.baseURL)
		}
		p = u.Path
	}

	if !IsStylesheet(p) {
		return "", zerr.New("request is not a stylesheet source")
	}

	rel := strings.TrimLeft(p, "/")
	if !filepath.IsLocal(filepath.FromSlash(rel)) {
		return "", zerr.New("request escapes the source root")
	}
	return rel, nil
}

func cutBase(raw, base string) (string, bool) {
	if base == "" {
		return "", false
	}
	rest, ok := strings.CutPrefix(raw, base)
	if !ok || (rest != "" && rest[0] != '/') {
		return "", false
	}
	return rest, true
}

func unresolvable(err error, request string) error {
	return errors.Join(domain.ErrUnresolvableSource, zerr.With(err, "request", request))
}
