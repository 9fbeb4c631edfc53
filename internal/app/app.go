// Package app implements the application layer for swatch.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"go.trai.ch/swatch/internal/adapters/watcher" //nolint:depguard // Debouncing is shared with the adapter
	"go.trai.ch/swatch/internal/core/domain"
	"go.trai.ch/swatch/internal/core/ports"
	"go.trai.ch/swatch/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader  ports.ConfigLoader
	logger        ports.Logger
	fingerprinter ports.Fingerprinter
	signer        ports.StatSigner
	stores        ports.StoreFactory
	compilers     ports.CompilerFactory
	telemetry     ports.Telemetry
	watcher       ports.Watcher
	registry      *pipeline.Registry
	out           io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	fingerprinter ports.Fingerprinter,
	signer ports.StatSigner,
	stores ports.StoreFactory,
	compilers ports.CompilerFactory,
	telemetry ports.Telemetry,
	w ports.Watcher,
	registry *pipeline.Registry,
) *App {
	return &App{
		configLoader:  loader,
		logger:        log,
		fingerprinter: fingerprinter,
		signer:        signer,
		stores:        stores,
		compilers:     compilers,
		telemetry:     telemetry,
		watcher:       w,
		registry:      registry,
		out:           os.Stdout,
	}
}

// WithOutput redirects command results, which go to stdout by default.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// SetLogging switches the logger to JSON output and debug verbosity if it
// supports them.
func (a *App) SetLogging(json, verbose bool) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(json)
	}
	if l, ok := a.logger.(interface{ SetVerbose(bool) }); ok {
		l.SetVerbose(verbose)
	}
}

// CommonOptions are shared by every command that runs the pipeline.
type CommonOptions struct {
	// Config is the path of the configuration file.
	Config string
	// Vars are extra base variables, passed to the compiler verbatim.
	Vars map[string]string
}

// ResolveOptions configuration for the Resolve method.
type ResolveOptions struct {
	CommonOptions
	Handle string
	Force  bool
}

// Resolve compiles the stylesheet behind url if needed and prints its artifact URL.
func (a *App) Resolve(ctx context.Context, url string, opts ResolveOptions) error {
	var handle domain.Handle
	if opts.Handle != "" {
		h, err := domain.NewHandle(opts.Handle)
		if err != nil {
			return err
		}
		handle = h
	}

	p, _, err := a.pipeline(opts.CommonOptions)
	if err != nil {
		return err
	}
	defer a.closeTelemetry()

	artifact, err := p.Resolve(ctx, pipeline.Request{URL: url, Handle: handle, Force: opts.Force})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, artifact.URL)
	return err
}

// ListOptions configuration for the ResolveList method.
type ListOptions struct {
	CommonOptions
	Separator string
}

// ResolveList filters a delimited list of stylesheet URLs and prints the result.
func (a *App) ResolveList(ctx context.Context, list string, opts ListOptions) error {
	p, _, err := a.pipeline(opts.CommonOptions)
	if err != nil {
		return err
	}
	defer a.closeTelemetry()

	out, err := p.ResolveList(ctx, list, opts.Separator)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, out)
	return err
}

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	CommonOptions
	// Debounce is the quiet period before a burst of changes triggers a rebuild.
	Debounce time.Duration
}

// Watch resolves urls once and again after every burst of source changes
// until ctx is done. Failed builds are logged and do not stop the watch.
// Changes still inside the debounce window when the event stream ends are
// dropped, and a running rebuild finishes before Watch returns.
func (a *App) Watch(ctx context.Context, urls []string, opts WatchOptions) error {
	if len(urls) == 0 {
		return domain.ErrNoRequests
	}

	p, cfg, err := a.pipeline(opts.CommonOptions)
	if err != nil {
		return err
	}
	defer a.closeTelemetry()

	rebuild := func([]string) {
		for _, url := range urls {
			if _, err := p.Resolve(ctx, pipeline.Request{URL: url}); err != nil && ctx.Err() == nil {
				a.logger.Error(err)
			}
		}
	}
	rebuild(nil)

	roots := append([]string{cfg.Source.Root}, cfg.Source.ImportPaths...)
	if err := a.watcher.Start(ctx, slices.Compact(roots)...); err != nil {
		return err
	}
	defer func() { _ = a.watcher.Stop() }()

	window := opts.Debounce
	if window <= 0 {
		window = watcher.DefaultDebounceWindow
	}
	debouncer := watcher.NewDebouncer(window, rebuild)
	defer debouncer.Stop()

	a.logger.Info(fmt.Sprintf("watching %s", cfg.Source.Root))
	for event := range a.watcher.Events() {
		debouncer.Add(event.Path)
	}
	return nil
}

// Clean removes every compiled output and fingerprint record.
func (a *App) Clean(_ context.Context, configPath string) error {
	cfg, err := a.loadConfig(configPath)
	if err != nil {
		return err
	}

	store, err := a.stores(cfg.Cache, nil)
	if err != nil {
		return errors.Join(domain.ErrIO, err)
	}

	a.logger.Info("removing compiled stylesheets...")
	if err := store.Clear(); err != nil {
		return errors.Join(domain.ErrIO, err)
	}
	a.logger.Info("removed compiled stylesheets")
	return nil
}

func (a *App) loadConfig(path string) (*domain.Config, error) {
	if path == "" {
		path = domain.ConfigFileName
	}
	cfg, err := a.configLoader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

func (a *App) pipeline(opts CommonOptions) (*pipeline.Pipeline, *domain.Config, error) {
	cfg, err := a.loadConfig(opts.Config)
	if err != nil {
		return nil, nil, err
	}
	for name, value := range opts.Vars {
		a.registry.AddVariable(name, domain.Raw(value))
	}

	store, err := a.stores(cfg.Cache, nil)
	if err != nil {
		return nil, nil, errors.Join(domain.ErrIO, err)
	}

	compiler, err := a.compilers(cfg.Compiler)
	if err != nil {
		return nil, nil, err
	}

	return pipeline.New(cfg, pipeline.Deps{
		Store:         store,
		Compiler:      compiler,
		Fingerprinter: a.fingerprinter,
		StatSigner:    a.signer,
		Telemetry:     a.telemetry,
		Logger:        a.logger,
		Registry:      a.registry,
	}), cfg, nil
}

func (a *App) closeTelemetry() {
	if err := a.telemetry.Close(); err != nil {
		a.logger.Warn("failed to close telemetry: " + err.Error())
	}
}
