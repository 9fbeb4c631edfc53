// Package config provides the configuration loader for swatch.
package config

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.trai.ch/swatch/internal/core/domain"
	"go.trai.ch/swatch/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides, e.g. SWATCH_DEBUG or SWATCH_CACHE_DIR.
const EnvPrefix = "SWATCH"

// Defaults applied before the file and the environment.
var (
	DefaultCompilerCommand = []string{"sass", "--stdin", "--no-source-map"}
	DefaultStyle           = "compressed"
	DefaultTimeout         = 30 * time.Second
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader for swatch.yaml.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{Logger: log}
}

// Load reads the configuration at path. A missing file yields the defaults.
// Relative paths in the file are resolved against the file's directory.
func (l *Loader) Load(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if l.Logger != nil {
			l.Logger.Info("no " + filepath.Base(path) + " found, using defaults")
		}
		data = nil
	case err != nil:
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	v := newViper()
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	var file Swatchfile
	if err := v.Unmarshal(&file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	var doc variablesDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	cfg, err := toDomain(filepath.Dir(path), &file, &doc)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("source.root", ".")
	v.SetDefault("source.base_url", "")
	v.SetDefault("source.import_paths", []string{})
	v.SetDefault("cache.dir", domain.DefaultCachePath())
	v.SetDefault("cache.url", domain.DefaultCacheURL)
	v.SetDefault("cache.mirror_dir", "")
	v.SetDefault("compiler.command", DefaultCompilerCommand)
	v.SetDefault("compiler.style", DefaultStyle)
	v.SetDefault("compiler.timeout", DefaultTimeout)
	v.SetDefault("debug", false)
	v.SetDefault("fast_path", false)
	v.SetDefault("asset_url", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func toDomain(base string, file *Swatchfile, doc *variablesDoc) (*domain.Config, error) {
	vars, err := decodeVariables(&doc.Variables)
	if err != nil {
		return nil, err
	}

	handleVars := make(map[string]map[string]domain.Value, len(doc.Handles))
	for raw, dto := range doc.Handles {
		handle, err := domain.NewHandle(raw)
		if err != nil {
			return nil, err
		}
		decoded, err := decodeVariables(&dto.Variables)
		if err != nil {
			return nil, zerr.With(err, "handle", handle.String())
		}
		handleVars[handle.String()] = decoded
	}

	importPaths := make([]string, 0, len(file.Source.ImportPaths))
	for _, p := range file.Source.ImportPaths {
		importPaths = append(importPaths, resolve(base, p))
	}

	return &domain.Config{
		Source: domain.SourceConfig{
			Root:        resolve(base, file.Source.Root),
			BaseURL:     file.Source.BaseURL,
			ImportPaths: importPaths,
		},
		Cache: domain.CacheConfig{
			Dir:       resolve(base, file.Cache.Dir),
			URL:       file.Cache.URL,
			MirrorDir: resolve(base, file.Cache.MirrorDir),
		},
		Compiler: domain.CompilerConfig{
			Command: file.Compiler.Command,
			Style:   file.Compiler.Style,
			Timeout: file.Compiler.Timeout,
		},
		Debug:           file.Debug,
		FastPath:        file.FastPath,
		AssetURL:        file.AssetURL,
		Variables:       vars,
		HandleVariables: handleVars,
	}, nil
}

// resolve makes p absolute relative to base. Empty stays empty.
func resolve(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
