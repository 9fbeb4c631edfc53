package config

import (
	"time"

	"gopkg.in/yaml.v3"
)

// Swatchfile holds the scalar settings of swatch.yaml as decoded by viper.
type Swatchfile struct {
	Source   SourceDTO   `mapstructure:"source"`
	Cache    CacheDTO    `mapstructure:"cache"`
	Compiler CompilerDTO `mapstructure:"compiler"`
	Debug    bool        `mapstructure:"debug"`
	FastPath bool        `mapstructure:"fast_path"`
	AssetURL string      `mapstructure:"asset_url"`
}

// SourceDTO locates stylesheet sources.
type SourceDTO struct {
	Root        string   `mapstructure:"root"`
	BaseURL     string   `mapstructure:"base_url"`
	ImportPaths []string `mapstructure:"import_paths"`
}

// CacheDTO locates compiled outputs.
type CacheDTO struct {
	Dir       string `mapstructure:"dir"`
	URL       string `mapstructure:"url"`
	MirrorDir string `mapstructure:"mirror_dir"`
}

// CompilerDTO configures the external compiler.
type CompilerDTO struct {
	Command []string      `mapstructure:"command"`
	Style   string        `mapstructure:"style"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// variablesDoc holds the sections that need ordered, case preserving decoding.
type variablesDoc struct {
	Variables yaml.Node            `yaml:"variables"`
	Handles   map[string]handleDTO `yaml:"handles"`
}

type handleDTO struct {
	Variables yaml.Node `yaml:"variables"`
}
