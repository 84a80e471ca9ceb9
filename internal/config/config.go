package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level configuration structure parsed from a
// rescom configuration file. It names the resources to embed and a few
// cosmetic settings for the generated header.
type Config struct {
	// Tabulation is the number of spaces per indentation level in the
	// generated header.
	Tabulation int `yaml:"tabulation"`
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`
	// Resources is the list of files to embed, one entry per lookup key.
	Resources []Input `yaml:"resources"`

	// Path is the configuration file's own path, recorded by Load. The
	// generated header guard and namespace derive from its base name,
	// never from the output file name.
	Path string `yaml:"-"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path. If empty, logs go to stderr.
	Path string `yaml:"path"`
}

// Input is one resource entry: a lookup key bound to an input file.
type Input struct {
	// Key is the lookup key exposed by the generated accessor API.
	Key string `yaml:"key"`
	// File is the input file path, used as written.
	File string `yaml:"file"`
	// Size is the declared byte count recorded in the generated index.
	// When omitted, Load fills it from the file's on-disk size. It is
	// never cross-checked against the bytes actually read during
	// generation.
	Size *uint `yaml:"size"`
}

// DeclaredSize returns the size recorded for the resource in the
// generated index table.
func (in Input) DeclaredSize() uint {
	if in.Size == nil {
		return 0
	}
	return *in.Size
}

// Load reads and parses the configuration file at path, applies
// defaults, validates it, fills missing sizes from the filesystem and
// sorts the resource list ascending by key. The sorted order is what
// makes the generated index a valid binary-search domain; the generator
// trusts it without re-checking.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read '%s': %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse '%s': %w", path, err)
	}
	cfg.Path = path

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	for i := range cfg.Resources {
		if cfg.Resources[i].Size != nil {
			continue
		}
		info, err := os.Stat(cfg.Resources[i].File)
		if err != nil {
			return nil, fmt.Errorf("unable to read '%s': %w", cfg.Resources[i].File, err)
		}
		size := uint(info.Size())
		cfg.Resources[i].Size = &size
	}

	sort.Slice(cfg.Resources, func(i, j int) bool {
		return cfg.Resources[i].Key < cfg.Resources[j].Key
	})

	return &cfg, nil
}

// Validate checks the configuration for errors, such as missing fields
// or duplicate resource keys.
//
// Returns:
//   - error: An error if the configuration is invalid, or nil otherwise.
func Validate(config *Config) error {
	seen := make(map[string]bool)
	for _, in := range config.Resources {
		if in.Key == "" {
			return fmt.Errorf("resource entry for file '%s' has an empty key", in.File)
		}
		if in.File == "" {
			return fmt.Errorf("resource '%s' has no file", in.Key)
		}
		if seen[in.Key] {
			return fmt.Errorf("duplicate resource key: %s", in.Key)
		}
		seen[in.Key] = true
	}

	if config.Logging.Level != "" {
		switch config.Logging.Level {
		case "debug", "info", "warn", "error":
			// ok
		default:
			return fmt.Errorf("invalid logging level: %s (allowed: debug, info, warn, error)", config.Logging.Level)
		}
	}

	return nil
}

// ApplyDefaults sets default values for configuration fields that are
// missing.
func ApplyDefaults(config *Config) {
	if config.Tabulation == 0 {
		config.Tabulation = 4
	}
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
}
