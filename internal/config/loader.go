package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".linkrank"

// xdgConfigFile is the file name looked up inside XDGConfigDir.
const xdgConfigFile = "config.yaml"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .linkrank configuration file.
// Pointer fields distinguish "not set" from a zero value, so that a file
// can set damping to 0.
type File struct {
	Damping       *float64 `yaml:"damping,omitempty"`
	Samples       *int     `yaml:"samples,omitempty"`
	Seed          *uint64  `yaml:"seed,omitempty"`
	MaxIterations *int     `yaml:"maxIterations,omitempty"`
	Tolerance     *float64 `yaml:"tolerance,omitempty"`
	Extension     *string  `yaml:"extension,omitempty"`
	Parser        *string  `yaml:"parser,omitempty"`
	LogFormat     *string  `yaml:"logFormat,omitempty"`
}

// LoadConfigFile loads configuration overrides from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	return &cf, nil
}

// Apply copies every value set in the file onto cfg.
func (cf *File) Apply(cfg *Config) {
	if cf.Damping != nil {
		cfg.Damping = *cf.Damping
	}
	if cf.Samples != nil {
		cfg.Samples = *cf.Samples
	}
	if cf.Seed != nil {
		cfg.Seed = *cf.Seed
	}
	if cf.MaxIterations != nil {
		cfg.MaxIterations = *cf.MaxIterations
	}
	if cf.Tolerance != nil {
		cfg.Tolerance = *cf.Tolerance
	}
	if cf.Extension != nil {
		cfg.Extension = *cf.Extension
	}
	if cf.Parser != nil {
		cfg.Parser = *cf.Parser
	}
	if cf.LogFormat != nil {
		cfg.LogFormat = *cf.LogFormat
	}
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .linkrank in the current directory
// 3. Look for config.yaml in the XDG config directory
// 4. Look for .linkrank in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	candidates := make([]string, 0, 3)
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, DefaultConfigFile))
	}
	candidates = append(candidates, filepath.Join(XDGConfigDir(), xdgConfigFile))
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, DefaultConfigFile))
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return ""
}
