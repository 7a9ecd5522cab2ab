package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestNewConfig verifies that NewConfig returns a Config with all expected default values.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default Damping is 0.85", func(t *testing.T) {
		t.Parallel()
		if cfg.Damping != 0.85 {
			t.Errorf("expected Damping to be 0.85, got %v", cfg.Damping)
		}
	})

	t.Run("default Samples is 10000", func(t *testing.T) {
		t.Parallel()
		if cfg.Samples != 10000 {
			t.Errorf("expected Samples to be 10000, got %d", cfg.Samples)
		}
	})

	t.Run("default Tolerance is 0.001", func(t *testing.T) {
		t.Parallel()
		if cfg.Tolerance != 0.001 {
			t.Errorf("expected Tolerance to be 0.001, got %v", cfg.Tolerance)
		}
	})

	t.Run("default MaxIterations is positive", func(t *testing.T) {
		t.Parallel()
		if cfg.MaxIterations <= 0 {
			t.Errorf("expected positive MaxIterations, got %d", cfg.MaxIterations)
		}
	})

	t.Run("default Extension is .html", func(t *testing.T) {
		t.Parallel()
		if cfg.Extension != ".html" {
			t.Errorf("expected Extension to be '.html', got %q", cfg.Extension)
		}
	})

	t.Run("default Parser is regexp", func(t *testing.T) {
		t.Parallel()
		if cfg.Parser != ParserRegexp {
			t.Errorf("expected Parser to be %q, got %q", ParserRegexp, cfg.Parser)
		}
	})

	t.Run("default Seed is zero", func(t *testing.T) {
		t.Parallel()
		if cfg.Seed != 0 {
			t.Errorf("expected Seed to be 0, got %d", cfg.Seed)
		}
	})
}

// TestConfigValidate tests the Validate method with various configurations.
// Each test case is designed to test one specific validation rule.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	// validConfig returns a minimal valid configuration.
	validConfig := func() *Config {
		cfg := NewConfig()
		cfg.Corpus = "corpus0"
		return cfg
	}

	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{name: "valid config returns nil", modify: func(*Config) {}, want: nil},
		{name: "damping zero is valid", modify: func(c *Config) { c.Damping = 0 }, want: nil},
		{name: "damping one is valid", modify: func(c *Config) { c.Damping = 1 }, want: nil},
		{name: "html parser is valid", modify: func(c *Config) { c.Parser = ParserHTML }, want: nil},
		{name: "json only is valid", modify: func(c *Config) { c.JSONReport = true }, want: nil},
		{name: "markdown only is valid", modify: func(c *Config) { c.MarkdownReport = true }, want: nil},
		{name: "empty corpus", modify: func(c *Config) { c.Corpus = "" }, want: ErrNoCorpus},
		{name: "negative damping", modify: func(c *Config) { c.Damping = -0.1 }, want: ErrInvalidDamping},
		{name: "damping above one", modify: func(c *Config) { c.Damping = 1.5 }, want: ErrInvalidDamping},
		{name: "NaN damping", modify: func(c *Config) { c.Damping = math.NaN() }, want: ErrInvalidDamping},
		{name: "zero samples", modify: func(c *Config) { c.Samples = 0 }, want: ErrInvalidSamples},
		{name: "negative samples", modify: func(c *Config) { c.Samples = -5 }, want: ErrInvalidSamples},
		{name: "zero max iterations", modify: func(c *Config) { c.MaxIterations = 0 }, want: ErrInvalidMaxIterations},
		{name: "zero tolerance", modify: func(c *Config) { c.Tolerance = 0 }, want: ErrInvalidTolerance},
		{name: "empty extension", modify: func(c *Config) { c.Extension = "" }, want: ErrInvalidExtension},
		{name: "unknown parser", modify: func(c *Config) { c.Parser = "xpath" }, want: ErrUnknownParser},
		{name: "json log format is valid", modify: func(c *Config) { c.LogFormat = LogFormatJSON }, want: nil},
		{name: "unknown log format", modify: func(c *Config) { c.LogFormat = "xml" }, want: ErrUnknownLogFormat},
		{
			name: "json and markdown both enabled",
			modify: func(c *Config) {
				c.JSONReport = true
				c.MarkdownReport = true
			},
			want: ErrConflictingReportFormats,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

// TestLoadConfigFile tests loading YAML configuration files.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("returns ErrConfigNotFound for non-existent file", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadConfigFile("/nonexistent/path/.linkrank")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("expected ErrConfigNotFound, got: %v", err)
		}
		if cfg != nil {
			t.Error("expected nil config when file not found")
		}
	})

	t.Run("loads valid YAML config", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), ".linkrank")
		content := `damping: 0.5
samples: 2000
seed: 42
maxIterations: 50
tolerance: 0.0001
extension: .htm
parser: html
logFormat: json
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		file, err := LoadConfigFile(configPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		cfg := NewConfig()
		file.Apply(cfg)

		if cfg.Damping != 0.5 {
			t.Errorf("expected damping 0.5, got %v", cfg.Damping)
		}
		if cfg.Samples != 2000 {
			t.Errorf("expected samples 2000, got %d", cfg.Samples)
		}
		if cfg.Seed != 42 {
			t.Errorf("expected seed 42, got %d", cfg.Seed)
		}
		if cfg.MaxIterations != 50 {
			t.Errorf("expected max iterations 50, got %d", cfg.MaxIterations)
		}
		if cfg.Tolerance != 0.0001 {
			t.Errorf("expected tolerance 0.0001, got %v", cfg.Tolerance)
		}
		if cfg.Extension != ".htm" {
			t.Errorf("expected extension '.htm', got %q", cfg.Extension)
		}
		if cfg.Parser != ParserHTML {
			t.Errorf("expected parser 'html', got %q", cfg.Parser)
		}
		if cfg.LogFormat != LogFormatJSON {
			t.Errorf("expected log format 'json', got %q", cfg.LogFormat)
		}
	})

	t.Run("unset fields keep defaults", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), ".linkrank")
		if err := os.WriteFile(configPath, []byte("damping: 0\n"), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		file, err := LoadConfigFile(configPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		cfg := NewConfig()
		file.Apply(cfg)

		if cfg.Damping != 0 {
			t.Errorf("expected explicit damping 0, got %v", cfg.Damping)
		}
		if cfg.Samples != DefaultSamples {
			t.Errorf("expected default samples, got %d", cfg.Samples)
		}
		if cfg.Extension != DefaultExtension {
			t.Errorf("expected default extension, got %q", cfg.Extension)
		}
	})

	t.Run("returns error for invalid YAML", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), ".linkrank")
		if err := os.WriteFile(configPath, []byte(`invalid: yaml: content: [}`), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if _, err := LoadConfigFile(configPath); err == nil {
			t.Error("expected error for invalid YAML")
		}
	})
}

// TestFindConfigFile tests the FindConfigFile function.
func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("returns explicit path if exists", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(configPath, []byte("samples: 10\n"), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if result := FindConfigFile(configPath); result != configPath {
			t.Errorf("expected %q, got %q", configPath, result)
		}
	})

	t.Run("returns empty for non-existent explicit path", func(t *testing.T) {
		t.Parallel()

		if result := FindConfigFile("/nonexistent/path/config.yaml"); result != "" {
			t.Errorf("expected empty string, got %q", result)
		}
	})
}

// TestXDGConfigDir tests the XDG config directory helper.
func TestXDGConfigDir(t *testing.T) {
	t.Parallel()

	dir := XDGConfigDir()
	if dir == "" {
		t.Fatal("expected non-empty XDG config dir")
	}
	if !strings.HasSuffix(dir, AppName) {
		t.Errorf("expected dir to end with %q, got %q", AppName, dir)
	}
}
