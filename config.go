package clubcal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration, loaded from a
// YAML file by the CLI layer and threaded explicitly into the portal
// client and the calendar builder.
type Config struct {
	// BaseURL is the root of the member portal, e.g.
	// "https://members.example.org". Event page URLs and UIDs are
	// derived from it, so it must match what the portal itself links to.
	BaseURL string `yaml:"base_url"`

	// Username and Password are the portal credentials used by the
	// authenticator.
	Username string `yaml:"username"`
	Password string `yaml:"password"`

	// OutputDir is where the generated .ics artifacts are written.
	OutputDir string `yaml:"output_dir"`

	// CalendarName overrides the display name of the main feed.
	CalendarName string `yaml:"calendar_name"`

	// Listen is the HTTP listen address for the feed server.
	Listen string `yaml:"listen"`
}

func DefaultConfig() *Config {
	return &Config{
		OutputDir: ".",
		Listen:    "localhost:9999",
	}
}

// Normalize fills in missing values so that partially filled configs
// still behave.
func (c *Config) Normalize() {
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if c.Listen == "" {
		c.Listen = "localhost:9999"
	}
}

// LoadConfig reads the YAML configuration at path. A missing file is
// not an error: defaults are returned so that flag-only invocations
// keep working.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("unable to read config %s: %w", path, err)
	}
	c := Config{}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("unable to parse config %s: %w", path, err)
	}
	c.Normalize()
	return &c, nil
}

// Save writes the configuration with owner-only permissions, it holds
// portal credentials.
func (c *Config) Save(path string) error {
	raw, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o600)
}
