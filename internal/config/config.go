// Package config handles cc2olx-run configuration loading.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the settings used to launch the converter container.
type Config struct {
	// Image is the converter image name, without tag.
	Image string `toml:"image"`
	// Branch is the cc2olx git branch baked into a freshly built image.
	Branch string `toml:"branch"`
	// DataRoot is the container directory remapped paths live under.
	DataRoot string `toml:"data_root"`
	// DefaultOutput is used when the command line has no output flag.
	DefaultOutput string `toml:"default_output"`
	// DockerBin is the docker executable shown in rendered commands.
	DockerBin string `toml:"docker"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Image:         "cc2olx",
		Branch:        "master",
		DataRoot:      "/data",
		DefaultOutput: "output/result",
		DockerBin:     "docker",
	}
}

// ParseError represents a TOML decode failure.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse config %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// envOverrides maps environment variables to the field they replace.
var envOverrides = []struct {
	name  string
	field func(*Config) *string
}{
	{"CC2OLX_IMAGE", func(c *Config) *string { return &c.Image }},
	{"CC2OLX_BRANCH", func(c *Config) *string { return &c.Branch }},
	{"CC2OLX_DATA_ROOT", func(c *Config) *string { return &c.DataRoot }},
	{"CC2OLX_DEFAULT_OUTPUT", func(c *Config) *string { return &c.DefaultOutput }},
	{"CC2OLX_DOCKER", func(c *Config) *string { return &c.DockerBin }},
}

// Path returns the default config file location.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "cc2olx-run", "config.toml"), nil
}

// Load reads the config file at file, or the default location when file is
// empty, and applies environment overrides. A missing default file yields the
// built-in defaults; a missing explicit file is an error.
func Load(file string) (Config, error) {
	cfg := Default()

	explicit := file != ""
	if !explicit {
		p, err := Path()
		if err == nil {
			file = p
		}
	}

	if file != "" {
		data, err := os.ReadFile(file)
		switch {
		case errors.Is(err, os.ErrNotExist) && !explicit:
		case err != nil:
			return cfg, fmt.Errorf("read config: %w", err)
		default:
			if err := decode(data, file, &cfg); err != nil {
				return cfg, err
			}
		}
	}

	applyEnv(&cfg)

	return cfg, cfg.Validate()
}

func decode(data []byte, file string, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(cfg); err != nil {
		return &ParseError{Path: file, Err: err}
	}
	return nil
}

func applyEnv(cfg *Config) {
	for _, o := range envOverrides {
		if v, ok := os.LookupEnv(o.name); ok && strings.TrimSpace(v) != "" {
			*o.field(cfg) = strings.TrimSpace(v)
		}
	}
}

// Validate checks that the configuration can be used to plan a run.
func (c Config) Validate() error {
	if c.Image == "" {
		return errors.New("config: image must not be empty")
	}
	if c.DefaultOutput == "" {
		return errors.New("config: default_output must not be empty")
	}
	if !path.IsAbs(c.DataRoot) {
		return fmt.Errorf("config: data_root must be an absolute container path, got %q", c.DataRoot)
	}
	return nil
}
