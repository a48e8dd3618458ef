package main

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatYAML = "yaml"
)

// Config is the on-disk configuration of globmatch. Flags override it.
type Config struct {
	Patterns    []string `yaml:"patterns"`
	BasePath    string   `yaml:"basePath"`
	IgnoreCase  bool     `yaml:"ignoreCase"`
	Concurrency int      `yaml:"concurrency"`
	Format      string   `yaml:"format"`
	ShowAll     bool     `yaml:"showAll"`
}

// loadConfig reads the YAML configuration at path. An empty path selects
// the default location; a missing default file yields an empty Config.
// An explicitly named file must exist.
func loadConfig(path string) (Config, string, error) {
	explicit := path != ""
	if !explicit {
		p, err := defaultConfigPath()
		if err != nil {
			return Config{}, "", fmt.Errorf("resolving default config path: %w", err)
		}
		path = p
	} else {
		p, err := expandTilde(path)
		if err != nil {
			return Config{}, "", err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return Config{}, "", nil
		}
		return Config{}, "", fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, "", fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, path, nil
}

// applyFlags overrides cfg with every flag the user set explicitly.
// Patterns given on the command line are appended to the configured ones.
func applyFlags(cfg Config, flags *pflag.FlagSet) (Config, error) {
	if flags.Changed("pattern") {
		patterns, err := flags.GetStringArray("pattern")
		if err != nil {
			return cfg, err
		}
		cfg.Patterns = append(cfg.Patterns, patterns...)
	}
	if flags.Changed("base") {
		v, err := flags.GetString("base")
		if err != nil {
			return cfg, err
		}
		cfg.BasePath = v
	}
	if flags.Changed("ignore-case") {
		v, err := flags.GetBool("ignore-case")
		if err != nil {
			return cfg, err
		}
		cfg.IgnoreCase = v
	}
	if flags.Changed("concurrency") {
		v, err := flags.GetInt("concurrency")
		if err != nil {
			return cfg, err
		}
		cfg.Concurrency = v
	}
	if flags.Changed("format") {
		v, err := flags.GetString("format")
		if err != nil {
			return cfg, err
		}
		cfg.Format = v
	}
	if flags.Changed("all") {
		v, err := flags.GetBool("all")
		if err != nil {
			return cfg, err
		}
		cfg.ShowAll = v
	}
	return cfg, nil
}

// validate fills defaults and rejects unusable settings.
func (c *Config) validate() error {
	if c.Format == "" {
		c.Format = formatText
	}
	if c.Format != formatText && c.Format != formatYAML {
		return fmt.Errorf("unknown format %q (want %q or %q)", c.Format, formatText, formatYAML)
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("concurrency must not be negative, got %d", c.Concurrency)
	}
	if len(c.Patterns) == 0 {
		return errors.New("no patterns given (use --pattern or the patterns config key)")
	}
	return nil
}

// defaultConfigPath returns $XDG_CONFIG_HOME/globmatch/config.yaml, or
// ~/.config/globmatch/config.yaml when XDG_CONFIG_HOME is unset.
func defaultConfigPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "globmatch", "config.yaml"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determining home directory: %w", err)
	}
	return filepath.Join(home, ".config", "globmatch", "config.yaml"), nil
}

// expandTilde expands ~ and ~user prefixes in a path.
func expandTilde(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	// Split at first separator
	var userPart, rest string
	if i := strings.IndexByte(path, '/'); i >= 0 {
		userPart = path[:i]
		rest = path[i:]
	} else {
		userPart = path
	}

	if userPart == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expanding ~: %w", err)
		}
		return home + rest, nil
	}

	u, err := user.Lookup(userPart[1:])
	if err != nil {
		return "", fmt.Errorf("expanding %s: %w", userPart, err)
	}
	return u.HomeDir + rest, nil
}
