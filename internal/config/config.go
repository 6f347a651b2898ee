package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. ELYSIUM_TICK_RATE.
const EnvPrefix = "ELYSIUM"

const (
	DefaultProfile       = "iotmgmt_prod"
	DefaultRegion        = "eu-west-1"
	DefaultTickRate      = time.Second
	DefaultFrameRate     = 10.0
	DefaultShutdownGrace = 2 * time.Second
)

// Config is the effective dashboard configuration: built-in defaults,
// overlaid by the config file, overlaid by ELYSIUM_* environment variables.
type Config struct {
	Profile  string `mapstructure:"profile" yaml:"profile"`
	Region   string `mapstructure:"region" yaml:"region"`
	LogLevel string `mapstructure:"log-level" yaml:"log-level"`

	TickRate      time.Duration `mapstructure:"tick-rate" yaml:"tick-rate"`
	FrameRate     float64       `mapstructure:"frame-rate" yaml:"frame-rate"`
	ShutdownGrace time.Duration `mapstructure:"shutdown-grace" yaml:"shutdown-grace"`
	Mouse         bool          `mapstructure:"mouse" yaml:"mouse"`

	Filter  Filter  `mapstructure:"filter" yaml:"filter"`
	Refresh Refresh `mapstructure:"refresh" yaml:"refresh"`
	Styles  Styles  `mapstructure:"styles" yaml:"styles"`

	// Keybindings overrides the built-in key table. The outer key is the
	// scope ("normal", "input" or "global"), the inner key a key string
	// such as "ctrl+r", and the value an action name.
	Keybindings map[string]map[string]string `mapstructure:"keybindings" yaml:"keybindings,omitempty"`
}

// Filter configures row filtering.
type Filter struct {
	Fuzzy bool `mapstructure:"fuzzy" yaml:"fuzzy"`
}

// Refresh configures when the dataset is re-fetched besides startup and the
// explicit refresh key.
type Refresh struct {
	OnTabChange bool `mapstructure:"on-tab-change" yaml:"on-tab-change"`
}

// ColorPair is a foreground and background color, as lipgloss color strings.
type ColorPair struct {
	FG string `mapstructure:"fg" yaml:"fg"`
	BG string `mapstructure:"bg" yaml:"bg"`
}

// Styles holds the user-tunable colors.
type Styles struct {
	// Highlight is the selected table row.
	Highlight ColorPair `mapstructure:"highlight" yaml:"highlight"`
	// Accent marks the active tab and the focused filter box.
	Accent string `mapstructure:"accent" yaml:"accent"`
	Muted  string `mapstructure:"muted" yaml:"muted"`
	Title  string `mapstructure:"title" yaml:"title"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Profile:       DefaultProfile,
		Region:        DefaultRegion,
		TickRate:      DefaultTickRate,
		FrameRate:     DefaultFrameRate,
		ShutdownGrace: DefaultShutdownGrace,
		Mouse:         true,
		Styles: Styles{
			Highlight: ColorPair{FG: "#4c4f69", BG: "#ffffff"},
			Accent:    "#43BF6D",
			Muted:     "#626262",
			Title:     "#7D56F4",
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("profile", d.Profile)
	v.SetDefault("region", d.Region)
	v.SetDefault("log-level", d.LogLevel)
	v.SetDefault("tick-rate", d.TickRate)
	v.SetDefault("frame-rate", d.FrameRate)
	v.SetDefault("shutdown-grace", d.ShutdownGrace)
	v.SetDefault("mouse", d.Mouse)
	v.SetDefault("filter.fuzzy", d.Filter.Fuzzy)
	v.SetDefault("refresh.on-tab-change", d.Refresh.OnTabChange)
	v.SetDefault("styles.highlight.fg", d.Styles.Highlight.FG)
	v.SetDefault("styles.highlight.bg", d.Styles.Highlight.BG)
	v.SetDefault("styles.accent", d.Styles.Accent)
	v.SetDefault("styles.muted", d.Styles.Muted)
	v.SetDefault("styles.title", d.Styles.Title)
}

// Load reads the configuration. An empty path means the default file under
// GetConfigDir, which may be absent. An explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	// Highlight colors have historically been set with these names.
	if err := v.BindEnv("styles.highlight.fg", "ELYSIUM_HIGHLIGHT_STYLE_FG", "ELYSIUM_STYLES_HIGHLIGHT_FG"); err != nil {
		return nil, fmt.Errorf("failed to bind environment: %w", err)
	}
	if err := v.BindEnv("styles.highlight.bg", "ELYSIUM_HIGHLIGHT_STYLE_BG", "ELYSIUM_STYLES_HIGHLIGHT_BG"); err != nil {
		return nil, fmt.Errorf("failed to bind environment: %w", err)
	}

	explicit := path != ""
	if !explicit {
		p, err := GetConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || os.IsNotExist(err)
		if explicit || !missing {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first out-of-range value.
func (c *Config) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("invalid config: tick-rate must be positive, got %s", c.TickRate)
	}
	if c.FrameRate <= 0 || c.FrameRate > 120 {
		return fmt.Errorf("invalid config: frame-rate must be in (0, 120], got %g", c.FrameRate)
	}
	if c.ShutdownGrace < 0 {
		return fmt.Errorf("invalid config: shutdown-grace must not be negative, got %s", c.ShutdownGrace)
	}
	return nil
}

// FrameInterval is the time between two render events.
func (c *Config) FrameInterval() time.Duration {
	return time.Duration(float64(time.Second) / c.FrameRate)
}

// Dump writes the configuration as YAML.
func (c *Config) Dump(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return enc.Close()
}

// WriteFile saves the configuration to path, creating the directory.
// Performs an atomic write to prevent corruption on crash.
func (c *Config) WriteFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var b strings.Builder
	b.WriteString("# elysium configuration file\n")
	b.WriteString("# Every key can also be set as " + EnvPrefix + "_<KEY>, e.g. " + EnvPrefix + "_TICK_RATE=2s\n\n")
	if err := c.Dump(&b); err != nil {
		return err
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(b.String()), 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}
	return nil
}
