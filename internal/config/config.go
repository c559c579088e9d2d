package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"morse-converter/internal/logger"
)

// Environment variables read by Load.
const (
	EnvConfigFile = "MORSE_CONFIG"
	EnvLogLevel   = "MORSE_LOG_LEVEL"
	EnvJSONLogs   = "MORSE_JSON_LOGS"
	EnvLocale     = "MORSE_LOCALE"
)

type Config struct {
	Window WindowConfig `toml:"window"`
	Theme  ThemeConfig  `toml:"theme"`
	Log    LogConfig    `toml:"log"`
	Locale string       `toml:"locale"`
}

type WindowConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// ThemeConfig holds the window palette as #RRGGBB strings.
type ThemeConfig struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
	Accent     string `toml:"accent"`
	Button     string `toml:"button"`
	ButtonText string `toml:"button_text"`
	Success    string `toml:"success"`
	Error      string `toml:"error"`
	InputField string `toml:"input_field"`
}

type LogConfig struct {
	Level string `toml:"level"`
	JSON  bool   `toml:"json"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{Width: 900, Height: 700},
		Theme:  DefaultTheme(),
		Log:    LogConfig{Level: "info"},
		Locale: "en",
	}
}

// DefaultTheme is the light blue palette of the converter window.
func DefaultTheme() ThemeConfig {
	return ThemeConfig{
		Background: "#E3F2FD",
		Foreground: "#2C3E50",
		Accent:     "#3498DB",
		Button:     "#34495E",
		ButtonText: "#AED6F1",
		Success:    "#27AE60",
		Error:      "#E74C3C",
		InputField: "#FFFFFF",
	}
}

// Load builds the configuration from defaults, the TOML file at path (or
// $MORSE_CONFIG), then environment variables. A missing file is not an
// error; a .env in the working directory is loaded when present.
func Load(path string) (*Config, error) {
	// .env is optional; real environment variables take precedence over it.
	_ = godotenv.Load()

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}

	cfg := DefaultConfig()
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}

	if v := os.Getenv(EnvJSONLogs); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s must be a boolean, got %q", EnvJSONLogs, v)
		}
		c.Log.JSON = enabled
	}

	if v := os.Getenv(EnvLocale); v != "" {
		c.Locale = v
	}

	return nil
}

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Validate checks every field. Callers that modify a loaded Config should
// validate again.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if strings.TrimSpace(c.Locale) == "" {
		return fmt.Errorf("config: locale cannot be empty")
	}

	for name, value := range c.Theme.colors() {
		if !hexColor.MatchString(value) {
			return fmt.Errorf("config: theme.%s must be #RRGGBB, got %q", name, value)
		}
	}

	return nil
}

func (t ThemeConfig) colors() map[string]string {
	return map[string]string{
		"background":  t.Background,
		"foreground":  t.Foreground,
		"accent":      t.Accent,
		"button":      t.Button,
		"button_text": t.ButtonText,
		"success":     t.Success,
		"error":       t.Error,
		"input_field": t.InputField,
	}
}
