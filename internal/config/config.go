// Package config handles configuration for ollamachat.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/tidwall/gjson"
)

// HomeEnv overrides the configuration directory
const HomeEnv = "OLLAMACHAT_HOME"

// MarkdownConfig configures markdown rendering options
type MarkdownConfig struct {
	Style            string `json:"style"`              // "dark", "light", or path to JSON theme
	EnableEmoji      bool   `json:"enable_emoji"`       // Convert :emoji: to unicode
	PreserveNewLines bool   `json:"preserve_newlines"`  // Preserve original line breaks
	TableWrap        bool   `json:"table_wrap"`         // Enable word wrap in table cells
	InlineTableLinks bool   `json:"inline_table_links"` // Render links inline in tables
}

// Config represents the user configuration
type Config struct {
	DefaultModel string `json:"default_model"`
	// Verbose enables debug logging. In the chat TUI the log goes to
	// LogFile, otherwise to stderr.
	Verbose         bool           `json:"verbose"`
	LogFile         string         `json:"log_file"`
	CopyToClipboard bool           `json:"copy_to_clipboard"`
	TUITheme        string         `json:"tui_theme"` // TUI color theme
	Markdown        MarkdownConfig `json:"markdown"`
}

// DefaultMarkdownConfig returns the default markdown configuration
func DefaultMarkdownConfig() MarkdownConfig {
	return MarkdownConfig{
		Style:            "dark",
		EnableEmoji:      true,
		PreserveNewLines: true,
		TableWrap:        true,
		InlineTableLinks: false,
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		DefaultModel:    "llama3",
		Verbose:         false,
		CopyToClipboard: false,
		TUITheme:        "tokyonight",
		Markdown:        DefaultMarkdownConfig(),
	}
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return filepath.Abs(dir)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(home, ".ollamachat"), nil
}

// EnsureConfigDir creates the configuration directory if it doesn't exist
func EnsureConfigDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// GetLogPath returns the log file path, defaulting to ollamachat.log in the config dir
func GetLogPath(cfg Config) (string, error) {
	if cfg.LogFile != "" {
		return cfg.LogFile, nil
	}
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "ollamachat.log"), nil
}

// LoadConfig loads the configuration from disk
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	configPath, err := GetConfigPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults if config doesn't exist
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to disk
func SaveConfig(cfg Config) error {
	configDir, err := EnsureConfigDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(configDir, "config.json")

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetValue reads a single setting by its dotted JSON path, e.g. "markdown.style"
func GetValue(cfg Config, key string) (string, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}

	result := gjson.GetBytes(data, key)
	if !result.Exists() {
		return "", fmt.Errorf("unknown config key: %s", key)
	}
	return result.String(), nil
}

// SetValue updates a single setting by its dotted JSON path
func SetValue(cfg *Config, key, value string) error {
	parseBool := func() (bool, error) {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return false, fmt.Errorf("invalid boolean for %s: %q", key, value)
		}
		return b, nil
	}

	var err error
	switch key {
	case "default_model":
		if value == "" {
			return fmt.Errorf("default_model cannot be empty")
		}
		cfg.DefaultModel = value
	case "verbose":
		cfg.Verbose, err = parseBool()
	case "log_file":
		cfg.LogFile = value
	case "copy_to_clipboard":
		cfg.CopyToClipboard, err = parseBool()
	case "tui_theme":
		cfg.TUITheme = value
	case "markdown.style":
		cfg.Markdown.Style = value
	case "markdown.enable_emoji":
		cfg.Markdown.EnableEmoji, err = parseBool()
	case "markdown.preserve_newlines":
		cfg.Markdown.PreserveNewLines, err = parseBool()
	case "markdown.table_wrap":
		cfg.Markdown.TableWrap, err = parseBool()
	case "markdown.inline_table_links":
		cfg.Markdown.InlineTableLinks, err = parseBool()
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return err
}

// Keys returns all settable keys, sorted
func Keys() []string {
	data, _ := json.Marshal(DefaultConfig())

	var keys []string
	gjson.ParseBytes(data).ForEach(func(k, v gjson.Result) bool {
		if v.IsObject() {
			v.ForEach(func(sub, _ gjson.Result) bool {
				keys = append(keys, k.String()+"."+sub.String())
				return true
			})
			return true
		}
		keys = append(keys, k.String())
		return true
	})
	sort.Strings(keys)
	return keys
}
