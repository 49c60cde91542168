// Package config provides configuration management for taskdeck.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for the taskdeck application.
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Theme   ThemeConfig   `mapstructure:"theme"`
}

// StorageConfig holds storage settings.
type StorageConfig struct {
	DataDir     string `mapstructure:"data_dir"`
	TasksFile   string `mapstructure:"tasks_file"`
	ArchiveFile string `mapstructure:"archive_file"`
}

// ThemeConfig holds color customization for the list and menu views. The
// status colors mirror the classic traffic-light scheme: pending red,
// in progress yellow, completed green.
type ThemeConfig struct {
	ColorPending    string `mapstructure:"color_pending"`
	ColorInProgress string `mapstructure:"color_in_progress"`
	ColorCompleted  string `mapstructure:"color_completed"`
	ColorTitle      string `mapstructure:"color_title"`
	ColorAccent     string `mapstructure:"color_accent"`
	ColorHelp       string `mapstructure:"color_help"`
}

// DefaultThemeConfig returns the default theme configuration.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		ColorPending:    "#E74C3C",
		ColorInProgress: "#F1C40F",
		ColorCompleted:  "#2ECC71",
		ColorTitle:      "#6B7280",
		ColorAccent:     "#7C6FE0",
		ColorHelp:       "#95A5A6",
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			DataDir:     "~/.taskdeck",
			TasksFile:   "tasks.json",
			ArchiveFile: "archive.db",
		},
		Theme: DefaultThemeConfig(),
	}
}

// Load loads the configuration from the config file, creating it with
// defaults on first run.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	setDefaults()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := Save(DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Expand ~ in data directory
	if cfg.Storage.DataDir == "~/.taskdeck" || cfg.Storage.DataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		cfg.Storage.DataDir = filepath.Join(homeDir, ".taskdeck")
	}

	return &cfg, nil
}

// Save saves the configuration to the config file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	viper.Set("storage.data_dir", cfg.Storage.DataDir)
	viper.Set("storage.tasks_file", cfg.Storage.TasksFile)
	viper.Set("storage.archive_file", cfg.Storage.ArchiveFile)
	viper.Set("theme.color_pending", cfg.Theme.ColorPending)
	viper.Set("theme.color_in_progress", cfg.Theme.ColorInProgress)
	viper.Set("theme.color_completed", cfg.Theme.ColorCompleted)
	viper.Set("theme.color_title", cfg.Theme.ColorTitle)
	viper.Set("theme.color_accent", cfg.Theme.ColorAccent)
	viper.Set("theme.color_help", cfg.Theme.ColorHelp)

	return viper.WriteConfig()
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".taskdeck", "config.toml"), nil
}

// GetTasksPath returns the path to the task file.
func GetTasksPath(cfg *Config) string {
	return filepath.Join(cfg.Storage.DataDir, cfg.Storage.TasksFile)
}

// GetArchivePath returns the path to the archive database.
func GetArchivePath(cfg *Config) string {
	return filepath.Join(cfg.Storage.DataDir, cfg.Storage.ArchiveFile)
}

// setDefaults sets default values for viper.
func setDefaults() {
	viper.SetDefault("storage.data_dir", "~/.taskdeck")
	viper.SetDefault("storage.tasks_file", "tasks.json")
	viper.SetDefault("storage.archive_file", "archive.db")

	defaults := DefaultThemeConfig()
	viper.SetDefault("theme.color_pending", defaults.ColorPending)
	viper.SetDefault("theme.color_in_progress", defaults.ColorInProgress)
	viper.SetDefault("theme.color_completed", defaults.ColorCompleted)
	viper.SetDefault("theme.color_title", defaults.ColorTitle)
	viper.SetDefault("theme.color_accent", defaults.ColorAccent)
	viper.SetDefault("theme.color_help", defaults.ColorHelp)
}
