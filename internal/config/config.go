package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Store  StoreConfig  `yaml:"store"`
	Log    LogConfig    `yaml:"log"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// StoreConfig locates the flat-file documents: the project snapshot
// and the comment log both live under Dir.
type StoreConfig struct {
	Dir string `yaml:"dir"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// ProjectsPath is the project snapshot document.
func (s StoreConfig) ProjectsPath() string {
	return filepath.Join(s.Dir, "projects.json")
}

// CommentsPath is the comment log document.
func (s StoreConfig) CommentsPath() string {
	return filepath.Join(s.Dir, "comments.json")
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 1888,
		},
		Store: StoreConfig{
			Dir: "database",
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("SHOWCASE_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("SHOWCASE_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("SHOWCASE_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SHOWCASE_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if dir := os.Getenv("SHOWCASE_STORE_DIR"); dir != "" {
		cfg.Store.Dir = dir
	}
	if level := os.Getenv("SHOWCASE_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
