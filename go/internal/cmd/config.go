package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	// AdminKey gates the /api/admin endpoints. Env only, never from yaml.
	AdminKey string `yaml:"-"`
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func defaultConfig() *Config {
	config := &Config{}
	config.Server.Port = getEnv("PORT", "8080")
	config.AdminKey = os.Getenv("ADMIN_KEY")
	return config
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if config.Server.Port == "" {
		config.Server.Port = getEnv("PORT", "8080")
	}
	config.AdminKey = os.Getenv("ADMIN_KEY")

	return &config, nil
}
