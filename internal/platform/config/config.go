package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DataDir      string `yaml:"data_dir"`
	Addr         string `yaml:"addr"`
	BcryptCost   int    `yaml:"bcrypt_cost"`
	TokenTTLDays int    `yaml:"token_ttl_days"`
}

func Default(dataDir string) Config {
	return Config{
		DataDir:      dataDir,
		Addr:         ":3000",
		BcryptCost:   10,
		TokenTTLDays: 30,
	}
}

// Load reads a YAML config file and fills unset fields with defaults.
func Load(path string) (Config, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg := Config{}
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg.withDefaults()
}

func (c Config) withDefaults() (Config, error) {
	base := Default(c.DataDir)
	if c.DataDir == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	if c.Addr == "" {
		c.Addr = base.Addr
	}
	if c.BcryptCost == 0 {
		c.BcryptCost = base.BcryptCost
	}
	if c.TokenTTLDays == 0 {
		c.TokenTTLDays = base.TokenTTLDays
	}
	return c, nil
}

func New(dataDir string) (Config, error) {
	if dataDir == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	return Default(dataDir), nil
}

func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, "studytrack.db")
}
