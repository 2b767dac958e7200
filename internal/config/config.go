package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/financeflow-dev/financeflow/internal/model"
)

// Config represents the top-level financeflow.yaml configuration.
type Config struct {
	User     UserConfig     `yaml:"user"`
	Keystore KeystoreConfig `yaml:"keystore"`
	Cards    []CardConfig   `yaml:"cards,omitempty"`
	Currency string         `yaml:"currency"`
}

// UserConfig identifies the signed-in user whose key encrypts amounts.
type UserConfig struct {
	ID string `yaml:"id"`
}

// KeystoreConfig locates the key database.
type KeystoreConfig struct {
	Path string `yaml:"path"`
}

// CardConfig describes one payment card.
type CardConfig struct {
	Name      string `yaml:"name"`
	Type      string `yaml:"type"`
	CutoffDay int    `yaml:"cutoff_day,omitempty"`
}

// Card converts the config entry to the model type.
func (c CardConfig) Card() model.Card {
	return model.Card{
		Name:      c.Name,
		Type:      model.CardType(c.Type),
		CutoffDay: c.CutoffDay,
	}
}

// FindCard returns the named card config, if present.
func (c *Config) FindCard(name string) (CardConfig, bool) {
	for _, card := range c.Cards {
		if card.Name == name {
			return card, true
		}
	}
	return CardConfig{}, false
}

// Load reads a financeflow.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(userID string) *Config {
	return &Config{
		User:     UserConfig{ID: userID},
		Keystore: KeystoreConfig{Path: "keys.db"},
		Currency: "COP",
	}
}
