package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// FileName is the config file written next to the book database.
const FileName = "ledgerbook.yaml"

// Config represents the top-level ledgerbook.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Ledger   LedgerConfig   `yaml:"ledger"`
	Storage  StorageConfig  `yaml:"storage"`
	Server   ServerConfig   `yaml:"server"`
}

// BusinessConfig identifies the business entity on invoices.
type BusinessConfig struct {
	Name string `yaml:"name"`
}

// LedgerConfig holds accounting policy.
type LedgerConfig struct {
	// Currency is the ISO code used for display formatting.
	Currency string `yaml:"currency"`
	// TaxRate is the fraction applied to invoice subtotals at issuance,
	// kept as a string so the rate survives YAML round-trips exactly.
	TaxRate string `yaml:"tax_rate"`
}

// TaxRateFraction parses the configured tax rate.
func (l LedgerConfig) TaxRateFraction() (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(l.TaxRate)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing tax rate %q: %w", l.TaxRate, err)
	}
	if rate.IsNegative() {
		return decimal.Zero, fmt.Errorf("tax rate %s must not be negative", l.TaxRate)
	}
	return rate, nil
}

// StorageConfig locates the book database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Load reads a ledgerbook.yaml file from disk.
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

// Default returns a Config with sensible defaults for a new book.
func Default(businessName string) *Config {
	return &Config{
		Business: BusinessConfig{Name: businessName},
		Ledger: LedgerConfig{
			Currency: "USD",
			TaxRate:  "0.10",
		},
		Storage: StorageConfig{Path: "ledgerbook.db"},
		Server:  ServerConfig{Addr: ":8080"},
	}
}

// Env holds process-environment overrides for the server, applied on top of
// the file config. A .env file in the working directory is honored.
type Env struct {
	Addr   string `envconfig:"LEDGERBOOK_ADDR"`
	DBPath string `envconfig:"LEDGERBOOK_DB"`
}

// LoadEnv reads overrides from the environment.
func LoadEnv() (*Env, error) {
	_ = godotenv.Load() // optional .env

	var env Env
	if err := envconfig.Process("", &env); err != nil {
		return nil, fmt.Errorf("processing environment: %w", err)
	}
	return &env, nil
}

// Apply overlays the non-empty env values onto cfg.
func (e *Env) Apply(cfg *Config) {
	if e.Addr != "" {
		cfg.Server.Addr = e.Addr
	}
	if e.DBPath != "" {
		cfg.Storage.Path = e.DBPath
	}
}
