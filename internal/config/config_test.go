package config

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default("My Business Inc.")

	assert.Equal(t, "My Business Inc.", cfg.Business.Name)
	assert.Equal(t, "USD", cfg.Ledger.Currency)
	assert.Equal(t, "0.10", cfg.Ledger.TaxRate)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.NotEmpty(t, cfg.Storage.Path)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	cfg := Default("Roundtrip Co")
	cfg.Ledger.TaxRate = "0.075"

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestTaxRateFraction(t *testing.T) {
	l := LedgerConfig{TaxRate: "0.10"}
	rate, err := l.TaxRateFraction()
	require.NoError(t, err)
	assert.True(t, decimal.NewFromFloat(0.1).Equal(rate))

	_, err = LedgerConfig{TaxRate: "ten percent"}.TaxRateFraction()
	assert.Error(t, err)

	_, err = LedgerConfig{TaxRate: "-0.1"}.TaxRateFraction()
	assert.Error(t, err)
}

func TestEnvApply(t *testing.T) {
	cfg := Default("Env Co")

	env := &Env{Addr: ":9999", DBPath: "/tmp/other.db"}
	env.Apply(cfg)
	assert.Equal(t, ":9999", cfg.Server.Addr)
	assert.Equal(t, "/tmp/other.db", cfg.Storage.Path)

	empty := &Env{}
	empty.Apply(cfg)
	assert.Equal(t, ":9999", cfg.Server.Addr)
}
