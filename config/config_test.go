package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "internhub.db", cfg.DBPath)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "8", cfg.OvertimeThreshold.String())
	assert.Equal(t, "40", cfg.OffboardingMargin.String())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("INTERNHUB_ADDR", ":9090")
	t.Setenv("INTERNHUB_DB", ":memory:")
	t.Setenv("INTERNHUB_OVERTIME_THRESHOLD", "6.5")
	t.Setenv("INTERNHUB_OFFBOARDING_MARGIN", "20")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, ":memory:", cfg.DBPath)
	assert.Equal(t, "6.5", cfg.OvertimeThreshold.String())
	assert.Equal(t, "20", cfg.OffboardingMargin.String())
}

func TestLoadRejectsMalformedThreshold(t *testing.T) {
	t.Setenv("INTERNHUB_OVERTIME_THRESHOLD", "eight")

	_, err := Load()
	assert.Error(t, err)
}
