package config_test

import (
	"testing"

	"interview-assistant-be/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestHostingModeDefaultsToLocal(t *testing.T) {
	cfg := config.Load()
	assert.Equal(t, "local", cfg.App.HostingMode)
}

func TestHostingModeHonorsStreamlitRuntimeEnv(t *testing.T) {
	t.Setenv("STREAMLIT_RUNTIME_ENV", "cloud")

	cfg := config.Load()
	assert.Equal(t, "cloud", cfg.App.HostingMode)
}

func TestHostingModeExplicitSettingWins(t *testing.T) {
	t.Setenv("STREAMLIT_RUNTIME_ENV", "cloud")
	t.Setenv("HOSTING_MODE", "local")

	cfg := config.Load()
	assert.Equal(t, "local", cfg.App.HostingMode)
}

func TestRequireResumeFlag(t *testing.T) {
	t.Setenv("REQUIRE_RESUME_CONTEXT", "true")

	cfg := config.Load()
	assert.True(t, cfg.Policy.RequireResume)
}
