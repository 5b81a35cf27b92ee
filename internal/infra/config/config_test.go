package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTP.Address)
	require.Equal(t, 12000, cfg.Clarity.MaxTextLen)
	require.Equal(t, 10*time.Second, cfg.Clarity.FetchTimeout)
	require.Equal(t, 20*time.Second, cfg.LLM.Timeout)
	require.Empty(t, cfg.LLM.APIKey)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDRESS", ":9090")
	t.Setenv("LLM_API_KEY", "sk-test")
	t.Setenv("CLARITY_MAX_TEXT_LEN", "4000")
	t.Setenv("PAGE_FETCH_TIMEOUT", "3s")
	t.Setenv("HTTP_CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTP.Address)
	require.Equal(t, "sk-test", cfg.LLM.APIKey)
	require.Equal(t, 4000, cfg.Clarity.MaxTextLen)
	require.Equal(t, 3*time.Second, cfg.Clarity.FetchTimeout)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.CORSOrigins)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := defaultConfig()
	cfg.Clarity.MaxTextLen = 0
	require.Error(t, cfg.Validate())

	cfg = defaultConfig()
	cfg.HTTP.Address = ""
	require.Error(t, cfg.Validate())

	cfg = defaultConfig()
	cfg.LLM.Timeout = 0
	require.Error(t, cfg.Validate())
}
