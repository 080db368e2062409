package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	os.Clearenv()

	cfg := NewConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	assert.Equal(t, ".vercel.app", cfg.PreviewOriginSuffix)
}

func TestOriginAllowed(t *testing.T) {
	cfg := &Config{
		AllowedOrigins:      []string{"http://localhost:3000"},
		PreviewOriginSuffix: ".vercel.app",
	}

	assert.True(t, originAllowed(cfg, "http://localhost:3000"))
	assert.True(t, originAllowed(cfg, "https://dashboard-git-main-acme.vercel.app"))
	assert.False(t, originAllowed(cfg, "https://evil.example.com"))
	assert.False(t, originAllowed(cfg, ""))

	// No suffix configured means exact matches only.
	cfg.PreviewOriginSuffix = ""
	assert.False(t, originAllowed(cfg, "https://dashboard-git-main-acme.vercel.app"))
}

func TestValidate_MissingCredentialsFailFast(t *testing.T) {
	os.Clearenv()

	cfg := NewConfig()
	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "SUPABASE_URL")
}

func TestValidate_Complete(t *testing.T) {
	os.Clearenv()
	os.Setenv("SUPABASE_URL", "https://example.supabase.co")
	os.Setenv("SUPABASE_ANON_KEY", "anon-key")
	os.Setenv("SUPABASE_SERVICE_ROLE_KEY", "service-key")
	os.Setenv("SUPABASE_JWT_SECRET", "jwt-secret")

	cfg := NewConfig()

	assert.NoError(t, cfg.Validate())
}

func TestNewConfig_AllowedOrigins(t *testing.T) {
	os.Clearenv()
	os.Setenv("ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")

	cfg := NewConfig()

	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
}
