package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	SupabaseURL         string
	SupabaseAnonKey     string
	SupabaseServiceKey  string
	JWTSecret           string
	Port                string
	Environment         string
	AllowedOrigins      []string
	PreviewOriginSuffix string
	WhatsAppAPIURL      string
	WhatsAppAPIToken    string
}

func NewConfig() *Config {
	allowedOriginsStr := os.Getenv("ALLOWED_ORIGINS")
	allowedOrigins := []string{"http://localhost:3000"}
	if allowedOriginsStr != "" {
		allowedOrigins = strings.Split(allowedOriginsStr, ",")
	}

	return &Config{
		SupabaseURL:         os.Getenv("SUPABASE_URL"),
		SupabaseAnonKey:     os.Getenv("SUPABASE_ANON_KEY"),
		SupabaseServiceKey:  os.Getenv("SUPABASE_SERVICE_ROLE_KEY"),
		JWTSecret:           os.Getenv("SUPABASE_JWT_SECRET"),
		Port:                getEnvOrDefault("PORT", "8080"),
		Environment:         getEnvOrDefault("ENVIRONMENT", "development"),
		AllowedOrigins:      allowedOrigins,
		PreviewOriginSuffix: getEnvOrDefault("PREVIEW_ORIGIN_SUFFIX", ".vercel.app"),
		WhatsAppAPIURL:      os.Getenv("WHATSAPP_API_URL"),
		WhatsAppAPIToken:    os.Getenv("WHATSAPP_API_TOKEN"),
	}
}

// Validate fails fast on missing Supabase credentials instead of letting
// every request fail later with an opaque client error.
func (c *Config) Validate() error {
	if c.SupabaseURL == "" {
		return fmt.Errorf("SUPABASE_URL is required")
	}
	if c.SupabaseAnonKey == "" {
		return fmt.Errorf("SUPABASE_ANON_KEY is required")
	}
	if c.SupabaseServiceKey == "" {
		return fmt.Errorf("SUPABASE_SERVICE_ROLE_KEY is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("SUPABASE_JWT_SECRET is required")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
