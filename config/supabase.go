package config

import (
	"log"

	supa "github.com/supabase-community/supabase-go"
)

// NewSupabaseClient builds the service-role client used for privileged reads
// (admin lookups) and the durable appointments table.
func NewSupabaseClient(cfg *Config) *supa.Client {
	client, err := supa.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, nil)
	if err != nil {
		log.Fatalf("Failed to create Supabase client: %v", err)
	}
	return client
}

// NewAnonClient builds the anon-key client used for end-user auth flows, so
// sign-ins run with the same privileges the dashboard itself would have.
func NewAnonClient(cfg *Config) *supa.Client {
	client, err := supa.NewClient(cfg.SupabaseURL, cfg.SupabaseAnonKey, nil)
	if err != nil {
		log.Fatalf("Failed to create Supabase anon client: %v", err)
	}
	return client
}
