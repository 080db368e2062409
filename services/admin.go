package services

import (
	"encoding/json"

	supa "github.com/supabase-community/supabase-go"
)

// SupabaseAdminChecker looks up elevated privilege in the admins table. Row
// existence keyed by user id is the whole authorization model.
type SupabaseAdminChecker struct {
	supabase *supa.Client
}

func NewSupabaseAdminChecker(supabase *supa.Client) *SupabaseAdminChecker {
	return &SupabaseAdminChecker{supabase: supabase}
}

func (a *SupabaseAdminChecker) IsAdmin(userID string) (bool, error) {
	data, _, err := a.supabase.From("admins").
		Select("id", "", false).
		Eq("user_id", userID).
		Execute()
	if err != nil {
		return false, err
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(data, &rows); err != nil {
		return false, err
	}
	return len(rows) > 0, nil
}
