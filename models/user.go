package models

// Identity is the current user as derived from the Supabase session. Missing
// metadata falls back to defaults rather than empty strings so the dashboard
// always has something to render.
type Identity struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Hospital string `json:"hospital"`
	Avatar   string `json:"avatar,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string    `json:"token"`
	User  *Identity `json:"user"`
}

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role,omitempty"`
	Hospital string `json:"hospital,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

type SignupResponse struct {
	Token                  string    `json:"token,omitempty"`
	User                   *Identity `json:"user,omitempty"`
	NeedsEmailConfirmation bool      `json:"needs_email_confirmation"`
}

type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty"`
	Role     *string `json:"role,omitempty"`
	Hospital *string `json:"hospital,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=6"`
}
