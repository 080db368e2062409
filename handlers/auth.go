package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/supabase-community/gotrue-go/types"
	supa "github.com/supabase-community/supabase-go"

	"github.com/Amit162-cloud/healthcarewebapp/config"
	"github.com/Amit162-cloud/healthcarewebapp/models"
	"github.com/Amit162-cloud/healthcarewebapp/session"
)

type AuthHandler struct {
	anon     *supa.Client
	config   *config.Config
	sessions *session.Manager
}

func NewAuthHandler(anon *supa.Client, cfg *config.Config, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{
		anon:     anon,
		config:   cfg,
		sessions: sessions,
	}
}

// Login opens a session store for the client and delegates the credential
// check to Supabase. Wrong credentials are a plain 401; no detail leaks.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	store := session.NewStore(session.NewSupabaseProvider(h.anon))
	store.Init()

	if !store.Login(req.Email, req.Password) {
		store.Close()
		c.JSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Error:   "Invalid email or password",
		})
		return
	}

	token := store.AccessToken()
	h.sessions.Put(token, store)
	identity, _ := store.Identity()

	h.setSessionCookie(c, token)
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Login successful",
		Data: models.LoginResponse{
			Token: token,
			User:  &identity,
		},
	})
}

// Signup distinguishes three outcomes: provider rejection, account created
// pending email confirmation, and auto-confirmed with immediate session.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   fmt.Sprintf("Invalid request body: %v", err),
		})
		return
	}

	store := session.NewStore(session.NewSupabaseProvider(h.anon))
	store.Init()

	result := store.Signup(session.SignupData{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
		Hospital: req.Hospital,
		Phone:    req.Phone,
	})

	if !result.Success {
		store.Close()
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   result.Error,
		})
		return
	}

	if result.NeedsEmailConfirmation {
		store.Close()
		c.JSON(http.StatusCreated, models.Response{
			Success: true,
			Message: "Account created. Please confirm your email before signing in.",
			Data:    models.SignupResponse{NeedsEmailConfirmation: true},
		})
		return
	}

	token := store.AccessToken()
	h.sessions.Put(token, store)
	identity, _ := store.Identity()

	h.setSessionCookie(c, token)
	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Registration successful",
		Data: models.SignupResponse{
			Token: token,
			User:  &identity,
		},
	})
}

// Logout is best-effort against the provider and always drops the local
// session.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := contextString(c, "access_token")
	if store, ok := h.sessions.Get(token); ok {
		store.Logout()
	}
	h.sessions.Remove(token)

	c.SetCookie("token", "", -1, "/", "", h.secureCookies(c), true)
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Logged out",
	})
}

func (h *AuthHandler) GetMe(c *gin.Context) {
	identity := models.Identity{
		ID:       contextString(c, "user_id"),
		Name:     contextString(c, "name"),
		Email:    contextString(c, "email"),
		Role:     contextString(c, "role"),
		Hospital: contextString(c, "hospital"),
		Avatar:   contextString(c, "avatar"),
		Phone:    contextString(c, "phone"),
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    identity,
	})
}

// UpdateProfile writes permitted fields to provider metadata via the session
// store, re-attaching to the token if the store is gone (service restart).
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	token := contextString(c, "access_token")
	store, ok := h.sessions.Get(token)
	if !ok {
		store = session.NewStore(session.NewSupabaseProvider(h.anon).WithToken(token))
		store.Init()
		if !store.IsAuthenticated() {
			store.Close()
			c.JSON(http.StatusUnauthorized, models.Response{
				Success: false,
				Error:   "Session expired",
			})
			return
		}
		h.sessions.Put(token, store)
	}

	store.UpdateProfile(req)
	identity, _ := store.Identity()

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Profile updated successfully",
		Data:    identity,
	})
}

// ForgotPassword triggers the provider's recovery email. The response is the
// same whether or not the address exists.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if err := h.anon.Auth.Recover(types.RecoverRequest{Email: req.Email}); err != nil {
		fmt.Printf("[ForgotPassword] Recover error: %v\n", err)
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "If an account exists for that email, a reset link has been sent.",
	})
}

// ResetPassword sets a new password using the recovery token from the email
// link, passed as a bearer token.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Error:   "Recovery token required",
		})
		return
	}

	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Password must be at least 6 characters",
		})
		return
	}

	if _, err := h.anon.Auth.WithToken(token).UpdateUser(types.UpdateUserRequest{Password: &req.Password}); err != nil {
		fmt.Printf("[ResetPassword] Update error: %v\n", err)
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Failed to reset password",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Password updated successfully",
	})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie("token", token, 86400, "/", "", h.secureCookies(c), true)
}

func (h *AuthHandler) secureCookies(c *gin.Context) bool {
	return h.config.Environment == "production"
}

func bearerToken(c *gin.Context) string {
	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

func contextString(c *gin.Context, key string) string {
	if value, exists := c.Get(key); exists {
		if str, ok := value.(string); ok {
			return str
		}
	}
	return ""
}
