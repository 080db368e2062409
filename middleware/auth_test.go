package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amit162-cloud/healthcarewebapp/config"
	"github.com/Amit162-cloud/healthcarewebapp/session"
)

const testSecret = "test-jwt-secret"

func testRouter(checker AdminChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{JWTSecret: testSecret}
	router := gin.New()
	protected := router.Group("", AuthMiddleware(cfg, session.NewManager()))
	protected.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":   c.GetString("name"),
			"avatar": c.GetString("avatar"),
			"phone":  c.GetString("phone"),
		})
	})
	if checker != nil {
		admin := protected.Group("", RequireAdmin(checker))
		admin.GET("/dashboard", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"success": true})
		})
	}
	return router
}

func signToken(t *testing.T, sub string) string {
	t.Helper()
	claims := Claims{
		Email: "priya@citygeneral.org",
		UserMetadata: map[string]interface{}{
			"name":   "Priya Patel",
			"role":   "Admin",
			"avatar": "https://cdn.citygeneral.org/avatars/priya.png",
			"phone":  "+919876511111",
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

type stubChecker struct {
	isAdmin bool
	err     error
}

func (s stubChecker) IsAdmin(userID string) (bool, error) { return s.isAdmin, s.err }

func TestAuthMiddleware_MissingToken(t *testing.T) {
	router := testRouter(nil)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	router := testRouter(nil)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Token abc")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	router := testRouter(nil)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	router := testRouter(nil)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "u-1"))

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Priya Patel")
}

func TestAuthMiddleware_CarriesFullProfile(t *testing.T) {
	router := testRouter(nil)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "u-1"))

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	// Avatar and phone ride the token metadata and must survive into the
	// request context alongside the core fields.
	assert.Contains(t, w.Body.String(), "https://cdn.citygeneral.org/avatars/priya.png")
	assert.Contains(t, w.Body.String(), "+919876511111")
}

func TestAuthMiddleware_CookieFallback(t *testing.T) {
	router := testRouter(nil)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: signToken(t, "u-1")})

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdmin_Granted(t *testing.T) {
	router := testRouter(stubChecker{isAdmin: true})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "u-1"))

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdmin_NonAdminDenied(t *testing.T) {
	router := testRouter(stubChecker{isAdmin: false})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "u-1"))

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdmin_CheckerErrorFailsClosed(t *testing.T) {
	router := testRouter(stubChecker{isAdmin: true, err: errors.New("query failed")})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "u-1"))

	router.ServeHTTP(w, req)

	// A failing admin lookup must deny, never grant.
	assert.Equal(t, http.StatusForbidden, w.Code)
}
