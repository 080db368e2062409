package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Amit162-cloud/healthcarewebapp/config"
	"github.com/Amit162-cloud/healthcarewebapp/models"
	"github.com/Amit162-cloud/healthcarewebapp/session"
)

// Claims is the payload of a Supabase-issued access token. The project JWT
// secret signs these HS256, so they can be verified without a round trip.
type Claims struct {
	Email        string                 `json:"email,omitempty"`
	UserMetadata map[string]interface{} `json:"user_metadata,omitempty"`
	jwt.RegisteredClaims
}

// AuthMiddleware resolves the bearer token to an identity. A live session
// store wins (it has the freshest profile); otherwise the token itself is
// verified, so sessions survive a service restart.
func AuthMiddleware(cfg *config.Config, sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString := ""
		if authHeader != "" {
			// Extract token from "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.JSON(http.StatusUnauthorized, gin.H{
					"success": false,
					"error":   "Invalid authorization header format",
				})
				c.Abort()
				return
			}
			tokenString = parts[1]
		} else {
			// Fallback to HttpOnly cookie
			cookieToken, err := c.Cookie("token")
			if err != nil || cookieToken == "" {
				c.JSON(http.StatusUnauthorized, gin.H{
					"success": false,
					"error":   "Authorization required",
				})
				c.Abort()
				return
			}
			tokenString = cookieToken
		}

		if store, ok := sessions.Get(tokenString); ok {
			if identity, authed := store.Identity(); authed {
				setIdentity(c, tokenString, identity)
				c.Next()
				return
			}
			// Session known but signed out (e.g. pushed expiry).
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Session expired",
			})
			c.Abort()
			return
		}

		token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Invalid or expired token",
			})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(*Claims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Invalid token claims",
			})
			c.Abort()
			return
		}

		identity := session.MapProviderUser(&session.ProviderUser{
			ID:       claims.Subject,
			Email:    claims.Email,
			Metadata: claims.UserMetadata,
		})
		setIdentity(c, tokenString, identity)
		c.Next()
	}
}

func setIdentity(c *gin.Context, token string, identity models.Identity) {
	c.Set("access_token", token)
	c.Set("user_id", identity.ID)
	c.Set("email", identity.Email)
	c.Set("name", identity.Name)
	c.Set("role", identity.Role)
	c.Set("hospital", identity.Hospital)
	c.Set("avatar", identity.Avatar)
	c.Set("phone", identity.Phone)
}

// AdminChecker answers whether an identity has a row in the admins table.
type AdminChecker interface {
	IsAdmin(userID string) (bool, error)
}

// RequireAdmin gates elevated routes on the admins table. A check error is
// treated as denial: authorization failures fail closed, never open.
func RequireAdmin(checker AdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("user_id")
		userIDStr, ok := userID.(string)
		if !exists || !ok || userIDStr == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Authorization required",
			})
			c.Abort()
			return
		}

		isAdmin, err := checker.IsAdmin(userIDStr)
		if err != nil {
			fmt.Printf("[RequireAdmin] Admin check error for %s: %v\n", userIDStr, err)
			isAdmin = false
		}
		if !isAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "You don't have permission to access the dashboard. Only administrators can access this area.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
