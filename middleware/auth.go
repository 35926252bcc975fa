package middleware

import (
	"net/http"
	"strings"

	"siddhi-hotel-backend/models"
	"siddhi-hotel-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const userContextKey = "currentUser"

func bearerToken(c *gin.Context) (string, bool) {
	auth := c.GetHeader("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(auth, "Bearer "), true
}

func loadUser(db *gorm.DB, secret, raw string) (*models.User, bool) {
	userID, _, err := utils.ParseAccessToken(secret, raw)
	if err != nil {
		return nil, false
	}
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return nil, false
	}
	return &user, true
}

// Auth validates the Bearer token and puts the authenticated user on the
// context. Requests without a valid token are rejected.
func Auth(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c)
		if !ok {
			utils.RespondError(c, http.StatusUnauthorized, "Access denied. No token provided.")
			c.Abort()
			return
		}
		user, ok := loadUser(db, secret, raw)
		if !ok {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid token.")
			c.Abort()
			return
		}
		c.Set(userContextKey, user)
		c.Next()
	}
}

// OptionalAuth extracts the user when a valid token is present but never
// rejects the request. Used by the assistant so anonymous guests can chat.
func OptionalAuth(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw, ok := bearerToken(c); ok {
			if user, ok := loadUser(db, secret, raw); ok {
				c.Set(userContextKey, user)
			}
		}
		c.Next()
	}
}

// AdminOnly requires a previously authenticated user with the ADMIN role.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || !user.IsAdmin() {
			utils.RespondError(c, http.StatusForbidden, "Access denied. Admin privileges required.")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by Auth or OptionalAuth.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
