package server

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/roost-dev/roost/internal/auth"
	"github.com/roost-dev/roost/internal/models"
)

const (
	bearerPrefix = "Bearer "
	basicPrefix  = "Basic "
)

var (
	ErrMissingAuthHeader = errors.New("missing authorization header")
	ErrInvalidAuthFormat = errors.New("invalid authorization header format")
	ErrInvalidToken      = errors.New("invalid token")
	ErrInvalidBasicPair  = errors.New("invalid basic credentials")
	ErrUserNotFound      = errors.New("user not found")
)

func setSession(c *gin.Context, sessionData *auth.SessionData) {
	c.Set("session", sessionData)
}

// GetSessionData returns the authenticated session attached to the request
func GetSessionData(c *gin.Context) (*auth.SessionData, bool) {
	session, exists := c.Get("session")
	if !exists {
		return nil, false
	}

	sessionData, ok := session.(*auth.SessionData)
	return sessionData, ok
}

func respondWithError(c *gin.Context, log zerolog.Logger, statusCode int, err error, message string) {
	log.Warn().Err(err).Msg(message)
	c.JSON(statusCode, gin.H{"error": message})
	c.Abort()
}

// AuthMiddleware authenticates requests. Both credential schemes the
// platform's clients emit are accepted here: "Bearer <jwt>" and
// "Basic <base64 email:password>". This middleware and the CLI gateway are
// the only two places that know about both.
func AuthMiddleware(db *gorm.DB, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		var sessionData *auth.SessionData
		var err error

		switch {
		case authHeader == "":
			respondWithError(c, log, http.StatusUnauthorized, ErrMissingAuthHeader, "Missing authorization header")
			return
		case strings.HasPrefix(authHeader, bearerPrefix):
			sessionData, err = authenticateBearer(db, strings.TrimPrefix(authHeader, bearerPrefix))
		case strings.HasPrefix(authHeader, basicPrefix):
			sessionData, err = authenticateBasic(db, strings.TrimPrefix(authHeader, basicPrefix))
		default:
			respondWithError(c, log, http.StatusUnauthorized, ErrInvalidAuthFormat, "Invalid authorization header format")
			return
		}

		if err != nil {
			respondWithError(c, log, http.StatusUnauthorized, err, "Invalid or expired credentials")
			return
		}

		setSession(c, sessionData)
		c.Next()
	}
}

func authenticateBearer(db *gorm.DB, token string) (*auth.SessionData, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	claims, err := auth.ValidateToken(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	// Verify user still exists
	var user models.User
	if err := models.FindByID(db, claims.UserID, &user); err != nil {
		return nil, ErrUserNotFound
	}

	return &auth.SessionData{
		UserID:     user.ID,
		Email:      user.Email,
		Role:       user.Role,
		AuthMethod: "jwt",
	}, nil
}

func authenticateBasic(db *gorm.DB, encoded string) (*auth.SessionData, error) {
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrInvalidBasicPair
	}

	email, password, ok := strings.Cut(string(decoded), ":")
	if !ok || email == "" {
		return nil, ErrInvalidBasicPair
	}

	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, ErrUserNotFound
	}

	if err := auth.VerifyPassword(password, user.PasswordHash); err != nil {
		return nil, ErrInvalidBasicPair
	}

	return &auth.SessionData{
		UserID:     user.ID,
		Email:      user.Email,
		Role:       user.Role,
		AuthMethod: "basic",
	}, nil
}

// RoleMiddleware ensures the authenticated user holds one of the given roles
func RoleMiddleware(log zerolog.Logger, roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionData, exists := GetSessionData(c)
		if !exists {
			respondWithError(c, log, http.StatusUnauthorized, errors.New("no session"), "Unauthorized")
			return
		}

		for _, role := range roles {
			if sessionData.Role == role {
				c.Next()
				return
			}
		}

		respondWithError(c, log, http.StatusForbidden, errors.New("insufficient role"), "Access denied")
	}
}
