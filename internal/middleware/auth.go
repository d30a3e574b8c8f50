package middleware

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// SessionCookieName is the cookie carrying the signed admin session token.
	SessionCookieName = "admin_session"

	// SessionLifetime is the fixed expiry of an admin session. There is no
	// refresh or rotation; the admin logs in again when it lapses.
	SessionLifetime = 2 * time.Hour
)

// SessionClaims is the verified content of an admin session token.
type SessionClaims struct {
	AdminID uint
	Email   string
}

// GenerateSessionToken signs a session token for the given admin.
func GenerateSessionToken(adminID uint, email string) (string, time.Time, error) {
	expiresAt := time.Now().Add(SessionLifetime)
	claims := jwt.MapClaims{
		"admin_id": float64(adminID),
		"email":    email,
		"exp":      expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	return tokenString, expiresAt, err
}

// VerifySessionToken parses and validates a session token. Every admin
// handler composes with this single verifier via AdminAuthMiddleware.
func VerifySessionToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	session := &SessionClaims{}
	if adminID, exists := claims["admin_id"]; exists {
		id, ok := adminID.(float64)
		if !ok {
			return nil, fmt.Errorf("invalid admin_id claim")
		}
		session.AdminID = uint(id)
	}
	if email, exists := claims["email"]; exists {
		session.Email, _ = email.(string)
	}
	if session.AdminID == 0 {
		return nil, fmt.Errorf("missing admin_id claim")
	}

	return session, nil
}

// AdminAuthMiddleware gates admin routes on a valid session cookie.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookieName)
		if err != nil || tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		session, err := VerifySessionToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		c.Set("adminID", session.AdminID)
		c.Set("adminEmail", session.Email)

		c.Next()
	}
}
