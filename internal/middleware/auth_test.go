package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret")
	os.Exit(m.Run())
}

func TestSessionTokenRoundTrip(t *testing.T) {
	token, expiresAt, err := GenerateSessionToken(42, "admin@example.com")
	if err != nil {
		t.Fatalf("GenerateSessionToken failed: %v", err)
	}

	remaining := time.Until(expiresAt)
	if remaining <= 0 || remaining > SessionLifetime {
		t.Errorf("Expected expiry within the session lifetime, got %s", remaining)
	}

	claims, err := VerifySessionToken(token)
	if err != nil {
		t.Fatalf("VerifySessionToken failed: %v", err)
	}
	if claims.AdminID != 42 {
		t.Errorf("Expected admin ID 42, got %d", claims.AdminID)
	}
	if claims.Email != "admin@example.com" {
		t.Errorf("Expected email 'admin@example.com', got '%s'", claims.Email)
	}
}

func TestVerifySessionTokenRejectsBadTokens(t *testing.T) {
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"admin_id": float64(1),
		"exp":      time.Now().Add(-time.Minute).Unix(),
	})
	expiredString, err := expired.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("Failed to sign expired token: %v", err)
	}

	wrongKey := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"admin_id": float64(1),
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	wrongKeyString, err := wrongKey.SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}

	noAdmin := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	noAdminString, err := noAdmin.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"expired", expiredString},
		{"wrong signing key", wrongKeyString},
		{"missing admin claim", noAdminString},
	}

	for _, test := range tests {
		if _, err := VerifySessionToken(test.token); err == nil {
			t.Errorf("%s: expected verification to fail", test.name)
		}
	}
}

func TestAdminAuthMiddleware(t *testing.T) {
	r := gin.New()
	r.GET("/protected", AdminAuthMiddleware(), func(c *gin.Context) {
		adminID, _ := c.Get("adminID")
		c.JSON(http.StatusOK, gin.H{"adminId": adminID})
	})

	validToken, _, err := GenerateSessionToken(7, "admin@example.com")
	if err != nil {
		t.Fatalf("GenerateSessionToken failed: %v", err)
	}

	tests := []struct {
		name           string
		cookie         *http.Cookie
		expectedStatus int
	}{
		{
			name:           "missing cookie",
			cookie:         nil,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid token",
			cookie:         &http.Cookie{Name: SessionCookieName, Value: "bogus"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "valid session",
			cookie:         &http.Cookie{Name: SessionCookieName, Value: validToken},
			expectedStatus: http.StatusOK,
		},
	}

	for _, test := range tests {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if test.cookie != nil {
			req.AddCookie(test.cookie)
		}

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != test.expectedStatus {
			t.Errorf("%s: expected status %d, got %d", test.name, test.expectedStatus, w.Code)
		}
	}
}
