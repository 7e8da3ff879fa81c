package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, role string, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id":  "11111111-1111-1111-1111-111111111111",
		"nik":      "3201010101010001",
		"role":     role,
		"position": "DRIVER",
		"exp":      time.Now().Add(expiresIn).Unix(),
		"iat":      time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func protectedRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := []gin.HandlerFunc{JWTAuth(testSecret)}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRole(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		claims := GetClaims(c)
		c.JSON(http.StatusOK, gin.H{"nik": claims.NIK, "role": claims.Role})
	})
	r.GET("/protected", handlers...)
	return r
}

func request(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth(t *testing.T) {
	r := protectedRouter()

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not a bearer scheme", "Basic abc123", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.jwt", http.StatusUnauthorized},
		{"expired token", "Bearer " + signToken(t, testSecret, "FIELD", -time.Hour), http.StatusUnauthorized},
		{"wrong secret", "Bearer " + signToken(t, "other-secret", "FIELD", time.Hour), http.StatusUnauthorized},
		{"valid token", "Bearer " + signToken(t, testSecret, "FIELD", time.Hour), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := request(r, tt.authHeader)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	r := protectedRouter("SUPER_ADMIN")

	w := request(r, "Bearer "+signToken(t, testSecret, "FIELD", time.Hour))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = request(r, "Bearer "+signToken(t, testSecret, "SUPER_ADMIN", time.Hour))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetClaimsExposesIdentity(t *testing.T) {
	r := protectedRouter()

	w := request(r, "Bearer "+signToken(t, testSecret, "FIELD", time.Hour))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "3201010101010001")
}
