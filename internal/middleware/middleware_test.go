package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentify/internal/models"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET_KEY")))
	require.NoError(t, err)
	return signed
}

func protectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		role, _ := c.Get("role")
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "role": role})
	})
	return router
}

func requestWithToken(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	os.Setenv("JWT_SECRET_KEY", "test-secret-key")
	defer os.Unsetenv("JWT_SECRET_KEY")

	router := protectedRouter()

	t.Run("valid token", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{
			"user_id": 5,
			"email":   "jan@example.com",
			"role":    string(models.RoleTenant),
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
		w := requestWithToken(router, token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		w := requestWithToken(router, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{
			"user_id": 5,
			"email":   "jan@example.com",
			"role":    string(models.RoleTenant),
			"exp":     time.Now().Add(-time.Hour).Unix(),
		})
		w := requestWithToken(router, token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": 5,
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
		signed, err := token.SignedString([]byte("another-secret"))
		require.NoError(t, err)
		w := requestWithToken(router, signed)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	// A validly signed token whose claims carry the wrong types must be
	// rejected, not crash the handler chain.
	t.Run("malformed claim types", func(t *testing.T) {
		cases := []jwt.MapClaims{
			{"user_id": "five", "email": "jan@example.com", "role": string(models.RoleTenant),
				"exp": time.Now().Add(time.Hour).Unix()},
			{"user_id": 5, "email": "jan@example.com", "role": 42,
				"exp": time.Now().Add(time.Hour).Unix()},
			{"email": "jan@example.com", "role": string(models.RoleTenant),
				"exp": time.Now().Add(time.Hour).Unix()},
		}
		for _, claims := range cases {
			w := requestWithToken(router, signToken(t, claims))
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		}
	})
}

func TestRequireRoles(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin-only", func(c *gin.Context) {
		c.Set("role", models.RoleTenant)
		c.Next()
	}, RequireRoles(models.RoleAdmin, models.RoleModerator), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "success"})
	})
	router.GET("/mod-ok", func(c *gin.Context) {
		c.Set("role", models.RoleModerator)
		c.Next()
	}, RequireRoles(models.RoleAdmin, models.RoleModerator), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "success"})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin-only", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/mod-ok", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
