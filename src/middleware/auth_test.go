package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fabtrack/fabtrack-backend/src/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func newTestRouter(extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handlers := append([]gin.HandlerFunc{AuthMiddleware()}, extra...)
	handlers = append(handlers, func(ctx *gin.Context) {
		user, ok := CurrentUser(ctx)
		if !ok {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "no identity"})
			return
		}
		ctx.JSON(http.StatusOK, user)
	})
	router.GET("/protected", handlers...)
	return router
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	SetSecretKey("test-secret")
	router := newTestRouter()

	token := signToken(t, "test-secret", jwt.MapClaims{
		"id":    float64(7),
		"email": "ama@lab.edu",
		"role":  string(models.RoleStudent),
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	recorder := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "ama@lab.edu")
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	SetSecretKey("test-secret")
	router := newTestRouter()

	recorder := doRequest(router, "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = doRequest(router, "Basic abc")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAuthMiddlewareRejectsBadSignature(t *testing.T) {
	SetSecretKey("test-secret")
	router := newTestRouter()

	token := signToken(t, "other-secret", jwt.MapClaims{
		"id":  float64(7),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	recorder := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	SetSecretKey("test-secret")
	router := newTestRouter()

	token := signToken(t, "test-secret", jwt.MapClaims{
		"id":  float64(7),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	recorder := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireRolesGuardsAdminRoutes(t *testing.T) {
	SetSecretKey("test-secret")
	router := newTestRouter(RequireRoles(string(models.RoleAdmin)))

	studentToken := signToken(t, "test-secret", jwt.MapClaims{
		"id":   float64(7),
		"role": string(models.RoleStudent),
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	recorder := doRequest(router, "Bearer "+studentToken)
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	adminToken := signToken(t, "test-secret", jwt.MapClaims{
		"id":   float64(1),
		"role": string(models.RoleAdmin),
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	recorder = doRequest(router, "Bearer "+adminToken)
	assert.Equal(t, http.StatusOK, recorder.Code)
}
