package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Baaaki/gigflow/internal/models"
	"github.com/Baaaki/gigflow/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/private", AuthMiddleware(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": ActorID(c).String()})
	})
	router.GET("/public", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": ActorID(c).String()})
	})
	return router
}

func issueToken(t *testing.T, ttl time.Duration) (uuid.UUID, string) {
	user := &models.User{ID: uuid.New(), Name: "Ada", Email: "ada@example.com"}
	token, err := utils.GenerateToken(user, testSecret, ttl)
	require.NoError(t, err)
	return user.ID, token
}

func TestAuthMiddleware_AcceptsCookie(t *testing.T) {
	userID, token := issueToken(t, time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: token})
	w := httptest.NewRecorder()

	newAuthRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
}

func TestAuthMiddleware_AcceptsBearerHeader(t *testing.T) {
	userID, token := issueToken(t, time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	newAuthRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	_, expired := issueToken(t, -time.Hour)
	_, valid := issueToken(t, time.Hour)

	testCases := []struct {
		name   string
		cookie string
		header string
	}{
		{name: "no_credentials"},
		{name: "expired_cookie", cookie: expired},
		{name: "garbage_cookie", cookie: "not-a-token"},
		{name: "missing_bearer_prefix", header: valid},
		{name: "basic_auth", header: "Basic dXNlcjpwYXNz"},
		{name: "tampered_bearer", header: "Bearer " + valid[:len(valid)-3] + "abc"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: tc.cookie})
			}
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()

			newAuthRouter().ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "error")
		})
	}
}

func TestActorID_NilWithoutAuth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	w := httptest.NewRecorder()

	newAuthRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), uuid.Nil.String())
}

func TestSecurityHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(SecurityHeadersMiddleware(), HSTSMiddleware(true))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, w.Header().Get("Strict-Transport-Security"))
}

func TestHSTS_OffOutsideProduction(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(HSTSMiddleware(false))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Empty(t, w.Header().Get("Strict-Transport-Security"))
}
