package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"todo_webapp/internal/service"

	"github.com/gin-gonic/gin"
)

func newProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", JWT(), func(c *gin.Context) {
		uid := c.GetInt64(CtxUserID)
		c.JSON(http.StatusOK, gin.H{"user_id": uid, "username": c.GetString(CtxUsername)})
	})
	return r
}

func doGet(t *testing.T, r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTMissingHeader(t *testing.T) {
	service.InitJWT("mw-test-secret")
	r := newProtectedRouter()

	if w := doGet(t, r, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("no header: got %d want 401", w.Code)
	}
}

func TestJWTMalformedAndInvalid(t *testing.T) {
	service.InitJWT("mw-test-secret")
	r := newProtectedRouter()

	cases := []string{
		"Bearer",             // no token part
		"Basic abc",          // wrong scheme
		"Bearer not.a.token", // garbage token
		"Bearer x y",         // too many fields
	}
	for _, h := range cases {
		if w := doGet(t, r, h); w.Code != http.StatusForbidden {
			t.Fatalf("header %q: got %d want 403", h, w.Code)
		}
	}
}

func TestJWTValidToken(t *testing.T) {
	service.InitJWT("mw-test-secret")
	r := newProtectedRouter()

	token, err := service.GenerateJWT(99, "dave")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	w := doGet(t, r, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("valid token: got %d want 200 (body %s)", w.Code, w.Body)
	}
}

func TestJWTWrongSecretIsForbidden(t *testing.T) {
	service.InitJWT("other-secret")
	token, err := service.GenerateJWT(99, "dave")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	service.InitJWT("mw-test-secret")
	r := newProtectedRouter()
	if w := doGet(t, r, "Bearer "+token); w.Code != http.StatusForbidden {
		t.Fatalf("forged token: got %d want 403", w.Code)
	}
}
