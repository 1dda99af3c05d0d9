package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"bookmate_server/pkg/util/jwt"
)

func newAuthedEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/whoami", JWTAuth(), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("user_id"))
	})
	return engine
}

func doRequest(engine *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestJWTAuthAcceptsAccessToken(t *testing.T) {
	jwt.Init("test-secret", 15, 168)
	engine := newAuthedEngine()

	token, err := jwt.GenerateAccessToken("U1")
	if err != nil {
		t.Fatalf("generate access token: %v", err)
	}
	w := doRequest(engine, "Bearer "+token)
	if w.Code != http.StatusOK || w.Body.String() != "U1" {
		t.Fatalf("status = %d body = %q, want 200/U1", w.Code, w.Body.String())
	}
}

func TestJWTAuthRejectsMissingOrMalformed(t *testing.T) {
	jwt.Init("test-secret", 15, 168)
	engine := newAuthedEngine()

	if w := doRequest(engine, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("no header status = %d, want 401", w.Code)
	}
	if w := doRequest(engine, "Token abc"); w.Code != http.StatusUnauthorized {
		t.Fatalf("non-bearer status = %d, want 401", w.Code)
	}
	if w := doRequest(engine, "Bearer not-a-token"); w.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token status = %d, want 401", w.Code)
	}
}

func TestJWTAuthRejectsRefreshToken(t *testing.T) {
	jwt.Init("test-secret", 15, 168)
	engine := newAuthedEngine()

	// 刷新令牌的 subject 不是 access_token，不能直接访问接口
	token, tokenID, err := jwt.GenerateRefreshToken("U1")
	if err != nil {
		t.Fatalf("generate refresh token: %v", err)
	}
	if tokenID == "" {
		t.Fatal("refresh token id is empty")
	}
	if w := doRequest(engine, "Bearer "+token); w.Code != http.StatusUnauthorized {
		t.Fatalf("refresh token status = %d, want 401", w.Code)
	}
}

func TestJWTAuthRejectsWrongSecret(t *testing.T) {
	jwt.Init("test-secret", 15, 168)
	token, err := jwt.GenerateAccessToken("U1")
	if err != nil {
		t.Fatalf("generate access token: %v", err)
	}

	jwt.Init("other-secret", 15, 168)
	engine := newAuthedEngine()
	if w := doRequest(engine, "Bearer "+token); w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong secret status = %d, want 401", w.Code)
	}
}
