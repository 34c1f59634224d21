package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"tourly/internal/shared/config"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT:   config.JWTConfig{Secret: "test-secret", JWTExpiresIn: time.Hour},
		Admin: config.AdminConfig{Username: "admin", Password: "s3cret"},
	}
}

func newTestService(t *testing.T, cfg *config.Config) Service {
	t.Helper()
	svc, err := NewService(cfg)
	require.NoError(t, err)
	return svc
}

func TestNewServiceRequiresPassword(t *testing.T) {
	cfg := testConfig()
	cfg.Admin.Password = ""

	_, err := NewService(cfg)
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	svc := newTestService(t, testConfig())

	resp, err := svc.Login(context.Background(), &LoginRequest{Username: "admin", Password: "s3cret"}, "127.0.0.1")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
	assert.Equal(t, Admin{Username: "admin", Role: RoleAdmin}, resp.User)

	claims, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.Type)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestLoginRejectsMismatch(t *testing.T) {
	svc := newTestService(t, testConfig())
	ctx := context.Background()

	_, err := svc.Login(ctx, &LoginRequest{Username: "admin", Password: "wrong"}, "127.0.0.1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, &LoginRequest{Username: "root", Password: "s3cret"}, "127.0.0.1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginWithPasswordHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hashed-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := testConfig()
	cfg.Admin.Password = ""
	cfg.Admin.PasswordHash = string(hash)
	svc := newTestService(t, cfg)

	_, err = svc.Login(context.Background(), &LoginRequest{Username: "admin", Password: "hashed-pass"}, "")
	assert.NoError(t, err)
}

func TestValidateTokenRejects(t *testing.T) {
	svc := newTestService(t, testConfig())

	_, err := svc.ValidateToken("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other, err := jwt.NewWithClaims(jwt.SigningMethodHS256, JWTClaims{
		Username: "admin", Role: RoleAdmin, Type: TokenTypeAccess,
	}).SignedString([]byte("another-secret"))
	require.NoError(t, err)
	_, err = svc.ValidateToken(other)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, JWTClaims{
		Username: "admin", Role: RoleAdmin, Type: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute))},
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, err = svc.ValidateToken(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func setupTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	r := gin.New()
	NewRouter(NewController(newTestService(t, cfg)), cfg).SetupRoutes(r.Group("/api"))
	return r
}

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestControllerLogin(t *testing.T) {
	r := setupTestRouter(t)

	rec := postJSON(r, "/api/auth/login", `{"username":"admin","password":"s3cret"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool          `json:"success"`
		Data    LoginResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.NotEmpty(t, body.Data.Token)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+body.Data.Token)
	me := httptest.NewRecorder()
	r.ServeHTTP(me, req)
	require.Equal(t, http.StatusOK, me.Code)
	assert.Contains(t, me.Body.String(), `"username":"admin"`)
}

func TestControllerLoginFailures(t *testing.T) {
	r := setupTestRouter(t)

	assert.Equal(t, http.StatusBadRequest, postJSON(r, "/api/auth/login", `{`).Code)
	assert.Equal(t, http.StatusBadRequest, postJSON(r, "/api/auth/login", `{"username":"admin"}`).Code)
	assert.Equal(t, http.StatusUnauthorized, postJSON(r, "/api/auth/login", `{"username":"admin","password":"nope"}`).Code)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
