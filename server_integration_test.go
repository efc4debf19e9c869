package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// helper to perform requests with auth token
func performRequest(r http.Handler, method, path string, body io.Reader, token string, contentType string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func signTestToken(t *testing.T, username, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": username,
		"role":     role,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	s, err := token.SignedString(jwtSecret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	jwtSecret = []byte("test-secret")
	gin.SetMode(gin.TestMode)
	r := gin.New()
	setupRoutes(r)

	resp := performRequest(r, http.MethodGet, "/me", nil, "", "")
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.Code)
	}
	resp = performRequest(r, http.MethodGet, "/me", nil, "garbage", "")
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with bad token, got %d", resp.Code)
	}
}

func TestAuthMiddlewareAcceptsSignedToken(t *testing.T) {
	jwtSecret = []byte("test-secret")
	gin.SetMode(gin.TestMode)
	r := gin.New()
	setupRoutes(r)

	resp := performRequest(r, http.MethodGet, "/me", nil, signTestToken(t, "user1", "user"), "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid token, got %d: %s", resp.Code, resp.Body.String())
	}
	var body map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["username"] != "user1" {
		t.Fatalf("expected username user1, got %q", body["username"])
	}
}

func TestLoadDotEnvDoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	content := "# comment\nSLIPSCAN_TEST_A=from_file\nSLIPSCAN_TEST_B=from_file\n"
	if err := os.WriteFile(envPath, []byte(content), 0644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	old, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer os.Chdir(old)

	os.Setenv("SLIPSCAN_TEST_A", "preset")
	defer os.Unsetenv("SLIPSCAN_TEST_A")
	defer os.Unsetenv("SLIPSCAN_TEST_B")

	loadDotEnv()
	if v := os.Getenv("SLIPSCAN_TEST_A"); v != "preset" {
		t.Fatalf("loadDotEnv must not override existing vars, got %q", v)
	}
	if v := os.Getenv("SLIPSCAN_TEST_B"); v != "from_file" {
		t.Fatalf("expected from_file, got %q", v)
	}
}

func setupTestServer(t *testing.T) *gin.Engine {
	// integration tests are opt-in. Set DB_DSN_TEST=1 and DB_DSN to run them.
	if os.Getenv("DB_DSN_TEST") != "1" {
		t.Skip("integration tests are disabled; set DB_DSN_TEST=1 to enable")
	}
	jwtSecret = []byte("test-secret")
	gin.SetMode(gin.TestMode)
	tmp := t.TempDir()
	_ = os.Setenv("UPLOAD_BASE", tmp)
	initDB()
	r := gin.Default()
	setupRoutes(r)
	return r
}

func TestRegisterLoginFlow(t *testing.T) {
	r := setupTestServer(t)

	regBody, _ := json.Marshal(map[string]string{"username": "user1", "password": "pass123"})
	resp := performRequest(r, http.MethodPost, "/register", bytes.NewBuffer(regBody), "", "application/json")
	if resp.Code != 200 && resp.Code != 409 {
		t.Fatalf("register failed status=%d body=%s", resp.Code, resp.Body.String())
	}

	loginBody, _ := json.Marshal(map[string]string{"username": "user1", "password": "pass123"})
	resp = performRequest(r, http.MethodPost, "/login", bytes.NewBuffer(loginBody), "", "application/json")
	if resp.Code != 200 {
		t.Fatalf("login failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	var login struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &login); err != nil || login.Token == "" {
		t.Fatalf("expected token in login response, got %s", resp.Body.String())
	}

	resp = performRequest(r, http.MethodGet, "/lineups", nil, login.Token, "")
	if resp.Code != 200 {
		t.Fatalf("lineups failed status=%d body=%s", resp.Code, resp.Body.String())
	}
}
