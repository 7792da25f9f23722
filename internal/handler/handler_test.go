package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gramvista/internal/repository"
	"gramvista/internal/service"
	"gramvista/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	store := repository.NewMemoryStore()
	log := zerolog.Nop()
	jwtUtil := utils.NewJWTUtil("handler-test-secret", utils.TokenLifetime)
	return NewRouter(Services{
		Auth:     service.NewAuthService(store, jwtUtil, service.NewLogResetNotifier(log), log),
		Products: service.NewProductService(store.Products()),
		Bookings: service.NewBookingService(store.Bookings(), store),
	}, log, nil)
}

func call(t *testing.T, r http.Handler, method, path, token string, body any) (int, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 && w.Body.Bytes()[0] == '{' {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w.Code, out
}

func callList(t *testing.T, r http.Handler, path, token string) (int, []map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out []map[string]any
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w.Code, out
}

type creds struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func TestAuthRoutes_UserFlow(t *testing.T) {
	r := newTestRouter(t)

	code, body := call(t, r, http.MethodPost, "/api/auth/user/signup", "", creds{"u@x.com", "pw"})
	require.Equal(t, http.StatusCreated, code)
	assert.NotEmpty(t, body["token"])
	assert.Equal(t, "/user/dashboard", body["redirect"])
	assert.NotContains(t, body, "vendorId")

	code, body = call(t, r, http.MethodPost, "/api/auth/user/login", "", creds{"u@x.com", "pw"})
	require.Equal(t, http.StatusOK, code)
	token := body["token"].(string)

	code, body = call(t, r, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "user", body["role"])
}

func TestAuthRoutes_VendorFlow(t *testing.T) {
	r := newTestRouter(t)

	code, body := call(t, r, http.MethodPost, "/api/auth/vendor/signup", "", creds{"v@x.com", "pw1"})
	require.Equal(t, http.StatusCreated, code)
	vendorID := body["vendorId"].(string)
	assert.Regexp(t, `^VENDOR-[0-9a-f]{8}$`, vendorID)
	assert.Equal(t, "/vendor/dashboard", body["redirect"])

	code, body = call(t, r, http.MethodPost, "/api/auth/vendor/login", "", creds{"v@x.com", "wrongpw"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, service.ErrInvalidCredentials.Error(), body["message"])

	code, body = call(t, r, http.MethodPost, "/api/auth/vendor/login", "", creds{"v@x.com", "pw1"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, vendorID, body["vendorId"])
}

func TestAuthRoutes_PaddedEmail(t *testing.T) {
	r := newTestRouter(t)

	code, body := call(t, r, http.MethodPost, "/api/auth/user/signup", "", creds{" V@X.com ", "pw"})
	require.Equal(t, http.StatusCreated, code, body)

	code, _ = call(t, r, http.MethodPost, "/api/auth/user/login", "", creds{"v@x.com", "pw"})
	assert.Equal(t, http.StatusOK, code)

	code, _ = call(t, r, http.MethodPost, "/api/auth/vendor/signup", "", creds{"v@x.com", "pw"})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestAuthRoutes_Errors(t *testing.T) {
	r := newTestRouter(t)

	code, _ := call(t, r, http.MethodPost, "/api/auth/user/signup", "", creds{"dup@x.com", "pw"})
	require.Equal(t, http.StatusCreated, code)

	tests := []struct {
		name   string
		path   string
		body   any
		status int
	}{
		{"duplicate across roles", "/api/auth/vendor/signup", creds{"dup@x.com", "pw"}, http.StatusBadRequest},
		{"malformed email", "/api/auth/user/signup", creds{"not-an-email", "pw"}, http.StatusBadRequest},
		{"missing password", "/api/auth/user/login", creds{"dup@x.com", ""}, http.StatusBadRequest},
		{"login wrong role", "/api/auth/vendor/login", creds{"dup@x.com", "pw"}, http.StatusNotFound},
		{"login unknown", "/api/auth/user/login", creds{"ghost@x.com", "pw"}, http.StatusNotFound},
		{"reset unknown", "/api/auth/forgot-password", map[string]string{"email": "ghost@x.com"}, http.StatusNotFound},
		{"reset known", "/api/auth/forgot-password", map[string]string{"email": "dup@x.com"}, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := call(t, r, http.MethodPost, tt.path, "", tt.body)
			assert.Equal(t, tt.status, code)
			assert.NotEmpty(t, body["message"])
		})
	}
}

func TestProductRoutes_RoleGating(t *testing.T) {
	r := newTestRouter(t)

	_, vendor := call(t, r, http.MethodPost, "/api/auth/vendor/signup", "", creds{"v@x.com", "pw"})
	_, user := call(t, r, http.MethodPost, "/api/auth/user/signup", "", creds{"u@x.com", "pw"})
	vendorToken := vendor["token"].(string)
	userToken := user["token"].(string)

	product := map[string]any{"productType": "honey", "quantity": 5, "description": "forest honey", "price": 45000}

	code, _ := call(t, r, http.MethodPost, "/api/product", "", product)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = call(t, r, http.MethodPost, "/api/product", userToken, product)
	assert.Equal(t, http.StatusForbidden, code)

	code, created := call(t, r, http.MethodPost, "/api/product", vendorToken, product)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "honey", created["productType"])

	code, _ = call(t, r, http.MethodPost, "/api/product", vendorToken, map[string]any{"productType": "honey"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, mine := callList(t, r, "/api/product", vendorToken)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, mine, 1)

	code, filtered := callList(t, r, "/api/product/filter/honey", "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, filtered, 1)
}

func TestBookingRoutes_RoleGating(t *testing.T) {
	r := newTestRouter(t)

	_, vendor := call(t, r, http.MethodPost, "/api/auth/vendor/signup", "", creds{"v@x.com", "pw"})
	_, user := call(t, r, http.MethodPost, "/api/auth/user/signup", "", creds{"u@x.com", "pw"})
	vendorToken := vendor["token"].(string)
	userToken := user["token"].(string)

	_, me := call(t, r, http.MethodGet, "/api/auth/me", vendorToken, nil)
	providerID := me["id"]

	booking := map[string]any{"className": "pottery", "time": "10:00", "provider": providerID, "date": "2024-07-01T00:00:00Z"}

	code, _ := call(t, r, http.MethodPost, "/api/experienceBooking", vendorToken, booking)
	assert.Equal(t, http.StatusForbidden, code)

	code, created := call(t, r, http.MethodPost, "/api/experienceBooking", userToken, booking)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "pottery", created["className"])

	booking["provider"] = 9999
	code, _ = call(t, r, http.MethodPost, "/api/experienceBooking", userToken, booking)
	assert.Equal(t, http.StatusNotFound, code)

	code, mine := callList(t, r, "/api/experienceBooking", userToken)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, mine, 1)
}

func TestHealth(t *testing.T) {
	log := zerolog.Nop()
	healthy := NewRouter(Services{}, log, func(context.Context) error { return nil })
	unhealthy := NewRouter(Services{}, log, func(context.Context) error { return errors.New("down") })

	code, body := call(t, healthy, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])

	code, _ = call(t, unhealthy, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, code)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFor(service.ErrDuplicateEmail))
	assert.Equal(t, http.StatusUnauthorized, statusFor(service.ErrExpired))
	assert.Equal(t, http.StatusForbidden, statusFor(service.ErrForbidden))
	assert.Equal(t, http.StatusNotFound, statusFor(service.ErrNotFound))
	assert.Equal(t, http.StatusInternalServerError, statusFor(errors.New("boom")))
}
