package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/crowsnest/user-directory/internal/cqrs"
	"github.com/gin-gonic/gin"
)

type mockAuthQuerier struct {
	loginFn func(cqrs.LoginCommand) (int64, error)
}

func (m *mockAuthQuerier) Login(cmd cqrs.LoginCommand) (int64, error) {
	if m.loginFn != nil {
		return m.loginFn(cmd)
	}
	return 0, fmt.Errorf("not configured")
}

func newAuthTestRouter(qrys AuthQuerier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthHandler(qrys)
	r.POST("/login", h.Login)
	return r
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		loginFn        func(cqrs.LoginCommand) (int64, error)
		expectedStatus int
	}{
		{
			name:           "success - valid credentials",
			body:           map[string]interface{}{"email": "alice@example.com", "password": "secret"},
			loginFn:        func(cmd cqrs.LoginCommand) (int64, error) { return 1, nil },
			expectedStatus: http.StatusOK,
		},
		{
			name:           "bad request - missing password",
			body:           map[string]interface{}{"email": "alice@example.com"},
			loginFn:        nil,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad request - missing email",
			body:           map[string]interface{}{"password": "secret"},
			loginFn:        nil,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unauthorized - bad credentials",
			body: map[string]interface{}{"email": "alice@example.com", "password": "wrong"},
			loginFn: func(cmd cqrs.LoginCommand) (int64, error) {
				return 0, fmt.Errorf("invalid credentials")
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAuthTestRouter(&mockAuthQuerier{loginFn: tt.loginFn})
			w := userDoRequest(router, http.MethodPost, "/login", tt.body)
			if w.Code != tt.expectedStatus {
				t.Errorf("[%s] expected status %d, got %d; body: %s", tt.name, tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestLoginSuccessPayload(t *testing.T) {
	router := newAuthTestRouter(&mockAuthQuerier{
		loginFn: func(cmd cqrs.LoginCommand) (int64, error) { return 42, nil },
	})
	w := userDoRequest(router, http.MethodPost, "/login", map[string]interface{}{
		"email": "alice@example.com", "password": "secret",
	})

	var resp struct {
		Status string `json:"status"`
		UserID int64  `json:"user_id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if resp.Status != "success" || resp.UserID != 42 {
		t.Errorf("unexpected payload: %s", w.Body.String())
	}
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestLoginFailureUniform(t *testing.T) {
	unknownEmail := &mockAuthQuerier{
		loginFn: func(cmd cqrs.LoginCommand) (int64, error) {
			return 0, fmt.Errorf("invalid credentials")
		},
	}
	wrongPassword := &mockAuthQuerier{
		loginFn: func(cmd cqrs.LoginCommand) (int64, error) {
			return 0, fmt.Errorf("invalid credentials")
		},
	}

	body := map[string]interface{}{"email": "who@example.com", "password": "whatever"}
	w1 := userDoRequest(newAuthTestRouter(unknownEmail), http.MethodPost, "/login", body)
	w2 := userDoRequest(newAuthTestRouter(wrongPassword), http.MethodPost, "/login", body)

	if w1.Code != http.StatusUnauthorized || w2.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", w1.Code, w2.Code)
	}
	if w1.Body.String() != w2.Body.String() {
		t.Errorf("failure payloads differ: %q vs %q", w1.Body.String(), w2.Body.String())
	}
	if w1.Body.String() != `{"status":"failed"}` {
		t.Errorf("unexpected failure payload: %s", w1.Body.String())
	}
}
