package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	pkgLog "aquamon-api/pkg/log"
	"aquamon-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func testRouter(t *testing.T, manager scope.Manager) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := pkgLog.Init(pkgLog.ZapConfig{Level: pkgLog.LevelFatal, Mode: "development", Encoding: "console"})
	mw := New(l, manager)

	r := gin.New()
	r.GET("/protected", mw.Auth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestAuth_StatusByCredential(t *testing.T) {
	manager := scope.New(testSecret)
	token, err := manager.CreateToken(scope.Payload{UserID: "user-1", Username: "operator", Role: scope.RoleOperator})
	if err != nil {
		t.Fatalf("CreateToken() error = %v", err)
	}

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{
			name:       "missing header",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "present but invalid token",
			authHeader: "Bearer not-a-jwt",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "token signed with another key",
			authHeader: "Bearer " + mustToken(t, scope.New("ffffffffffffffffffffffffffffffff")),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "valid token",
			authHeader: "Bearer " + token,
			wantStatus: http.StatusOK,
		},
	}

	r := testRouter(t, manager)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func mustToken(t *testing.T, manager scope.Manager) string {
	t.Helper()
	token, err := manager.CreateToken(scope.Payload{UserID: "user-2", Username: "intruder", Role: scope.RoleOperator})
	if err != nil {
		t.Fatalf("CreateToken() error = %v", err)
	}
	return token
}
