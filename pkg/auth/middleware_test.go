package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	jwtService := NewJWTService(testSecret)
	player, _ := jwtService.GenerateJWT("u1", RolePlayer, time.Now().Add(time.Hour))
	admin, _ := jwtService.GenerateJWT("a1", RoleAdmin, time.Now().Add(time.Hour))

	protected := AuthMiddleware(jwtService)(AdminOnly(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "a1", UserID(r.Context()))
		w.WriteHeader(http.StatusNoContent)
	})))

	tests := []struct {
		name         string
		header       string
		expectedCode int
	}{
		{name: "No header", expectedCode: http.StatusUnauthorized},
		{name: "Not bearer", header: "Basic abc", expectedCode: http.StatusUnauthorized},
		{name: "Bad token", header: "Bearer nope", expectedCode: http.StatusUnauthorized},
		{name: "Player is forbidden", header: "Bearer " + player, expectedCode: http.StatusForbidden},
		{name: "Admin passes", header: "Bearer " + admin, expectedCode: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			protected.ServeHTTP(w, req)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
