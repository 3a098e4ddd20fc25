package jwt

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken(t *testing.T) {
	jwtAuth := New("secret")

	tok, err := NewTokenWithSubject(jwtAuth, time.Hour, "ops@example.com")
	require.NoError(t, err)

	sub, err := VerifyToken(jwtAuth, tok)
	assert.NoError(t, err)
	assert.Equal(t, "ops@example.com", sub)

	_, err = VerifyToken(New("other"), tok)
	assert.Error(t, err)
}

func TestExpiredToken(t *testing.T) {
	jwtAuth := New("secret")

	tok, err := NewToken(jwtAuth, -time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(jwtAuth, tok)
	assert.Error(t, err)
}

func TestWithAuth(t *testing.T) {
	jwtAuth := New("secret")
	var got string
	h := WithAuth(jwtAuth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = Subject(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	tok, err := NewTokenWithSubject(jwtAuth, time.Hour, "ana")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"valid", "Bearer " + tok, http.StatusNoContent},
		{"missing", "", http.StatusUnauthorized},
		{"garbage", "Bearer abc", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
	assert.Equal(t, "ana", got)
}
