package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestStaticIdentityAlwaysResolves(t *testing.T) {
	provider := NewStaticIdentity("demo-user-123", "demo@example.com")
	req := httptest.NewRequest("GET", "/api/gym-classes", nil)
	req.Header.Set("Authorization", "Bearer garbage")

	identity, err := provider.Resolve(req)
	require.NoError(t, err)
	assert.Equal(t, Identity{Subject: "demo-user-123", Email: "demo@example.com"}, identity)
}

func TestTokenIdentity(t *testing.T) {
	provider, err := NewTokenIdentity(testSecret)
	require.NoError(t, err)

	valid, err := GenerateToken(testSecret, Identity{Subject: "u1", Email: "u1@example.com"}, time.Hour)
	require.NoError(t, err)
	expired, err := GenerateToken(testSecret, Identity{Subject: "u1"}, -time.Minute)
	require.NoError(t, err)
	foreign, err := GenerateToken([]byte("other-secret"), Identity{Subject: "u1"}, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name    string
		header  string
		query   string
		want    Identity
		wantErr error
	}{
		{name: "bearer header", header: "Bearer " + valid, want: Identity{Subject: "u1", Email: "u1@example.com"}},
		{name: "query token", query: "?token=" + valid, want: Identity{Subject: "u1", Email: "u1@example.com"}},
		{name: "missing", wantErr: ErrMissingToken},
		{name: "wrong scheme", header: "Basic abc", wantErr: ErrInvalidToken},
		{name: "expired", header: "Bearer " + expired, wantErr: ErrTokenExpired},
		{name: "wrong secret", header: "Bearer " + foreign, wantErr: ErrInvalidToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/auth/user"+tt.query, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			identity, err := provider.Resolve(req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, identity)
		})
	}
}

func TestNewTokenIdentityRequiresSecret(t *testing.T) {
	_, err := NewTokenIdentity(nil)
	assert.Error(t, err)
}
