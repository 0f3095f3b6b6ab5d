package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/commercial-publisher-api/internal/config"
)

func newTestService(secret string, now time.Time) *Service {
	svc := NewService(&config.Config{Auth: config.Auth{Secret: secret}}).(*Service)
	svc.now = func() time.Time { return now }
	return svc
}

func TestService_IssueAndValidate(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService("segredo", now)

	token, err := svc.IssueToken("user-1", 3)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)

	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, 3, claims.UserRoleID)
}

func TestService_ValidateToken(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService("segredo", now)

	expired := newTestService("segredo", now.Add(-48*time.Hour))
	expiredToken, err := expired.IssueToken("user-1", 1)
	require.NoError(t, err)

	otherSecret, err := newTestService("outro", now).IssueToken("user-1", 1)
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"user_id": "user-1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"role_id": 1}).
		SignedString([]byte("segredo"))
	require.NoError(t, err)

	tests := []struct {
		name          string
		token         string
		expectedError error
	}{
		{name: "Token vazio", token: "", expectedError: ErrMissingToken},
		{name: "Token malformado", token: "abc.def", expectedError: ErrInvalidToken},
		{name: "Token expirado", token: expiredToken, expectedError: ErrExpiredToken},
		{name: "Assinado com outro segredo", token: otherSecret, expectedError: ErrInvalidToken},
		{name: "Algoritmo none", token: noneToken, expectedError: ErrInvalidToken},
		{name: "Sem usuário", token: noSubject, expectedError: ErrMissingSubject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token)

			assert.Nil(t, claims)
			assert.ErrorIs(t, err, tt.expectedError)
		})
	}
}

func TestService_IssueTokenErrors(t *testing.T) {
	_, err := newTestService("", time.Now()).IssueToken("user-1", 1)
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = newTestService("segredo", time.Now()).IssueToken("", 1)
	assert.ErrorIs(t, err, ErrMissingSubject)
}
