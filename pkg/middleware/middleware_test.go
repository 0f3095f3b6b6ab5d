package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/commercial-publisher-api/internal/config"
	"github.com/vfg2006/commercial-publisher-api/internal/domain"
	"github.com/vfg2006/commercial-publisher-api/internal/usecases/authenticating"
	"github.com/vfg2006/commercial-publisher-api/pkg/apiErrors"
	"github.com/vfg2006/commercial-publisher-api/pkg/log"
)

func newAuthenticator() authenticating.Authenticator {
	return authenticating.NewService(&config.Config{Auth: config.Auth{Secret: "segredo-de-teste"}})
}

// claimsEcho devolve 200 com o usuário autenticado no corpo
func claimsEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(claims.UserID))
	})
}

func TestAuthMiddleware(t *testing.T) {
	auth := newAuthenticator()
	token, err := auth.IssueToken("user-1", RoleClient)
	require.NoError(t, err)

	tests := []struct {
		name   string
		method string
		path   string
		header string
		status int
		body   string
	}{
		{name: "token válido", method: http.MethodGet, path: "/v1/jobs", header: "Bearer " + token, status: http.StatusOK, body: "user-1"},
		{name: "sem header", method: http.MethodGet, path: "/v1/jobs", status: http.StatusUnauthorized},
		{name: "sem prefixo Bearer", method: http.MethodGet, path: "/v1/jobs", header: token, status: http.StatusUnauthorized},
		{name: "token adulterado", method: http.MethodGet, path: "/v1/jobs", header: "Bearer " + token + "x", status: http.StatusUnauthorized},
		{name: "healthcheck público", method: http.MethodGet, path: "/healthcheck", status: http.StatusOK},
		{name: "callback público", method: http.MethodPost, path: "/v1/callbacks/tiktok", status: http.StatusOK},
		{name: "preflight", method: http.MethodOptions, path: "/v1/jobs", status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(auth)(claimsEcho()).ServeHTTP(rec, req)

			require.Equal(t, tt.status, rec.Code, rec.Body.String())
			if tt.body != "" {
				assert.Equal(t, tt.body, rec.Body.String())
			}
			if tt.status == http.StatusUnauthorized {
				assert.Contains(t, rec.Body.String(), apiErrors.ErrInvalidToken)
			}
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		middleware func(http.Handler) http.Handler
		claims     *domain.Claims
		status     int
	}{
		{name: "admin em rota de admin", middleware: AdminOnly(), claims: &domain.Claims{UserRoleID: RoleAdmin}, status: http.StatusOK},
		{name: "operador em rota de admin", middleware: AdminOnly(), claims: &domain.Claims{UserRoleID: RoleOperator}, status: http.StatusForbidden},
		{name: "operador em rota de operação", middleware: AdminOrOperator(), claims: &domain.Claims{UserRoleID: RoleOperator}, status: http.StatusOK},
		{name: "cliente em rota de operação", middleware: AdminOrOperator(), claims: &domain.Claims{UserRoleID: RoleClient}, status: http.StatusForbidden},
		{name: "cliente em rota comum", middleware: AllRoles(), claims: &domain.Claims{UserRoleID: RoleClient}, status: http.StatusOK},
		{name: "role desconhecido", middleware: AllRoles(), claims: &domain.Claims{UserRoleID: 9}, status: http.StatusForbidden},
		{name: "sem autenticação", middleware: AllRoles(), status: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/jobs", nil)
			if tt.claims != nil {
				req = req.WithContext(contextWithClaims(req, tt.claims))
			}
			rec := httptest.NewRecorder()

			tt.middleware(claimsEcho()).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestLoggingMiddleware_CorrelationID(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("reaproveita o id recebido", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/jobs", nil)
		req.Header.Set(CorrelationHeader, "req-123")
		rec := httptest.NewRecorder()

		LoggingMiddleware()(next).ServeHTTP(rec, req)

		assert.Equal(t, "req-123", seen)
		assert.Equal(t, "req-123", rec.Header().Get(CorrelationHeader))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("gera id quando ausente ou grande demais", func(t *testing.T) {
		for _, incoming := range []string{"", strings.Repeat("a", 65)} {
			req := httptest.NewRequest(http.MethodGet, "/v1/jobs", nil)
			req.Header.Set(CorrelationHeader, incoming)
			rec := httptest.NewRecorder()

			LoggingMiddleware()(next).ServeHTTP(rec, req)

			assert.NotEmpty(t, seen)
			assert.NotEqual(t, incoming, seen)
			assert.Equal(t, seen, rec.Header().Get(CorrelationHeader))
		}
	})
}

func TestLogPanicMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("falha inesperada")
	})
	rec := httptest.NewRecorder()

	LogPanicMiddleware()(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/jobs", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCors(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/v1/jobs", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()

	Cors()(claimsEcho()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/v1/jobs", nil)
	req.Header.Set("Origin", "https://desconhecido.example.com")
	rec = httptest.NewRecorder()

	Cors()(claimsEcho()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func contextWithClaims(r *http.Request, claims *domain.Claims) context.Context {
	return context.WithValue(r.Context(), ContextKeyUser, claims)
}
