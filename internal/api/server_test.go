package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/commercial-publisher-api/internal/api/handler"
	"github.com/vfg2006/commercial-publisher-api/internal/config"
	"github.com/vfg2006/commercial-publisher-api/internal/domain"
	"github.com/vfg2006/commercial-publisher-api/internal/usecases/abtesting"
	"github.com/vfg2006/commercial-publisher-api/internal/usecases/authenticating"
	"github.com/vfg2006/commercial-publisher-api/internal/usecases/engagement"
	"github.com/vfg2006/commercial-publisher-api/internal/usecases/publishing"
	"github.com/vfg2006/commercial-publisher-api/internal/usecases/publishing/mocks"
	"github.com/vfg2006/commercial-publisher-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func newTestDeps(t *testing.T) (Dependencies, authenticating.Authenticator, *mocks.MockJobQueue) {
	t.Helper()

	auth := authenticating.NewService(&config.Config{Auth: config.Auth{Secret: "segredo-de-teste"}})
	queue := mocks.NewMockJobQueue(gomock.NewController(t))

	bus := engagement.NewBus()
	require.NoError(t, bus.RegisterWebhook(domain.WebhookConfig{Platform: domain.PlatformYouTube, VerifyToken: "yt"}))

	return Dependencies{
		Queue:         queue,
		Publishers:    publishing.Publishers{},
		Bus:           bus,
		Tracker:       abtesting.NewTracker(),
		Authenticator: auth,
		CronServices:  handler.CronJobServices{},
	}, auth, queue
}

func TestNewHandler(t *testing.T) {
	deps, auth, queue := newTestDeps(t)
	h := NewHandler(deps)

	clientToken, err := auth.IssueToken("user-1", middleware.RoleClient)
	require.NoError(t, err)

	queue.EXPECT().GetAllJobs().Return([]*domain.PublishingJob{{ID: "job_1", UserID: "user-1"}})

	tests := []struct {
		name   string
		method string
		target string
		token  string
		status int
	}{
		{name: "healthcheck sem token", method: http.MethodGet, target: "/healthcheck", status: http.StatusOK},
		{name: "jobs sem token", method: http.MethodGet, target: "/v1/jobs", status: http.StatusUnauthorized},
		{name: "jobs com token", method: http.MethodGet, target: "/v1/jobs", token: clientToken, status: http.StatusOK},
		{name: "cron exige operador", method: http.MethodGet, target: "/v1/cron/status", token: clientToken, status: http.StatusForbidden},
		{name: "callback sem bearer", method: http.MethodGet, target: "/v1/callbacks/youtube?hub.verify_token=yt&hub.challenge=ok", status: http.StatusOK},
		{name: "rota inexistente", method: http.MethodGet, target: "/v1/nada", token: clientToken, status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			req.Header.Set(middleware.CorrelationHeader, "corr-1")
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			assert.Equal(t, "corr-1", rec.Header().Get(middleware.CorrelationHeader))
		})
	}
}

func TestNew_RequiresDependencies(t *testing.T) {
	cfg := &config.Config{Server: config.Server{Host: "localhost", Port: "0"}}

	_, err := New(cfg, Dependencies{})
	assert.Error(t, err)

	deps, _, _ := newTestDeps(t)
	srv, err := New(cfg, deps)
	require.NoError(t, err)
	assert.Equal(t, "localhost:0", srv.httpServer.Addr)
}
