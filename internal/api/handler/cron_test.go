package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/commercial-publisher-api/pkg/apiErrors"
)

type fakeCron struct {
	triggered int
}

func (f *fakeCron) TriggerManualSync() { f.triggered++ }

func (f *fakeCron) GetStatus() map[string]any {
	return map[string]any{"enabled": true, "triggered": f.triggered}
}

func TestRunCronJob(t *testing.T) {
	cleanup := &fakeCron{}
	services := CronJobServices{
		CronJobTypeJobCleanup:        cleanup,
		CronJobTypeCredentialRefresh: nil,
	}

	rec := serve(t, CronJobs(services), adminClaims, http.MethodPost, "/v1/cron/job-cleanup/run", nil)
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 1, cleanup.triggered)

	rec = serve(t, CronJobs(services), adminClaims, http.MethodPost, "/v1/cron/all/run", nil)
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 2, cleanup.triggered)

	rec = serve(t, CronJobs(services), adminClaims, http.MethodPost, "/v1/cron/credential-refresh/run", nil)
	requireAPIError(t, rec, http.StatusInternalServerError, apiErrors.ErrInternalServer)

	rec = serve(t, CronJobs(services), adminClaims, http.MethodPost, "/v1/cron/meta-sync/run", nil)
	requireAPIError(t, rec, http.StatusBadRequest, apiErrors.ErrInvalidRequest)

	rec = serve(t, CronJobs(services), clientClaims, http.MethodPost, "/v1/cron/all/run", nil)
	requireAPIError(t, rec, http.StatusForbidden, apiErrors.ErrInsufficientPrivilege)
}

func TestGetCronStatus(t *testing.T) {
	services := CronJobServices{
		CronJobTypeJobCleanup:        &fakeCron{triggered: 4},
		CronJobTypeCredentialRefresh: nil,
	}

	rec := serve(t, CronJobs(services), adminClaims, http.MethodGet, "/v1/cron/status", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	status := decodeBody[map[string]map[string]any](t, rec)
	assert.Equal(t, true, status[CronJobTypeJobCleanup]["enabled"])
	assert.Equal(t, float64(4), status[CronJobTypeJobCleanup]["triggered"])
	assert.Equal(t, false, status[CronJobTypeCredentialRefresh]["enabled"])
}

type fixedPending int

func (p fixedPending) Pending() int { return int(p) }

func TestHealthcheck(t *testing.T) {
	rec := httptest.NewRecorder()
	HealthcheckHandler(fixedPending(2)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[HealthResponse](t, rec)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 2, resp.PendingRetries)
}
