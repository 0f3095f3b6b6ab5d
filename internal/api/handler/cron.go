package handler

import (
	"net/http"
	"sort"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commercial-publisher-api/pkg/apiErrors"
)

// Tipos de cron job aceitos em /v1/cron/:type/run
const (
	CronJobTypeJobCleanup        = "job-cleanup"
	CronJobTypeCredentialRefresh = "credential-refresh"
	CronJobTypeAll               = "all"
)

// CronService é implementado pelos agendadores de internal/scheduler
type CronService interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices indexa os agendadores pelo tipo usado na URL; nil significa desativado
type CronJobServices map[string]CronService

func (s CronJobServices) types() []string {
	types := make([]string, 0, len(s))
	for t := range s {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		if cronType == CronJobTypeAll {
			for _, t := range services.types() {
				if svc := services[t]; svc != nil {
					svc.TriggerManualSync()
				}
			}
		} else {
			svc, known := services[cronType]
			if !known {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido", map[string]any{
					"accepted": append(services.types(), CronJobTypeAll),
				})
				return
			}
			if svc == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de cron não disponível", map[string]string{"type": cronType})
				return
			}
			svc.TriggerManualSync()
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(services))
		for t, svc := range services {
			if svc == nil {
				status[t] = map[string]any{"enabled": false}
				continue
			}
			status[t] = svc.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
