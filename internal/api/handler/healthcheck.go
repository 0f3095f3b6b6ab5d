package handler

import (
	"net/http"
	"time"
)

type HealthResponse struct {
	Status         string    `json:"status"`
	Time           time.Time `json:"time"`
	PendingRetries int       `json:"pending_retries"`
}

// PendingCounter expõe quantas tarefas adiadas estão na fila do agendador
type PendingCounter interface {
	Pending() int
}

func HealthcheckHandler(pending PendingCounter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{Status: "ok", Time: time.Now()}
		if pending != nil {
			resp.PendingRetries = pending.Pending()
		}
		writeJSON(w, http.StatusOK, resp)
	})
}
