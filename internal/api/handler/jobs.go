package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commercial-publisher-api/infrastructure/repository"
	"github.com/vfg2006/commercial-publisher-api/internal/domain"
	"github.com/vfg2006/commercial-publisher-api/internal/usecases/publishing"
	"github.com/vfg2006/commercial-publisher-api/pkg/apiErrors"
	"github.com/vfg2006/commercial-publisher-api/pkg/middleware"
)

// PostLister lê os posts gravados por um job
type PostLister interface {
	ListByJobID(ctx context.Context, jobID string) ([]*domain.PublishedPost, error)
}

type CleanupResponse struct {
	Removed int `json:"removed"`
}

// canManage: admin e operador veem qualquer job, cliente só os próprios
func canManage(claims *domain.Claims, job *domain.PublishingJob) bool {
	if claims.UserRoleID == middleware.RoleAdmin || claims.UserRoleID == middleware.RoleOperator {
		return true
	}
	return job.UserID == claims.UserID
}

// loadJob resolve o job da URL respeitando o dono; em caso de erro já responde
func loadJob(w http.ResponseWriter, r *http.Request, queue publishing.JobQueue) (*domain.PublishingJob, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return nil, false
	}

	id := httprouter.ParamsFromContext(r.Context()).ByName("id")
	job := queue.GetJobStatus(id)
	if job == nil || !canManage(claims, job) {
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Job não encontrado", map[string]string{"job_id": id})
		return nil, false
	}
	return job, true
}

func CreateJob(queue publishing.JobQueue) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateJob")

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req domain.CreateJobRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", err.Error())
			return
		}

		// O dono do job é sempre o usuário do token
		req.UserID = claims.UserID
		if !validateRequest(w, &req) {
			return
		}

		job, ok := enqueue(w, r, queue, &req)
		if !ok {
			return
		}
		writeJSON(w, http.StatusAccepted, job)
	}
}

// enqueue cria o job e despacha o processamento; compartilhado com a publicação por URL
func enqueue(w http.ResponseWriter, r *http.Request, queue publishing.JobQueue, req *domain.CreateJobRequest) (*domain.PublishingJob, bool) {
	job, err := queue.CreateJob(r.Context(), req)
	if err != nil {
		writeCreateJobError(w, err)
		return nil, false
	}

	if err := queue.Dispatch(job.ID); err != nil {
		logrus.WithFields(logrus.Fields{
			"job_id": job.ID,
			"error":  err.Error(),
		}).Error("Erro ao despachar job de publicação")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao agendar a publicação", map[string]string{"job_id": job.ID})
		return nil, false
	}

	return job, true
}

func writeCreateJobError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, publishing.ErrNoPlatforms), errors.Is(err, publishing.ErrUnknownPlatform):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	case errors.Is(err, repository.ErrInsufficientBalance), errors.Is(err, repository.ErrWalletNotFound):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientTokens, "Saldo de tokens insuficiente para a publicação", nil)
	case errors.Is(err, publishing.ErrTokenDeduction):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao debitar tokens da publicação", nil)
	default:
		logrus.WithError(err).Error("Erro ao criar job de publicação")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao criar job de publicação", nil)
	}
}

func ListJobs(queue publishing.JobQueue) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		status := domain.JobStatus(r.URL.Query().Get("status"))

		jobs := make([]*domain.PublishingJob, 0)
		for _, job := range queue.GetAllJobs() {
			if !canManage(claims, job) {
				continue
			}
			if status != "" && job.Status != status {
				continue
			}
			jobs = append(jobs, job)
		}

		writeJSON(w, http.StatusOK, jobs)
	}
}

func GetJob(queue publishing.JobQueue) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		job, ok := loadJob(w, r, queue)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, job)
	}
}

func RestartJob(queue publishing.JobQueue) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RestartJob")

		job, ok := loadJob(w, r, queue)
		if !ok {
			return
		}

		restarted := queue.RestartFailedJob(r.Context(), job.ID)
		if restarted == nil {
			apiErrors.WriteError(w, apiErrors.ErrConflict, "Apenas jobs com falha podem ser reiniciados", map[string]any{
				"job_id": job.ID,
				"status": job.Status,
			})
			return
		}

		writeJSON(w, http.StatusAccepted, restarted)
	}
}

func CancelJob(queue publishing.JobQueue) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CancelJob")

		job, ok := loadJob(w, r, queue)
		if !ok {
			return
		}

		cancelled, err := queue.CancelJob(job.ID)
		switch {
		case errors.Is(err, publishing.ErrJobNotFound):
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Job não encontrado", map[string]string{"job_id": job.ID})
		case errors.Is(err, publishing.ErrJobNotCancellable):
			apiErrors.WriteError(w, apiErrors.ErrConflict, err.Error(), map[string]any{
				"job_id": job.ID,
				"status": job.Status,
			})
		case err != nil:
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao cancelar job", nil)
		default:
			writeJSON(w, http.StatusOK, cancelled)
		}
	}
}

func ListJobPosts(queue publishing.JobQueue, posts PostLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		job, ok := loadJob(w, r, queue)
		if !ok {
			return
		}

		result, err := posts.ListByJobID(r.Context(), job.ID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"job_id": job.ID,
				"error":  err.Error(),
			}).Error("Erro ao listar posts do job")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar posts publicados", nil)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func CleanupJobs(queue publishing.JobQueue) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CleanupJobs")
		writeJSON(w, http.StatusOK, CleanupResponse{Removed: queue.CleanupOldJobs()})
	}
}
