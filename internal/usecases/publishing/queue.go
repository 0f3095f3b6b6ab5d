package publishing

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commercial-publisher-api/internal/domain"
)

const (
	DefaultMaxRetries     = 3
	DefaultRetryDelayBase = 5 * time.Second

	// JobRetention é a idade máxima (pelo updatedAt) de um job no registro
	JobRetention = 24 * time.Hour
)

var _ JobQueue = (*Queue)(nil)

type Config struct {
	MaxRetries           int
	RetryDelayBase       time.Duration
	TokenCostPerPlatform int
}

type Dependencies struct {
	Credentials CredentialStore
	Narratives  NarrativeProvider
	Publishers  Publishers
	Posts       PostWriter
	Scheduler   RetryScheduler
	// Ledger é opcional; sem ele a publicação não é cobrada
	Ledger TokenLedger
}

// Queue mantém o registro de jobs em memória, válido apenas para uma instância do processo.
// A retentativa é por job: uma falha em qualquer plataforma repete todas as plataformas.
// Queue é o único escritor de PublishedPost; os adaptadores apenas publicam.
type Queue struct {
	cfg  Config
	deps Dependencies
	now  func() time.Time

	mu              sync.Mutex
	jobs            map[string]*domain.PublishingJob
	inFlight        map[string]context.CancelFunc
	cancelRequested map[string]bool
}

func NewQueue(cfg Config, deps Dependencies) *Queue {
	if cfg.MaxRetries < 1 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if cfg.RetryDelayBase <= 0 {
		cfg.RetryDelayBase = DefaultRetryDelayBase
	}

	return &Queue{
		cfg:             cfg,
		deps:            deps,
		now:             time.Now,
		jobs:            make(map[string]*domain.PublishingJob),
		inFlight:        make(map[string]context.CancelFunc),
		cancelRequested: make(map[string]bool),
	}
}

// WithClock troca a fonte de tempo da fila
func (q *Queue) WithClock(now func() time.Time) *Queue {
	q.now = now
	return q
}

// CreateJob é a única operação que rejeita de forma síncrona
func (q *Queue) CreateJob(ctx context.Context, req *domain.CreateJobRequest) (*domain.PublishingJob, error) {
	platforms, err := normalizePlatforms(req.Platforms)
	if err != nil {
		return nil, err
	}

	maxRetries := req.MaxRetries
	if maxRetries < 1 {
		maxRetries = q.cfg.MaxRetries
	}

	if q.deps.Ledger != nil && q.cfg.TokenCostPerPlatform > 0 {
		amount := q.cfg.TokenCostPerPlatform * len(platforms)
		reason := fmt.Sprintf("publicação do comercial %s em %d plataforma(s)", req.CommercialID, len(platforms))
		if err := q.deps.Ledger.Deduct(ctx, req.UserID, amount, reason); err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id":       req.UserID,
				"commercial_id": req.CommercialID,
				"amount":        amount,
				"error":         err.Error(),
			}).Warn("Falha ao debitar tokens da publicação")
			return nil, fmt.Errorf("%w: %w", ErrTokenDeduction, err)
		}
	}

	now := q.now()
	job := &domain.PublishingJob{
		ID:           uuid.NewString(),
		UserID:       req.UserID,
		CommercialID: req.CommercialID,
		Platforms:    platforms,
		Content:      req.Content,
		Status:       domain.JobStatusPending,
		Retries:      0,
		MaxRetries:   maxRetries,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	job = job.Clone()

	q.mu.Lock()
	q.jobs[job.ID] = job
	q.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"job_id":        job.ID,
		"commercial_id": job.CommercialID,
		"platforms":     job.Platforms,
		"max_retries":   job.MaxRetries,
	}).Info("Job de publicação criado")

	return job.Clone(), nil
}

// Dispatch agenda o processamento imediato do job
func (q *Queue) Dispatch(jobID string) error {
	return q.deps.Scheduler.Schedule(jobID, 0, func() {
		q.ProcessJob(context.Background(), jobID)
	})
}

// ProcessJob executa uma tentativa; falhas nunca escapam, só alteram o estado do job.
// Retorna o estado do job ao fim desta tentativa, ou nil se o job não existe.
func (q *Queue) ProcessJob(ctx context.Context, jobID string) *domain.PublishingJob {
	job, attemptCtx, ok := q.claim(ctx, jobID)
	if !ok {
		return q.GetJobStatus(jobID)
	}

	logger := logrus.WithFields(logrus.Fields{
		"job_id":    job.ID,
		"platforms": job.Platforms,
		"attempt":   job.Retries + 1,
	})
	logger.Info("Iniciando tentativa de publicação")

	return q.finish(jobID, q.run(attemptCtx, job))
}

// run cobre a tentativa inteira com recover, para que finish sempre tire o job de publishing
func (q *Queue) run(ctx context.Context, job *domain.PublishingJob) (failure *PublishingError) {
	stage := domain.JobErrorPlatform
	defer func() {
		if r := recover(); r != nil {
			logrus.WithFields(logrus.Fields{
				"job_id": job.ID,
				"panic":  fmt.Sprintf("%v", r),
			}).Error("Panic durante a tentativa de publicação")
			failure = NewPublishingError(ErrAttemptPanic, stage, "", fmt.Sprintf("%v", r))
		}
	}()

	posts, failure := q.attempt(ctx, job)
	if failure != nil {
		return failure
	}

	stage = domain.JobErrorPersistence
	if err := q.deps.Posts.SaveAll(ctx, posts); err != nil {
		return NewPublishingError(err, domain.JobErrorPersistence, "", "erro ao salvar posts publicados")
	}
	return nil
}

// claim move o job de pending para publishing; impede duas tentativas simultâneas do mesmo job
func (q *Queue) claim(ctx context.Context, jobID string) (*domain.PublishingJob, context.Context, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	job, exists := q.jobs[jobID]
	if !exists {
		logrus.WithField("job_id", jobID).Warn("Job não encontrado para processamento")
		return nil, nil, false
	}

	if job.Status != domain.JobStatusPending {
		logrus.WithFields(logrus.Fields{
			"job_id": jobID,
			"status": job.Status,
		}).Info("Job fora do estado pending, ignorando processamento")
		return nil, nil, false
	}

	job.Status = domain.JobStatusPublishing
	job.UpdatedAt = q.now()

	attemptCtx, cancel := context.WithCancel(ctx)
	q.inFlight[jobID] = cancel

	return job.Clone(), attemptCtx, true
}

// attempt publica sequencialmente, na ordem de job.Platforms, e para na primeira falha
func (q *Queue) attempt(ctx context.Context, job *domain.PublishingJob) ([]*domain.PublishedPost, *PublishingError) {
	posts := make([]*domain.PublishedPost, 0, len(job.Platforms))

	for _, platform := range job.Platforms {
		if err := ctx.Err(); err != nil {
			return nil, NewPublishingError(ErrJobCancelled, domain.JobErrorCancelled, platform, err.Error())
		}

		post, failure := q.publishTo(ctx, job, platform)
		if failure != nil {
			logrus.WithFields(logrus.Fields{
				"job_id":     job.ID,
				"platform":   platform,
				"error_code": failure.Code,
				"error":      failure.Error(),
			}).Warn("Falha ao publicar na plataforma")
			return nil, failure
		}

		logrus.WithFields(logrus.Fields{
			"job_id":           job.ID,
			"platform":         platform,
			"platform_post_id": post.PlatformPostID,
		}).Info("Publicação concluída na plataforma")

		posts = append(posts, post)
	}

	return posts, nil
}

func (q *Queue) publishTo(ctx context.Context, job *domain.PublishingJob, platform domain.Platform) (post *domain.PublishedPost, failure *PublishingError) {
	stage := domain.JobErrorCredential
	defer func() {
		if r := recover(); r != nil {
			post = nil
			failure = NewPublishingError(ErrAttemptPanic, stage, platform, fmt.Sprintf("%v", r))
		}
	}()

	publisher, ok := q.deps.Publishers.Get(platform)
	if !ok {
		return nil, NewPublishingError(ErrPublisherMissing, domain.JobErrorPlatform, platform, "")
	}

	credential, err := q.deps.Credentials.Get(ctx, job.UserID, platform)
	if err != nil {
		return nil, NewPublishingError(ErrInvalidCredential, domain.JobErrorCredential, platform, err.Error())
	}
	if !credential.IsUsable(q.now()) {
		return nil, NewPublishingError(ErrInvalidCredential, domain.JobErrorCredential, platform, "")
	}

	stage = domain.JobErrorNarrative
	narrative, err := q.deps.Narratives.Generate(ctx, platform, job.Content)
	if err != nil {
		return nil, NewPublishingError(err, domain.JobErrorNarrative, platform, "erro ao gerar narrativa")
	}

	stage = domain.JobErrorPlatform
	result, err := publisher.Publish(ctx, &domain.PublishRequest{
		Credential: credential,
		Narrative:  narrative,
		Content:    job.Content,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, NewPublishingError(ErrJobCancelled, domain.JobErrorCancelled, platform, err.Error())
		}
		return nil, NewPublishingError(err, domain.JobErrorPlatform, platform, "")
	}
	if result == nil || !result.Success {
		details := ""
		if result != nil {
			details = result.Error
		}
		return nil, NewPublishingError(ErrPublishRejected, domain.JobErrorPlatform, platform, details)
	}

	publishedAt := result.Timestamp
	if publishedAt.IsZero() {
		publishedAt = q.now()
	}

	mediaURL := job.Content.VideoURL
	if mediaURL == "" {
		mediaURL = job.Content.ImageURL
	}

	return &domain.PublishedPost{
		ID:                uuid.NewString(),
		JobID:             job.ID,
		UserID:            job.UserID,
		CommercialID:      job.CommercialID,
		Platform:          platform,
		PlatformPostID:    result.PostID,
		Title:             job.Content.Title,
		Description:       narrative,
		MediaURL:          mediaURL,
		PostURL:           result.URL,
		Status:            domain.PublishedPostStatusPublished,
		EngagementMetrics: domain.EngagementMetrics{},
		PublishedAt:       publishedAt,
	}, nil
}

// finish aplica a transição de saída de publishing e agenda a próxima tentativa quando houver
func (q *Queue) finish(jobID string, failure *PublishingError) *domain.PublishingJob {
	q.mu.Lock()

	if cancel, ok := q.inFlight[jobID]; ok {
		cancel()
		delete(q.inFlight, jobID)
	}
	cancelled := q.cancelRequested[jobID]
	delete(q.cancelRequested, jobID)

	job, exists := q.jobs[jobID]
	if !exists {
		q.mu.Unlock()
		logrus.WithField("job_id", jobID).Warn("Job removido durante a publicação")
		return nil
	}

	job.UpdatedAt = q.now()

	if failure == nil {
		job.Status = domain.JobStatusSuccess
		job.Error = ""
		job.ErrorCode = ""
		snapshot := job.Clone()
		q.mu.Unlock()

		logrus.WithFields(logrus.Fields{
			"job_id":    jobID,
			"platforms": snapshot.Platforms,
			"retries":   snapshot.Retries,
		}).Info("Job de publicação concluído com sucesso")
		return snapshot
	}

	job.Retries++
	job.Error = failure.Error()
	job.ErrorCode = failure.Code

	if cancelled {
		job.Status = domain.JobStatusFailed
		job.ErrorCode = domain.JobErrorCancelled
		snapshot := job.Clone()
		q.mu.Unlock()

		logrus.WithField("job_id", jobID).Info("Job de publicação cancelado durante a tentativa")
		return snapshot
	}

	if job.Retries >= job.MaxRetries {
		job.Status = domain.JobStatusFailed
		snapshot := job.Clone()
		q.mu.Unlock()

		logrus.WithFields(logrus.Fields{
			"job_id":  jobID,
			"retries": snapshot.Retries,
			"error":   snapshot.Error,
		}).Error("Job de publicação falhou após esgotar as tentativas")
		return snapshot
	}

	job.Status = domain.JobStatusPending
	delay := q.cfg.RetryDelayBase * time.Duration(job.Retries)
	snapshot := job.Clone()
	q.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"job_id":      jobID,
		"retries":     snapshot.Retries,
		"max_retries": snapshot.MaxRetries,
		"delay":       delay.String(),
	}).Warn("Tentativa de publicação falhou, nova tentativa agendada")

	err := q.deps.Scheduler.Schedule(jobID, delay, func() {
		q.ProcessJob(context.Background(), jobID)
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"job_id": jobID,
			"error":  err.Error(),
		}).Error("Erro ao agendar nova tentativa de publicação")
		return q.markFailed(jobID, fmt.Sprintf("erro ao agendar nova tentativa: %v", err), failure.Code)
	}

	return snapshot
}

func (q *Queue) markFailed(jobID, message string, code domain.JobErrorCode) *domain.PublishingJob {
	q.mu.Lock()
	defer q.mu.Unlock()

	job, exists := q.jobs[jobID]
	if !exists {
		return nil
	}
	job.Status = domain.JobStatusFailed
	job.Error = message
	job.ErrorCode = code
	job.UpdatedAt = q.now()
	return job.Clone()
}

// RestartFailedJob só atua sobre jobs em failed; nos demais casos retorna nil sem alterar nada
func (q *Queue) RestartFailedJob(ctx context.Context, jobID string) *domain.PublishingJob {
	q.mu.Lock()
	job, exists := q.jobs[jobID]
	if !exists || job.Status != domain.JobStatusFailed {
		q.mu.Unlock()
		return nil
	}

	job.Retries = 0
	job.Error = ""
	job.ErrorCode = ""
	job.Status = domain.JobStatusPending
	job.UpdatedAt = q.now()
	snapshot := job.Clone()
	q.mu.Unlock()

	logrus.WithField("job_id", jobID).Info("Reiniciando job de publicação que havia falhado")

	if err := q.Dispatch(jobID); err != nil {
		logrus.WithFields(logrus.Fields{
			"job_id": jobID,
			"error":  err.Error(),
		}).Error("Erro ao despachar job reiniciado")
		return q.markFailed(jobID, fmt.Sprintf("erro ao despachar job: %v", err), "")
	}

	return snapshot
}

// CancelJob descarta a retentativa pendente ou interrompe a tentativa em andamento
func (q *Queue) CancelJob(jobID string) (*domain.PublishingJob, error) {
	q.mu.Lock()
	job, exists := q.jobs[jobID]
	if !exists {
		q.mu.Unlock()
		return nil, ErrJobNotFound
	}

	if job.IsTerminal() {
		q.mu.Unlock()
		return nil, ErrJobNotCancellable
	}

	if job.Status == domain.JobStatusPublishing {
		q.cancelRequested[jobID] = true
		if cancel, ok := q.inFlight[jobID]; ok {
			cancel()
		}
		snapshot := job.Clone()
		q.mu.Unlock()

		logrus.WithField("job_id", jobID).Info("Cancelamento solicitado para job em publicação")
		return snapshot, nil
	}

	job.Status = domain.JobStatusFailed
	job.Error = ErrJobCancelled.Error()
	job.ErrorCode = domain.JobErrorCancelled
	job.UpdatedAt = q.now()
	snapshot := job.Clone()
	q.mu.Unlock()

	q.deps.Scheduler.Cancel(jobID)
	logrus.WithField("job_id", jobID).Info("Job de publicação cancelado")
	return snapshot, nil
}

// CleanupOldJobs remove jobs com updatedAt há mais de 24h, em qualquer estado
func (q *Queue) CleanupOldJobs() int {
	now := q.now()
	removed := make([]string, 0)

	q.mu.Lock()
	for id, job := range q.jobs {
		if now.Sub(job.UpdatedAt) > JobRetention {
			delete(q.jobs, id)
			removed = append(removed, id)
		}
	}
	q.mu.Unlock()

	for _, id := range removed {
		q.deps.Scheduler.Cancel(id)
	}

	if len(removed) > 0 {
		logrus.WithField("removed", len(removed)).Info("Jobs de publicação antigos removidos")
	}

	return len(removed)
}

func (q *Queue) GetJobStatus(jobID string) *domain.PublishingJob {
	q.mu.Lock()
	defer q.mu.Unlock()

	job, exists := q.jobs[jobID]
	if !exists {
		return nil
	}
	return job.Clone()
}

func (q *Queue) GetAllJobs() []*domain.PublishingJob {
	q.mu.Lock()
	jobs := make([]*domain.PublishingJob, 0, len(q.jobs))
	for _, job := range q.jobs {
		jobs = append(jobs, job.Clone())
	}
	q.mu.Unlock()

	sort.Slice(jobs, func(i, j int) bool {
		if jobs[i].CreatedAt.Equal(jobs[j].CreatedAt) {
			return jobs[i].ID < jobs[j].ID
		}
		return jobs[i].CreatedAt.Before(jobs[j].CreatedAt)
	})

	return jobs
}

// normalizePlatforms valida e remove duplicatas preservando a ordem
func normalizePlatforms(values []string) ([]domain.Platform, error) {
	if len(values) == 0 {
		return nil, ErrNoPlatforms
	}

	seen := make(map[domain.Platform]bool, len(values))
	platforms := make([]domain.Platform, 0, len(values))
	for _, value := range values {
		platform, err := domain.ParsePlatform(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPlatform, value)
		}
		if seen[platform] {
			continue
		}
		seen[platform] = true
		platforms = append(platforms, platform)
	}

	return platforms, nil
}
