package publishing

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

import (
	"context"
	"time"

	"github.com/vfg2006/commercial-publisher-api/internal/domain"
)

// CredentialStore resolve a credencial de um usuário em uma plataforma; nil quando não existe
type CredentialStore interface {
	Get(ctx context.Context, userID string, platform domain.Platform) (*domain.PlatformCredential, error)
}

// NarrativeProvider gera o texto do anúncio respeitando os limites da plataforma
type NarrativeProvider interface {
	Generate(ctx context.Context, platform domain.Platform, content domain.JobContent) (string, error)
}

// Publisher é implementado por cada adaptador de plataforma
type Publisher interface {
	Platform() domain.Platform
	Publish(ctx context.Context, req *domain.PublishRequest) (*domain.PublishResult, error)
	Dimensions(mediaType domain.MediaType) (domain.Dimensions, bool)
}

// PostWriter é o único escritor de PublishedPost no fluxo de publicação
type PostWriter interface {
	SaveAll(ctx context.Context, posts []*domain.PublishedPost) error
}

type TokenLedger interface {
	Deduct(ctx context.Context, userID string, amount int, reason string) error
}

// RetryScheduler executa tarefas adiadas identificadas por chave; Cancel descarta a pendente
type RetryScheduler interface {
	Schedule(key string, delay time.Duration, task func()) error
	Cancel(key string)
}

type JobQueue interface {
	CreateJob(ctx context.Context, req *domain.CreateJobRequest) (*domain.PublishingJob, error)
	Dispatch(jobID string) error
	ProcessJob(ctx context.Context, jobID string) *domain.PublishingJob
	RestartFailedJob(ctx context.Context, jobID string) *domain.PublishingJob
	CancelJob(jobID string) (*domain.PublishingJob, error)
	CleanupOldJobs() int
	GetJobStatus(jobID string) *domain.PublishingJob
	GetAllJobs() []*domain.PublishingJob
}
