package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commercial-publisher-api/internal/config"
)

//go:generate mockgen -source=job_cleanup.go -destination=mocks/mock_job_cleaner.go -package=mocks

// JobCleaner é a parte da fila de publicação usada pela varredura
type JobCleaner interface {
	CleanupOldJobs() int
}

type JobCleanupConfig struct {
	CronSchedule string
	Enabled      bool
}

// JobCleanupService agenda a varredura de jobs antigos do registro em memória
type JobCleanupService struct {
	scheduler    *gocron.Scheduler
	config       JobCleanupConfig
	cleaner      JobCleaner
	running      bool
	mutex        sync.Mutex
	lastRunAt    time.Time
	lastRemoved  int
	totalRemoved int
}

func NewJobCleanupService(cleaner JobCleaner, appConfig *config.Config) *JobCleanupService {
	cleanupConfig := JobCleanupConfig{
		CronSchedule: appConfig.JobCleanup.CronSchedule,
		Enabled:      appConfig.JobCleanup.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": cleanupConfig.CronSchedule,
		"enabled":       cleanupConfig.Enabled,
	}).Info("Configuração da limpeza de jobs de publicação carregada")

	return &JobCleanupService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    cleanupConfig,
		cleaner:   cleaner,
	}
}

// Start inicia o agendador
func (s *JobCleanupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Limpeza de jobs de publicação desabilitada por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runCleanup()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de jobs: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza de jobs")
		s.scheduler.Stop()
	}()

	return nil
}

// runCleanup retorna -1 quando outra varredura já está em andamento
func (s *JobCleanupService) runCleanup() int {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		logrus.Info("Limpeza de jobs já em andamento, ignorando")
		return -1
	}
	s.running = true
	s.mutex.Unlock()

	removed := s.cleaner.CleanupOldJobs()

	s.mutex.Lock()
	s.running = false
	s.lastRunAt = time.Now()
	s.lastRemoved = removed
	s.totalRemoved += removed
	s.mutex.Unlock()

	logrus.WithField("removed", removed).Info("Limpeza de jobs de publicação concluída")

	return removed
}

// TriggerManualSync executa a varredura imediatamente
func (s *JobCleanupService) TriggerManualSync() {
	logrus.Info("Iniciando limpeza manual de jobs de publicação")
	go s.runCleanup()
}

func (s *JobCleanupService) GetStatus() map[string]any {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return map[string]any{
		"enabled":       s.config.Enabled,
		"cron":          s.config.CronSchedule,
		"running":       s.running,
		"last_run_at":   s.lastRunAt,
		"last_removed":  s.lastRemoved,
		"total_removed": s.totalRemoved,
	}
}
