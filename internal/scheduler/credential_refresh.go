package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commercial-publisher-api/infrastructure/repository"
	"github.com/vfg2006/commercial-publisher-api/internal/config"
	"github.com/vfg2006/commercial-publisher-api/internal/domain"
)

//go:generate mockgen -source=credential_refresh.go -destination=mocks/mock_token_exchanger.go -package=mocks

// TokenExchanger troca um token de acesso por um de longa duração
type TokenExchanger interface {
	ExchangeLongLivedToken(ctx context.Context, accessToken string) (string, time.Time, error)
}

// refreshablePlatforms são as plataformas cujo token é renovado pela troca do Meta
var refreshablePlatforms = []domain.Platform{domain.PlatformFacebook, domain.PlatformInstagram}

type CredentialRefreshConfig struct {
	CronSchedule string
	WindowDays   int
	Enabled      bool
}

// CredentialRefreshService renova credenciais do Meta próximas da expiração
type CredentialRefreshService struct {
	scheduler      *gocron.Scheduler
	config         CredentialRefreshConfig
	credentialRepo repository.CredentialRepository
	exchanger      TokenExchanger
	now            func() time.Time
	running        bool
	mutex          sync.Mutex
	lastRunAt      time.Time
	lastRefreshed  int
	lastFailed     int
}

func NewCredentialRefreshService(
	credentialRepo repository.CredentialRepository,
	exchanger TokenExchanger,
	appConfig *config.Config,
) *CredentialRefreshService {
	refreshConfig := CredentialRefreshConfig{
		CronSchedule: appConfig.CredentialRefresh.CronSchedule,
		WindowDays:   appConfig.CredentialRefresh.WindowDays,
		Enabled:      appConfig.CredentialRefresh.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"window_days":   refreshConfig.WindowDays,
		"enabled":       refreshConfig.Enabled,
	}).Info("Configuração da renovação de credenciais carregada")

	return &CredentialRefreshService{
		scheduler:      gocron.NewScheduler(time.Local),
		config:         refreshConfig,
		credentialRepo: credentialRepo,
		exchanger:      exchanger,
		now:            time.Now,
	}
}

// Start inicia o agendador
func (s *CredentialRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Renovação de credenciais desabilitada por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshExpiring(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar renovação de credenciais: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de renovação de credenciais")
		s.scheduler.Stop()
	}()

	return nil
}

// refreshExpiring retorna quantas credenciais foram renovadas e quantas falharam
func (s *CredentialRefreshService) refreshExpiring(ctx context.Context) (int, int) {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		logrus.Info("Renovação de credenciais já em andamento, ignorando")
		return 0, 0
	}
	s.running = true
	s.mutex.Unlock()

	refreshed, failed := 0, 0
	defer func() {
		s.mutex.Lock()
		s.running = false
		s.lastRunAt = s.now()
		s.lastRefreshed = refreshed
		s.lastFailed = failed
		s.mutex.Unlock()
	}()

	limit := s.now().AddDate(0, 0, s.config.WindowDays)
	credentials, err := s.credentialRepo.ListExpiring(ctx, refreshablePlatforms, limit)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar credenciais próximas da expiração")
		return refreshed, failed
	}

	for _, credential := range credentials {
		logger := logrus.WithFields(logrus.Fields{
			"user_id":  credential.UserID,
			"platform": credential.Platform,
		})

		token, expiresAt, err := s.exchanger.ExchangeLongLivedToken(ctx, credential.AccessToken)
		if err != nil {
			logger.WithError(err).Warn("Erro ao renovar token da credencial")
			failed++
			continue
		}

		credential.AccessToken = token
		credential.ExpiresAt = &expiresAt

		if err := s.credentialRepo.UpdateToken(ctx, credential); err != nil {
			logger.WithError(err).Error("Erro ao salvar token renovado")
			failed++
			continue
		}

		logger.WithField("expires_at", expiresAt.Format(time.RFC3339)).Info("Token da credencial renovado")
		refreshed++
	}

	logrus.WithFields(logrus.Fields{
		"found":     len(credentials),
		"refreshed": refreshed,
		"failed":    failed,
	}).Info("Renovação de credenciais concluída")

	return refreshed, failed
}

// TriggerManualSync executa a renovação imediatamente
func (s *CredentialRefreshService) TriggerManualSync() {
	logrus.Info("Iniciando renovação manual de credenciais")
	go s.refreshExpiring(context.Background())
}

func (s *CredentialRefreshService) GetStatus() map[string]any {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return map[string]any{
		"enabled":        s.config.Enabled,
		"cron":           s.config.CronSchedule,
		"window_days":    s.config.WindowDays,
		"running":        s.running,
		"last_run_at":    s.lastRunAt,
		"last_refreshed": s.lastRefreshed,
		"last_failed":    s.lastFailed,
	}
}
