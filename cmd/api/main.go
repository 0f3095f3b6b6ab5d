package main

import (
	"context"
	"net/http"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commercial-publisher-api/infrastructure/database/postgres"
	"github.com/vfg2006/commercial-publisher-api/infrastructure/integrator/meta"
	"github.com/vfg2006/commercial-publisher-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/commercial-publisher-api/infrastructure/integrator/openai"
	"github.com/vfg2006/commercial-publisher-api/infrastructure/integrator/scraper"
	"github.com/vfg2006/commercial-publisher-api/infrastructure/integrator/tiktok"
	"github.com/vfg2006/commercial-publisher-api/infrastructure/integrator/youtube"
	"github.com/vfg2006/commercial-publisher-api/infrastructure/repository"
	"github.com/vfg2006/commercial-publisher-api/internal/api"
	"github.com/vfg2006/commercial-publisher-api/internal/api/handler"
	"github.com/vfg2006/commercial-publisher-api/internal/config"
	"github.com/vfg2006/commercial-publisher-api/internal/scheduler"
	"github.com/vfg2006/commercial-publisher-api/internal/usecases/abtesting"
	"github.com/vfg2006/commercial-publisher-api/internal/usecases/authenticating"
	"github.com/vfg2006/commercial-publisher-api/internal/usecases/engagement"
	"github.com/vfg2006/commercial-publisher-api/internal/usecases/narrative"
	"github.com/vfg2006/commercial-publisher-api/internal/usecases/publishing"
	"github.com/vfg2006/commercial-publisher-api/pkg/log"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Formato e nível de log conforme o ambiente
	log.Setup(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	credentialRepo := repository.NewCredentialRepository(pgConn)
	publishedPostRepo := repository.NewPublishedPostRepository(pgConn)
	engagementEventRepo := repository.NewEngagementEventRepository(pgConn)
	tokenLedgerRepo := repository.NewTokenLedgerRepository(pgConn)

	// Um único cliente HTTP compartilhado pelos adaptadores das plataformas
	httpClient := &http.Client{Timeout: cfg.Publishing.HTTPTimeout}

	metaClient := metaclient.NewClient(cfg, httpClient)
	tiktokClient := tiktok.NewClient(cfg, httpClient)
	youtubeClient := youtube.NewClient(cfg, httpClient)

	publishers, err := publishing.NewPublishers(
		meta.NewFacebookPublisher(metaClient),
		meta.NewInstagramPublisher(metaClient),
		tiktok.NewPublisher(tiktokClient),
		youtube.NewPublisher(youtubeClient, cfg.YouTube.PrivacyStatus),
	)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao registrar os publicadores")
	}

	llm := openai.NewClient(cfg)
	if !llm.Enabled() {
		logrus.Warn("OPENAI_API_KEY não configurada, narrativas serão geradas pelos templates")
	}
	narrativeService := narrative.NewService(llm, narrative.DefaultTemplates())

	retryScheduler := scheduler.NewRetryScheduler()
	retryScheduler.Start()
	defer retryScheduler.Stop()

	deps := publishing.Dependencies{
		Credentials: credentialRepo,
		Narratives:  narrativeService,
		Publishers:  publishers,
		Posts:       publishedPostRepo,
		Scheduler:   retryScheduler,
	}
	if cfg.Publishing.TokenCostPerPlatform > 0 {
		deps.Ledger = tokenLedgerRepo
	}

	queue := publishing.NewQueue(publishing.Config{
		MaxRetries:           cfg.Publishing.MaxRetries,
		RetryDelayBase:       cfg.Publishing.RetryDelayBase,
		TokenCostPerPlatform: cfg.Publishing.TokenCostPerPlatform,
	}, deps)

	bus := engagement.NewBus()
	bus.OnAll(engagement.NewPersistenceListener(engagementEventRepo, publishedPostRepo))

	tracker := abtesting.NewTracker()
	authenticator := authenticating.NewService(cfg)

	// Agendadores em background
	jobCleanupService := scheduler.NewJobCleanupService(queue, cfg)
	if err := jobCleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de jobs")
	} else {
		logrus.Info("Agendador de limpeza de jobs iniciado com sucesso")
	}

	credentialRefreshService := scheduler.NewCredentialRefreshService(credentialRepo, meta.NewTokenRefresher(metaClient), cfg)
	if err := credentialRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de renovação de credenciais")
	} else {
		logrus.Info("Agendador de renovação de credenciais iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Dependencies{
		Queue:         queue,
		Publishers:    publishers,
		Posts:         publishedPostRepo,
		Products:      scraper.New(httpClient),
		Bus:           bus,
		Tracker:       tracker,
		Authenticator: authenticator,
		Pending:       retryScheduler,
		CronServices: handler.CronJobServices{
			handler.CronJobTypeJobCleanup:        jobCleanupService,
			handler.CronJobTypeCredentialRefresh: credentialRefreshService,
		},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource faz o .env ao lado do binário ser encontrado em desenvolvimento
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	if err := os.Chdir(path.Dir(file)); err != nil {
		logrus.WithError(err).Debug("Não foi possível mudar para o diretório do main")
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
