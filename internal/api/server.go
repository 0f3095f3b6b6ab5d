package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commercial-publisher-api/internal/api/handler"
	"github.com/vfg2006/commercial-publisher-api/internal/api/handler/router"
	"github.com/vfg2006/commercial-publisher-api/internal/config"
	"github.com/vfg2006/commercial-publisher-api/internal/usecases/abtesting"
	"github.com/vfg2006/commercial-publisher-api/internal/usecases/authenticating"
	"github.com/vfg2006/commercial-publisher-api/internal/usecases/engagement"
	"github.com/vfg2006/commercial-publisher-api/internal/usecases/publishing"
	"github.com/vfg2006/commercial-publisher-api/pkg/middleware"
)

// Dependencies agrupa os serviços expostos pela API
type Dependencies struct {
	Queue         publishing.JobQueue
	Publishers    publishing.Publishers
	Posts         handler.PostLister
	Products      handler.ProductScraper
	Bus           *engagement.Bus
	Tracker       *abtesting.Tracker
	Authenticator authenticating.Authenticator
	Pending       handler.PendingCounter
	CronServices  handler.CronJobServices
}

type Server struct {
	httpServer *http.Server
}

// NewHandler monta o router com a cadeia global de middlewares
func NewHandler(deps Dependencies) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(deps.Pending)...),
		router.WithRoutes(handler.Jobs(deps.Queue, deps.Posts)...),
		router.WithRoutes(handler.Commercials(deps.Products, deps.Queue)...),
		router.WithRoutes(handler.Platforms(deps.Publishers)...),
		router.WithRoutes(handler.Webhooks(deps.Bus)...),
		router.WithRoutes(handler.ABTests(deps.Tracker)...),
		router.WithRoutes(handler.CronJobs(deps.CronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(deps.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(config *config.Config, deps Dependencies) (*Server, error) {
	if deps.Queue == nil || deps.Publishers == nil || deps.Bus == nil || deps.Tracker == nil || deps.Authenticator == nil {
		return nil, fmt.Errorf("dependências obrigatórias da API ausentes")
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(deps),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
