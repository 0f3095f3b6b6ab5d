package engagement

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commercial-publisher-api/internal/domain"
)

//go:generate mockgen -source=listeners.go -destination=mocks/mock_listeners.go -package=mocks

type EventStore interface {
	Save(ctx context.Context, event *domain.EngagementEvent) error
}

// EngagementCounter atualiza as métricas do post publicado a que o evento se refere
type EngagementCounter interface {
	IncrementEngagement(ctx context.Context, platform domain.Platform, platformPostID string, eventType domain.EngagementEventType) (bool, error)
}

// NewPersistenceListener grava o evento e contabiliza o engajamento no post publicado
func NewPersistenceListener(store EventStore, counter EngagementCounter) Listener {
	return func(ctx context.Context, event domain.EngagementEvent) {
		logger := logrus.WithFields(logrus.Fields{
			"event_id":   event.ID,
			"platform":   event.Platform,
			"event_type": event.EventType,
			"post_id":    event.PostID,
		})

		if err := store.Save(ctx, &event); err != nil {
			logger.WithError(err).Error("Erro ao salvar evento de engajamento")
		}

		if event.PostID == "" {
			return
		}

		updated, err := counter.IncrementEngagement(ctx, event.Platform, event.PostID, event.EventType)
		if err != nil {
			logger.WithError(err).Error("Erro ao atualizar métricas do post publicado")
			return
		}
		if !updated {
			logger.Debug("Evento sem post publicado correspondente")
		}
	}
}
