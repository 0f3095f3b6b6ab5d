package engagement

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commercial-publisher-api/internal/domain"
)

var (
	ErrInvalidWebhook  = errors.New("configuração de webhook inválida")
	ErrInvalidPayload  = errors.New("payload de webhook inválido")
	ErrWebhookNotFound = errors.New("webhook não registrado para a plataforma")
)

// Listener recebe os eventos de uma plataforma; um panic é isolado e não afeta os demais
type Listener func(ctx context.Context, event domain.EngagementEvent)

// Bus guarda um webhook por plataforma e distribui os eventos normalizados de forma síncrona
type Bus struct {
	mu        sync.RWMutex
	webhooks  map[domain.Platform]domain.WebhookConfig
	listeners map[domain.Platform][]Listener

	sentiment *SentimentAnalyzer
	now       func() time.Time
	newID     func() string
}

func NewBus() *Bus {
	return &Bus{
		webhooks:  make(map[domain.Platform]domain.WebhookConfig),
		listeners: make(map[domain.Platform][]Listener),
		sentiment: NewSentimentAnalyzer(),
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// RegisterWebhook substitui a configuração existente da plataforma
func (b *Bus) RegisterWebhook(config domain.WebhookConfig) error {
	if !config.Platform.IsValid() {
		return fmt.Errorf("%w: plataforma %q", ErrInvalidWebhook, config.Platform)
	}
	if config.VerifyToken == "" {
		return fmt.Errorf("%w: verify_token obrigatório", ErrInvalidWebhook)
	}

	config.SubscribedEvents = append([]string(nil), config.SubscribedEvents...)

	b.mu.Lock()
	b.webhooks[config.Platform] = config
	b.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"platform":  config.Platform,
		"is_active": config.IsActive,
		"events":    config.SubscribedEvents,
	}).Info("Webhook registrado")

	return nil
}

// UnregisterWebhook retorna false quando não havia webhook para a plataforma
func (b *Bus) UnregisterWebhook(platform domain.Platform) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.webhooks[platform]; !ok {
		return false
	}
	delete(b.webhooks, platform)

	logrus.WithField("platform", platform).Info("Webhook removido")
	return true
}

// VerifyWebhook compara o token recebido com o verify_token registrado
func (b *Bus) VerifyWebhook(platform domain.Platform, token string) bool {
	b.mu.RLock()
	config, ok := b.webhooks[platform]
	b.mu.RUnlock()

	if !ok || token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(config.VerifyToken), []byte(token)) == 1
}

func (b *Bus) GetWebhook(platform domain.Platform) (domain.WebhookConfig, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	config, ok := b.webhooks[platform]
	return config, ok
}

func (b *Bus) ListWebhooks() []domain.WebhookConfig {
	b.mu.RLock()
	configs := make([]domain.WebhookConfig, 0, len(b.webhooks))
	for _, config := range b.webhooks {
		configs = append(configs, config)
	}
	b.mu.RUnlock()

	sort.Slice(configs, func(i, j int) bool { return configs[i].Platform < configs[j].Platform })
	return configs
}

func (b *Bus) GetStats() domain.WebhookStats {
	b.mu.RLock()
	defer b.mu.RUnlock()

	stats := domain.WebhookStats{Total: len(b.webhooks)}
	for _, config := range b.webhooks {
		if config.IsActive {
			stats.Active++
		}
	}
	return stats
}

// On inscreve um listener para os eventos de uma plataforma
func (b *Bus) On(platform domain.Platform, listener Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners[platform] = append(b.listeners[platform], listener)
}

// OnAll inscreve o listener em todas as plataformas
func (b *Bus) OnAll(listener Listener) {
	for _, platform := range domain.Platforms {
		b.On(platform, listener)
	}
}

func (b *Bus) emit(ctx context.Context, event domain.EngagementEvent) {
	b.mu.RLock()
	listeners := append([]Listener(nil), b.listeners[event.Platform]...)
	b.mu.RUnlock()

	for i, listener := range listeners {
		b.deliver(ctx, i, listener, event)
	}
}

func (b *Bus) deliver(ctx context.Context, index int, listener Listener, event domain.EngagementEvent) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithFields(logrus.Fields{
				"platform":   event.Platform,
				"event_id":   event.ID,
				"event_type": event.EventType,
				"listener":   index,
				"panic":      fmt.Sprint(r),
			}).Error("Listener de engajamento falhou, evento descartado para ele")
		}
	}()

	listener(ctx, event)
}

// publish completa id, horário e sentimento, e entrega o evento aos listeners
func (b *Bus) publish(ctx context.Context, event domain.EngagementEvent) domain.EngagementEvent {
	event.ID = b.newID()
	if event.Timestamp.IsZero() {
		event.Timestamp = b.now()
	}

	if event.EventType == domain.EngagementComment || event.EventType == domain.EngagementMessage {
		if text, ok := event.Payload["text"].(string); ok && text != "" {
			result := b.sentiment.Analyze(text)
			event.Payload["sentiment"] = string(result.Label)
			event.Payload["sentiment_score"] = result.Score
		}
	}

	b.emit(ctx, event)
	return event
}
