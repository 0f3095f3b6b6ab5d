package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commercial-publisher-api/internal/domain"
	"github.com/vfg2006/commercial-publisher-api/internal/usecases/engagement"
	"github.com/vfg2006/commercial-publisher-api/pkg/apiErrors"
	"github.com/vfg2006/commercial-publisher-api/pkg/utils"
)

// VerifyTokenHeader é o header aceito nos callbacks além do parâmetro verify_token
const VerifyTokenHeader = "X-Verify-Token"

// WebhookView esconde o verify_token nas respostas
type WebhookView struct {
	Platform         domain.Platform `json:"platform"`
	WebhookURL       string          `json:"webhook_url"`
	IsActive         bool            `json:"is_active"`
	SubscribedEvents []string        `json:"subscribed_events"`
}

func newWebhookView(c domain.WebhookConfig) WebhookView {
	events := c.SubscribedEvents
	if events == nil {
		events = []string{}
	}
	return WebhookView{
		Platform:         c.Platform,
		WebhookURL:       c.WebhookURL,
		IsActive:         c.IsActive,
		SubscribedEvents: events,
	}
}

type IngestResponse struct {
	Received int                      `json:"received"`
	Events   []domain.EngagementEvent `json:"events"`
}

func platformParam(w http.ResponseWriter, r *http.Request) (domain.Platform, bool) {
	value := httprouter.ParamsFromContext(r.Context()).ByName("platform")
	platform, err := domain.ParsePlatform(value)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
		return "", false
	}
	return platform, true
}

func RegisterWebhook(bus *engagement.Bus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RegisterWebhook")

		var config domain.WebhookConfig
		if !decodeRequest(w, r, &config) {
			return
		}

		platform, err := domain.ParsePlatform(string(config.Platform))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}
		config.Platform = platform

		if err := bus.RegisterWebhook(config); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		writeJSON(w, http.StatusCreated, newWebhookView(config))
	}
}

func ListWebhooks(bus *engagement.Bus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		configs := bus.ListWebhooks()
		views := make([]WebhookView, 0, len(configs))
		for _, c := range configs {
			views = append(views, newWebhookView(c))
		}
		writeJSON(w, http.StatusOK, views)
	}
}

func GetWebhook(bus *engagement.Bus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		platform, ok := platformParam(w, r)
		if !ok {
			return
		}

		config, found := bus.GetWebhook(platform)
		if !found {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, engagement.ErrWebhookNotFound.Error(), map[string]string{"platform": string(platform)})
			return
		}

		writeJSON(w, http.StatusOK, newWebhookView(config))
	}
}

func UnregisterWebhook(bus *engagement.Bus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		platform, ok := platformParam(w, r)
		if !ok {
			return
		}

		if !bus.UnregisterWebhook(platform) {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, engagement.ErrWebhookNotFound.Error(), map[string]string{"platform": string(platform)})
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func WebhookStats(bus *engagement.Bus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, bus.GetStats())
	}
}

// VerifyCallback responde ao desafio de assinatura (hub.challenge) das plataformas
func VerifyCallback(bus *engagement.Bus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		platform, ok := platformParam(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()
		token := query.Get("hub.verify_token")
		if token == "" {
			token = query.Get("verify_token")
		}

		if !bus.VerifyWebhook(platform, token) {
			logrus.WithField("platform", platform).Warn("Verificação de webhook recusada")
			apiErrors.WriteError(w, apiErrors.ErrWebhookVerification, "Token de verificação inválido", nil)
			return
		}

		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(query.Get("hub.challenge")))
	}
}

// IngestCallback autentica pelo verify token e normaliza o payload da plataforma
func IngestCallback(bus *engagement.Bus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		platform, ok := platformParam(w, r)
		if !ok {
			return
		}

		token := r.Header.Get(VerifyTokenHeader)
		if token == "" {
			token = r.URL.Query().Get("verify_token")
		}
		if !bus.VerifyWebhook(platform, token) {
			logrus.WithField("platform", platform).Warn("Callback recusado: verify token inválido")
			apiErrors.WriteError(w, apiErrors.ErrWebhookVerification, "Token de verificação inválido", nil)
			return
		}

		var payload map[string]interface{}
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&payload); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Payload do callback inválido", err.Error())
			return
		}

		if logrus.IsLevelEnabled(logrus.DebugLevel) {
			logrus.WithField("platform", platform).Debugf("Callback recebido:\n%s", utils.PrettyJson(payload))
		}

		events, err := processCallback(r.Context(), bus, platform, payload)
		if err != nil {
			if errors.Is(err, engagement.ErrInvalidPayload) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
				return
			}
			logrus.WithFields(logrus.Fields{
				"platform": platform,
				"error":    err.Error(),
			}).Error("Erro ao processar callback")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar callback", nil)
			return
		}

		if events == nil {
			events = []domain.EngagementEvent{}
		}
		writeJSON(w, http.StatusOK, IngestResponse{Received: len(events), Events: events})
	}
}

func processCallback(ctx context.Context, bus *engagement.Bus, platform domain.Platform, payload map[string]interface{}) ([]domain.EngagementEvent, error) {
	switch platform {
	case domain.PlatformFacebook:
		return bus.ProcessFacebookWebhook(ctx, payload)
	case domain.PlatformInstagram:
		return bus.ProcessInstagramWebhook(ctx, payload)
	case domain.PlatformTikTok:
		return bus.ProcessTikTokWebhook(ctx, payload)
	case domain.PlatformYouTube:
		return bus.ProcessYouTubeWebhook(ctx, payload)
	default:
		return nil, engagement.ErrInvalidPayload
	}
}
