package engagement

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/commercial-publisher-api/internal/domain"
	"github.com/vfg2006/commercial-publisher-api/internal/usecases/engagement/mocks"
	"go.uber.org/mock/gomock"
)

func newTestBus() *Bus {
	bus := NewBus()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	seq := 0
	bus.now = func() time.Time { return now }
	bus.newID = func() string {
		seq++
		return "evt-" + string(rune('0'+seq))
	}
	return bus
}

func TestBus_Webhooks(t *testing.T) {
	bus := newTestBus()

	require.NoError(t, bus.RegisterWebhook(domain.WebhookConfig{Platform: domain.PlatformTikTok, VerifyToken: "secret"}))

	assert.True(t, bus.VerifyWebhook(domain.PlatformTikTok, "secret"))
	assert.False(t, bus.VerifyWebhook(domain.PlatformTikTok, "wrong"))
	assert.False(t, bus.VerifyWebhook(domain.PlatformTikTok, ""))
	assert.False(t, bus.VerifyWebhook(domain.PlatformFacebook, "secret"))

	// Registrar de novo substitui
	require.NoError(t, bus.RegisterWebhook(domain.WebhookConfig{Platform: domain.PlatformTikTok, VerifyToken: "novo", IsActive: true}))
	assert.False(t, bus.VerifyWebhook(domain.PlatformTikTok, "secret"))
	assert.True(t, bus.VerifyWebhook(domain.PlatformTikTok, "novo"))

	require.NoError(t, bus.RegisterWebhook(domain.WebhookConfig{Platform: domain.PlatformFacebook, VerifyToken: "fb"}))
	assert.Equal(t, domain.WebhookStats{Total: 2, Active: 1}, bus.GetStats())

	configs := bus.ListWebhooks()
	require.Len(t, configs, 2)
	assert.Equal(t, domain.PlatformFacebook, configs[0].Platform)

	assert.True(t, bus.UnregisterWebhook(domain.PlatformTikTok))
	assert.False(t, bus.UnregisterWebhook(domain.PlatformTikTok))
	assert.False(t, bus.VerifyWebhook(domain.PlatformTikTok, "novo"))
	assert.Equal(t, domain.WebhookStats{Total: 1, Active: 0}, bus.GetStats())

	assert.ErrorIs(t, bus.RegisterWebhook(domain.WebhookConfig{Platform: "orkut", VerifyToken: "x"}), ErrInvalidWebhook)
	assert.ErrorIs(t, bus.RegisterWebhook(domain.WebhookConfig{Platform: domain.PlatformYouTube}), ErrInvalidWebhook)
}

func TestBus_ProcessFacebookWebhook(t *testing.T) {
	bus := newTestBus()

	var received []domain.EngagementEvent
	bus.On(domain.PlatformFacebook, func(_ context.Context, event domain.EngagementEvent) {
		received = append(received, event)
	})

	payload := map[string]interface{}{
		"object": "page",
		"entry": []interface{}{
			map[string]interface{}{
				"id":   "page-1",
				"time": float64(1714564800),
				"messaging": []interface{}{
					map[string]interface{}{
						"sender":    map[string]interface{}{"id": "u-1"},
						"timestamp": float64(1714564800000),
						"message":   map[string]interface{}{"mid": "m-1", "text": "Amei o produto, recomendo"},
					},
					map[string]interface{}{
						"sender":  map[string]interface{}{"id": "u-2"},
						"message": map[string]interface{}{"mid": "m-2", "text": "Qual o prazo?"},
					},
				},
				"changes": []interface{}{
					map[string]interface{}{
						"field": "feed",
						"value": map[string]interface{}{
							"item":    "comment",
							"post_id": "page-1_post-1",
							"message": "Achei caro e ruim",
							"from":    map[string]interface{}{"id": "u-3", "name": "Ana"},
						},
					},
					map[string]interface{}{
						"field": "feed",
						"value": map[string]interface{}{"item": "reaction", "post_id": "page-1_post-1"},
					},
					map[string]interface{}{
						"field": "ratings",
						"value": map[string]interface{}{"item": "rating"},
					},
				},
			},
		},
	}

	events, err := bus.ProcessFacebookWebhook(context.Background(), payload)

	require.NoError(t, err)
	require.Len(t, events, 4)
	assert.Equal(t, events, received)

	assert.Equal(t, domain.EngagementMessage, events[0].EventType)
	assert.Equal(t, "u-1", events[0].UserID)
	assert.Equal(t, time.UnixMilli(1714564800000).UTC(), events[0].Timestamp)
	assert.Equal(t, "positive", events[0].Payload["sentiment"])

	assert.Equal(t, domain.EngagementMessage, events[1].EventType)
	assert.Equal(t, bus.now(), events[1].Timestamp)
	assert.Equal(t, "neutral", events[1].Payload["sentiment"])

	assert.Equal(t, domain.EngagementComment, events[2].EventType)
	assert.Equal(t, "page-1_post-1", events[2].PostID)
	assert.Equal(t, "Ana", events[2].UserName)
	assert.Equal(t, "negative", events[2].Payload["sentiment"])

	assert.Equal(t, domain.EngagementLike, events[3].EventType)
	assert.NotContains(t, events[3].Payload, "sentiment")

	ids := map[string]bool{}
	for _, e := range events {
		assert.Equal(t, domain.PlatformFacebook, e.Platform)
		ids[e.ID] = true
	}
	assert.Len(t, ids, 4)
}

func TestBus_ProcessInstagramWebhook(t *testing.T) {
	bus := newTestBus()

	var delivered []domain.EngagementEvent
	bus.On(domain.PlatformInstagram, func(_ context.Context, e domain.EngagementEvent) {
		delivered = append(delivered, e)
	})
	bus.On(domain.PlatformFacebook, func(context.Context, domain.EngagementEvent) {
		t.Fatal("evento do Instagram entregue ao listener do Facebook")
	})

	payload := map[string]interface{}{
		"object": "instagram",
		"entry": []interface{}{
			map[string]interface{}{
				"id": "ig-conta",
				"changes": []interface{}{
					map[string]interface{}{
						"field": "feed",
						"value": map[string]interface{}{"item": "comment", "post_id": "ig-post", "message": "amei"},
					},
				},
			},
		},
	}

	events, err := bus.ProcessInstagramWebhook(context.Background(), payload)

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, domain.PlatformInstagram, events[0].Platform)
	assert.Equal(t, domain.EngagementComment, events[0].EventType)
	assert.Equal(t, events, delivered)
}

func TestBus_ProcessTikTokWebhook(t *testing.T) {
	bus := newTestBus()

	payload := map[string]interface{}{
		"events": []interface{}{
			map[string]interface{}{"event": "video.like", "video_id": "v-1", "user_openid": "o-1", "create_time": float64(1714564800)},
			map[string]interface{}{"event": "comment.create", "video_id": "v-1", "text": "top demais"},
			map[string]interface{}{"event": "video.share", "video_id": "v-1"},
			map[string]interface{}{"event": "video.view", "video_id": "v-1"},
			map[string]interface{}{"event": "video.publish.complete", "video_id": "v-2"},
		},
	}

	events, err := bus.ProcessTikTokWebhook(context.Background(), payload)

	require.NoError(t, err)
	require.Len(t, events, 5)
	assert.Equal(t, []domain.EngagementEventType{
		domain.EngagementLike,
		domain.EngagementComment,
		domain.EngagementShare,
		domain.EngagementView,
		domain.EngagementUpdate,
	}, []domain.EngagementEventType{events[0].EventType, events[1].EventType, events[2].EventType, events[3].EventType, events[4].EventType})
	assert.Equal(t, time.Unix(1714564800, 0).UTC(), events[0].Timestamp)
	assert.Equal(t, "o-1", events[0].UserID)
	assert.Equal(t, string(SentimentPositive), events[1].Payload["sentiment"])
}

func TestBus_ProcessYouTubeWebhook(t *testing.T) {
	bus := newTestBus()

	payload := map[string]interface{}{
		"feed": map[string]interface{}{
			"entry": []interface{}{
				map[string]interface{}{
					"video_id":   "yt-1",
					"channel_id": "ch-1",
					"title":      "Novo vídeo",
					"published":  "2024-05-01T10:00:00Z",
					"updated":    "2024-05-01T11:00:00Z",
					"author":     map[string]interface{}{"name": "Canal"},
				},
				map[string]interface{}{"video_id": "yt-2"},
			},
		},
	}

	events, err := bus.ProcessYouTubeWebhook(context.Background(), payload)

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, domain.EngagementUpdate, events[0].EventType)
	assert.Equal(t, "yt-1", events[0].PostID)
	assert.Equal(t, "Canal", events[0].UserName)
	assert.Equal(t, time.Date(2024, 5, 1, 11, 0, 0, 0, time.UTC), events[0].Timestamp)
	assert.Equal(t, bus.now(), events[1].Timestamp)
}

func TestBus_InvalidPayload(t *testing.T) {
	bus := newTestBus()

	_, err := bus.ProcessTikTokWebhook(context.Background(), map[string]interface{}{"events": "não é lista"})
	assert.ErrorIs(t, err, ErrInvalidPayload)

	events, err := bus.ProcessYouTubeWebhook(context.Background(), map[string]interface{}{})
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestBus_ListenerPanicIsIsolated(t *testing.T) {
	bus := newTestBus()

	calls := 0
	bus.On(domain.PlatformTikTok, func(_ context.Context, _ domain.EngagementEvent) {
		panic("listener quebrado")
	})
	bus.On(domain.PlatformTikTok, func(_ context.Context, _ domain.EngagementEvent) {
		calls++
	})
	bus.On(domain.PlatformYouTube, func(_ context.Context, _ domain.EngagementEvent) {
		t.Fatal("listener de outra plataforma não deve ser chamado")
	})

	events, err := bus.ProcessTikTokWebhook(context.Background(), map[string]interface{}{
		"events": []interface{}{
			map[string]interface{}{"event": "video.like", "video_id": "v-1"},
			map[string]interface{}{"event": "video.like", "video_id": "v-2"},
		},
	})

	require.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, 2, calls)
}

func TestPersistenceListener(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockEventStore(ctrl)
	counter := mocks.NewMockEngagementCounter(ctrl)

	bus := newTestBus()
	bus.OnAll(NewPersistenceListener(store, counter))

	gomock.InOrder(
		store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, event *domain.EngagementEvent) error {
			assert.Equal(t, "v-1", event.PostID)
			return nil
		}),
		counter.EXPECT().IncrementEngagement(gomock.Any(), domain.PlatformTikTok, "v-1", domain.EngagementLike).Return(true, nil),
		store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("conexão perdida")),
		counter.EXPECT().IncrementEngagement(gomock.Any(), domain.PlatformTikTok, "v-2", domain.EngagementComment).Return(false, nil),
		// Sem post_id não há contador a atualizar
		store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil),
	)

	_, err := bus.ProcessTikTokWebhook(context.Background(), map[string]interface{}{
		"events": []interface{}{
			map[string]interface{}{"event": "video.like", "video_id": "v-1"},
			map[string]interface{}{"event": "comment.create", "video_id": "v-2", "text": "ok"},
			map[string]interface{}{"event": "video.like"},
		},
	})
	require.NoError(t, err)
}

func TestSentimentAnalyzer_Analyze(t *testing.T) {
	analyzer := NewSentimentAnalyzer()

	tests := []struct {
		text     string
		expected SentimentLabel
	}{
		{"Amei! Produto incrível", SentimentPositive},
		{"Péssimo atendimento, demorou demais", SentimentNegative},
		{"Bom, mas caro", SentimentNeutral},
		{"Qual o tamanho?", SentimentNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.expected, analyzer.Analyze(tt.text).Label)
		})
	}

	assert.Equal(t, 1.0, analyzer.Analyze("amei").Score)
	assert.Equal(t, -1.0, analyzer.Analyze("odiei").Score)
}
