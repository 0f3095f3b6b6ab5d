package engagement

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commercial-publisher-api/internal/domain"
)

type facebookPayload struct {
	Object string                   `mapstructure:"object"`
	Entry  []map[string]interface{} `mapstructure:"entry"`
}

type facebookEntry struct {
	ID        string                   `mapstructure:"id"`
	Time      int64                    `mapstructure:"time"`
	Messaging []map[string]interface{} `mapstructure:"messaging"`
	Changes   []map[string]interface{} `mapstructure:"changes"`
}

type facebookMessaging struct {
	Sender struct {
		ID string `mapstructure:"id"`
	} `mapstructure:"sender"`
	Timestamp int64 `mapstructure:"timestamp"`
	Message   struct {
		MID  string `mapstructure:"mid"`
		Text string `mapstructure:"text"`
	} `mapstructure:"message"`
}

type facebookChange struct {
	Field string `mapstructure:"field"`
	Value struct {
		Item        string `mapstructure:"item"`
		Verb        string `mapstructure:"verb"`
		PostID      string `mapstructure:"post_id"`
		Message     string `mapstructure:"message"`
		CreatedTime int64  `mapstructure:"created_time"`
		From        struct {
			ID   string `mapstructure:"id"`
			Name string `mapstructure:"name"`
		} `mapstructure:"from"`
	} `mapstructure:"value"`
}

type tiktokPayload struct {
	Events []map[string]interface{} `mapstructure:"events"`
}

type tiktokEvent struct {
	Event      string `mapstructure:"event"`
	VideoID    string `mapstructure:"video_id"`
	UserID     string `mapstructure:"user_openid"`
	UserName   string `mapstructure:"user_name"`
	Text       string `mapstructure:"text"`
	CreateTime int64  `mapstructure:"create_time"`
}

type youtubePayload struct {
	Feed struct {
		Entry []map[string]interface{} `mapstructure:"entry"`
	} `mapstructure:"feed"`
}

type youtubeEntry struct {
	VideoID   string `mapstructure:"video_id"`
	ChannelID string `mapstructure:"channel_id"`
	Title     string `mapstructure:"title"`
	Published string `mapstructure:"published"`
	Updated   string `mapstructure:"updated"`
	Author    struct {
		Name string `mapstructure:"name"`
	} `mapstructure:"author"`
}

func decode(input, output interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           output,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return nil
}

// ProcessFacebookWebhook emite um evento por item de messaging e por mudança de feed de cada entry
func (b *Bus) ProcessFacebookWebhook(ctx context.Context, payload map[string]interface{}) ([]domain.EngagementEvent, error) {
	return b.processMetaWebhook(ctx, domain.PlatformFacebook, payload)
}

// ProcessInstagramWebhook usa o mesmo formato de entry do Facebook
func (b *Bus) ProcessInstagramWebhook(ctx context.Context, payload map[string]interface{}) ([]domain.EngagementEvent, error) {
	return b.processMetaWebhook(ctx, domain.PlatformInstagram, payload)
}

func (b *Bus) processMetaWebhook(ctx context.Context, platform domain.Platform, payload map[string]interface{}) ([]domain.EngagementEvent, error) {
	var body facebookPayload
	if err := decode(payload, &body); err != nil {
		return nil, err
	}

	events := make([]domain.EngagementEvent, 0)
	for _, rawEntry := range body.Entry {
		var entry facebookEntry
		if err := decode(rawEntry, &entry); err != nil {
			return events, err
		}

		for _, rawMessaging := range entry.Messaging {
			var messaging facebookMessaging
			if err := decode(rawMessaging, &messaging); err != nil {
				return events, err
			}

			events = append(events, b.publish(ctx, domain.EngagementEvent{
				Platform:  platform,
				EventType: domain.EngagementMessage,
				PostID:    entry.ID,
				UserID:    messaging.Sender.ID,
				Payload:   newPayload(rawMessaging, messaging.Message.Text),
				Timestamp: fromUnixMilli(messaging.Timestamp),
			}))
		}

		for _, rawChange := range entry.Changes {
			var change facebookChange
			if err := decode(rawChange, &change); err != nil {
				return events, err
			}
			if change.Field != "feed" {
				continue
			}

			events = append(events, b.publish(ctx, domain.EngagementEvent{
				Platform:  platform,
				EventType: facebookEventType(change.Value.Item),
				PostID:    change.Value.PostID,
				UserID:    change.Value.From.ID,
				UserName:  change.Value.From.Name,
				Payload:   newPayload(rawChange, change.Value.Message),
				Timestamp: fromUnix(change.Value.CreatedTime),
			}))
		}
	}

	logProcessed(platform, len(events))
	return events, nil
}

// ProcessTikTokWebhook emite um evento por item de events[]
func (b *Bus) ProcessTikTokWebhook(ctx context.Context, payload map[string]interface{}) ([]domain.EngagementEvent, error) {
	var body tiktokPayload
	if err := decode(payload, &body); err != nil {
		return nil, err
	}

	events := make([]domain.EngagementEvent, 0, len(body.Events))
	for _, rawEvent := range body.Events {
		var item tiktokEvent
		if err := decode(rawEvent, &item); err != nil {
			return events, err
		}

		events = append(events, b.publish(ctx, domain.EngagementEvent{
			Platform:  domain.PlatformTikTok,
			EventType: eventTypeFromName(item.Event),
			PostID:    item.VideoID,
			UserID:    item.UserID,
			UserName:  item.UserName,
			Payload:   newPayload(rawEvent, item.Text),
			Timestamp: fromUnix(item.CreateTime),
		}))
	}

	logProcessed(domain.PlatformTikTok, len(events))
	return events, nil
}

// ProcessYouTubeWebhook emite um evento de atualização por entry[] do feed
func (b *Bus) ProcessYouTubeWebhook(ctx context.Context, payload map[string]interface{}) ([]domain.EngagementEvent, error) {
	var body youtubePayload
	if err := decode(payload, &body); err != nil {
		return nil, err
	}

	events := make([]domain.EngagementEvent, 0, len(body.Feed.Entry))
	for _, rawEntry := range body.Feed.Entry {
		var entry youtubeEntry
		if err := decode(rawEntry, &entry); err != nil {
			return events, err
		}

		events = append(events, b.publish(ctx, domain.EngagementEvent{
			Platform:  domain.PlatformYouTube,
			EventType: domain.EngagementUpdate,
			PostID:    entry.VideoID,
			UserID:    entry.ChannelID,
			UserName:  entry.Author.Name,
			Payload:   newPayload(rawEntry, ""),
			Timestamp: fromRFC3339(entry.Updated, entry.Published),
		}))
	}

	logProcessed(domain.PlatformYouTube, len(events))
	return events, nil
}

func facebookEventType(item string) domain.EngagementEventType {
	switch item {
	case "comment":
		return domain.EngagementComment
	case "reaction", "like":
		return domain.EngagementLike
	case "share":
		return domain.EngagementShare
	default:
		return domain.EngagementUpdate
	}
}

// eventTypeFromName reconhece nomes como "video.like" ou "comment.create"
func eventTypeFromName(name string) domain.EngagementEventType {
	name = strings.ToLower(name)
	switch {
	case strings.Contains(name, "like"):
		return domain.EngagementLike
	case strings.Contains(name, "comment"):
		return domain.EngagementComment
	case strings.Contains(name, "share"):
		return domain.EngagementShare
	case strings.Contains(name, "view"):
		return domain.EngagementView
	case strings.Contains(name, "message"):
		return domain.EngagementMessage
	default:
		return domain.EngagementUpdate
	}
}

func newPayload(raw map[string]interface{}, text string) map[string]any {
	payload := map[string]any{"raw": raw}
	if text != "" {
		payload["text"] = text
	}
	return payload
}

func fromUnix(seconds int64) time.Time {
	if seconds <= 0 {
		return time.Time{}
	}
	return time.Unix(seconds, 0).UTC()
}

func fromUnixMilli(ms int64) time.Time {
	if ms <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}

func fromRFC3339(values ...string) time.Time {
	for _, value := range values {
		if parsed, err := time.Parse(time.RFC3339, value); err == nil {
			return parsed.UTC()
		}
	}
	return time.Time{}
}

func logProcessed(platform domain.Platform, count int) {
	logrus.WithFields(logrus.Fields{
		"platform": platform,
		"events":   count,
	}).Debug("Webhook processado")
}
