package domain

import "time"

type EngagementEventType string

const (
	EngagementLike    EngagementEventType = "like"
	EngagementComment EngagementEventType = "comment"
	EngagementShare   EngagementEventType = "share"
	EngagementView    EngagementEventType = "view"
	EngagementMessage EngagementEventType = "message"
	EngagementUpdate  EngagementEventType = "update"
)

// EngagementEvent é o formato único para callbacks de todas as plataformas
type EngagementEvent struct {
	ID        string              `json:"id"`
	Platform  Platform            `json:"platform"`
	EventType EngagementEventType `json:"event_type"`
	PostID    string              `json:"post_id,omitempty"`
	UserID    string              `json:"user_id,omitempty"`
	UserName  string              `json:"user_name,omitempty"`
	Payload   map[string]any      `json:"payload,omitempty"`
	Timestamp time.Time           `json:"timestamp"`
}

type WebhookConfig struct {
	Platform         Platform `json:"platform" validate:"required,platform"`
	WebhookURL       string   `json:"webhook_url" validate:"required,url"`
	VerifyToken      string   `json:"verify_token" validate:"required"`
	IsActive         bool     `json:"is_active"`
	SubscribedEvents []string `json:"subscribed_events"`
}

type WebhookStats struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}
