package repository

//go:generate mockgen -source=engagement_event.go -destination=mocks/mock_engagement_event.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/commercial-publisher-api/infrastructure/database/postgres"
	"github.com/vfg2006/commercial-publisher-api/internal/domain"
)

type EngagementEventRepository interface {
	Save(ctx context.Context, event *domain.EngagementEvent) error
}

type engagementEventRepository struct {
	conn *postgres.Connection
}

func NewEngagementEventRepository(conn *postgres.Connection) EngagementEventRepository {
	return &engagementEventRepository{
		conn: conn,
	}
}

func (r *engagementEventRepository) Save(ctx context.Context, event *domain.EngagementEvent) error {
	payloadJSON, err := json.Marshal(event.Payload)
	if err != nil {
		return fmt.Errorf("erro ao serializar payload para JSON: %w", err)
	}

	query, args, err := squirrel.
		Insert("engagement_events").
		Columns("id", "platform", "event_type", "post_id", "user_id", "user_name", "payload", "occurred_at").
		Values(
			event.ID,
			string(event.Platform),
			string(event.EventType),
			nullString(event.PostID),
			nullString(event.UserID),
			nullString(event.UserName),
			payloadJSON,
			event.Timestamp,
		).
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao salvar evento de engajamento: %w", err)
	}

	return nil
}
