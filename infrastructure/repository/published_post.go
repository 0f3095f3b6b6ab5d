package repository

//go:generate mockgen -source=published_post.go -destination=mocks/mock_published_post.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/commercial-publisher-api/infrastructure/database/postgres"
	"github.com/vfg2006/commercial-publisher-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	publishedPostsTable = "published_posts pp"
)

// engagementCounterKeys mapeia o tipo de evento para a chave do JSON engagement_metrics
var engagementCounterKeys = map[domain.EngagementEventType]string{
	domain.EngagementLike:    "likes",
	domain.EngagementComment: "comments",
	domain.EngagementShare:   "shares",
	domain.EngagementView:    "views",
}

type PublishedPostRepository interface {
	SaveAll(ctx context.Context, posts []*domain.PublishedPost) error
	ListByJobID(ctx context.Context, jobID string) ([]*domain.PublishedPost, error)
	IncrementEngagement(ctx context.Context, platform domain.Platform, platformPostID string, eventType domain.EngagementEventType) (bool, error)
}

type publishedPostRepository struct {
	conn *postgres.Connection
}

func NewPublishedPostRepository(conn *postgres.Connection) PublishedPostRepository {
	return &publishedPostRepository{
		conn: conn,
	}
}

// SaveAll grava todos os posts de um job na mesma transação
func (r *publishedPostRepository) SaveAll(ctx context.Context, posts []*domain.PublishedPost) error {
	if len(posts) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, post := range posts {
			metricsJSON, err := json.Marshal(post.EngagementMetrics)
			if err != nil {
				return fmt.Errorf("erro ao serializar engagement_metrics para JSON: %w", err)
			}

			query, args, err := squirrel.
				Insert("published_posts").
				Columns(
					"id", "job_id", "user_id", "commercial_id", "platform", "platform_post_id",
					"title", "description", "media_url", "post_url", "status", "engagement_metrics", "published_at",
				).
				Values(
					post.ID, post.JobID, post.UserID, post.CommercialID, string(post.Platform), post.PlatformPostID,
					post.Title, post.Description, post.MediaURL, nullString(post.PostURL), string(post.Status), metricsJSON, post.PublishedAt,
				).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("erro ao inserir post publicado (%s): %w", post.Platform, err)
			}
		}
		return nil
	})
}

func (r *publishedPostRepository) ListByJobID(ctx context.Context, jobID string) ([]*domain.PublishedPost, error) {
	query, args, err := squirrel.
		Select("pp.id, pp.job_id, pp.user_id, pp.commercial_id, pp.platform, pp.platform_post_id, pp.title, pp.description, pp.media_url, pp.post_url, pp.status, pp.engagement_metrics, pp.published_at").
		From(publishedPostsTable).
		Where(squirrel.Eq{"pp.job_id": jobID}).
		OrderBy("pp.published_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	posts := make([]*domain.PublishedPost, 0)
	for rows.Next() {
		var (
			post        domain.PublishedPost
			platform    string
			status      string
			postURL     sql.NullString
			metricsJSON []byte
		)

		err := rows.Scan(
			&post.ID, &post.JobID, &post.UserID, &post.CommercialID, &platform, &post.PlatformPostID,
			&post.Title, &post.Description, &post.MediaURL, &postURL, &status, &metricsJSON, &post.PublishedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear posts publicados: %w", err)
		}

		if len(metricsJSON) > 0 {
			if err := json.Unmarshal(metricsJSON, &post.EngagementMetrics); err != nil {
				return nil, fmt.Errorf("erro ao deserializar engagement_metrics: %w", err)
			}
		}

		post.Platform = domain.Platform(platform)
		post.Status = domain.PublishedPostStatus(status)
		post.PostURL = postURL.String
		posts = append(posts, &post)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return posts, nil
}

// IncrementEngagement soma um ao contador do tipo de evento; retorna false se o post não existe
// ou se o tipo de evento não tem contador
func (r *publishedPostRepository) IncrementEngagement(ctx context.Context, platform domain.Platform, platformPostID string, eventType domain.EngagementEventType) (bool, error) {
	key, ok := engagementCounterKeys[eventType]
	if !ok || platformPostID == "" {
		return false, nil
	}

	path := fmt.Sprintf("{%s}", key)
	query, args, err := squirrel.
		Update("published_posts").
		Set("engagement_metrics", squirrel.Expr(
			"jsonb_set(engagement_metrics, ?, to_jsonb(COALESCE((engagement_metrics->>?)::int, 0) + 1))",
			path, key,
		)).
		Where(squirrel.Eq{"platform": string(platform), "platform_post_id": platformPostID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao atualizar engajamento: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter linhas afetadas: %w", err)
	}

	return affected > 0, nil
}
