package repository

//go:generate mockgen -source=credential.go -destination=mocks/mock_credential.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/commercial-publisher-api/infrastructure/database/postgres"
	"github.com/vfg2006/commercial-publisher-api/internal/domain"
)

const (
	credentialsTable   = "platform_credentials pc"
	credentialsColumns = "pc.user_id, pc.platform, pc.account_id, pc.access_token, pc.refresh_token, pc.expires_at, pc.is_connected"
)

type CredentialRepository interface {
	Get(ctx context.Context, userID string, platform domain.Platform) (*domain.PlatformCredential, error)
	ListExpiring(ctx context.Context, platforms []domain.Platform, before time.Time) ([]*domain.PlatformCredential, error)
	UpdateToken(ctx context.Context, credential *domain.PlatformCredential) error
}

type credentialRepository struct {
	conn *postgres.Connection
}

func NewCredentialRepository(conn *postgres.Connection) CredentialRepository {
	return &credentialRepository{
		conn: conn,
	}
}

// Get retorna nil, nil quando o usuário não conectou a plataforma
func (r *credentialRepository) Get(ctx context.Context, userID string, platform domain.Platform) (*domain.PlatformCredential, error) {
	query, args, err := squirrel.
		Select(credentialsColumns).
		From(credentialsTable).
		Where(squirrel.Eq{"pc.user_id": userID, "pc.platform": string(platform)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	credential, err := scanCredential(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear credencial: %w", err)
	}

	return credential, nil
}

func (r *credentialRepository) ListExpiring(ctx context.Context, platforms []domain.Platform, before time.Time) ([]*domain.PlatformCredential, error) {
	names := make([]string, 0, len(platforms))
	for _, p := range platforms {
		names = append(names, string(p))
	}

	query, args, err := squirrel.
		Select(credentialsColumns).
		From(credentialsTable).
		Where("pc.platform = ANY(?)", pq.Array(names)).
		Where(squirrel.Eq{"pc.is_connected": true}).
		Where(squirrel.NotEq{"pc.expires_at": nil}).
		Where(squirrel.LtOrEq{"pc.expires_at": before}).
		OrderBy("pc.expires_at ASC").
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

	credentials := make([]*domain.PlatformCredential, 0)
	for rows.Next() {
		credential, err := scanCredential(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear credenciais: %w", err)
		}
		credentials = append(credentials, credential)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return credentials, nil
}

func (r *credentialRepository) UpdateToken(ctx context.Context, credential *domain.PlatformCredential) error {
	query, args, err := squirrel.
		Update("platform_credentials").
		Set("access_token", credential.AccessToken).
		Set("refresh_token", nullString(credential.RefreshToken)).
		Set("expires_at", credential.ExpiresAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"user_id": credential.UserID, "platform": string(credential.Platform)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar credencial: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCredential(row rowScanner) (*domain.PlatformCredential, error) {
	var (
		credential   domain.PlatformCredential
		platform     string
		accountID    sql.NullString
		refreshToken sql.NullString
		expiresAt    sql.NullTime
	)

	err := row.Scan(
		&credential.UserID,
		&platform,
		&accountID,
		&credential.AccessToken,
		&refreshToken,
		&expiresAt,
		&credential.IsConnected,
	)
	if err != nil {
		return nil, err
	}

	credential.Platform = domain.Platform(platform)
	credential.AccountID = accountID.String
	credential.RefreshToken = refreshToken.String
	if expiresAt.Valid {
		credential.ExpiresAt = &expiresAt.Time
	}

	return &credential, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
