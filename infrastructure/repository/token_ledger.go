package repository

//go:generate mockgen -source=token_ledger.go -destination=mocks/mock_token_ledger.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/vfg2006/commercial-publisher-api/infrastructure/database/postgres"
)

var (
	ErrInsufficientBalance = errors.New("saldo de tokens insuficiente")
	ErrWalletNotFound      = errors.New("carteira de tokens não encontrada")
)

type TokenLedgerRepository interface {
	Deduct(ctx context.Context, userID string, amount int, reason string) error
}

type tokenLedgerRepository struct {
	conn *postgres.Connection
}

func NewTokenLedgerRepository(conn *postgres.Connection) TokenLedgerRepository {
	return &tokenLedgerRepository{
		conn: conn,
	}
}

// Deduct debita o saldo e registra o lançamento atomicamente
func (r *tokenLedgerRepository) Deduct(ctx context.Context, userID string, amount int, reason string) error {
	if amount <= 0 {
		return nil
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		query, args, err := squirrel.
			Select("tw.balance").
			From("token_wallets tw").
			Where(squirrel.Eq{"tw.user_id": userID}).
			Suffix("FOR UPDATE").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		var balance int
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&balance); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrWalletNotFound
			}
			return fmt.Errorf("erro ao consultar saldo: %w", err)
		}

		if balance < amount {
			return fmt.Errorf("%w: saldo %d, necessário %d", ErrInsufficientBalance, balance, amount)
		}

		query, args, err = squirrel.
			Update("token_wallets").
			Set("balance", squirrel.Expr("balance - ?", amount)).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"user_id": userID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao debitar saldo: %w", err)
		}

		query, args, err = squirrel.
			Insert("token_ledger_entries").
			Columns("id", "user_id", "amount", "reason").
			Values(uuid.NewString(), userID, -amount, reason).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao registrar lançamento: %w", err)
		}

		return nil
	})
}
