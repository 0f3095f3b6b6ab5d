package main

import (
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWallets(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []Wallet
	}{
		{name: "vazio", raw: " ", want: nil},
		{name: "duas carteiras", raw: "user-1:100, user-2:0", want: []Wallet{{UserID: "user-1", Balance: 100}, {UserID: "user-2", Balance: 0}}},
		{name: "ignora inválidas", raw: "user-1:abc,:10,user-3,user-4:-1,user-5:7", want: []Wallet{{UserID: "user-5", Balance: 7}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseWallets(tt.raw))
		})
	}
}

func TestGenerateID(t *testing.T) {
	id := generateID()
	assert.Len(t, id, idLength)
	assert.NotEqual(t, id, generateID())
}

// fakeTx registra os comandos e falha a carteira do usuário informado
type fakeTx struct {
	failUserID string
	statements []string
}

func (f *fakeTx) Exec(query string, args ...any) (sql.Result, error) {
	statement := strings.TrimSpace(query)
	switch {
	case strings.Contains(statement, "token_wallets"):
		statement = "INSERT carteira " + args[1].(string)
		if args[1] == f.failUserID {
			f.statements = append(f.statements, statement)
			return nil, errors.New("violação de constraint")
		}
	case strings.Contains(statement, "token_ledger_entries"):
		statement = "INSERT extrato " + args[1].(string)
	}
	f.statements = append(f.statements, statement)
	return nil, nil
}

func TestInsertWallets_IsolatesFailedRow(t *testing.T) {
	tx := &fakeTx{failUserID: "user-2"}

	success, failures := insertWallets(tx, []Wallet{
		{UserID: "user-1", Balance: 10},
		{UserID: "user-2", Balance: 20},
		{UserID: "user-3", Balance: 30},
	})

	assert.Equal(t, 2, success)
	assert.Equal(t, 1, failures)
	require.Equal(t, []string{
		"SAVEPOINT carteira",
		"INSERT carteira user-1",
		"INSERT extrato user-1",
		"RELEASE SAVEPOINT carteira",
		"SAVEPOINT carteira",
		"INSERT carteira user-2",
		"ROLLBACK TO SAVEPOINT carteira",
		"SAVEPOINT carteira",
		"INSERT carteira user-3",
		"INSERT extrato user-3",
		"RELEASE SAVEPOINT carteira",
	}, tx.statements)
}
