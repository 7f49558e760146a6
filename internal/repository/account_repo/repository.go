package account_repo

import (
	"context"
	"errors"

	"slot_backend/internal/model"
	"slot_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table          = "accounts"
	colID          = "id"
	colPlayerID    = "player_id"
	colChips       = "chips"
	colTotalWins   = "total_wins"
	colTotalLosses = "total_losses"
	colCreatedAt   = "created_at"
	colLastLogin   = "last_login"
)

// pgx runs one statement per Exec, so the schema is a statement list.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
	id            SERIAL PRIMARY KEY,
	player_id     TEXT UNIQUE NOT NULL,
	chips         INTEGER NOT NULL DEFAULT 100 CHECK (chips >= 0),
	total_wins    INTEGER NOT NULL DEFAULT 0 CHECK (total_wins >= 0),
	total_losses  INTEGER NOT NULL DEFAULT 0 CHECK (total_losses >= 0),
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	last_login    TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	`CREATE INDEX IF NOT EXISTS accounts_chips_idx ON accounts (chips DESC)`,
}

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewAccountRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.AccountRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// EnsureSchema creates the accounts table if it does not exist yet.
func (r *repo) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := r.dbc.Exec(ctx, stmt); err != nil {
			return model.NewStorageError("ensure schema", err)
		}
	}
	return nil
}

// GetByPlayerID returns the full account row for a player.
// Returns model.ErrNotFound if no row exists.
func (r *repo) GetByPlayerID(ctx context.Context, playerID string) (*model.Account, error) {
	query := sq.Select(colID, colPlayerID, colChips, colTotalWins, colTotalLosses, colCreatedAt, colLastLogin).
		From(table).
		Where(sq.Eq{colPlayerID: playerID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, model.NewStorageError("build select", err)
	}

	var acc model.Account
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&acc.ID, &acc.PlayerID, &acc.Chips, &acc.TotalWins, &acc.TotalLosses, &acc.CreatedAt, &acc.LastLogin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, model.NewStorageError("select account", err)
	}

	return &acc, nil
}

// Create inserts a fresh account with the given starting balance and zero
// counters, returning the stored row.
func (r *repo) Create(ctx context.Context, playerID string, chips int) (*model.Account, error) {
	query := sq.Insert(table).
		Columns(colPlayerID, colChips).
		Values(playerID, chips).
		Suffix("RETURNING " + colID + ", " + colCreatedAt + ", " + colLastLogin).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, model.NewStorageError("build insert", err)
	}

	acc := model.Account{
		PlayerID: playerID,
		Chips:    chips,
	}
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&acc.ID, &acc.CreatedAt, &acc.LastLogin)
	if err != nil {
		return nil, model.NewStorageError("insert account", err)
	}

	return &acc, nil
}

// TouchLastLogin stamps last_login with the current time.
func (r *repo) TouchLastLogin(ctx context.Context, playerID string) error {
	query := sq.Update(table).
		Set(colLastLogin, sq.Expr("now()")).
		Where(sq.Eq{colPlayerID: playerID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return model.NewStorageError("build update", err)
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return model.NewStorageError("touch last login", err)
	}
	if res.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

// ApplyResult sets the balance and bumps exactly one counter in a single
// statement, so the write is atomic on its own.
func (r *repo) ApplyResult(ctx context.Context, playerID string, chips int, win bool) error {
	counter := colTotalLosses
	if win {
		counter = colTotalWins
	}

	query := sq.Update(table).
		Set(colChips, chips).
		Set(counter, sq.Expr(counter+" + 1")).
		Where(sq.Eq{colPlayerID: playerID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return model.NewStorageError("build update", err)
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return model.NewStorageError("apply result", err)
	}
	if res.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

// Leaderboard returns up to limit accounts ordered by balance descending.
// Balance ties come back in arbitrary order.
func (r *repo) Leaderboard(ctx context.Context, limit int) ([]model.Account, error) {
	query := sq.Select(colID, colPlayerID, colChips, colTotalWins, colTotalLosses, colCreatedAt, colLastLogin).
		From(table).
		OrderBy(colChips + " DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, model.NewStorageError("build select", err)
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, model.NewStorageError("select leaderboard", err)
	}
	defer rows.Close()

	var accounts []model.Account
	for rows.Next() {
		var acc model.Account
		if err := rows.Scan(&acc.ID, &acc.PlayerID, &acc.Chips, &acc.TotalWins, &acc.TotalLosses, &acc.CreatedAt, &acc.LastLogin); err != nil {
			return nil, model.NewStorageError("scan leaderboard row", err)
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, model.NewStorageError("iterate leaderboard", err)
	}

	return accounts, nil
}
