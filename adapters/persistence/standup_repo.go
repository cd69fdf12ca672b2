package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/interview-tracker/internal/domain/standup"
	"github.com/khoahotran/interview-tracker/pkg/apperror"
	"github.com/khoahotran/interview-tracker/pkg/logger"
)

type postgresStandupRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresStandupRepo(db *pgxpool.Pool, log logger.Logger) standup.Repository {
	return &postgresStandupRepo{db: db, logger: log}
}

const standupColumns = "id, user_id, standup_date, items, created_at, updated_at"

func scanStandup(row pgx.Row) (*standup.Standup, error) {
	s := &standup.Standup{}
	var itemsBytes []byte
	if err := row.Scan(&s.ID, &s.OwnerID, &s.Date, &itemsBytes, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(itemsBytes, &s.Items); err != nil {
		return nil, fmt.Errorf("failed to decode standup items: %w", err)
	}
	return s, nil
}

func scanStandups(rows pgx.Rows) ([]*standup.Standup, error) {
	defer rows.Close()
	standups := make([]*standup.Standup, 0)
	for rows.Next() {
		s, err := scanStandup(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan standup row: %w", err)
		}
		standups = append(standups, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating standup rows: %w", err)
	}
	return standups, nil
}

// Upsert relies on the (user_id, standup_date) unique index so concurrent first writes for the
// same day collapse into one row.
func (r *postgresStandupRepo) Upsert(ctx context.Context, s *standup.Standup) (*standup.Standup, error) {
	itemsBytes, err := json.Marshal(s.Items)
	if err != nil {
		return nil, apperror.NewInternal("failed to marshal standup items", err)
	}

	query := `
		INSERT INTO daily_standups (id, user_id, standup_date, items, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (user_id, standup_date) DO UPDATE SET items = EXCLUDED.items, updated_at = NOW()
		RETURNING ` + standupColumns
	saved, err := scanStandup(r.db.QueryRow(ctx, query, s.ID, s.OwnerID, s.Date, itemsBytes, s.CreatedAt))
	if err != nil {
		return nil, apperror.NewStore(err)
	}
	return saved, nil
}

func (r *postgresStandupRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM daily_standups WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return apperror.NewStore(err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewStore(standup.ErrStandupNotFound)
	}
	return nil
}

func (r *postgresStandupRepo) list(ctx context.Context, builder sq.SelectBuilder) ([]*standup.Standup, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build standup query", err)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewStore(err)
	}
	standups, err := scanStandups(rows)
	if err != nil {
		return nil, apperror.NewStore(err)
	}
	return standups, nil
}

func (r *postgresStandupRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*standup.Standup, error) {
	return r.list(ctx, psql.Select(standupColumns).From("daily_standups").
		Where(sq.Eq{"user_id": ownerID}).
		OrderBy("standup_date DESC"))
}

// ListAll returns every owner's standups, newest first. limit <= 0 means no limit.
func (r *postgresStandupRepo) ListAll(ctx context.Context, limit int) ([]*standup.Standup, error) {
	builder := psql.Select(standupColumns).From("daily_standups").OrderBy("standup_date DESC", "created_at DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}
	return r.list(ctx, builder)
}
