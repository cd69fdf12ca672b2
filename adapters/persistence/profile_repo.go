package persistence

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/khoahotran/interview-tracker/internal/domain/profile"
	"github.com/khoahotran/interview-tracker/pkg/apperror"
	"github.com/khoahotran/interview-tracker/pkg/logger"
)

type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, log logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: log}
}

const profileColumns = "id, name, verified, is_admin, created_at"

func scanProfile(row pgx.Row) (*profile.Profile, error) {
	p := &profile.Profile{}
	if err := row.Scan(&p.ID, &p.Name, &p.Verified, &p.IsAdmin, &p.CreatedAt); err != nil {
		return nil, err
	}
	return p, nil
}

func scanProfiles(rows pgx.Rows) ([]*profile.Profile, error) {
	defer rows.Close()
	profiles := make([]*profile.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile row: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profile rows: %w", err)
	}
	return profiles, nil
}

func insertProfile(ctx context.Context, db execer, p *profile.Profile) error {
	query := `INSERT INTO profiles (id, name, verified, is_admin, created_at) VALUES ($1, $2, $3, $4, $5)`
	if _, err := db.Exec(ctx, query, p.ID, p.Name, p.Verified, p.IsAdmin, p.CreatedAt); err != nil {
		return apperror.NewStore(err)
	}
	return nil
}

func (r *postgresProfileRepo) Create(ctx context.Context, p *profile.Profile) error {
	return insertProfile(ctx, r.db, p)
}

func (r *postgresProfileRepo) FindByID(ctx context.Context, id uuid.UUID) (*profile.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	p, err := scanProfile(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("profile", id.String())
		}
		r.logger.Error("Failed to get profile", err, zap.String("profile_id", id.String()))
		return nil, apperror.NewStore(err)
	}
	return p, nil
}

func (r *postgresProfileRepo) list(ctx context.Context, builder sq.SelectBuilder) ([]*profile.Profile, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build profile query", err)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewStore(err)
	}
	profiles, err := scanProfiles(rows)
	if err != nil {
		return nil, apperror.NewStore(err)
	}
	return profiles, nil
}

func (r *postgresProfileRepo) ListAll(ctx context.Context) ([]*profile.Profile, error) {
	return r.list(ctx, psql.Select(profileColumns).From("profiles").OrderBy("name ASC"))
}

func (r *postgresProfileRepo) ListPending(ctx context.Context) ([]*profile.Profile, error) {
	return r.list(ctx, psql.Select(profileColumns).From("profiles").Where("verified = FALSE").OrderBy("created_at ASC"))
}

func (r *postgresProfileRepo) SetVerified(ctx context.Context, id uuid.UUID, verified bool) (*profile.Profile, error) {
	query := `UPDATE profiles SET verified = $2 WHERE id = $1 RETURNING ` + profileColumns
	p, err := scanProfile(r.db.QueryRow(ctx, query, id, verified))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("profile", id.String())
		}
		return nil, apperror.NewStore(err)
	}
	return p, nil
}
