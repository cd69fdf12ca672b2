package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/interview-tracker/internal/domain/profile"
	"github.com/khoahotran/interview-tracker/internal/domain/user"
	"github.com/khoahotran/interview-tracker/pkg/apperror"
	"github.com/khoahotran/interview-tracker/pkg/logger"
)

type postgresUserRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresUserRepo(db *pgxpool.Pool, log logger.Logger) user.Repository {
	return &postgresUserRepo{db: db, logger: log}
}

func insertUser(ctx context.Context, db execer, u *user.User) error {
	query := `INSERT INTO users (id, email, password_hash, created_at) VALUES ($1, $2, $3, $4)`
	_, err := db.Exec(ctx, query, u.ID, u.Email, u.PasswordHash, u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.NewAppError(apperror.ErrConflict, "User already registered", u.Email, user.ErrEmailTaken)
		}
		return apperror.NewStore(err)
	}
	return nil
}

func (r *postgresUserRepo) Create(ctx context.Context, u *user.User) error {
	return insertUser(ctx, r.db, u)
}

func (r *postgresUserRepo) CreateWithProfile(ctx context.Context, u *user.User, p *profile.Profile) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.NewStore(err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := insertUser(ctx, tx, u); err != nil {
		return err
	}
	if err := insertProfile(ctx, tx, p); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return apperror.NewStore(err)
	}
	return nil
}

func (r *postgresUserRepo) scanOne(row pgx.Row, identifier string) (*user.User, error) {
	u := &user.User{}
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewAppError(apperror.ErrNotFound, "user not found", identifier, user.ErrUserNotFound)
		}
		return nil, apperror.NewStore(err)
	}
	return u, nil
}

func (r *postgresUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `SELECT id, email, password_hash, created_at FROM users WHERE lower(email) = lower($1)`
	return r.scanOne(r.db.QueryRow(ctx, query, email), email)
}

func (r *postgresUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	query := `SELECT id, email, password_hash, created_at FROM users WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id), id.String())
}

func (r *postgresUserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE users SET password_hash = $2 WHERE id = $1`, id, passwordHash)
	if err != nil {
		return apperror.NewStore(err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewStore(user.ErrUserNotFound)
	}
	return nil
}
