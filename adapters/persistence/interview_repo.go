package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/khoahotran/interview-tracker/internal/domain/interview"
	"github.com/khoahotran/interview-tracker/pkg/apperror"
	"github.com/khoahotran/interview-tracker/pkg/logger"
)

type postgresInterviewRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresInterviewRepo(db *pgxpool.Pool, log logger.Logger) interview.Repository {
	return &postgresInterviewRepo{db: db, logger: log}
}

const interviewColumns = `id, user_id, profile, company, step, interview_date, note, state,
	interview_type, image_url, image_key, script, created_at, updated_at`

func scanInterview(row pgx.Row) (*interview.Interview, error) {
	i := &interview.Interview{}
	var state string
	var note, interviewType, imageURL, imageKey, script sql.NullString

	err := row.Scan(
		&i.ID,
		&i.OwnerID,
		&i.Profile,
		&i.Company,
		&i.Step,
		&i.InterviewDate,
		&note,
		&state,
		&interviewType,
		&imageURL,
		&imageKey,
		&script,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	i.State = interview.State(state)
	if note.Valid {
		i.Note = &note.String
	}
	if interviewType.Valid {
		t := interview.Type(interviewType.String)
		i.InterviewType = &t
	}
	if imageURL.Valid {
		i.ImageURL = &imageURL.String
	}
	if imageKey.Valid {
		i.ImageKey = &imageKey.String
	}
	if script.Valid {
		i.Script = &script.String
	}
	return i, nil
}

func scanInterviews(rows pgx.Rows) ([]*interview.Interview, error) {
	defer rows.Close()
	interviews := make([]*interview.Interview, 0)
	for rows.Next() {
		i, err := scanInterview(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan interview row during iteration: %w", err)
		}
		interviews = append(interviews, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating interview rows: %w", err)
	}
	return interviews, nil
}

// rowResult maps a single-row RETURNING scan to the store taxonomy.
func (r *postgresInterviewRepo) rowResult(i *interview.Interview, err error, op string) (*interview.Interview, error) {
	if err == nil {
		return i, nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperror.NewStore(interview.ErrInterviewNotFound)
	}
	r.logger.Error("Interview query failed", err, zap.String("op", op))
	return nil, apperror.NewStore(err)
}

func typeArg(t *interview.Type) *string {
	if t == nil {
		return nil
	}
	s := string(*t)
	return &s
}

func (r *postgresInterviewRepo) Create(ctx context.Context, i *interview.Interview) (*interview.Interview, error) {
	query, args, err := psql.Insert("interviews").
		Columns("id", "user_id", "profile", "company", "step", "interview_date", "note", "state",
			"interview_type", "image_url", "image_key", "script", "created_at", "updated_at").
		Values(i.ID, i.OwnerID, i.Profile, i.Company, i.Step, i.InterviewDate, i.Note, string(i.State),
			typeArg(i.InterviewType), i.ImageURL, i.ImageKey, i.Script, i.CreatedAt, i.UpdatedAt).
		Suffix("RETURNING " + interviewColumns).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build interview insert", err)
	}
	created, err := scanInterview(r.db.QueryRow(ctx, query, args...))
	return r.rowResult(created, err, "create")
}

func (r *postgresInterviewRepo) Update(ctx context.Context, i *interview.Interview) (*interview.Interview, error) {
	query, args, err := psql.Update("interviews").
		SetMap(map[string]interface{}{
			"profile":        i.Profile,
			"company":        i.Company,
			"step":           i.Step,
			"interview_date": i.InterviewDate,
			"note":           i.Note,
			"state":          string(i.State),
			"interview_type": typeArg(i.InterviewType),
			"image_url":      i.ImageURL,
			"image_key":      i.ImageKey,
			"script":         i.Script,
			"updated_at":     sq.Expr("NOW()"),
		}).
		Where(sq.Eq{"id": i.ID, "user_id": i.OwnerID}).
		Suffix("RETURNING " + interviewColumns).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build interview update", err)
	}
	updated, err := scanInterview(r.db.QueryRow(ctx, query, args...))
	return r.rowResult(updated, err, "update")
}

func (r *postgresInterviewRepo) UpdateState(ctx context.Context, id, ownerID uuid.UUID, state interview.State) (*interview.Interview, error) {
	query := `UPDATE interviews SET state = $3, updated_at = NOW() WHERE id = $1 AND user_id = $2 RETURNING ` + interviewColumns
	updated, err := scanInterview(r.db.QueryRow(ctx, query, id, ownerID, string(state)))
	return r.rowResult(updated, err, "update_state")
}

func (r *postgresInterviewRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM interviews WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return apperror.NewStore(err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewStore(interview.ErrInterviewNotFound)
	}
	return nil
}

func (r *postgresInterviewRepo) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*interview.Interview, error) {
	query := `SELECT ` + interviewColumns + ` FROM interviews WHERE id = $1 AND user_id = $2`
	found, err := scanInterview(r.db.QueryRow(ctx, query, id, ownerID))
	return r.rowResult(found, err, "find")
}

func (r *postgresInterviewRepo) list(ctx context.Context, builder sq.SelectBuilder) ([]*interview.Interview, error) {
	query, args, err := builder.OrderBy("interview_date DESC", "created_at DESC").ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build interview query", err)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewStore(err)
	}
	interviews, err := scanInterviews(rows)
	if err != nil {
		return nil, apperror.NewStore(err)
	}
	return interviews, nil
}

func (r *postgresInterviewRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*interview.Interview, error) {
	return r.list(ctx, psql.Select(interviewColumns).From("interviews").Where(sq.Eq{"user_id": ownerID}))
}

func (r *postgresInterviewRepo) ListAll(ctx context.Context) ([]*interview.Interview, error) {
	return r.list(ctx, psql.Select(interviewColumns).From("interviews"))
}
