package interview

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/khoahotran/interview-tracker/pkg/dateutil"
)

type State string

const (
	StateOngoing  State = "Ongoing"
	StateRejected State = "Rejected"
	StateOffer    State = "Offer"
)

func (s State) Valid() bool {
	switch s {
	case StateOngoing, StateRejected, StateOffer:
		return true
	}
	return false
}

type Type string

const (
	TypeRemote Type = "Remote"
	TypeOnsite Type = "Onsite"
	TypeHybrid Type = "Hybrid"
)

func (t Type) Valid() bool {
	switch t {
	case TypeRemote, TypeOnsite, TypeHybrid:
		return true
	}
	return false
}

type Interview struct {
	ID            uuid.UUID `json:"id"`
	OwnerID       uuid.UUID `json:"user_id"`
	Profile       string    `json:"profile"`
	Company       string    `json:"company"`
	Step          string    `json:"step"`
	InterviewDate time.Time `json:"interview_date"`
	Note          *string   `json:"note"`
	State         State     `json:"state"`
	InterviewType *Type     `json:"interview_type"`
	ImageURL      *string   `json:"image_url"`
	ImageKey      *string   `json:"-"` // object storage key backing ImageURL
	Script        *string   `json:"script"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

var (
	ErrInterviewNotFound = errors.New("interview not found")
	ErrProfileRequired   = errors.New("profile is required")
	ErrCompanyRequired   = errors.New("company is required")
	ErrStepRequired      = errors.New("step is required")
	ErrDateRequired      = errors.New("interview date is required")
	ErrInvalidState      = errors.New("state must be one of Ongoing, Rejected, Offer")
	ErrInvalidType       = errors.New("interview type must be one of Remote, Onsite, Hybrid")
)

func (i *Interview) Validate() error {
	switch {
	case strings.TrimSpace(i.Profile) == "":
		return ErrProfileRequired
	case strings.TrimSpace(i.Company) == "":
		return ErrCompanyRequired
	case strings.TrimSpace(i.Step) == "":
		return ErrStepRequired
	case i.InterviewDate.IsZero():
		return ErrDateRequired
	case !i.State.Valid():
		return ErrInvalidState
	case i.InterviewType != nil && !i.InterviewType.Valid():
		return ErrInvalidType
	}
	return nil
}

// MarshalJSON writes interview_date as YYYY-MM-DD; the date has no time of day.
func (i Interview) MarshalJSON() ([]byte, error) {
	type plain Interview
	return json.Marshal(struct {
		plain
		InterviewDate string `json:"interview_date"`
	}{plain: plain(i), InterviewDate: formatDate(i.InterviewDate)})
}

func (i *Interview) UnmarshalJSON(data []byte) error {
	type plain Interview
	aux := struct {
		*plain
		InterviewDate string `json:"interview_date"`
	}{plain: (*plain)(i)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	date, err := parseDate(aux.InterviewDate)
	if err != nil {
		return err
	}
	i.InterviewDate = date
	return nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return dateutil.Format(t)
}

// parseDate accepts YYYY-MM-DD and, for older payloads, RFC 3339.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return dateutil.Truncate(t), nil
	}
	return dateutil.Parse(s)
}

func (i *Interview) HasImage() bool {
	return i.ImageKey != nil && *i.ImageKey != ""
}

// NullableText turns blank form values into nil.
func NullableText(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func NullableType(s string) *Type {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	t := Type(s)
	return &t
}

// Repository reads and writes interviews. Mutations filter on (id, owner) and return the
// stored row; zero matching rows is reported as ErrInterviewNotFound wrapped in a store error.
//
//go:generate mockgen -source=interview.go -destination=../../mocks/mock_interview_repo.go -package=mocks -mock_names=Repository=MockInterviewRepository
type Repository interface {
	Create(ctx context.Context, i *Interview) (*Interview, error)
	Update(ctx context.Context, i *Interview) (*Interview, error)
	UpdateState(ctx context.Context, id, ownerID uuid.UUID, state State) (*Interview, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
	FindByID(ctx context.Context, id, ownerID uuid.UUID) (*Interview, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Interview, error)
	ListAll(ctx context.Context) ([]*Interview, error)
}
