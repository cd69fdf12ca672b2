package viewstate

import (
	"context"

	"github.com/google/uuid"

	"github.com/khoahotran/interview-tracker/internal/domain/standup"
	"github.com/khoahotran/interview-tracker/pkg/logger"
)

// StandupForm is the day and its items as the JSON array the server validates.
type StandupForm struct {
	Date      string
	ItemsJSON string
}

// StandupMutator is the remote side of the standups view.
type StandupMutator interface {
	ListStandups(ctx context.Context) ([]*standup.Standup, error)
	UpsertStandup(ctx context.Context, form StandupForm) (*standup.Standup, error)
	DeleteStandup(ctx context.Context, id uuid.UUID) error
}

type StandupModal = ModalOpen[*standup.Standup]

// StandupController is the standups view over the owner's own standups.
type StandupController struct {
	*list[*standup.Standup]
	api     StandupMutator
	confirm func(ctx context.Context, record *standup.Standup) bool
}

func NewStandupController(api StandupMutator, confirm func(context.Context, *standup.Standup) bool, log logger.Logger) *StandupController {
	return &StandupController{
		list:    newList(func(s *standup.Standup) uuid.UUID { return s.ID }, log),
		api:     api,
		confirm: confirm,
	}
}

func (c *StandupController) OpenCreate() error {
	return c.openNew(StandupModal{Kind: ModalCreate})
}

func (c *StandupController) OpenEdit(id uuid.UUID) error {
	return c.open(id, func(s *standup.Standup) Mode { return StandupModal{Kind: ModalEdit, Record: s} })
}

// Submit saves the day. The server upserts by (owner, date), so the returned row replaces a
// listed standup with the same id and lands at the front otherwise.
func (c *StandupController) Submit(ctx context.Context, form StandupForm) error {
	return submit(ctx, c.list,
		func(ctx context.Context, _ StandupModal) (*standup.Standup, error) {
			return c.api.UpsertStandup(ctx, form)
		},
		(*list[*standup.Standup]).replaceLocked,
		func(m StandupModal, err error) Mode {
			m.Err = err
			return m
		})
}

func (c *StandupController) Delete(ctx context.Context, id uuid.UUID) error {
	return c.remove(ctx, id, c.confirm, c.api.DeleteStandup)
}

func (c *StandupController) Reload(ctx context.Context) error {
	return c.reload(ctx, c.api.ListStandups)
}
