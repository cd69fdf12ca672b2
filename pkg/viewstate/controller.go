// Package viewstate drives the dashboard and standup views' modal and list state on the client
// side.
package viewstate

import (
	"context"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/khoahotran/interview-tracker/internal/application/listview"
	"github.com/khoahotran/interview-tracker/internal/domain/interview"
	"github.com/khoahotran/interview-tracker/pkg/logger"
)

// Form is what the create/edit modal collects. Image is optional.
type Form struct {
	Profile       string
	Company       string
	Step          string
	InterviewDate string
	Note          string
	State         interview.State
	InterviewType string
	Script        string
	Image         io.Reader
	ImageName     string
	RemoveImage   bool
}

// Mutator is the remote side of the dashboard. Every mutation returns the row as stored.
type Mutator interface {
	ListInterviews(ctx context.Context) ([]*interview.Interview, error)
	CreateInterview(ctx context.Context, form Form) (*interview.Interview, error)
	UpdateInterview(ctx context.Context, id uuid.UUID, form Form) (*interview.Interview, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, state interview.State) (*interview.Interview, error)
	DeleteInterview(ctx context.Context, id uuid.UUID) error
}

// ConfirmFunc blocks until the user answers the delete prompt.
type ConfirmFunc func(ctx context.Context, record *interview.Interview) bool

type (
	InterviewModal       = ModalOpen[*interview.Interview]
	InterviewStatusModal = StatusModalOpen[*interview.Interview]
)

// Controller is the dashboard view: the owner's interviews, one modal at a time.
type Controller struct {
	*list[*interview.Interview]
	api     Mutator
	confirm ConfirmFunc

	viewMu   sync.Mutex
	filter   listview.Filter
	expanded map[string]bool
}

func NewController(api Mutator, confirm ConfirmFunc, log logger.Logger) *Controller {
	return &Controller{
		list:     newList(func(iv *interview.Interview) uuid.UUID { return iv.ID }, log),
		api:      api,
		confirm:  confirm,
		expanded: make(map[string]bool),
	}
}

func (c *Controller) SetFilter(f listview.Filter) {
	c.viewMu.Lock()
	c.filter = f
	c.viewMu.Unlock()
}

// View recomputes the filtered, grouped dashboard from the current list.
func (c *Controller) View() listview.Result {
	rows := listview.RowsOf(c.Items())
	c.viewMu.Lock()
	f := c.filter
	c.viewMu.Unlock()
	return listview.Apply(rows, f, listview.ScopeOwner)
}

func (c *Controller) ToggleGroup(key string) {
	c.viewMu.Lock()
	c.expanded[key] = !c.expanded[key]
	c.viewMu.Unlock()
}

func (c *Controller) Expanded(key string) bool {
	c.viewMu.Lock()
	defer c.viewMu.Unlock()
	return c.expanded[key]
}

func (c *Controller) OpenCreate() error {
	return c.openNew(InterviewModal{Kind: ModalCreate})
}

func (c *Controller) OpenEdit(id uuid.UUID) error {
	return c.open(id, func(iv *interview.Interview) Mode { return InterviewModal{Kind: ModalEdit, Record: iv} })
}

func (c *Controller) OpenStatus(id uuid.UUID) error {
	return c.open(id, func(iv *interview.Interview) Mode { return InterviewStatusModal{Record: iv} })
}

// Submit sends the open create/edit form. On failure the modal stays open with the error.
func (c *Controller) Submit(ctx context.Context, form Form) error {
	var kind ModalKind
	return submit(ctx, c.list,
		func(ctx context.Context, m InterviewModal) (*interview.Interview, error) {
			kind = m.Kind
			if m.Kind == ModalEdit {
				return c.api.UpdateInterview(ctx, m.Record.ID, form)
			}
			return c.api.CreateInterview(ctx, form)
		},
		func(l *list[*interview.Interview], saved *interview.Interview) {
			if kind == ModalEdit {
				l.replaceLocked(saved)
				return
			}
			l.insertFrontLocked(saved)
		},
		func(m InterviewModal, err error) Mode {
			m.Err = err
			return m
		})
}

// ChangeStatus sends the state chosen in the status modal.
func (c *Controller) ChangeStatus(ctx context.Context, state interview.State) error {
	return submit(ctx, c.list,
		func(ctx context.Context, m InterviewStatusModal) (*interview.Interview, error) {
			return c.api.UpdateStatus(ctx, m.Record.ID, state)
		},
		(*list[*interview.Interview]).replaceLocked,
		func(m InterviewStatusModal, err error) Mode {
			m.Err = err
			return m
		})
}

// Delete asks for confirmation, then removes the interview remotely and from the list.
func (c *Controller) Delete(ctx context.Context, id uuid.UUID) error {
	return c.remove(ctx, id, c.confirm, c.api.DeleteInterview)
}

func (c *Controller) Reload(ctx context.Context) error {
	return c.reload(ctx, c.api.ListInterviews)
}
