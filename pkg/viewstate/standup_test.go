package viewstate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/khoahotran/interview-tracker/internal/domain/standup"
	"github.com/khoahotran/interview-tracker/pkg/logger"
)

type fakeStandups struct {
	list    []*standup.Standup
	byDate  map[string]uuid.UUID
	err     error
	gate    chan struct{}
	calls   int
	deleted []uuid.UUID
}

func (f *fakeStandups) wait() {
	f.calls++
	if f.gate != nil {
		<-f.gate
	}
}

func (f *fakeStandups) ListStandups(ctx context.Context) ([]*standup.Standup, error) {
	f.wait()
	return f.list, f.err
}

func (f *fakeStandups) UpsertStandup(ctx context.Context, form StandupForm) (*standup.Standup, error) {
	f.wait()
	if f.err != nil {
		return nil, f.err
	}
	id, ok := f.byDate[form.Date]
	if !ok {
		id = uuid.New()
		f.byDate[form.Date] = id
	}
	date, _ := time.Parse("2006-01-02", form.Date)
	return &standup.Standup{ID: id, Date: date, Items: []standup.Item{{Title: form.ItemsJSON}}}, nil
}

func (f *fakeStandups) DeleteStandup(ctx context.Context, id uuid.UUID) error {
	f.wait()
	if f.err == nil {
		f.deleted = append(f.deleted, id)
	}
	return f.err
}

type StandupControllerTestSuite struct {
	suite.Suite
	api      *fakeStandups
	ctrl     *StandupController
	existing *standup.Standup
	confirm  bool
	ctx      context.Context
}

func TestStandupControllerTestSuite(t *testing.T) {
	suite.Run(t, new(StandupControllerTestSuite))
}

func (s *StandupControllerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.existing = &standup.Standup{ID: uuid.New(), Date: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)}
	s.api = &fakeStandups{
		list:   []*standup.Standup{s.existing},
		byDate: map[string]uuid.UUID{"2024-03-04": s.existing.ID},
	}
	s.confirm = true
	s.ctrl = NewStandupController(s.api, func(context.Context, *standup.Standup) bool { return s.confirm }, logger.NewNopLogger())
	s.Require().NoError(s.ctrl.Reload(s.ctx))
	s.api.calls = 0
}

func (s *StandupControllerTestSuite) TestOnlyOneModalAtATime() {
	s.Require().NoError(s.ctrl.OpenCreate())
	s.ErrorIs(s.ctrl.OpenEdit(s.existing.ID), ErrModalOpen)
	s.Require().NoError(s.ctrl.Close())
	s.Require().NoError(s.ctrl.OpenEdit(s.existing.ID))
	s.Equal(StandupModal{Kind: ModalEdit, Record: s.existing}, s.ctrl.Mode())
}

func (s *StandupControllerTestSuite) TestSubmitNewDayInsertsAtFront() {
	s.Require().NoError(s.ctrl.OpenCreate())
	s.Require().NoError(s.ctrl.Submit(s.ctx, StandupForm{Date: "2024-03-05", ItemsJSON: "today"}))

	items := s.ctrl.Items()
	s.Require().Len(items, 2)
	s.Equal("today", items[0].Items[0].Title)
	s.Equal(s.existing.ID, items[1].ID)
	s.IsType(Idle{}, s.ctrl.Mode())
}

func (s *StandupControllerTestSuite) TestSubmitSameDayReplacesRow() {
	s.Require().NoError(s.ctrl.OpenCreate())
	s.Require().NoError(s.ctrl.Submit(s.ctx, StandupForm{Date: "2024-03-04", ItemsJSON: "second"}))

	items := s.ctrl.Items()
	s.Require().Len(items, 1)
	s.Equal(s.existing.ID, items[0].ID)
	s.Equal("second", items[0].Items[0].Title)
}

func (s *StandupControllerTestSuite) TestSubmitFailureKeepsModalOpen() {
	boom := errors.New("Invalid items format")
	s.api.err = boom
	s.Require().NoError(s.ctrl.OpenEdit(s.existing.ID))

	s.ErrorIs(s.ctrl.Submit(s.ctx, StandupForm{Date: "2024-03-04", ItemsJSON: "{"}), boom)
	s.Equal(StandupModal{Kind: ModalEdit, Record: s.existing, Err: boom}, s.ctrl.Mode())
}

func (s *StandupControllerTestSuite) TestSecondSubmitWhileBusyFailsFast() {
	s.api.gate = make(chan struct{})
	s.Require().NoError(s.ctrl.OpenCreate())

	done := make(chan error, 1)
	go func() { done <- s.ctrl.Submit(s.ctx, StandupForm{Date: "2024-03-06", ItemsJSON: "a"}) }()

	s.Eventually(func() bool {
		_, ok := s.ctrl.Mode().(Submitting)
		return ok
	}, time.Second, 5*time.Millisecond)

	s.ErrorIs(s.ctrl.Submit(s.ctx, StandupForm{Date: "2024-03-07", ItemsJSON: "b"}), ErrBusy)
	s.ErrorIs(s.ctrl.Delete(s.ctx, s.existing.ID), ErrBusy)

	close(s.api.gate)
	s.NoError(<-done)
	s.Equal(1, s.api.calls)
}

func (s *StandupControllerTestSuite) TestDeleteNeedsConfirmation() {
	s.confirm = false
	s.ErrorIs(s.ctrl.Delete(s.ctx, s.existing.ID), ErrCancelled)
	s.Len(s.ctrl.Items(), 1)
	s.Zero(s.api.calls)

	s.confirm = true
	s.Require().NoError(s.ctrl.Delete(s.ctx, s.existing.ID))
	s.Empty(s.ctrl.Items())
	s.Equal([]uuid.UUID{s.existing.ID}, s.api.deleted)
	s.IsType(Idle{}, s.ctrl.Mode())
}
