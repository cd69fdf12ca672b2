package viewstate

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/interview-tracker/pkg/logger"
)

var (
	ErrBusy           = errors.New("another request is in flight")
	ErrModalOpen      = errors.New("a modal is already open")
	ErrNoModal        = errors.New("no matching modal is open")
	ErrRecordNotFound = errors.New("record not in the current list")
	ErrCancelled      = errors.New("delete cancelled")
)

// list is the guarded record list and mode shared by every view controller. The guard is the
// mode itself: Submitting and Deleting are set under mu before any remote call starts.
type list[T any] struct {
	mu      sync.Mutex
	idOf    func(T) uuid.UUID
	logger  logger.Logger
	mode    Mode
	items   []T
	version uint64
}

func newList[T any](idOf func(T) uuid.UUID, log logger.Logger) *list[T] {
	return &list[T]{idOf: idOf, logger: log, mode: Idle{}}
}

func (l *list[T]) Mode() Mode {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.mode
}

func (l *list[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.items)
}

func (l *list[T]) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if busy(l.mode) {
		return ErrBusy
	}
	l.mode = Idle{}
	return nil
}

func (l *list[T]) indexLocked(id uuid.UUID) int {
	return slices.IndexFunc(l.items, func(v T) bool { return l.idOf(v) == id })
}

// openLocked checks that no modal is open and nothing is in flight.
func (l *list[T]) openLocked() error {
	switch l.mode.(type) {
	case Idle:
		return nil
	case Submitting, Deleting:
		return ErrBusy
	}
	return ErrModalOpen
}

// open moves to the mode built from the record with the given id.
func (l *list[T]) open(id uuid.UUID, build func(T) Mode) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.openLocked(); err != nil {
		return err
	}
	i := l.indexLocked(id)
	if i < 0 {
		return ErrRecordNotFound
	}
	l.mode = build(l.items[i])
	return nil
}

func (l *list[T]) openNew(m Mode) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.openLocked(); err != nil {
		return err
	}
	l.mode = m
	return nil
}

// submit runs call while the view is Submitting. On success the returned record is patched in
// and the modal closes; on failure reopen rebuilds the modal carrying the error.
func submit[T any, M Mode](ctx context.Context, l *list[T], call func(ctx context.Context, modal M) (T, error),
	patch func(l *list[T], saved T), reopen func(modal M, err error) Mode) error {
	l.mu.Lock()
	if busy(l.mode) {
		l.mu.Unlock()
		return ErrBusy
	}
	modal, ok := l.mode.(M)
	if !ok {
		l.mu.Unlock()
		return ErrNoModal
	}
	l.mode = Submitting{From: modal}
	l.mu.Unlock()

	saved, err := call(ctx, modal)

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.logger.Warn("Submit failed", zap.Error(err))
		l.mode = reopen(modal, err)
		return err
	}
	patch(l, saved)
	l.mode = Idle{}
	return nil
}

func (l *list[T]) insertFrontLocked(saved T) {
	l.items = append([]T{saved}, l.items...)
	l.version++
}

// replaceLocked swaps the record with the same id, or inserts it at the front when absent.
func (l *list[T]) replaceLocked(saved T) {
	if i := l.indexLocked(l.idOf(saved)); i >= 0 {
		l.items[i] = saved
		l.version++
		return
	}
	l.insertFrontLocked(saved)
}

// remove asks confirm, then calls del and drops the record by id.
func (l *list[T]) remove(ctx context.Context, id uuid.UUID, confirm func(context.Context, T) bool,
	del func(context.Context, uuid.UUID) error) error {
	l.mu.Lock()
	if err := l.openLocked(); err != nil {
		l.mu.Unlock()
		return err
	}
	i := l.indexLocked(id)
	if i < 0 {
		l.mu.Unlock()
		return ErrRecordNotFound
	}
	rec := l.items[i]
	l.mode = Deleting{ID: id}
	l.mu.Unlock()

	var err error
	if confirm != nil && !confirm(ctx, rec) {
		err = ErrCancelled
	} else {
		err = del(ctx, id)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.mode = Idle{}
	if err != nil {
		if !errors.Is(err, ErrCancelled) {
			l.logger.Warn("Delete failed", zap.String("id", id.String()), zap.Error(err))
		}
		return err
	}
	l.items = slices.DeleteFunc(l.items, func(v T) bool { return l.idOf(v) == id })
	l.version++
	return nil
}

// reload replaces the list with a fresh fetch. A result is dropped if a mutation landed while
// it was loading.
func (l *list[T]) reload(ctx context.Context, fetch func(context.Context) ([]T, error)) error {
	l.mu.Lock()
	if busy(l.mode) {
		l.mu.Unlock()
		return ErrBusy
	}
	started := l.version
	l.mu.Unlock()

	items, err := fetch(ctx)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.version != started {
		l.logger.Debug("Discarding stale list")
		return nil
	}
	l.items = items
	l.version++
	return nil
}
