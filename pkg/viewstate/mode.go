package viewstate

import (
	"github.com/google/uuid"
)

// Mode is the single state value of a list view. Exactly one of the types below.
type Mode interface {
	mode()
}

type ModalKind int

const (
	ModalCreate ModalKind = iota
	ModalEdit
)

func (k ModalKind) String() string {
	if k == ModalEdit {
		return "edit"
	}
	return "create"
}

type Idle struct{}

// ModalOpen is the create or edit form over a record of type T. Record is the zero value for
// create. Err holds the last failed submission, shown inside the modal.
type ModalOpen[T any] struct {
	Kind   ModalKind
	Record T
	Err    error
}

type StatusModalOpen[T any] struct {
	Record T
	Err    error
}

// Submitting remembers the modal it came from so a failure can reopen it.
type Submitting struct {
	From Mode
}

type Deleting struct {
	ID uuid.UUID
}

func (Idle) mode()               {}
func (ModalOpen[T]) mode()       {}
func (StatusModalOpen[T]) mode() {}
func (Submitting) mode()         {}
func (Deleting) mode()           {}

func busy(m Mode) bool {
	switch m.(type) {
	case Submitting, Deleting:
		return true
	}
	return false
}
