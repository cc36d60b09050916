package lesson

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errors.New("invalid lesson status")
	ErrNotConfirmable    = errors.New("only planned lessons can be confirmed")
	ErrNotCancellable    = errors.New("lesson cannot be cancelled in its current status")
	ErrAlreadyStarted    = errors.New("lesson has already started")
	ErrMissingCancelInfo = errors.New("cancelled lesson requires a canceller")
)

// SystemCancellerID marks cancellations performed by the expiry sweep rather
// than a participant.
var SystemCancellerID = uuid.Nil

type Lesson struct {
	id           uuid.UUID
	instructorID uuid.UUID
	studentID    uuid.UUID
	slot         Slot
	status       Status
	notes        *string
	cancelledBy  *uuid.UUID
	cancelReason *string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewLesson(instructorID, studentID uuid.UUID, slot Slot, notes *string, now time.Time) *Lesson {
	return &Lesson{
		id:           uuid.New(),
		instructorID: instructorID,
		studentID:    studentID,
		slot:         slot,
		status:       StatusPlanned,
		notes:        notes,
		createdAt:    now,
		updatedAt:    now,
	}
}

func ReconstructLesson(
	id, instructorID, studentID uuid.UUID,
	slot Slot,
	status Status,
	notes *string,
	cancelledBy *uuid.UUID,
	cancelReason *string,
	createdAt, updatedAt time.Time,
) *Lesson {
	return &Lesson{
		id:           id,
		instructorID: instructorID,
		studentID:    studentID,
		slot:         slot,
		status:       status,
		notes:        notes,
		cancelledBy:  cancelledBy,
		cancelReason: cancelReason,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func ReconstructSlot(start, end time.Time) Slot {
	return Slot{start: start, end: end}
}

func (l *Lesson) ID() uuid.UUID           { return l.id }
func (l *Lesson) InstructorID() uuid.UUID { return l.instructorID }
func (l *Lesson) StudentID() uuid.UUID    { return l.studentID }
func (l *Lesson) Slot() Slot              { return l.slot }
func (l *Lesson) Status() Status          { return l.status }
func (l *Lesson) Notes() *string          { return l.notes }
func (l *Lesson) CancelledBy() *uuid.UUID { return l.cancelledBy }
func (l *Lesson) CancelReason() *string   { return l.cancelReason }
func (l *Lesson) CreatedAt() time.Time    { return l.createdAt }
func (l *Lesson) UpdatedAt() time.Time    { return l.updatedAt }

func (l *Lesson) IsOwnedBy(instructorID uuid.UUID) bool {
	return l.instructorID == instructorID
}

func (l *Lesson) IsParticipant(userID uuid.UUID) bool {
	return l.instructorID == userID || l.studentID == userID
}

func (l *Lesson) HasStarted(now time.Time) bool {
	return !l.slot.Start().After(now)
}

// Confirm moves the lesson PLANNED -> CONFIRMED. Actor policy (only the
// owning instructor may confirm) is enforced by the caller.
func (l *Lesson) Confirm(now time.Time) error {
	switch l.status {
	case StatusPlanned:
		l.status = StatusConfirmed
		l.updatedAt = now
		return nil
	case StatusConfirmed, StatusCancelled, StatusCompleted:
		return ErrNotConfirmable
	default:
		return ErrInvalidStatus
	}
}

// Cancel moves the lesson into the terminal CANCELLED state, recording who
// cancelled and why. Pass SystemCancellerID for sweep cancellations.
func (l *Lesson) Cancel(cancelledBy uuid.UUID, reason *string, now time.Time) error {
	switch l.status {
	case StatusPlanned, StatusConfirmed:
		l.status = StatusCancelled
		by := cancelledBy
		l.cancelledBy = &by
		l.cancelReason = reason
		l.updatedAt = now
		return nil
	case StatusCancelled, StatusCompleted:
		return ErrNotCancellable
	default:
		return ErrInvalidStatus
	}
}
