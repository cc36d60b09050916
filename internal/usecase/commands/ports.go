package commands

import (
	"context"
	"time"

	"lessonhub/internal/domain/lesson"
	"lessonhub/internal/domain/user"
	"lessonhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOnlyStudentsCanBook   = errs.New("only students can book lessons")
	ErrInstructorNotFound    = errs.New("instructor not found")
	ErrInstructorNotApproved = errs.New("instructor is not approved")
	ErrInvalidSlot           = errs.New("invalid slot number")
	ErrPastLesson            = errs.New("cannot operate on a lesson in the past")
	ErrSlotUnavailable       = errs.New("this time slot is already booked")
	ErrBookingContention     = errs.New("too many simultaneous booking attempts")
	ErrLessonNotFound        = errs.New("lesson not found")
	ErrNotLessonInstructor   = errs.New("only the lesson instructor can perform this action")
	ErrNotLessonParticipant  = errs.New("only a lesson participant can perform this action")
	ErrInvalidState          = errs.New("lesson state does not allow this action")
	ErrCancellationWindow    = errs.New("students must cancel lesson at least 12 hours in advance")
)

// CancellationWindow is how far before the start a student may still cancel.
// Instructors and admins are exempt.
const CancellationWindow = 12 * time.Hour

// SystemCancelReason is recorded on lessons cancelled by the expiry sweep.
const SystemCancelReason = "Automatically cancelled: no confirmation within 24 hours"

type BookingLedger interface {
	Create(ctx context.Context, l *lesson.Lesson) error
	Update(ctx context.Context, l *lesson.Lesson) error
}

type LessonReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*lesson.Lesson, error)
	HasConflict(ctx context.Context, instructorID uuid.UUID, start, end time.Time) (bool, error)
}

type UserReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*user.Participant, error)
}

// Locker serializes critical sections across processes. Acquire blocks up
// to wait for the lock and returns a release func; lock.ErrNotAcquired
// signals contention past the deadline.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl, wait time.Duration) (func(context.Context), error)
}
