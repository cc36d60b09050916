package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lessonhub/internal/domain/lesson"
	"lessonhub/internal/events"
	"lessonhub/internal/infra"
	"lessonhub/internal/infra/lock"
	"lessonhub/internal/pkg/clock"
	"lessonhub/internal/pkg/config"
	"lessonhub/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookLessonInput struct {
	StudentID    uuid.UUID
	InstructorID uuid.UUID
	Date         time.Time
	SlotNumber   int
	Notes        *string
}

type BookingCommands struct {
	ledger    BookingLedger
	lessons   LessonReader
	users     UserReader
	locker    Locker
	publisher events.Publisher
	clock     clock.Clock
	cfg       config.BookingConfig
}

func NewBookingCommands(
	ledger BookingLedger,
	lessons LessonReader,
	users UserReader,
	locker Locker,
	publisher events.Publisher,
	clk clock.Clock,
	cfg config.BookingConfig,
) *BookingCommands {
	return &BookingCommands{
		ledger:    ledger,
		lessons:   lessons,
		users:     users,
		locker:    locker,
		publisher: publisher,
		clock:     clk,
		cfg:       cfg,
	}
}

// BookLesson books one slot of an instructor's day for a student. The
// conflict check and the insert run under a per-(instructor, start) lock
// so concurrent attempts on the same slot serialize; exactly one wins.
func (u *BookingCommands) BookLesson(ctx context.Context, input BookLessonInput) (uuid.UUID, error) {
	student, err := u.users.FindByID(ctx, input.StudentID)
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to resolve booking student")
	}
	if !student.IsStudent() {
		return uuid.Nil, errs.Mark(errors.New("actor is not a student"), ErrOnlyStudentsCanBook)
	}

	instructor, err := u.users.FindByID(ctx, input.InstructorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.Mark(err, ErrInstructorNotFound)
		}
		return uuid.Nil, errs.Wrap(err, "failed to resolve instructor")
	}
	if !instructor.CanTeach() {
		return uuid.Nil, errs.Mark(errors.New("instructor cannot be booked"), ErrInstructorNotApproved)
	}

	slot, err := lesson.SlotAt(input.Date, input.SlotNumber)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidSlot)
	}

	now := u.clock.Now()
	if !slot.Start().After(now) {
		return uuid.Nil, errs.Mark(errors.New("slot start is not in the future"), ErrPastLesson)
	}

	lockKey := fmt.Sprintf("lesson:book:%s:%d", input.InstructorID, slot.Start().Unix())
	release, err := u.locker.Acquire(ctx, lockKey, u.cfg.LockHoldTTL, u.cfg.LockAcquireWait)
	if err != nil {
		if errors.Is(err, lock.ErrNotAcquired) {
			return uuid.Nil, errs.Mark(err, ErrBookingContention)
		}
		return uuid.Nil, errs.Wrap(err, "failed to acquire booking lock")
	}
	defer release(ctx)

	conflict, err := u.lessons.HasConflict(ctx, input.InstructorID, slot.Start(), slot.End())
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to check slot availability")
	}
	if conflict {
		return uuid.Nil, errs.Mark(errors.New("slot already taken"), ErrSlotUnavailable)
	}

	newLesson := lesson.NewLesson(input.InstructorID, input.StudentID, slot, input.Notes, now)
	if err := u.ledger.Create(ctx, newLesson); err != nil {
		// Exclusion constraint backstop for writers bypassing the lock.
		if infra.IsKind(err, infra.KindConflict) || infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, errs.Mark(err, ErrSlotUnavailable)
		}
		return uuid.Nil, errs.Wrap(err, "failed to persist lesson")
	}

	u.publisher.Publish(ctx, events.LessonCreated{
		LessonID:     newLesson.ID(),
		InstructorID: input.InstructorID,
		StudentID:    input.StudentID,
		StartTime:    slot.Start(),
		OccurredAt:   now,
	})

	return newLesson.ID(), nil
}
