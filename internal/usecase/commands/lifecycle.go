package commands

import (
	"context"
	"errors"

	"lessonhub/internal/domain/lesson"
	"lessonhub/internal/events"
	"lessonhub/internal/infra"
	"lessonhub/internal/pkg/clock"
	"lessonhub/internal/pkg/errs"

	"github.com/google/uuid"
)

// LifecycleCommands drives the lesson state machine after booking:
// instructor confirmation, participant cancellation, and the system
// cancellation path used by the expiry sweep.
type LifecycleCommands struct {
	ledger    BookingLedger
	lessons   LessonReader
	publisher events.Publisher
	clock     clock.Clock
}

func NewLifecycleCommands(
	ledger BookingLedger,
	lessons LessonReader,
	publisher events.Publisher,
	clk clock.Clock,
) *LifecycleCommands {
	return &LifecycleCommands{
		ledger:    ledger,
		lessons:   lessons,
		publisher: publisher,
		clock:     clk,
	}
}

// Confirm transitions a PLANNED lesson to CONFIRMED. Only the owning
// instructor may confirm.
func (u *LifecycleCommands) Confirm(ctx context.Context, actorID, lessonID uuid.UUID) error {
	l, err := u.findLesson(ctx, lessonID)
	if err != nil {
		return err
	}
	if !l.IsOwnedBy(actorID) {
		return errs.Mark(errors.New("actor does not own lesson"), ErrNotLessonInstructor)
	}

	now := u.clock.Now()
	if err := l.Confirm(now); err != nil {
		return errs.Mark(err, ErrInvalidState)
	}
	if err := u.ledger.Update(ctx, l); err != nil {
		return errs.Wrap(err, "failed to persist confirmation")
	}

	u.publisher.Publish(ctx, events.LessonConfirmed{
		LessonID:     l.ID(),
		InstructorID: l.InstructorID(),
		StudentID:    l.StudentID(),
		StartTime:    l.Slot().Start(),
		OccurredAt:   now,
	})
	return nil
}

// UserCancel cancels a lesson on behalf of a participant. Lessons that
// already started are rejected before the deadline check, so a student
// inside the window on a past lesson sees the past-lesson error. The
// 12-hour deadline binds students only.
func (u *LifecycleCommands) UserCancel(ctx context.Context, actorID, lessonID uuid.UUID, reason *string) error {
	l, err := u.findLesson(ctx, lessonID)
	if err != nil {
		return err
	}
	if !l.IsParticipant(actorID) {
		return errs.Mark(errors.New("actor is not a lesson participant"), ErrNotLessonParticipant)
	}

	now := u.clock.Now()
	if l.HasStarted(now) {
		return errs.Mark(lesson.ErrAlreadyStarted, ErrPastLesson)
	}
	if actorID == l.StudentID() && l.Slot().Start().Sub(now) < CancellationWindow {
		return errs.Mark(errors.New("cancellation deadline passed"), ErrCancellationWindow)
	}

	if err := l.Cancel(actorID, reason, now); err != nil {
		return errs.Mark(err, ErrInvalidState)
	}
	if err := u.ledger.Update(ctx, l); err != nil {
		return errs.Wrap(err, "failed to persist cancellation")
	}

	u.publishCancelled(ctx, l, actorID)
	return nil
}

// SystemCancel cancels a stale unconfirmed lesson on behalf of the sweep.
// No actor or deadline checks apply; state still must allow cancellation.
func (u *LifecycleCommands) SystemCancel(ctx context.Context, lessonID uuid.UUID) error {
	l, err := u.findLesson(ctx, lessonID)
	if err != nil {
		return err
	}

	reason := SystemCancelReason
	if err := l.Cancel(lesson.SystemCancellerID, &reason, u.clock.Now()); err != nil {
		return errs.Mark(err, ErrInvalidState)
	}
	if err := u.ledger.Update(ctx, l); err != nil {
		return errs.Wrap(err, "failed to persist system cancellation")
	}

	u.publishCancelled(ctx, l, lesson.SystemCancellerID)
	return nil
}

func (u *LifecycleCommands) findLesson(ctx context.Context, lessonID uuid.UUID) (*lesson.Lesson, error) {
	l, err := u.lessons.FindByID(ctx, lessonID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrLessonNotFound)
		}
		return nil, errs.Wrap(err, "failed to find lesson")
	}
	return l, nil
}

func (u *LifecycleCommands) publishCancelled(ctx context.Context, l *lesson.Lesson, by uuid.UUID) {
	reason := ""
	if l.CancelReason() != nil {
		reason = *l.CancelReason()
	}
	u.publisher.Publish(ctx, events.LessonCancelled{
		LessonID:     l.ID(),
		InstructorID: l.InstructorID(),
		StudentID:    l.StudentID(),
		CancelledBy:  by,
		Reason:       reason,
		OccurredAt:   u.clock.Now(),
	})
}
