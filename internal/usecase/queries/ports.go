package queries

import (
	"context"
	"time"

	"lessonhub/internal/domain/lesson"
	"lessonhub/internal/domain/user"
	"lessonhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInstructorNotFound   = errs.New("instructor not found")
	ErrInstructorRequired   = errs.New("an instructor must be specified")
	ErrScheduleAccessDenied = errs.New("not allowed to view this schedule")
)

type LessonReadStore interface {
	OccupiedIntervals(ctx context.Context, instructorID uuid.UUID, dayStart, dayEnd time.Time) ([]lesson.Slot, error)
	InstructorSchedule(ctx context.Context, instructorID uuid.UUID, from, to time.Time, status *lesson.Status) ([]*LessonView, error)
	UpcomingByParticipant(ctx context.Context, userID uuid.UUID, asInstructor bool, now time.Time) ([]*LessonView, error)
}

type UserReadStore interface {
	ApprovedInstructorByID(ctx context.Context, id uuid.UUID) (*user.Participant, error)
	ApprovedInstructors(ctx context.Context) ([]*InstructorView, error)
}
