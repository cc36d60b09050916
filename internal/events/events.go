package events

import (
	"time"

	"github.com/google/uuid"
)

// Event is implemented by every domain event published on the bus.
type Event interface {
	EventName() string
}

type LessonCreated struct {
	LessonID     uuid.UUID
	InstructorID uuid.UUID
	StudentID    uuid.UUID
	StartTime    time.Time
	OccurredAt   time.Time
}

func (LessonCreated) EventName() string { return "lesson.created" }

type LessonConfirmed struct {
	LessonID     uuid.UUID
	InstructorID uuid.UUID
	StudentID    uuid.UUID
	StartTime    time.Time
	OccurredAt   time.Time
}

func (LessonConfirmed) EventName() string { return "lesson.confirmed" }

type LessonCancelled struct {
	LessonID     uuid.UUID
	InstructorID uuid.UUID
	StudentID    uuid.UUID
	CancelledBy  uuid.UUID
	Reason       string
	OccurredAt   time.Time
}

func (LessonCancelled) EventName() string { return "lesson.cancelled" }
