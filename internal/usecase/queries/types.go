package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type LessonView struct {
	ID           uuid.UUID  `json:"id"`
	InstructorID uuid.UUID  `json:"instructor_id"`
	StudentID    uuid.UUID  `json:"student_id"`
	StartTime    time.Time  `json:"start_time"`
	EndTime      time.Time  `json:"end_time"`
	Status       string     `json:"status"`
	Notes        *string    `json:"notes,omitempty"`
	CancelledBy  *uuid.UUID `json:"cancelled_by,omitempty"`
	CancelReason *string    `json:"cancel_reason,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type SlotView struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

type InstructorView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
