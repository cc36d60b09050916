//go:build unit

package builder

import (
	"time"

	"lessonhub/internal/domain/lesson"
	"lessonhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type LessonBuilder struct {
	ID           uuid.UUID
	InstructorID uuid.UUID
	StudentID    uuid.UUID
	Date         time.Time
	SlotNumber   int
	Status       lesson.Status
	Notes        *string
	CancelledBy  *uuid.UUID
	CancelReason *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewLessonBuilder() *LessonBuilder {
	now := time.Now()
	return &LessonBuilder{
		ID:           uuid.New(),
		InstructorID: uuid.New(),
		StudentID:    uuid.New(),
		Date:         now.AddDate(0, 0, 7),
		SlotNumber:   1,
		Status:       lesson.StatusPlanned,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (b *LessonBuilder) With(mutate func(*LessonBuilder)) *LessonBuilder {
	mutate(b)
	return b
}

func (b *LessonBuilder) Slot() lesson.Slot {
	slot, err := lesson.SlotAt(b.Date, b.SlotNumber)
	if err != nil {
		panic("builder produced invalid slot: " + err.Error())
	}
	return slot
}

func (b *LessonBuilder) Build() *lesson.Lesson {
	return lesson.ReconstructLesson(
		b.ID, b.InstructorID, b.StudentID,
		b.Slot(),
		b.Status, b.Notes, b.CancelledBy, b.CancelReason,
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *LessonBuilder) BuildView() *queries.LessonView {
	slot := b.Slot()
	return &queries.LessonView{
		ID:           b.ID,
		InstructorID: b.InstructorID,
		StudentID:    b.StudentID,
		StartTime:    slot.Start(),
		EndTime:      slot.End(),
		Status:       b.Status.String(),
		Notes:        b.Notes,
		CancelledBy:  b.CancelledBy,
		CancelReason: b.CancelReason,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}
