package response

import (
	"time"

	"lessonhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type LessonResponse struct {
	ID           uuid.UUID  `json:"id"`
	InstructorID uuid.UUID  `json:"instructorId"`
	StudentID    uuid.UUID  `json:"studentId"`
	StartTime    time.Time  `json:"startTime"`
	EndTime      time.Time  `json:"endTime"`
	Status       string     `json:"status"`
	Notes        *string    `json:"notes,omitempty"`
	CancelledBy  *uuid.UUID `json:"cancelledBy,omitempty"`
	CancelReason *string    `json:"cancelReason,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

type SlotResponse struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

type BookLessonResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromLessonView(view *queries.LessonView) *LessonResponse {
	return &LessonResponse{
		ID:           view.ID,
		InstructorID: view.InstructorID,
		StudentID:    view.StudentID,
		StartTime:    view.StartTime,
		EndTime:      view.EndTime,
		Status:       view.Status,
		Notes:        view.Notes,
		CancelledBy:  view.CancelledBy,
		CancelReason: view.CancelReason,
		CreatedAt:    view.CreatedAt,
		UpdatedAt:    view.UpdatedAt,
	}
}

func FromLessonViews(views []*queries.LessonView) []*LessonResponse {
	responses := make([]*LessonResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, FromLessonView(view))
	}
	return responses
}

func FromSlotViews(views []queries.SlotView) []SlotResponse {
	responses := make([]SlotResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, SlotResponse{
			StartTime: view.StartTime,
			EndTime:   view.EndTime,
		})
	}
	return responses
}
