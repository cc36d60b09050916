package request

import (
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type BookLessonRequest struct {
	InstructorID uuid.UUID `json:"instructor_id" binding:"required"`
	Date         string    `json:"date" binding:"required"`
	SlotNumber   int       `json:"slot_number" binding:"required"`
	Notes        *string   `json:"notes,omitempty"`
}

func (r BookLessonRequest) ParseDate() (time.Time, error) {
	return time.Parse(dateLayout, r.Date)
}

type CancelLessonRequest struct {
	Reason *string `json:"reason,omitempty"`
}

type ApproveInstructorRequest struct {
	Approved *bool `json:"approved,omitempty"`
}

// IsApproved defaults to true so a bare POST approves.
func (r ApproveInstructorRequest) IsApproved() bool {
	if r.Approved == nil {
		return true
	}
	return *r.Approved
}
