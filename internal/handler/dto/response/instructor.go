package response

import (
	"time"

	"lessonhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type InstructorResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromInstructorViews(views []*queries.InstructorView) []*InstructorResponse {
	responses := make([]*InstructorResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, &InstructorResponse{
			ID:        view.ID,
			Email:     view.Email,
			CreatedAt: view.CreatedAt,
		})
	}
	return responses
}
