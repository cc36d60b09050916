//go:build unit

package builder

import (
	"time"

	"lessonhub/internal/domain/user"

	"github.com/google/uuid"
)

type ParticipantBuilder struct {
	ID         uuid.UUID
	Email      string
	Role       user.Role
	IsApproved bool
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewStudentBuilder() *ParticipantBuilder {
	now := time.Now()
	return &ParticipantBuilder{
		ID:        uuid.New(),
		Email:     "student@example.com",
		Role:      user.RoleStudent,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func NewInstructorBuilder() *ParticipantBuilder {
	now := time.Now()
	return &ParticipantBuilder{
		ID:         uuid.New(),
		Email:      "instructor@example.com",
		Role:       user.RoleInstructor,
		IsApproved: true,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func NewAdminBuilder() *ParticipantBuilder {
	now := time.Now()
	return &ParticipantBuilder{
		ID:        uuid.New(),
		Email:     "admin@example.com",
		Role:      user.RoleAdmin,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *ParticipantBuilder) With(mutate func(*ParticipantBuilder)) *ParticipantBuilder {
	mutate(b)
	return b
}

func (b *ParticipantBuilder) Build() *user.Participant {
	email, err := user.NewEmail(b.Email)
	if err != nil {
		panic("builder produced invalid email: " + err.Error())
	}
	return user.ReconstructParticipant(b.ID, email, b.Role, b.IsApproved, b.IsActive, b.CreatedAt, b.UpdatedAt)
}
