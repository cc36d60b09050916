package user

import (
	"time"

	"github.com/google/uuid"
)

// Participant is the minimal actor view the booking core consumes. Accounts
// are owned by user management; the core reads identity, role and the
// instructor approval flag, and only ever writes the approval flag.
type Participant struct {
	id         uuid.UUID
	email      Email
	role       Role
	isApproved bool
	isActive   bool
	createdAt  time.Time
	updatedAt  time.Time
}

func ReconstructParticipant(
	id uuid.UUID,
	email Email,
	role Role,
	isApproved, isActive bool,
	createdAt, updatedAt time.Time,
) *Participant {
	return &Participant{
		id:         id,
		email:      email,
		role:       role,
		isApproved: isApproved,
		isActive:   isActive,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (p *Participant) ID() uuid.UUID        { return p.id }
func (p *Participant) Email() Email         { return p.email }
func (p *Participant) Role() Role           { return p.role }
func (p *Participant) IsApproved() bool     { return p.isApproved }
func (p *Participant) IsActive() bool       { return p.isActive }
func (p *Participant) CreatedAt() time.Time { return p.createdAt }
func (p *Participant) UpdatedAt() time.Time { return p.updatedAt }

func (p *Participant) IsStudent() bool    { return p.role == RoleStudent }
func (p *Participant) IsInstructor() bool { return p.role == RoleInstructor }
func (p *Participant) IsAdmin() bool      { return p.role == RoleAdmin }

// CanTeach reports whether the participant can appear on the bookable
// instructor directory.
func (p *Participant) CanTeach() bool {
	return p.role == RoleInstructor && p.isApproved && p.isActive
}
