package commands

import (
	"context"

	"lessonhub/internal/infra"
	"lessonhub/internal/pkg/errs"

	"github.com/google/uuid"
)

type InstructorLedger interface {
	SetInstructorApproval(ctx context.Context, instructorID uuid.UUID, approved bool) error
}

// InstructorCommands covers the admin-side moderation surface the core
// needs: toggling whether an instructor is bookable. Admin-only access is
// enforced by the transport layer.
type InstructorCommands struct {
	ledger InstructorLedger
}

func NewInstructorCommands(ledger InstructorLedger) *InstructorCommands {
	return &InstructorCommands{ledger: ledger}
}

func (u *InstructorCommands) SetApproval(ctx context.Context, instructorID uuid.UUID, approved bool) error {
	if err := u.ledger.SetInstructorApproval(ctx, instructorID, approved); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrInstructorNotFound)
		}
		return errs.Wrap(err, "failed to update instructor approval")
	}
	return nil
}
