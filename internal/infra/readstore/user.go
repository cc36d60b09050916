package readstore

import (
	"context"
	"errors"
	"time"

	"lessonhub/internal/domain/user"
	"lessonhub/internal/infra"
	"lessonhub/internal/infra/db"
	"lessonhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserReadStore struct {
	db db.Querier
}

func NewUserReadStore(querier db.Querier) *UserReadStore {
	return &UserReadStore{db: querier}
}

const userColumns = `id, email, role, is_approved, is_active, created_at, updated_at`

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*user.Participant, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	p, err := scanParticipant(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return p, nil
}

// ApprovedInstructorByID resolves a bookable instructor: role instructor,
// approved, active. Missing and unapproved are distinguishable by the
// follow-up FindByID the caller performs.
func (s *UserReadStore) ApprovedInstructorByID(ctx context.Context, id uuid.UUID) (*user.Participant, error) {
	query := `
		SELECT ` + userColumns + ` FROM users
		WHERE id = $1 AND role = 'instructor' AND is_approved AND is_active
	`

	p, err := scanParticipant(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("approved instructor not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find approved instructor", err)
	}
	return p, nil
}

// ApprovedInstructors lists the bookable instructor directory, newest first.
func (s *UserReadStore) ApprovedInstructors(ctx context.Context) ([]*queries.InstructorView, error) {
	query := `
		SELECT ` + userColumns + ` FROM users
		WHERE role = 'instructor' AND is_approved AND is_active
		ORDER BY created_at DESC
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list approved instructors", err)
	}
	defer rows.Close()

	views := make([]*queries.InstructorView, 0)
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan instructor", err)
		}
		views = append(views, &queries.InstructorView{
			ID:        p.ID(),
			Email:     p.Email().Value(),
			CreatedAt: p.CreatedAt(),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read approved instructors", err)
	}
	return views, nil
}

func scanParticipant(row pgx.Row) (*user.Participant, error) {
	var (
		id                   uuid.UUID
		emailStr, roleStr    string
		isApproved, isActive bool
		createdAt, updatedAt time.Time
	)

	err := row.Scan(&id, &emailStr, &roleStr, &isApproved, &isActive, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	email, err := user.NewEmail(emailStr)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(roleStr)
	if err != nil {
		return nil, err
	}

	return user.ReconstructParticipant(id, email, role, isApproved, isActive, createdAt, updatedAt), nil
}
