package repository

import (
	"context"
	"log/slog"

	"lessonhub/internal/infra"
	"lessonhub/internal/infra/cache"
	"lessonhub/internal/infra/db"

	"github.com/google/uuid"
)

// UserRepository covers the single account write the booking core owns: the
// instructor approval flag. Everything else about accounts belongs to user
// management.
type UserRepository struct {
	db     db.Querier
	cache  cache.TaggedCache
	logger *slog.Logger
}

func NewUserRepository(querier db.Querier, tagged cache.TaggedCache, logger *slog.Logger) *UserRepository {
	return &UserRepository{db: querier, cache: tagged, logger: logger}
}

func (r *UserRepository) SetInstructorApproval(ctx context.Context, instructorID uuid.UUID, approved bool) error {
	const query = `
		UPDATE users
		SET is_approved = $2, updated_at = now()
		WHERE id = $1 AND role = 'instructor'
	`

	tag, err := r.db.Exec(ctx, query, instructorID, approved)
	if err != nil {
		return classifyWriteErr("failed to update instructor approval", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("instructor not found", nil, infra.KindNotFound)
	}

	if err := r.cache.Invalidate(ctx, cache.TagInstructors); err != nil {
		r.logger.Error("failed to invalidate instructor cache",
			"instructor_id", instructorID,
			"error", err,
		)
	}
	return nil
}
