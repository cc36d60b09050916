package repository

import (
	"context"
	"log/slog"

	"lessonhub/internal/domain/lesson"
	"lessonhub/internal/infra"
	"lessonhub/internal/infra/cache"
	"lessonhub/internal/infra/db"
)

// LessonRepository is the booking ledger: the only writer of lesson rows.
// Every write is a single atomic statement immediately followed by tag
// invalidation for the affected instructor and student, so schedule reads
// never serve conflict data older than the invalidation call itself.
type LessonRepository struct {
	db     db.Querier
	cache  cache.TaggedCache
	logger *slog.Logger
}

func NewLessonRepository(querier db.Querier, tagged cache.TaggedCache, logger *slog.Logger) *LessonRepository {
	return &LessonRepository{db: querier, cache: tagged, logger: logger}
}

func (r *LessonRepository) Create(ctx context.Context, l *lesson.Lesson) error {
	const query = `
		INSERT INTO lessons (
			id, instructor_id, student_id, start_time, end_time,
			status, notes, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		l.ID(),
		l.InstructorID(),
		l.StudentID(),
		l.Slot().Start(),
		l.Slot().End(),
		l.Status().String(),
		l.Notes(),
		l.CreatedAt(),
		l.UpdatedAt(),
	)
	if err != nil {
		return classifyWriteErr("failed to create lesson", err)
	}

	r.invalidateFor(ctx, l)
	return nil
}

// Update persists a lifecycle transition (confirm or cancel) produced on the
// domain entity.
func (r *LessonRepository) Update(ctx context.Context, l *lesson.Lesson) error {
	const query = `
		UPDATE lessons
		SET status = $2, cancelled_by = $3, cancel_reason = $4, updated_at = $5
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		l.ID(),
		l.Status().String(),
		l.CancelledBy(),
		l.CancelReason(),
		l.UpdatedAt(),
	)
	if err != nil {
		return classifyWriteErr("failed to update lesson", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("lesson not found", nil, infra.KindNotFound)
	}

	r.invalidateFor(ctx, l)
	return nil
}

// invalidateFor flushes the schedule projections of both parties. The write
// has already committed; a failed invalidation is logged and left to the
// entry TTL rather than failing the request.
func (r *LessonRepository) invalidateFor(ctx context.Context, l *lesson.Lesson) {
	err := r.cache.Invalidate(ctx,
		cache.TagLessonsByInstructor(l.InstructorID()),
		cache.TagLessonsByStudent(l.StudentID()),
	)
	if err != nil {
		r.logger.Error("failed to invalidate lesson cache",
			"lesson_id", l.ID(),
			"instructor_id", l.InstructorID(),
			"error", err,
		)
	}
}
