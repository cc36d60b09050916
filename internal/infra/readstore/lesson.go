package readstore

import (
	"context"
	"errors"
	"time"

	"lessonhub/internal/domain/lesson"
	"lessonhub/internal/infra"
	"lessonhub/internal/infra/db"
	"lessonhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// LessonReadStore serves uncached lesson reads. The conflict queries here
// are the authoritative source for booking decisions; caching of listing
// queries happens a layer up.
type LessonReadStore struct {
	db db.Querier
}

func NewLessonReadStore(querier db.Querier) *LessonReadStore {
	return &LessonReadStore{db: querier}
}

const lessonColumns = `
	id, instructor_id, student_id, start_time, end_time,
	status, notes, cancelled_by, cancel_reason, created_at, updated_at
`

func (s *LessonReadStore) FindByID(ctx context.Context, id uuid.UUID) (*lesson.Lesson, error) {
	query := `SELECT ` + lessonColumns + ` FROM lessons WHERE id = $1`

	row := s.db.QueryRow(ctx, query, id)
	l, err := scanLesson(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("lesson not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find lesson by ID", err)
	}
	return l, nil
}

// HasConflict reports whether any blocking lesson overlaps [start, end) for
// the instructor. Half-open semantics: existing.start < end AND
// existing.end > start. Cancelled lessons never block.
func (s *LessonReadStore) HasConflict(ctx context.Context, instructorID uuid.UUID, start, end time.Time) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM lessons
			WHERE instructor_id = $1
			  AND status IN ('planned', 'confirmed')
			  AND start_time < $3
			  AND end_time > $2
		)
	`

	var exists bool
	if err := s.db.QueryRow(ctx, query, instructorID, start, end).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check instructor conflict", err)
	}
	return exists, nil
}

// OccupiedIntervals returns the blocking intervals of an instructor's day,
// ordered by start, for availability listing.
func (s *LessonReadStore) OccupiedIntervals(ctx context.Context, instructorID uuid.UUID, dayStart, dayEnd time.Time) ([]lesson.Slot, error) {
	const query = `
		SELECT start_time, end_time FROM lessons
		WHERE instructor_id = $1
		  AND status IN ('planned', 'confirmed')
		  AND start_time < $3
		  AND end_time > $2
		ORDER BY start_time
	`

	rows, err := s.db.Query(ctx, query, instructorID, dayStart, dayEnd)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list occupied intervals", err)
	}
	defer rows.Close()

	var occupied []lesson.Slot
	for rows.Next() {
		var start, end time.Time
		if err := rows.Scan(&start, &end); err != nil {
			return nil, infra.WrapRepoErr("failed to scan occupied interval", err)
		}
		occupied = append(occupied, lesson.ReconstructSlot(start, end))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read occupied intervals", err)
	}
	return occupied, nil
}

// InstructorSchedule lists an instructor's lessons between from and to,
// optionally filtered by status, ordered by start ascending.
func (s *LessonReadStore) InstructorSchedule(ctx context.Context, instructorID uuid.UUID, from, to time.Time, status *lesson.Status) ([]*queries.LessonView, error) {
	query := `
		SELECT ` + lessonColumns + ` FROM lessons
		WHERE instructor_id = $1
		  AND start_time >= $2
		  AND start_time < $3
	`
	args := []any{instructorID, from, to}
	if status != nil {
		query += ` AND status = $4`
		args = append(args, status.String())
	}
	query += ` ORDER BY start_time`

	return s.listViews(ctx, query, args...)
}

// UpcomingByParticipant lists a participant's future blocking lessons,
// keyed on whichever side of the lesson the participant sits.
func (s *LessonReadStore) UpcomingByParticipant(ctx context.Context, userID uuid.UUID, asInstructor bool, now time.Time) ([]*queries.LessonView, error) {
	column := "student_id"
	if asInstructor {
		column = "instructor_id"
	}

	query := `
		SELECT ` + lessonColumns + ` FROM lessons
		WHERE ` + column + ` = $1
		  AND status IN ('planned', 'confirmed')
		  AND start_time > $2
		ORDER BY start_time
	`

	return s.listViews(ctx, query, userID, now)
}

// ExpiredPlanned selects sweep candidates: still PLANNED, created before the
// cutoff, start still in the future. Lessons whose start already passed are
// stale but not actionable. Bounded to limit rows per run.
func (s *LessonReadStore) ExpiredPlanned(ctx context.Context, olderThan, now time.Time, limit int) ([]*lesson.Lesson, error) {
	query := `
		SELECT ` + lessonColumns + ` FROM lessons
		WHERE status = 'planned'
		  AND created_at < $1
		  AND start_time > $2
		ORDER BY created_at
		LIMIT $3
	`

	rows, err := s.db.Query(ctx, query, olderThan, now, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list expired planned lessons", err)
	}
	defer rows.Close()

	var lessons []*lesson.Lesson
	for rows.Next() {
		l, err := scanLesson(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan lesson", err)
		}
		lessons = append(lessons, l)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read expired planned lessons", err)
	}
	return lessons, nil
}

func (s *LessonReadStore) listViews(ctx context.Context, query string, args ...any) ([]*queries.LessonView, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list lessons", err)
	}
	defer rows.Close()

	views := make([]*queries.LessonView, 0)
	for rows.Next() {
		l, err := scanLesson(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan lesson", err)
		}
		views = append(views, lessonToView(l))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read lessons", err)
	}
	return views, nil
}

func scanLesson(row pgx.Row) (*lesson.Lesson, error) {
	var (
		id, instructorID, studentID uuid.UUID
		start, end                  time.Time
		statusStr                   string
		notes, cancelReason         *string
		cancelledBy                 *uuid.UUID
		createdAt, updatedAt        time.Time
	)

	err := row.Scan(
		&id, &instructorID, &studentID, &start, &end,
		&statusStr, &notes, &cancelledBy, &cancelReason, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	status, err := lesson.NewStatus(statusStr)
	if err != nil {
		return nil, err
	}

	return lesson.ReconstructLesson(
		id, instructorID, studentID,
		lesson.ReconstructSlot(start, end),
		status, notes, cancelledBy, cancelReason,
		createdAt, updatedAt,
	), nil
}

func lessonToView(l *lesson.Lesson) *queries.LessonView {
	return &queries.LessonView{
		ID:           l.ID(),
		InstructorID: l.InstructorID(),
		StudentID:    l.StudentID(),
		StartTime:    l.Slot().Start(),
		EndTime:      l.Slot().End(),
		Status:       l.Status().String(),
		Notes:        l.Notes(),
		CancelledBy:  l.CancelledBy(),
		CancelReason: l.CancelReason(),
		CreatedAt:    l.CreatedAt(),
		UpdatedAt:    l.UpdatedAt(),
	}
}
