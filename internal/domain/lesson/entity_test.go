//go:build unit

package lesson_test

import (
	"testing"
	"time"

	"lessonhub/internal/domain/lesson"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLessonWithStatus(t *testing.T, status lesson.Status) *lesson.Lesson {
	t.Helper()

	slot, err := lesson.SlotAt(date(2026, time.September, 14), 1)
	require.NoError(t, err)

	return lesson.ReconstructLesson(
		uuid.New(), uuid.New(), uuid.New(),
		slot, status, nil, nil, nil,
		time.Now(), time.Now(),
	)
}

func TestNewLesson(t *testing.T) {
	slot, err := lesson.SlotAt(date(2026, time.September, 14), 2)
	require.NoError(t, err)

	instructorID := uuid.New()
	studentID := uuid.New()
	notes := "bring your own racket"
	now := time.Now()

	l := lesson.NewLesson(instructorID, studentID, slot, &notes, now)

	assert.NotEqual(t, uuid.Nil, l.ID())
	assert.Equal(t, instructorID, l.InstructorID())
	assert.Equal(t, studentID, l.StudentID())
	assert.Equal(t, lesson.StatusPlanned, l.Status())
	assert.Equal(t, &notes, l.Notes())
	assert.Nil(t, l.CancelledBy())
	assert.Equal(t, now, l.CreatedAt())
}

func TestLessonConfirm(t *testing.T) {
	now := time.Now()

	t.Run("planned lesson confirms", func(t *testing.T) {
		l := newLessonWithStatus(t, lesson.StatusPlanned)

		require.NoError(t, l.Confirm(now))
		assert.Equal(t, lesson.StatusConfirmed, l.Status())
		assert.Equal(t, now, l.UpdatedAt())
	})

	t.Run("any other status is rejected", func(t *testing.T) {
		for _, status := range []lesson.Status{lesson.StatusConfirmed, lesson.StatusCancelled, lesson.StatusCompleted} {
			l := newLessonWithStatus(t, status)
			assert.ErrorIs(t, l.Confirm(now), lesson.ErrNotConfirmable, "status %s", status)
			assert.Equal(t, status, l.Status(), "status must not change on rejection")
		}
	})
}

func TestLessonCancel(t *testing.T) {
	now := time.Now()
	reason := "schedule clash"

	t.Run("planned and confirmed lessons cancel", func(t *testing.T) {
		for _, status := range []lesson.Status{lesson.StatusPlanned, lesson.StatusConfirmed} {
			l := newLessonWithStatus(t, status)
			by := uuid.New()

			require.NoError(t, l.Cancel(by, &reason, now))
			assert.Equal(t, lesson.StatusCancelled, l.Status())
			require.NotNil(t, l.CancelledBy())
			assert.Equal(t, by, *l.CancelledBy())
			assert.Equal(t, &reason, l.CancelReason())
		}
	})

	t.Run("terminal statuses are rejected", func(t *testing.T) {
		for _, status := range []lesson.Status{lesson.StatusCancelled, lesson.StatusCompleted} {
			l := newLessonWithStatus(t, status)
			assert.ErrorIs(t, l.Cancel(uuid.New(), &reason, now), lesson.ErrNotCancellable, "status %s", status)
		}
	})

	t.Run("system canceller is recorded as nil uuid", func(t *testing.T) {
		l := newLessonWithStatus(t, lesson.StatusPlanned)

		require.NoError(t, l.Cancel(lesson.SystemCancellerID, &reason, now))
		require.NotNil(t, l.CancelledBy())
		assert.Equal(t, lesson.SystemCancellerID, *l.CancelledBy())
	})
}

func TestLessonHasStarted(t *testing.T) {
	l := newLessonWithStatus(t, lesson.StatusPlanned)
	start := l.Slot().Start()

	assert.False(t, l.HasStarted(start.Add(-time.Second)))
	assert.True(t, l.HasStarted(start), "start instant counts as started")
	assert.True(t, l.HasStarted(start.Add(time.Second)))
}

func TestStatusBlocks(t *testing.T) {
	assert.True(t, lesson.StatusPlanned.Blocks())
	assert.True(t, lesson.StatusConfirmed.Blocks())
	assert.False(t, lesson.StatusCancelled.Blocks())
	assert.False(t, lesson.StatusCompleted.Blocks())
}

func TestNewStatus(t *testing.T) {
	for _, valid := range []string{"planned", "confirmed", "cancelled", "completed"} {
		status, err := lesson.NewStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, status.String())
	}

	_, err := lesson.NewStatus("postponed")
	assert.ErrorIs(t, err, lesson.ErrInvalidStatus)
}
