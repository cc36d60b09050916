//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"lessonhub/internal/domain/lesson"
	"lessonhub/internal/domain/user"
	"lessonhub/internal/infra"
	"lessonhub/internal/infra/cache"
	"lessonhub/internal/pkg/clock"
	"lessonhub/internal/pkg/config"
	"lessonhub/internal/usecase/queries"
	"lessonhub/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLessonReads struct {
	lessons      []*lesson.Lesson
	computeCalls int
}

func (s *fakeLessonReads) OccupiedIntervals(_ context.Context, instructorID uuid.UUID, dayStart, dayEnd time.Time) ([]lesson.Slot, error) {
	s.computeCalls++
	var occupied []lesson.Slot
	for _, l := range s.lessons {
		if l.InstructorID() == instructorID && l.Status().Blocks() && l.Slot().Overlaps(dayStart, dayEnd) {
			occupied = append(occupied, l.Slot())
		}
	}
	return occupied, nil
}

func (s *fakeLessonReads) InstructorSchedule(_ context.Context, instructorID uuid.UUID, from, to time.Time, status *lesson.Status) ([]*queries.LessonView, error) {
	s.computeCalls++
	views := make([]*queries.LessonView, 0)
	for _, l := range s.lessons {
		if l.InstructorID() != instructorID {
			continue
		}
		if l.Slot().Start().Before(from) || !l.Slot().Start().Before(to) {
			continue
		}
		if status != nil && l.Status() != *status {
			continue
		}
		views = append(views, viewOf(l))
	}
	return views, nil
}

func (s *fakeLessonReads) UpcomingByParticipant(_ context.Context, userID uuid.UUID, asInstructor bool, now time.Time) ([]*queries.LessonView, error) {
	s.computeCalls++
	views := make([]*queries.LessonView, 0)
	for _, l := range s.lessons {
		participantID := l.StudentID()
		if asInstructor {
			participantID = l.InstructorID()
		}
		if participantID == userID && l.Status().Blocks() && l.Slot().Start().After(now) {
			views = append(views, viewOf(l))
		}
	}
	return views, nil
}

func viewOf(l *lesson.Lesson) *queries.LessonView {
	return &queries.LessonView{
		ID:           l.ID(),
		InstructorID: l.InstructorID(),
		StudentID:    l.StudentID(),
		StartTime:    l.Slot().Start(),
		EndTime:      l.Slot().End(),
		Status:       l.Status().String(),
		CreatedAt:    l.CreatedAt(),
		UpdatedAt:    l.UpdatedAt(),
	}
}

type fakeUserReads struct {
	instructors map[uuid.UUID]*user.Participant
}

func (s *fakeUserReads) ApprovedInstructorByID(_ context.Context, id uuid.UUID) (*user.Participant, error) {
	p, ok := s.instructors[id]
	if !ok || !p.CanTeach() {
		return nil, infra.WrapRepoErr("approved instructor not found", nil, infra.KindNotFound)
	}
	return p, nil
}

func (s *fakeUserReads) ApprovedInstructors(_ context.Context) ([]*queries.InstructorView, error) {
	views := make([]*queries.InstructorView, 0)
	for _, p := range s.instructors {
		if p.CanTeach() {
			views = append(views, &queries.InstructorView{ID: p.ID(), Email: p.Email().Value(), CreatedAt: p.CreatedAt()})
		}
	}
	return views, nil
}

type queryFixture struct {
	queries    *queries.LessonQueries
	lessons    *fakeLessonReads
	cache      *cache.MemoryCache
	instructor *user.Participant
	student    *user.Participant
	day        time.Time
}

func newQueryFixture(t *testing.T) *queryFixture {
	t.Helper()

	instructor := builder.NewInstructorBuilder().Build()
	student := builder.NewStudentBuilder().Build()

	lessonReads := &fakeLessonReads{}
	userReads := &fakeUserReads{instructors: map[uuid.UUID]*user.Participant{instructor.ID(): instructor}}
	memCache := cache.NewMemoryCache()
	mockClock := clock.NewMockClock(time.Date(2026, time.September, 10, 9, 0, 0, 0, time.UTC))

	return &queryFixture{
		queries:    queries.NewLessonQueries(lessonReads, userReads, memCache, mockClock, config.NewTestConfig().Cache),
		lessons:    lessonReads,
		cache:      memCache,
		instructor: instructor,
		student:    student,
		day:        time.Date(2026, time.September, 14, 0, 0, 0, 0, time.UTC),
	}
}

// addLesson mimics the write side: mutate storage, then invalidate the
// lesson tags the repository invalidates.
func (f *queryFixture) addLesson(ctx context.Context, slotNumber int, status lesson.Status) *lesson.Lesson {
	l := builder.NewLessonBuilder().
		With(func(b *builder.LessonBuilder) {
			b.InstructorID = f.instructor.ID()
			b.StudentID = f.student.ID()
			b.Date = f.day
			b.SlotNumber = slotNumber
			b.Status = status
		}).
		Build()
	f.lessons.lessons = append(f.lessons.lessons, l)
	_ = f.cache.Invalidate(ctx,
		cache.TagLessonsByInstructor(f.instructor.ID()),
		cache.TagLessonsByStudent(f.student.ID()),
	)
	return l
}

func (f *queryFixture) replaceLesson(ctx context.Context, old *lesson.Lesson, status lesson.Status) {
	for i, l := range f.lessons.lessons {
		if l.ID() == old.ID() {
			f.lessons.lessons[i] = builder.NewLessonBuilder().
				With(func(b *builder.LessonBuilder) {
					b.ID = old.ID()
					b.InstructorID = old.InstructorID()
					b.StudentID = old.StudentID()
					b.Date = f.day
					b.SlotNumber = slotNumberOf(old)
					b.Status = status
				}).
				Build()
		}
	}
	_ = f.cache.Invalidate(ctx,
		cache.TagLessonsByInstructor(old.InstructorID()),
		cache.TagLessonsByStudent(old.StudentID()),
	)
}

func slotNumberOf(l *lesson.Lesson) int {
	return l.Slot().Start().Hour()/2 - 3
}

func TestAvailableSlots(t *testing.T) {
	ctx := context.Background()

	t.Run("excludes blocked slots", func(t *testing.T) {
		f := newQueryFixture(t)
		f.addLesson(ctx, 2, lesson.StatusPlanned)

		slots, err := f.queries.AvailableSlots(ctx, f.instructor.ID(), f.day)
		require.NoError(t, err)

		require.Len(t, slots, lesson.SlotsPerDay-1)
		blockedStart := time.Date(2026, time.September, 14, 10, 0, 0, 0, time.UTC)
		for _, s := range slots {
			assert.NotEqual(t, blockedStart, s.StartTime)
		}
	})

	t.Run("unknown instructor", func(t *testing.T) {
		f := newQueryFixture(t)

		_, err := f.queries.AvailableSlots(ctx, uuid.New(), f.day)
		assert.ErrorIs(t, err, queries.ErrInstructorNotFound)
	})

	t.Run("serves repeat reads from the cache", func(t *testing.T) {
		f := newQueryFixture(t)

		_, err := f.queries.AvailableSlots(ctx, f.instructor.ID(), f.day)
		require.NoError(t, err)
		callsAfterFirst := f.lessons.computeCalls

		_, err = f.queries.AvailableSlots(ctx, f.instructor.ID(), f.day)
		require.NoError(t, err)

		assert.Equal(t, callsAfterFirst, f.lessons.computeCalls)
	})

	t.Run("a booking is visible on the next read", func(t *testing.T) {
		f := newQueryFixture(t)

		slots, err := f.queries.AvailableSlots(ctx, f.instructor.ID(), f.day)
		require.NoError(t, err)
		require.Len(t, slots, lesson.SlotsPerDay)

		f.addLesson(ctx, 4, lesson.StatusPlanned)

		slots, err = f.queries.AvailableSlots(ctx, f.instructor.ID(), f.day)
		require.NoError(t, err)
		assert.Len(t, slots, lesson.SlotsPerDay-1)
	})

	t.Run("a cancelled slot reappears", func(t *testing.T) {
		f := newQueryFixture(t)
		l := f.addLesson(ctx, 4, lesson.StatusPlanned)

		slots, err := f.queries.AvailableSlots(ctx, f.instructor.ID(), f.day)
		require.NoError(t, err)
		require.Len(t, slots, lesson.SlotsPerDay-1)

		f.replaceLesson(ctx, l, lesson.StatusCancelled)

		slots, err = f.queries.AvailableSlots(ctx, f.instructor.ID(), f.day)
		require.NoError(t, err)
		assert.Len(t, slots, lesson.SlotsPerDay)
	})
}

func TestInstructorScheduleAccess(t *testing.T) {
	ctx := context.Background()
	from := time.Date(2026, time.September, 14, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	t.Run("instructor reads own schedule", func(t *testing.T) {
		f := newQueryFixture(t)
		f.addLesson(ctx, 1, lesson.StatusConfirmed)

		views, err := f.queries.InstructorSchedule(ctx, f.instructor, f.instructor.ID(), from, to, nil)
		require.NoError(t, err)
		assert.Len(t, views, 1)
	})

	t.Run("instructor cannot read another schedule", func(t *testing.T) {
		f := newQueryFixture(t)

		_, err := f.queries.InstructorSchedule(ctx, f.instructor, uuid.New(), from, to, nil)
		assert.ErrorIs(t, err, queries.ErrScheduleAccessDenied)
	})

	t.Run("students are denied", func(t *testing.T) {
		f := newQueryFixture(t)

		_, err := f.queries.InstructorSchedule(ctx, f.student, f.instructor.ID(), from, to, nil)
		assert.ErrorIs(t, err, queries.ErrScheduleAccessDenied)
	})

	t.Run("admin must name an instructor", func(t *testing.T) {
		f := newQueryFixture(t)
		admin := builder.NewAdminBuilder().Build()

		_, err := f.queries.InstructorSchedule(ctx, admin, uuid.Nil, from, to, nil)
		assert.ErrorIs(t, err, queries.ErrInstructorRequired)

		views, err := f.queries.InstructorSchedule(ctx, admin, f.instructor.ID(), from, to, nil)
		require.NoError(t, err)
		assert.Empty(t, views)
	})

	t.Run("status filter narrows the result", func(t *testing.T) {
		f := newQueryFixture(t)
		f.addLesson(ctx, 1, lesson.StatusConfirmed)
		f.addLesson(ctx, 2, lesson.StatusPlanned)

		status := lesson.StatusConfirmed
		views, err := f.queries.InstructorSchedule(ctx, f.instructor, f.instructor.ID(), from, to, &status)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "confirmed", views[0].Status)
	})
}

func TestUpcomingLessons(t *testing.T) {
	ctx := context.Background()

	t.Run("each participant sees their side", func(t *testing.T) {
		f := newQueryFixture(t)
		f.addLesson(ctx, 3, lesson.StatusPlanned)

		studentViews, err := f.queries.UpcomingLessons(ctx, f.student)
		require.NoError(t, err)
		assert.Len(t, studentViews, 1)

		instructorViews, err := f.queries.UpcomingLessons(ctx, f.instructor)
		require.NoError(t, err)
		assert.Len(t, instructorViews, 1)
	})

	t.Run("a new booking invalidates both sides", func(t *testing.T) {
		f := newQueryFixture(t)

		views, err := f.queries.UpcomingLessons(ctx, f.student)
		require.NoError(t, err)
		require.Empty(t, views)

		f.addLesson(ctx, 3, lesson.StatusPlanned)

		views, err = f.queries.UpcomingLessons(ctx, f.student)
		require.NoError(t, err)
		assert.Len(t, views, 1)
	})
}
