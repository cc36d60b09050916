//go:build unit

package commands_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"lessonhub/internal/domain/lesson"
	"lessonhub/internal/domain/user"
	"lessonhub/internal/events"
	"lessonhub/internal/infra"
	"lessonhub/internal/infra/lock"
	"lessonhub/internal/pkg/clock"
	"lessonhub/internal/pkg/config"
	"lessonhub/internal/usecase/commands"
	"lessonhub/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLessonStore backs both the ledger and the reader with one map, like
// the real repository and read store share one table.
type fakeLessonStore struct {
	mu        sync.Mutex
	lessons   map[uuid.UUID]*lesson.Lesson
	createErr error
	updateErr error
}

func newFakeLessonStore() *fakeLessonStore {
	return &fakeLessonStore{lessons: make(map[uuid.UUID]*lesson.Lesson)}
}

func (s *fakeLessonStore) Create(_ context.Context, l *lesson.Lesson) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return s.createErr
	}
	s.lessons[l.ID()] = l
	return nil
}

func (s *fakeLessonStore) Update(_ context.Context, l *lesson.Lesson) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.updateErr != nil {
		return s.updateErr
	}
	if _, ok := s.lessons[l.ID()]; !ok {
		return infra.WrapRepoErr("lesson not found", nil, infra.KindNotFound)
	}
	s.lessons[l.ID()] = l
	return nil
}

func (s *fakeLessonStore) FindByID(_ context.Context, id uuid.UUID) (*lesson.Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.lessons[id]
	if !ok {
		return nil, infra.WrapRepoErr("lesson not found", nil, infra.KindNotFound)
	}
	return l, nil
}

func (s *fakeLessonStore) HasConflict(_ context.Context, instructorID uuid.UUID, start, end time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.lessons {
		if l.InstructorID() == instructorID && l.Status().Blocks() && l.Slot().Overlaps(start, end) {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeLessonStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lessons)
}

type fakeUserStore struct {
	users map[uuid.UUID]*user.Participant
}

func newFakeUserStore(participants ...*user.Participant) *fakeUserStore {
	s := &fakeUserStore{users: make(map[uuid.UUID]*user.Participant)}
	for _, p := range participants {
		s.users[p.ID()] = p
	}
	return s
}

func (s *fakeUserStore) FindByID(_ context.Context, id uuid.UUID) (*user.Participant, error) {
	p, ok := s.users[id]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return p, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, event events.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	names := make([]string, 0, len(p.events))
	for _, e := range p.events {
		names = append(names, e.EventName())
	}
	return names
}

type bookingFixture struct {
	usecase    *commands.BookingCommands
	store      *fakeLessonStore
	locker     *lock.MemoryLocker
	publisher  *recordingPublisher
	clock      *clock.MockClock
	student    *user.Participant
	instructor *user.Participant
}

func newBookingFixture(t *testing.T, extraUsers ...*user.Participant) *bookingFixture {
	t.Helper()

	student := builder.NewStudentBuilder().Build()
	instructor := builder.NewInstructorBuilder().Build()

	store := newFakeLessonStore()
	locker := lock.NewMemoryLocker()
	publisher := &recordingPublisher{}
	mockClock := clock.NewMockClock(time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC))

	users := append([]*user.Participant{student, instructor}, extraUsers...)

	usecase := commands.NewBookingCommands(
		store,
		store,
		newFakeUserStore(users...),
		locker,
		publisher,
		mockClock,
		config.NewTestConfig().Booking,
	)

	return &bookingFixture{
		usecase:    usecase,
		store:      store,
		locker:     locker,
		publisher:  publisher,
		clock:      mockClock,
		student:    student,
		instructor: instructor,
	}
}

func (f *bookingFixture) input() commands.BookLessonInput {
	return commands.BookLessonInput{
		StudentID:    f.student.ID(),
		InstructorID: f.instructor.ID(),
		Date:         time.Date(2026, time.September, 14, 0, 0, 0, 0, time.UTC),
		SlotNumber:   2,
	}
}

func TestBookLesson(t *testing.T) {
	ctx := context.Background()

	t.Run("books a free slot as planned", func(t *testing.T) {
		f := newBookingFixture(t)

		lessonID, err := f.usecase.BookLesson(ctx, f.input())
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, lessonID)

		booked, err := f.store.FindByID(ctx, lessonID)
		require.NoError(t, err)
		assert.Equal(t, lesson.StatusPlanned, booked.Status())
		assert.Equal(t, f.instructor.ID(), booked.InstructorID())
		assert.Equal(t, f.student.ID(), booked.StudentID())
		assert.Equal(t, time.Date(2026, time.September, 14, 10, 0, 0, 0, time.UTC), booked.Slot().Start())

		assert.Equal(t, []string{"lesson.created"}, f.publisher.names())
	})

	t.Run("rejects non-student actors", func(t *testing.T) {
		other := builder.NewInstructorBuilder().Build()
		f := newBookingFixture(t, other)

		input := f.input()
		input.StudentID = other.ID()

		_, err := f.usecase.BookLesson(ctx, input)
		assert.ErrorIs(t, err, commands.ErrOnlyStudentsCanBook)
		assert.Zero(t, f.store.count())
	})

	t.Run("rejects unknown instructor", func(t *testing.T) {
		f := newBookingFixture(t)

		input := f.input()
		input.InstructorID = uuid.New()

		_, err := f.usecase.BookLesson(ctx, input)
		assert.ErrorIs(t, err, commands.ErrInstructorNotFound)
	})

	t.Run("rejects unapproved instructor", func(t *testing.T) {
		unapproved := builder.NewInstructorBuilder().
			With(func(b *builder.ParticipantBuilder) { b.IsApproved = false }).
			Build()
		f := newBookingFixture(t, unapproved)

		input := f.input()
		input.InstructorID = unapproved.ID()

		_, err := f.usecase.BookLesson(ctx, input)
		assert.ErrorIs(t, err, commands.ErrInstructorNotApproved)
	})

	t.Run("rejects invalid slot numbers", func(t *testing.T) {
		f := newBookingFixture(t)

		for _, n := range []int{0, 7} {
			input := f.input()
			input.SlotNumber = n

			_, err := f.usecase.BookLesson(ctx, input)
			assert.ErrorIs(t, err, commands.ErrInvalidSlot, "slot number %d", n)
		}
	})

	t.Run("rejects slots in the past", func(t *testing.T) {
		f := newBookingFixture(t)

		input := f.input()
		input.Date = time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)

		_, err := f.usecase.BookLesson(ctx, input)
		assert.ErrorIs(t, err, commands.ErrPastLesson)
	})

	t.Run("rejects an occupied slot", func(t *testing.T) {
		f := newBookingFixture(t)

		_, err := f.usecase.BookLesson(ctx, f.input())
		require.NoError(t, err)

		_, err = f.usecase.BookLesson(ctx, f.input())
		assert.ErrorIs(t, err, commands.ErrSlotUnavailable)
		assert.Equal(t, 1, f.store.count())
	})

	t.Run("maps storage conflict to slot unavailable", func(t *testing.T) {
		f := newBookingFixture(t)
		f.store.createErr = infra.WrapRepoErr("overlap constraint", nil, infra.KindConflict)

		_, err := f.usecase.BookLesson(ctx, f.input())
		assert.ErrorIs(t, err, commands.ErrSlotUnavailable)
	})

	t.Run("reports contention when the lock is held past the wait window", func(t *testing.T) {
		f := newBookingFixture(t)

		input := f.input()
		slot, err := lesson.SlotAt(input.Date, input.SlotNumber)
		require.NoError(t, err)

		lockKey := fmt.Sprintf("lesson:book:%s:%d", input.InstructorID, slot.Start().Unix())
		release, err := f.locker.Acquire(ctx, lockKey, time.Minute, 0)
		require.NoError(t, err)
		defer release(ctx)

		_, err = f.usecase.BookLesson(ctx, input)
		assert.ErrorIs(t, err, commands.ErrBookingContention)
		assert.Zero(t, f.store.count())
	})
}

func TestBookLessonConcurrency(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	const attempts = 20

	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := range attempts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.usecase.BookLesson(ctx, f.input())
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		losing := errors.Is(err, commands.ErrSlotUnavailable) || errors.Is(err, commands.ErrBookingContention)
		assert.True(t, losing, "unexpected error: %v", err)
	}

	assert.Equal(t, 1, successes, "exactly one attempt must win the slot")
	assert.Equal(t, 1, f.store.count())
}
