package queries

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lessonhub/internal/domain/lesson"
	"lessonhub/internal/domain/user"
	"lessonhub/internal/infra"
	"lessonhub/internal/infra/cache"
	"lessonhub/internal/pkg/clock"
	"lessonhub/internal/pkg/config"
	"lessonhub/internal/pkg/errs"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// LessonQueries serves the cached read side of the schedule. Cache keys are
// scoped per instructor/participant and stamped with the tags the write side
// invalidates, so a booking is visible on the next read.
type LessonQueries struct {
	lessons LessonReadStore
	users   UserReadStore
	cache   cache.TaggedCache
	clock   clock.Clock
	cfg     config.CacheConfig
}

func NewLessonQueries(
	lessons LessonReadStore,
	users UserReadStore,
	taggedCache cache.TaggedCache,
	clk clock.Clock,
	cfg config.CacheConfig,
) *LessonQueries {
	return &LessonQueries{
		lessons: lessons,
		users:   users,
		cache:   taggedCache,
		clock:   clk,
		cfg:     cfg,
	}
}

// AvailableSlots lists the grid slots of an instructor's day not blocked by
// a planned or confirmed lesson.
func (q *LessonQueries) AvailableSlots(ctx context.Context, instructorID uuid.UUID, date time.Time) ([]SlotView, error) {
	if _, err := q.resolveInstructor(ctx, instructorID); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("available_slots:%s:%s", instructorID, date.Format(dateLayout))
	tags := []string{cache.TagLessonsByInstructor(instructorID)}

	return cache.GetOrComputeJSON(ctx, q.cache, key, tags, q.cfg.SlotsTTL,
		func(ctx context.Context) ([]SlotView, error) {
			return q.computeAvailableSlots(ctx, instructorID, date)
		})
}

func (q *LessonQueries) computeAvailableSlots(ctx context.Context, instructorID uuid.UUID, date time.Time) ([]SlotView, error) {
	grid := lesson.DaySlots(date)
	occupied, err := q.lessons.OccupiedIntervals(ctx, instructorID, grid[0].Start(), grid[len(grid)-1].End())
	if err != nil {
		return nil, errs.Wrap(err, "failed to load occupied intervals")
	}

	available := make([]SlotView, 0, len(grid))
	for _, slot := range grid {
		blocked := false
		for _, taken := range occupied {
			if taken.Overlaps(slot.Start(), slot.End()) {
				blocked = true
				break
			}
		}
		if !blocked {
			available = append(available, SlotView{StartTime: slot.Start(), EndTime: slot.End()})
		}
	}
	return available, nil
}

// InstructorSchedule lists an instructor's lessons in [from, to), optionally
// filtered by status. Instructors see only their own schedule, admins any
// named instructor, students none.
func (q *LessonQueries) InstructorSchedule(ctx context.Context, actor *user.Participant, instructorID uuid.UUID, from, to time.Time, status *lesson.Status) ([]*LessonView, error) {
	switch {
	case actor.IsAdmin():
		if instructorID == uuid.Nil {
			return nil, errs.Mark(errors.New("admin schedule lookup without instructor"), ErrInstructorRequired)
		}
	case actor.IsInstructor():
		if instructorID != actor.ID() {
			return nil, errs.Mark(errors.New("instructor requested another schedule"), ErrScheduleAccessDenied)
		}
	default:
		return nil, errs.Mark(errors.New("role cannot view schedules"), ErrScheduleAccessDenied)
	}

	statusKey := "all"
	if status != nil {
		statusKey = status.String()
	}
	key := fmt.Sprintf("instructor_schedule:%s:%s:%s:%s",
		instructorID, from.Format(dateLayout), to.Format(dateLayout), statusKey)
	tags := []string{cache.TagLessonsByInstructor(instructorID)}

	return cache.GetOrComputeJSON(ctx, q.cache, key, tags, q.cfg.ScheduleTTL,
		func(ctx context.Context) ([]*LessonView, error) {
			return q.lessons.InstructorSchedule(ctx, instructorID, from, to, status)
		})
}

// UpcomingLessons lists the actor's future planned and confirmed lessons,
// on whichever side of the lesson the actor's role puts them.
func (q *LessonQueries) UpcomingLessons(ctx context.Context, actor *user.Participant) ([]*LessonView, error) {
	asInstructor := actor.IsInstructor()

	tag := cache.TagLessonsByStudent(actor.ID())
	if asInstructor {
		tag = cache.TagLessonsByInstructor(actor.ID())
	}
	key := fmt.Sprintf("upcoming_lessons:%s:%s", actor.Role(), actor.ID())

	return cache.GetOrComputeJSON(ctx, q.cache, key, []string{tag}, q.cfg.UpcomingTTL,
		func(ctx context.Context) ([]*LessonView, error) {
			return q.lessons.UpcomingByParticipant(ctx, actor.ID(), asInstructor, q.clock.Now())
		})
}

func (q *LessonQueries) resolveInstructor(ctx context.Context, instructorID uuid.UUID) (*InstructorView, error) {
	key := "instructor:" + instructorID.String()

	view, err := cache.GetOrComputeJSON(ctx, q.cache, key, []string{cache.TagInstructors}, q.cfg.InstructorTTL,
		func(ctx context.Context) (*InstructorView, error) {
			p, err := q.users.ApprovedInstructorByID(ctx, instructorID)
			if err != nil {
				return nil, err
			}
			return &InstructorView{
				ID:        p.ID(),
				Email:     p.Email().Value(),
				CreatedAt: p.CreatedAt(),
			}, nil
		})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrInstructorNotFound)
		}
		return nil, errs.Wrap(err, "failed to resolve instructor")
	}
	return view, nil
}
