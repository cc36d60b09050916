package queries

import (
	"context"

	"lessonhub/internal/infra/cache"
	"lessonhub/internal/pkg/config"
)

type UserQueries struct {
	users UserReadStore
	cache cache.TaggedCache
	cfg   config.CacheConfig
}

func NewUserQueries(users UserReadStore, taggedCache cache.TaggedCache, cfg config.CacheConfig) *UserQueries {
	return &UserQueries{
		users: users,
		cache: taggedCache,
		cfg:   cfg,
	}
}

// ApprovedInstructors returns the bookable instructor directory. Approval
// toggles invalidate the instructors tag.
func (q *UserQueries) ApprovedInstructors(ctx context.Context) ([]*InstructorView, error) {
	return cache.GetOrComputeJSON(ctx, q.cache, "approved_instructors",
		[]string{cache.TagInstructors}, q.cfg.InstructorTTL,
		func(ctx context.Context) ([]*InstructorView, error) {
			return q.users.ApprovedInstructors(ctx)
		})
}
