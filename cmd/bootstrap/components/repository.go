package components

import (
	"lessonhub/internal/handler/middleware"
	"lessonhub/internal/infra/readstore"
	"lessonhub/internal/infra/repository"
	"lessonhub/internal/usecase/commands"
	"lessonhub/internal/usecase/queries"
	"lessonhub/internal/worker"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("persistence",
	fx.Provide(
		// Write side
		fx.Annotate(
			repository.NewLessonRepository,
			fx.As(new(commands.BookingLedger)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.InstructorLedger)),
		),
		// Read side
		fx.Annotate(
			readstore.NewLessonReadStore,
			fx.As(new(commands.LessonReader)),
			fx.As(new(queries.LessonReadStore)),
			fx.As(new(worker.StaleLessonSource)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(commands.UserReader)),
			fx.As(new(queries.UserReadStore)),
			fx.As(new(middleware.ActorFinder)),
		),
	),
)
