package components

import (
	"lessonhub/internal/handler/api"
	"lessonhub/internal/infra/lock"
	"lessonhub/internal/usecase/commands"
	"lessonhub/internal/usecase/queries"
	"lessonhub/internal/worker"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		func(l lock.Locker) commands.Locker { return l },
		fx.Annotate(
			commands.NewBookingCommands,
			fx.As(new(api.BookingService)),
		),
		fx.Annotate(
			commands.NewLifecycleCommands,
			fx.As(new(api.LifecycleService)),
			fx.As(new(worker.SystemCanceller)),
		),
		fx.Annotate(
			commands.NewInstructorCommands,
			fx.As(new(api.InstructorService)),
		),
		fx.Annotate(
			queries.NewLessonQueries,
			fx.As(new(api.LessonQueryService)),
			fx.As(new(api.ScheduleQueryService)),
		),
		fx.Annotate(
			queries.NewUserQueries,
			fx.As(new(api.InstructorQueryService)),
		),
	),
)
