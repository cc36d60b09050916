package components

import (
	"lessonhub/internal/handler"
	"lessonhub/internal/handler/api"
	"lessonhub/internal/handler/middleware"
	"lessonhub/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(s *jwt.Service) middleware.TokenValidator { return s },
		api.NewLessonHandler,
		api.NewInstructorHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
