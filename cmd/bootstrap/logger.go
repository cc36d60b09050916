package bootstrap

import (
	"lessonhub/internal/handler/middleware"
	"lessonhub/internal/pkg/clock"
	"lessonhub/internal/pkg/config"

	"log/slog"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewSlogLogger,
		clock.NewRealClock,
	),
)

func NewSlogLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}
