package bootstrap

import (
	"lessonhub/internal/events"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		events.NewInProcessBus,
		fx.Annotate(
			func(bus *events.InProcessBus) *events.InProcessBus { return bus },
			fx.As(new(events.Publisher)),
		),
		events.NewLogNotifier,
	),
	fx.Invoke(func(bus *events.InProcessBus, notifier *events.LogNotifier) {
		notifier.Register(bus)
	}),
)
