package events

import (
	"context"
	"log/slog"
)

// LogNotifier is the notification consumer: it records booking lifecycle
// events in the structured log. A real mail or push integration would
// subscribe the same way.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Register(bus *InProcessBus) {
	bus.Subscribe(LessonCreated{}.EventName(), n.onCreated)
	bus.Subscribe(LessonConfirmed{}.EventName(), n.onConfirmed)
	bus.Subscribe(LessonCancelled{}.EventName(), n.onCancelled)
}

func (n *LogNotifier) onCreated(_ context.Context, event Event) {
	e, ok := event.(LessonCreated)
	if !ok {
		return
	}
	n.logger.Info("lesson booked",
		"lesson_id", e.LessonID,
		"instructor_id", e.InstructorID,
		"student_id", e.StudentID,
		"start_time", e.StartTime,
	)
}

func (n *LogNotifier) onConfirmed(_ context.Context, event Event) {
	e, ok := event.(LessonConfirmed)
	if !ok {
		return
	}
	n.logger.Info("lesson confirmed",
		"lesson_id", e.LessonID,
		"student_id", e.StudentID,
		"start_time", e.StartTime,
	)
}

func (n *LogNotifier) onCancelled(_ context.Context, event Event) {
	e, ok := event.(LessonCancelled)
	if !ok {
		return
	}
	n.logger.Info("lesson cancelled",
		"lesson_id", e.LessonID,
		"cancelled_by", e.CancelledBy,
		"reason", e.Reason,
	)
}
