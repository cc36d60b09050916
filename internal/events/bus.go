package events

import (
	"context"
	"log/slog"
	"sync"
)

// Publisher decouples command handlers from notification side effects.
// Publishing is best-effort: a failing handler must never undo a
// committed booking.
type Publisher interface {
	Publish(ctx context.Context, event Event)
}

type Handler func(ctx context.Context, event Event)

// InProcessBus dispatches each event to its subscribers on separate
// goroutines so the write path never blocks on a consumer. Handler
// panics are recovered and logged.
type InProcessBus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	logger   *slog.Logger
}

func NewInProcessBus(logger *slog.Logger) *InProcessBus {
	return &InProcessBus{
		handlers: make(map[string][]Handler),
		logger:   logger,
	}
}

func (b *InProcessBus) Subscribe(eventName string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventName] = append(b.handlers[eventName], handler)
}

func (b *InProcessBus) Publish(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := b.handlers[event.EventName()]
	b.mu.RUnlock()

	for _, handler := range handlers {
		go b.dispatch(ctx, event, handler)
	}
}

func (b *InProcessBus) dispatch(ctx context.Context, event Event, handler Handler) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panicked",
				"event", event.EventName(),
				"panic", r,
			)
		}
	}()
	handler(ctx, event)
}
