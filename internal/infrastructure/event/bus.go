package event

import (
	"context"
	"fmt"
	"sync"

	"nfe_backoffice/internal/domain/entities"
	"nfe_backoffice/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Handler reacts to a published event.
type Handler interface {
	Handle(ctx context.Context, event entities.Event) error
}

type HandlerFunc func(ctx context.Context, event entities.Event) error

func (f HandlerFunc) Handle(ctx context.Context, event entities.Event) error { return f(ctx, event) }

// InMemoryBus dispatches events synchronously to the handlers registered for
// their name. A failing or panicking handler never reaches the publisher.
type InMemoryBus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	all      []Handler
	logger   *zap.Logger
}

var _ interfaces.IEventPublisher = (*InMemoryBus)(nil)

func NewInMemoryBus(logger *zap.Logger) *InMemoryBus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InMemoryBus{handlers: map[string][]Handler{}, logger: logger}
}

// Subscribe registers h for the given event names, or for every event when none is given.
func (b *InMemoryBus) Subscribe(h Handler, names ...string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(names) == 0 {
		b.all = append(b.all, h)
		return
	}
	for _, n := range names {
		b.handlers[n] = append(b.handlers[n], h)
	}
	b.logger.Debug("[event][bus] handler subscribed", zap.Strings("events", names))
}

// On subscribes a typed callback for events of type E.
func On[E entities.Event](b *InMemoryBus, fn func(ctx context.Context, e E) error) {
	var zero E
	b.Subscribe(HandlerFunc(func(ctx context.Context, ev entities.Event) error {
		e, ok := ev.(E)
		if !ok {
			return fmt.Errorf("unexpected event type %T for %s", ev, zero.EventName())
		}
		return fn(ctx, e)
	}), zero.EventName())
}

func (b *InMemoryBus) Publish(ctx context.Context, events ...entities.Event) {
	for _, ev := range events {
		if ev == nil {
			continue
		}
		b.mu.RLock()
		hs := make([]Handler, 0, len(b.handlers[ev.EventName()])+len(b.all))
		hs = append(hs, b.handlers[ev.EventName()]...)
		hs = append(hs, b.all...)
		b.mu.RUnlock()

		for _, h := range hs {
			if err := b.dispatch(ctx, h, ev); err != nil {
				b.logger.Error("[event][bus] handler failed",
					zap.String("event", ev.EventName()),
					zap.Error(err),
				)
			}
		}
	}
}

func (b *InMemoryBus) dispatch(ctx context.Context, h Handler, ev entities.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panicked: %v", r)
		}
	}()
	return h.Handle(ctx, ev)
}
