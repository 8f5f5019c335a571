package platform

import (
	"context"
	"ink-functions/domain/event"
	"testing"

	"github.com/stretchr/testify/require"
)

func noop() event.Handler[struct{}] {
	return event.HandlerFunc[struct{}](func(context.Context, struct{}) error { return nil })
}

func TestRegistry_Register(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	// Given an empty registry
	req.Empty(registry.Names())

	// When two functions are registered
	req.NoError(registry.Register(
		Event[struct{}]("b", noop(), nil),
		Event[struct{}]("a", noop(), nil),
	))

	// Then they can be found by name
	req.Equal([]string{"a", "b"}, registry.Names())
	fn, ok := registry.Get("a")
	req.True(ok)
	req.Equal("a", fn.Name)

	_, ok = registry.Get("missing")
	req.False(ok)
}

func TestRegistry_RejectsDuplicatesAndBlanks(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	req.NoError(registry.Register(Event[struct{}]("a", noop(), nil)))
	req.Error(registry.Register(Event[struct{}]("a", noop(), nil)))
	req.Error(registry.Register(Function{Name: ""}))
	req.Error(registry.Register(Function{Name: "no-handler"}))
}
