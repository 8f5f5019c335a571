package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"ink-functions/domain/event"
	"ink-functions/errors"
)

type kind int

const (
	kindEvent kind = iota
	kindCallable
)

func (k kind) String() string {
	if k == kindCallable {
		return "callable"
	}
	return "event"
}

// envelope is what the hosting platform posts for both events and calls.
// Events carry id/type/params, calls only data.
type envelope struct {
	ID     string            `json:"id"`
	Type   string            `json:"type"`
	Params map[string]string `json:"params"`
	Data   json.RawMessage   `json:"data"`
}

// Function is a handler registered under the name the platform invokes it by.
type Function struct {
	Name   string
	kind   kind
	invoke func(ctx context.Context, env envelope) (any, error)
}

// Callable is the request/response side of the platform.
type Callable[Req, Res any] interface {
	Call(ctx context.Context, req Req) (Res, error)
}

// CallableFunc adapts a plain function to Callable.
type CallableFunc[Req, Res any] func(ctx context.Context, req Req) (Res, error)

func (f CallableFunc[Req, Res]) Call(ctx context.Context, req Req) (Res, error) {
	return f(ctx, req)
}

// Event registers an event handler. bind, when set, copies envelope params
// (document path segments) into the decoded event.
func Event[E any](name string, h event.Handler[E], bind func(params map[string]string, evt *E)) Function {
	return Function{
		Name: name,
		kind: kindEvent,
		invoke: func(ctx context.Context, env envelope) (any, error) {
			var evt E
			if err := decodeData(env.Data, &evt); err != nil {
				return nil, err
			}
			if bind != nil {
				bind(env.Params, &evt)
			}
			return nil, h.Handle(ctx, evt)
		},
	}
}

// OnCall registers a callable handler; its result is returned as {"result": ...}.
func OnCall[Req, Res any](name string, h Callable[Req, Res]) Function {
	return Function{
		Name: name,
		kind: kindCallable,
		invoke: func(ctx context.Context, env envelope) (any, error) {
			var req Req
			if err := decodeData(env.Data, &req); err != nil {
				return nil, err
			}
			return h.Call(ctx, req)
		},
	}
}

func decodeData(raw json.RawMessage, dst any) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return fmt.Errorf("%w: data is required", errors.ErrInvalidPayload)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}
	return nil
}
