package event

import (
	"context"
	"ink-functions/domain"
)

// Handler Each kind of event has his own handler.
// The platform adapter decodes the envelope and calls Handle once per delivery.
type Handler[E any] interface {
	Handle(ctx context.Context, evt E) error
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc[E any] func(ctx context.Context, evt E) error

func (f HandlerFunc[E]) Handle(ctx context.Context, evt E) error {
	return f(ctx, evt)
}

// UserCreated is delivered when a principal is created in the identity provider.
type UserCreated struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

// ApprovalUpdated is delivered when an approval document is written.
// ApprovalID comes from the document path, not the body.
type ApprovalUpdated struct {
	ApprovalID string                  `json:"-"`
	Before     domain.ApprovalSnapshot `json:"before"`
	After      domain.ApprovalSnapshot `json:"after"`
}
