//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"ink-functions/domain"
)

// Mailer delivers one email. Implementations do not retry.
type Mailer interface {
	Send(ctx context.Context, email domain.Email) error
}

// LinkGenerator is the identity provider side of email verification.
type LinkGenerator interface {
	EmailVerificationLink(ctx context.Context, email string) (string, error)
}

// Model is a generative-language model bound to a model name and API key.
type Model interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ModelFactory builds a Model for the API key supplied by the caller.
type ModelFactory interface {
	NewModel(ctx context.Context, apiKey string) (Model, error)
}
