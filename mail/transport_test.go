package mail

import (
	"context"
	"ink-functions/domain"
	"ink-functions/errors"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestNewSMTPTransport_Validation(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	_, err := NewSMTPTransport(SMTPConfig{From: "noreply@example.com"}, log)
	req.Error(err)
	_, err = NewSMTPTransport(SMTPConfig{Host: "smtp.example.com"}, log)
	req.Error(err)
}

func TestSMTPTransport_InvalidRecipient(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	transport, err := NewSMTPTransport(SMTPConfig{Host: "127.0.0.1", Port: 1, From: "noreply@example.com"}, log)
	req.NoError(err)

	err = transport.Send(context.Background(), domain.Email{To: "not an address", Subject: "s", Body: "b"})

	var validationErr *errors.ValidationError
	req.ErrorAs(err, &validationErr)
	req.Equal("to", validationErr.Field)
	req.ErrorIs(err, errors.ErrValidation)
	req.NotErrorIs(err, errors.ErrTransport)
}

func TestSMTPTransport_InvalidSender(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	transport, err := NewSMTPTransport(SMTPConfig{Host: "127.0.0.1", Port: 1, From: "not a sender"}, log)
	req.NoError(err)

	err = transport.Send(context.Background(), domain.Email{To: "a@b.com", Subject: "s", Body: "b"})

	var validationErr *errors.ValidationError
	req.ErrorAs(err, &validationErr)
	req.Equal("from", validationErr.Field)
}

func TestSMTPTransport_UnreachableServer(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	transport, err := NewSMTPTransport(SMTPConfig{
		Host: "127.0.0.1", Port: 1, From: "noreply@example.com", SenderName: "Ink",
	}, log)
	req.NoError(err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = transport.Send(ctx, domain.Email{To: "a@b.com", Subject: "s", Body: "b"})

	req.ErrorIs(err, errors.ErrTransport)
	req.Contains(err.Error(), "smtp call failed")
}

func TestSMTPTransport_ImplicitTLSUnreachable(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	transport, err := NewSMTPTransport(SMTPConfig{
		Host: "127.0.0.1", Port: 1, From: "noreply@example.com", SSL: true,
	}, log)
	req.NoError(err)
	req.Len(transport.clientOptions(), 2)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = transport.Send(ctx, domain.Email{To: "a@b.com", Subject: "s", Body: "b"})

	req.ErrorIs(err, errors.ErrTransport)
}

func TestLogTransport_NeverFails(t *testing.T) {
	transport := NewLogTransport(logs.GetLoggerFromLevel(slog.LevelDebug))
	require.NoError(t, transport.Send(context.Background(), domain.Email{To: "a@b.com"}))
}
