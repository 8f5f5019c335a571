package mail

import (
	"context"
	"fmt"
	"ink-functions/domain"
	"ink-functions/errors"
	"log/slog"

	gomail "github.com/wneessen/go-mail"
)

// SMTPConfig describes the service account used to send notifications.
type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	SenderName string
	// SSL selects implicit TLS (usually port 465) instead of STARTTLS.
	SSL bool
}

// SMTPTransport sends each email over a fresh SMTP session.
// It keeps no connection between calls so it is safe for concurrent use.
type SMTPTransport struct {
	cfg SMTPConfig
	log *slog.Logger
}

func NewSMTPTransport(cfg SMTPConfig, log *slog.Logger) (*SMTPTransport, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("smtp host is required")
	}
	if cfg.From == "" {
		return nil, fmt.Errorf("sender address is required")
	}
	return &SMTPTransport{cfg: cfg, log: log}, nil
}

// Send delivers the email once. A malformed sender or recipient comes back as
// *errors.ValidationError, delivery failures as *errors.TransportError.
func (t *SMTPTransport) Send(ctx context.Context, email domain.Email) error {
	msg, err := t.message(email)
	if err != nil {
		return err
	}

	client, err := gomail.NewClient(t.cfg.Host, t.clientOptions()...)
	if err != nil {
		return &errors.TransportError{Service: "smtp", Err: err}
	}
	if err = client.DialAndSendWithContext(ctx, msg); err != nil {
		return &errors.TransportError{Service: "smtp", Err: err}
	}

	t.log.Debug("Email handed to SMTP server", "kind", email.Kind, "to", email.To, "host", t.cfg.Host)
	return nil
}

func (t *SMTPTransport) message(email domain.Email) (*gomail.Msg, error) {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(t.cfg.SenderName, t.cfg.From); err != nil {
		return nil, &errors.ValidationError{Field: "from", Reason: fmt.Sprintf("invalid sender %q: %v", t.cfg.From, err)}
	}
	if err := msg.To(email.To); err != nil {
		return nil, &errors.ValidationError{Field: "to", Reason: fmt.Sprintf("invalid recipient %q: %v", email.To, err)}
	}
	msg.Subject(email.Subject)
	msg.SetBodyString(gomail.TypeTextHTML, email.Body)
	return msg, nil
}

func (t *SMTPTransport) clientOptions() []gomail.Option {
	opts := []gomail.Option{gomail.WithPort(t.cfg.Port)}
	if t.cfg.SSL {
		opts = append(opts, gomail.WithSSL())
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSMandatory))
	}
	if t.cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(t.cfg.Username),
			gomail.WithPassword(t.cfg.Password),
		)
	}
	return opts
}

// LogTransport only logs what would have been sent. Used when MAIL_DRY_RUN is set.
type LogTransport struct {
	log *slog.Logger
}

func NewLogTransport(log *slog.Logger) *LogTransport {
	return &LogTransport{log: log}
}

func (t *LogTransport) Send(ctx context.Context, email domain.Email) error {
	t.log.InfoContext(ctx, "Dry run, email not sent",
		"kind", email.Kind, "to", email.To, "subject", email.Subject, "body_bytes", len(email.Body))
	return nil
}
