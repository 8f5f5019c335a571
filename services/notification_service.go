package services

import (
	"context"
	"ink-functions/contract"
	"ink-functions/domain"
	"ink-functions/domain/event"
	"ink-functions/mail"
	"ink-functions/observability"
	"log/slog"
)

type INotificationService interface {
	HandleUserCreated(ctx context.Context, evt event.UserCreated) error
	HandleApprovalUpdated(ctx context.Context, evt event.ApprovalUpdated) error
}

// NotificationService reacts to lifecycle events with at most one email each.
// Delivery failures are logged and swallowed: the platform never retries these
// events and nobody is waiting for the outcome.
type NotificationService struct {
	log      *slog.Logger
	mailer   contract.Mailer
	links    contract.LinkGenerator
	composer mail.Composer
	metrics  *observability.Metrics
}

func NewNotificationService(log *slog.Logger, mailer contract.Mailer, links contract.LinkGenerator,
	composer mail.Composer, metrics *observability.Metrics) *NotificationService {
	return &NotificationService{
		log:      log,
		mailer:   mailer,
		links:    links,
		composer: composer,
		metrics:  metrics,
	}
}

// HandleApprovalUpdated sends the approval or rejection email when the status
// has just moved to "approved" or "rejected". Sends are not deduplicated.
func (s *NotificationService) HandleApprovalUpdated(ctx context.Context, evt event.ApprovalUpdated) error {
	log := s.log.With("approval_id", evt.ApprovalID, "before", evt.Before.Status, "after", evt.After.Status)

	var compose func(domain.ApprovalSnapshot) (domain.Email, error)
	switch {
	case domain.TransitionedTo(evt.Before, evt.After, domain.StatusApproved):
		compose = s.composer.Approval
	case domain.TransitionedTo(evt.Before, evt.After, domain.StatusRejected):
		compose = s.composer.Rejection
	default:
		log.DebugContext(ctx, "No status transition to notify")
		return nil
	}

	if evt.After.Email == "" {
		log.DebugContext(ctx, "Approval has no email, nothing to send")
		return nil
	}

	email, err := compose(evt.After)
	if err != nil {
		log.ErrorContext(ctx, "Failed to compose approval email", "err", err)
		return nil
	}
	s.send(ctx, log, email)
	return nil
}

// HandleUserCreated emails a verification link to new users that have an address.
func (s *NotificationService) HandleUserCreated(ctx context.Context, evt event.UserCreated) error {
	log := s.log.With("uid", evt.UID)

	if evt.Email == "" {
		log.DebugContext(ctx, "User has no email, skipping verification")
		return nil
	}

	link, err := s.links.EmailVerificationLink(ctx, evt.Email)
	if err != nil {
		log.ErrorContext(ctx, "Failed to generate verification link", "to", evt.Email, "err", err)
		s.metrics.IncrementEmail(string(domain.EmailVerification), "failed")
		return nil
	}

	email, err := s.composer.Verification(evt.Email, evt.DisplayName, link)
	if err != nil {
		log.ErrorContext(ctx, "Failed to compose verification email", "err", err)
		return nil
	}
	s.send(ctx, log, email)
	return nil
}

func (s *NotificationService) send(ctx context.Context, log *slog.Logger, email domain.Email) {
	if err := s.mailer.Send(ctx, email); err != nil {
		log.ErrorContext(ctx, "Notification email failed", "kind", email.Kind, "to", email.To, "err", err)
		s.metrics.IncrementEmail(string(email.Kind), "failed")
		return
	}
	log.InfoContext(ctx, "Notification email sent", "kind", email.Kind, "to", email.To)
	s.metrics.IncrementEmail(string(email.Kind), "sent")
}
