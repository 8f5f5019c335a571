package services

import (
	"context"
	"errors"
	"ink-functions/domain"
	"ink-functions/domain/event"
	"ink-functions/mail"
	"ink-functions/mocks"
	"ink-functions/observability"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newNotificationService(t *testing.T) (*NotificationService, *mocks.MockMailer, *mocks.MockLinkGenerator, *observability.Metrics) {
	ctrl := gomock.NewController(t)
	mockMailer := mocks.NewMockMailer(ctrl)
	mockLinks := mocks.NewMockLinkGenerator(ctrl)
	metrics := observability.NewMetrics(prometheus.NewRegistry())
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	svc := NewNotificationService(log, mockMailer, mockLinks, mail.NewComposer("Inkwell", ""), metrics)
	return svc, mockMailer, mockLinks, metrics
}

func approval(status domain.ApprovalStatus) domain.ApprovalSnapshot {
	return domain.ApprovalSnapshot{
		Status:    status,
		Email:     "artist@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
	}
}

func TestNotificationService_ApprovalTransitions(t *testing.T) {
	statuses := []domain.ApprovalStatus{"", domain.StatusPending, domain.StatusApproved, domain.StatusRejected, "archived"}

	for _, before := range statuses {
		for _, after := range statuses {
			t.Run(string(before)+"->"+string(after), func(t *testing.T) {
				req := require.New(t)
				svc, mockMailer, _, _ := newNotificationService(t)

				var expectedKind domain.EmailKind
				switch {
				case before != domain.StatusApproved && after == domain.StatusApproved:
					expectedKind = domain.EmailApproval
				case before != domain.StatusRejected && after == domain.StatusRejected:
					expectedKind = domain.EmailRejection
				}

				if expectedKind == "" {
					mockMailer.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)
				} else {
					mockMailer.EXPECT().
						Send(gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, email domain.Email) error {
							req.Equal(expectedKind, email.Kind)
							req.Equal("artist@example.com", email.To)
							return nil
						}).
						Times(1)
				}

				err := svc.HandleApprovalUpdated(context.Background(), event.ApprovalUpdated{
					ApprovalID: "approval-1",
					Before:     approval(before),
					After:      approval(after),
				})
				req.NoError(err)
			})
		}
	}
}

func TestNotificationService_HandleApprovalUpdated(t *testing.T) {
	t.Run("should greet the artist by name on approval", func(t *testing.T) {
		req := require.New(t)
		svc, mockMailer, _, metrics := newNotificationService(t)

		mockMailer.EXPECT().
			Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, email domain.Email) error {
				req.Contains(email.Body, "Ada Lovelace")
				return nil
			}).
			Times(1)

		err := svc.HandleApprovalUpdated(context.Background(), event.ApprovalUpdated{
			Before: approval(domain.StatusPending), After: approval(domain.StatusApproved),
		})

		req.NoError(err)
		req.Equal(1.0, testutil.ToFloat64(metrics.EmailsTotal.WithLabelValues("approval", "sent")))
	})

	t.Run("should use the placeholder when no rejection reason is given", func(t *testing.T) {
		req := require.New(t)
		svc, mockMailer, _, _ := newNotificationService(t)

		mockMailer.EXPECT().
			Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, email domain.Email) error {
				req.Contains(email.Body, "No reason provided")
				return nil
			}).
			Times(1)

		err := svc.HandleApprovalUpdated(context.Background(), event.ApprovalUpdated{
			Before: approval(domain.StatusPending), After: approval(domain.StatusRejected),
		})
		req.NoError(err)
	})

	t.Run("should include the rejection reason", func(t *testing.T) {
		req := require.New(t)
		svc, mockMailer, _, _ := newNotificationService(t)
		after := approval(domain.StatusRejected)
		after.RejectionReason = "Please add more healed work"

		mockMailer.EXPECT().
			Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, email domain.Email) error {
				req.Contains(email.Body, "Please add more healed work")
				return nil
			}).
			Times(1)

		req.NoError(svc.HandleApprovalUpdated(context.Background(), event.ApprovalUpdated{
			Before: approval(domain.StatusPending), After: after,
		}))
	})

	t.Run("should not send when the approved document has no email", func(t *testing.T) {
		req := require.New(t)
		svc, mockMailer, _, _ := newNotificationService(t)
		after := approval(domain.StatusApproved)
		after.Email = ""

		mockMailer.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)

		req.NoError(svc.HandleApprovalUpdated(context.Background(), event.ApprovalUpdated{
			Before: approval(domain.StatusPending), After: after,
		}))
	})

	t.Run("should swallow transport failures", func(t *testing.T) {
		req := require.New(t)
		svc, mockMailer, _, metrics := newNotificationService(t)

		mockMailer.EXPECT().
			Send(gomock.Any(), gomock.Any()).
			Return(errors.New("535 authentication failed")).
			Times(1)

		err := svc.HandleApprovalUpdated(context.Background(), event.ApprovalUpdated{
			Before: approval(domain.StatusPending), After: approval(domain.StatusApproved),
		})

		req.NoError(err)
		req.Equal(1.0, testutil.ToFloat64(metrics.EmailsTotal.WithLabelValues("approval", "failed")))
	})

	t.Run("should send twice when the same rejection is delivered twice", func(t *testing.T) {
		req := require.New(t)
		svc, mockMailer, _, _ := newNotificationService(t)
		evt := event.ApprovalUpdated{
			ApprovalID: "approval-1",
			Before:     approval(domain.StatusPending),
			After:      approval(domain.StatusRejected),
		}

		mockMailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		req.NoError(svc.HandleApprovalUpdated(context.Background(), evt))
		req.NoError(svc.HandleApprovalUpdated(context.Background(), evt))
	})
}

func TestNotificationService_HandleUserCreated(t *testing.T) {
	t.Run("should generate one link and send it", func(t *testing.T) {
		req := require.New(t)
		svc, mockMailer, mockLinks, _ := newNotificationService(t)
		link := "https://app.example.com/action?mode=verifyEmail&oobCode=abc"

		mockLinks.EXPECT().
			EmailVerificationLink(gomock.Any(), "a@b.com").
			Return(link, nil).
			Times(1)
		mockMailer.EXPECT().
			Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, email domain.Email) error {
				req.Equal(domain.EmailVerification, email.Kind)
				req.Equal("a@b.com", email.To)
				req.Contains(email.Body, "oobCode=abc")
				return nil
			}).
			Times(1)

		req.NoError(svc.HandleUserCreated(context.Background(), event.UserCreated{UID: "u1", Email: "a@b.com"}))
	})

	t.Run("should do nothing without an email", func(t *testing.T) {
		req := require.New(t)
		svc, mockMailer, mockLinks, _ := newNotificationService(t)

		mockLinks.EXPECT().EmailVerificationLink(gomock.Any(), gomock.Any()).Times(0)
		mockMailer.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)

		req.NoError(svc.HandleUserCreated(context.Background(), event.UserCreated{UID: "u1"}))
	})

	t.Run("should swallow link generation failures", func(t *testing.T) {
		req := require.New(t)
		svc, mockMailer, mockLinks, metrics := newNotificationService(t)

		mockLinks.EXPECT().
			EmailVerificationLink(gomock.Any(), "a@b.com").
			Return("", errors.New("identity provider unavailable")).
			Times(1)
		mockMailer.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)

		req.NoError(svc.HandleUserCreated(context.Background(), event.UserCreated{UID: "u1", Email: "a@b.com"}))
		req.Equal(1.0, testutil.ToFloat64(metrics.EmailsTotal.WithLabelValues("verification", "failed")))
	})

	t.Run("should swallow transport failures", func(t *testing.T) {
		req := require.New(t)
		svc, mockMailer, mockLinks, _ := newNotificationService(t)

		mockLinks.EXPECT().EmailVerificationLink(gomock.Any(), "a@b.com").Return("https://x.test/v", nil)
		mockMailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("timeout"))

		req.NoError(svc.HandleUserCreated(context.Background(), event.UserCreated{UID: "u1", Email: "a@b.com"}))
	})
}
