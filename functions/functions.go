// Package functions binds the dispatchers to the names the hosting platform
// invokes them by.
package functions

import (
	"ink-functions/domain"
	"ink-functions/domain/event"
	"ink-functions/platform"
	"ink-functions/services"
)

const (
	AnalyzeChatMessage = "analyzeChatMessage"
	OnUserCreated      = "onUserCreated"
	OnApprovalUpdated  = "onApprovalUpdated"

	// ApprovalIDParam is the wildcard of the watched document path approvals/{approvalId}.
	ApprovalIDParam = "approvalId"
)

// Register adds every function of this deployment to the registry.
func Register(registry *platform.Registry, notifications services.INotificationService,
	moderation services.IModerationService) error {
	analyze := platform.CallableFunc[domain.ModerationRequest, domain.ModerationResult](moderation.AnalyzeChatMessage)
	userCreated := event.HandlerFunc[event.UserCreated](notifications.HandleUserCreated)
	approvalUpdated := event.HandlerFunc[event.ApprovalUpdated](notifications.HandleApprovalUpdated)

	return registry.Register(
		platform.OnCall[domain.ModerationRequest, domain.ModerationResult](AnalyzeChatMessage, analyze),
		platform.Event[event.UserCreated](OnUserCreated, userCreated, nil),
		platform.Event[event.ApprovalUpdated](OnApprovalUpdated, approvalUpdated, bindApprovalID),
	)
}

func bindApprovalID(params map[string]string, evt *event.ApprovalUpdated) {
	evt.ApprovalID = params[ApprovalIDParam]
}
