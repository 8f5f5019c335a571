package domain

type EmailKind string

const (
	EmailApproval     EmailKind = "approval"
	EmailRejection    EmailKind = "rejection"
	EmailVerification EmailKind = "verification"
)

// Email is an outbound message built for a single event and never persisted.
type Email struct {
	Kind    EmailKind
	To      string
	Subject string
	Body    string
}
