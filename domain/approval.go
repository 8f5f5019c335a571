// Package domain contains the value objects exchanged between the platform
// adapter, the dispatchers and the external service adapters.
// None of them outlives a single invocation.
package domain

type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "pending"
	StatusApproved ApprovalStatus = "approved"
	StatusRejected ApprovalStatus = "rejected"
)

// ApprovalSnapshot is one side of an approval document write.
type ApprovalSnapshot struct {
	Status          ApprovalStatus `json:"status"`
	Email           string         `json:"email"`
	FirstName       string         `json:"firstName"`
	LastName        string         `json:"lastName"`
	RejectionReason string         `json:"rejectionReason"`
}

// FullName joins first and last name, skipping the empty parts.
func (s ApprovalSnapshot) FullName() string {
	switch {
	case s.FirstName == "":
		return s.LastName
	case s.LastName == "":
		return s.FirstName
	default:
		return s.FirstName + " " + s.LastName
	}
}

// TransitionedTo reports whether the document just entered the given status.
func TransitionedTo(before, after ApprovalSnapshot, status ApprovalStatus) bool {
	return before.Status != status && after.Status == status
}
