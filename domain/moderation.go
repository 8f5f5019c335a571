package domain

// ModerationRequest is the payload of the analyzeChatMessage call.
type ModerationRequest struct {
	Message string `json:"message" validate:"required"`
	APIKey  string `json:"apiKey" validate:"required"`
}

// ModerationResult carries the model output untouched.
// Analysis is expected to be JSON but is never parsed here.
// Censored is the message with blocklist hits masked, set only when LocalHits is not empty.
type ModerationResult struct {
	Success   bool     `json:"success"`
	Analysis  string   `json:"analysis"`
	LocalHits []string `json:"localHits,omitempty"`
	Censored  string   `json:"censored,omitempty"`
}
