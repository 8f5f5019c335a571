package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"ink-functions/domain"

	"github.com/samber/lo"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// Composer renders the outbound emails of the notification dispatcher.
type Composer struct {
	appName           string
	reasonPlaceholder string
}

func NewComposer(appName, reasonPlaceholder string) Composer {
	return Composer{
		appName:           lo.Ternary(appName == "", "Ink", appName),
		reasonPlaceholder: lo.Ternary(reasonPlaceholder == "", "No reason provided", reasonPlaceholder),
	}
}

type templateData struct {
	App    string
	Name   string
	Reason string
	Link   string
}

func (c Composer) Approval(after domain.ApprovalSnapshot) (domain.Email, error) {
	body, err := render("approval.html", templateData{App: c.appName, Name: after.FullName()})
	if err != nil {
		return domain.Email{}, err
	}
	return domain.Email{
		Kind:    domain.EmailApproval,
		To:      after.Email,
		Subject: fmt.Sprintf("Your %s artist application has been approved", c.appName),
		Body:    body,
	}, nil
}

// Rejection falls back to the placeholder when no reason was recorded.
func (c Composer) Rejection(after domain.ApprovalSnapshot) (domain.Email, error) {
	reason := lo.Ternary(after.RejectionReason == "", c.reasonPlaceholder, after.RejectionReason)
	body, err := render("rejection.html", templateData{App: c.appName, Name: after.FullName(), Reason: reason})
	if err != nil {
		return domain.Email{}, err
	}
	return domain.Email{
		Kind:    domain.EmailRejection,
		To:      after.Email,
		Subject: fmt.Sprintf("Update on your %s artist application", c.appName),
		Body:    body,
	}, nil
}

func (c Composer) Verification(email, displayName, link string) (domain.Email, error) {
	body, err := render("verification.html", templateData{App: c.appName, Name: displayName, Link: link})
	if err != nil {
		return domain.Email{}, err
	}
	return domain.Email{
		Kind:    domain.EmailVerification,
		To:      email,
		Subject: fmt.Sprintf("Verify your email for %s", c.appName),
		Body:    body,
	}, nil
}

func render(name string, data templateData) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return buf.String(), nil
}
