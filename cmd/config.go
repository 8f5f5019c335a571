package main

import (
	"fmt"
	"time"
)

type Config struct {
	LogLevel        string        `env:"LOG_LEVEL,default=INFO"`
	Host            string        `env:"HOST,default=0.0.0.0"`
	Port            int           `env:"PORT,default=8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`

	AppName                    string `env:"APP_NAME,default=Ink"`
	SMTPHost                   string `env:"SMTP_HOST,default=smtp.gmail.com"`
	SMTPPort                   int    `env:"SMTP_PORT,default=587"`
	SMTPUsername               string `env:"SMTP_USERNAME"`
	SMTPPassword               string `env:"SMTP_PASSWORD"`
	SMTPSSL                    bool   `env:"SMTP_SSL,default=false"`
	MailFrom                   string `env:"MAIL_FROM"`
	MailSenderName             string `env:"MAIL_SENDER_NAME,default=Ink"`
	MailDryRun                 bool   `env:"MAIL_DRY_RUN,default=false"`
	RejectionReasonPlaceholder string `env:"REJECTION_REASON_PLACEHOLDER,default=No reason provided"`

	VerificationBaseURL    string        `env:"VERIFICATION_BASE_URL,required=true"`
	VerificationSigningKey string        `env:"VERIFICATION_SIGNING_KEY,required=true"`
	VerificationTTL        time.Duration `env:"VERIFICATION_TTL,default=72h"`

	GeminiModel               string `env:"GEMINI_MODEL,default=gemini-pro"`
	ModerationBlocklist       string `env:"MODERATION_BLOCKLIST"`
	ModerationBlocklistDir    string `env:"MODERATION_BLOCKLIST_DIR"`
	ModerationCharReplacement string `env:"MODERATION_CHARACTER_REPLACEMENT,default=*"`
}

// CharacterRune reads the single rune used to mask blocklist hits.
func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"MODERATION_CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
