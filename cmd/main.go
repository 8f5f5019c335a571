package main

import (
	"context"
	"errors"
	"fmt"
	"ink-functions/ai"
	"ink-functions/auth"
	"ink-functions/contract"
	"ink-functions/functions"
	"ink-functions/mail"
	"ink-functions/moderation"
	"ink-functions/observability"
	"ink-functions/platform"
	"ink-functions/services"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/samber/lo"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires every dependency from the environment, serves until SIGINT/SIGTERM
// and returns instead of exiting so deferred cleanup always runs.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(registry)

	// 3. External service adapters
	mailer, err := newMailer(config, log)
	if err != nil {
		return fmt.Errorf("mail transport: %w", err)
	}
	linker, err := auth.NewVerificationLinker(config.VerificationBaseURL, config.VerificationSigningKey, config.VerificationTTL)
	if err != nil {
		return fmt.Errorf("verification links: %w", err)
	}
	censoredChar, err := CharacterRune(config.ModerationCharReplacement)
	if err != nil {
		return err
	}
	words, err := blocklistWords(config, log)
	if err != nil {
		return fmt.Errorf("blocklist: %w", err)
	}
	moderator, err := moderation.NewModerator(words, censoredChar, log)
	if err != nil {
		return fmt.Errorf("blocklist: %w", err)
	}
	models := ai.NewGeminiFactory(config.GeminiModel)

	// 4. Dispatchers, registered by the names the platform calls
	notifications := services.NewNotificationService(log, mailer, linker,
		mail.NewComposer(config.AppName, config.RejectionReasonPlaceholder), metrics)
	moderationService := services.NewModerationService(log, models, models.Model(), moderator, metrics)

	fnRegistry := platform.NewRegistry()
	if err = functions.Register(fnRegistry, notifications, moderationService); err != nil {
		return fmt.Errorf("registering functions: %w", err)
	}

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 6. HTTP server
	address := net.JoinHostPort(config.Host, strconv.Itoa(config.Port))
	server := platform.NewServer(log, fnRegistry, metrics, observability.NewHealth(log), linker, registry)
	httpServer := &http.Server{
		Addr:              address,
		Handler:           server.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting functions server", "address", address, "functions", fnRegistry.Names(),
			"model", models.Model(), "dry_run", config.MailDryRun)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 8. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err = httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("Program stopped cleanly")
	return nil
}

func newMailer(config Config, log *slog.Logger) (contract.Mailer, error) {
	if config.MailDryRun {
		return mail.NewLogTransport(log), nil
	}
	return mail.NewSMTPTransport(mail.SMTPConfig{
		Host:       config.SMTPHost,
		Port:       config.SMTPPort,
		Username:   config.SMTPUsername,
		Password:   config.SMTPPassword,
		From:       config.MailFrom,
		SSL:        config.SMTPSSL,
		SenderName: config.MailSenderName,
	}, log)
}

// blocklistWords merges MODERATION_BLOCKLIST with the .txt files of MODERATION_BLOCKLIST_DIR.
func blocklistWords(config Config, log *slog.Logger) ([]string, error) {
	words := moderation.ParseBlocklist(config.ModerationBlocklist)
	if config.ModerationBlocklistDir == "" {
		return words, nil
	}
	list, err := moderation.NewBlocklistLoader(os.DirFS(config.ModerationBlocklistDir)).LoadAll(".")
	if err != nil {
		return nil, err
	}
	log.Info("Blocklist files loaded", "languages", list.Languages, "words", len(list.Words))
	return lo.Uniq(append(words, list.Words...)), nil
}
