// Command trigger fires sample platform events and calls at a running
// functions server and prints what came back.
//
//	trigger approve -email artist@example.com -first Ada -last Lovelace
//	trigger reject  -email artist@example.com -reason "Portfolio too small"
//	trigger user    -email client@example.com
//	trigger analyze -message "add me on whatsapp 555 0101"
package main

import (
	"context"
	"flag"
	"fmt"
	"ink-functions/client"
	"ink-functions/domain"
	"ink-functions/domain/event"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/olekukonko/tablewriter"
)

// Exit codes for the trigger application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

type Config struct {
	ServerAddr   string `envconfig:"TRIGGER_SERVER_ADDR" default:"http://localhost:8080"`
	GeminiAPIKey string `envconfig:"GEMINI_API_KEY"`
	Colours      bool   `envconfig:"TRIGGER_COLOURS" default:"true"`
}

func main() {
	code, err := run(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Trigger error: %v\n", err)
	}
	os.Exit(code)
}

func run(args []string) (int, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if len(args) == 0 {
		return exitConfig, fmt.Errorf("usage: trigger approve|reject|user|analyze [flags]")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := client.New(config.ServerAddr, nil)
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	email := fs.String("email", "", "recipient address")
	first := fs.String("first", "", "first name")
	last := fs.String("last", "", "last name")
	reason := fs.String("reason", "", "rejection reason")
	from := fs.String("from", string(domain.StatusPending), "status before the update")
	message := fs.String("message", "", "chat message to analyze")
	apiKey := fs.String("api-key", config.GeminiAPIKey, "Gemini API key")
	if err := fs.Parse(args[1:]); err != nil {
		return exitConfig, err
	}

	var (
		resp   *client.Response
		result string
		err    error
	)
	switch args[0] {
	case "approve", "reject":
		after := domain.ApprovalSnapshot{
			Status:          domain.StatusApproved,
			Email:           *email,
			FirstName:       *first,
			LastName:        *last,
			RejectionReason: *reason,
		}
		if args[0] == "reject" {
			after.Status = domain.StatusRejected
		}
		resp, err = c.ApprovalUpdated(ctx, event.ApprovalUpdated{
			ApprovalID: uuid.NewString(),
			Before:     domain.ApprovalSnapshot{Status: domain.ApprovalStatus(*from), Email: *email},
			After:      after,
		})
	case "user":
		resp, err = c.UserCreated(ctx, event.UserCreated{UID: uuid.NewString(), Email: *email})
	case "analyze":
		var res domain.ModerationResult
		res, resp, err = c.AnalyzeChatMessage(ctx, domain.ModerationRequest{Message: *message, APIKey: *apiKey})
		if err == nil {
			result = res.Analysis
		}
	default:
		return exitConfig, fmt.Errorf("unknown command %q", args[0])
	}

	if resp != nil {
		printResponse(config, resp, result)
	}
	if err != nil {
		return exitRuntime, err
	}
	return exitOK, nil
}

func printResponse(config Config, resp *client.Response, result string) {
	status := strconv.Itoa(resp.StatusCode)
	if config.Colours {
		if resp.StatusCode < 300 {
			status = color.New(color.FgGreen).Render(status)
		} else {
			status = color.New(color.FgRed).Render(status)
		}
	}
	if result == "" {
		result = string(resp.Body)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Function", "Status", "Execution ID", "Duration", "Body"})
	table.SetAutoWrapText(true)
	table.Append([]string{resp.Function, status, resp.ExecutionID, resp.Duration.String(), result})
	table.Render()
}
