package e2e

import (
	"context"
	"fmt"
	"ink-functions/client"
	"net/http"
	"time"

	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
)

type BaseHTTPSuite struct {
	suite.Suite
	Config Config
	client *client.Client
}

// SetupSuite loads the environment configuration and skips when no server is targeted
func (s *BaseHTTPSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.ServerAddr == "" {
		s.T().Skip("E2E_SERVER_ADDR not set")
	}
	s.client = client.New(s.Config.ServerAddr, &http.Client{Timeout: 90 * time.Second})
}

// Step prints a colorized header and runs fn with a bounded context
func (s *BaseHTTPSuite) Step(name string, fn func(ctx context.Context, c *client.Client)) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()
	fn(ctx, s.client)
}

// Trace logs one invocation, with its body when E2E_DEBUG_JSON is enabled
func (s *BaseHTTPSuite) Trace(resp *client.Response) {
	if resp == nil {
		return
	}
	line := fmt.Sprintf("POST /functions/%s [%d] in %v (execution %s)",
		resp.Function, resp.StatusCode, resp.Duration, resp.ExecutionID)
	if s.Config.DebugJSON && len(resp.Body) > 0 {
		line += "\nRESPONSE:\n" + string(resp.Body)
	}
	s.T().Log(line)
}
