// Package client talks to a running functions server the way the hosting
// platform does: events and calls posted as JSON envelopes.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"ink-functions/domain"
	"ink-functions/domain/event"
	"ink-functions/functions"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Response is the raw outcome of one invocation.
type Response struct {
	Function    string
	StatusCode  int
	ExecutionID string
	Body        []byte
	Duration    time.Duration
}

// CallError is the error body of the callable protocol.
type CallError struct {
	StatusCode int
	Status     string `json:"status"`
	Message    string `json:"message"`
}

func (e *CallError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Status, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// AnalyzeChatMessage calls the moderation function and decodes its result.
func (c *Client) AnalyzeChatMessage(ctx context.Context, req domain.ModerationRequest) (domain.ModerationResult, *Response, error) {
	resp, err := c.Invoke(ctx, functions.AnalyzeChatMessage, map[string]any{"data": req})
	if err != nil {
		return domain.ModerationResult{}, nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return domain.ModerationResult{}, resp, decodeCallError(resp)
	}
	var body struct {
		Result domain.ModerationResult `json:"result"`
	}
	if err = json.Unmarshal(resp.Body, &body); err != nil {
		return domain.ModerationResult{}, resp, fmt.Errorf("decoding result: %w", err)
	}
	return body.Result, resp, nil
}

// UserCreated fires the user creation trigger.
func (c *Client) UserCreated(ctx context.Context, evt event.UserCreated) (*Response, error) {
	return c.Invoke(ctx, functions.OnUserCreated, map[string]any{
		"id":   uuid.NewString(),
		"type": "user.created",
		"data": evt,
	})
}

// ApprovalUpdated fires the approvals/{approvalId} document trigger.
func (c *Client) ApprovalUpdated(ctx context.Context, evt event.ApprovalUpdated) (*Response, error) {
	return c.Invoke(ctx, functions.OnApprovalUpdated, map[string]any{
		"id":     uuid.NewString(),
		"type":   "document.updated",
		"params": map[string]string{functions.ApprovalIDParam: evt.ApprovalID},
		"data":   evt,
	})
}

// Invoke posts any envelope to /functions/{name}.
func (c *Client) Invoke(ctx context.Context, name string, envelope any) (*Response, error) {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("encoding envelope: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/functions/"+name, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", name, err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", name, err)
	}
	return &Response{
		Function:    name,
		StatusCode:  httpResp.StatusCode,
		ExecutionID: httpResp.Header.Get("Function-Execution-Id"),
		Body:        body,
		Duration:    time.Since(start),
	}, nil
}

func decodeCallError(resp *Response) error {
	var body struct {
		Error CallError `json:"error"`
	}
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return &CallError{StatusCode: resp.StatusCode, Status: "UNKNOWN", Message: string(resp.Body)}
	}
	body.Error.StatusCode = resp.StatusCode
	return &body.Error
}
