package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/codesentinel/server/internal/hardening"
)

// timeout for analysis requests; model calls can take a while
const analyzeRequestTimeout = 90 * time.Second

// manages HTTP requests to the analysis REST API
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

// creates a new analysis REST client. The bearer token comes from
// CODESENTINEL_TOKEN, obtained via the OAuth flow in a browser.
func NewClient() *Client {
	endpoint := os.Getenv("CODESENTINEL_API_ENDPOINT")
	if endpoint == "" {
		endpoint = "http://localhost:8080"
	}

	return &Client{
		endpoint: endpoint,
		token:    os.Getenv("CODESENTINEL_TOKEN"),
		httpClient: &http.Client{
			Timeout: analyzeRequestTimeout,
		},
	}
}

// sends an analyze request and unwraps the response envelope
func (c *Client) Analyze(ctx context.Context, code, language string) ([]hardening.Suggestion, error) {
	payload := analyzeRequest{Code: code, Language: language}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/analyze", c.endpoint)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp apiErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			return nil, fmt.Errorf("%s: %s", errResp.Error, errResp.Message)
		}
		return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var envelope analyzeEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if !envelope.Success {
		return nil, fmt.Errorf("%s", envelope.Error)
	}

	if envelope.Data == nil {
		return nil, fmt.Errorf("response is missing analysis data")
	}

	return envelope.Data.Suggestions, nil
}

// returns a tea.Cmd that sends an analyze request
func (c *Client) AnalyzeCmd(code, language string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), analyzeRequestTimeout)
		defer cancel()

		suggestions, err := c.Analyze(ctx, code, language)
		if err != nil {
			return AnalysisErrorMsg{err: err}
		}

		return AnalysisResultMsg{Suggestions: suggestions}
	}
}

// REST API request/response types

type analyzeRequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

type analyzeEnvelope struct {
	Success bool           `json:"success"`
	Data    *analyzeResult `json:"data,omitempty"`
	Error   string         `json:"error,omitempty"`
}

type analyzeResult struct {
	Suggestions []hardening.Suggestion `json:"suggestions"`
}

type apiErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
