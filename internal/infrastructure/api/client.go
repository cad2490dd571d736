// Package api implements the ParticipationAPI port over the platform's HTTP
// interface.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"baco/internal/domain"
	"baco/internal/domain/entities"
	"baco/internal/ports/output"
)

var _ output.ParticipationAPI = (*Client)(nil)

// Client talks to the Baco HTTP API. Transition endpoints are handled
// defensively: some return 204/empty and some legacy ones answer with the
// wrong content type, so an unparsable 2xx body is normalized into an empty
// TransitionResponse reported alongside a MalformedResponseError.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type applyRequest struct {
	UserID            uint   `json:"userId"`
	ApplicationReason string `json:"applicationReason,omitempty"`
}

func (c *Client) Apply(ctx context.Context, eventID, userID uint, reason string) (*entities.TransitionResponse, error) {
	url := fmt.Sprintf("%s/events/%d/participants", c.baseURL, eventID)
	return c.doTransition(ctx, url, applyRequest{UserID: userID, ApplicationReason: reason})
}

func (c *Client) Transition(ctx context.Context, participantID uint, action domain.Action) (*entities.TransitionResponse, error) {
	url := fmt.Sprintf("%s/participants/%d/%s", c.baseURL, participantID, action)
	return c.doTransition(ctx, url, nil)
}

func (c *Client) GetParticipant(ctx context.Context, participantID uint) (*entities.ParticipantRecord, error) {
	var record entities.ParticipantRecord
	if err := c.getJSON(ctx, fmt.Sprintf("%s/participants/%d", c.baseURL, participantID), &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *Client) GetEvent(ctx context.Context, eventID uint) (*entities.Event, error) {
	var event entities.Event
	if err := c.getJSON(ctx, fmt.Sprintf("%s/events/%d", c.baseURL, eventID), &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (c *Client) ListEvents(ctx context.Context) ([]entities.Event, error) {
	var events []entities.Event
	if err := c.getJSON(ctx, c.baseURL+"/events", &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *Client) ListEventsByCreator(ctx context.Context, creatorID uint) ([]entities.Event, error) {
	var events []entities.Event
	url := fmt.Sprintf("%s/events?creator=%d", c.baseURL, creatorID)
	if err := c.getJSON(ctx, url, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *Client) ListEventsByParticipant(ctx context.Context, userID uint) ([]entities.Event, error) {
	var events []entities.Event
	url := fmt.Sprintf("%s/events?participant=%d", c.baseURL, userID)
	if err := c.getJSON(ctx, url, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// doTransition POSTs a mutation and normalizes its echo. Non-2xx responses
// surface the server's message verbatim; 2xx responses that do not parse
// yield an empty TransitionResponse together with a MalformedResponseError,
// so the caller can log it and still reconcile.
func (c *Client) doTransition(ctx context.Context, url string, body any) (*entities.TransitionResponse, error) {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, payload)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, &domain.NetworkError{URL: url, Err: err}
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &domain.NetworkError{URL: url, Err: err}
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, errorFromStatus(res.StatusCode, url, data)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return &entities.TransitionResponse{}, &domain.MalformedResponseError{
			StatusCode:  res.StatusCode,
			URL:         url,
			ContentType: res.Header.Get("Content-Type"),
			Err:         fmt.Errorf("empty body"),
		}
	}
	var tr entities.TransitionResponse
	if err := json.Unmarshal(data, &tr); err != nil {
		return &entities.TransitionResponse{}, &domain.MalformedResponseError{
			StatusCode:  res.StatusCode,
			URL:         url,
			ContentType: res.Header.Get("Content-Type"),
			Err:         err,
		}
	}
	return &tr, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	res, err := c.http.Do(req)
	if err != nil {
		return &domain.NetworkError{URL: url, Err: err}
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return &domain.NetworkError{URL: url, Err: err}
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return errorFromStatus(res.StatusCode, url, data)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &domain.MalformedResponseError{
			StatusCode:  res.StatusCode,
			URL:         url,
			ContentType: res.Header.Get("Content-Type"),
			Err:         err,
		}
	}
	return nil
}

// errorFromStatus maps a non-2xx response to the error taxonomy without
// reinterpreting the server's message.
func errorFromStatus(status int, url string, body []byte) error {
	msg := serverMessage(body)
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &domain.AuthorizationError{Message: msg}
	case status >= 400 && status < 500:
		return &domain.ValidationError{Message: msg}
	default:
		return &domain.NetworkError{URL: url, Err: fmt.Errorf("status %d: %s", status, msg)}
	}
}

func serverMessage(body []byte) string {
	var eb struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &eb); err == nil && eb.Message != "" {
		return eb.Message
	}
	return string(bytes.TrimSpace(body))
}
