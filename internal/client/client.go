package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"timecal/internal/model"
)

// Client talks to a timecal server's event API. It implements
// calendar.EventService, so a Controller can run against a remote
// collection the same way it runs against a local one.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{},
	}
}

// Login exchanges credentials for a token and stores it on the client.
func (c *Client) Login(ctx context.Context, username, password string) error {
	payload := map[string]string{"username": username, "password": password}
	var result struct {
		Token string `json:"token"`
	}
	if err := c.doJSON(ctx, "POST", "/api/auth/login", payload, &result); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	c.token = result.Token
	return nil
}

func (c *Client) GetEvents(ctx context.Context) ([]model.CalendarEvent, error) {
	var events []model.CalendarEvent
	if err := c.doJSON(ctx, "GET", "/api/events", nil, &events); err != nil {
		return nil, fmt.Errorf("get events: %w", err)
	}
	return events, nil
}

func (c *Client) CreateEvent(ctx context.Context, event model.CalendarEvent) (model.CalendarEvent, error) {
	var created model.CalendarEvent
	if err := c.doJSON(ctx, "POST", "/api/events", event, &created); err != nil {
		return model.CalendarEvent{}, fmt.Errorf("create event: %w", err)
	}
	return created, nil
}

func (c *Client) EditEvent(ctx context.Context, event model.CalendarEvent) (model.CalendarEvent, error) {
	var updated model.CalendarEvent
	if err := c.doJSON(ctx, "PUT", "/api/events/"+event.ID, event, &updated); err != nil {
		return model.CalendarEvent{}, fmt.Errorf("edit event: %w", err)
	}
	return updated, nil
}

func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	if err := c.doJSON(ctx, "DELETE", "/api/events/"+id, nil, nil); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, result any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("api error %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
