package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ci-request-api/internal/auth"
	"ci-request-api/internal/form"
	"ci-request-api/internal/request"
	"ci-request-api/internal/session"
)

// DefaultTimeout bounds every request; a hung server surfaces as an
// error instead of a stuck client.
const DefaultTimeout = 30 * time.Second

// TransportError is a non-2xx response from the API.
type TransportError struct {
	Status  int
	Message string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// Client talks to the intake API on behalf of one session. A valid
// token is attached automatically; an expired one is simply absent, so
// the server's 401 drives re-login rather than a silently stale token.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Session *session.Session
}

func NewClient(baseURL string, sess *session.Session) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: DefaultTimeout},
		Session: sess,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		// status 0 marks a transport-level failure
		return &TransportError{Status: 0, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.Session.HandleUnauthorized()
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &TransportError{Status: resp.StatusCode, Message: errorMessage(resp)}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// errorMessage pulls the server's {"error": ...} or {"message": ...}
// body, falling back to the status text.
func errorMessage(resp *http.Response) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}
	return http.StatusText(resp.StatusCode)
}

// Login authenticates and installs the returned credentials into the
// session.
func (c *Client) Login(ctx context.Context, username, password string) (*auth.LoginResponse, error) {
	var resp auth.LoginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", auth.LoginRequest{
		Username: username,
		Password: password,
	}, &resp)
	if err != nil {
		return nil, err
	}

	if err := c.Session.Set(resp.Token, resp.User, resp.ExpiresIn); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil); err != nil {
		return err
	}
	return c.Session.Teardown()
}

func (c *Client) ListDrafts(ctx context.Context) ([]request.DraftListItem, error) {
	var drafts []request.DraftListItem
	if err := c.do(ctx, http.MethodGet, "/software-requests", nil, &drafts); err != nil {
		return nil, err
	}
	return drafts, nil
}

func (c *Client) GetDraft(ctx context.Context, id uint) (*request.SoftwareRequest, error) {
	var resp request.SoftwareRequest
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/software-requests/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SaveResult is the server's acknowledgement of a create or update.
type SaveResult struct {
	ID        uint   `json:"id"`
	RequestNo string `json:"requestNo"`
	CIID      string `json:"ciId"`
	Status    string `json:"status"`
}

func (c *Client) CreateDraft(ctx context.Context, payload *form.FormState) (*SaveResult, error) {
	var resp SaveResult
	if err := c.do(ctx, http.MethodPost, "/software-requests", payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) UpdateDraft(ctx context.Context, id uint, payload *form.FormState) (*SaveResult, error) {
	var resp SaveResult
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/software-requests/%d", id), payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DeleteDraft(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/software-requests/%d", id), nil, nil)
}

func (c *Client) Validate(ctx context.Context, payload *form.FormState) (*request.ValidateResponse, error) {
	var resp request.ValidateResponse
	if err := c.do(ctx, http.MethodPost, "/software-requests/validate", payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
