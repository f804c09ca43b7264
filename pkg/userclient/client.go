package userclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/logger"
)

// Client talks to the remote user-service that owns accounts and
// credentials. Every request that acts on behalf of a caller forwards
// that caller's Authorization header explicitly.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) FindByID(ctx context.Context, authHeader, id string) (*domain.User, error) {
	var user domain.User
	found, err := c.getJSON(ctx, authHeader, "/api/users/"+id+"/id", &user)
	if err != nil {
		logger.Log.Error("user-service findUserById failed", "id", id, "error", err)
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &user, nil
}

func (c *Client) FindByEmail(ctx context.Context, authHeader, email string) (*domain.User, error) {
	var user domain.User
	found, err := c.getJSON(ctx, authHeader, "/api/users/"+email, &user)
	if err != nil {
		logger.Log.Error("user-service findUserByEmail failed", "error", err)
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &user, nil
}

func (c *Client) CreateUser(ctx context.Context, email, password string) (*domain.User, error) {
	body, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/users", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var user domain.User
	if err := c.do(req, &user); err != nil {
		logger.Log.Error("user-service createUser failed", "error", err)
		return nil, err
	}
	return &user, nil
}

func (c *Client) GeneratePassword(ctx context.Context, authHeader, id string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/users/"+id+"/password", nil)
	if err != nil {
		return "", err
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	var out struct {
		Password string `json:"password"`
	}
	if err := c.do(req, &out); err != nil {
		logger.Log.Error("user-service generatePassword failed", "id", id, "error", err)
		return "", err
	}
	return out.Password, nil
}

// getJSON performs an authenticated GET. The bool result is false when
// the service answered 404, which is "no such user", not an error.
func (c *Client) getJSON(ctx context.Context, authHeader, path string, out any) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return false, err
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("user-service returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain for connection reuse; the body is not part of the contract.
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("user-service returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
