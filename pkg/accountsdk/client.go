package accountsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Client is a client for the accounts service. It provides access to the
// unauthenticated operations and can create authenticated Sessions.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new accounts service client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register creates a new account and returns a live session for it. The
// service issues the first token as part of registration.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*Session, *AuthResponse, error) {
	resp, err := c.postJSON(ctx, "/register/", req)
	if err != nil {
		return nil, nil, err
	}

	var out AuthResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, nil, err
	}
	return newSession(c, out.Token), &out, nil
}

// Login authenticates with an email or username plus password and returns a
// session holding the (re)issued token. Any previously issued token for the
// account stops working.
func (c *Client) Login(ctx context.Context, identifier, password string) (*Session, *AuthResponse, error) {
	return c.LoginWithOTP(ctx, identifier, password, "")
}

// LoginWithOTP is Login with a one-time code for MFA-enrolled accounts.
func (c *Client) LoginWithOTP(ctx context.Context, identifier, password, otpCode string) (*Session, *AuthResponse, error) {
	resp, err := c.postJSON(ctx, "/login/", LoginRequest{
		EmailOrUsername: identifier,
		Password:        password,
		OTPCode:         otpCode,
	})
	if err != nil {
		return nil, nil, err
	}

	var out AuthResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, nil, err
	}
	return newSession(c, out.Token), &out, nil
}

// CheckEmail reports whether an account already holds the email.
func (c *Client) CheckEmail(ctx context.Context, email string) (bool, error) {
	resp, err := c.postJSON(ctx, "/check-email/", CheckEmailRequest{Email: email})
	if err != nil {
		return false, err
	}

	var out ExistsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return false, err
	}
	return out.Exists, nil
}

// CheckUsername reports whether an account already holds the username.
func (c *Client) CheckUsername(ctx context.Context, username string) (bool, error) {
	resp, err := c.postJSON(ctx, "/check-username/", CheckUsernameRequest{Username: username})
	if err != nil {
		return false, err
	}

	var out ExistsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return false, err
	}
	return out.Exists, nil
}
