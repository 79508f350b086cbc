package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// HTTPClient is the concrete Client speaking JSON over REST.
type HTTPClient struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

// NormalizeBaseURL trims a trailing slash and a trailing "/api" segment so
// that configured values like "https://host/api/" and "https://host" produce
// the same request URLs.
func NormalizeBaseURL(base string) string {
	b := strings.TrimSpace(base)
	b = strings.TrimSuffix(b, "/")
	if strings.HasSuffix(strings.ToLower(b), "/api") {
		b = b[:len(b)-4]
	}
	return b
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: NormalizeBaseURL(baseURL),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *HTTPClient) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// errorBody is the JSON error envelope the backend returns.
type errorBody struct {
	Detail string `json:"detail"`
}

// do issues a JSON request and decodes the response into out (when out is
// non-nil and the response has a body). skipAuth leaves the bearer header
// off, matching the endpoints that accept anonymous callers.
func (c *HTTPClient) do(ctx context.Context, method, endpoint string, body any, out any, skipAuth bool) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	if token := c.currentToken(); token != "" && !skipAuth {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Detail: err.Error(), kind: ErrUnavailable}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var eb errorBody
		if decErr := json.NewDecoder(resp.Body).Decode(&eb); decErr != nil || eb.Detail == "" {
			eb.Detail = "Request failed"
		}
		return newStatusError(resp.StatusCode, eb.Detail)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// ---- Auth ----

func (c *HTTPClient) Signup(ctx context.Context, username, name, secretPhrase, secretAnswer string) (*TokenResponse, error) {
	body := map[string]string{
		"username":      username,
		"secret_phrase": secretPhrase,
		"secret_answer": secretAnswer,
	}
	if name != "" {
		body["name"] = name
	}
	var tr TokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/signup", body, &tr, true); err != nil {
		return nil, err
	}
	return &tr, nil
}

func (c *HTTPClient) Login(ctx context.Context, username, secretAnswer string) (*TokenResponse, error) {
	body := map[string]string{"username": username, "secret_answer": secretAnswer}
	var tr TokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &tr, true); err != nil {
		return nil, err
	}
	return &tr, nil
}

func (c *HTTPClient) Recover(ctx context.Context, username string) (*RecoveryHint, error) {
	var hint RecoveryHint
	if err := c.do(ctx, http.MethodPost, "/api/auth/recover", map[string]string{"username": username}, &hint, true); err != nil {
		return nil, err
	}
	return &hint, nil
}

func (c *HTTPClient) VerifyRecovery(ctx context.Context, username, secretAnswer string) (*TokenResponse, error) {
	body := map[string]string{"username": username, "secret_answer": secretAnswer}
	var tr TokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/recover/verify", body, &tr, true); err != nil {
		return nil, err
	}
	return &tr, nil
}

func (c *HTTPClient) UpdateSettings(ctx context.Context, s Settings) error {
	return c.do(ctx, http.MethodPatch, "/api/auth/settings", s, nil, false)
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (*User, error) {
	var u User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &u, false); err != nil {
		return nil, err
	}
	return &u, nil
}

// ---- Messages ----

func (c *HTTPClient) GetInbox(ctx context.Context) (*Inbox, error) {
	var in Inbox
	if err := c.do(ctx, http.MethodGet, "/api/messages/inbox", nil, &in, false); err != nil {
		return nil, err
	}
	return &in, nil
}

func (c *HTTPClient) SendMessage(ctx context.Context, receiverUsername, content string) error {
	body := map[string]string{"receiver_username": receiverUsername, "content": content}
	// Anonymous senders are allowed, the bearer header stays off.
	return c.do(ctx, http.MethodPost, "/api/messages/send", body, nil, true)
}

func (c *HTTPClient) MakeMessagePublic(ctx context.Context, messageID int64) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/messages/%d/make-public", messageID), nil, nil, false)
}

func (c *HTTPClient) MakeMessagePrivate(ctx context.Context, messageID int64) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/messages/%d/make-private", messageID), nil, nil, false)
}

func (c *HTTPClient) UpdateMessageStatus(ctx context.Context, messageID int64, status MessageStatus) error {
	body := map[string]string{"status": string(status)}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/messages/%d/status", messageID), body, nil, false)
}

func (c *HTTPClient) DeleteMessage(ctx context.Context, messageID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/messages/%d", messageID), nil, nil, false)
}

// ---- Links ----

func (c *HTTPClient) CreateLink(ctx context.Context, displayName string, expirationMinutes *int) (*Link, error) {
	body := map[string]any{"display_name": displayName}
	if expirationMinutes != nil {
		body["expiration_minutes"] = *expirationMinutes
	}
	var l Link
	// The token stays on when present so the backend can associate the
	// owner; guests create anonymous expiring links with the same call.
	if err := c.do(ctx, http.MethodPost, "/api/links/create", body, &l, false); err != nil {
		return nil, err
	}
	return &l, nil
}

func (c *HTTPClient) GetUserLinks(ctx context.Context) ([]Link, error) {
	var links []Link
	if err := c.do(ctx, http.MethodGet, "/api/links/my-links", nil, &links, false); err != nil {
		return nil, err
	}
	return links, nil
}

func (c *HTTPClient) DeleteLink(ctx context.Context, linkID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/links/%d", linkID), nil, nil, false)
}

func (c *HTTPClient) GetLinkInfo(ctx context.Context, publicID string) (*LinkInfo, error) {
	var info LinkInfo
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/links/%s/info", publicID), nil, &info, true); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *HTTPClient) SendLinkMessage(ctx context.Context, publicID, content string) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/links/%s/send", publicID), map[string]string{"content": content}, nil, true)
}

func (c *HTTPClient) GetLinkMessages(ctx context.Context, privateID string) ([]Message, error) {
	var msgs []Message
	// The private id itself is the access credential.
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/links/%s/messages", privateID), nil, &msgs, true); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (c *HTTPClient) MakeLinkMessagePublic(ctx context.Context, privateID string, messageID int64) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/links/%s/messages/%d/make-public", privateID, messageID), nil, nil, true)
}

func (c *HTTPClient) MakeLinkMessagePrivate(ctx context.Context, privateID string, messageID int64) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/links/%s/messages/%d/make-private", privateID, messageID), nil, nil, true)
}

func (c *HTTPClient) DeleteLinkMessage(ctx context.Context, privateID string, messageID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/links/%s/messages/%d", privateID, messageID), nil, nil, true)
}

// ---- Users ----

func (c *HTTPClient) SearchUsers(ctx context.Context, query string) ([]Profile, error) {
	var users []Profile
	if err := c.do(ctx, http.MethodPost, "/api/users/search", map[string]string{"username": query}, &users, true); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *HTTPClient) GetUserByUsername(ctx context.Context, username string) (*Profile, error) {
	var p Profile
	if err := c.do(ctx, http.MethodGet, "/api/users/username/"+username, nil, &p, true); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) GetUserProfile(ctx context.Context, userID int64) (*Profile, error) {
	var p Profile
	// Public profiles are viewable by anyone; the token rides along when
	// present so is_following reflects the viewer.
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/users/%d", userID), nil, &p, false); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) FollowUser(ctx context.Context, userID int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/users/follow/%d", userID), nil, nil, false)
}

func (c *HTTPClient) UnfollowUser(ctx context.Context, userID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/users/unfollow/%d", userID), nil, nil, false)
}

func (c *HTTPClient) GetFollowing(ctx context.Context) ([]Profile, error) {
	var users []Profile
	if err := c.do(ctx, http.MethodGet, "/api/users/following", nil, &users, false); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *HTTPClient) GetFollowers(ctx context.Context) ([]Profile, error) {
	var users []Profile
	if err := c.do(ctx, http.MethodGet, "/api/users/followers", nil, &users, false); err != nil {
		return nil, err
	}
	return users, nil
}
