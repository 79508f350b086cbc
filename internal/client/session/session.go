// Package session owns the client's auth state. The controller is the
// single writer of the session and the persisted token; views read
// snapshots and mutate only through the exposed methods.
package session

import (
	"context"
	"sync"

	"github.com/saytruth/saytruth/internal/client/api"
	"github.com/saytruth/saytruth/internal/client/i18n"
	"github.com/saytruth/saytruth/internal/client/store"
	"github.com/saytruth/saytruth/internal/logging"
)

// State is the snapshot views render from. CurrentUser is nil exactly when
// IsAuthenticated is false.
type State struct {
	IsAuthenticated bool
	CurrentUser     *api.User
}

// Controller coordinates auth transitions between the API client and the
// persisted token.
type Controller struct {
	client api.Client
	store  *store.Store
	log    logging.Logger

	mu    sync.RWMutex
	state State
	lang  i18n.Lang
}

func NewController(client api.Client, st *store.Store, log logging.Logger) *Controller {
	return &Controller{client: client, store: st, log: log, lang: i18n.EN}
}

// State returns the current session snapshot.
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Language returns the active UI language.
func (c *Controller) Language() i18n.Lang {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lang
}

// Restore re-establishes the session from persisted state at startup. It
// must complete before any auth-dependent view renders.
//
// No persisted token means guest state immediately. A persisted token is
// validated against the backend; any failure (expired or revoked token,
// network error) silently falls back to guest and clears the token. The
// caller never sees an error from a failed restoration, only the resulting
// guest state.
func (c *Controller) Restore(ctx context.Context) State {
	c.restoreLanguage(ctx)

	token, err := c.store.Token(ctx)
	if err != nil {
		c.log.Error(ctx, "reading persisted token", "error", err)
	}
	if token == "" {
		return c.setGuest(ctx)
	}

	// A locally expired token is not worth a round trip.
	if tokenExpired(token) {
		c.log.Info(ctx, "persisted token expired, starting as guest")
		c.clearToken(ctx)
		return c.setGuest(ctx)
	}

	c.client.SetToken(token)
	user, err := c.client.CurrentUser(ctx)
	if err != nil {
		c.log.Warn(ctx, "session restoration failed", "error", err)
		c.clearToken(ctx)
		c.client.SetToken("")
		return c.setGuest(ctx)
	}

	return c.setAuthenticated(user)
}

// Login authenticates with the secret answer. On failure the backend error
// is returned unmodified and the session stays as it was.
func (c *Controller) Login(ctx context.Context, username, secretAnswer string) (State, error) {
	tr, err := c.client.Login(ctx, username, secretAnswer)
	if err != nil {
		return c.State(), err
	}
	return c.adoptToken(ctx, tr.AccessToken)
}

// Signup creates the account and logs in with the returned token.
func (c *Controller) Signup(ctx context.Context, username, name, secretPhrase, secretAnswer string) (State, error) {
	tr, err := c.client.Signup(ctx, username, name, secretPhrase, secretAnswer)
	if err != nil {
		return c.State(), err
	}
	return c.adoptToken(ctx, tr.AccessToken)
}

// Recover starts account recovery and returns the stored secret phrase to
// display as the hint.
func (c *Controller) Recover(ctx context.Context, username string) (string, error) {
	hint, err := c.client.Recover(ctx, username)
	if err != nil {
		return "", err
	}
	return hint.SecretPhrase, nil
}

// VerifyRecovery completes recovery; a correct answer logs the user in.
func (c *Controller) VerifyRecovery(ctx context.Context, username, secretAnswer string) (State, error) {
	tr, err := c.client.VerifyRecovery(ctx, username, secretAnswer)
	if err != nil {
		return c.State(), err
	}
	return c.adoptToken(ctx, tr.AccessToken)
}

// Logout clears the persisted token and resets to guest state. It succeeds
// locally without a server round trip.
func (c *Controller) Logout(ctx context.Context) State {
	c.clearToken(ctx)
	c.client.SetToken("")
	return c.setGuest(ctx)
}

// SetLanguage persists the preference and, for authenticated users, pushes
// it to the backend followed by a silent current-user re-fetch. The
// re-fetch is no-op-safe: its failure never degrades the session.
func (c *Controller) SetLanguage(ctx context.Context, lang i18n.Lang) error {
	if _, ok := i18n.Parse(string(lang)); !ok {
		return api.ErrValidation
	}
	if err := c.store.SetLanguage(ctx, string(lang)); err != nil {
		c.log.Error(ctx, "persisting language", "error", err)
	}
	c.mu.Lock()
	c.lang = lang
	c.mu.Unlock()

	if !c.State().IsAuthenticated {
		return nil
	}
	l := string(lang)
	if err := c.client.UpdateSettings(ctx, api.Settings{Language: &l}); err != nil {
		return err
	}
	c.refreshUser(ctx)
	return nil
}

// UpdateSecret changes the recovery phrase and answer for the current user.
func (c *Controller) UpdateSecret(ctx context.Context, phrase, answer string) error {
	if err := c.client.UpdateSettings(ctx, api.Settings{SecretPhrase: &phrase, SecretAnswer: &answer}); err != nil {
		return err
	}
	c.refreshUser(ctx)
	return nil
}

func (c *Controller) adoptToken(ctx context.Context, token string) (State, error) {
	c.client.SetToken(token)

	user, err := c.client.CurrentUser(ctx)
	if err != nil {
		// Authenticated but the snapshot fetch failed; keep the session
		// and let the next refresh fill in the user.
		if serr := c.store.SetToken(ctx, token); serr != nil {
			c.log.Error(ctx, "persisting token", "error", serr)
		}
		c.log.Warn(ctx, "current-user fetch after login failed", "error", err)
		c.mu.Lock()
		c.state = State{IsAuthenticated: true}
		c.mu.Unlock()
		return c.State(), nil
	}

	// The account language follows the user across logins; it is adopted
	// here and persisted together with the token.
	if lang, ok := i18n.Parse(user.Language); ok {
		if serr := c.store.SetSession(ctx, token, string(lang)); serr != nil {
			c.log.Error(ctx, "persisting session", "error", serr)
		}
		c.mu.Lock()
		c.lang = lang
		c.mu.Unlock()
	} else if serr := c.store.SetToken(ctx, token); serr != nil {
		c.log.Error(ctx, "persisting token", "error", serr)
	}
	return c.setAuthenticated(user), nil
}

// refreshUser replaces the user snapshot wholesale; failures are logged and
// the previous snapshot kept.
func (c *Controller) refreshUser(ctx context.Context) {
	if !c.State().IsAuthenticated {
		return
	}
	user, err := c.client.CurrentUser(ctx)
	if err != nil {
		c.log.Warn(ctx, "user refresh failed", "error", err)
		return
	}
	c.setAuthenticated(user)
}

func (c *Controller) restoreLanguage(ctx context.Context) {
	saved, err := c.store.Language(ctx)
	if err != nil {
		c.log.Error(ctx, "reading persisted language", "error", err)
	}
	lang, ok := i18n.Parse(saved)
	if !ok {
		lang = i18n.Detect()
	}
	c.mu.Lock()
	c.lang = lang
	c.mu.Unlock()
}

func (c *Controller) setGuest(ctx context.Context) State {
	c.mu.Lock()
	c.state = State{}
	c.mu.Unlock()
	return c.State()
}

func (c *Controller) setAuthenticated(user *api.User) State {
	c.mu.Lock()
	c.state = State{IsAuthenticated: true, CurrentUser: user}
	c.mu.Unlock()
	return c.State()
}

func (c *Controller) clearToken(ctx context.Context) {
	if err := c.store.ClearToken(ctx); err != nil {
		c.log.Error(ctx, "clearing persisted token", "error", err)
	}
}
