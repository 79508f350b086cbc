package session

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/saytruth/saytruth/internal/client/api"
	"github.com/saytruth/saytruth/internal/client/api/apitest"
	"github.com/saytruth/saytruth/internal/client/i18n"
	"github.com/saytruth/saytruth/internal/client/store"
	"github.com/saytruth/saytruth/internal/logging"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, db, err := store.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return st
}

func newTestController(t *testing.T, client api.Client) (*Controller, *store.Store) {
	t.Helper()
	st := newTestStore(t)
	log := logging.NewTextLogger(io.Discard, slog.LevelError)
	return NewController(client, st, log), st
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()})
	s, err := tok.SignedString([]byte("test-key"))
	require.NoError(t, err)
	return s
}

func TestRestoreNoToken(t *testing.T) {
	t.Setenv("LC_ALL", "C")
	fake := &apitest.Fake{}
	c, _ := newTestController(t, fake)

	state := c.Restore(context.Background())

	assert.False(t, state.IsAuthenticated)
	assert.Nil(t, state.CurrentUser)
	assert.Zero(t, fake.CallCount("CurrentUser"))
}

func TestRestoreExpiredTokenSkipsNetwork(t *testing.T) {
	t.Setenv("LC_ALL", "C")
	ctx := context.Background()
	fake := &apitest.Fake{}
	c, st := newTestController(t, fake)
	require.NoError(t, st.SetToken(ctx, signedToken(t, time.Now().Add(-time.Hour))))

	state := c.Restore(ctx)

	assert.False(t, state.IsAuthenticated)
	assert.Zero(t, fake.CallCount("CurrentUser"))
	token, err := st.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token, "expired token must be cleared")
}

func TestRestoreRejectedTokenFallsBackToGuest(t *testing.T) {
	t.Setenv("LC_ALL", "C")
	ctx := context.Background()
	fake := &apitest.Fake{
		CurrentUserFn: func(ctx context.Context) (*api.User, error) {
			return nil, api.ErrUnauthorized
		},
	}
	c, st := newTestController(t, fake)
	require.NoError(t, st.SetToken(ctx, signedToken(t, time.Now().Add(time.Hour))))

	state := c.Restore(ctx)

	assert.False(t, state.IsAuthenticated)
	assert.Nil(t, state.CurrentUser)
	token, err := st.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
	// The transport token is reset so no later call rides on the dead one.
	require.NotEmpty(t, fake.Tokens)
	assert.Equal(t, "", fake.Tokens[len(fake.Tokens)-1])
}

func TestRestoreValidToken(t *testing.T) {
	t.Setenv("LC_ALL", "C")
	ctx := context.Background()
	fake := &apitest.Fake{
		CurrentUserFn: func(ctx context.Context) (*api.User, error) {
			return &api.User{ID: 7, Username: "amina"}, nil
		},
	}
	c, st := newTestController(t, fake)
	tok := signedToken(t, time.Now().Add(time.Hour))
	require.NoError(t, st.SetToken(ctx, tok))

	state := c.Restore(ctx)

	assert.True(t, state.IsAuthenticated)
	require.NotNil(t, state.CurrentUser)
	assert.Equal(t, "amina", state.CurrentUser.Username)
	assert.Equal(t, []string{tok}, fake.Tokens)
}

func TestRestoreUsesSavedLanguage(t *testing.T) {
	t.Setenv("LC_ALL", "C")
	ctx := context.Background()
	fake := &apitest.Fake{}
	c, st := newTestController(t, fake)
	require.NoError(t, st.SetLanguage(ctx, "ar"))

	c.Restore(ctx)

	assert.Equal(t, i18n.AR, c.Language())
}

func TestLoginSuccess(t *testing.T) {
	ctx := context.Background()
	fake := &apitest.Fake{
		LoginFn: func(ctx context.Context, username, secretAnswer string) (*api.TokenResponse, error) {
			return &api.TokenResponse{AccessToken: "fresh-token"}, nil
		},
		CurrentUserFn: func(ctx context.Context) (*api.User, error) {
			return &api.User{ID: 3, Username: "omar"}, nil
		},
	}
	c, st := newTestController(t, fake)

	state, err := c.Login(ctx, "omar", "answer")

	require.NoError(t, err)
	assert.True(t, state.IsAuthenticated)
	require.NotNil(t, state.CurrentUser)
	assert.Equal(t, "omar", state.CurrentUser.Username)

	token, err := st.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", token)
	assert.Equal(t, []string{"fresh-token"}, fake.Tokens)
}

func TestLoginAdoptsAccountLanguage(t *testing.T) {
	t.Setenv("LC_ALL", "C")
	ctx := context.Background()
	fake := &apitest.Fake{
		LoginFn: func(ctx context.Context, username, secretAnswer string) (*api.TokenResponse, error) {
			return &api.TokenResponse{AccessToken: "tok"}, nil
		},
		CurrentUserFn: func(ctx context.Context) (*api.User, error) {
			return &api.User{ID: 4, Username: "maria", Language: "es"}, nil
		},
	}
	c, st := newTestController(t, fake)

	_, err := c.Login(ctx, "maria", "answer")
	require.NoError(t, err)

	assert.Equal(t, i18n.ES, c.Language())
	saved, err := st.Language(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ES", saved)

	token, err := st.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok", token)
}

func TestLoginFailureLeavesSessionUntouched(t *testing.T) {
	ctx := context.Background()
	fake := &apitest.Fake{
		LoginFn: func(ctx context.Context, username, secretAnswer string) (*api.TokenResponse, error) {
			return nil, api.ErrUnauthorized
		},
	}
	c, st := newTestController(t, fake)

	state, err := c.Login(ctx, "omar", "wrong")

	require.ErrorIs(t, err, api.ErrUnauthorized)
	assert.False(t, state.IsAuthenticated)
	assert.Empty(t, fake.Tokens)
	token, serr := st.Token(ctx)
	require.NoError(t, serr)
	assert.Empty(t, token)
}

func TestLoginUserFetchFailureKeepsSession(t *testing.T) {
	ctx := context.Background()
	fake := &apitest.Fake{
		CurrentUserFn: func(ctx context.Context) (*api.User, error) {
			return nil, api.ErrUnavailable
		},
	}
	c, _ := newTestController(t, fake)

	state, err := c.Login(ctx, "omar", "answer")

	require.NoError(t, err)
	assert.True(t, state.IsAuthenticated)
	assert.Nil(t, state.CurrentUser)
}

func TestLogoutIsLocal(t *testing.T) {
	ctx := context.Background()
	fake := &apitest.Fake{}
	c, st := newTestController(t, fake)
	_, err := c.Login(ctx, "omar", "answer")
	require.NoError(t, err)

	state := c.Logout(ctx)

	assert.False(t, state.IsAuthenticated)
	assert.Nil(t, state.CurrentUser)
	token, err := st.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Equal(t, "", fake.Tokens[len(fake.Tokens)-1])
	// Logout never talks to the backend.
	assert.Zero(t, fake.CallCount("Logout"))
}

func TestSetLanguageGuest(t *testing.T) {
	ctx := context.Background()
	fake := &apitest.Fake{}
	c, st := newTestController(t, fake)

	require.NoError(t, c.SetLanguage(ctx, i18n.ES))

	assert.Equal(t, i18n.ES, c.Language())
	saved, err := st.Language(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ES", saved)
	assert.Zero(t, fake.CallCount("UpdateSettings"))
}

func TestSetLanguageAuthenticatedPushesAndRefreshes(t *testing.T) {
	ctx := context.Background()
	var pushed string
	fake := &apitest.Fake{
		UpdateSettingsFn: func(ctx context.Context, s api.Settings) error {
			require.NotNil(t, s.Language)
			pushed = *s.Language
			return nil
		},
	}
	c, _ := newTestController(t, fake)
	_, err := c.Login(ctx, "omar", "answer")
	require.NoError(t, err)
	before := fake.CallCount("CurrentUser")

	require.NoError(t, c.SetLanguage(ctx, i18n.AR))

	assert.Equal(t, "AR", pushed)
	assert.Equal(t, before+1, fake.CallCount("CurrentUser"), "silent refresh after settings push")
}

func TestSetLanguageRejectsUnknown(t *testing.T) {
	fake := &apitest.Fake{}
	c, _ := newTestController(t, fake)

	err := c.SetLanguage(context.Background(), i18n.Lang("fr"))

	require.ErrorIs(t, err, api.ErrValidation)
}

func TestTokenExpired(t *testing.T) {
	assert.False(t, tokenExpired("not-a-jwt"))
	assert.False(t, tokenExpired(signedToken(t, time.Now().Add(time.Hour))))
	assert.True(t, tokenExpired(signedToken(t, time.Now().Add(-time.Minute))))
}
