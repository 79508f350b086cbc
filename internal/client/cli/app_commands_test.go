package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/saytruth/saytruth/internal/client/api"
	"github.com/saytruth/saytruth/internal/client/api/apitest"
	"github.com/saytruth/saytruth/internal/client/services"
	"github.com/saytruth/saytruth/internal/client/session"
	"github.com/saytruth/saytruth/internal/client/store"
	"github.com/saytruth/saytruth/internal/logging"
)

// newTestApp wires an App around the fake client, in-memory storage and a
// captured output buffer.
func newTestApp(t *testing.T, fake *apitest.Fake) (*App, *bytes.Buffer) {
	t.Helper()
	st, db, err := store.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := logging.NewTextLogger(io.Discard, slog.LevelError)
	sess := session.NewController(fake, st, log)
	var out bytes.Buffer
	return &App{
		session:  sess,
		links:    services.NewLinkService(fake, sess, log),
		messages: services.NewMessageService(fake, log),
		users:    services.NewUserService(fake, log),
		log:      log,
		reader:   bufio.NewReader(strings.NewReader("")),
		out:      &out,
		db:       db,
	}, &out
}

// stubInputs replaces the interactive seams with canned line and secret
// answers for the duration of the test.
func stubInputs(t *testing.T, lines []string, secret string) {
	t.Helper()
	origText, origSecret := getSimpleText, getSecret
	t.Cleanup(func() { getSimpleText, getSecret = origText, origSecret })

	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(lines) {
			return "", io.EOF
		}
		line := lines[i]
		i++
		return line, nil
	}
	getSecret = func(_ string, _ io.Writer) ([]byte, error) {
		return []byte(secret), nil
	}
}

func TestAppLogin(t *testing.T) {
	fake := &apitest.Fake{
		CurrentUserFn: func(ctx context.Context) (*api.User, error) {
			return &api.User{ID: 1, Username: "amina"}, nil
		},
	}
	app, out := newTestApp(t, fake)
	stubInputs(t, []string{"amina"}, "the answer")

	require.NoError(t, app.Login(context.Background()))

	assert.True(t, app.isLoggedIn())
	assert.Contains(t, out.String(), "Welcome back, amina!")
}

func TestAppLoginFailure(t *testing.T) {
	fake := &apitest.Fake{
		LoginFn: func(ctx context.Context, username, secretAnswer string) (*api.TokenResponse, error) {
			return nil, fmt.Errorf("%w: wrong answer", api.ErrUnauthorized)
		},
	}
	app, out := newTestApp(t, fake)
	stubInputs(t, []string{"amina"}, "nope")

	err := app.Login(context.Background())

	require.ErrorIs(t, err, api.ErrUnauthorized)
	assert.False(t, app.isLoggedIn())
	assert.Contains(t, out.String(), "Login failed")
}

func TestAppInboxAndStatusCommands(t *testing.T) {
	fake := &apitest.Fake{
		GetInboxFn: func(ctx context.Context) (*api.Inbox, error) {
			return &api.Inbox{
				Inbox:  []api.Message{{ID: 3, Content: "hello", Status: api.StatusInbox, CreatedAt: time.Now()}},
				Public: []api.Message{{ID: 4, Content: "shown", Status: api.StatusPublic, CreatedAt: time.Now()}},
			}, nil
		},
	}
	app, out := newTestApp(t, fake)
	ctx := context.Background()

	require.NoError(t, app.Inbox(ctx))
	assert.Contains(t, out.String(), "hello")
	assert.Contains(t, out.String(), "shown")

	// inbox -> public goes over the wire
	require.NoError(t, app.Publish(ctx, "3"))
	assert.Equal(t, 1, fake.CallCount("MakeMessagePublic"))

	// already public: quiet no-op
	require.NoError(t, app.Publish(ctx, "4"))
	assert.Equal(t, 1, fake.CallCount("MakeMessagePublic"))

	// unknown id is reported without a request
	require.Error(t, app.Publish(ctx, "99"))
	assert.Contains(t, out.String(), "no message 99")
}

func TestAppClearSectionValidatesName(t *testing.T) {
	fake := &apitest.Fake{}
	app, _ := newTestApp(t, fake)

	err := app.ClearSection(context.Background(), "archive")

	require.ErrorIs(t, err, api.ErrValidation)
	assert.Empty(t, fake.Calls)
}

func TestAppCreateLinkGuestPermanent(t *testing.T) {
	fake := &apitest.Fake{}
	app, out := newTestApp(t, fake)
	stubInputs(t, []string{"my page", "permanent"}, "")

	err := app.CreateLink(context.Background())

	require.ErrorIs(t, err, api.ErrValidation)
	assert.Zero(t, fake.CallCount("CreateLink"))
	assert.Contains(t, out.String(), "Error:")
}

func TestAppCreateLinkPrintsIDs(t *testing.T) {
	fake := &apitest.Fake{
		CreateLinkFn: func(ctx context.Context, displayName string, expirationMinutes *int) (*api.Link, error) {
			require.NotNil(t, expirationMinutes)
			assert.Equal(t, 6*60, *expirationMinutes)
			return &api.Link{ID: 1, PublicID: "pub-1", PrivateID: "priv-1", DisplayName: displayName}, nil
		},
	}
	app, out := newTestApp(t, fake)
	stubInputs(t, []string{"ask me", "6h"}, "")

	require.NoError(t, app.CreateLink(context.Background()))

	assert.Contains(t, out.String(), "pub-1")
	assert.Contains(t, out.String(), "priv-1")
}

func TestAppOpenLinkExpired(t *testing.T) {
	fake := &apitest.Fake{
		GetLinkInfoFn: func(ctx context.Context, publicID string) (*api.LinkInfo, error) {
			return nil, fmt.Errorf("%w: link is gone", api.ErrExpired)
		},
	}
	app, out := newTestApp(t, fake)

	err := app.OpenLink(context.Background(), "dead-link")

	require.ErrorIs(t, err, api.ErrExpired)
	assert.Contains(t, out.String(), "Expired")
}

func TestAppSetLang(t *testing.T) {
	fake := &apitest.Fake{}
	app, out := newTestApp(t, fake)

	require.NoError(t, app.SetLang(context.Background(), "es"))
	assert.Contains(t, out.String(), "Language set to ES")

	err := app.SetLang(context.Background(), "fr")
	require.ErrorIs(t, err, api.ErrValidation)
}
