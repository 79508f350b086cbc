package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"http://localhost", "http://localhost"},
		{"http://localhost/", "http://localhost"},
		{"http://localhost/api", "http://localhost"},
		{"http://localhost/API/", "http://localhost"},
		{"  https://saytruth.app/api ", "https://saytruth.app"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeBaseURL(tt.in), "input %q", tt.in)
	}
}

func TestLogin_SendsBodyAndSkipsAuthHeader(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(TokenResponse{AccessToken: "tok", TokenType: "bearer"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second)
	c.SetToken("stale-token")

	tr, err := c.Login(context.Background(), "alice", "blue")
	require.NoError(t, err)
	assert.Equal(t, "tok", tr.AccessToken)
	assert.Equal(t, "/api/auth/login", gotPath)
	assert.Empty(t, gotAuth, "login must not carry a bearer token")
	assert.Equal(t, map[string]string{"username": "alice", "secret_answer": "blue"}, gotBody)
}

func TestCurrentUser_AttachesBearerTokenAndRequestID(t *testing.T) {
	var gotAuth, gotReqID string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-Id")
		_ = json.NewEncoder(w).Encode(User{ID: 7, Username: "alice"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second)
	c.SetToken("tok123")

	u, err := c.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), u.ID)
	assert.Equal(t, "Bearer tok123", gotAuth)
	assert.NotEmpty(t, gotReqID)
}

func TestDo_ErrorTaxonomy(t *testing.T) {
	tests := []struct {
		status int
		detail string
		want   error
	}{
		{401, "Invalid credentials", ErrUnauthorized},
		{403, "Forbidden", ErrUnauthorized},
		{404, "Link not found", ErrNotFound},
		{410, "Link has expired", ErrExpired},
		{422, "username too short", ErrValidation},
		{500, "boom", ErrUnavailable},
	}

	for _, tt := range tests {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": tt.detail})
		}))

		c := NewHTTPClient(srv.URL, time.Second)
		_, err := c.GetLinkInfo(context.Background(), "abc")
		require.ErrorIs(t, err, tt.want, "status %d", tt.status)
		assert.Equal(t, tt.detail, Detail(err))

		srv.Close()
	}
}

func TestDo_ErrorWithoutJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second)
	_, err := c.GetInbox(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, "Request failed", Detail(err))
}

func TestDo_NetworkFailureIsUnavailable(t *testing.T) {
	c := NewHTTPClient("http://127.0.0.1:1", 200*time.Millisecond)
	_, err := c.GetInbox(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestDeleteMessage_NoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/messages/42", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second)
	require.NoError(t, c.DeleteMessage(context.Background(), 42))
}

func TestCreateLink_OmitsExpirationForPermanent(t *testing.T) {
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(Link{ID: 1, PublicID: "p1"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second)

	_, err := c.CreateLink(context.Background(), "ask me", nil)
	require.NoError(t, err)
	_, hasExp := gotBody["expiration_minutes"]
	assert.False(t, hasExp)

	minutes := 1440
	_, err = c.CreateLink(context.Background(), "ask me", &minutes)
	require.NoError(t, err)
	assert.EqualValues(t, 1440, gotBody["expiration_minutes"])
}

func TestGetInbox_GroupedSections(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(Inbox{
			Inbox:    []Message{{ID: 1, Status: StatusInbox}},
			Public:   []Message{{ID: 2, Status: StatusPublic}},
			Favorite: []Message{{ID: 3, Status: StatusFavorite}},
		})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second)
	in, err := c.GetInbox(context.Background())
	require.NoError(t, err)

	assert.Len(t, in.Section(StatusInbox), 1)
	assert.Len(t, in.Section(StatusPublic), 1)
	assert.Len(t, in.Section(StatusFavorite), 1)
	assert.Nil(t, in.Section(MessageStatus("bogus")))
}
