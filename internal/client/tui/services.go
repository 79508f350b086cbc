// Package tui is the full-screen SayTruth client: a tab bar over the view
// components, driven by URL-style navigation so the same guard rules apply
// as in the web client.
package tui

import (
	"context"

	"github.com/saytruth/saytruth/internal/client/api"
	"github.com/saytruth/saytruth/internal/client/expiry"
	"github.com/saytruth/saytruth/internal/client/i18n"
	"github.com/saytruth/saytruth/internal/client/session"
)

// SessionService is what the model needs from the session controller.
type SessionService interface {
	Restore(ctx context.Context) session.State
	State() session.State
	Language() i18n.Lang
	Login(ctx context.Context, username, secretAnswer string) (session.State, error)
	Signup(ctx context.Context, username, name, secretPhrase, secretAnswer string) (session.State, error)
	Recover(ctx context.Context, username string) (string, error)
	VerifyRecovery(ctx context.Context, username, secretAnswer string) (session.State, error)
	Logout(ctx context.Context) session.State
	SetLanguage(ctx context.Context, lang i18n.Lang) error
	UpdateSecret(ctx context.Context, phrase, answer string) error
}

// LinkService covers the link views.
type LinkService interface {
	Create(ctx context.Context, displayName string, option expiry.Option) (*api.Link, error)
	Mine(ctx context.Context) ([]api.Link, error)
	Delete(ctx context.Context, linkID int64) error
	Info(ctx context.Context, publicID string) (*api.LinkInfo, error)
	Send(ctx context.Context, publicID, content string) error
	Messages(ctx context.Context, privateID string) ([]api.Message, error)
	SetMessagePublished(ctx context.Context, privateID string, m api.Message, published bool) error
	DeleteMessage(ctx context.Context, privateID string, messageID int64) error
}

// MessageService covers the inbox view.
type MessageService interface {
	Inbox(ctx context.Context) (*api.Inbox, error)
	Send(ctx context.Context, receiverUsername, content string) error
	ChangeStatus(ctx context.Context, m api.Message, target api.MessageStatus) error
	Delete(ctx context.Context, messageID int64) error
	DeleteSection(ctx context.Context, in *api.Inbox, section api.MessageStatus) error
}

// UserService covers search and profiles.
type UserService interface {
	Search(ctx context.Context, query string) ([]api.Profile, error)
	Profile(ctx context.Context, userID int64) (*api.Profile, error)
	ByUsername(ctx context.Context, username string) (*api.Profile, error)
	SetFollowing(ctx context.Context, p api.Profile, follow bool) error
	Following(ctx context.Context) ([]api.Profile, error)
	Followers(ctx context.Context) ([]api.Profile, error)
}
