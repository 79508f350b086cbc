// Package api contains the typed REST client for the SayTruth backend.
// The Client interface is the single seam between the application and the
// network; services and tests depend on it, not on HTTPClient.
package api

import "context"

// Client covers every backend endpoint the SayTruth client consumes.
//
// All methods honor context cancellation. Methods that require
// authentication rely on the bearer token set via SetToken; the
// implementation never decides auth policy, that is the session
// controller's job.
type Client interface {
	// SetToken installs (or clears, with "") the bearer token attached to
	// subsequent authenticated requests. Single writer: the session
	// controller.
	SetToken(token string)

	// Auth.
	Signup(ctx context.Context, username, name, secretPhrase, secretAnswer string) (*TokenResponse, error)
	Login(ctx context.Context, username, secretAnswer string) (*TokenResponse, error)
	Recover(ctx context.Context, username string) (*RecoveryHint, error)
	VerifyRecovery(ctx context.Context, username, secretAnswer string) (*TokenResponse, error)
	UpdateSettings(ctx context.Context, s Settings) error
	CurrentUser(ctx context.Context) (*User, error)

	// Messages.
	GetInbox(ctx context.Context) (*Inbox, error)
	SendMessage(ctx context.Context, receiverUsername, content string) error
	MakeMessagePublic(ctx context.Context, messageID int64) error
	MakeMessagePrivate(ctx context.Context, messageID int64) error
	UpdateMessageStatus(ctx context.Context, messageID int64, status MessageStatus) error
	DeleteMessage(ctx context.Context, messageID int64) error

	// Links.
	CreateLink(ctx context.Context, displayName string, expirationMinutes *int) (*Link, error)
	GetUserLinks(ctx context.Context) ([]Link, error)
	DeleteLink(ctx context.Context, linkID int64) error
	GetLinkInfo(ctx context.Context, publicID string) (*LinkInfo, error)
	SendLinkMessage(ctx context.Context, publicID, content string) error
	GetLinkMessages(ctx context.Context, privateID string) ([]Message, error)
	MakeLinkMessagePublic(ctx context.Context, privateID string, messageID int64) error
	MakeLinkMessagePrivate(ctx context.Context, privateID string, messageID int64) error
	DeleteLinkMessage(ctx context.Context, privateID string, messageID int64) error

	// Users.
	SearchUsers(ctx context.Context, query string) ([]Profile, error)
	GetUserByUsername(ctx context.Context, username string) (*Profile, error)
	GetUserProfile(ctx context.Context, userID int64) (*Profile, error)
	FollowUser(ctx context.Context, userID int64) error
	UnfollowUser(ctx context.Context, userID int64) error
	GetFollowing(ctx context.Context) ([]Profile, error)
	GetFollowers(ctx context.Context) ([]Profile, error)
}
