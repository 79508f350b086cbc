// Package apitest provides a configurable fake api.Client for unit tests.
// Unset function fields succeed with zero values, so a test only wires the
// endpoints it exercises.
package apitest

import (
	"context"

	"github.com/saytruth/saytruth/internal/client/api"
)

type Fake struct {
	// Token records every SetToken call, latest last.
	Tokens []string

	// Calls records endpoint names in invocation order.
	Calls []string

	SignupFn         func(ctx context.Context, username, name, secretPhrase, secretAnswer string) (*api.TokenResponse, error)
	LoginFn          func(ctx context.Context, username, secretAnswer string) (*api.TokenResponse, error)
	RecoverFn        func(ctx context.Context, username string) (*api.RecoveryHint, error)
	VerifyRecoveryFn func(ctx context.Context, username, secretAnswer string) (*api.TokenResponse, error)
	UpdateSettingsFn func(ctx context.Context, s api.Settings) error
	CurrentUserFn    func(ctx context.Context) (*api.User, error)

	GetInboxFn            func(ctx context.Context) (*api.Inbox, error)
	SendMessageFn         func(ctx context.Context, receiverUsername, content string) error
	MakeMessagePublicFn   func(ctx context.Context, messageID int64) error
	MakeMessagePrivateFn  func(ctx context.Context, messageID int64) error
	UpdateMessageStatusFn func(ctx context.Context, messageID int64, status api.MessageStatus) error
	DeleteMessageFn       func(ctx context.Context, messageID int64) error

	CreateLinkFn             func(ctx context.Context, displayName string, expirationMinutes *int) (*api.Link, error)
	GetUserLinksFn           func(ctx context.Context) ([]api.Link, error)
	DeleteLinkFn             func(ctx context.Context, linkID int64) error
	GetLinkInfoFn            func(ctx context.Context, publicID string) (*api.LinkInfo, error)
	SendLinkMessageFn        func(ctx context.Context, publicID, content string) error
	GetLinkMessagesFn        func(ctx context.Context, privateID string) ([]api.Message, error)
	MakeLinkMessagePublicFn  func(ctx context.Context, privateID string, messageID int64) error
	MakeLinkMessagePrivateFn func(ctx context.Context, privateID string, messageID int64) error
	DeleteLinkMessageFn      func(ctx context.Context, privateID string, messageID int64) error

	SearchUsersFn       func(ctx context.Context, query string) ([]api.Profile, error)
	GetUserByUsernameFn func(ctx context.Context, username string) (*api.Profile, error)
	GetUserProfileFn    func(ctx context.Context, userID int64) (*api.Profile, error)
	FollowUserFn        func(ctx context.Context, userID int64) error
	UnfollowUserFn      func(ctx context.Context, userID int64) error
	GetFollowingFn      func(ctx context.Context) ([]api.Profile, error)
	GetFollowersFn      func(ctx context.Context) ([]api.Profile, error)
}

var _ api.Client = (*Fake)(nil)

func (f *Fake) record(name string) { f.Calls = append(f.Calls, name) }

// CallCount returns how many times the named endpoint was invoked.
func (f *Fake) CallCount(name string) int {
	n := 0
	for _, c := range f.Calls {
		if c == name {
			n++
		}
	}
	return n
}

func (f *Fake) SetToken(token string) { f.Tokens = append(f.Tokens, token) }

func (f *Fake) Signup(ctx context.Context, username, name, secretPhrase, secretAnswer string) (*api.TokenResponse, error) {
	f.record("Signup")
	if f.SignupFn == nil {
		return &api.TokenResponse{AccessToken: "tok"}, nil
	}
	return f.SignupFn(ctx, username, name, secretPhrase, secretAnswer)
}

func (f *Fake) Login(ctx context.Context, username, secretAnswer string) (*api.TokenResponse, error) {
	f.record("Login")
	if f.LoginFn == nil {
		return &api.TokenResponse{AccessToken: "tok"}, nil
	}
	return f.LoginFn(ctx, username, secretAnswer)
}

func (f *Fake) Recover(ctx context.Context, username string) (*api.RecoveryHint, error) {
	f.record("Recover")
	if f.RecoverFn == nil {
		return &api.RecoveryHint{}, nil
	}
	return f.RecoverFn(ctx, username)
}

func (f *Fake) VerifyRecovery(ctx context.Context, username, secretAnswer string) (*api.TokenResponse, error) {
	f.record("VerifyRecovery")
	if f.VerifyRecoveryFn == nil {
		return &api.TokenResponse{AccessToken: "tok"}, nil
	}
	return f.VerifyRecoveryFn(ctx, username, secretAnswer)
}

func (f *Fake) UpdateSettings(ctx context.Context, s api.Settings) error {
	f.record("UpdateSettings")
	if f.UpdateSettingsFn == nil {
		return nil
	}
	return f.UpdateSettingsFn(ctx, s)
}

func (f *Fake) CurrentUser(ctx context.Context) (*api.User, error) {
	f.record("CurrentUser")
	if f.CurrentUserFn == nil {
		return &api.User{ID: 1, Username: "user"}, nil
	}
	return f.CurrentUserFn(ctx)
}

func (f *Fake) GetInbox(ctx context.Context) (*api.Inbox, error) {
	f.record("GetInbox")
	if f.GetInboxFn == nil {
		return &api.Inbox{}, nil
	}
	return f.GetInboxFn(ctx)
}

func (f *Fake) SendMessage(ctx context.Context, receiverUsername, content string) error {
	f.record("SendMessage")
	if f.SendMessageFn == nil {
		return nil
	}
	return f.SendMessageFn(ctx, receiverUsername, content)
}

func (f *Fake) MakeMessagePublic(ctx context.Context, messageID int64) error {
	f.record("MakeMessagePublic")
	if f.MakeMessagePublicFn == nil {
		return nil
	}
	return f.MakeMessagePublicFn(ctx, messageID)
}

func (f *Fake) MakeMessagePrivate(ctx context.Context, messageID int64) error {
	f.record("MakeMessagePrivate")
	if f.MakeMessagePrivateFn == nil {
		return nil
	}
	return f.MakeMessagePrivateFn(ctx, messageID)
}

func (f *Fake) UpdateMessageStatus(ctx context.Context, messageID int64, status api.MessageStatus) error {
	f.record("UpdateMessageStatus")
	if f.UpdateMessageStatusFn == nil {
		return nil
	}
	return f.UpdateMessageStatusFn(ctx, messageID, status)
}

func (f *Fake) DeleteMessage(ctx context.Context, messageID int64) error {
	f.record("DeleteMessage")
	if f.DeleteMessageFn == nil {
		return nil
	}
	return f.DeleteMessageFn(ctx, messageID)
}

func (f *Fake) CreateLink(ctx context.Context, displayName string, expirationMinutes *int) (*api.Link, error) {
	f.record("CreateLink")
	if f.CreateLinkFn == nil {
		return &api.Link{ID: 1, PublicID: "pub", PrivateID: "priv"}, nil
	}
	return f.CreateLinkFn(ctx, displayName, expirationMinutes)
}

func (f *Fake) GetUserLinks(ctx context.Context) ([]api.Link, error) {
	f.record("GetUserLinks")
	if f.GetUserLinksFn == nil {
		return nil, nil
	}
	return f.GetUserLinksFn(ctx)
}

func (f *Fake) DeleteLink(ctx context.Context, linkID int64) error {
	f.record("DeleteLink")
	if f.DeleteLinkFn == nil {
		return nil
	}
	return f.DeleteLinkFn(ctx, linkID)
}

func (f *Fake) GetLinkInfo(ctx context.Context, publicID string) (*api.LinkInfo, error) {
	f.record("GetLinkInfo")
	if f.GetLinkInfoFn == nil {
		return &api.LinkInfo{PublicID: publicID}, nil
	}
	return f.GetLinkInfoFn(ctx, publicID)
}

func (f *Fake) SendLinkMessage(ctx context.Context, publicID, content string) error {
	f.record("SendLinkMessage")
	if f.SendLinkMessageFn == nil {
		return nil
	}
	return f.SendLinkMessageFn(ctx, publicID, content)
}

func (f *Fake) GetLinkMessages(ctx context.Context, privateID string) ([]api.Message, error) {
	f.record("GetLinkMessages")
	if f.GetLinkMessagesFn == nil {
		return nil, nil
	}
	return f.GetLinkMessagesFn(ctx, privateID)
}

func (f *Fake) MakeLinkMessagePublic(ctx context.Context, privateID string, messageID int64) error {
	f.record("MakeLinkMessagePublic")
	if f.MakeLinkMessagePublicFn == nil {
		return nil
	}
	return f.MakeLinkMessagePublicFn(ctx, privateID, messageID)
}

func (f *Fake) MakeLinkMessagePrivate(ctx context.Context, privateID string, messageID int64) error {
	f.record("MakeLinkMessagePrivate")
	if f.MakeLinkMessagePrivateFn == nil {
		return nil
	}
	return f.MakeLinkMessagePrivateFn(ctx, privateID, messageID)
}

func (f *Fake) DeleteLinkMessage(ctx context.Context, privateID string, messageID int64) error {
	f.record("DeleteLinkMessage")
	if f.DeleteLinkMessageFn == nil {
		return nil
	}
	return f.DeleteLinkMessageFn(ctx, privateID, messageID)
}

func (f *Fake) SearchUsers(ctx context.Context, query string) ([]api.Profile, error) {
	f.record("SearchUsers")
	if f.SearchUsersFn == nil {
		return nil, nil
	}
	return f.SearchUsersFn(ctx, query)
}

func (f *Fake) GetUserByUsername(ctx context.Context, username string) (*api.Profile, error) {
	f.record("GetUserByUsername")
	if f.GetUserByUsernameFn == nil {
		return &api.Profile{Username: username}, nil
	}
	return f.GetUserByUsernameFn(ctx, username)
}

func (f *Fake) GetUserProfile(ctx context.Context, userID int64) (*api.Profile, error) {
	f.record("GetUserProfile")
	if f.GetUserProfileFn == nil {
		return &api.Profile{ID: userID}, nil
	}
	return f.GetUserProfileFn(ctx, userID)
}

func (f *Fake) FollowUser(ctx context.Context, userID int64) error {
	f.record("FollowUser")
	if f.FollowUserFn == nil {
		return nil
	}
	return f.FollowUserFn(ctx, userID)
}

func (f *Fake) UnfollowUser(ctx context.Context, userID int64) error {
	f.record("UnfollowUser")
	if f.UnfollowUserFn == nil {
		return nil
	}
	return f.UnfollowUserFn(ctx, userID)
}

func (f *Fake) GetFollowing(ctx context.Context) ([]api.Profile, error) {
	f.record("GetFollowing")
	if f.GetFollowingFn == nil {
		return nil, nil
	}
	return f.GetFollowingFn(ctx)
}

func (f *Fake) GetFollowers(ctx context.Context) ([]api.Profile, error) {
	f.record("GetFollowers")
	if f.GetFollowersFn == nil {
		return nil, nil
	}
	return f.GetFollowersFn(ctx)
}
