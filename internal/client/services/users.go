package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/saytruth/saytruth/internal/client/api"
	"github.com/saytruth/saytruth/internal/logging"
)

// UserService covers discovery and the follow graph.
type UserService struct {
	client api.Client
	log    logging.Logger
}

func NewUserService(client api.Client, log logging.Logger) *UserService {
	return &UserService{client: client, log: log}
}

// Search finds users by name prefix. A blank query is refused locally.
func (s *UserService) Search(ctx context.Context, query string) ([]api.Profile, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: empty search query", api.ErrValidation)
	}
	return s.client.SearchUsers(ctx, query)
}

// Profile loads a user's public profile, including whether the viewer
// already follows them.
func (s *UserService) Profile(ctx context.Context, userID int64) (*api.Profile, error) {
	return s.client.GetUserProfile(ctx, userID)
}

// ByUsername resolves a profile from its username, used when composing a
// message by name.
func (s *UserService) ByUsername(ctx context.Context, username string) (*api.Profile, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: empty username", api.ErrValidation)
	}
	return s.client.GetUserByUsername(ctx, username)
}

// SetFollowing follows or unfollows a user. Asking for the relation the
// profile already has is a no-op.
func (s *UserService) SetFollowing(ctx context.Context, p api.Profile, follow bool) error {
	if follow == p.IsFollowing {
		return nil
	}
	if follow {
		return s.client.FollowUser(ctx, p.ID)
	}
	return s.client.UnfollowUser(ctx, p.ID)
}

func (s *UserService) Following(ctx context.Context) ([]api.Profile, error) {
	return s.client.GetFollowing(ctx)
}

func (s *UserService) Followers(ctx context.Context) ([]api.Profile, error) {
	return s.client.GetFollowers(ctx)
}
