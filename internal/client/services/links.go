// Package services layers the client-side rules over the raw API client:
// form validation before any network call, the guest restrictions, status
// transition idempotence and the delete fan-outs. Views talk to services,
// never to api.Client directly.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/saytruth/saytruth/internal/client/api"
	"github.com/saytruth/saytruth/internal/client/expiry"
	"github.com/saytruth/saytruth/internal/client/session"
	"github.com/saytruth/saytruth/internal/logging"
)

// Auth is the session snapshot the services consult for guest restrictions.
// Satisfied by *session.Controller.
type Auth interface {
	State() session.State
}

// LinkService manages shareable expiring links.
type LinkService struct {
	client api.Client
	auth   Auth
	log    logging.Logger
}

func NewLinkService(client api.Client, auth Auth, log logging.Logger) *LinkService {
	return &LinkService{client: client, auth: auth, log: log}
}

// Create makes a new link with the selected lifetime. Guests may not create
// permanent links; that is refused here, before anything goes over the wire.
func (s *LinkService) Create(ctx context.Context, displayName string, option expiry.Option) (*api.Link, error) {
	minutes, limited := option.Minutes()
	if !limited && option != expiry.OptPermanent {
		return nil, fmt.Errorf("%w: unknown expiration option %q", api.ErrValidation, option)
	}
	if option == expiry.OptPermanent && !s.auth.State().IsAuthenticated {
		return nil, fmt.Errorf("%w: permanent links require an account", api.ErrValidation)
	}

	var expirationMinutes *int
	if limited {
		expirationMinutes = &minutes
	}
	return s.client.CreateLink(ctx, strings.TrimSpace(displayName), expirationMinutes)
}

// Mine lists the authenticated user's links.
func (s *LinkService) Mine(ctx context.Context) ([]api.Link, error) {
	return s.client.GetUserLinks(ctx)
}

func (s *LinkService) Delete(ctx context.Context, linkID int64) error {
	return s.client.DeleteLink(ctx, linkID)
}

// Info resolves the public page of a link. An expired link surfaces as
// api.ErrExpired, distinct from an unknown id (api.ErrNotFound).
func (s *LinkService) Info(ctx context.Context, publicID string) (*api.LinkInfo, error) {
	return s.client.GetLinkInfo(ctx, publicID)
}

// Send posts an anonymous message to the link's owner.
func (s *LinkService) Send(ctx context.Context, publicID, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return fmt.Errorf("%w: message is empty", api.ErrValidation)
	}
	return s.client.SendLinkMessage(ctx, publicID, content)
}

// Messages lists the messages received on a link. The private id is the
// access credential; there is no separate auth.
func (s *LinkService) Messages(ctx context.Context, privateID string) ([]api.Message, error) {
	return s.client.GetLinkMessages(ctx, privateID)
}

// SetMessagePublished toggles a link message between the private and public
// lists. Asking for the state the message is already in is a no-op.
func (s *LinkService) SetMessagePublished(ctx context.Context, privateID string, m api.Message, published bool) error {
	if published == (m.Status == api.StatusPublic) {
		return nil
	}
	if published {
		return s.client.MakeLinkMessagePublic(ctx, privateID, m.ID)
	}
	return s.client.MakeLinkMessagePrivate(ctx, privateID, m.ID)
}

func (s *LinkService) DeleteMessage(ctx context.Context, privateID string, messageID int64) error {
	return s.client.DeleteLinkMessage(ctx, privateID, messageID)
}
