package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/saytruth/saytruth/internal/client/api"
	"github.com/saytruth/saytruth/internal/logging"
)

// MessageService manages the authenticated inbox and anonymous sends.
type MessageService struct {
	client api.Client
	log    logging.Logger
}

func NewMessageService(client api.Client, log logging.Logger) *MessageService {
	return &MessageService{client: client, log: log}
}

// Inbox fetches the grouped message lists.
func (s *MessageService) Inbox(ctx context.Context) (*api.Inbox, error) {
	return s.client.GetInbox(ctx)
}

// Send posts an anonymous message to the named user.
func (s *MessageService) Send(ctx context.Context, receiverUsername, content string) error {
	receiverUsername = strings.TrimSpace(receiverUsername)
	if receiverUsername == "" {
		return fmt.Errorf("%w: receiver is empty", api.ErrValidation)
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return fmt.Errorf("%w: message is empty", api.ErrValidation)
	}
	return s.client.SendMessage(ctx, receiverUsername, content)
}

// ChangeStatus moves a message to the target section. Moving a message to
// the section it is already in makes no request and succeeds.
func (s *MessageService) ChangeStatus(ctx context.Context, m api.Message, target api.MessageStatus) error {
	if !target.Valid() {
		return fmt.Errorf("%w: unknown status %q", api.ErrValidation, target)
	}
	if m.Status == target {
		return nil
	}
	switch target {
	case api.StatusPublic:
		return s.client.MakeMessagePublic(ctx, m.ID)
	case api.StatusInbox:
		return s.client.MakeMessagePrivate(ctx, m.ID)
	default:
		return s.client.UpdateMessageStatus(ctx, m.ID, target)
	}
}

func (s *MessageService) Delete(ctx context.Context, messageID int64) error {
	return s.client.DeleteMessage(ctx, messageID)
}

// DeleteSection deletes every message in one section of the inbox. The
// backend has no bulk endpoint, so this fans out per-message deletes;
// failures are collected and the rest of the section is still attempted.
func (s *MessageService) DeleteSection(ctx context.Context, in *api.Inbox, section api.MessageStatus) error {
	var errs []error
	for _, m := range in.Section(section) {
		if err := s.client.DeleteMessage(ctx, m.ID); err != nil {
			s.log.Warn(ctx, "deleting message", "id", m.ID, "error", err)
			errs = append(errs, fmt.Errorf("message %d: %w", m.ID, err))
		}
	}
	return errors.Join(errs...)
}
