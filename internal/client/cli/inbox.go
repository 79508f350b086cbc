package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/saytruth/saytruth/internal/client/api"
	"github.com/saytruth/saytruth/internal/client/i18n"
)

// Inbox fetches and prints the grouped message lists, localized to the
// active language. The fetched inbox is cached so the per-message commands
// can address messages by id.
func (a *App) Inbox(ctx context.Context) error {
	in, err := a.messages.Inbox(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", api.Detail(err))
		return err
	}
	a.lastInbox = in

	t := i18n.T(a.session.Language())
	now := time.Now()
	sections := []struct {
		title    string
		messages []api.Message
	}{
		{t.Messages.Inbox, in.Inbox},
		{t.Messages.Public, in.Public},
		{t.Messages.Favorite, in.Favorite},
	}
	for _, s := range sections {
		fmt.Fprintf(a.out, "== %s ==\n", s.title)
		if len(s.messages) == 0 {
			fmt.Fprintf(a.out, "  %s\n", t.Messages.Empty)
			continue
		}
		for _, m := range s.messages {
			fmt.Fprintf(a.out, "  [%d] %s (%s)\n", m.ID, m.Content, t.Time.Relative(m.CreatedAt, now))
		}
	}
	return nil
}

func (a *App) Publish(ctx context.Context, id string) error {
	return a.changeStatus(ctx, id, api.StatusPublic)
}

func (a *App) Unpublish(ctx context.Context, id string) error {
	return a.changeStatus(ctx, id, api.StatusInbox)
}

func (a *App) Favorite(ctx context.Context, id string) error {
	return a.changeStatus(ctx, id, api.StatusFavorite)
}

func (a *App) changeStatus(ctx context.Context, id string, target api.MessageStatus) error {
	m, err := a.findMessage(id)
	if err != nil {
		fmt.Fprintf(a.out, "%s\n", err.Error())
		return err
	}
	if err := a.messages.ChangeStatus(ctx, *m, target); err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", api.Detail(err))
		return err
	}
	fmt.Fprintln(a.out, "Done.")
	return nil
}

// DeleteMessage removes one message by id.
func (a *App) DeleteMessage(ctx context.Context, id string) error {
	m, err := a.findMessage(id)
	if err != nil {
		fmt.Fprintf(a.out, "%s\n", err.Error())
		return err
	}
	if err := a.messages.Delete(ctx, m.ID); err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", api.Detail(err))
		return err
	}
	fmt.Fprintln(a.out, "Deleted.")
	return nil
}

// ClearSection deletes every message in one section.
func (a *App) ClearSection(ctx context.Context, section string) error {
	status := api.MessageStatus(section)
	if !status.Valid() {
		fmt.Fprintf(a.out, "Unknown section %q (inbox|public|favorite)\n", section)
		return api.ErrValidation
	}
	if a.lastInbox == nil {
		if err := a.Inbox(ctx); err != nil {
			return err
		}
	}
	if err := a.messages.DeleteSection(ctx, a.lastInbox, status); err != nil {
		fmt.Fprintf(a.out, "Some deletes failed: %s\n", api.Detail(err))
		return err
	}
	fmt.Fprintln(a.out, "Cleared.")
	return nil
}

// Send prompts for a receiver and a message body and sends anonymously.
func (a *App) Send(ctx context.Context) error {
	receiver, err := getSimpleText(a.reader, "Send to (username)", a.out)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Message", a.out)
	if err != nil {
		return err
	}
	if err := a.messages.Send(ctx, receiver, content); err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", api.Detail(err))
		return err
	}
	fmt.Fprintln(a.out, "Sent.")
	return nil
}

// findMessage resolves a message id against the last fetched inbox. The
// cached copy carries the current status, which the transition commands
// need for their no-op checks.
func (a *App) findMessage(id string) (*api.Message, error) {
	msgID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid message id %q", id)
	}
	if a.lastInbox == nil {
		return nil, fmt.Errorf("run 'inbox' first")
	}
	for _, section := range []api.MessageStatus{api.StatusInbox, api.StatusPublic, api.StatusFavorite} {
		for _, m := range a.lastInbox.Section(section) {
			if m.ID == msgID {
				return &m, nil
			}
		}
	}
	return nil, fmt.Errorf("no message %s in the last fetched inbox", id)
}
