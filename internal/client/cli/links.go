package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/saytruth/saytruth/internal/client/api"
	"github.com/saytruth/saytruth/internal/client/expiry"
	"github.com/saytruth/saytruth/internal/client/i18n"
)

// Links lists the user's links with the time each has left.
func (a *App) Links(ctx context.Context) error {
	links, err := a.links.Mine(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", api.Detail(err))
		return err
	}

	t := i18n.T(a.session.Language())
	if len(links) == 0 {
		fmt.Fprintln(a.out, t.Links.NoLinks)
		return nil
	}
	now := time.Now()
	for _, l := range links {
		name := l.DisplayName
		if name == "" {
			name = l.PublicID
		}
		fmt.Fprintf(a.out, "[%d] %s  public:%s private:%s  %s\n",
			l.ID, name, l.PublicID, l.PrivateID, remainingLabel(t, l.ExpiresAt, now))
	}
	return nil
}

func remainingLabel(t *i18n.Strings, expiresAt *time.Time, now time.Time) string {
	d, state := expiry.Remaining(expiresAt, now)
	switch state {
	case expiry.StatePermanent:
		return t.Links.Permanent
	case expiry.StateExpired:
		return t.Links.Expired
	default:
		return fmt.Sprintf("%s %s", t.Links.ExpiresIn,
			expiry.Split(d).Largest(t.Time.Days, t.Time.Hours, t.Time.Minutes, t.Time.Seconds))
	}
}

// CreateLink prompts for a display name and a lifetime and creates the link.
// Guests are refused the permanent lifetime before anything is sent.
func (a *App) CreateLink(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Link name (optional)", a.out)
	if err != nil {
		return err
	}
	optStr, err := getSimpleText(a.reader, "Lifetime (6h, 12h, 24h, 7d, 30d, permanent)", a.out)
	if err != nil {
		return err
	}
	opt, err := expiry.ParseOption(optStr)
	if err != nil {
		fmt.Fprintf(a.out, "%s\n", err.Error())
		return err
	}

	link, err := a.links.Create(ctx, name, opt)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", api.Detail(err))
		return err
	}

	t := i18n.T(a.session.Language())
	fmt.Fprintf(a.out, "%s %s\n", t.Links.PublicURL, link.PublicID)
	fmt.Fprintf(a.out, "%s %s\n", t.Links.PrivateURL, link.PrivateID)
	return nil
}

// DeleteLink removes a link by its numeric id.
func (a *App) DeleteLink(ctx context.Context, id string) error {
	linkID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		fmt.Fprintf(a.out, "invalid link id %q\n", id)
		return err
	}
	if err := a.links.Delete(ctx, linkID); err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", api.Detail(err))
		return err
	}
	fmt.Fprintln(a.out, "Deleted.")
	return nil
}

// OpenLink shows a link's public page and offers to send an anonymous
// message to its owner. Expired links print a distinct notice.
func (a *App) OpenLink(ctx context.Context, publicID string) error {
	t := i18n.T(a.session.Language())

	info, err := a.links.Info(ctx, publicID)
	if err != nil {
		if errors.Is(err, api.ErrExpired) {
			fmt.Fprintln(a.out, t.Links.Expired)
		} else {
			fmt.Fprintf(a.out, "Error: %s\n", api.Detail(err))
		}
		return err
	}

	name := info.DisplayName
	if name == "" {
		name = info.PublicID
	}
	fmt.Fprintf(a.out, "%s (%s)\n", name, remainingLabel(t, info.ExpiresAt, time.Now()))

	content, err := GetMultiline(a.reader, t.Links.Compose, a.out)
	if err != nil {
		return err
	}
	if content == "" {
		return nil
	}
	if err := a.links.Send(ctx, publicID, content); err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", api.Detail(err))
		return err
	}
	fmt.Fprintln(a.out, "Sent.")
	return nil
}

// PublishLinkMessage moves a link message to the owner's public list.
func (a *App) PublishLinkMessage(ctx context.Context, privateID, id string) error {
	return a.setLinkMessagePublished(ctx, privateID, id, true)
}

// UnpublishLinkMessage moves a link message back to the private list.
func (a *App) UnpublishLinkMessage(ctx context.Context, privateID, id string) error {
	return a.setLinkMessagePublished(ctx, privateID, id, false)
}

func (a *App) setLinkMessagePublished(ctx context.Context, privateID, id string, published bool) error {
	m, err := a.findLinkMessage(ctx, privateID, id)
	if err != nil {
		return err
	}
	if err := a.links.SetMessagePublished(ctx, privateID, *m, published); err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", api.Detail(err))
		return err
	}
	fmt.Fprintln(a.out, "Done.")
	return nil
}

// DeleteLinkMessage removes one message received on a link.
func (a *App) DeleteLinkMessage(ctx context.Context, privateID, id string) error {
	msgID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		fmt.Fprintf(a.out, "invalid message id %q\n", id)
		return err
	}
	if err := a.links.DeleteMessage(ctx, privateID, msgID); err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", api.Detail(err))
		return err
	}
	fmt.Fprintln(a.out, "Deleted.")
	return nil
}

// findLinkMessage refetches the link's messages and resolves one by id, so
// the publish toggle sees the current status.
func (a *App) findLinkMessage(ctx context.Context, privateID, id string) (*api.Message, error) {
	msgID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		fmt.Fprintf(a.out, "invalid message id %q\n", id)
		return nil, err
	}
	msgs, err := a.links.Messages(ctx, privateID)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", api.Detail(err))
		return nil, err
	}
	for _, m := range msgs {
		if m.ID == msgID {
			return &m, nil
		}
	}
	fmt.Fprintf(a.out, "no message %s on this link\n", id)
	return nil, fmt.Errorf("no message %s on this link", id)
}

// LinkMessages lists messages received on a link, addressed by its private
// id. The private id is the only credential.
func (a *App) LinkMessages(ctx context.Context, privateID string) error {
	msgs, err := a.links.Messages(ctx, privateID)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", api.Detail(err))
		return err
	}

	t := i18n.T(a.session.Language())
	if len(msgs) == 0 {
		fmt.Fprintln(a.out, t.Links.NoMessages)
		return nil
	}
	now := time.Now()
	for _, m := range msgs {
		fmt.Fprintf(a.out, "[%d] %s (%s)\n", m.ID, m.Content, t.Time.Relative(m.CreatedAt, now))
	}
	return nil
}
