package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/saytruth/saytruth/internal/client/api"
	"github.com/saytruth/saytruth/internal/client/expiry"
	"github.com/saytruth/saytruth/internal/client/i18n"
	"github.com/saytruth/saytruth/internal/client/route"
)

func (m Model) View() string {
	t := m.texts()

	if m.restoring {
		return "\n  " + t.Common.Loading + "\n"
	}

	var b strings.Builder
	b.WriteString(m.tabBar(t))
	b.WriteString("\n\n")

	switch m.view.Kind {
	case route.KindHome:
		b.WriteString(m.homeView(t))
	case route.KindLinks:
		b.WriteString(m.linksView(t))
	case route.KindSearch:
		b.WriteString(m.searchView(t))
	case route.KindMessages:
		b.WriteString(m.messagesView(t))
	case route.KindProfileOwn:
		b.WriteString(m.ownProfileView(t))
	case route.KindProfileGuest:
		b.WriteString(m.guestProfileView(t))
	case route.KindProfilePublic:
		b.WriteString(m.publicProfileView(t))
	case route.KindSettings:
		b.WriteString(m.settingsView(t))
	case route.KindLogin:
		b.WriteString(m.authFormView(t.Auth.LoginTitle))
	case route.KindSignup:
		b.WriteString(m.authFormView(t.Auth.SignupTitle))
	case route.KindRecover:
		b.WriteString(m.recoverView(t))
	case route.KindPublicLink:
		b.WriteString(m.publicLinkView(t))
	case route.KindPrivateLink:
		b.WriteString(m.privateLinkView(t))
	}

	b.WriteString("\n")
	b.WriteString(m.footer(t))
	return b.String()
}

func (m Model) tabBar(t *i18n.Strings) string {
	tabs := []struct {
		tab   route.Tab
		label string
	}{
		{route.TabHome, "1:" + t.Nav.Home},
		{route.TabLinks, "2:" + t.Nav.Links},
		{route.TabSearch, "3:" + t.Nav.Search},
		{route.TabMessages, "4:" + t.Nav.Messages},
		{route.TabProfile, "5:" + t.Nav.Profile},
	}
	parts := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		label := tab.label
		if tab.tab == m.view.Tab {
			label = "[" + label + "]"
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, "  ")
}

func (m Model) footer(t *i18n.Strings) string {
	var b strings.Builder
	if m.loading {
		b.WriteString(t.Common.Loading)
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(t.Common.Error)
		b.WriteString(": ")
		b.WriteString(api.Detail(m.err))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) homeView(t *i18n.Strings) string {
	var b strings.Builder
	b.WriteString(t.Links.CreateTitle)
	b.WriteString("\n\n")
	b.WriteString(m.form.inputs[0].View())
	b.WriteString("\n\n")

	b.WriteString(t.Links.Duration)
	b.WriteString(": ")
	for i, opt := range expiry.Options {
		label := string(opt)
		if opt == expiry.OptPermanent {
			label = t.Links.Permanent
		}
		if i == m.form.option {
			label = "[" + label + "]"
		}
		b.WriteString(label)
		b.WriteString(" ")
	}
	b.WriteString("\n\n")
	b.WriteString("e: " + t.Links.LinkName + " | ←/→: " + t.Links.Duration + " | enter: " + t.Links.Generate + "\n")
	if !m.state.IsAuthenticated {
		b.WriteString(t.Auth.GuestPermanent + "\n")
	}
	return b.String()
}

func (m Model) linksView(t *i18n.Strings) string {
	if !m.state.IsAuthenticated {
		return t.Auth.NotAuthed + "\n"
	}
	if len(m.myLinks) == 0 && !m.loading {
		return t.Links.NoLinks + "\n"
	}

	now := m.nowFn()
	var b strings.Builder
	for i, l := range m.myLinks {
		cursor := "  "
		if i == m.linksCursor {
			cursor = "> "
		}
		name := l.DisplayName
		if name == "" {
			name = l.PublicID
		}
		b.WriteString(fmt.Sprintf("%s%s  %s\n", cursor, name, m.linkCountdown(t, l.ExpiresAt, now)))
	}
	b.WriteString("\nenter: " + t.Nav.Messages + " | o: " + t.Links.PublicURL + " | d: " + t.Common.Delete + " | n: " + t.Links.CreateTitle + "\n")
	return b.String()
}

// linkCountdown renders the coarse (largest unit) remaining time used in
// list rows.
func (m Model) linkCountdown(t *i18n.Strings, expiresAt *time.Time, now time.Time) string {
	d, state := expiry.Remaining(expiresAt, now)
	switch state {
	case expiry.StatePermanent:
		return t.Links.Permanent
	case expiry.StateExpired:
		return t.Links.Expired
	default:
		return t.Links.ExpiresIn + " " + expiry.Split(d).Largest(t.Time.Days, t.Time.Hours, t.Time.Minutes, t.Time.Seconds)
	}
}

// clockCountdown renders the 1-second granularity countdown of the link
// detail pages.
func (m Model) clockCountdown(t *i18n.Strings, expiresAt *time.Time, now time.Time) string {
	d, state := expiry.Remaining(expiresAt, now)
	switch state {
	case expiry.StatePermanent:
		return t.Links.Permanent
	case expiry.StateExpired:
		return t.Links.Expired
	default:
		return t.Links.ExpiresIn + " " + expiry.Split(d).Clock()
	}
}

func (m Model) searchView(t *i18n.Strings) string {
	var b strings.Builder
	b.WriteString(m.form.inputs[0].View())
	b.WriteString("\n\n")
	if len(m.results) == 0 {
		if !m.loading && m.form.value(0) != "" {
			b.WriteString(t.Profile.NoResults + "\n")
		}
		return b.String()
	}
	for i, p := range m.results {
		cursor := "  "
		if i == m.resultsCursor {
			cursor = "> "
		}
		name := p.Name
		if name == "" {
			name = p.Username
		}
		b.WriteString(fmt.Sprintf("%s%s (@%s)\n", cursor, name, p.Username))
	}
	b.WriteString("\n/: " + t.Profile.SearchPrompt + " | enter: " + t.Nav.Profile + "\n")
	return b.String()
}

func (m Model) messagesView(t *i18n.Strings) string {
	var b strings.Builder

	sections := []api.MessageStatus{api.StatusInbox, api.StatusPublic, api.StatusFavorite}
	labels := []string{t.Messages.Inbox, t.Messages.Public, t.Messages.Favorite}
	parts := make([]string, len(sections))
	for i, s := range sections {
		label := labels[i]
		if s == m.inboxSection {
			label = "[" + label + "]"
		}
		parts[i] = label
	}
	b.WriteString(strings.Join(parts, "  "))
	b.WriteString("\n\n")

	if m.inbox == nil {
		return b.String()
	}
	msgs := m.inbox.Section(m.inboxSection)
	if len(msgs) == 0 {
		b.WriteString(t.Messages.Empty + "\n")
		return b.String()
	}
	now := m.nowFn()
	for i, msg := range msgs {
		cursor := "  "
		if i == m.inboxCursor {
			cursor = "> "
		}
		busy := ""
		if m.inflight.Busy(fmt.Sprintf("message:%d", msg.ID)) {
			busy = " …"
		}
		b.WriteString(fmt.Sprintf("%s%s  (%s)%s\n", cursor, msg.Content, t.Time.Relative(msg.CreatedAt, now), busy))
	}
	b.WriteString("\np: " + t.Messages.MakePublic + " | u: " + t.Messages.MakeInbox + " | f: " + t.Messages.AddFav + " | d: " + t.Messages.Delete + "\n")
	return b.String()
}

func (m Model) ownProfileView(t *i18n.Strings) string {
	var b strings.Builder
	if u := m.state.CurrentUser; u != nil {
		name := u.Name
		if name == "" {
			name = u.Username
		}
		b.WriteString(fmt.Sprintf("%s (@%s)\n", name, u.Username))
	}
	if m.profile != nil {
		b.WriteString(fmt.Sprintf("%s: %d  %s: %d\n", t.Profile.Followers, m.profile.Followers, t.Profile.Following, m.profile.Following))
	}
	b.WriteString("\ns: " + t.Nav.Settings + " | o: " + t.Auth.Logout + "\n")
	return b.String()
}

func (m Model) guestProfileView(t *i18n.Strings) string {
	var b strings.Builder
	b.WriteString(t.Profile.GuestTitle + "\n")
	b.WriteString(t.Profile.GuestSubtitle + "\n\n")
	b.WriteString("l: " + t.Auth.Login + " | s: " + t.Auth.Signup + "\n")
	return b.String()
}

func (m Model) publicProfileView(t *i18n.Strings) string {
	if m.profile == nil {
		return ""
	}
	p := m.profile
	name := p.Name
	if name == "" {
		name = p.Username
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s (@%s)\n", name, p.Username))
	b.WriteString(fmt.Sprintf("%s: %d  %s: %d\n\n", t.Profile.Followers, p.Followers, t.Profile.Following, p.Following))
	b.WriteString(m.form.inputs[0].View())
	b.WriteString("\n\n")
	if m.state.IsAuthenticated {
		action := t.Profile.Follow
		if p.IsFollowing {
			action = t.Profile.Unfollow
		}
		b.WriteString("f: " + action + " | m: " + t.Profile.SendMessage + "\n")
	} else {
		b.WriteString("m: " + t.Profile.SendMessage + " | " + t.Profile.LoginToFollow + " (l: " + t.Auth.Login + ")\n")
	}
	return b.String()
}

func (m Model) settingsView(t *i18n.Strings) string {
	var b strings.Builder
	b.WriteString(t.Nav.Settings + "\n\n")
	cur := m.session.Language()
	parts := make([]string, 0, len(i18n.Supported))
	for _, l := range i18n.Supported {
		label := string(l)
		if l == cur {
			label = "[" + label + "]"
		}
		parts = append(parts, label)
	}
	b.WriteString(strings.Join(parts, "  "))
	b.WriteString("\n\n")
	for i := range m.form.inputs {
		b.WriteString(m.form.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n←/→: " + t.Nav.Settings + " | e: " + t.Auth.SecretPhrase + " | enter: " + t.Common.Save + "\n")
	return b.String()
}

func (m Model) authFormView(title string) string {
	var b strings.Builder
	b.WriteString(title + "\n\n")
	for i := range m.form.inputs {
		b.WriteString(m.form.inputs[i].View())
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) recoverView(t *i18n.Strings) string {
	var b strings.Builder
	b.WriteString(t.Auth.RecoverTitle + "\n\n")
	b.WriteString(m.form.inputs[0].View())
	b.WriteString("\n")
	if m.recoveryHint != "" {
		b.WriteString("\n" + t.Auth.RecoverHint + ": " + m.recoveryHint + "\n\n")
		b.WriteString(m.form.inputs[1].View())
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) publicLinkView(t *i18n.Strings) string {
	if m.linkInfo == nil {
		return ""
	}
	name := m.linkInfo.DisplayName
	if name == "" {
		name = m.linkInfo.PublicID
	}
	var b strings.Builder
	b.WriteString(name + "\n")
	b.WriteString(m.clockCountdown(t, m.linkInfo.ExpiresAt, m.nowFn()) + "\n\n")
	b.WriteString(m.form.inputs[0].View())
	b.WriteString("\n\ne: " + t.Links.Compose + " | enter: " + t.Common.Send + "\n")
	return b.String()
}

func (m Model) privateLinkView(t *i18n.Strings) string {
	var b strings.Builder
	b.WriteString(t.Nav.Messages + " " + m.view.LinkID + "\n\n")
	if len(m.linkMsgs) == 0 && !m.loading {
		b.WriteString(t.Links.NoMessages + "\n")
		return b.String()
	}
	now := m.nowFn()
	for i, msg := range m.linkMsgs {
		cursor := "  "
		if i == m.linkCursor {
			cursor = "> "
		}
		public := ""
		if msg.Status == api.StatusPublic {
			public = " [" + t.Messages.Public + "]"
		}
		b.WriteString(fmt.Sprintf("%s%s  (%s)%s\n", cursor, msg.Content, t.Time.Relative(msg.CreatedAt, now), public))
	}
	b.WriteString("\np/u: " + t.Messages.MakePublic + " | d: " + t.Messages.Delete + "\n")
	return b.String()
}
