package tui

import (
	"context"
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/saytruth/saytruth/internal/client/api"
	"github.com/saytruth/saytruth/internal/client/expiry"
	"github.com/saytruth/saytruth/internal/client/i18n"
	"github.com/saytruth/saytruth/internal/client/optimistic"
	"github.com/saytruth/saytruth/internal/client/route"
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	if m.form.typing() {
		switch key {
		case "esc":
			m.form = m.form.focusInput(-1)
			return m, nil
		case "enter":
			var done bool
			m.form, done = m.form.next()
			if done {
				return m.submitForm()
			}
			return m, nil
		case "tab":
			if f, done := m.form.next(); !done {
				m.form = f
			} else {
				m.form = m.form.focusInput(0)
			}
			return m, nil
		case "shift+tab":
			m.form = m.form.prev()
			return m, nil
		}
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}

	// tab bar
	switch key {
	case "q":
		return m, tea.Quit
	case "1":
		return m.navigate("/home")
	case "2":
		return m.navigate("/links")
	case "3":
		return m.navigate("/search")
	case "4":
		return m.navigate("/messages")
	case "5":
		return m.navigate("/profile")
	case "0":
		return m.navigate("/settings")
	case "esc":
		return m.navigate("/home")
	}

	switch m.view.Kind {
	case route.KindHome:
		return m.handleHomeKey(key)
	case route.KindLinks:
		return m.handleLinksKey(key)
	case route.KindSearch:
		return m.handleSearchKey(key)
	case route.KindMessages:
		return m.handleMessagesKey(key)
	case route.KindProfileOwn, route.KindProfileGuest, route.KindProfilePublic:
		return m.handleProfileKey(key)
	case route.KindSettings:
		return m.handleSettingsKey(key)
	case route.KindLogin, route.KindSignup, route.KindRecover:
		if key == "e" || key == "enter" {
			m.form = m.form.focusInput(0)
		}
		return m, nil
	case route.KindPublicLink:
		return m.handlePublicLinkKey(key)
	case route.KindPrivateLink:
		return m.handlePrivateLinkKey(key)
	}
	return m, nil
}

// submitForm dispatches the mounted view's form.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	switch m.view.Kind {
	case route.KindLogin:
		m.loading = true
		return m, loginCmd(m.session, m.form.value(0), m.form.value(1))
	case route.KindSignup:
		m.loading = true
		return m, signupCmd(m.session, m.form.value(0), m.form.value(1), m.form.value(2), m.form.value(3))
	case route.KindRecover:
		if m.recoveryHint == "" {
			m.loading = true
			return m, recoverHintCmd(m.session, m.form.value(0))
		}
		m.loading = true
		return m, recoverVerifyCmd(m.session, m.form.value(0), m.form.value(1))
	case route.KindHome:
		return m.submitCreateLink()
	case route.KindSearch:
		m.loading = true
		return m, searchCmd(m.seq, m.users, m.form.value(0))
	case route.KindPublicLink:
		m.loading = true
		return m, sendLinkMessageCmd(m.links, m.view.LinkID, m.form.value(0))
	case route.KindSettings:
		m.loading = true
		return m, updateSecretCmd(m.session, m.form.value(0), m.form.value(1))
	case route.KindProfilePublic:
		if m.profile == nil || m.form.value(0) == "" {
			return m, nil
		}
		m.loading = true
		return m, sendMessageCmd(m.messages, m.profile.Username, m.form.value(0))
	}
	return m, nil
}

func (m Model) submitCreateLink() (tea.Model, tea.Cmd) {
	option := expiry.Options[m.form.option]
	// refused locally, nothing goes over the wire
	if option == expiry.OptPermanent && !m.state.IsAuthenticated {
		return m.flash(m.texts().Auth.GuestPermanent)
	}
	m.loading = true
	return m, createLinkCmd(m.links, m.form.value(0), option)
}

func (m Model) handleHomeKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "e":
		m.form = m.form.focusInput(0)
		return m, nil
	case "left", "h":
		m.form.option = (m.form.option + len(expiry.Options) - 1) % len(expiry.Options)
		return m, nil
	case "right", "l":
		m.form.option = (m.form.option + 1) % len(expiry.Options)
		return m, nil
	case "enter":
		return m.submitCreateLink()
	}
	return m, nil
}

func (m Model) handleLinksKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "up", "k":
		if m.linksCursor > 0 {
			m.linksCursor--
		}
		return m, nil
	case "down", "j":
		if m.linksCursor < len(m.myLinks)-1 {
			m.linksCursor++
		}
		return m, nil
	case "enter":
		if l, ok := m.currentLink(); ok {
			return m.navigate(route.PathFor(route.View{Kind: route.KindPrivateLink, LinkID: l.PrivateID}))
		}
		return m, nil
	case "o":
		if l, ok := m.currentLink(); ok {
			return m.navigate(route.PathFor(route.View{Kind: route.KindPublicLink, LinkID: l.PublicID}))
		}
		return m, nil
	case "d":
		return m.deleteCurrentLink()
	case "n":
		return m.navigate("/home")
	}
	return m, nil
}

func (m Model) currentLink() (api.Link, bool) {
	if m.linksCursor < 0 || m.linksCursor >= len(m.myLinks) {
		return api.Link{}, false
	}
	return m.myLinks[m.linksCursor], true
}

// deleteCurrentLink removes the selected link optimistically; the entity is
// reinserted if the backend call fails.
func (m Model) deleteCurrentLink() (tea.Model, tea.Cmd) {
	l, ok := m.currentLink()
	if !ok {
		return m, nil
	}
	key := fmt.Sprintf("link:%d", l.ID)
	if !m.inflight.Start(key) {
		return m, nil
	}
	m.pendingLinks[key] = l
	m.myLinks = append(m.myLinks[:m.linksCursor:m.linksCursor], m.myLinks[m.linksCursor+1:]...)
	if m.linksCursor >= len(m.myLinks) && m.linksCursor > 0 {
		m.linksCursor--
	}
	return m, deleteLinkCmd(m.links, key, l.ID)
}

func (m Model) handleSearchKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "e", "/":
		m.form = m.form.focusInput(0)
		return m, nil
	case "up", "k":
		if m.resultsCursor > 0 {
			m.resultsCursor--
		}
		return m, nil
	case "down", "j":
		if m.resultsCursor < len(m.results)-1 {
			m.resultsCursor++
		}
		return m, nil
	case "enter":
		if m.resultsCursor >= 0 && m.resultsCursor < len(m.results) {
			p := m.results[m.resultsCursor]
			return m.navigate("/profile/" + strconv.FormatInt(p.ID, 10))
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleMessagesKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "left", "h":
		m.inboxSection = prevSection(m.inboxSection)
		m.inboxCursor = 0
		return m, nil
	case "right", "l":
		m.inboxSection = nextSection(m.inboxSection)
		m.inboxCursor = 0
		return m, nil
	case "up", "k":
		if m.inboxCursor > 0 {
			m.inboxCursor--
		}
		return m, nil
	case "down", "j":
		if m.inbox != nil && m.inboxCursor < len(m.inbox.Section(m.inboxSection))-1 {
			m.inboxCursor++
		}
		return m, nil
	case "p":
		return m.changeCurrentStatus(api.StatusPublic)
	case "u":
		return m.changeCurrentStatus(api.StatusInbox)
	case "f":
		return m.changeCurrentStatus(api.StatusFavorite)
	case "d":
		return m.deleteCurrentMessage()
	case "r":
		m.loading = true
		return m, loadInboxCmd(m.seq, m.messages)
	}
	return m, nil
}

func (m Model) currentMessage() (api.Message, bool) {
	if m.inbox == nil {
		return api.Message{}, false
	}
	section := m.inbox.Section(m.inboxSection)
	if m.inboxCursor < 0 || m.inboxCursor >= len(section) {
		return api.Message{}, false
	}
	return section[m.inboxCursor], true
}

// changeCurrentStatus moves the selected message to the target section
// optimistically. A second action on the same message while one is in
// flight is refused; other messages stay actionable.
func (m Model) changeCurrentStatus(target api.MessageStatus) (tea.Model, tea.Cmd) {
	msg, ok := m.currentMessage()
	if !ok || msg.Status == target {
		return m, nil
	}
	key := fmt.Sprintf("message:%d", msg.ID)
	if !m.inflight.Start(key) {
		return m, nil
	}

	inbox := m.inbox
	m.rollbacks[key] = optimistic.Begin(optimistic.Mutation[api.MessageStatus]{
		Snapshot: func() api.MessageStatus { return msg.Status },
		Apply:    func() { moveMessage(inbox, msg.ID, target) },
		Rollback: func(prev api.MessageStatus) { moveMessage(inbox, msg.ID, prev) },
	})
	m.inboxCursor = clampCursor(m.inboxCursor, len(inbox.Section(m.inboxSection)))
	return m, changeStatusCmd(m.messages, key, msg, target)
}

func (m Model) deleteCurrentMessage() (tea.Model, tea.Cmd) {
	msg, ok := m.currentMessage()
	if !ok {
		return m, nil
	}
	key := fmt.Sprintf("message:%d", msg.ID)
	if !m.inflight.Start(key) {
		return m, nil
	}

	inbox := m.inbox
	m.rollbacks[key] = optimistic.Begin(optimistic.Mutation[api.Message]{
		Snapshot: func() api.Message { return msg },
		Apply:    func() { removeMessage(inbox, msg.ID) },
		Rollback: func(prev api.Message) { insertMessage(inbox, prev) },
	})
	m.inboxCursor = clampCursor(m.inboxCursor, len(inbox.Section(m.inboxSection)))
	return m, deleteMessageCmd(m.messages, key, msg.ID)
}

func (m Model) handleProfileKey(key string) (tea.Model, tea.Cmd) {
	switch m.view.Kind {
	case route.KindProfileGuest:
		switch key {
		case "l":
			return m.navigate("/login")
		case "s":
			return m.navigate("/signup")
		}
	case route.KindProfileOwn:
		switch key {
		case "s":
			return m.navigate("/settings")
		case "o":
			m.state = m.session.Logout(context.Background())
			return m.navigate("/home")
		}
	case route.KindProfilePublic:
		switch key {
		case "f":
			return m.toggleFollow()
		case "m", "e":
			m.form = m.form.focusInput(0)
			return m, nil
		case "l":
			if !m.state.IsAuthenticated {
				return m.navigate("/login")
			}
		}
	}
	return m, nil
}

// toggleFollow flips the follow edge optimistically. Guests see the
// login-to-follow hint instead.
func (m Model) toggleFollow() (tea.Model, tea.Cmd) {
	if !m.state.IsAuthenticated {
		return m.flash(m.texts().Profile.LoginToFollow)
	}
	p := m.profile
	if p == nil {
		return m, nil
	}
	key := fmt.Sprintf("follow:%d", p.ID)
	if !m.inflight.Start(key) {
		return m, nil
	}

	target := !p.IsFollowing
	before := *p
	m.rollbacks[key] = optimistic.Begin(optimistic.Mutation[api.Profile]{
		Snapshot: func() api.Profile { return *p },
		Apply: func() {
			p.IsFollowing = target
			if target {
				p.Followers++
			} else {
				p.Followers--
			}
		},
		Rollback: func(prev api.Profile) { *p = prev },
	})
	return m, setFollowingCmd(m.users, key, before, target)
}

func (m Model) handleSettingsKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "left", "h":
		return m, setLanguageCmd(m.session, cycleLang(m.session.Language(), -1))
	case "right", "l":
		return m, setLanguageCmd(m.session, cycleLang(m.session.Language(), 1))
	case "e":
		m.form = m.form.focusInput(0)
		return m, nil
	}
	return m, nil
}

func (m Model) handlePublicLinkKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "e":
		m.form = m.form.focusInput(0)
		return m, nil
	case "enter":
		if m.form.value(0) != "" {
			m.loading = true
			return m, sendLinkMessageCmd(m.links, m.view.LinkID, m.form.value(0))
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handlePrivateLinkKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "up", "k":
		if m.linkCursor > 0 {
			m.linkCursor--
		}
		return m, nil
	case "down", "j":
		if m.linkCursor < len(m.linkMsgs)-1 {
			m.linkCursor++
		}
		return m, nil
	case "p", "u":
		return m.toggleCurrentLinkMessage(key == "p")
	case "d":
		return m.deleteCurrentLinkMessage()
	case "r":
		m.loading = true
		return m, loadLinkMessagesCmd(m.seq, m.links, m.view.LinkID)
	}
	return m, nil
}

func (m Model) toggleCurrentLinkMessage(published bool) (tea.Model, tea.Cmd) {
	if m.linkCursor < 0 || m.linkCursor >= len(m.linkMsgs) {
		return m, nil
	}
	msg := m.linkMsgs[m.linkCursor]
	if published == (msg.Status == api.StatusPublic) {
		return m, nil
	}
	key := fmt.Sprintf("linkmsg:%d", msg.ID)
	if !m.inflight.Start(key) {
		return m, nil
	}

	msgs := m.linkMsgs
	i := m.linkCursor
	m.rollbacks[key] = optimistic.Begin(optimistic.Mutation[api.MessageStatus]{
		Snapshot: func() api.MessageStatus { return msgs[i].Status },
		Apply: func() {
			if published {
				msgs[i].Status = api.StatusPublic
			} else {
				msgs[i].Status = api.StatusInbox
			}
		},
		Rollback: func(prev api.MessageStatus) { msgs[i].Status = prev },
	})
	return m, toggleLinkMessageCmd(m.links, key, m.view.LinkID, msg, published)
}

func (m Model) deleteCurrentLinkMessage() (tea.Model, tea.Cmd) {
	if m.linkCursor < 0 || m.linkCursor >= len(m.linkMsgs) {
		return m, nil
	}
	msg := m.linkMsgs[m.linkCursor]
	key := fmt.Sprintf("linkmsg:%d", msg.ID)
	if !m.inflight.Start(key) {
		return m, nil
	}
	m.pendingLinkMsgs[key] = msg
	m.linkMsgs = append(m.linkMsgs[:m.linkCursor:m.linkCursor], m.linkMsgs[m.linkCursor+1:]...)
	m.linkCursor = clampCursor(m.linkCursor, len(m.linkMsgs))
	return m, deleteLinkMessageCmd(m.links, key, m.view.LinkID, msg.ID)
}

func clampCursor(cursor, n int) int {
	if cursor >= n {
		cursor = n - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}

func nextSection(s api.MessageStatus) api.MessageStatus {
	switch s {
	case api.StatusInbox:
		return api.StatusPublic
	case api.StatusPublic:
		return api.StatusFavorite
	default:
		return api.StatusInbox
	}
}

func prevSection(s api.MessageStatus) api.MessageStatus {
	switch s {
	case api.StatusInbox:
		return api.StatusFavorite
	case api.StatusFavorite:
		return api.StatusPublic
	default:
		return api.StatusInbox
	}
}

func cycleLang(cur i18n.Lang, delta int) i18n.Lang {
	for i, l := range i18n.Supported {
		if l == cur {
			n := len(i18n.Supported)
			return i18n.Supported[(i+delta+n)%n]
		}
	}
	return i18n.EN
}

// moveMessage relocates message id to the target section of in, updating
// its status. Unknown ids are a no-op.
func moveMessage(in *api.Inbox, id int64, target api.MessageStatus) {
	msg, ok := takeMessage(in, id)
	if !ok {
		return
	}
	msg.Status = target
	insertMessage(in, msg)
}

func removeMessage(in *api.Inbox, id int64) {
	takeMessage(in, id)
}

func takeMessage(in *api.Inbox, id int64) (api.Message, bool) {
	for _, section := range []*[]api.Message{&in.Inbox, &in.Public, &in.Favorite} {
		for i, m := range *section {
			if m.ID == id {
				*section = append((*section)[:i:i], (*section)[i+1:]...)
				return m, true
			}
		}
	}
	return api.Message{}, false
}

func insertMessage(in *api.Inbox, msg api.Message) {
	switch msg.Status {
	case api.StatusPublic:
		in.Public = append(in.Public, msg)
	case api.StatusFavorite:
		in.Favorite = append(in.Favorite, msg)
	default:
		in.Inbox = append(in.Inbox, msg)
	}
}
