package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/saytruth/saytruth/internal/client/api"
	"github.com/saytruth/saytruth/internal/client/expiry"
	"github.com/saytruth/saytruth/internal/client/i18n"
)

const requestTimeout = 10 * time.Second

func withTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

func restoreCmd(sess SessionService) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		return sessionRestoredMsg{state: sess.Restore(ctx)}
	}
}

func loginCmd(sess SessionService, username, answer string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		state, err := sess.Login(ctx, username, answer)
		return loginResultMsg{state: state, err: err}
	}
}

func signupCmd(sess SessionService, username, name, phrase, answer string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		state, err := sess.Signup(ctx, username, name, phrase, answer)
		return signupResultMsg{state: state, err: err}
	}
}

func recoverHintCmd(sess SessionService, username string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		hint, err := sess.Recover(ctx, username)
		return recoverHintMsg{hint: hint, err: err}
	}
}

func recoverVerifyCmd(sess SessionService, username, answer string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		state, err := sess.VerifyRecovery(ctx, username, answer)
		return recoverResultMsg{state: state, err: err}
	}
}

func setLanguageCmd(sess SessionService, lang i18n.Lang) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		return languageSetMsg{err: sess.SetLanguage(ctx, lang)}
	}
}

func loadInboxCmd(seq int, messages MessageService) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		in, err := messages.Inbox(ctx)
		return inboxLoadedMsg{seq: seq, inbox: in, err: err}
	}
}

func changeStatusCmd(messages MessageService, key string, m api.Message, target api.MessageStatus) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		return statusChangeDoneMsg{key: key, err: messages.ChangeStatus(ctx, m, target)}
	}
}

func deleteMessageCmd(messages MessageService, key string, messageID int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		return messageDeleteDoneMsg{key: key, err: messages.Delete(ctx, messageID)}
	}
}

func sendMessageCmd(messages MessageService, receiver, content string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		return sendDoneMsg{err: messages.Send(ctx, receiver, content)}
	}
}

func loadLinksCmd(seq int, links LinkService) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		list, err := links.Mine(ctx)
		return linksLoadedMsg{seq: seq, links: list, err: err}
	}
}

func createLinkCmd(links LinkService, name string, option expiry.Option) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		link, err := links.Create(ctx, name, option)
		return linkCreatedMsg{link: link, err: err}
	}
}

func deleteLinkCmd(links LinkService, key string, linkID int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		return linkDeleteDoneMsg{key: key, err: links.Delete(ctx, linkID)}
	}
}

func loadLinkInfoCmd(seq int, links LinkService, publicID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		info, err := links.Info(ctx, publicID)
		return linkInfoLoadedMsg{seq: seq, publicID: publicID, info: info, err: err}
	}
}

func sendLinkMessageCmd(links LinkService, publicID, content string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		return sendDoneMsg{err: links.Send(ctx, publicID, content)}
	}
}

func loadLinkMessagesCmd(seq int, links LinkService, privateID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		msgs, err := links.Messages(ctx, privateID)
		return linkMessagesLoadedMsg{seq: seq, privateID: privateID, messages: msgs, err: err}
	}
}

func toggleLinkMessageCmd(links LinkService, key, privateID string, m api.Message, published bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		return linkMessageToggleDoneMsg{key: key, err: links.SetMessagePublished(ctx, privateID, m, published)}
	}
}

func deleteLinkMessageCmd(links LinkService, key, privateID string, messageID int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		return linkMessageDeleteDoneMsg{key: key, err: links.DeleteMessage(ctx, privateID, messageID)}
	}
}

func updateSecretCmd(sess SessionService, phrase, answer string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		return secretSetMsg{err: sess.UpdateSecret(ctx, phrase, answer)}
	}
}

func searchCmd(seq int, users UserService, query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		profiles, err := users.Search(ctx, query)
		return searchResultsMsg{seq: seq, profiles: profiles, err: err}
	}
}

func loadProfileCmd(seq int, users UserService, userID int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		p, err := users.Profile(ctx, userID)
		return profileLoadedMsg{seq: seq, profile: p, err: err}
	}
}

func setFollowingCmd(users UserService, key string, p api.Profile, follow bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()
		return followDoneMsg{key: key, err: users.SetFollowing(ctx, p, follow)}
	}
}

func tickCmd(seq int, every time.Duration) tea.Cmd {
	return tea.Tick(every, func(time.Time) tea.Msg {
		return tickMsg{seq: seq}
	})
}

func clearStatusCmd(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}
