package tui

import (
	"github.com/saytruth/saytruth/internal/client/api"
	"github.com/saytruth/saytruth/internal/client/session"
)

// Async results arrive as one message type per operation, stamped with the
// view sequence active when the operation started. A result whose seq no
// longer matches the model's is stale: its view was torn down, so the
// message is dropped without touching state.

type sessionRestoredMsg struct {
	state session.State
}

type loginResultMsg struct {
	state session.State
	err   error
}

type signupResultMsg struct {
	state session.State
	err   error
}

type recoverHintMsg struct {
	hint string
	err  error
}

type recoverResultMsg struct {
	state session.State
	err   error
}

type inboxLoadedMsg struct {
	seq   int
	inbox *api.Inbox
	err   error
}

type statusChangeDoneMsg struct {
	key string
	err error
}

type messageDeleteDoneMsg struct {
	key string
	err error
}

type sendDoneMsg struct {
	err error
}

type linksLoadedMsg struct {
	seq   int
	links []api.Link
	err   error
}

type linkCreatedMsg struct {
	link *api.Link
	err  error
}

type linkDeleteDoneMsg struct {
	key string
	err error
}

type linkInfoLoadedMsg struct {
	seq      int
	publicID string
	info     *api.LinkInfo
	err      error
}

type linkMessagesLoadedMsg struct {
	seq       int
	privateID string
	messages  []api.Message
	err       error
}

type linkMessageToggleDoneMsg struct {
	key string
	err error
}

type searchResultsMsg struct {
	seq      int
	profiles []api.Profile
	err      error
}

type profileLoadedMsg struct {
	seq     int
	profile *api.Profile
	err     error
}

type followDoneMsg struct {
	key string
	err error
}

type languageSetMsg struct {
	err error
}

type secretSetMsg struct {
	err error
}

type linkMessageDeleteDoneMsg struct {
	key string
	err error
}

// tickMsg drives the expiration countdowns. seq ties the tick to the view
// that scheduled it; navigating away cancels the chain.
type tickMsg struct {
	seq int
}

type clearStatusMsg struct {
	id int
}
