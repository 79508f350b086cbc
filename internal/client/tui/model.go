package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/saytruth/saytruth/internal/client/api"
	"github.com/saytruth/saytruth/internal/client/i18n"
	"github.com/saytruth/saytruth/internal/client/optimistic"
	"github.com/saytruth/saytruth/internal/client/route"
	"github.com/saytruth/saytruth/internal/client/session"
)

// Model is the root bubbletea model. Navigation goes through route.Resolve,
// so the auth guards of the web client apply unchanged: a protected view can
// never mount without a session.
//
// seq is the navigation sequence number. Every navigate() bumps it; async
// results and countdown ticks carry the seq they were started under and are
// dropped when it no longer matches. That is both the timer cancellation on
// view teardown and the guard against late responses for a superseded view.
type Model struct {
	session  SessionService
	links    LinkService
	messages MessageService
	users    UserService

	restoring bool
	state     session.State
	view      route.View
	seq       int

	width  int
	height int

	loading  bool
	status   string
	statusID int
	err      error

	nowFn func() time.Time

	inflight  *optimistic.InflightSet
	rollbacks map[string]func()

	// removed entities kept until their delete settles, for reinsertion
	// into the (value-typed) slices on failure
	pendingLinks    map[string]api.Link
	pendingLinkMsgs map[string]api.Message

	inbox        *api.Inbox
	inboxSection api.MessageStatus
	inboxCursor  int

	myLinks     []api.Link
	linksCursor int

	linkInfo   *api.LinkInfo
	linkMsgs   []api.Message
	linkCursor int

	results       []api.Profile
	resultsCursor int
	profile       *api.Profile
	recoveryHint  string

	form form
}

func NewModel(sess SessionService, links LinkService, messages MessageService, users UserService) Model {
	return Model{
		session:         sess,
		links:           links,
		messages:        messages,
		users:           users,
		restoring:       true,
		view:            route.View{Kind: route.KindHome, Tab: route.TabHome},
		nowFn:           time.Now,
		inflight:        optimistic.NewInflightSet(),
		rollbacks:       make(map[string]func()),
		pendingLinks:    make(map[string]api.Link),
		pendingLinkMsgs: make(map[string]api.Message),
		inboxSection:    api.StatusInbox,
	}
}

// Init kicks off the session restoration. Until it resolves the model
// renders a loading view, so the user never sees a wrong auth state.
func (m Model) Init() tea.Cmd {
	return restoreCmd(m.session)
}

// texts returns the active language's string table.
func (m Model) texts() *i18n.Strings {
	return i18n.T(m.session.Language())
}

// navigate resolves path against the current session and mounts the target
// view, bumping seq so anything started by the previous view is dropped.
func (m Model) navigate(path string) (Model, tea.Cmd) {
	authed := m.state.IsAuthenticated
	var selfID int64
	if m.state.CurrentUser != nil {
		selfID = m.state.CurrentUser.ID
	}

	m.view = route.Resolve(path, authed, selfID)
	m.seq++
	m.loading = false
	m.err = nil
	m.status = ""
	m.form = newForm(m.view.Kind, m.texts())

	switch m.view.Kind {
	case route.KindMessages:
		m.inbox = nil
		m.inboxCursor = 0
		m.inboxSection = api.StatusInbox
		m.loading = true
		return m, loadInboxCmd(m.seq, m.messages)
	case route.KindLinks:
		if !authed {
			return m, nil
		}
		m.myLinks = nil
		m.linksCursor = 0
		m.loading = true
		// per-minute recompute keeps list countdowns fresh
		return m, tea.Batch(loadLinksCmd(m.seq, m.links), tickCmd(m.seq, time.Minute))
	case route.KindPublicLink:
		m.linkInfo = nil
		m.loading = true
		return m, tea.Batch(loadLinkInfoCmd(m.seq, m.links, m.view.LinkID), tickCmd(m.seq, time.Second))
	case route.KindPrivateLink:
		m.linkMsgs = nil
		m.linkCursor = 0
		m.loading = true
		return m, tea.Batch(
			loadLinkMessagesCmd(m.seq, m.links, m.view.LinkID),
			tickCmd(m.seq, time.Second),
		)
	case route.KindProfileOwn:
		if m.state.CurrentUser != nil {
			m.profile = nil
			m.loading = true
			return m, loadProfileCmd(m.seq, m.users, m.state.CurrentUser.ID)
		}
		return m, nil
	case route.KindProfilePublic:
		m.profile = nil
		m.loading = true
		return m, loadProfileCmd(m.seq, m.users, m.view.UserID)
	case route.KindSearch:
		m.results = nil
		m.resultsCursor = 0
		return m, nil
	}
	return m, nil
}

// flash shows a transient status line and schedules its removal.
func (m Model) flash(text string) (Model, tea.Cmd) {
	m.status = text
	m.statusID++
	return m, clearStatusCmd(m.statusID, 3*time.Second)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case sessionRestoredMsg:
		m.restoring = false
		m.state = msg.state
		return m.navigate("/home")

	case tea.KeyMsg:
		if m.restoring {
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			return m, nil
		}
		return m.handleKey(msg)

	case loginResultMsg:
		return m.handleAuthResult(msg.state, msg.err, m.texts().Auth.LoginSuccess)

	case signupResultMsg:
		return m.handleAuthResult(msg.state, msg.err, m.texts().Auth.SignupSuccess)

	case recoverHintMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.recoveryHint = msg.hint
		return m, nil

	case recoverResultMsg:
		return m.handleAuthResult(msg.state, msg.err, m.texts().Auth.LoginSuccess)

	case languageSetMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		// re-render everything in the new language
		m.form = newForm(m.view.Kind, m.texts())
		return m, nil

	case inboxLoadedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.inbox = msg.inbox
		m.inboxCursor = 0
		return m, nil

	case linksLoadedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.myLinks = msg.links
		m.linksCursor = 0
		return m, nil

	case linkInfoLoadedMsg:
		if msg.seq != m.seq || m.view.Kind != route.KindPublicLink || m.view.LinkID != msg.publicID {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.linkInfo = msg.info
		return m, nil

	case linkMessagesLoadedMsg:
		if msg.seq != m.seq || m.view.Kind != route.KindPrivateLink || m.view.LinkID != msg.privateID {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.linkMsgs = msg.messages
		m.linkCursor = 0
		return m, nil

	case linkCreatedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.form = newForm(m.view.Kind, m.texts())
		return m.flash(m.texts().Links.PublicURL + " " + msg.link.PublicID)

	case searchResultsMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.results = msg.profiles
		m.resultsCursor = 0
		return m, nil

	case profileLoadedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.profile = msg.profile
		return m, nil

	case statusChangeDoneMsg:
		return m.settleMutation(msg.key, msg.err)

	case messageDeleteDoneMsg:
		return m.settleMutation(msg.key, msg.err)

	case linkDeleteDoneMsg:
		m.inflight.Done(msg.key)
		removed, ok := m.pendingLinks[msg.key]
		delete(m.pendingLinks, msg.key)
		if msg.err != nil {
			if ok {
				m.myLinks = append(m.myLinks, removed)
			}
			return m.flash(api.Detail(msg.err))
		}
		return m, nil

	case linkMessageDeleteDoneMsg:
		m.inflight.Done(msg.key)
		removed, ok := m.pendingLinkMsgs[msg.key]
		delete(m.pendingLinkMsgs, msg.key)
		if msg.err != nil {
			if ok {
				m.linkMsgs = append(m.linkMsgs, removed)
			}
			return m.flash(api.Detail(msg.err))
		}
		return m, nil

	case secretSetMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.form = newForm(m.view.Kind, m.texts())
		return m.flash(m.texts().Common.Save + " ✓")

	case linkMessageToggleDoneMsg:
		return m.settleMutation(msg.key, msg.err)

	case followDoneMsg:
		return m.settleMutation(msg.key, msg.err)

	case sendDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.form = newForm(m.view.Kind, m.texts())
		return m.flash(m.texts().Common.Send + " ✓")

	case tickMsg:
		if msg.seq != m.seq {
			// view torn down; the chain ends here
			return m, nil
		}
		switch m.view.Kind {
		case route.KindPublicLink, route.KindPrivateLink:
			return m, tickCmd(m.seq, time.Second)
		case route.KindLinks:
			return m, tickCmd(m.seq, time.Minute)
		}
		return m, nil

	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil
	}

	return m, nil
}

// settleMutation finishes an optimistic mutation: on failure the entity's
// rollback runs and the backend detail is surfaced; either way the entity
// becomes actionable again.
func (m Model) settleMutation(key string, err error) (tea.Model, tea.Cmd) {
	m.inflight.Done(key)
	rollback := m.rollbacks[key]
	delete(m.rollbacks, key)

	if err != nil {
		if rollback != nil {
			rollback()
		}
		return m.flash(api.Detail(err))
	}
	return m, nil
}

// handleAuthResult applies a login/signup/recovery outcome. Failures keep
// the current view and show the backend detail; success navigates home.
func (m Model) handleAuthResult(state session.State, err error, success string) (tea.Model, tea.Cmd) {
	m.loading = false
	if err != nil {
		m.err = err
		return m, nil
	}
	m.state = state
	m.recoveryHint = ""
	next, cmd := m.navigate("/home")
	next, flashCmd := next.flash(success)
	return next, tea.Batch(cmd, flashCmd)
}
