package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/saytruth/saytruth/internal/client/i18n"
	"github.com/saytruth/saytruth/internal/client/route"
)

// form is the text-input group of the mounted view. focus == -1 means no
// input captures keys and the view's action keys are live.
type form struct {
	inputs []textinput.Model
	focus  int
	option int // selected expiry option index, create-link form only
}

func newInput(placeholder string, secret bool) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 256
	if secret {
		in.EchoMode = textinput.EchoPassword
	}
	return in
}

// newForm builds the input set a view kind needs. Auth forms start with the
// first input focused; browsing views start unfocused.
func newForm(kind route.Kind, t *i18n.Strings) form {
	var f form
	switch kind {
	case route.KindLogin:
		f.inputs = []textinput.Model{
			newInput(t.Auth.Username, false),
			newInput(t.Auth.SecretAnswer, true),
		}
	case route.KindSignup:
		f.inputs = []textinput.Model{
			newInput(t.Auth.Username, false),
			newInput(t.Auth.Name, false),
			newInput(t.Auth.SecretPhrase, false),
			newInput(t.Auth.SecretAnswer, true),
		}
	case route.KindRecover:
		f.inputs = []textinput.Model{
			newInput(t.Auth.Username, false),
			newInput(t.Auth.SecretAnswer, true),
		}
	case route.KindHome:
		f.inputs = []textinput.Model{newInput(t.Links.LinkName, false)}
	case route.KindSearch:
		f.inputs = []textinput.Model{newInput(t.Profile.SearchPrompt, false)}
	case route.KindPublicLink:
		f.inputs = []textinput.Model{newInput(t.Links.Compose, false)}
	case route.KindProfilePublic:
		f.inputs = []textinput.Model{newInput(t.Profile.SendMessage, false)}
	case route.KindSettings:
		f.inputs = []textinput.Model{
			newInput(t.Auth.SecretPhrase, false),
			newInput(t.Auth.SecretAnswer, true),
		}
	}

	switch kind {
	case route.KindLogin, route.KindSignup, route.KindRecover:
		f.focus = 0
		if len(f.inputs) > 0 {
			f.inputs[0].Focus()
		}
	default:
		f.focus = -1
	}
	return f
}

func (f form) typing() bool { return f.focus >= 0 && f.focus < len(f.inputs) }

func (f form) value(i int) string {
	if i < 0 || i >= len(f.inputs) {
		return ""
	}
	return f.inputs[i].Value()
}

// focusInput moves focus to input i, blurring the rest.
func (f form) focusInput(i int) form {
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
	f.focus = -1
	if i >= 0 && i < len(f.inputs) {
		f.inputs[i].Focus()
		f.focus = i
	}
	return f
}

// next moves focus to the following input, reporting done when focus was on
// the last one (the submit position).
func (f form) next() (form, bool) {
	if f.focus >= len(f.inputs)-1 {
		return f.focusInput(-1), true
	}
	return f.focusInput(f.focus + 1), false
}

func (f form) prev() form {
	if f.focus <= 0 {
		return f
	}
	return f.focusInput(f.focus - 1)
}

// update feeds the key to the focused input.
func (f form) update(msg tea.Msg) (form, tea.Cmd) {
	if !f.typing() {
		return f, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}
