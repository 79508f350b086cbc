// Package i18n holds the localized UI strings. Every language is a complete
// Strings literal, so a missing translation is a compile error rather than a
// silent empty lookup.
package i18n

import (
	"os"
	"strings"
)

// Lang is a supported language tag.
type Lang string

const (
	EN Lang = "EN"
	AR Lang = "AR"
	ES Lang = "ES"
)

// Supported lists the languages in display order.
var Supported = []Lang{EN, AR, ES}

// Parse validates a stored language tag, ok=false for anything unknown.
func Parse(s string) (Lang, bool) {
	switch Lang(strings.ToUpper(s)) {
	case EN:
		return EN, true
	case AR:
		return AR, true
	case ES:
		return ES, true
	}
	return "", false
}

// Detect maps the process locale (LC_ALL, then LANG) to a supported
// language, defaulting to EN.
func Detect() Lang {
	locale := os.Getenv("LC_ALL")
	if locale == "" {
		locale = os.Getenv("LANG")
	}
	code := strings.ToUpper(strings.SplitN(locale, "_", 2)[0])
	// Strip encodings like "es.UTF-8".
	code = strings.SplitN(code, ".", 2)[0]
	switch code {
	case "AR":
		return AR
	case "ES":
		return ES
	}
	return EN
}

// RTL reports whether the language is rendered right-to-left.
func (l Lang) RTL() bool { return l == AR }

// T returns the string table for l, falling back to English.
func T(l Lang) *Strings {
	switch l {
	case AR:
		return &Arabic
	case ES:
		return &Spanish
	default:
		return &English
	}
}

// Strings is the full string table one language must provide.
type Strings struct {
	Common   CommonStrings
	Auth     AuthStrings
	Nav      NavStrings
	Links    LinkStrings
	Messages MessageStrings
	Profile  ProfileStrings
	Time     TimeStrings
}

type CommonStrings struct {
	Loading string
	Error   string
	Retry   string
	Cancel  string
	Save    string
	Delete  string
	Send    string
	Copied  string
	Back    string
}

type AuthStrings struct {
	Login           string
	Signup          string
	Logout          string
	LoginTitle      string
	SignupTitle     string
	Username        string
	Name            string
	SecretPhrase    string
	SecretAnswer    string
	Forgot          string
	RecoverTitle    string
	RecoverHint     string
	BackToLogin     string
	LoginSuccess    string
	SignupSuccess   string
	SessionExpired  string
	NotAuthed       string
	GuestPermanent  string
	InvalidLanguage string
}

type NavStrings struct {
	Home     string
	Links    string
	Search   string
	Messages string
	Profile  string
	Settings string
}

type LinkStrings struct {
	CreateTitle string
	LinkName    string
	Duration    string
	Generate    string
	Permanent   string
	Expired     string
	ExpiresIn   string
	PublicURL   string
	PrivateURL  string
	NoLinks     string
	NoMessages  string
	Compose     string
}

type MessageStrings struct {
	Inbox      string
	Public     string
	Favorite   string
	Empty      string
	Anonymous  string
	MakePublic string
	MakeInbox  string
	AddFav     string
	Delete     string
	DeleteAll  string
}

type ProfileStrings struct {
	Follow        string
	Unfollow      string
	Following     string
	Followers     string
	LoginToFollow string
	GuestTitle    string
	GuestSubtitle string
	SendMessage   string
	SearchPrompt  string
	NoResults     string
}

// TimeStrings carries countdown unit names and relative-timestamp
// formatters. The formatter fields make every language specify its own
// phrasing, still checked at compile time.
type TimeStrings struct {
	Days    string
	Hours   string
	Minutes string
	Seconds string
	JustNow string

	MinutesAgo func(n int) string
	HoursAgo   func(n int) string
	DaysAgo    func(n int) string
}
