// Package route maps URL-style paths to views and enforces the navigation
// guards. Resolution is pure: given a path and the current auth state it
// returns the view to mount, never touching the network. A view component
// can therefore never be mounted in a state where it would call an
// authenticated-only endpoint without a session.
package route

import (
	"strconv"
	"strings"
)

// Tab is a bottom-navigation tab.
type Tab string

const (
	TabHome     Tab = "home"
	TabLinks    Tab = "links"
	TabSearch   Tab = "search"
	TabMessages Tab = "messages"
	TabProfile  Tab = "profile"
)

// Kind identifies which view component mounts.
type Kind int

const (
	KindHome Kind = iota
	KindLinks
	KindSearch
	KindMessages
	KindProfileOwn
	KindProfileGuest
	KindProfilePublic
	KindSettings
	KindLogin
	KindSignup
	KindRecover
	KindPublicLink
	KindPrivateLink
)

// View is a resolved navigation target.
type View struct {
	Kind Kind
	Tab  Tab

	// UserID is set for KindProfilePublic.
	UserID int64
	// LinkID is set for KindPublicLink and KindPrivateLink.
	LinkID string
}

// Resolve maps path to the view to mount. authed and selfID describe the
// current session; selfID is ignored when authed is false.
//
// Guards:
//   - protected areas (messages, settings) resolve to the login view for
//     guests, so their components never issue authenticated calls;
//   - /profile and /profile/me resolve to the guest landing for guests;
//   - /profile/<selfID> redirects to the own profile (the backend would
//     otherwise serve the viewer their own public page);
//   - unknown paths fall back to home.
func Resolve(path string, authed bool, selfID int64) View {
	path = strings.TrimSuffix(path, "/")
	if path == "" {
		path = "/home"
	}

	switch path {
	case "/home":
		return View{Kind: KindHome, Tab: TabHome}
	case "/links":
		return View{Kind: KindLinks, Tab: TabLinks}
	case "/search":
		return View{Kind: KindSearch, Tab: TabSearch}
	case "/messages":
		if !authed {
			return View{Kind: KindLogin, Tab: TabMessages}
		}
		return View{Kind: KindMessages, Tab: TabMessages}
	case "/settings":
		if !authed {
			return View{Kind: KindLogin, Tab: TabProfile}
		}
		return View{Kind: KindSettings, Tab: TabProfile}
	case "/login":
		return View{Kind: KindLogin, Tab: TabHome}
	case "/signup":
		return View{Kind: KindSignup, Tab: TabHome}
	case "/recover":
		return View{Kind: KindRecover, Tab: TabHome}
	case "/profile", "/profile/me":
		return profileView(authed)
	}

	if id, ok := strings.CutPrefix(path, "/profile/"); ok {
		return resolveProfile(id, authed, selfID)
	}
	if id, ok := strings.CutPrefix(path, "/link/public/"); ok && id != "" && !strings.Contains(id, "/") {
		return View{Kind: KindPublicLink, Tab: TabHome, LinkID: id}
	}
	if id, ok := strings.CutPrefix(path, "/link/private/"); ok && id != "" && !strings.Contains(id, "/") {
		return View{Kind: KindPrivateLink, Tab: TabHome, LinkID: id}
	}

	return View{Kind: KindHome, Tab: TabHome}
}

func profileView(authed bool) View {
	if !authed {
		return View{Kind: KindProfileGuest, Tab: TabProfile}
	}
	return View{Kind: KindProfileOwn, Tab: TabProfile}
}

// resolveProfile implements the profile area state machine:
// guest-landing, own-profile, or public-profile(userID).
func resolveProfile(id string, authed bool, selfID int64) View {
	if id == "guest" {
		return View{Kind: KindProfileGuest, Tab: TabProfile}
	}
	userID, err := strconv.ParseInt(id, 10, 64)
	if err != nil || userID <= 0 || strings.Contains(id, "/") {
		return View{Kind: KindHome, Tab: TabHome}
	}
	if authed && userID == selfID {
		return profileView(true)
	}
	// Public profiles are viewable regardless of auth.
	return View{Kind: KindProfilePublic, Tab: TabProfile, UserID: userID}
}

// PathFor is the inverse mapping used when the UI navigates
// programmatically.
func PathFor(v View) string {
	switch v.Kind {
	case KindHome:
		return "/home"
	case KindLinks:
		return "/links"
	case KindSearch:
		return "/search"
	case KindMessages:
		return "/messages"
	case KindProfileOwn:
		return "/profile/me"
	case KindProfileGuest:
		return "/profile/guest"
	case KindProfilePublic:
		return "/profile/" + strconv.FormatInt(v.UserID, 10)
	case KindSettings:
		return "/settings"
	case KindLogin:
		return "/login"
	case KindSignup:
		return "/signup"
	case KindRecover:
		return "/recover"
	case KindPublicLink:
		return "/link/public/" + v.LinkID
	case KindPrivateLink:
		return "/link/private/" + v.LinkID
	}
	return "/home"
}
