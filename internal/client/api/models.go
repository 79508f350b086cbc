package api

import "time"

// User is the immutable snapshot the backend returns for the authenticated
// account. It is replaced wholesale on every re-fetch, never patched locally.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name,omitempty"`
	Language  string    `json:"language,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Profile is the public view of a user plus the viewer-specific follow edge.
type Profile struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Name        string `json:"name,omitempty"`
	IsFollowing bool   `json:"is_following"`
	Followers   int    `json:"followers_count"`
	Following   int    `json:"following_count"`
}

// MessageStatus is the server-owned lifecycle state of an inbox message.
type MessageStatus string

const (
	StatusInbox    MessageStatus = "inbox"
	StatusPublic   MessageStatus = "public"
	StatusFavorite MessageStatus = "favorite"
)

// Valid reports whether s is one of the statuses the backend accepts.
func (s MessageStatus) Valid() bool {
	switch s {
	case StatusInbox, StatusPublic, StatusFavorite:
		return true
	}
	return false
}

type Message struct {
	ID        int64         `json:"id"`
	Content   string        `json:"content"`
	Status    MessageStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

// Inbox is the grouped view of the authenticated user's messages.
type Inbox struct {
	Inbox    []Message `json:"inbox"`
	Public   []Message `json:"public"`
	Favorite []Message `json:"favorite"`
}

// Section returns the group for the given status. Unknown statuses return
// an empty slice.
func (in *Inbox) Section(s MessageStatus) []Message {
	switch s {
	case StatusInbox:
		return in.Inbox
	case StatusPublic:
		return in.Public
	case StatusFavorite:
		return in.Favorite
	}
	return nil
}

// Link is an expiring shareable inbox. ExpiresAt == nil denotes a permanent
// link (authenticated owners only).
type Link struct {
	ID          int64      `json:"id"`
	PublicID    string     `json:"public_id"`
	PrivateID   string     `json:"private_id,omitempty"`
	DisplayName string     `json:"display_name,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// LinkInfo is the public face of a link shown on the compose page.
type LinkInfo struct {
	PublicID    string     `json:"public_id"`
	DisplayName string     `json:"display_name,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// TokenResponse is the body returned by signup, login and recovery verify.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// RecoveryHint is the first step of account recovery: the stored secret
// phrase to display back to the user.
type RecoveryHint struct {
	SecretPhrase string `json:"secret_phrase"`
}

// Settings carries the PATCHable account fields. Nil pointers are omitted
// from the request body.
type Settings struct {
	Language     *string `json:"language,omitempty"`
	SecretPhrase *string `json:"secret_phrase,omitempty"`
	SecretAnswer *string `json:"secret_answer,omitempty"`
}
