// Package cli provides the line-mode SayTruth client.
//
// It wires configuration, local storage, the API services and an interactive
// REPL. Typical flow: restore the persisted session, then execute user
// commands against the backend.
//
// Key features:
//   - Signup / Login / Recover / Logout
//   - Inbox with publish, unpublish, favorite, delete and per-section clear
//   - Shareable links: create with a lifetime, list with remaining time,
//     open a public link page and send anonymously
//   - Link message management: publish, unpublish and delete per link
//   - User search, follow/unfollow, follower and following lists,
//     anonymous messages by username
//   - Language switching (EN/AR/ES) and secret phrase updates
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
