package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Recover(ctx context.Context) error
	Logout(ctx context.Context) error
	UpdateSecret(ctx context.Context) error

	Inbox(ctx context.Context) error
	Publish(ctx context.Context, id string) error
	Unpublish(ctx context.Context, id string) error
	Favorite(ctx context.Context, id string) error
	DeleteMessage(ctx context.Context, id string) error
	ClearSection(ctx context.Context, section string) error
	Send(ctx context.Context) error

	Links(ctx context.Context) error
	CreateLink(ctx context.Context) error
	DeleteLink(ctx context.Context, id string) error
	OpenLink(ctx context.Context, publicID string) error
	LinkMessages(ctx context.Context, privateID string) error
	PublishLinkMessage(ctx context.Context, privateID, id string) error
	UnpublishLinkMessage(ctx context.Context, privateID, id string) error
	DeleteLinkMessage(ctx context.Context, privateID, id string) error

	Search(ctx context.Context, query string) error
	Profile(ctx context.Context, username string) error
	Follow(ctx context.Context, username string) error
	Unfollow(ctx context.Context, username string) error
	Following(ctx context.Context) error
	Followers(ctx context.Context) error

	SetLang(ctx context.Context, code string) error
}

// runREPL starts a simple read–eval–print loop for the SayTruth CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help                  — show available commands
//	  - signup                — create an account
//	  - login                 — authenticate
//	  - recover               — recover an account via the secret phrase
//	  - send                  — send an anonymous message by username
//	  - open <public_id>      — open a link page and optionally send
//	  - search <query>        — find users
//	  - profile <username>    — show a public profile
//	  - lang <en|ar|es>       — switch language
//	  - exit | quit           — leave the program
//
//	Logged in, additionally:
//	  - inbox                 — list received messages by section
//	  - publish <id>          — move a message to the public list
//	  - unpublish <id>        — move a message back to the inbox
//	  - fav <id>              — move a message to favorites
//	  - delmsg <id>           — delete a message
//	  - clear <section>       — delete every message in a section
//	  - links                 — list my links with remaining time
//	  - create                — create a link (interactive lifetime prompt)
//	  - dellink <id>          — delete a link
//	  - inbox-of <private_id> — list messages received on a link
//	  - pub-of <private_id> <id>   — publish a link message
//	  - unpub-of <private_id> <id> — unpublish a link message
//	  - del-of <private_id> <id>   — delete a link message
//	  - follow <username>     — follow a user
//	  - unfollow <username>   — unfollow a user
//	  - following             — list the users I follow
//	  - followers             — list my followers
//	  - secret                — change the secret phrase and answer
//	  - logout                — log out (local)
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("st> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		needArg := func(usage string) (string, bool) {
			if len(args) == 0 {
				printlnFn("Usage: " + usage)
				return "", false
			}
			return args[0], true
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: inbox, publish, unpublish, fav, delmsg, clear, send, links, create, dellink, open, inbox-of, pub-of, unpub-of, del-of, search, profile, follow, unfollow, following, followers, secret, lang, logout, exit")
			} else {
				printlnFn("Available commands: signup, login, recover, send, open, search, profile, lang, exit")
			}

		case "signup":
			_ = a.Signup(ctx)

		case "login":
			_ = a.Login(ctx)

		case "recover":
			_ = a.Recover(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "inbox":
			_ = a.Inbox(ctx)

		case "publish":
			if id, ok := needArg("publish <id>"); ok {
				_ = a.Publish(ctx, id)
			}

		case "unpublish":
			if id, ok := needArg("unpublish <id>"); ok {
				_ = a.Unpublish(ctx, id)
			}

		case "fav":
			if id, ok := needArg("fav <id>"); ok {
				_ = a.Favorite(ctx, id)
			}

		case "delmsg":
			if id, ok := needArg("delmsg <id>"); ok {
				_ = a.DeleteMessage(ctx, id)
			}

		case "clear":
			if section, ok := needArg("clear <inbox|public|favorite>"); ok {
				_ = a.ClearSection(ctx, section)
			}

		case "send":
			_ = a.Send(ctx)

		case "links":
			_ = a.Links(ctx)

		case "create":
			_ = a.CreateLink(ctx)

		case "dellink":
			if id, ok := needArg("dellink <id>"); ok {
				_ = a.DeleteLink(ctx, id)
			}

		case "open":
			if id, ok := needArg("open <public_id>"); ok {
				_ = a.OpenLink(ctx, id)
			}

		case "inbox-of":
			if id, ok := needArg("inbox-of <private_id>"); ok {
				_ = a.LinkMessages(ctx, id)
			}

		case "pub-of":
			if len(args) < 2 {
				printlnFn("Usage: pub-of <private_id> <id>")
			} else {
				_ = a.PublishLinkMessage(ctx, args[0], args[1])
			}

		case "unpub-of":
			if len(args) < 2 {
				printlnFn("Usage: unpub-of <private_id> <id>")
			} else {
				_ = a.UnpublishLinkMessage(ctx, args[0], args[1])
			}

		case "del-of":
			if len(args) < 2 {
				printlnFn("Usage: del-of <private_id> <id>")
			} else {
				_ = a.DeleteLinkMessage(ctx, args[0], args[1])
			}

		case "search":
			if q, ok := needArg("search <query>"); ok {
				_ = a.Search(ctx, strings.Join(append([]string{q}, args[1:]...), " "))
			}

		case "profile":
			if u, ok := needArg("profile <username>"); ok {
				_ = a.Profile(ctx, u)
			}

		case "follow":
			if u, ok := needArg("follow <username>"); ok {
				_ = a.Follow(ctx, u)
			}

		case "unfollow":
			if u, ok := needArg("unfollow <username>"); ok {
				_ = a.Unfollow(ctx, u)
			}

		case "following":
			_ = a.Following(ctx)

		case "followers":
			_ = a.Followers(ctx)

		case "secret":
			_ = a.UpdateSecret(ctx)

		case "lang":
			if code, ok := needArg("lang <en|ar|es>"); ok {
				_ = a.SetLang(ctx, code)
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
