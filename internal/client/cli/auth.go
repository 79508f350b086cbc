package cli

import (
	"context"
	"fmt"

	"github.com/saytruth/saytruth/internal/common"
)

// getSimpleText and getSecret are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getSecret = GetSecret

// Signup prompts for the account fields and creates a new account. The
// successful signup logs the user in immediately. The secret answer byte
// slice is wiped before returning.
func (a *App) Signup(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Choose a username", a.out)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Display name (optional)", a.out)
	if err != nil {
		return err
	}
	phrase, err := getSimpleText(a.reader, "Secret phrase (your recovery hint)", a.out)
	if err != nil {
		return err
	}
	answer, err := getSecret("Secret answer", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(answer)

	state, err := a.session.Signup(ctx, username, name, phrase, string(answer))
	if err != nil {
		fmt.Fprintf(a.out, "Signup failed: %s\n", err.Error())
		return err
	}
	if state.CurrentUser != nil {
		fmt.Fprintf(a.out, "Welcome, %s!\n", state.CurrentUser.Username)
	}
	return nil
}

// Login prompts for the username and secret answer and authenticates. The
// secret answer is wiped before returning. A failed login leaves the current
// session untouched.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	answer, err := getSecret("Secret answer", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(answer)

	state, err := a.session.Login(ctx, username, string(answer))
	if err != nil {
		fmt.Fprintf(a.out, "Login failed: %s\n", err.Error())
		return err
	}
	if state.CurrentUser != nil {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", state.CurrentUser.Username)
	}
	return nil
}

// Recover runs the two-step account recovery: show the stored secret phrase
// as the hint, then verify the secret answer. A correct answer logs in.
func (a *App) Recover(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}

	hint, err := a.session.Recover(ctx, username)
	if err != nil {
		fmt.Fprintf(a.out, "Recovery failed: %s\n", err.Error())
		return err
	}
	fmt.Fprintf(a.out, "Your secret phrase: %s\n", hint)

	answer, err := getSecret("Secret answer", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(answer)

	state, err := a.session.VerifyRecovery(ctx, username, string(answer))
	if err != nil {
		fmt.Fprintf(a.out, "Recovery failed: %s\n", err.Error())
		return err
	}
	if state.CurrentUser != nil {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", state.CurrentUser.Username)
	}
	return nil
}

// UpdateSecret replaces the account's secret phrase and answer. The new
// answer is wiped before returning.
func (a *App) UpdateSecret(ctx context.Context) error {
	phrase, err := getSimpleText(a.reader, "New secret phrase (your recovery hint)", a.out)
	if err != nil {
		return err
	}
	answer, err := getSecret("New secret answer", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(answer)

	if err := a.session.UpdateSecret(ctx, phrase, string(answer)); err != nil {
		fmt.Fprintf(a.out, "Update failed: %s\n", err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Secret updated.")
	return nil
}

// Logout drops the session locally; no server round trip.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	a.lastInbox = nil
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
