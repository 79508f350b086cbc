package cli

import (
	"context"
	"fmt"

	"github.com/saytruth/saytruth/internal/client/api"
	"github.com/saytruth/saytruth/internal/client/i18n"
)

// Search finds users by name and prints them.
func (a *App) Search(ctx context.Context, query string) error {
	profiles, err := a.users.Search(ctx, query)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", api.Detail(err))
		return err
	}

	t := i18n.T(a.session.Language())
	if len(profiles) == 0 {
		fmt.Fprintln(a.out, t.Profile.NoResults)
		return nil
	}
	for _, p := range profiles {
		a.printProfileLine(p)
	}
	return nil
}

// Profile prints a user's public profile, looked up by username.
func (a *App) Profile(ctx context.Context, username string) error {
	p, err := a.users.ByUsername(ctx, username)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", api.Detail(err))
		return err
	}

	t := i18n.T(a.session.Language())
	a.printProfileLine(*p)
	fmt.Fprintf(a.out, "  %s: %d  %s: %d\n", t.Profile.Followers, p.Followers, t.Profile.Following, p.Following)
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "  "+t.Profile.LoginToFollow)
	}
	return nil
}

// Follow follows the named user; already-following is a quiet no-op.
func (a *App) Follow(ctx context.Context, username string) error {
	return a.setFollowing(ctx, username, true)
}

// Unfollow unfollows the named user.
func (a *App) Unfollow(ctx context.Context, username string) error {
	return a.setFollowing(ctx, username, false)
}

// Following lists the users the current account follows.
func (a *App) Following(ctx context.Context) error {
	profiles, err := a.users.Following(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", api.Detail(err))
		return err
	}
	a.printProfileList(profiles)
	return nil
}

// Followers lists the users following the current account.
func (a *App) Followers(ctx context.Context) error {
	profiles, err := a.users.Followers(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", api.Detail(err))
		return err
	}
	a.printProfileList(profiles)
	return nil
}

func (a *App) printProfileList(profiles []api.Profile) {
	if len(profiles) == 0 {
		fmt.Fprintln(a.out, i18n.T(a.session.Language()).Profile.NoResults)
		return
	}
	for _, p := range profiles {
		a.printProfileLine(p)
	}
}

func (a *App) setFollowing(ctx context.Context, username string, follow bool) error {
	p, err := a.users.ByUsername(ctx, username)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", api.Detail(err))
		return err
	}
	if err := a.users.SetFollowing(ctx, *p, follow); err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", api.Detail(err))
		return err
	}
	fmt.Fprintln(a.out, "Done.")
	return nil
}

func (a *App) printProfileLine(p api.Profile) {
	name := p.Name
	if name == "" {
		name = p.Username
	}
	marker := ""
	if p.IsFollowing {
		marker = " *"
	}
	fmt.Fprintf(a.out, "[%d] %s (@%s)%s\n", p.ID, name, p.Username, marker)
}
