package cli

import (
	"context"
	"fmt"

	"github.com/saytruth/saytruth/internal/client/api"
	"github.com/saytruth/saytruth/internal/client/i18n"
)

// SetLang switches the UI language. The choice is persisted locally and,
// for authenticated users, pushed to the account settings.
func (a *App) SetLang(ctx context.Context, code string) error {
	lang, ok := i18n.Parse(code)
	if !ok {
		fmt.Fprintf(a.out, "%s\n", i18n.T(a.session.Language()).Auth.InvalidLanguage)
		return api.ErrValidation
	}
	if err := a.session.SetLanguage(ctx, lang); err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", api.Detail(err))
		return err
	}
	fmt.Fprintf(a.out, "Language set to %s\n", lang)
	return nil
}
