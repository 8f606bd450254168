package cli

import "context"

// Profile shows the authenticated user's account details.
func (a *App) Profile(ctx context.Context) error {
	user, ok := a.session.User()
	if !ok {
		printlnFn("Login required.")
		return nil
	}

	email := user.Email
	if email == "" {
		email = "—"
	}

	printlnFn("Username:   " + user.Username)
	printlnFn("Email:      " + email)
	printlnFn("Created at: " + user.CreatedAt.Format("2006-01-02"))
	return nil
}
