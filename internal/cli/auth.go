package cli

import (
	"context"
	"errors"

	"securepay/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for username, email, password, and confirmation, validates
// the input, and attempts to create the account. All validation failures and
// the duplicate-username conflict are rendered as user-visible messages; no
// state changes in those cases.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Email (optional)", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password: ", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirmation, err := getPassword("Confirm password: ", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirmation)

	if username == "" || len(password) == 0 {
		printlnFn("Fields cannot be empty.")
		return nil
	}
	if string(password) != string(confirmation) {
		printlnFn("Passwords do not match.")
		return nil
	}
	if err := CheckPasswordStrength(string(password)); err != nil {
		printlnFn("Password must be 8+ chars, include digit & symbol.")
		return nil
	}

	if _, err := a.userService.Register(ctx, username, string(password), email); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			printlnFn("Username already exists.")
			return nil
		}
		printlnFn("Registration failed.")
		return err
	}

	printlnFn("Account created successfully! Please login.")
	return nil
}

// Login prompts for credentials and authenticates the session. A repeated
// login while already authenticated is a no-op with an informational message.
// Unknown usernames and wrong passwords produce the same generic message.
func (a *App) Login(ctx context.Context) error {
	if user, ok := a.session.User(); ok {
		printlnFn("Already logged in as " + user.Username + ".")
		return nil
	}

	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password: ", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.userService.Verify(ctx, username, string(password))
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			printlnFn("Invalid credentials.")
			return nil
		}
		printlnFn("Login failed.")
		return err
	}

	a.session.Login(user)
	printlnFn("Welcome back, " + user.Username + "!")
	return nil
}

// Logout clears the authenticated identity.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout()
	a.logger.Info(ctx, "user logged out")
	printlnFn("You have logged out successfully.")
	return nil
}
