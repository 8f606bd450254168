package cli

import (
	"context"
	"errors"
	"fmt"

	"securepay/internal/common"
)

// getMultiline is an indirection over GetMultiline, swappable in tests.
var getMultiline = GetMultiline

// Add prompts for an amount and a note and records a transaction for the
// authenticated user. Non-numeric and non-positive amounts are rejected
// before anything touches storage.
func (a *App) Add(ctx context.Context) error {
	user, ok := a.session.User()
	if !ok {
		printlnFn("Login required.")
		return nil
	}

	amountText, err := getSimpleText(a.reader, "Transaction amount", a.out)
	if err != nil {
		return err
	}

	amount, err := ParseAmount(amountText)
	if err != nil {
		printlnFn("Amount must be numeric.")
		return nil
	}

	note, err := getMultiline(a.reader, "Transaction note (encrypted at rest)", a.out)
	if err != nil {
		return err
	}

	if err := a.txService.Add(ctx, user.ID, amount, note); err != nil {
		if errors.Is(err, common.ErrorInvalidAmount) {
			printlnFn("Enter a valid positive number.")
			return nil
		}
		printlnFn("Could not add transaction.")
		return err
	}

	printlnFn("Transaction added securely.")
	return nil
}

// List renders the authenticated user's transactions, most recent first.
func (a *App) List(ctx context.Context) error {
	user, ok := a.session.User()
	if !ok {
		printlnFn("Login required.")
		return nil
	}

	entries, err := a.txService.List(ctx, user.ID)
	if err != nil {
		printlnFn("Could not list transactions.")
		return err
	}

	if len(entries) == 0 {
		printlnFn("No transactions yet.")
		return nil
	}

	for _, e := range entries {
		printlnFn(fmt.Sprintf("- %s  %s  (on %s)",
			e.Amount.String(), e.Note, e.CreatedAt.Format("2006-01-02 15:04:05")))
	}
	return nil
}
