package cli

import (
	"errors"
	"unicode"

	"github.com/shopspring/decimal"
)

var (
	errPasswordTooShort = errors.New("password must be at least 8 characters")
	errPasswordNoDigit  = errors.New("password must contain a digit")
	errPasswordNoSymbol = errors.New("password must contain a symbol")
)

// CheckPasswordStrength enforces the registration password policy:
// at least 8 characters, at least one digit, and at least one symbol
// (a character that is not a letter, digit, underscore, or whitespace).
func CheckPasswordStrength(password string) error {
	if len(password) < 8 {
		return errPasswordTooShort
	}

	var hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case !unicode.IsLetter(r) && r != '_' && !unicode.IsSpace(r):
			hasSymbol = true
		}
	}

	if !hasDigit {
		return errPasswordNoDigit
	}
	if !hasSymbol {
		return errPasswordNoSymbol
	}
	return nil
}

// ParseAmount converts raw amount text into a decimal. Rejecting non-numeric
// input here keeps the stores free of text-parsing concerns; positivity is
// checked by the transaction service.
func ParseAmount(text string) (decimal.Decimal, error) {
	return decimal.NewFromString(text)
}
