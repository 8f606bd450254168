package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	_ "modernc.org/sqlite"

	"securepay/internal/common"
	"securepay/internal/cryptox"
	"securepay/internal/logging"
	"securepay/internal/repositories/transactions"
	"securepay/internal/repositories/users"
	"securepay/internal/services"
	"securepay/internal/session"
)

// testIO replaces the interactive input seams with scripted answers and
// collects everything printed to the user.
type testIO struct {
	textAnswers     []string
	passwordAnswers []string
	printed         []string
}

func (s *testIO) install(t *testing.T) {
	t.Helper()

	origText, origPassword, origMultiline, origPrintln := getSimpleText, getPassword, getMultiline, printlnFn
	t.Cleanup(func() {
		getSimpleText, getPassword, getMultiline, printlnFn = origText, origPassword, origMultiline, origPrintln
	})

	next := func() string {
		require.NotEmpty(t, s.textAnswers, "ran out of scripted text answers")
		answer := s.textAnswers[0]
		s.textAnswers = s.textAnswers[1:]
		return answer
	}

	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		return next(), nil
	}
	getMultiline = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		return next(), nil
	}
	getPassword = func(_ string, _ io.Writer) ([]byte, error) {
		require.NotEmpty(t, s.passwordAnswers, "ran out of scripted password answers")
		answer := s.passwordAnswers[0]
		s.passwordAnswers = s.passwordAnswers[1:]
		return []byte(answer), nil
	}
	printlnFn = func(args ...any) (int, error) {
		s.printed = append(s.printed, fmt.Sprintln(args...))
		return 0, nil
	}
}

func (s *testIO) output() string {
	return strings.Join(s.printed, "")
}

func newTestApp(t *testing.T) *App {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE users (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  username TEXT NOT NULL UNIQUE,
  password_hash BLOB NOT NULL,
  email TEXT NOT NULL DEFAULT '',
  created_at TIMESTAMP NOT NULL
);
`)
	require.NoError(t, err)

	_, err = db.Exec(`
CREATE TABLE transactions (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id INTEGER NOT NULL REFERENCES users(id),
  amount TEXT NOT NULL,
  note BLOB NOT NULL,
  note_nonce BLOB NOT NULL,
  created_at TIMESTAMP NOT NULL
);
`)
	require.NoError(t, err)

	logger := logging.NewJSONLogger(io.Discard)
	key := common.GenerateRandByteArray(cryptox.KeySize)

	return &App{
		logger:      logger,
		userService: services.NewUserService(users.NewSQLiteRepository(db), logger, bcrypt.MinCost),
		txService:   services.NewTransactionService(transactions.NewSQLiteRepository(db), key, logger),
		session:     session.New(),
		reader:      bufio.NewReader(strings.NewReader("")),
		out:         io.Discard,
	}
}

func TestEndToEndScenario(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	tio := &testIO{
		textAnswers:     []string{"alice", "alice@example.com"},
		passwordAnswers: []string{"Secret1!", "Secret1!"},
	}
	tio.install(t)

	// register
	require.NoError(t, app.Register(ctx))
	assert.Contains(t, tio.output(), "Account created successfully! Please login.")

	// login
	tio.textAnswers = []string{"alice"}
	tio.passwordAnswers = []string{"Secret1!"}
	require.NoError(t, app.Login(ctx))
	assert.Contains(t, tio.output(), "Welcome back, alice!")
	user, ok := app.session.User()
	require.True(t, ok)
	assert.Equal(t, "alice", user.Username)

	// add a transaction
	tio.textAnswers = []string{"42.50", "lunch"}
	require.NoError(t, app.Add(ctx))
	assert.Contains(t, tio.output(), "Transaction added securely.")

	// list shows the decrypted entry
	tio.printed = nil
	require.NoError(t, app.List(ctx))
	assert.Contains(t, tio.output(), "42.5")
	assert.Contains(t, tio.output(), "lunch")

	// logout clears the session
	require.NoError(t, app.Logout(ctx))
	assert.False(t, app.session.IsAuthenticated())

	// listing now requires a fresh login
	tio.printed = nil
	require.NoError(t, app.List(ctx))
	assert.Contains(t, tio.output(), "Login required.")
}

func TestRegister_PasswordMismatch(t *testing.T) {
	app := newTestApp(t)

	tio := &testIO{
		textAnswers:     []string{"alice", ""},
		passwordAnswers: []string{"Secret1!", "Different2#"},
	}
	tio.install(t)

	require.NoError(t, app.Register(context.Background()))
	assert.Contains(t, tio.output(), "Passwords do not match.")
}

func TestRegister_WeakPassword(t *testing.T) {
	app := newTestApp(t)

	tio := &testIO{
		textAnswers:     []string{"alice", ""},
		passwordAnswers: []string{"abcdefgh", "abcdefgh"},
	}
	tio.install(t)

	require.NoError(t, app.Register(context.Background()))
	assert.Contains(t, tio.output(), "Password must be 8+ chars, include digit & symbol.")
}

func TestRegister_EmptyFields(t *testing.T) {
	app := newTestApp(t)

	tio := &testIO{
		textAnswers:     []string{"", ""},
		passwordAnswers: []string{"Secret1!", "Secret1!"},
	}
	tio.install(t)

	require.NoError(t, app.Register(context.Background()))
	assert.Contains(t, tio.output(), "Fields cannot be empty.")
}

func TestRegister_DuplicateUsername(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	tio := &testIO{
		textAnswers:     []string{"alice", "", "alice", ""},
		passwordAnswers: []string{"Secret1!", "Secret1!", "Other2#x", "Other2#x"},
	}
	tio.install(t)

	require.NoError(t, app.Register(ctx))
	require.NoError(t, app.Register(ctx))
	assert.Contains(t, tio.output(), "Username already exists.")
}

func TestLogin_InvalidCredentialsIndistinguishable(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	tio := &testIO{
		textAnswers:     []string{"alice", ""},
		passwordAnswers: []string{"Secret1!", "Secret1!"},
	}
	tio.install(t)
	require.NoError(t, app.Register(ctx))

	// wrong password for a real account
	tio.printed = nil
	tio.textAnswers = []string{"alice"}
	tio.passwordAnswers = []string{"wrong-pass"}
	require.NoError(t, app.Login(ctx))
	wrongPw := tio.output()

	// unknown account entirely
	tio.printed = nil
	tio.textAnswers = []string{"nobody"}
	tio.passwordAnswers = []string{"Secret1!"}
	require.NoError(t, app.Login(ctx))
	unknown := tio.output()

	assert.Contains(t, wrongPw, "Invalid credentials.")
	assert.Equal(t, wrongPw, unknown)
	assert.False(t, app.session.IsAuthenticated())
}

func TestLogin_AlreadyLoggedInIsInformational(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	tio := &testIO{
		textAnswers:     []string{"alice", ""},
		passwordAnswers: []string{"Secret1!", "Secret1!"},
	}
	tio.install(t)
	require.NoError(t, app.Register(ctx))

	tio.textAnswers = []string{"alice"}
	tio.passwordAnswers = []string{"Secret1!"}
	require.NoError(t, app.Login(ctx))

	tio.printed = nil
	require.NoError(t, app.Login(ctx))
	assert.Contains(t, tio.output(), "Already logged in as alice.")
}

func TestAdd_NonNumericAmount(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	tio := &testIO{
		textAnswers:     []string{"alice", ""},
		passwordAnswers: []string{"Secret1!", "Secret1!"},
	}
	tio.install(t)
	require.NoError(t, app.Register(ctx))
	tio.textAnswers = []string{"alice"}
	tio.passwordAnswers = []string{"Secret1!"}
	require.NoError(t, app.Login(ctx))

	tio.printed = nil
	tio.textAnswers = []string{"not-a-number"}
	require.NoError(t, app.Add(ctx))
	assert.Contains(t, tio.output(), "Amount must be numeric.")
}

func TestAdd_NonPositiveAmount(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	tio := &testIO{
		textAnswers:     []string{"alice", ""},
		passwordAnswers: []string{"Secret1!", "Secret1!"},
	}
	tio.install(t)
	require.NoError(t, app.Register(ctx))
	tio.textAnswers = []string{"alice"}
	tio.passwordAnswers = []string{"Secret1!"}
	require.NoError(t, app.Login(ctx))

	tio.printed = nil
	tio.textAnswers = []string{"-5", "note"}
	require.NoError(t, app.Add(ctx))
	assert.Contains(t, tio.output(), "Enter a valid positive number.")
}

func TestProfile_ShowsAccountDetails(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	tio := &testIO{
		textAnswers:     []string{"alice", "alice@example.com"},
		passwordAnswers: []string{"Secret1!", "Secret1!"},
	}
	tio.install(t)
	require.NoError(t, app.Register(ctx))
	tio.textAnswers = []string{"alice"}
	tio.passwordAnswers = []string{"Secret1!"}
	require.NoError(t, app.Login(ctx))

	tio.printed = nil
	require.NoError(t, app.Profile(ctx))
	assert.Contains(t, tio.output(), "alice")
	assert.Contains(t, tio.output(), "alice@example.com")
}
