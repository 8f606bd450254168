// Package cli implements the interactive front-end: a small REPL that drives
// the credential and transaction services and renders their results.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"securepay/internal/config"
	"securepay/internal/cryptox"
	"securepay/internal/logging"
	"securepay/internal/services"
	"securepay/internal/session"
	"securepay/internal/storage"
)

type App struct {
	config       *config.Config
	logger       logging.Logger
	store        *storage.Store
	userService  *services.UserService
	txService    *services.TransactionService
	session      *session.Session
	reader       *bufio.Reader
	out          io.Writer
	logFile      *os.File
}

// NewApp wires the application together: event log, encryption key, store,
// services, and an anonymous session. Any error here is fatal; the process
// cannot run without its key or its database.
func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	var logFile *os.File
	var logDest io.Writer = os.Stdout
	if cfg.LogFile != "" {
		f, err := logging.OpenLogFile(cfg.LogFile)
		if err != nil {
			return nil, err
		}
		logFile = f
		logDest = f
	}

	sess := session.New()
	logger := logging.NewJSONLogger(logDest).With("session_id", sess.ID())

	key, err := cryptox.LoadOrCreateKey(cfg.KeyFile)
	if err != nil {
		return nil, err
	}

	store, err := storage.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	us := services.NewUserService(store.Users, logger, cfg.BcryptCost)
	ts := services.NewTransactionService(store.Transactions, key, logger)

	return &App{
		config:      cfg,
		logger:      logger,
		store:       store,
		userService: us,
		txService:   ts,
		session:     sess,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		logFile:     logFile,
	}, nil
}

// Run starts the REPL and blocks until the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.logger.Info(ctx, "session started")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
	a.logger.Info(ctx, "session ended")
}

// Close releases the store and the log file.
func (a *App) Close() {
	if a.store != nil {
		_ = a.store.Close()
	}
	if a.logFile != nil {
		_ = a.logFile.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// status renders the prompt segment: the username when authenticated,
// "anonymous" otherwise.
func (a *App) status() string {
	if user, ok := a.session.User(); ok {
		return user.Username
	}
	return "anonymous"
}
