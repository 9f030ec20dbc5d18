package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/KaushVerse/nginx-docker/internal/adapter/remote"
	"github.com/KaushVerse/nginx-docker/internal/adapter/storage"
	"github.com/KaushVerse/nginx-docker/internal/app/notification"
	"github.com/KaushVerse/nginx-docker/internal/app/todostore"
	"github.com/KaushVerse/nginx-docker/internal/config"
	"github.com/KaushVerse/nginx-docker/internal/core/domain"
	"github.com/KaushVerse/nginx-docker/pkg/translator"
)

// errOperationFailed is returned after a command whose store operation raised
// an error toast, so the process exits non-zero.
var errOperationFailed = errors.New("operation failed")

type rootOptions struct {
	apiURL            string
	statePath         string
	lang              string
	verbose           bool
	translationFolder string
	requestTimeout    time.Duration
	toastDuration     time.Duration
}

func newRootCmd(out io.Writer) *cobra.Command {
	cfg := config.LoadClientConfig()
	opts := &rootOptions{
		translationFolder: cfg.TranslationFolder,
		requestTimeout:    cfg.RequestTimeout,
		toastDuration:     cfg.ToastDuration,
	}

	root := &cobra.Command{
		Use:           "todo",
		Short:         "Manage todos stored by the todo API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.apiURL, "api", cfg.APIBaseURL, "base URL of the todo API")
	flags.StringVar(&opts.statePath, "state", cfg.StatePath, "path of the local state database")
	flags.StringVar(&opts.lang, "lang", cfg.Language, "language for messages (en, fr)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newListCmd(opts),
		newAddCmd(opts),
		newUpdateCmd(opts),
		newToggleCmd(opts),
		newDeleteCmd(opts),
		newMoveCmd(opts, "up", "Move a todo one place up", (*todostore.Store).MoveTodoUp),
		newMoveCmd(opts, "down", "Move a todo one place down", (*todostore.Store).MoveTodoDown),
		newStatsCmd(opts),
		newSyncCmd(opts),
	)
	return root
}

// session wires the store and its collaborators for a single command run.
type session struct {
	store   *todostore.Store
	center  *notification.Center
	states  *storage.StateStore
	logger  *zap.Logger
	failed  atomic.Bool
	restore func()
}

func openSession(cmd *cobra.Command, opts *rootOptions) (*session, error) {
	logger := zap.NewNop()
	if opts.verbose {
		devLogger, err := zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("init logger: %w", err)
		}
		logger = devLogger
	}

	s := &session{logger: logger, restore: zap.ReplaceGlobals(logger)}

	translator.InitTranslator(translator.Config{
		TranslationFolder:  opts.translationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	states, err := storage.Open(opts.statePath, logger)
	if err != nil {
		s.restore()
		return nil, err
	}
	s.states = states

	client := remote.NewTodoClient(opts.apiURL,
		remote.WithHTTPClient(&http.Client{Timeout: opts.requestTimeout}),
		remote.WithLogger(logger),
		remote.WithLanguage(opts.lang),
	)

	out := cmd.OutOrStdout()
	s.center = notification.New(
		notification.WithDuration(opts.toastDuration),
		notification.WithLogger(logger),
		notification.WithListener(func(toast domain.Toast) {
			if toast.Severity == domain.SeverityError {
				s.failed.Store(true)
			}
			fmt.Fprintln(out, renderToast(toast))
		}),
	)

	s.store = todostore.New(client, s.center,
		todostore.WithStorage(states),
		todostore.WithLogger(logger),
		todostore.WithLanguage(opts.lang),
	)
	if err := s.store.Rehydrate(cmd.Context()); err != nil {
		logger.Warn("ignoring unreadable local state", zap.Error(err))
	}

	return s, nil
}

// result reports errOperationFailed when an error toast was shown.
func (s *session) result() error {
	if s.failed.Load() {
		return errOperationFailed
	}
	return nil
}

func (s *session) close() {
	s.center.Close()
	if err := s.states.Close(); err != nil {
		s.logger.Warn("failed to close state db", zap.Error(err))
	}
	_ = s.logger.Sync()
	s.restore()
}

// withSession opens a session around fn and closes it afterwards.
func withSession(opts *rootOptions, fn func(cmd *cobra.Command, args []string, s *session) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd, opts)
		if err != nil {
			return err
		}
		defer s.close()

		if err := fn(cmd, args, s); err != nil {
			return err
		}
		return s.result()
	}
}
