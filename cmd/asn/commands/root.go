package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/asnlabs/asn/internal/interp"
)

var (
	// showCompleted includes completed tasks in listings.
	showCompleted bool

	// showMine filters project listings to the caller's tasks.
	showMine bool

	// verbose enables debug logging on stderr.
	verbose bool
)

// rootCmd is the whole CLI surface. There are no cobra subcommands:
// the positional tokens are a small language of their own ("finish
// 123", "workspaces", "eng fix login due friday") and the interpreter
// owns the rules, including their priority order.
var rootCmd = &cobra.Command{
	Use:   "asn [flags] [workspace[/project]] [task title ...]",
	Short: "Command-line client for Asana tasks",
	Long: `asn lists, creates, and completes tasks in a hosted Asana
workspace straight from the shell.

A bare scope lists tasks; a scope followed by words creates a task.
Titles may embed an @assignee mention anywhere and end with a natural
due-date phrase:

  asn workspaces                        list your workspaces
  asn eng                               list tasks in the "eng" workspace
  asn eng/backend                       list tasks in a project
  asn eng fix login @alice due friday   create an assigned, dated task
  asn finish 123                        complete task 123
  asn comment 123 looks good            comment on task 123

Credentials come from ASANA_API_KEY or ~/.asana-client.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

// Execute runs the CLI and returns the process exit code: 0 on
// success, 2 for usage errors (nothing resolved, unknown flag), 1 for
// everything else.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	fmt.Fprintln(os.Stderr, err)

	var usageErr *interp.UsageError
	if errors.As(err, &usageErr) {
		return 2
	}
	return 1
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(
		&showCompleted, "completed", "c", false,
		"Include completed tasks in listings",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&showMine, "me", "m", false,
		"Only show tasks assigned to me",
	)
	rootCmd.PersistentFlags().BoolVar(
		&verbose, "verbose", false,
		"Log API requests and interpretation steps to stderr",
	)

	// Flag errors are usage errors, same as an empty invocation.
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &interp.UsageError{Msg: err.Error()}
	})
}

// runRoot classifies the positional tokens and dispatches the result.
// Classification happens before any credentials are loaded so that
// usage errors never touch the network.
func runRoot(cmd *cobra.Command, args []string) error {
	command, err := interp.Classify(args)
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr())

	client, err := getClient(logger)
	if err != nil {
		return err
	}

	dispatcher := &interp.Dispatcher{
		Service:      client,
		Out:          cmd.OutOrStdout(),
		Log:          logger,
		Now:          time.Now,
		DefaultScope: os.Getenv("ASANA_WORKSPACE_PROJECT"),
	}

	return dispatcher.Run(cmd.Context(), command, interp.Options{
		ShowCompleted: showCompleted,
		ShowMine:      showMine,
	})
}

// newLogger builds the invocation logger: debug text on stderr when
// --verbose is set, otherwise everything is discarded.
func newLogger(stderr io.Writer) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
