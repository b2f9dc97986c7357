// Package commands provides CLI commands for ollamachat.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/diogo/ollamachat/internal/api"
	"github.com/diogo/ollamachat/internal/chat"
	"github.com/diogo/ollamachat/internal/config"
	"github.com/diogo/ollamachat/internal/logging"
)

// Version info (set at build time)
var (
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootOptions holds the flags shared by every command
type rootOptions struct {
	model   string
	verbose bool

	// One-shot query flags
	file    string
	output  string
	raw     bool
	jsonOut bool
}

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd(deps *Dependencies) *cobra.Command {
	if deps == nil {
		deps = NewDependencies()
	}
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "ollamachat [prompt]",
		Short: "Minimal terminal chat front-end",
		Long: `ollamachat is a minimal chat front-end for the terminal. Queries are sent
to a query client and every exchange is kept in an in-memory history that
lasts for the session.

Examples:
  ollamachat chat                     Start interactive chat
  ollamachat chat --plain             Line-based chat for pipes and scripts
  ollamachat "What is Go?"            Send a single query
  ollamachat -f prompt.md             Read prompt from file
  cat prompt.md | ollamachat          Read prompt from stdin
  ollamachat "Hello" --json           Print the exchange as JSON
  ollamachat config get markdown.style`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if v, _ := cmd.Flags().GetBool("version"); v {
				fmt.Fprintf(deps.Stdout, "ollamachat %s (built %s)\n", Version, BuildTime)
				return nil
			}

			// Check for file input
			if opts.file != "" {
				data, err := os.ReadFile(opts.file)
				if err != nil {
					return fmt.Errorf("failed to read file: %w", err)
				}
				return runQuery(deps, opts, string(data))
			}

			// Check for positional argument
			if len(args) > 0 {
				return runQuery(deps, opts, args[0])
			}

			// Check for piped stdin
			if !deps.StdinIsTerminal() {
				data, err := io.ReadAll(deps.Stdin)
				if err != nil {
					return fmt.Errorf("failed to read stdin: %w", err)
				}
				return runQuery(deps, opts, string(data))
			}

			// No input - show help
			return cmd.Help()
		},
	}

	cmd.SetIn(deps.Stdin)
	cmd.SetOut(deps.Stdout)
	cmd.SetErr(deps.Stderr)

	// Global flags
	cmd.PersistentFlags().StringVarP(&opts.model, "model", "m", "", "Model to use (e.g., llama3)")
	cmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "Enable debug logging")

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Read prompt from file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Save response to file")
	cmd.Flags().BoolVar(&opts.raw, "raw", false, "Print only the response text")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "Print the exchange as JSON")
	cmd.Flags().BoolP("version", "v", false, "Show version and exit")
	cmd.MarkFlagsMutuallyExclusive("raw", "json")

	cmd.AddCommand(newChatCmd(deps, opts))
	cmd.AddCommand(newConfigCmd(deps))

	return cmd
}

// Execute runs the root command
func Execute() {
	deps := NewDependencies()
	if err := NewRootCmd(deps).Execute(); err != nil {
		fmt.Fprintln(deps.Stderr, formatErrorMessage(err, "Error"))
		os.Exit(1)
	}
}

// app bundles what a command needs after flags and config are resolved
type app struct {
	deps    *Dependencies
	cfg     config.Config
	logger  *zap.Logger
	model   string
	verbose bool
}

// newApp loads config and builds the logger. With logToFile the log goes to
// the configured log file instead of stderr.
func newApp(deps *Dependencies, opts *rootOptions, logToFile bool) (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "Warning: %v (using defaults)\n", err)
	}

	verbose := opts.verbose || cfg.Verbose

	logOpts := logging.Options{Verbose: verbose}
	if logToFile {
		logOpts.Path, err = config.GetLogPath(cfg)
		if err != nil {
			return nil, err
		}
	}

	logger, err := logging.New(logOpts)
	if err != nil {
		return nil, err
	}

	model := opts.model
	if model == "" {
		model = cfg.DefaultModel
	}
	if model == "" {
		model = api.DefaultModel
	}

	return &app{
		deps:    deps,
		cfg:     cfg,
		logger:  logger,
		model:   model,
		verbose: verbose,
	}, nil
}

// newSession creates a chat session wired to a fresh client
func (a *app) newSession() *chat.Session {
	client := a.deps.NewClient(a.model, a.logger.Named("client"))
	session := chat.NewSession(client, chat.WithLogger(a.logger.Named("session")))
	a.logger.Debug("session started",
		zap.String("session", session.ID()),
		zap.String("model", a.model),
	)
	return session
}

func (a *app) close() {
	logging.Sync(a.logger)
}
