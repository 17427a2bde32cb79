// Package cli implements the github-social-graph command-line interface.
//
// The CLI is a single cobra command that fetches follower data from GitHub
// (or loads it from a JSON or DOT file) and writes it as JSON, DOT or a
// rendered image:
//
//	github-social-graph --orgs vim-jp -o graph.png
//	github-social-graph -u Kagami -p --orgs vim-jp --users Shougo -o graph.png
//	github-social-graph --orgs vim-jp -o jp.json
//	github-social-graph -i jp.json -o jp.png
//
// # Logging
//
// Progress is logged to stderr with charmbracelet/log; --verbose (-v)
// enables debug output including every HTTP request. Loggers are passed
// through context.Context.
//
// # Configuration
//
// Defaults for the GitHub token, API URL, avatar cache directory and
// network tuning can be set in a TOML file, see [Config].
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/kagami/github-social-graph/pkg/buildinfo"
	"github.com/kagami/github-social-graph/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "github-social-graph"

	// tokenEnv is the environment variable consulted for a GitHub token.
	tokenEnv = "GITHUB_TOKEN"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for the command.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the github-social-graph command.
func (c *CLI) RootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   appName + " [flags]",
		Short: "Build social graphs for GitHub",
		Long: `Fetch follower relationships of GitHub users and organization members
and render them as a directed graph.

Without credentials the GitHub API allows only 60 requests per hour; pass a
token with --token (or GITHUB_TOKEN) for anything but tiny graphs.`,
		Example: `  # Draw graph for vim-jp organization members (without authorization)
  github-social-graph --orgs vim-jp -o 1.png

  # Draw graph for organization and users (prompting for the password)
  github-social-graph -u Kagami -p --orgs vim-jp --users Shougo -o 1.png

  # Only fetch data for future use and analysis
  github-social-graph --orgs vim-jp -o jp.json

  # Use pre-fetched data to draw graph
  github-social-graph -i jp.json -o jp.png`,
		Version:       buildinfo.Version,
		Args:          noPositionalArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			hooks := newLogHooks(c.Logger)
			observability.SetFetchHooks(hooks)
			observability.SetAvatarHooks(hooks)
			observability.SetHTTPHooks(hooks)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd.Context(), opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	opts.register(root)

	return root
}

// =============================================================================
// Paths
// =============================================================================

// configPath returns the default config file location using the XDG standard
// (~/.config/github-social-graph/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
