// Package cli implements the jabu command-line interface.
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/jabu/pkg/buildinfo"
	"github.com/matzehuels/jabu/pkg/config"
	"github.com/matzehuels/jabu/pkg/observability"
	"github.com/matzehuels/jabu/pkg/repository/local"
	"github.com/matzehuels/jabu/pkg/repository/remote"
	"github.com/matzehuels/jabu/pkg/resolve"
	"github.com/matzehuels/jabu/pkg/transport"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "jabu"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	flags globalFlags
}

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	repository string
	remote     string
	timeout    time.Duration
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Jabu downloads Maven artifacts and their dependencies",
		Long:         `Jabu fetches jars and POMs from a Maven-layout remote repository into a local repository, following the dependencies declared in each POM.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			observability.SetHTTPHooks(&logHooks{logger: c.Logger})
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVar(&c.flags.repository, "repository", "", "local repository root (default ~/repo)")
	flags.StringVar(&c.flags.remote, "remote", "", "remote repository base URL (default "+remote.DefaultURL+")")
	flags.DurationVar(&c.flags.timeout, "timeout", 0, "HTTP timeout per request (default 30s)")

	root.AddCommand(c.fetchCommand())
	root.AddCommand(c.resolveCommand())
	root.AddCommand(c.versionsCommand())
	root.AddCommand(c.pathCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Workspace
// =============================================================================

// workspace bundles the collaborators built from the resolved configuration.
type workspace struct {
	cfg      *config.Config
	local    *local.Repository
	remote   *remote.Repository
	resolver *resolve.Resolver
}

// loadConfig resolves the configuration with the global flags applied.
func (c *CLI) loadConfig() (*config.Config, error) {
	return config.Load(config.Overrides{
		Repository: c.flags.repository,
		Remote:     c.flags.remote,
		Timeout:    c.flags.timeout,
	})
}

// newWorkspace loads the configuration and wires the repositories and resolver.
func (c *CLI) newWorkspace() (*workspace, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	rem, err := remote.New(cfg.Remote)
	if err != nil {
		return nil, err
	}
	store := local.New(cfg.Repository)
	c.Logger.Debug("Workspace", "repository", store.Root(), "remote", rem.BaseURL(), "timeout", cfg.Timeout)

	fetcher := transport.NewHTTP(cfg.Timeout, nil)
	return &workspace{
		cfg:      cfg,
		local:    store,
		remote:   rem,
		resolver: resolve.New(store, fetcher, c.Logger),
	}, nil
}
