// Package commands implements the CLI for bochsbuild.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/bochsbuild/internal/app"
	"go.trai.ch/bochsbuild/internal/build"
	"go.trai.ch/bochsbuild/internal/core/domain"
)

// CLI represents the command line interface for bochsbuild.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Dispatch(ctx context.Context, token string, opts app.DispatchOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "bochsbuild [deepclean|bochsclean|clean]",
		Short: "Build the supervisor and the Bochs emulator core",
		Long: `Without a mode, builds the supervisor with cargo and then configures (when
needed) and builds Bochs through the POSIX shell against the MSVC toolchain.

Modes:
  deepclean   remove the Bochs build directory and clean the supervisor
  bochsclean  remove the Bochs build directory only
  clean       run the Bochs clean target and clean the supervisor`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		ValidArgs:     []string{domain.ModeDeepClean.String(), domain.ModeBochsClean.String(), domain.ModeClean.String()},
		RunE:          c.runRoot,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.Flags().StringP("config", "c", domain.ConfigFileName, "Path to the config file")
	rootCmd.Flags().IntP("jobs", "j", 0, "Parallel make jobs (default from config)")

	c.rootCmd = rootCmd
	return c
}

func (c *CLI) runRoot(cmd *cobra.Command, args []string) error {
	token := ""
	if len(args) > 0 {
		token = args[0]
	}

	configPath, _ := cmd.Flags().GetString("config")
	jobs, _ := cmd.Flags().GetInt("jobs")

	return c.app.Dispatch(cmd.Context(), token, app.DispatchOptions{
		ConfigPath:     configPath,
		ConfigRequired: cmd.Flags().Changed("config"),
		Jobs:           jobs,
	})
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
