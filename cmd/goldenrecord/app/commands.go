package app

import (
	"github.com/spf13/cobra"

	"github.com/civicdata/goldenrecord/cmd/goldenrecord/cmd/allowlist"
	runcmd "github.com/civicdata/goldenrecord/cmd/goldenrecord/cmd/run"
	"github.com/civicdata/goldenrecord/cmd/goldenrecord/cmd/snapshots"
	validatecmd "github.com/civicdata/goldenrecord/cmd/goldenrecord/cmd/validate"
	"github.com/civicdata/goldenrecord/cmd/goldenrecord/cmd/verify"
)

// registerCommands registers all subcommands with the root command.
// This is where we wire up all the command handlers.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(runcmd.NewCommand(a))
	rootCmd.AddCommand(snapshots.NewCommand(a))
	rootCmd.AddCommand(verify.NewCommand(a))
	rootCmd.AddCommand(validatecmd.NewCommand(a))

	// Management commands
	rootCmd.AddCommand(allowlist.NewCommand(a))
	rootCmd.AddCommand(a.newVersionCommand())
}

// newVersionCommand creates the version command.
func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		GroupID: "management",
		Short:   "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("goldenrecord %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}
