package main

import (
	"github.com/spf13/cobra"

	"github.com/byte4ever/w8r"
)

// cmdCmd waits for an arbitrary command to exit zero.
var cmdCmd = &cobra.Command{
	Use:   "cmd <command> [args...]",
	Short: "Wait until the command exits with status zero",
	Long: `Wait until the command exits with status zero. The command is re-run
from scratch on every evaluation.

Use "--" to separate w8r's own flags from the command:

  w8r cmd -a 20 -- pg_isready -h localhost -p 5432`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCmd,
}

func init() {
	rootCmd.AddCommand(cmdCmd)
}

func runCmd(cmd *cobra.Command, args []string) error {
	return runWait(cmd,
		w8r.CommandProbe(args[0], args[1:]...),
		w8r.QuickProbe())
}
