package main

import (
	"github.com/spf13/cobra"

	"github.com/byte4ever/w8r"
)

// logfileCmd waits for a block of text to appear in a file.
var logfileCmd = &cobra.Command{
	Use:   "logfile <path> <block>",
	Short: "Wait until the file contains the given block of text",
	Long: `Wait until the file contains the given block of text as contiguous
lines. The block may span multiple lines; it matches only when its
lines appear adjacent and in order, with any unrelated lines before
and after.

Example:
  w8r logfile /var/log/app.log "migrations complete" -a 20
  w8r logfile /var/log/app.log "$(cat expected-block.txt)" -a 20`,
	Args: cobra.ExactArgs(2),
	RunE: runLogfile,
}

func init() {
	rootCmd.AddCommand(logfileCmd)
}

func runLogfile(cmd *cobra.Command, args []string) error {
	return runWait(cmd,
		w8r.FileContentProbe(args[0], args[1]),
		w8r.LogProbe())
}
