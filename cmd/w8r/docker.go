package main

import (
	"github.com/spf13/cobra"

	"github.com/byte4ever/w8r"
)

// statusCmd waits for a container to reach a runtime status.
var statusCmd = &cobra.Command{
	Use:   "status <container> <status>",
	Short: "Wait until a container reports the given status",
	Long: `Wait until docker inspect reports the given status for the container.

Example:
  w8r status my-db running -a 60
  w8r status my-migrator exited -a 120`,
	Args: cobra.ExactArgs(2),
	RunE: runStatus,
}

// logsCmd waits for a substring to show up in a container's logs.
var logsCmd = &cobra.Command{
	Use:   "logs <container> <substring>",
	Short: "Wait until the container's logs contain the substring",
	Long: `Wait until the captured logs of the container contain the literal
substring. The full log output is re-fetched on every evaluation.

Example:
  w8r logs my-broker "Listening on port 5672" -a 40`,
	Args: cobra.ExactArgs(2),
	RunE: runLogs,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(logsCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	return runWait(cmd,
		w8r.StatusProbe(w8r.DockerStatusFetcher(args[0]), args[1]),
		w8r.QuickProbe())
}

func runLogs(cmd *cobra.Command, args []string) error {
	return runWait(cmd,
		w8r.ContentProbe(w8r.DockerLogsFetcher(args[0]), args[1]),
		w8r.LogProbe())
}
