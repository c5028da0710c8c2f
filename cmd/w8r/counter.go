package main

import (
	"github.com/spf13/cobra"

	"github.com/byte4ever/w8r"
)

// counterCmd waits for a numeric endpoint to reach an exact value.
var counterCmd = &cobra.Command{
	Use:   "counter <url> <value>",
	Short: "Wait until the URL's body equals the value exactly",
	Long: `Wait until a GET on the URL returns a body that, after trimming
whitespace, equals the value exactly. Comparison is literal equality,
not numeric ordering: waiting for 10 will not stop at 11.

Example:
  w8r counter http://svc.local/processed-jobs 42 -a 50`,
	Args: cobra.ExactArgs(2),
	RunE: runCounter,
}

func init() {
	rootCmd.AddCommand(counterCmd)
}

func runCounter(cmd *cobra.Command, args []string) error {
	return runWait(cmd,
		w8r.CounterProbe(w8r.HTTPFetcher(args[0]), args[1]),
		w8r.QuickProbe())
}
