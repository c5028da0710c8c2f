package main

import (
	"github.com/spf13/cobra"

	"github.com/byte4ever/w8r"
)

// urlCmd waits for an HTTP endpoint to answer with a 2xx status.
var urlCmd = &cobra.Command{
	Use:   "url <url>",
	Short: "Wait until a GET on the URL returns a 2xx status",
	Long: `Wait until a GET on the URL returns a 2xx status.

Connection errors and non-2xx answers keep the poll going; a service
that is still booting is expected to refuse or 502 for a while.

Example:
  w8r url https://svc.local/health -a 30
  w8r url https://svc.local/admin --user admin --password secret`,
	Args: cobra.ExactArgs(1),
	RunE: runURL,
}

func init() {
	rootCmd.AddCommand(urlCmd)

	urlCmd.Flags().String("user", "", "basic auth username")
	urlCmd.Flags().String("password", "", "basic auth password")
}

func runURL(cmd *cobra.Command, args []string) error {
	var httpOpts []w8r.HTTPOption

	user, _ := cmd.Flags().GetString("user")
	password, _ := cmd.Flags().GetString("password")

	if user != "" || password != "" {
		httpOpts = append(httpOpts, w8r.BasicAuth(user, password))
	}

	return runWait(cmd,
		w8r.HTTPProbe(args[0], httpOpts...),
		w8r.QuickProbe())
}
