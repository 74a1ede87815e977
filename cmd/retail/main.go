// Command retail serves the retail query API and runs its maintenance tasks.
//
//	retail serve                       start the HTTP API and job workers
//	retail migrate                     apply the embedded schema migrations
//	retail migrate --list              list the embedded migrations
//	retail report top-products -l 5    print the best sellers as JSON
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "retail",
		Short:        "Retail query layer over PostgreSQL routines",
		SilenceUsage: true,
	}

	root.AddCommand(
		newServeCommand(),
		newMigrateCommand(),
		newReportCommand(),
	)

	return root
}
