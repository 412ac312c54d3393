// Package cli wires the cobra commands.
package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "shelterboard",
	Short: "Filterable dashboard over animal-shelter outcome records",
	Long: `shelterboard serves a single-page dashboard for browsing animal-shelter
outcome records: four filter controls, a sortable paginated table, and a
bar chart of outcome types derived from the rows currently displayed.

Records live in a MongoDB collection (or an in-memory store in dev mode)
and can be bulk-imported from a CSV export with the seed command.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadDotEnv)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
}

func loadDotEnv() {
	// Missing .env is fine; environment variables still apply.
	_ = godotenv.Load()
}
