// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bushtechs",
	Short: "BushTechs - Company site and admin API server",
	Long: `BushTechs serves the public company website and the JSON API backing
the admin panel: projects, services, team, partners, testimonials,
mission/vision, about content, and the contact inbox.

Content is managed through the API or the content subcommands; the
public pages are rendered server-side from the same database.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func main() {
	// A missing .env is fine; environment variables still apply.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
