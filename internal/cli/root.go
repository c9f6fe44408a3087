// Package cli wires the cobra command tree for the pulpstore binary.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "pulpstore",
	Short: "Pulpworks storefront backend",
	Long: `pulpstore serves the Pulpworks comics storefront API: per-session
shopping carts with durable slots, the product catalog, locale string
tables, contact forwarding and the admin area.

Configuration lives in ~/.pulpstore/config.toml (override the directory
with PULPSTORE_HOME). Missing config falls back to defaults.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the pulpstore version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "pulpstore %s\n", Version)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
