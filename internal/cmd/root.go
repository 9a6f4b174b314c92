// Package cmd wires the vagas CLI commands.
package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vagas",
	Short: "Cliente de terminal do Portal de Vagas",
	Long: `vagas is the terminal client for the Portal de Vagas platform.
It signs you in with your citizen, company, secretariat, or admin account,
keeps your session across invocations, and gives you the listings and
dashboard the web portal shows after login.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	flagConfig string
	flagAPIURL string
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with a cancellable context
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default is $HOME/.vagas/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "platform API base URL (overrides config)")
}
