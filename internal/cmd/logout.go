package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/portaldevagas/vagas-cli/internal/tui"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sair e remover credenciais",
	Long: `Sign out and remove the stored session credentials.

Logging out when no session exists is a no-op.

Examples:
  vagas logout
  vagas logout --yes`,
	RunE: runLogout,
}

var logoutYes bool

func init() {
	logoutCmd.Flags().BoolVarP(&logoutYes, "yes", "y", false, "skip the confirmation prompt")

	rootCmd.AddCommand(logoutCmd)
}

func runLogout(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	if !app.Controller.Authenticated() {
		fmt.Fprintln(cmd.OutOrStdout(), "Você não está conectado.")
		// Still unwind: a half-written session should not linger
		app.Controller.Logout()
		return nil
	}

	if !logoutYes && tui.ShouldPrompt() {
		confirmed, err := tui.PromptForConfirmation("Encerrar a sessão?", true)
		if err != nil {
			return err
		}
		if !confirmed {
			return nil
		}
	}

	app.Controller.Logout()
	fmt.Fprintln(cmd.OutOrStdout(), "Sessão encerrada.")
	return nil
}
