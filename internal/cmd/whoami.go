package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/portaldevagas/vagas-cli/internal/errors"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Mostrar a sessão atual",
	Long: `Show who is signed in, the session's role, where credentials are
stored, and when the login happened.

Examples:
  vagas whoami
  vagas whoami --json`,
	RunE: runWhoami,
}

var whoamiJSON bool

// whoamiReport is the machine-readable session summary
type whoamiReport struct {
	Nome       string `json:"nome"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Landing    string `json:"landing"`
	Storage    string `json:"storage"`
	LoginTime  string `json:"login_time,omitempty"`
	RememberMe bool   `json:"remember_me"`
}

func init() {
	whoamiCmd.Flags().BoolVar(&whoamiJSON, "json", false, "output session info as JSON")

	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	state := app.Controller.State()
	if !state.Authenticated() {
		return errors.NewNotLoggedInError()
	}

	report := whoamiReport{
		Nome:       state.Profile.Nome,
		Email:      state.Profile.Email,
		Role:       string(state.Profile.Role),
		Landing:    string(state.Profile.Role.Landing()),
		Storage:    app.Store.ActiveTier().String(),
		RememberMe: app.Store.RememberPreference(),
	}
	if lt, ok := app.Store.LoginTime(); ok {
		report.LoginTime = lt.Format(time.RFC3339)
	}

	if whoamiJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal session info: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s <%s>\n", report.Nome, report.Email)
	fmt.Fprintf(out, "  Perfil:  %s\n", report.Role)
	fmt.Fprintf(out, "  Painel:  %s\n", report.Landing)
	fmt.Fprintf(out, "  Sessão:  %s", report.Storage)
	if report.LoginTime != "" {
		fmt.Fprintf(out, " (desde %s)", report.LoginTime)
	}
	fmt.Fprintln(out)
	return nil
}
