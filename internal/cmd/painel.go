package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/portaldevagas/vagas-cli/internal/dashboard"
	"github.com/portaldevagas/vagas-cli/internal/errors"
	"github.com/portaldevagas/vagas-cli/internal/guard"
	"github.com/portaldevagas/vagas-cli/internal/tui"
)

var painelCmd = &cobra.Command{
	Use:   "painel",
	Short: "Abrir o painel interativo",
	Long: `Open the interactive dashboard for the signed-in user.

The dashboard loads vagas, empresas, and candidaturas in parallel and
lets you switch between them. It requires a session; run 'vagas login'
first.

Examples:
  vagas painel`,
	RunE: runPainel,
}

func init() {
	rootCmd.AddCommand(painelCmd)
}

func runPainel(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	// Gate on the session before starting the TUI
	decision := guard.Check(app.Controller.State(), guard.Protected(), nil)
	if decision != guard.Allow {
		return errors.NewNotLoggedInError()
	}

	state := app.Controller.State()
	model := tui.NewModel(state.Profile, func(ctx context.Context) (*dashboard.Data, error) {
		return dashboard.Load(ctx, app.Client)
	})

	program := tea.NewProgram(model, tea.WithContext(cmd.Context()))

	// Session changes while the dashboard is open reach the program as
	// navigation messages; a logout quits it.
	watcher := guard.Watch(app.Controller, guard.Protected(), tui.NewProgramNavigator(func(msg interface{}) {
		program.Send(msg)
	}), nil)
	defer watcher.Stop()

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("dashboard failed: %w", err)
	}
	return nil
}
