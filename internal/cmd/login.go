package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/portaldevagas/vagas-cli/internal/auth"
	"github.com/portaldevagas/vagas-cli/internal/tui"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Entrar no Portal de Vagas",
	Long: `Sign in to the Portal de Vagas platform.

Credentials can be passed as flags or entered interactively. With
--remember the session survives across invocations (up to 30 days);
without it the login lasts only for the current process.

Examples:
  vagas login
  vagas login --identifier maria@example.com --senha segredo --remember`,
	RunE: runLogin,
}

var (
	loginIdentifier string
	loginSenha      string
	loginRemember   bool
)

func init() {
	loginCmd.Flags().StringVarP(&loginIdentifier, "identifier", "i", "", "e-mail or CPF/CNPJ")
	loginCmd.Flags().StringVarP(&loginSenha, "senha", "s", "", "account password")
	loginCmd.Flags().BoolVarP(&loginRemember, "remember", "r", false, "keep the session on this device")

	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	input := tui.LoginInput{
		Identifier: loginIdentifier,
		Senha:      loginSenha,
		Remember:   loginRemember,
	}

	if input.Identifier == "" || input.Senha == "" {
		if !tui.ShouldPrompt() {
			return fmt.Errorf("--identifier and --senha are required when not running interactively")
		}
		if err := tui.RunLoginForm(&input); err != nil {
			return err
		}
	}

	ctx := cmd.Context()

	token, err := app.Client.Login(ctx, input.Identifier, input.Senha)
	if err != nil {
		return err
	}

	claims, err := auth.ParseAccessToken(token)
	if err != nil {
		return err
	}

	// The controller fetches the profile through this same client; the
	// bearer token must be installed before that fetch fires.
	app.Client.SetToken(token)

	if err := app.Controller.Login(ctx, claims, token, input.Remember); err != nil {
		app.Client.SetToken("")
		return err
	}

	state := app.Controller.State()
	fmt.Fprintf(cmd.OutOrStdout(), "Bem-vindo(a), %s!\n", state.Profile.Nome)
	return nil
}
