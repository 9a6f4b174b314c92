package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/portaldevagas/vagas-cli/internal/auth"
	"github.com/portaldevagas/vagas-cli/internal/errors"
)

var perfilCmd = &cobra.Command{
	Use:   "perfil",
	Short: "Ver e atualizar o seu perfil",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var perfilShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Mostrar o perfil da sessão",
	Long: `Show the profile of the signed-in user.

Examples:
  vagas perfil show
  vagas perfil show --json`,
	RunE: runPerfilShow,
}

var perfilUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Atualizar dados do perfil",
	Long: `Update profile fields on the platform and refresh the local session.

Only the fields passed as flags are changed.

Examples:
  vagas perfil update --telefone "(81) 99999-0000"
  vagas perfil update --nome "Maria Souza" --endereco "Rua Nova, 100"`,
	RunE: runPerfilUpdate,
}

var (
	perfilJSON     bool
	perfilNome     string
	perfilEmail    string
	perfilTelefone string
	perfilEndereco string
)

func init() {
	perfilShowCmd.Flags().BoolVar(&perfilJSON, "json", false, "output the profile as JSON")

	perfilUpdateCmd.Flags().StringVar(&perfilNome, "nome", "", "full name")
	perfilUpdateCmd.Flags().StringVar(&perfilEmail, "email", "", "contact e-mail")
	perfilUpdateCmd.Flags().StringVar(&perfilTelefone, "telefone", "", "contact phone")
	perfilUpdateCmd.Flags().StringVar(&perfilEndereco, "endereco", "", "address")

	perfilCmd.AddCommand(perfilShowCmd)
	perfilCmd.AddCommand(perfilUpdateCmd)
	rootCmd.AddCommand(perfilCmd)
}

func runPerfilShow(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	state := app.Controller.State()
	if !state.Authenticated() {
		return errors.NewNotLoggedInError()
	}
	profile := state.Profile

	if perfilJSON {
		data, err := json.MarshalIndent(profile, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal profile: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n", profile.Nome, profile.Role)
	fmt.Fprintf(out, "  E-mail:   %s\n", profile.Email)
	if profile.Telefone != "" {
		fmt.Fprintf(out, "  Telefone: %s\n", profile.Telefone)
	}
	if profile.Endereco != "" {
		fmt.Fprintf(out, "  Endereço: %s\n", profile.Endereco)
	}
	switch profile.Role {
	case auth.RoleCidadao:
		fmt.Fprintf(out, "  CPF:      %s\n", profile.CPF)
	case auth.RoleEmpresa:
		fmt.Fprintf(out, "  CNPJ:     %s\n", profile.CNPJ)
		if profile.RazaoSocial != "" {
			fmt.Fprintf(out, "  Razão:    %s\n", profile.RazaoSocial)
		}
	case auth.RoleSecretaria:
		fmt.Fprintf(out, "  Órgão:    %s\n", profile.Secretaria)
	case auth.RoleAdmin, auth.RoleSuperAdmin:
		if len(profile.Permissoes) > 0 {
			fmt.Fprintf(out, "  Permissões: %s\n", strings.Join(profile.Permissoes, ", "))
		}
	}
	return nil
}

func runPerfilUpdate(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	state := app.Controller.State()
	if !state.Authenticated() {
		return errors.NewNotLoggedInError()
	}

	var patch auth.ProfilePatch
	if cmd.Flags().Changed("nome") {
		patch.Nome = &perfilNome
	}
	if cmd.Flags().Changed("email") {
		patch.Email = &perfilEmail
	}
	if cmd.Flags().Changed("telefone") {
		patch.Telefone = &perfilTelefone
	}
	if cmd.Flags().Changed("endereco") {
		patch.Endereco = &perfilEndereco
	}
	if patch.IsZero() {
		return fmt.Errorf("nothing to update: pass at least one of --nome, --email, --telefone, --endereco")
	}

	ctx := cmd.Context()

	if _, err := app.Client.UpdateProfile(ctx, state.Profile.Role, state.Profile.ID, patch); err != nil {
		return err
	}

	app.Controller.UpdateProfile(patch)

	fmt.Fprintln(cmd.OutOrStdout(), "Perfil atualizado.")
	return nil
}
