package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/portaldevagas/vagas-cli/internal/errors"
	"github.com/portaldevagas/vagas-cli/internal/platform"
)

var listarCmd = &cobra.Command{
	Use:   "listar",
	Short: "Listar vagas publicadas",
	Long: `List the published job openings, with optional filters.

Listing is public: it works without a session.

Examples:
  vagas listar
  vagas listar --busca desenvolvedor --cidade Recife --limit 10`,
	RunE: runListar,
}

var empresasCmd = &cobra.Command{
	Use:   "empresas",
	Short: "Listar empresas cadastradas",
	RunE:  runEmpresas,
}

var candidaturasCmd = &cobra.Command{
	Use:   "candidaturas",
	Short: "Listar suas candidaturas",
	Long: `List the applications of the signed-in citizen.

Examples:
  vagas candidaturas
  vagas candidaturas --json`,
	RunE: runCandidaturas,
}

var (
	listarBusca  string
	listarCidade string
	listarLimit  int
	listarJSON   bool
)

func init() {
	listarCmd.Flags().StringVar(&listarBusca, "busca", "", "free-text search over titles")
	listarCmd.Flags().StringVar(&listarCidade, "cidade", "", "filter by city")
	listarCmd.Flags().IntVar(&listarLimit, "limit", 0, "maximum number of results")
	listarCmd.Flags().BoolVar(&listarJSON, "json", false, "output as JSON")
	empresasCmd.Flags().BoolVar(&listarJSON, "json", false, "output as JSON")
	candidaturasCmd.Flags().BoolVar(&listarJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(listarCmd)
	rootCmd.AddCommand(empresasCmd)
	rootCmd.AddCommand(candidaturasCmd)
}

func runListar(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	vagas, err := app.Client.ListVagas(cmd.Context(), platform.VagaFilter{
		Busca:  listarBusca,
		Cidade: listarCidade,
		Limit:  listarLimit,
	})
	if err != nil {
		return err
	}

	if listarJSON {
		return printJSON(cmd, vagas)
	}

	out := cmd.OutOrStdout()
	if len(vagas) == 0 {
		fmt.Fprintln(out, "Nenhuma vaga encontrada.")
		return nil
	}
	for _, v := range vagas {
		fmt.Fprintf(out, "%s — %s (%s)\n", v.Titulo, v.Empresa, v.Cidade)
		if v.Salario != "" {
			fmt.Fprintf(out, "  Salário: %s\n", v.Salario)
		}
	}
	return nil
}

func runEmpresas(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	empresas, err := app.Client.ListEmpresas(cmd.Context())
	if err != nil {
		return err
	}

	if listarJSON {
		return printJSON(cmd, empresas)
	}

	out := cmd.OutOrStdout()
	if len(empresas) == 0 {
		fmt.Fprintln(out, "Nenhuma empresa cadastrada.")
		return nil
	}
	for _, e := range empresas {
		fmt.Fprintf(out, "%s — %d vagas ativas\n", e.Nome, e.VagasAtivas)
	}
	return nil
}

func runCandidaturas(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	if !app.Controller.Authenticated() {
		return errors.NewNotLoggedInError()
	}

	candidaturas, err := app.Client.ListCandidaturas(cmd.Context())
	if err != nil {
		return err
	}

	if listarJSON {
		return printJSON(cmd, candidaturas)
	}

	out := cmd.OutOrStdout()
	if len(candidaturas) == 0 {
		fmt.Fprintln(out, "Nenhuma candidatura enviada.")
		return nil
	}
	for _, c := range candidaturas {
		fmt.Fprintf(out, "%s — %s\n", c.Vaga, c.Status)
	}
	return nil
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
