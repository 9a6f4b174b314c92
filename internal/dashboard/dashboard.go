// Package dashboard aggregates the listing views shown after login.
package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/portaldevagas/vagas-cli/internal/platform"
)

// Fetcher is the slice of the platform client the dashboard needs.
type Fetcher interface {
	ListVagas(ctx context.Context, filter platform.VagaFilter) ([]platform.Vaga, error)
	ListEmpresas(ctx context.Context) ([]platform.Empresa, error)
	ListCandidaturas(ctx context.Context) ([]platform.Candidatura, error)
}

// Data is the combined dashboard payload.
type Data struct {
	Vagas        []platform.Vaga
	Empresas     []platform.Empresa
	Candidaturas []platform.Candidatura
}

// Load fetches all dashboard sections in parallel. The result is
// all-or-nothing: the first failure cancels the remaining fetches and is
// returned as the load error.
func Load(ctx context.Context, api Fetcher) (*Data, error) {
	var data Data

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		vagas, err := api.ListVagas(ctx, platform.VagaFilter{})
		if err != nil {
			return err
		}
		data.Vagas = vagas
		return nil
	})

	g.Go(func() error {
		empresas, err := api.ListEmpresas(ctx)
		if err != nil {
			return err
		}
		data.Empresas = empresas
		return nil
	})

	g.Go(func() error {
		candidaturas, err := api.ListCandidaturas(ctx)
		if err != nil {
			return err
		}
		data.Candidaturas = candidaturas
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &data, nil
}
