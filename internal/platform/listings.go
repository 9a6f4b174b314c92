package platform

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/portaldevagas/vagas-cli/internal/errors"
)

// Vaga is a published job listing.
type Vaga struct {
	ID          string   `json:"id"`
	Titulo      string   `json:"titulo"`
	Descricao   string   `json:"descricao"`
	EmpresaID   string   `json:"empresa_id"`
	Empresa     string   `json:"empresa"`
	Cidade      string   `json:"cidade"`
	Salario     string   `json:"salario,omitempty"`
	Requisitos  []string `json:"requisitos,omitempty"`
	PublicadaEm string   `json:"publicada_em"`
	Ativa       bool     `json:"ativa"`
}

// Empresa is a registered employer.
type Empresa struct {
	ID          string `json:"id"`
	Nome        string `json:"nome"`
	CNPJ        string `json:"cnpj"`
	RazaoSocial string `json:"razao_social"`
	Cidade      string `json:"cidade"`
	VagasAtivas int    `json:"vagas_ativas"`
}

// Candidatura is a citizen's application to a listing.
type Candidatura struct {
	ID        string `json:"id"`
	VagaID    string `json:"vaga_id"`
	Vaga      string `json:"vaga"`
	CidadaoID string `json:"cidadao_id"`
	Status    string `json:"status"`
	CriadaEm  string `json:"criada_em"`
}

// VagaFilter narrows a listing query. Zero values are omitted from the
// request.
type VagaFilter struct {
	Busca  string
	Cidade string
	Limit  int
}

func (f VagaFilter) query() string {
	q := url.Values{}
	if f.Busca != "" {
		q.Set("busca", f.Busca)
	}
	if f.Cidade != "" {
		q.Set("cidade", f.Cidade)
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// ListVagas retrieves job listings matching the filter.
func (c *Client) ListVagas(ctx context.Context, filter VagaFilter) ([]Vaga, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/v1/vagas"+filter.query(), nil)
	if err != nil {
		return nil, err
	}

	var vagas []Vaga
	if err := parseResponse(resp, &vagas); err != nil {
		return nil, errors.Wrap(errors.ErrCodeAPIListingFailed, "failed to list vagas", err)
	}
	return vagas, nil
}

// ListEmpresas retrieves the registered employers.
func (c *Client) ListEmpresas(ctx context.Context) ([]Empresa, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/v1/empresas", nil)
	if err != nil {
		return nil, err
	}

	var empresas []Empresa
	if err := parseResponse(resp, &empresas); err != nil {
		return nil, errors.Wrap(errors.ErrCodeAPIListingFailed, "failed to list empresas", err)
	}
	return empresas, nil
}

// ListCandidaturas retrieves the authenticated user's applications.
func (c *Client) ListCandidaturas(ctx context.Context) ([]Candidatura, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/v1/candidaturas", nil)
	if err != nil {
		return nil, err
	}

	var candidaturas []Candidatura
	if err := parseResponse(resp, &candidaturas); err != nil {
		return nil, errors.Wrap(errors.ErrCodeAPIListingFailed, "failed to list candidaturas", err)
	}
	return candidaturas, nil
}
