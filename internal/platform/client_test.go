package platform

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/portaldevagas/vagas-cli/internal/auth"
	"github.com/portaldevagas/vagas-cli/internal/errors"
)

var testSigningKey = []byte("test-signing-key")

// newFakeBackend stands in for the Portal de Vagas API. It checks
// credentials against a bcrypt hash and mints real HS256 tokens, so the
// client tests exercise the same token shape production would see.
func newFakeBackend(t *testing.T) *httptest.Server {
	t.Helper()

	senhaHash, err := bcrypt.GenerateFromPassword([]byte("segredo123"), bcrypt.MinCost)
	require.NoError(t, err)

	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		if req.Identifier != "maria@example.com" ||
			bcrypt.CompareHashAndPassword(senhaHash, []byte(req.Senha)) != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "credenciais inválidas"})
			return
		}

		claims := auth.TokenClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-1",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
			Role:   auth.RoleCidadao,
			UserID: "user-1",
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSigningKey)
		require.NoError(t, err)

		json.NewEncoder(w).Encode(LoginResponse{Token: token})
	})

	mux.HandleFunc("GET /api/v1/cidadaos/user-1", func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(auth.Profile{
			ID:    "user-1",
			Role:  auth.RoleCidadao,
			Nome:  "Maria Silva",
			Email: "maria@example.com",
			CPF:   "123.456.789-00",
		})
	})

	mux.HandleFunc("PATCH /api/v1/cidadaos/user-1", func(w http.ResponseWriter, r *http.Request) {
		var patch auth.ProfilePatch
		require.NoError(t, json.NewDecoder(r.Body).Decode(&patch))
		prof := auth.Profile{
			ID:    "user-1",
			Role:  auth.RoleCidadao,
			Nome:  "Maria Silva",
			Email: "maria@example.com",
		}
		json.NewEncoder(w).Encode(prof.Apply(patch))
	})

	mux.HandleFunc("GET /api/v1/vagas", func(w http.ResponseWriter, r *http.Request) {
		vagas := []Vaga{
			{ID: "v1", Titulo: "Desenvolvedor Go", Empresa: "Acme", Cidade: "Recife", Ativa: true},
			{ID: "v2", Titulo: "Analista de Dados", Empresa: "Beta", Cidade: "Olinda", Ativa: true},
		}
		if busca := r.URL.Query().Get("busca"); busca != "" {
			var filtered []Vaga
			for _, v := range vagas {
				if strings.Contains(strings.ToLower(v.Titulo), strings.ToLower(busca)) {
					filtered = append(filtered, v)
				}
			}
			vagas = filtered
		}
		json.NewEncoder(w).Encode(vagas)
	})

	mux.HandleFunc("GET /api/v1/empresas", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]Empresa{
			{ID: "e1", Nome: "Acme", CNPJ: "00.000.000/0001-00", VagasAtivas: 3},
		})
	})

	mux.HandleFunc("GET /api/v1/candidaturas", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]Candidatura{
			{ID: "c1", VagaID: "v1", Vaga: "Desenvolvedor Go", Status: "em_analise"},
		})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestLogin(t *testing.T) {
	server := newFakeBackend(t)
	client := NewClient(server.URL)

	token, err := client.Login(context.Background(), "maria@example.com", "segredo123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := auth.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, auth.RoleCidadao, claims.Role)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestLoginInvalidCredentials(t *testing.T) {
	server := newFakeBackend(t)
	client := NewClient(server.URL)

	tests := []struct {
		name       string
		identifier string
		senha      string
	}{
		{name: "wrong password", identifier: "maria@example.com", senha: "errada"},
		{name: "unknown identifier", identifier: "nobody@example.com", senha: "segredo123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.Login(context.Background(), tt.identifier, tt.senha)
			require.Error(t, err)

			var coded *errors.VagasError
			require.ErrorAs(t, err, &coded)
			assert.Equal(t, errors.ErrCodeAuthInvalidCredentials, coded.Code)
		})
	}
}

func TestLoginUnreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1")

	_, err := client.Login(context.Background(), "maria@example.com", "segredo123")
	require.Error(t, err)

	var coded *errors.VagasError
	require.ErrorAs(t, err, &coded)
	assert.Equal(t, errors.ErrCodeAPIUnreachable, coded.Code)
}

func TestFetchProfile(t *testing.T) {
	server := newFakeBackend(t)
	client := NewClient(server.URL)
	client.SetToken("fake-token")

	profile, err := client.FetchProfile(context.Background(), auth.RoleCidadao, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", profile.Nome)
	assert.Equal(t, auth.RoleCidadao, profile.Role)
	assert.Equal(t, "123.456.789-00", profile.CPF)
}

func TestFetchProfileUnknownRole(t *testing.T) {
	server := newFakeBackend(t)
	client := NewClient(server.URL)

	_, err := client.FetchProfile(context.Background(), auth.Role("gerente"), "user-1")
	require.Error(t, err)
}

func TestUpdateProfile(t *testing.T) {
	server := newFakeBackend(t)
	client := NewClient(server.URL)
	client.SetToken("fake-token")

	telefone := "(81) 99999-0000"
	profile, err := client.UpdateProfile(context.Background(), auth.RoleCidadao, "user-1", auth.ProfilePatch{
		Telefone: &telefone,
	})
	require.NoError(t, err)
	assert.Equal(t, telefone, profile.Telefone)
	assert.Equal(t, "Maria Silva", profile.Nome)
}

func TestListVagas(t *testing.T) {
	server := newFakeBackend(t)
	client := NewClient(server.URL)

	vagas, err := client.ListVagas(context.Background(), VagaFilter{})
	require.NoError(t, err)
	require.Len(t, vagas, 2)

	filtered, err := client.ListVagas(context.Background(), VagaFilter{Busca: "go"})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Desenvolvedor Go", filtered[0].Titulo)
}

func TestListEmpresas(t *testing.T) {
	server := newFakeBackend(t)
	client := NewClient(server.URL)

	empresas, err := client.ListEmpresas(context.Background())
	require.NoError(t, err)
	require.Len(t, empresas, 1)
	assert.Equal(t, "Acme", empresas[0].Nome)
}

func TestListCandidaturas(t *testing.T) {
	server := newFakeBackend(t)
	client := NewClient(server.URL)

	candidaturas, err := client.ListCandidaturas(context.Background())
	require.NoError(t, err)
	require.Len(t, candidaturas, 1)
	assert.Equal(t, "em_analise", candidaturas[0].Status)
}

func TestStatusErrorMessage(t *testing.T) {
	err := &StatusError{StatusCode: 500, Message: "boom"}
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "boom")

	bare := &StatusError{StatusCode: 404}
	assert.Contains(t, bare.Error(), "404")
}
