package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_Known(t *testing.T) {
	for _, role := range Roles() {
		assert.True(t, role.Known(), "role %s should be known", role)
	}
	assert.False(t, Role("gerente").Known())
	assert.False(t, Role("").Known())
}

func TestRole_ProfilePath(t *testing.T) {
	tests := []struct {
		role Role
		path string
	}{
		{RoleSuperAdmin, "/api/v1/admins"},
		{RoleAdmin, "/api/v1/admins"},
		{RoleCidadao, "/api/v1/cidadaos"},
		{RoleSecretaria, "/api/v1/secretarias"},
		{RoleEmpresa, "/api/v1/empresas"},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			path, err := tt.role.ProfilePath()
			require.NoError(t, err)
			assert.Equal(t, tt.path, path)
		})
	}
}

func TestRole_ProfilePath_Unknown(t *testing.T) {
	_, err := Role("estagiario").ProfilePath()
	require.Error(t, err)
	assert.True(t, IsAuthError(err, ErrRoleUnknown))
}

func TestRole_Landing(t *testing.T) {
	assert.Equal(t, RouteAdmin, RoleSuperAdmin.Landing())
	assert.Equal(t, RouteAdmin, RoleAdmin.Landing())
	assert.Equal(t, RoutePainel, RoleCidadao.Landing())
	assert.Equal(t, RoutePainel, RoleSecretaria.Landing())
	assert.Equal(t, RoutePainel, RoleEmpresa.Landing())

	// Unknown roles land on the root route.
	assert.Equal(t, RouteRoot, Role("estagiario").Landing())
}

func mintToken(t *testing.T, role Role, userID string) string {
	t.Helper()

	claims := TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user@example.com",
			Issuer:    "portaldevagas",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		Role:   role,
		UserID: userID,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestParseAccessToken(t *testing.T) {
	token := mintToken(t, RoleCidadao, "cid-42")

	claims, err := ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, RoleCidadao, claims.Role)
	assert.Equal(t, "cid-42", claims.UserID)
	assert.Equal(t, "portaldevagas", claims.Issuer)
	assert.Equal(t, "user@example.com", claims.Subject)
}

func TestParseAccessToken_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-token"},
		{"truncated", "eyJhbGciOiJIUzI1NiJ9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAccessToken(tt.token)
			require.Error(t, err)
			assert.True(t, IsAuthError(err, ErrTokenMalformed))
		})
	}
}

func TestProfile_Apply(t *testing.T) {
	prof := Profile{
		ID:       "cid-42",
		Role:     RoleCidadao,
		Nome:     "Maria Silva",
		Email:    "maria@example.com",
		Telefone: "83 99999-0000",
		Endereco: "Rua das Flores, 10",
		CPF:      "123.456.789-00",
	}

	telefone := "83 98888-1111"
	updated := prof.Apply(ProfilePatch{Telefone: &telefone})

	// Only the patched field changes.
	assert.Equal(t, telefone, updated.Telefone)
	assert.Equal(t, prof.ID, updated.ID)
	assert.Equal(t, prof.Nome, updated.Nome)
	assert.Equal(t, prof.Email, updated.Email)
	assert.Equal(t, prof.Endereco, updated.Endereco)
	assert.Equal(t, prof.CPF, updated.CPF)

	// The original is untouched.
	assert.Equal(t, "83 99999-0000", prof.Telefone)
}

func TestProfile_Apply_EmptyPatch(t *testing.T) {
	prof := Profile{ID: "emp-1", Role: RoleEmpresa, CNPJ: "00.000.000/0001-00"}

	patch := ProfilePatch{}
	assert.True(t, patch.IsZero())
	assert.Equal(t, prof, prof.Apply(patch))
}

func TestProfile_Apply_Permissoes(t *testing.T) {
	prof := Profile{ID: "adm-1", Role: RoleAdmin, Permissoes: []string{"vagas:read"}}

	perms := []string{"vagas:read", "vagas:write"}
	updated := prof.Apply(ProfilePatch{Permissoes: &perms})
	assert.Equal(t, perms, updated.Permissoes)

	// The patch slice is copied, not aliased.
	perms[0] = "mutated"
	assert.Equal(t, "vagas:read", updated.Permissoes[0])
}
