// Package auth defines the identity model for the Portal de Vagas client:
// the five platform roles, the claims carried by the access token, the
// role-shaped user profiles, and the navigation routes each role lands on.
//
// The role table in this package is the single place where a role is bound
// to its profile endpoint and landing route. Adding a role is one table
// entry; everything else (login, guards, profile fetch) goes through it.
package auth

import "fmt"

// Role identifies the kind of account behind a session.
type Role string

// Platform roles.
const (
	// RoleSuperAdmin is the platform operator role.
	RoleSuperAdmin Role = "super_admin"
	// RoleAdmin is the municipal administrator role.
	RoleAdmin Role = "admin"
	// RoleCidadao is a citizen looking for vagas.
	RoleCidadao Role = "cidadao"
	// RoleSecretaria is a municipal secretariat account.
	RoleSecretaria Role = "secretaria"
	// RoleEmpresa is a company account publishing vagas.
	RoleEmpresa Role = "empresa"
)

// Route is a navigation target inside the client.
//
// Routes keep the path shape of the web front end so that deep links and
// server-issued redirects stay meaningful.
type Route string

// Client routes.
const (
	RouteRoot   Route = "/"
	RouteLogin  Route = "/login"
	RouteAdmin  Route = "/admin"
	RoutePainel Route = "/painel"
)

// Navigator switches the client to another route.
//
// The TUI implements it by swapping views; tests use a recorder.
type Navigator interface {
	Navigate(route Route)
}

// roleEntry binds a role to its profile endpoint and landing route.
type roleEntry struct {
	// profilePath is the API path prefix for this role's profile resource.
	profilePath string
	// landing is where the client navigates after login.
	landing Route
}

// roleTable is the role dispatch table. Exhaustive over all Role constants.
var roleTable = map[Role]roleEntry{
	RoleSuperAdmin: {profilePath: "/api/v1/admins", landing: RouteAdmin},
	RoleAdmin:      {profilePath: "/api/v1/admins", landing: RouteAdmin},
	RoleCidadao:    {profilePath: "/api/v1/cidadaos", landing: RoutePainel},
	RoleSecretaria: {profilePath: "/api/v1/secretarias", landing: RoutePainel},
	RoleEmpresa:    {profilePath: "/api/v1/empresas", landing: RoutePainel},
}

// Known reports whether r is one of the five platform roles.
func (r Role) Known() bool {
	_, ok := roleTable[r]
	return ok
}

// ProfilePath returns the API path prefix for this role's profile resource.
// Returns ErrRoleUnknown for roles outside the table.
func (r Role) ProfilePath() (string, error) {
	entry, ok := roleTable[r]
	if !ok {
		return "", NewError(ErrRoleUnknown, fmt.Sprintf("unknown role %q", r), map[string]interface{}{
			"role": string(r),
		})
	}
	return entry.profilePath, nil
}

// Landing returns the route a user of this role lands on after login.
// Unknown roles land on the root route.
func (r Role) Landing() Route {
	entry, ok := roleTable[r]
	if !ok {
		return RouteRoot
	}
	return entry.landing
}

// Roles returns all known roles. Useful for validation and help output.
func Roles() []Role {
	return []Role{RoleSuperAdmin, RoleAdmin, RoleCidadao, RoleSecretaria, RoleEmpresa}
}
