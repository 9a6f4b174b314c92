package auth

// Profile is the role-shaped user record owned by the session while it is
// live. The shared fields are populated for every role; the role-specific
// fields are only set for the matching role and omitted on the wire
// otherwise.
type Profile struct {
	// Shared fields, present for every role
	ID       string `json:"id"`
	Role     Role   `json:"role"`
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	Endereco string `json:"endereco"`

	// Citizen
	CPF string `json:"cpf,omitempty"`

	// Company
	CNPJ        string `json:"cnpj,omitempty"`
	RazaoSocial string `json:"razao_social,omitempty"`

	// Secretariat
	Secretaria string `json:"secretaria,omitempty"`

	// Admin / super-admin
	Permissoes []string `json:"permissoes,omitempty"`
}

// ProfilePatch is a partial profile update. Nil fields are left untouched;
// set fields win over the current value (last write wins, no conflict
// detection).
type ProfilePatch struct {
	Nome        *string   `json:"nome,omitempty"`
	Email       *string   `json:"email,omitempty"`
	Telefone    *string   `json:"telefone,omitempty"`
	Endereco    *string   `json:"endereco,omitempty"`
	CPF         *string   `json:"cpf,omitempty"`
	CNPJ        *string   `json:"cnpj,omitempty"`
	RazaoSocial *string   `json:"razao_social,omitempty"`
	Secretaria  *string   `json:"secretaria,omitempty"`
	Permissoes  *[]string `json:"permissoes,omitempty"`
}

// IsZero reports whether the patch carries no changes.
func (p ProfilePatch) IsZero() bool {
	return p.Nome == nil && p.Email == nil && p.Telefone == nil &&
		p.Endereco == nil && p.CPF == nil && p.CNPJ == nil &&
		p.RazaoSocial == nil && p.Secretaria == nil && p.Permissoes == nil
}

// Apply returns a copy of the profile with the patch merged in. The merge is
// shallow: each set patch field replaces the corresponding profile field.
func (prof Profile) Apply(p ProfilePatch) Profile {
	out := prof
	if p.Nome != nil {
		out.Nome = *p.Nome
	}
	if p.Email != nil {
		out.Email = *p.Email
	}
	if p.Telefone != nil {
		out.Telefone = *p.Telefone
	}
	if p.Endereco != nil {
		out.Endereco = *p.Endereco
	}
	if p.CPF != nil {
		out.CPF = *p.CPF
	}
	if p.CNPJ != nil {
		out.CNPJ = *p.CNPJ
	}
	if p.RazaoSocial != nil {
		out.RazaoSocial = *p.RazaoSocial
	}
	if p.Secretaria != nil {
		out.Secretaria = *p.Secretaria
	}
	if p.Permissoes != nil {
		out.Permissoes = append([]string(nil), (*p.Permissoes)...)
	}
	return out
}
