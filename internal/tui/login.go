package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// LoginInput is what the login form collects.
type LoginInput struct {
	Identifier string
	Senha      string
	Remember   bool
}

// RunLoginForm collects credentials interactively. Pre-filled fields are
// kept and skipped validation still applies on submit.
func RunLoginForm(input *LoginInput) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("E-mail ou CPF/CNPJ").
				Placeholder("maria@example.com").
				Value(&input.Identifier).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("informe seu e-mail ou documento")
					}
					return nil
				}),
			huh.NewInput().
				Title("Senha").
				EchoMode(huh.EchoModePassword).
				Value(&input.Senha).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("informe sua senha")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Manter conectado neste dispositivo?").
				Value(&input.Remember),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("login form failed: %w", err)
	}
	return nil
}
