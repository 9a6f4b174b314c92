package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderLoading renders the spinner while the dashboard loads
func (m Model) renderLoading() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")
	b.WriteString(m.spinner.View())
	b.WriteString(m.styles.Muted.Render(" Carregando painel..."))
	b.WriteString("\n")
	b.WriteString(m.renderHelpLine())
	return b.String()
}

// renderVagas renders the job listings view
func (m Model) renderVagas() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")

	if m.lastError != "" {
		b.WriteString(m.renderError())
		return b.String()
	}

	b.WriteString(m.styles.Status.Render(fmt.Sprintf("Vagas (%d)", len(m.data.Vagas))))
	b.WriteString("\n\n")

	if len(m.data.Vagas) == 0 {
		b.WriteString(m.styles.Muted.Render("Nenhuma vaga publicada."))
		b.WriteString("\n")
	}
	for _, v := range m.data.Vagas {
		line := fmt.Sprintf("%s — %s (%s)", v.Titulo, v.Empresa, v.Cidade)
		if !v.Ativa {
			line = m.styles.Muted.Render(line + " [encerrada]")
		}
		b.WriteString("  • " + line + "\n")
	}

	b.WriteString(m.renderHelpLine())
	return b.String()
}

// renderEmpresas renders the employers view
func (m Model) renderEmpresas() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")

	if m.lastError != "" {
		b.WriteString(m.renderError())
		return b.String()
	}

	b.WriteString(m.styles.Status.Render(fmt.Sprintf("Empresas (%d)", len(m.data.Empresas))))
	b.WriteString("\n\n")

	if len(m.data.Empresas) == 0 {
		b.WriteString(m.styles.Muted.Render("Nenhuma empresa cadastrada."))
		b.WriteString("\n")
	}
	for _, e := range m.data.Empresas {
		b.WriteString(fmt.Sprintf("  • %s — %d vagas ativas\n", e.Nome, e.VagasAtivas))
	}

	b.WriteString(m.renderHelpLine())
	return b.String()
}

// renderCandidaturas renders the applications view
func (m Model) renderCandidaturas() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")

	if m.lastError != "" {
		b.WriteString(m.renderError())
		return b.String()
	}

	b.WriteString(m.styles.Status.Render(fmt.Sprintf("Candidaturas (%d)", len(m.data.Candidaturas))))
	b.WriteString("\n\n")

	if len(m.data.Candidaturas) == 0 {
		b.WriteString(m.styles.Muted.Render("Nenhuma candidatura enviada."))
		b.WriteString("\n")
	}
	for _, c := range m.data.Candidaturas {
		b.WriteString(fmt.Sprintf("  • %s — %s\n", c.Vaga, m.renderStatus(c.Status)))
	}

	b.WriteString(m.renderHelpLine())
	return b.String()
}

func (m Model) renderStatus(status string) string {
	switch status {
	case "aprovada":
		return m.styles.Success.Render(status)
	case "recusada":
		return m.styles.Error.Render(status)
	default:
		return m.styles.Muted.Render(status)
	}
}

// renderError renders the load failure box
func (m Model) renderError() string {
	box := m.styles.Border.
		BorderForeground(lipgloss.Color("196")). // Red border
		Render(m.styles.Error.Render("Erro: ") + m.lastError)
	return box + "\n" + m.styles.Muted.Render("Pressione r para tentar novamente.") + "\n" + m.renderHelpLine()
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")
	b.WriteString(m.styles.Status.Render("Atalhos"))
	b.WriteString("\n\n")

	keys := []struct {
		key  string
		desc string
	}{
		{"v", "vagas"},
		{"e", "empresas"},
		{"c", "candidaturas"},
		{"r", "recarregar"},
		{"?", "ajuda"},
		{"q", "sair"},
	}
	for _, k := range keys {
		b.WriteString(fmt.Sprintf("  %s  %s\n", m.styles.Key.Render(k.key), m.styles.Muted.Render(k.desc)))
	}

	return b.String()
}

// renderHelpLine renders the one-line key hint
func (m Model) renderHelpLine() string {
	return m.styles.Help.Render("v vagas • e empresas • c candidaturas • r recarregar • ? ajuda • q sair")
}

// renderGoodbye renders the exit message
func (m Model) renderGoodbye() string {
	return m.styles.Muted.Render(fmt.Sprintf("Sessão encerrada após %s.\n", m.elapsed().Round(time.Second)))
}
