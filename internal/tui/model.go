package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/portaldevagas/vagas-cli/internal/auth"
	"github.com/portaldevagas/vagas-cli/internal/dashboard"
)

// ViewType represents the current view being displayed
type ViewType int

// View type constants
const (
	// ViewVagas lists job openings
	ViewVagas ViewType = iota
	// ViewEmpresas lists registered employers
	ViewEmpresas
	// ViewCandidaturas lists the user's applications
	ViewCandidaturas
	// ViewHelp is the help screen
	ViewHelp
)

// Model is the dashboard TUI state
type Model struct {
	// Session context
	profile *auth.Profile
	route   auth.Route

	// Data state
	loader  func(ctx context.Context) (*dashboard.Data, error)
	data    *dashboard.Data
	loading bool

	// UI state
	currentView ViewType
	spinner     spinner.Model
	width       int
	height      int
	ready       bool
	quitting    bool
	startTime   time.Time

	// Error state
	lastError string

	// Styles
	styles Styles
}

// Styles contains lipgloss styles for the TUI
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Muted    lipgloss.Style
	Border   lipgloss.Style
	Help     lipgloss.Style
	Key      lipgloss.Style
}

// NewModel creates a dashboard model for an authenticated user.
func NewModel(profile *auth.Profile, loader func(ctx context.Context) (*dashboard.Data, error)) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))

	return Model{
		profile:     profile,
		route:       profile.Role.Landing(),
		loader:      loader,
		loading:     true,
		currentView: ViewVagas,
		spinner:     sp,
		startTime:   time.Now(),
		styles:      DefaultStyles(),
	}
}

// DefaultStyles returns the default lipgloss styles
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")). // Purple
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")). // Gray
			MarginBottom(1),
		Status: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")), // Cyan
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")), // Red
		Success: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("46")), // Green
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")), // Gray
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")). // Purple
			Padding(1, 2),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")). // Gray
			MarginTop(1),
		Key: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")), // Purple
	}
}

// Custom messages for dashboard events

// DataLoadedMsg carries the loaded dashboard payload
type DataLoadedMsg struct {
	Data *dashboard.Data
}

// LoadFailedMsg indicates the dashboard load failed
type LoadFailedMsg struct {
	Error string
}

// NavigateMsg switches the dashboard to another route
type NavigateMsg struct {
	Route auth.Route
}

// Init starts the spinner and kicks off the dashboard load
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load())
}

func (m Model) load() tea.Cmd {
	if m.loader == nil {
		return nil
	}
	loader := m.loader
	return func() tea.Msg {
		data, err := loader(context.Background())
		if err != nil {
			return LoadFailedMsg{Error: err.Error()}
		}
		return DataLoadedMsg{Data: data}
	}
}

// Update handles messages and updates the model state (required by Bubble Tea)
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case DataLoadedMsg:
		m.loading = false
		m.data = msg.Data
		m.lastError = ""
		return m, nil

	case LoadFailedMsg:
		m.loading = false
		m.lastError = msg.Error
		return m, nil

	case NavigateMsg:
		m.route = msg.Route
		if msg.Route == auth.RouteLogin {
			// Session ended under us
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	return m, nil
}

// View renders the TUI (required by Bubble Tea)
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	if m.quitting {
		return m.renderGoodbye()
	}

	if m.loading {
		return m.renderLoading()
	}

	switch m.currentView {
	case ViewVagas:
		return m.renderVagas()
	case ViewEmpresas:
		return m.renderEmpresas()
	case ViewCandidaturas:
		return m.renderCandidaturas()
	case ViewHelp:
		return m.renderHelp()
	default:
		return "Unknown view"
	}
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "v":
		m.currentView = ViewVagas

	case "e":
		m.currentView = ViewEmpresas

	case "c":
		m.currentView = ViewCandidaturas

	case "r":
		if !m.loading {
			m.loading = true
			m.lastError = ""
			return m, tea.Batch(m.spinner.Tick, m.load())
		}

	case "?":
		if m.currentView == ViewHelp {
			m.currentView = ViewVagas
		} else {
			m.currentView = ViewHelp
		}

	case "esc":
		m.currentView = ViewVagas
	}

	return m, nil
}

// Helper functions

func (m Model) elapsed() time.Duration {
	return time.Since(m.startTime)
}

func (m Model) header() string {
	title := m.styles.Title.Render("Portal de Vagas")
	who := m.styles.Subtitle.Render(fmt.Sprintf("%s (%s) — %s", m.profile.Nome, m.profile.Role, m.route))
	return title + "\n" + who + "\n"
}
