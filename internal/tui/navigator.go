package tui

import (
	"io"

	"github.com/portaldevagas/vagas-cli/internal/auth"
)

// PrintNavigator announces route changes on a writer. It is the non-TUI
// rendition of navigation: commands that do not run the full dashboard
// still show where the session landed.
type PrintNavigator struct {
	Out    io.Writer
	styles Styles
}

// NewPrintNavigator creates a navigator writing to out.
func NewPrintNavigator(out io.Writer) *PrintNavigator {
	return &PrintNavigator{Out: out, styles: DefaultStyles()}
}

// Navigate implements auth.Navigator.
func (n *PrintNavigator) Navigate(route auth.Route) {
	if n.Out == nil {
		return
	}
	arrow := n.styles.Key.Render("→")
	target := n.styles.Status.Render(string(route))
	io.WriteString(n.Out, arrow+" "+target+"\n")
}

// ProgramNavigator forwards route changes into a running Bubble Tea
// program as NavigateMsg values.
type ProgramNavigator struct {
	send func(msg interface{})
}

// NewProgramNavigator wraps a program's Send func.
func NewProgramNavigator(send func(msg interface{})) *ProgramNavigator {
	return &ProgramNavigator{send: send}
}

// Navigate implements auth.Navigator.
func (n *ProgramNavigator) Navigate(route auth.Route) {
	if n.send == nil {
		return
	}
	n.send(NavigateMsg{Route: route})
}

var _ auth.Navigator = (*PrintNavigator)(nil)
var _ auth.Navigator = (*ProgramNavigator)(nil)
