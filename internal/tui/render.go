package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	addrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func (a *App) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("swipedeck"))
	b.WriteString("  ")
	b.WriteString(addrStyle.Render(a.history.Location().String()))
	b.WriteString("\n\n")
	b.WriteString(a.view.Draw(a.width))
	b.WriteString("\n\n")
	if a.status != "" {
		b.WriteString(statusStyle.Render(a.status))
		b.WriteString("\n")
	}
	b.WriteString(a.help.View(a.keys))
	return b.String()
}
