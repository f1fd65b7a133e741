package report

import (
	"github.com/charmbracelet/lipgloss"

	"adsim/internal/core/domain"
)

var (
	primary = lipgloss.AdaptiveColor{Light: "#1d4ed8", Dark: "#60a5fa"}
	muted   = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}
	good    = lipgloss.Color("#16a34a")
	warn    = lipgloss.Color("#d97706")
	bad     = lipgloss.Color("#dc2626")
)

// styles are bound to the renderer of the output writer so color is only
// emitted when the writer is a terminal that supports it.
type styles struct {
	title    lipgloss.Style
	section  lipgloss.Style
	muted    lipgloss.Style
	label    lipgloss.Style
	value    lipgloss.Style
	header   lipgloss.Style
	cell     lipgloss.Style
	bar      lipgloss.Style
	border   lipgloss.Style
	impact   map[domain.Impact]lipgloss.Style
	renderer *lipgloss.Renderer
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		renderer: r,
		title: r.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),
		section: r.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginTop(1),
		muted: r.NewStyle().
			Foreground(muted),
		label: r.NewStyle().
			Foreground(muted).
			Width(18),
		value: r.NewStyle().
			Bold(true),
		header: r.NewStyle().
			Bold(true).
			Padding(0, 1),
		cell: r.NewStyle().
			Padding(0, 1),
		bar: r.NewStyle().
			Foreground(primary),
		border: r.NewStyle().
			Foreground(muted),
		impact: map[domain.Impact]lipgloss.Style{
			domain.ImpactHigh:   r.NewStyle().Foreground(bad).Bold(true),
			domain.ImpactMedium: r.NewStyle().Foreground(warn).Bold(true),
			domain.ImpactLow:    r.NewStyle().Foreground(good).Bold(true),
		},
	}
}
