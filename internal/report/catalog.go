package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"adsim/internal/core/catalog"
	"adsim/internal/core/domain"
)

// RenderCatalog lists every choice the wizard offers on platform p.
func RenderCatalog(w io.Writer, p domain.Platform) error {
	if !p.Valid() {
		return fmt.Errorf("unknown platform %q", p)
	}
	st := newStyles(lipgloss.NewRenderer(w))

	var b strings.Builder
	b.WriteString(st.title.Render(p.Title() + " Ads options"))
	b.WriteString("\n")

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.border).
		Headers("Objective", "Campaign types", "Bid strategies").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return st.header
			}
			return st.cell
		})
	for _, obj := range catalog.Objectives(p) {
		t.Row(
			obj.Title+" ("+obj.ID+")",
			strings.Join(catalog.IDs(catalog.CampaignTypes(p, obj.ID)), ", "),
			strings.Join(catalog.IDs(catalog.BidStrategies(p, obj.ID)), ", "),
		)
	}
	b.WriteString(t.String())
	b.WriteString("\n")

	choices := catalog.Targeting(p)
	b.WriteString(st.section.Render("Targeting"))
	b.WriteString("\n")
	for _, facet := range []struct {
		name   string
		values []string
	}{
		{"Locations", choices.Locations},
		{"Ages", choices.Ages},
		{"Genders", choices.Genders},
		{"Interests", choices.Interests},
		{"Keywords", choices.Keywords},
		{"Behaviors", choices.Behaviors},
	} {
		if len(facet.values) == 0 {
			continue
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			st.label.Render(facet.name),
			strings.Join(facet.values, ", "),
		))
		b.WriteString("\n")
	}

	b.WriteString(st.section.Render("Calls to action"))
	b.WriteString("\n")
	b.WriteString(strings.Join(catalog.CallsToAction(), ", "))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}
