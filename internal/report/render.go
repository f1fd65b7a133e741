// Package report renders simulation reports and catalog listings for the
// terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"adsim/internal/core/domain"
)

// barWidth is the width of the longest bar in the hourly chart.
const barWidth = 30

// Options select the optional parts of a rendered report.
type Options struct {
	// Day is the index of the day whose hourly activity is charted. A
	// negative value charts nothing.
	Day int
}

var printer = message.NewPrinter(language.English)

// Render writes a human readable report to w.
func Render(w io.Writer, r domain.Report, opts Options) error {
	st := newStyles(lipgloss.NewRenderer(w))

	var b strings.Builder
	title := "Campaign performance"
	if name := r.Platform.Title(); name != "" {
		title += " · " + name + " Ads"
	}
	b.WriteString(st.title.Render(title))
	b.WriteString("\n")
	b.WriteString(st.muted.Render(fmt.Sprintf("seed %d · generated %s", r.Seed, r.GeneratedAt.Format("2006-01-02 15:04 MST"))))
	b.WriteString("\n")

	b.WriteString(st.section.Render("Overview"))
	b.WriteString("\n")
	m := r.Metrics
	for _, kv := range [][2]string{
		{"Impressions", integer(m.Impressions)},
		{"Clicks", integer(m.Clicks)},
		{"CTR", percent(m.CTR * 100)},
		{"Conversions", integer(m.Conversions)},
		{"CPC", money(m.CPC)},
		{"CPA", money(m.CPA)},
		{"ROAS", printer.Sprintf("%.2fx", m.ROAS)},
		{"Spend", money(m.Spend)},
	} {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, st.label.Render(kv[0]), st.value.Render(kv[1])))
		b.WriteString("\n")
	}

	if len(r.Daily) > 0 {
		b.WriteString(st.section.Render("Daily performance"))
		b.WriteString("\n")
		b.WriteString(dailyTable(st, r.Daily))
		b.WriteString("\n")
	}

	if opts.Day >= 0 && opts.Day < len(r.Daily) {
		b.WriteString(hourlyChart(st, r.Daily[opts.Day]))
	}

	if len(r.Recommendations) > 0 {
		b.WriteString(st.section.Render("Recommendations"))
		b.WriteString("\n")
		for _, rec := range r.Recommendations {
			badge := st.impact[rec.Impact].Render(fmt.Sprintf("[%s]", rec.Impact))
			b.WriteString(fmt.Sprintf("%s %s: %s\n", badge, st.value.Render(rec.Type), rec.Description))
		}
	}

	b.WriteString(breakdown(st, r.Breakdown))

	_, err := io.WriteString(w, b.String())
	return err
}

func dailyTable(st styles, days []domain.DayPerformance) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.border).
		Headers("Day", "Date", "Impressions", "Clicks", "Conv.", "CTR", "CPC", "Spend", "Peak").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return st.header
			}
			if col >= 2 {
				return st.cell.Align(lipgloss.Right)
			}
			return st.cell
		})
	for _, d := range days {
		t.Row(
			d.Label,
			d.Date.Format("Jan 2"),
			integer(d.Impressions),
			integer(d.Clicks),
			integer(d.Conversions),
			percent(d.CTR),
			money(d.CPC),
			money(d.Spend),
			hourLabel(d.PeakHour),
		)
	}
	return t.String()
}

func hourlyChart(st styles, d domain.DayPerformance) string {
	var b strings.Builder
	b.WriteString(st.section.Render(fmt.Sprintf("Hourly activity · %s %s", d.Label, d.Date.Format("Jan 2"))))
	b.WriteString("\n")
	b.WriteString(st.muted.Render(fmt.Sprintf("peak at %s with %s clicks", hourLabel(d.PeakHour), integer(d.PeakClicks))))
	b.WriteString("\n")

	var top int64
	for _, h := range d.Hourly {
		top = max(top, h.Clicks)
	}
	for _, h := range d.Hourly {
		n := 0
		if top > 0 {
			n = int(h.Clicks * barWidth / top)
		}
		bar := st.bar.Render(strings.Repeat("█", n))
		b.WriteString(fmt.Sprintf("%s %s %s\n", hourLabel(h.Hour), bar, st.muted.Render(integer(h.Clicks))))
	}
	return b.String()
}

func breakdown(st styles, bd domain.Breakdown) string {
	var b strings.Builder
	if len(bd.Devices) > 0 {
		b.WriteString(st.section.Render("Conversions by device"))
		b.WriteString("\n")
		b.WriteString(shares(st, bd.Devices))
	}
	if len(bd.Regions) > 0 {
		b.WriteString(st.section.Render("Top regions"))
		b.WriteString("\n")
		b.WriteString(shares(st, bd.Regions))
	}

	b.WriteString(st.section.Render("Scores"))
	b.WriteString("\n")
	for _, kv := range []struct {
		name  string
		score float64
	}{
		{"CTR", bd.Scores.CTR},
		{"Conversion rate", bd.Scores.ConversionRate},
		{"ROAS", bd.Scores.ROAS},
		{"Cost efficiency", bd.Scores.CostEfficiency},
	} {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, st.label.Render(kv.name), gauge(st, kv.score)))
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, st.label.Render("Est. revenue"), st.value.Render(money(bd.EstimatedRevenue))))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, st.label.Render("ROI"), st.value.Render(percent(bd.ROI))))
	b.WriteString("\n")
	return b.String()
}

func shares(st styles, ss []domain.Share) string {
	var b strings.Builder
	for _, s := range ss {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, st.label.Render(s.Name), st.value.Render(integer(s.Value))))
		b.WriteString("\n")
	}
	return b.String()
}

// gauge draws a 0..100 score as a ten cell bar.
func gauge(st styles, score float64) string {
	filled := min(max(int(score/10), 0), 10)
	return st.bar.Render(strings.Repeat("■", filled)) +
		st.muted.Render(strings.Repeat("□", 10-filled)) +
		" " + printer.Sprintf("%.0f", score)
}

func integer(v int64) string {
	return printer.Sprintf("%d", v)
}

func money(v float64) string {
	return printer.Sprintf("$%.2f", v)
}

func percent(v float64) string {
	return printer.Sprintf("%.2f%%", v)
}

func hourLabel(h int) string {
	return fmt.Sprintf("%02d:00", h)
}
