// Package chart draws habit completion counts as a terminal bar chart.
package chart

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/doeshing/habits/internal/domain"
)

const (
	barRune      = "█"
	baselineRune = "─"
	columnGap    = 2
)

// Options controls chart geometry and styling.
type Options struct {
	BarColor     string
	MaxBarHeight int
	BarWidth     int
}

// OptionsFrom converts renderer settings into drawing options.
func OptionsFrom(settings domain.RendererSettings) Options {
	return Options{
		BarColor:     settings.BarColor,
		MaxBarHeight: settings.MaxBarHeight,
		BarWidth:     settings.BarWidth,
	}.withDefaults()
}

func (o Options) withDefaults() Options {
	if o.BarColor == "" {
		o.BarColor = domain.DefaultBarColor
	}
	if o.MaxBarHeight < domain.MinBarHeight {
		o.MaxBarHeight = domain.DefaultMaxBarHeight
	}
	if o.BarWidth < 1 {
		o.BarWidth = domain.DefaultBarWidth
	}
	return o
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	axisStyle  = lipgloss.NewStyle().Faint(true)
)

// Draw lays out a vertical bar chart: the title, the y-axis label, one column
// per bar (value above, bar, baseline, label below) and the x-axis label.
func Draw(c domain.Chart, opts Options) string {
	opts = opts.withDefaults()
	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(opts.BarColor))
	highest := c.MaxValue()

	columns := make([]string, 0, len(c.Bars))
	for i, bar := range c.Bars {
		col := drawColumn(bar, scaledHeight(bar.Value, highest, opts.MaxBarHeight), opts.BarWidth, barStyle)
		if i < len(c.Bars)-1 {
			col = lipgloss.NewStyle().PaddingRight(columnGap).Render(col)
		}
		columns = append(columns, col)
	}
	body := lipgloss.JoinHorizontal(lipgloss.Bottom, columns...)
	width := lipgloss.Width(body)

	sections := []string{
		lipgloss.PlaceHorizontal(max(width, lipgloss.Width(c.Title)), lipgloss.Center, titleStyle.Render(c.Title)),
		axisStyle.Render(c.YLabel),
		body,
		lipgloss.PlaceHorizontal(max(width, lipgloss.Width(c.XLabel)), lipgloss.Center, axisStyle.Render(c.XLabel)),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// scaledHeight maps value onto [0, maxHeight]; any non-zero value gets at least one row.
func scaledHeight(value, highest, maxHeight int) int {
	if value <= 0 || highest <= 0 {
		return 0
	}
	if highest <= maxHeight {
		return value
	}
	h := value * maxHeight / highest
	if h == 0 {
		h = 1
	}
	return h
}

func drawColumn(bar domain.Bar, height, barWidth int, barStyle lipgloss.Style) string {
	width := max(barWidth, lipgloss.Width(bar.Label), len(strconv.Itoa(bar.Value)))

	lines := make([]string, 0, height+3)
	lines = append(lines, strconv.Itoa(bar.Value))
	block := barStyle.Render(strings.Repeat(barRune, barWidth))
	for i := 0; i < height; i++ {
		lines = append(lines, block)
	}
	lines = append(lines, axisStyle.Render(strings.Repeat(baselineRune, width)))
	lines = append(lines, bar.Label)

	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(strings.Join(lines, "\n"))
}
