package domain

// Chart labels for the completion bar chart.
const (
	ChartTitle  = "Habit Completion Count"
	ChartXLabel = "Habit"
	ChartYLabel = "Days Completed"
)

// Bar is a single labelled value.
type Bar struct {
	Label string
	Value int
}

// Chart describes a titled bar chart independent of how it is drawn.
type Chart struct {
	Title  string
	XLabel string
	YLabel string
	Bars   []Bar
}

// CompletionChart builds the completion-count chart for a snapshot.
func CompletionChart(s Snapshot) Chart {
	bars := make([]Bar, 0, len(s))
	for _, entry := range s {
		bars = append(bars, Bar{Label: entry.DisplayName, Value: entry.Count})
	}
	return Chart{
		Title:  ChartTitle,
		XLabel: ChartXLabel,
		YLabel: ChartYLabel,
		Bars:   bars,
	}
}

// MaxValue returns the largest bar value, or 0 for an empty chart.
func (c Chart) MaxValue() int {
	highest := 0
	for _, b := range c.Bars {
		if b.Value > highest {
			highest = b.Value
		}
	}
	return highest
}
