package svg

import (
	"fmt"
	"strings"

	"github.com/DannyahIA/profile-metrics/internal/models"
)

// activityColor maps a day's commit count to a cell color and opacity.
// Bands are a ratio of the window's busiest day, not absolute counts.
func (r *Renderer) activityColor(count, maxCount int) (string, float64) {
	c := r.theme.Colors
	if count == 0 {
		return c.Border, 0.2
	}
	if maxCount == 0 {
		return c.Success, 0.3
	}

	ratio := float64(count) / float64(maxCount)
	switch {
	case ratio >= 0.8:
		return c.Success, 1.0
	case ratio >= 0.5:
		return c.Success, 0.7
	case ratio >= 0.25:
		return c.Accent, 0.6
	default:
		return c.Accent, 0.4
	}
}

// ActivityCalendar renders the last thirty days as a ten-column grid with
// an intensity legend and the peak day highlighted
func (r *Renderer) ActivityCalendar(m models.Metrics) string {
	const width, height = 1200, 380
	c := r.theme.Colors

	counts := make(map[string]int)
	for _, day := range m.DailyStats.CommitsPerDay {
		counts[day.Date] = day.Count
	}

	type calendarDay struct {
		date  string
		label string
		num   int
		count int
	}

	today := r.now
	var days []calendarDay
	for i := 29; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)
		key := date.Format("2006-01-02")
		days = append(days, calendarDay{
			date:  key,
			label: date.Format("January 02, 2006"),
			num:   date.Day(),
			count: counts[key],
		})
	}

	totalCommits := 0
	maxCount := 0
	activeDays := 0
	peakIdx := -1
	for i, d := range days {
		totalCommits += d.count
		if d.count > 0 {
			activeDays++
		}
		if d.count > maxCount {
			maxCount = d.count
			peakIdx = i
		}
	}
	avgPerDay := float64(totalCommits) / 30

	// Trend vs the thirty days before this window
	prevTotal := 0
	for i := 59; i >= 30; i-- {
		prevTotal += counts[today.AddDate(0, 0, -i).Format("2006-01-02")]
	}
	arrow, trendColor, change := r.trendIndicator(float64(totalCommits), float64(prevTotal))

	var b strings.Builder
	fmt.Fprintf(&b, `<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`+"\n", width, height)
	b.WriteString("    <style>\n")
	b.WriteString(r.baseStyles())
	b.WriteString(r.animations())
	b.WriteString("\n    </style>\n")
	fmt.Fprintf(&b, `    <rect width="%d" height="%d" fill="%s" rx="12"/>`+"\n", width, height, c.Card)
	b.WriteString(`    <text class="title animated" x="40" y="45">📊 Activity Calendar</text>` + "\n")
	b.WriteString(`    <text class="subtitle animated" x="40" y="70">Last 30 days of contribution activity</text>` + "\n")

	// Metrics panel
	const metricsX, metricsY = 40, 110
	peakText := "N/A • 0 commits"
	if peakIdx >= 0 && maxCount > 0 {
		date := today.AddDate(0, 0, -(29 - peakIdx))
		peakText = fmt.Sprintf("%s • %d commits", date.Format("Jan 02"), maxCount)
	}
	fmt.Fprintf(&b, `    <g class="slide-up" style="animation-delay: 0.1s">
        <rect x="%d" y="%d" width="360" height="240" rx="12" fill="%s" opacity="0.6" stroke="%s" stroke-width="1" stroke-opacity="0.3"/>
        <text class="label" x="%d" y="%d">Total Commits</text>
        <text x="%d" y="%d" style="font-size: 32px; font-weight: 700; fill: %s">%d</text>
        <text x="%d" y="%d" style="font-size: 13px; font-weight: 600; fill: %s">%s %s vs prev</text>
        <line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="1" opacity="0.3"/>
        <text class="label-small" x="%d" y="%d">🏆 Most Productive Day</text>
        <text x="%d" y="%d" style="font-size: 12px; font-weight: 500; fill: %s">%s</text>
        <text class="label-small" x="%d" y="%d">📈 Performance</text>
        <text class="label-small" x="%d" y="%d">Active: %d/30 days (%.0f%%)</text>
        <text class="label-small" x="%d" y="%d">Streak: 🔥 %d days • Avg: %.1f/day</text>
    </g>`+"\n",
		metricsX, metricsY, c.Background, c.Border,
		metricsX+24, metricsY+30,
		metricsX+24, metricsY+70, c.Accent, totalCommits,
		metricsX+24, metricsY+90, trendColor, arrow, change,
		metricsX+24, metricsY+110, metricsX+336, metricsY+110, c.Border,
		metricsX+24, metricsY+130,
		metricsX+24, metricsY+150, c.Warning, peakText,
		metricsX+24, metricsY+180,
		metricsX+24, metricsY+200, activeDays, float64(activeDays)/30*100,
		metricsX+24, metricsY+215, m.Streak.Current, avgPerDay)

	// Calendar grid: 10 columns, 42px cells, 6px spacing
	const (
		gridX       = 440
		gridY       = 110
		cellSize    = 42
		cellSpacing = 6
		cellsPerRow = 10
	)

	fmt.Fprintf(&b, `    <g class="animated" style="animation-delay: 0.2s">
        <text class="label" x="%d" y="%d">%s - %s</text>`+"\n",
		gridX, gridY-10,
		today.AddDate(0, 0, -29).Format("Jan 02"), today.Format("Jan 02, 2006"))

	for i, d := range days {
		row := i / cellsPerRow
		col := i % cellsPerRow
		x := gridX + col*(cellSize+cellSpacing)
		y := gridY + 20 + row*(cellSize+cellSpacing+20)

		color, opacity := r.activityColor(d.count, maxCount)

		isPeak := peakIdx == i && d.count > 0
		strokeColor := color
		strokeWidth := "1"
		extraClass := ""
		if isPeak {
			strokeColor = c.Warning
			strokeWidth = "2.5"
			extraClass = " pulse"
		}

		fmt.Fprintf(&b, `        <g>
            <rect x="%d" y="%d" width="%d" height="%d" rx="6" fill="%s" opacity="%.1f" stroke="%s" stroke-width="%s" class="slide-up%s">
                <title>%s: %d commits</title>
            </rect>
            <text class="label-small" x="%d" y="%d" text-anchor="middle">%d</text>
        </g>`+"\n",
			x, y, cellSize, cellSize, color, opacity, strokeColor, strokeWidth, extraClass,
			d.label, d.count,
			x+cellSize/2, y+cellSize+12, d.num)
	}
	b.WriteString("    </g>\n")

	// Intensity legend
	legendY := gridY + 20 + 3*(cellSize+cellSpacing+20) + 20
	fmt.Fprintf(&b, `    <g class="animated" style="animation-delay: 0.5s">
        <text class="label-small" x="%d" y="%d">Less</text>`+"\n", gridX, legendY)

	legend := []struct {
		color   string
		opacity float64
	}{
		{c.Border, 0.2},
		{c.Accent, 0.4},
		{c.Accent, 0.6},
		{c.Success, 0.7},
		{c.Success, 1.0},
	}
	for i, cell := range legend {
		fmt.Fprintf(&b, `        <rect x="%d" y="%d" width="16" height="16" rx="4" fill="%s" opacity="%.1f"/>`+"\n",
			gridX+35+i*20, legendY-12, cell.color, cell.opacity)
	}
	fmt.Fprintf(&b, `        <text class="label-small" x="%d" y="%d">More</text>
    </g>`+"\n", gridX+35+len(legend)*20+5, legendY)

	b.WriteString("</svg>")
	return b.String()
}
