package svg

import (
	"fmt"
	"strings"

	"github.com/DannyahIA/profile-metrics/internal/models"
)

// PerformanceComparison renders cumulative daily commits of the current
// month as a line over the previous month's line, with the monthly change
// badge in the legend
func (r *Renderer) PerformanceComparison(m models.Metrics, activity models.DailyActivity, history models.History) string {
	const width, height = 1200, 450
	c := r.theme.Colors

	currentMonth := r.now.Format("2006-01")
	prevMonthDate := r.now.AddDate(0, 0, -r.now.Day()) // last day of previous month
	prevMonth := prevMonthDate.Format("2006-01")

	prevDaily := cumulativeCommits(activity.DailyStats[prevMonth])
	currDaily := cumulativeCommits(activity.DailyStats[currentMonth])

	// Pad both series to 31 days with the running total
	prevDaily = padSeries(prevDaily, 31)
	currDaily = padSeries(currDaily, 31)

	prevCommits := prevDaily[len(prevDaily)-1]
	currCommits := currDaily[len(currDaily)-1]

	prevPRs, currPRs := 0, 0
	for _, day := range activity.DailyStats[prevMonth] {
		prevPRs += day.PRs
	}
	for _, day := range activity.DailyStats[currentMonth] {
		currPRs += day.PRs
	}

	prevRepos, currRepos := 0, m.TotalRepos
	for _, snap := range history.MonthlySnapshots {
		switch snap.Month {
		case prevMonth:
			prevRepos = snap.TotalRepos
		case currentMonth:
			currRepos = snap.TotalRepos
		}
	}

	const (
		chartX      = 80.0
		chartY      = 140.0
		chartWidth  = 1040.0
		chartHeight = 220.0
	)

	maxValue := 10
	for _, v := range append(append([]int{}, prevDaily...), currDaily...) {
		if v > maxValue {
			maxValue = v
		}
	}

	valueToY := func(value int) float64 {
		return chartY + chartHeight - float64(value)/float64(maxValue)*chartHeight
	}
	dayToX := func(day int) float64 {
		return chartX + float64(day)/30*chartWidth
	}

	var content []string

	// Background grid and axis labels
	var grid strings.Builder
	grid.WriteString(`<g class="animated" opacity="0.15">` + "\n")
	for i := 0; i < 6; i++ {
		y := chartY + float64(i)*chartHeight/5
		fmt.Fprintf(&grid, `    <line x1="%.0f" y1="%.1f" x2="%.0f" y2="%.1f" stroke="%s" stroke-width="1" stroke-dasharray="4,4"/>`+"\n",
			chartX, y, chartX+chartWidth, y, c.Border)
	}
	grid.WriteString(`</g>`)
	content = append(content, grid.String())

	var axes strings.Builder
	axes.WriteString(`<g class="animated" style="animation-delay: 0.2s">` + "\n")
	for i := 0; i < 6; i++ {
		value := maxValue - i*maxValue/5
		y := chartY + float64(i)*chartHeight/5
		fmt.Fprintf(&axes, `    <text x="%.0f" y="%.1f" text-anchor="end" style="font-size: 11px; fill: %s">%d</text>`+"\n",
			chartX-15, y+4, c.TextSecondary, value)
	}
	for _, day := range []int{0, 7, 14, 21, 30} {
		fmt.Fprintf(&axes, `    <text x="%.1f" y="%.0f" text-anchor="middle" style="font-size: 11px; fill: %s">Day %d</text>`+"\n",
			dayToX(day), chartY+chartHeight+20, c.TextSecondary, day)
	}
	axes.WriteString(`</g>`)
	content = append(content, axes.String())

	// Filled areas then lines, previous month under current month
	content = append(content, fmt.Sprintf(`<path d="%s" fill="url(#prev-gradient)" opacity="0.3"/>`,
		areaPath(prevDaily, dayToX, valueToY, chartY+chartHeight)))
	content = append(content, fmt.Sprintf(`<path d="%s" fill="url(#curr-gradient)" opacity="0.3"/>`,
		areaPath(currDaily, dayToX, valueToY, chartY+chartHeight)))
	content = append(content, fmt.Sprintf(`<path d="%s" fill="none" stroke="%s" stroke-width="3" stroke-linecap="round" stroke-linejoin="round"/>`,
		linePath(prevDaily, dayToX, valueToY), c.Accent))
	content = append(content, fmt.Sprintf(`<path d="%s" fill="none" stroke="%s" stroke-width="3" stroke-linecap="round" stroke-linejoin="round"/>`,
		linePath(currDaily, dayToX, valueToY), c.Success))

	content = append(content, fmt.Sprintf(`<g class="scale-in" style="animation-delay: 1.2s">
    <circle cx="%.1f" cy="%.1f" r="5" fill="%s" stroke="%s" stroke-width="2"/>
    <circle cx="%.1f" cy="%.1f" r="5" fill="%s" stroke="%s" stroke-width="2"/>
</g>`,
		dayToX(30), valueToY(prevCommits), c.Accent, c.Background,
		dayToX(30), valueToY(currCommits), c.Success, c.Background))

	// Legend
	const legendY = 90
	content = append(content, fmt.Sprintf(`<g class="slide-up" style="animation-delay: 0.3s">
    <rect x="80" y="%d" width="4" height="20" fill="%s" rx="2"/>
    <text x="95" y="%d" style="font-size: 13px; font-weight: 600; fill: %s">%s</text>
    <text x="95" y="%d" style="font-size: 11px; fill: %s">%d commits • %d PRs • %d repos</text>
</g>`,
		legendY-8, c.Accent,
		legendY, c.Text, prevMonthDate.Format("January 2006"),
		legendY+15, c.TextSecondary, prevCommits, prevPRs, prevRepos))

	content = append(content, fmt.Sprintf(`<g class="slide-up" style="animation-delay: 0.4s">
    <rect x="380" y="%d" width="4" height="20" fill="%s" rx="2"/>
    <text x="395" y="%d" style="font-size: 13px; font-weight: 600; fill: %s">%s</text>
    <text x="395" y="%d" style="font-size: 11px; fill: %s">%d commits • %d PRs • %d repos</text>
</g>`,
		legendY-8, c.Success,
		legendY, c.Text, r.now.Format("January 2006"),
		legendY+15, c.TextSecondary, currCommits, currPRs, currRepos))

	change := 100.0
	if prevCommits > 0 {
		change = float64(currCommits-prevCommits) / float64(prevCommits) * 100
	}
	arrow := "●"
	trendColor := c.TextSecondary
	if change > 0 {
		arrow = "↑"
		trendColor = c.Success
	} else if change < 0 {
		arrow = "↓"
		trendColor = c.Error
	}
	absChange := change
	if absChange < 0 {
		absChange = -absChange
	}

	content = append(content, fmt.Sprintf(`<g class="scale-in" style="animation-delay: 0.5s">
    <rect x="750" y="%d" width="280" height="42" fill="%s" rx="8" opacity="0.15"/>
    <text x="770" y="%d" style="font-size: 13px; font-weight: 600; fill: %s">Monthly Change</text>
    <text x="770" y="%d" style="font-size: 20px; font-weight: 700; fill: %s">%s %.1f%%</text>
</g>`, legendY-15, trendColor, legendY, c.Text, legendY+17, trendColor, arrow, absChange))

	content = append(content, fmt.Sprintf(`<defs>
    <linearGradient id="prev-gradient" x1="0%%" y1="0%%" x2="0%%" y2="100%%">
        <stop offset="0%%" style="stop-color:%s;stop-opacity:0.4" />
        <stop offset="100%%" style="stop-color:%s;stop-opacity:0.05" />
    </linearGradient>
    <linearGradient id="curr-gradient" x1="0%%" y1="0%%" x2="0%%" y2="100%%">
        <stop offset="0%%" style="stop-color:%s;stop-opacity:0.4" />
        <stop offset="100%%" style="stop-color:%s;stop-opacity:0.05" />
    </linearGradient>
</defs>`, c.Accent, c.Accent, c.Success, c.Success))

	subtitle := "Daily commit activity comparison • Updated " + r.now.Format("January 02, 2006")
	return r.card(width, height, "📈 Performance Trend", subtitle, content)
}

func cumulativeCommits(days []models.ActivityDay) []int {
	cumulative := make([]int, 0, len(days))
	total := 0
	for _, day := range days {
		total += day.Commits
		cumulative = append(cumulative, total)
	}
	if len(cumulative) == 0 {
		cumulative = []int{0}
	}
	return cumulative
}

func padSeries(series []int, length int) []int {
	for len(series) < length {
		series = append(series, series[len(series)-1])
	}
	return series
}

func linePath(values []int, dayToX func(int) float64, valueToY func(int) float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "M %.1f %.1f", dayToX(0), valueToY(values[0]))
	for i, v := range values[1:] {
		fmt.Fprintf(&b, " L %.1f %.1f", dayToX(i+1), valueToY(v))
	}
	return b.String()
}

func areaPath(values []int, dayToX func(int) float64, valueToY func(int) float64, baseline float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "M %.1f %.1f", dayToX(0), baseline)
	for i, v := range values {
		fmt.Fprintf(&b, " L %.1f %.1f", dayToX(i), valueToY(v))
	}
	fmt.Fprintf(&b, " L %.1f %.1f Z", dayToX(30), baseline)
	return b.String()
}
