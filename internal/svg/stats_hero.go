package svg

import (
	"fmt"

	"github.com/DannyahIA/profile-metrics/internal/metrics"
	"github.com/DannyahIA/profile-metrics/internal/models"
)

type heroStat struct {
	label string
	value int
	prev  int
	x     int
	y     int
	icon  string
	width int
}

// StatsHero renders the six-box statistics overview with trend badges
// comparing against the previous month's snapshot
func (r *Renderer) StatsHero(m models.Metrics, history models.History) string {
	const width, height = 1200, 320
	c := r.theme.Colors

	// Previous month is the second snapshot; the first is the current month
	prev := models.MonthlySnapshot{
		TotalCommits: m.TotalCommits,
		TotalPRs:     m.TotalPRs,
		TotalRepos:   m.TotalRepos,
	}
	if len(history.MonthlySnapshots) >= 2 {
		prev = history.MonthlySnapshots[1]
	}

	tier := metrics.ComputeTier(m)
	tierColor := r.theme.ColorByKey(tier.ColorKey)

	stats := []heroStat{
		{"Total Commits", m.TotalCommits, prev.TotalCommits, 40, 140, "📝", 360},
		{"Pull Requests", m.TotalPRs, prev.TotalPRs, 420, 140, "🔀", 360},
		{"Repositories", m.TotalRepos, prev.TotalRepos, 800, 140, "📦", 360},
		{"Current Streak", m.Streak.Current, m.Streak.Current, 40, 240, "🔥", 360},
		{"Contributors", m.Contributors, m.Contributors, 420, 240, "👥", 360},
		{"Stars Earned", m.TotalStars, prevStars(history, m.TotalStars), 800, 240, "⭐", 360},
	}

	var content []string

	content = append(content, fmt.Sprintf(`<g class="animated">
    <text class="title" x="40" y="45">GitHub Statistics Overview</text>
    <rect x="920" y="22" width="240" height="36" fill="%s" rx="18" opacity="0.2"/>
    <text x="940" y="46" style="font-size: 18px">%s</text>
    <text x="970" y="46" style="font-size: 16px; font-weight: 700; fill: %s">%s</text>
</g>`, tierColor, tier.Icon, tierColor, tier.Name))

	content = append(content, fmt.Sprintf(`<line x1="40" y1="75" x2="1160" y2="75" stroke="%s" stroke-width="1" opacity="0.3"/>`, c.Border))

	delay := 0.2
	for _, stat := range stats {
		arrow, trendColor, change := r.trendIndicator(float64(stat.value), float64(stat.prev))

		content = append(content, fmt.Sprintf(`<g class="slide-up" style="animation-delay: %.1fs">
    <rect x="%d" y="%d" width="%d" height="85" fill="%s" rx="10" opacity="0.5"/>
    <text x="%d" y="%d" style="font-size: 24px">%s</text>
    <text class="label" x="%d" y="%d">%s</text>
    <text x="%d" y="%d" style="font-size: 32px; font-weight: 700; fill: %s">%d</text>
    <rect x="%d" y="%d" width="70" height="24" fill="%s" rx="12" opacity="0.2"/>
    <text x="%d" y="%d" text-anchor="middle" style="font-size: 12px; font-weight: 700; fill: %s">%s %s</text>
</g>`,
			delay,
			stat.x, stat.y-30, stat.width, c.BackgroundSecondary,
			stat.x+20, stat.y-5, stat.icon,
			stat.x+20, stat.y+20, stat.label,
			stat.x+20, stat.y+48, c.Accent, stat.value,
			stat.x+stat.width-90, stat.y+25, trendColor,
			stat.x+stat.width-55, stat.y+42, trendColor, arrow, change))
		delay += 0.1
	}

	subtitle := "📊 Last updated: " + r.now.Format("January 02, 2006")
	return r.card(width, height, "", subtitle, content)
}

func prevStars(history models.History, fallback int) int {
	if len(history.MonthlySnapshots) >= 2 {
		return history.MonthlySnapshots[1].TotalStars
	}
	return fallback
}
