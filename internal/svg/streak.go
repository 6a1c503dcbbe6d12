package svg

import (
	"fmt"
	"math"
	"time"

	"github.com/DannyahIA/profile-metrics/internal/metrics"
	"github.com/DannyahIA/profile-metrics/internal/models"
)

// streakMilestones are the day counts the progress ring fills toward
var streakMilestones = []int{7, 14, 30, 60, 100, 180, 365}

func nextMilestone(current int) int {
	for _, m := range streakMilestones {
		if m > current {
			return m
		}
	}
	return streakMilestones[len(streakMilestones)-1]
}

// StreakCard renders the combined streak ring, tier badge, and 30-day
// sparkline strip
func (r *Renderer) StreakCard(m models.Metrics) string {
	const width, height = 1200, 280
	c := r.theme.Colors

	current := m.Streak.Current
	longest := m.Streak.Longest

	tier := metrics.ComputeTier(m)
	tierColor := r.theme.ColorByKey(tier.ColorKey)

	milestone := nextMilestone(current)
	streakProgress := float64(current) / float64(milestone) * 100

	var content []string

	// Streak ring
	const radius = 55.0
	circumference := 2 * math.Pi * radius
	offset := circumference - streakProgress/100*circumference

	content = append(content, fmt.Sprintf(`<g class="scale-in">
    <rect x="30" y="80" width="350" height="180" fill="%s" rx="12" opacity="0.5"/>
    <text x="50" y="110" style="font-size: 14px; font-weight: 700; fill: %s">🔥 Contribution Streak</text>
    <circle cx="120" cy="180" r="%.0f" fill="none" stroke="%s" stroke-width="8" opacity="0.2"/>
    <circle cx="120" cy="180" r="%.0f" fill="none" stroke="%s" stroke-width="8"
            stroke-dasharray="%.2f" stroke-dashoffset="%.2f"
            stroke-linecap="round" transform="rotate(-90 120 180)" opacity="0.9"/>
    <text x="120" y="185" text-anchor="middle" style="font-size: 32px; font-weight: 700; fill: %s">%d</text>
    <text x="120" y="205" text-anchor="middle" class="label">days</text>
    <text x="220" y="150" class="label">🏆 Longest</text>
    <text x="220" y="175" style="font-size: 24px; font-weight: 700; fill: %s">%d</text>
    <text x="220" y="205" class="label">🎯 Next</text>
    <text x="220" y="230" style="font-size: 16px; font-weight: 700; fill: %s">%d days</text>
</g>`,
		c.BackgroundSecondary, c.Text,
		radius, c.Border,
		radius, c.Success, circumference, offset,
		c.Success, current,
		c.Purple, longest,
		c.Warning, milestone))

	// Tier badge
	content = append(content, fmt.Sprintf(`<g class="scale-in" style="animation-delay: 0.2s">
    <rect x="400" y="80" width="350" height="180" fill="%s" rx="12" opacity="0.5"/>
    <text x="420" y="110" style="font-size: 14px; font-weight: 700; fill: %s">⭐ Developer Tier</text>
    <rect x="440" y="130" width="140" height="110" rx="16" fill="%s" opacity="0.15"/>
    <rect x="440" y="130" width="140" height="110" rx="16" fill="none" stroke="%s" stroke-width="3" opacity="0.5"/>
    <text x="510" y="175" text-anchor="middle" style="font-size: 38px" class="glow">%s</text>
    <text x="510" y="210" text-anchor="middle" style="font-size: 18px; font-weight: 700; fill: %s">%s</text>
    <text x="510" y="228" text-anchor="middle" class="label" style="font-size: 9px">%s</text>
    <text x="605" y="145" class="label">Score</text>
    <text x="605" y="170" style="font-size: 28px; font-weight: 700; fill: %s">%d</text>
</g>`,
		c.BackgroundSecondary, c.Text,
		tierColor, tierColor,
		tier.Icon, tierColor, tier.Name, tier.Description,
		c.Accent, tier.Score))

	if tier.Name != metrics.TierElite {
		progress := tier.Progress()
		barWidth := progress / 100 * 120
		content = append(content, fmt.Sprintf(`<g class="slide-up" style="animation-delay: 0.3s">
    <text x="605" y="195" class="label">→ %s</text>
    <rect x="605" y="202" width="120" height="6" rx="3" fill="%s" opacity="0.3"/>
    <rect x="605" y="202" width="%.1f" height="6" rx="3" fill="%s"/>
    <text x="605" y="220" class="label" style="font-size: 9px">%.0f%% complete</text>
</g>`, tier.NextTier, c.Border, barWidth, tierColor, progress))
	}

	// 30-day sparkline
	const (
		sparkX      = 790.0
		sparkY      = 80.0
		sparkWidth  = 380.0
		sparkHeight = 180.0
	)

	content = append(content, fmt.Sprintf(`<g class="animated" style="animation-delay: 0.4s">
    <rect x="%.0f" y="%.0f" width="%.0f" height="%.0f" fill="%s" rx="12" opacity="0.5"/>
    <text x="%.0f" y="%.0f" style="font-size: 14px; font-weight: 700; fill: %s">📊 Last 30 Days Activity</text>
</g>`, sparkX, sparkY, sparkWidth, sparkHeight, c.BackgroundSecondary, sparkX+20, sparkY+30, c.Text))

	last30 := lastNDays(m.DailyStats.CommitsPerDay, r.now, 30)
	maxCommits := 0
	total30 := 0
	for _, count := range last30 {
		total30 += count
		if count > maxCommits {
			maxCommits = count
		}
	}
	scale := maxCommits
	if scale == 0 {
		scale = 1
	}

	barWidth := (sparkWidth - 60) / 30
	for i, count := range last30 {
		barHeight := float64(count) / float64(scale) * 100
		barX := sparkX + 30 + float64(i)*barWidth
		barY := sparkY + sparkHeight - 60 - barHeight

		barColor := c.Success
		var opacity float64
		switch {
		case count == 0:
			barColor = c.Border
			opacity = 0.2
		case float64(count) <= float64(maxCommits)*0.3:
			opacity = 0.4
		case float64(count) <= float64(maxCommits)*0.7:
			opacity = 0.7
		default:
			opacity = 1.0
		}

		content = append(content, fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" rx="1" opacity="%.1f"/>`,
			barX, barY, barWidth-2, barHeight, barColor, opacity))
	}

	content = append(content, fmt.Sprintf(`<g class="slide-up" style="animation-delay: 0.8s">
    <text x="%.0f" y="%.0f" class="label">Total: %d commits • Avg: %.1f/day • Peak: %d</text>
</g>`, sparkX+30, sparkY+sparkHeight-25, total30, float64(total30)/30, maxCommits))

	subtitle := "Keep pushing! Your consistency is your superpower 🚀"
	return r.card(width, height, "", subtitle, content)
}

// lastNDays resolves the trailing n calendar days ending today into a
// commit count per day, zero-filling dates without activity
func lastNDays(perDay []models.DayCount, now time.Time, n int) []int {
	counts := make(map[string]int, len(perDay))
	for _, day := range perDay {
		counts[day.Date] = day.Count
	}

	result := make([]int, 0, n)
	for i := n - 1; i >= 0; i-- {
		result = append(result, counts[now.AddDate(0, 0, -i).Format("2006-01-02")])
	}
	return result
}
