package svg

import (
	"fmt"

	"github.com/DannyahIA/profile-metrics/internal/metrics"
	"github.com/DannyahIA/profile-metrics/internal/models"
)

// TierCard renders the standalone developer tier badge with score and
// progression toward the next tier
func (r *Renderer) TierCard(m models.Metrics) string {
	const width, height = 450, 240
	c := r.theme.Colors

	tier := metrics.ComputeTier(m)
	color := r.theme.ColorByKey(tier.ColorKey)

	var content []string

	content = append(content, fmt.Sprintf(`<g class="scale-in">
    <rect x="24" y="85" width="190" height="110" rx="16" fill="%s" opacity="0.12"/>
    <rect x="24" y="85" width="190" height="110" rx="16" fill="none" stroke="%s" stroke-width="2" opacity="0.3"/>
    <text x="119" y="125" text-anchor="middle" style="font-size: 42px" class="glow">%s</text>
    <text x="119" y="155" text-anchor="middle" class="value" style="font-size: 20px" fill="%s">%s</text>
    <text x="119" y="175" text-anchor="middle" class="label-small">%s</text>
</g>`, color, color, tier.Icon, color, tier.Name, tier.Description))

	content = append(content, fmt.Sprintf(`<g class="slide-up" style="animation-delay: 0.2s">
    <text class="label" x="240" y="105">Developer Score</text>
    <text class="value" x="240" y="140" fill="%s">%d</text>
</g>`, c.Accent, tier.Score))

	if tier.Name != metrics.TierElite {
		progress := tier.Progress()
		barWidth := progress / 100 * 170
		pointsNeeded := tier.NextScore - tier.Score
		if pointsNeeded < 0 {
			pointsNeeded = 0
		}
		content = append(content, fmt.Sprintf(`<g class="slide-up" style="animation-delay: 0.3s">
    <text class="label" x="240" y="165">Progress to %s</text>
    <rect x="240" y="175" width="170" height="6" rx="3" fill="%s" opacity="0.3"/>
    <rect x="240" y="175" width="%.1f" height="6" rx="3" fill="%s"/>
    <text class="label-small" x="240" y="195">%d points needed</text>
</g>`, tier.NextTier, c.Border, barWidth, color, pointsNeeded))
	} else {
		content = append(content, `<g class="slide-up" style="animation-delay: 0.3s">
    <text class="label" x="240" y="170">🎉 Maximum Tier!</text>
    <text class="label-small" x="240" y="190">You&#39;re among the elite</text>
</g>`)
	}

	subtitle := "Based on commits, repos, PRs, and streak"
	return r.card(width, height, "⭐ Developer Tier", subtitle, content)
}
