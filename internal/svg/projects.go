package svg

import (
	"fmt"
	"strings"
	"time"

	"github.com/DannyahIA/profile-metrics/internal/models"
)

func (r *Renderer) projectStatus(status string) (string, string) {
	c := r.theme.Colors
	switch status {
	case "active":
		return "🟢", c.Success
	case "maintenance":
		return "🟡", c.Warning
	case "archived":
		return "🔴", c.Error
	default:
		return "⚪", c.TextSecondary
	}
}

func (r *Renderer) relativeUpdate(lastUpdated string) string {
	updated, err := time.Parse("2006-01-02", lastUpdated)
	if err != nil {
		return "Unknown"
	}
	daysAgo := int(r.now.Sub(updated).Hours() / 24)
	switch {
	case daysAgo <= 0:
		return "Today"
	case daysAgo == 1:
		return "Yesterday"
	case daysAgo < 30:
		return fmt.Sprintf("%dd ago", daysAgo)
	case daysAgo < 365:
		return fmt.Sprintf("%dmo ago", daysAgo/30)
	default:
		return fmt.Sprintf("%dy ago", daysAgo/365)
	}
}

// FeaturedProjects renders the top six projects as a two-column grid of
// linked cards with language badges, topics, and aggregate footer stats
func (r *Renderer) FeaturedProjects(p models.Projects) string {
	const width, height = 1200, 550
	c := r.theme.Colors

	projects := p.FeaturedProjects
	if len(projects) > 6 {
		projects = projects[:6]
	}

	var content []string

	content = append(content, `<g class="animated">
    <text class="title" x="40" y="45">🚀 Featured Projects</text>
    <text class="label" x="40" y="70">My most significant repositories and contributions</text>
</g>`)
	content = append(content, fmt.Sprintf(`<line x1="40" y1="90" x2="1160" y2="90" stroke="%s" stroke-width="1" opacity="0.3"/>`, c.Border))

	yPos := 120
	col := 0
	delay := 0.2

	for _, project := range projects {
		xPos := 40
		if col == 1 {
			xPos = 620
		}

		langColor := r.languageColor(project.Language)
		statusIcon, _ := r.projectStatus(project.Status)

		description := project.Description
		if description == "" {
			description = "No description"
		}
		description = truncate(description, 73)

		var card strings.Builder
		fmt.Fprintf(&card, `<a href="%s" target="_blank" class="slide-up" style="animation-delay: %.1fs">
    <g style="cursor: pointer;">
        <rect x="%d" y="%d" width="540" height="120" fill="%s" rx="12" stroke="%s" stroke-width="2" stroke-opacity="0.3" fill-opacity="0.5"/>
        <text x="%d" y="%d" style="font-size: 16px; font-weight: 700; fill: %s">%s</text>
        <text x="%d" y="%d" style="font-size: 12px; opacity: 0.6">🔗</text>
        <text x="%d" y="%d" style="font-size: 14px">%s</text>
        <text x="%d" y="%d" class="label" style="font-size: 11px">%s</text>
        <rect x="%d" y="%d" width="80" height="20" fill="%s" rx="10" opacity="0.2"/>
        <circle cx="%d" cy="%d" r="4" fill="%s"/>
        <text x="%d" y="%d" style="font-size: 10px; font-weight: 600; fill: %s">%s</text>
        <text x="%d" y="%d" class="label" style="font-size: 10px">⭐ %d • 🔀 %d • 📝 %d commits</text>`,
			escape(project.URL), delay,
			xPos, yPos, c.BackgroundSecondary, langColor,
			xPos+20, yPos+30, c.Text, escape(project.Name),
			xPos+485, yPos+30,
			xPos+510, yPos+30, statusIcon,
			xPos+20, yPos+52, escape(description),
			xPos+20, yPos+65, langColor,
			xPos+32, yPos+75, langColor,
			xPos+40, yPos+79, langColor, escape(project.Language),
			xPos+120, yPos+79, project.Stars, project.Forks, project.Commits)

		topics := project.Topics
		if len(topics) > 3 {
			topics = topics[:3]
		}
		topicX := xPos + 20
		for _, topic := range topics {
			topicWidth := len(topic)*6 + 12
			fmt.Fprintf(&card, `
        <rect x="%d" y="%d" width="%d" height="18" fill="%s" rx="9" opacity="0.15"/>
        <text x="%d" y="%d" style="font-size: 9px; font-weight: 600; fill: %s">#%s</text>`,
				topicX, yPos+90, topicWidth, c.Accent,
				topicX+6, yPos+102, c.Accent, escape(topic))
			topicX += topicWidth + 6
		}

		fmt.Fprintf(&card, `
        <text x="%d" y="%d" text-anchor="end" class="label" style="font-size: 9px">Updated %s</text>
    </g>
</a>`, xPos+450, yPos+102, r.relativeUpdate(project.LastUpdated))

		content = append(content, card.String())

		col = 1 - col
		if col == 0 {
			yPos += 135
		}
		delay += 0.1
	}

	totalStars, totalCommits, totalContributors := 0, 0, 0
	for _, project := range projects {
		totalStars += project.Stars
		totalCommits += project.Commits
		totalContributors += project.Contributors
	}
	content = append(content, fmt.Sprintf(`<g class="animated" style="animation-delay: 1s">
    <line x1="40" y1="510" x2="1160" y2="510" stroke="%s" stroke-width="1" opacity="0.3"/>
    <text x="60" y="535" style="font-size: 12px; font-weight: 600; fill: %s">📊 Collective Impact: ⭐ %d stars • 📝 %d commits • 👥 %d contributors</text>
</g>`, c.Border, c.TextSecondary, totalStars, totalCommits, totalContributors))

	subtitle := "Showcasing dedication and innovation • Updated " + r.now.Format("January 02, 2006")
	return r.card(width, height, "", subtitle, content)
}
