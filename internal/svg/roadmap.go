package svg

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/DannyahIA/profile-metrics/internal/models"
)

func (r *Renderer) priorityStyle(priority string) (string, string) {
	c := r.theme.Colors
	switch priority {
	case "high":
		return "🔥", c.Danger
	case "medium":
		return "⚡", c.Warning
	case "low":
		return "✨", c.Success
	default:
		return "📌", c.Accent
	}
}

// GoalsTracker renders roadmap goals with progress bars, deadlines, and
// priority badges plus a summary strip up top
func (r *Renderer) GoalsTracker(roadmap models.Roadmap) string {
	const width, height = 1200, 500
	c := r.theme.Colors

	goals := roadmap.Goals

	totalGoals := len(goals)
	completed := 0
	highPriority := 0
	progressSum := 0
	for _, goal := range goals {
		if goal.Progress >= 100 {
			completed++
		}
		if goal.Priority == "high" {
			highPriority++
		}
		progressSum += goal.Progress
	}
	avgProgress := 0.0
	if totalGoals > 0 {
		avgProgress = float64(progressSum) / float64(totalGoals)
	}

	var content []string

	const statsY = 75
	statBoxes := []struct {
		x     int
		w     int
		label string
		value string
		color string
	}{
		{30, 270, "📊 Total Goals", fmt.Sprintf("%d", totalGoals), c.Accent},
		{315, 270, "✅ Completed", fmt.Sprintf("%d", completed), c.Success},
		{600, 270, "📈 Avg Progress", fmt.Sprintf("%.0f%%", avgProgress), c.Accent},
		{885, 285, "🔥 High Priority", fmt.Sprintf("%d", highPriority), c.Danger},
	}
	for i, box := range statBoxes {
		content = append(content, fmt.Sprintf(`<g class="animated" style="animation-delay: 0.%ds">
    <rect x="%d" y="%d" width="%d" height="60" fill="%s" rx="8" opacity="0.5"/>
    <text class="label" x="%d" y="%d">%s</text>
    <text class="value" x="%d" y="%d" fill="%s">%s</text>
</g>`, i+1, box.x, statsY, box.w, c.Background,
			box.x+15, statsY+20, box.label,
			box.x+15, statsY+45, box.color, box.value))
	}

	content = append(content, fmt.Sprintf(`<line x1="30" y1="160" x2="1170" y2="160" stroke="%s" stroke-width="1" opacity="0.3"/>`, c.Border))

	if len(goals) > 4 {
		goals = goals[:4]
	}
	yPos := 195
	for i, goal := range goals {
		progress := goal.Progress
		if progress > 100 {
			progress = 100
		}
		barWidth := float64(progress) / 100 * 1040
		icon, color := r.priorityStyle(goal.Priority)

		timeText, timeColor := r.deadlineLabel(goal.Deadline)
		status, statusColor := r.goalStatus(progress)

		content = append(content, fmt.Sprintf(`<g class="animated" style="animation-delay: %.1fs">
    <rect x="30" y="%d" width="1140" height="65" fill="%s" rx="10" stroke="%s" stroke-width="2" stroke-opacity="0.3" fill-opacity="0.5"/>
    <text x="45" y="%d" style="font-size: 20px">%s</text>
    <text x="75" y="%d" style="font-size: 13px; font-weight: 600; fill: %s">%s</text>
    <rect x="950" y="%d" width="90" height="22" fill="%s" rx="11" opacity="0.2"/>
    <text x="995" y="%d" text-anchor="middle" style="font-size: 10px; font-weight: 700; fill: %s">%s</text>
    <text x="1150" y="%d" text-anchor="end" style="font-size: 18px; font-weight: 700; fill: %s">%d%%</text>
    <text class="label" x="75" y="%d" fill="%s">%s • Priority: %s</text>
    <rect x="75" y="%d" width="1040" height="8" rx="4" fill="%s" opacity="0.3"/>
    <rect x="75" y="%d" width="%.1f" height="8" rx="4" fill="url(#goal-gradient-%d)" opacity="0.9"/>
    <defs>
        <linearGradient id="goal-gradient-%d" x1="0%%" y1="0%%" x2="100%%" y2="0%%">
            <stop offset="0%%" style="stop-color:%s;stop-opacity:0.6" />
            <stop offset="100%%" style="stop-color:%s;stop-opacity:0.9" />
        </linearGradient>
    </defs>
</g>`,
			0.5+float64(i)*0.1,
			yPos-20, c.BackgroundSecondary, color,
			yPos+5, icon,
			yPos+5, c.Text, escape(goal.Title),
			yPos-12, statusColor,
			yPos+3, statusColor, status,
			yPos+5, color, progress,
			yPos+22, timeColor, timeText, strings.ToUpper(goal.Priority),
			yPos+30, c.Border,
			yPos+30, barWidth, i,
			i, color, color))
		yPos += 80
	}

	return r.card(width, height, "🎯 Goals & Milestones", "", content)
}

func (r *Renderer) deadlineLabel(deadline string) (string, string) {
	c := r.theme.Colors
	parsed, err := time.Parse("2006-01-02", deadline)
	if err != nil {
		return "No deadline", c.TextSecondary
	}
	daysLeft := int(parsed.Sub(r.now).Hours() / 24)
	switch {
	case daysLeft < 0:
		return fmt.Sprintf("⚠️ %d days overdue", -daysLeft), c.Danger
	case daysLeft < 7:
		return fmt.Sprintf("⏰ %d days left", daysLeft), c.Warning
	default:
		return fmt.Sprintf("📅 %d days left", daysLeft), c.TextSecondary
	}
}

func (r *Renderer) goalStatus(progress int) (string, string) {
	c := r.theme.Colors
	switch {
	case progress >= 100:
		return "✓ COMPLETED", c.Success
	case progress >= 75:
		return "Nearly done", c.Success
	case progress >= 50:
		return "In progress", c.Accent
	case progress >= 25:
		return "Started", c.Warning
	default:
		return "Planning", c.TextSecondary
	}
}

type flatSkill struct {
	models.Skill
	icon  string
	color string
}

// LearningStats renders every skill across all tracks in two columns,
// sorted by level, each with a level bar and target marker
func (r *Renderer) LearningStats(roadmap models.Roadmap) string {
	const width, height = 1200, 500
	c := r.theme.Colors

	var skills []flatSkill
	for _, track := range roadmap.Tracks {
		for _, skill := range track.Skills {
			skills = append(skills, flatSkill{Skill: skill, icon: track.Icon, color: track.Color})
		}
	}
	sort.SliceStable(skills, func(i, j int) bool { return skills[i].Level > skills[j].Level })

	totalSkills := len(skills)
	mastered := 0
	inProgress := 0
	levelSum := 0
	for _, skill := range skills {
		levelSum += skill.Level
		if skill.Level >= 80 {
			mastered++
		} else if skill.Level >= 50 {
			inProgress++
		}
	}
	avgLevel := 0.0
	if totalSkills > 0 {
		avgLevel = float64(levelSum) / float64(totalSkills)
	}
	var topNames []string
	for i := 0; i < len(skills) && i < 3; i++ {
		topNames = append(topNames, skills[i].Name)
	}

	var content []string

	content = append(content, `<g class="animated">
    <text class="title" x="30" y="40">📚 Learning Roadmap</text>
    <text class="label" x="30" y="65">Current skill levels and learning paths</text>
</g>`)

	const statsY = 90
	content = append(content, fmt.Sprintf(`<g class="animated" style="animation-delay: 0.1s">
    <rect x="30" y="%d" width="270" height="55" fill="%s" rx="8" opacity="0.5"/>
    <text class="label" x="45" y="%d">📊 Total Skills</text>
    <text class="value" x="45" y="%d" fill="%s">%d</text>
    <text class="label" x="150" y="%d">✨ Avg Level</text>
    <text class="value" x="150" y="%d" fill="%s">%.0f%%</text>
</g>
<g class="animated" style="animation-delay: 0.2s">
    <rect x="315" y="%d" width="270" height="55" fill="%s" rx="8" opacity="0.5"/>
    <text class="label" x="330" y="%d">🎯 Mastered</text>
    <text class="value" x="330" y="%d" fill="%s">%d</text>
    <text class="label" x="435" y="%d">🔄 In Progress</text>
    <text class="value" x="435" y="%d" fill="%s">%d</text>
</g>
<g class="animated" style="animation-delay: 0.3s">
    <rect x="600" y="%d" width="570" height="55" fill="%s" rx="8" opacity="0.5"/>
    <text class="label" x="615" y="%d">🏆 Top Skills</text>
    <text class="label" x="615" y="%d" fill="%s">%s</text>
</g>`,
		statsY, c.Background, statsY+20, statsY+42, c.Accent, totalSkills, statsY+20, statsY+42, c.Accent, avgLevel,
		statsY, c.Background, statsY+20, statsY+42, c.Success, mastered, statsY+20, statsY+42, c.Warning, inProgress,
		statsY, c.Background, statsY+20, statsY+42, c.Text, escape(strings.Join(topNames, ", "))))

	content = append(content, fmt.Sprintf(`<line x1="30" y1="170" x2="1170" y2="170" stroke="%s" stroke-width="1" opacity="0.3"/>`, c.Border))

	const skillsPerCol = 6
	for i, skill := range skills {
		if i >= skillsPerCol*2 {
			break
		}
		colX := 40
		row := i
		if i >= skillsPerCol {
			colX = 640
			row = i - skillsPerCol
		}
		yPos := 210 + row*42

		barWidth := float64(skill.Level) / 100 * 480
		gap := skill.Target - skill.Level
		gapText := "Target reached!"
		gapColor := c.Success
		if gap > 0 {
			gapText = fmt.Sprintf("+%d%% to target", gap)
			gapColor = c.Warning
		}

		content = append(content, fmt.Sprintf(`<g class="animated" style="animation-delay: %.2fs">
    <text x="%d" y="%d" style="font-size: 16px">%s</text>
    <text x="%d" y="%d" style="font-size: 13px; font-weight: 600; fill: %s">%s</text>
    <text x="%d" y="%d" text-anchor="end" style="font-size: 14px; font-weight: 700; fill: %s">%d%%</text>
    <rect x="%d" y="%d" width="480" height="6" rx="3" fill="%s" opacity="0.3"/>
    <rect x="%d" y="%d" width="%.1f" height="6" rx="3" fill="%s" opacity="0.9"/>
    <circle cx="%.1f" cy="%d" r="3" fill="%s" opacity="0.5"/>
    <text x="%d" y="%d" class="label" fill="%s" style="font-size: 9px">%s</text>
</g>`,
			0.4+float64(i)*0.05,
			colX, yPos, skill.icon,
			colX+25, yPos, c.Text, escape(skill.Name),
			colX+500, yPos, skill.color, skill.Level,
			colX, yPos+8, c.Border,
			colX, yPos+8, barWidth, skill.color,
			float64(colX)+float64(skill.Target)/100*480, yPos+11, skill.color,
			colX, yPos+26, gapColor, gapText))
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`+"\n", width, height)
	b.WriteString("    <style>\n")
	b.WriteString(r.baseStyles())
	b.WriteString(r.animations())
	b.WriteString("\n    </style>\n")
	fmt.Fprintf(&b, `    <rect width="%d" height="%d" fill="%s" rx="12"/>`+"\n", width, height, c.Card)
	for _, part := range content {
		b.WriteString("    ")
		b.WriteString(part)
		b.WriteString("\n")
	}
	b.WriteString("</svg>")
	return b.String()
}
