package svg

import (
	"fmt"
	"strings"

	"github.com/DannyahIA/profile-metrics/internal/models"
)

// LanguageChart renders the two-column language distribution card:
// top six languages as horizontal bars, the next six as compact cards
// with circular progress rings.
func (r *Renderer) LanguageChart(m models.Metrics) string {
	const width, height = 1200, 500
	c := r.theme.Colors

	langs := m.TopLanguages
	if len(langs) > 12 {
		langs = langs[:12]
	}
	total := 0
	for _, lang := range langs {
		total += lang.Count
	}
	if total == 0 {
		total = 1
	}

	var content []string

	content = append(content, fmt.Sprintf(`<g class="animated">
    <text x="30" y="95" style="font-size: 16px; font-weight: 700; fill: %s">📊 Primary Languages</text>
    <line x1="30" y1="105" x2="400" y2="105" stroke="%s" stroke-width="2" opacity="0.3"/>
</g>`, c.Text, c.Accent))

	yPos := 130
	delay := 0.2
	primary := langs
	if len(primary) > 6 {
		primary = primary[:6]
	}
	for i, lang := range primary {
		percentage := float64(lang.Count) / float64(total) * 100
		barWidth := percentage / 100 * 320
		color := r.languageColor(lang.Name)

		content = append(content, fmt.Sprintf(`<g class="slide-up" style="animation-delay: %.1fs">
    <rect x="30" y="%d" width="320" height="40" fill="%s" rx="8" opacity="0.15"/>
    <rect x="30" y="%d" width="%.1f" height="40" fill="url(#lang-gradient-%d)" rx="8" opacity="0.9"/>
    <text x="42" y="%d" style="font-size: 14px; font-weight: 600; fill: %s">%s %s</text>
    <text x="42" y="%d" style="font-size: 10px; fill: %s">%d repos</text>
    <rect x="360" y="%d" width="60" height="24" fill="%s" rx="12" opacity="0.2"/>
    <text x="390" y="%d" text-anchor="middle" style="font-size: 12px; font-weight: 700; fill: %s">%.1f%%</text>
</g>
<defs>
    <linearGradient id="lang-gradient-%d" x1="0%%" y1="0%%" x2="100%%" y2="0%%">
        <stop offset="0%%" style="stop-color:%s;stop-opacity:0.6" />
        <stop offset="100%%" style="stop-color:%s;stop-opacity:0.9" />
    </linearGradient>
</defs>`,
			delay,
			yPos, c.Border,
			yPos, barWidth, i,
			yPos+20, c.Text, languageIcon(lang.Name), escape(lang.Name),
			yPos+34, c.TextSecondary, lang.Count,
			yPos+8, color,
			yPos+24, color, percentage,
			i, color, color))
		yPos += 52
		delay += 0.1
	}

	content = append(content, fmt.Sprintf(`<g class="animated" style="animation-delay: 0.4s">
    <text x="470" y="95" style="font-size: 16px; font-weight: 700; fill: %s">🔧 Secondary Languages</text>
    <line x1="470" y1="105" x2="840" y2="105" stroke="%s" stroke-width="2" opacity="0.3"/>
</g>`, c.Text, c.Accent))

	col := 0
	delay = 0.6
	if len(langs) > 6 {
		for i, lang := range langs[6:] {
			percentage := float64(lang.Count) / float64(total) * 100
			color := r.languageColor(lang.Name)

			xPos := 470 + col*190
			cellY := 130 + (i/2)*105
			ringX := xPos + 155
			ringY := cellY + 65

			content = append(content, fmt.Sprintf(`<g class="scale-in" style="animation-delay: %.2fs">
    <rect x="%d" y="%d" width="180" height="90" fill="%s" rx="12" stroke="%s" stroke-width="2" opacity="0.8"/>
    <text x="%d" y="%d" style="font-size: 24px">%s</text>
    <text x="%d" y="%d" style="font-size: 14px; font-weight: 600; fill: %s">%s</text>
    <text x="%d" y="%d" style="font-size: 11px; fill: %s">Repos: %d</text>
    <circle cx="%d" cy="%d" r="18" fill="none" stroke="%s" stroke-width="3" opacity="0.3"/>
    <circle cx="%d" cy="%d" r="18" fill="none" stroke="%s" stroke-width="3" opacity="0.9"
            stroke-dasharray="%.1f 113" transform="rotate(-90 %d %d)"/>
    <text x="%d" y="%d" text-anchor="middle" style="font-size: 9px; font-weight: 700; fill: %s">%.0f%%</text>
</g>`,
				delay,
				xPos, cellY, c.Card, color,
				xPos+15, cellY+30, languageIcon(lang.Name),
				xPos+50, cellY+32, c.Text, escape(lang.Name),
				xPos+15, cellY+55, c.TextSecondary, lang.Count,
				ringX, ringY, c.Border,
				ringX, ringY, color, percentage*1.13, ringX, ringY,
				ringX, ringY+5, color, percentage))
			col = 1 - col
			delay += 0.08
		}
	}

	mostUsedName := "N/A"
	mostUsedPct := 0.0
	if len(langs) > 0 {
		mostUsedName = langs[0].Name
		mostUsedPct = float64(langs[0].Count) / float64(total) * 100
	}
	content = append(content, fmt.Sprintf(`<g class="animated" style="animation-delay: 1s">
    <rect x="30" y="430" width="840" height="32" fill="%s" rx="8" opacity="0.1"/>
    <text x="45" y="451" style="font-size: 12px; font-weight: 600; fill: %s">📈 Total: %d languages • 🏆 Most used: %s (%.1f%%) • 📁 Total repos: %d</text>
</g>`, c.Accent, c.TextSecondary, len(langs), escape(mostUsedName), mostUsedPct, total))

	subtitle := "Last updated: " + r.now.Format("January 02, 2006")
	return r.card(width, height, "💻 Language Distribution", subtitle, content)
}

// LanguageDonut renders the top eight languages as a donut chart with
// leader lines to the labels
func (r *Renderer) LanguageDonut(m models.Metrics) string {
	const width, height = 500, 500
	c := r.theme.Colors

	langs := m.TopLanguages
	if len(langs) > 8 {
		langs = langs[:8]
	}
	total := 0
	for _, lang := range langs {
		total += lang.Count
	}

	var content []string
	content = append(content, fmt.Sprintf(`<g class="animated">
    <text class="title" x="250" y="56" text-anchor="middle">💻 Top Languages</text>
</g>`))

	if total > 0 {
		const (
			centerX     = 250.0
			centerY     = 270.0
			outerRadius = 140.0
			innerRadius = 95.0
		)

		currentAngle := -90.0
		for i, lang := range langs {
			percentage := float64(lang.Count) / float64(total) * 100
			sliceAngle := percentage / 100 * 360
			color := r.languageColor(lang.Name)

			path := donutSlice(centerX, centerY, innerRadius, outerRadius, currentAngle, sliceAngle)

			labelAngle := currentAngle + sliceAngle/2
			labelX := centerX + (outerRadius+30)*cosDeg(labelAngle)
			labelY := centerY + (outerRadius+30)*sinDeg(labelAngle)
			anchor := "start"
			labelEndX := labelX + 20
			if labelX < centerX {
				anchor = "end"
				labelEndX = labelX - 20
			}

			content = append(content, fmt.Sprintf(`<g class="animated" style="animation-delay: %.1fs">
    <path d="%s" fill="%s" opacity="0.9" stroke="%s" stroke-width="2"/>
    <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1.5" opacity="0.6"/>
    <text x="%.1f" y="%.1f" text-anchor="%s" font-weight="600" font-size="13">%s</text>
    <text x="%.1f" y="%.1f" text-anchor="%s" font-size="11" fill="%s">%.1f%%</text>
</g>`,
				float64(i)*0.1,
				path, color, c.Background,
				centerX+(outerRadius+5)*cosDeg(labelAngle), centerY+(outerRadius+5)*sinDeg(labelAngle),
				labelEndX, labelY, color,
				labelX, labelY-5, anchor, escape(lang.Name),
				labelX, labelY+10, anchor, c.TextSecondary, percentage))

			currentAngle += sliceAngle
		}

		content = append(content, fmt.Sprintf(`<g class="scale-in" style="animation-delay: 0.8s">
    <text x="250" y="262" text-anchor="middle" style="font-size: 36px; font-weight: 700; fill: %s">%d</text>
    <text x="250" y="282" text-anchor="middle" font-size="12" fill="%s">languages</text>
</g>`, c.Accent, len(langs), c.TextSecondary))
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`+"\n", width, height)
	b.WriteString("    <style>\n")
	b.WriteString(r.baseStyles())
	b.WriteString(r.animations())
	b.WriteString("\n    </style>\n")
	fmt.Fprintf(&b, `    <rect class="scale-in" width="%d" height="%d" fill="%s" rx="12"/>`+"\n", width, height, c.Card)
	for _, part := range content {
		b.WriteString("    ")
		b.WriteString(part)
		b.WriteString("\n")
	}
	b.WriteString("</svg>")
	return b.String()
}
