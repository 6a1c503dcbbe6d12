package svg

import (
	"fmt"
	"strings"

	"github.com/DannyahIA/profile-metrics/internal/career"
	"github.com/DannyahIA/profile-metrics/internal/models"
)

// Career timeline layout constants. Height grows with the number of rows.
const (
	timelineCardsPerRow  = 4
	timelineCardWidth    = 260
	timelineCardHeight   = 140
	timelineSpacingAbove = 200
	timelineSpacingBelow = 220
	timelineHeaderHeight = 120
	timelineFooterHeight = 120
)

// CareerTimeline renders the professional journey: alternating cards on a
// horizontal line, S-curve connectors between rows, a certifications
// footer, and the merged total-experience box
func (r *Renderer) CareerTimeline(c models.Career) string {
	const width = 1200
	colors := r.theme.Colors

	entries := career.SortedByStart(c.ProfessionalTimeline, r.now)
	rowSpacing := timelineSpacingBelow + 60

	numRows := (len(entries) + timelineCardsPerRow - 1) / timelineCardsPerRow
	var height int
	switch {
	case numRows == 0:
		height = 400
	case numRows == 1:
		height = timelineHeaderHeight + timelineSpacingAbove + timelineSpacingBelow + timelineFooterHeight
	default:
		height = timelineHeaderHeight + timelineSpacingAbove + timelineSpacingBelow + rowSpacing*(numRows-1) + timelineFooterHeight
	}

	dateMode := c.Meta.ShowDates
	if dateMode == "" {
		dateMode = "year_only"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`+"\n", width, height)
	b.WriteString("    <style>\n")
	b.WriteString(r.baseStyles())
	b.WriteString(r.animations())
	b.WriteString("\n    </style>\n")
	fmt.Fprintf(&b, `    <rect width="%d" height="%d" fill="%s" rx="12"/>`+"\n", width, height, colors.Card)
	b.WriteString(`    <text class="title animated" x="40" y="45">💼 Professional Journey</text>` + "\n")
	b.WriteString(`    <text class="subtitle animated" x="40" y="70">Career milestones and achievements</text>` + "\n")

	if len(entries) == 0 {
		b.WriteString("</svg>")
		return b.String()
	}

	var rows [][]models.CareerEntry
	for i := 0; i < len(entries); i += timelineCardsPerRow {
		end := i + timelineCardsPerRow
		if end > len(entries) {
			end = len(entries)
		}
		rows = append(rows, entries[i:end])
	}

	const (
		lineStartX = 80.0
		lineEndX   = float64(width) - 80
	)
	baseLineY := float64(timelineHeaderHeight + timelineSpacingAbove)

	for rowIdx, rowEntries := range rows {
		lineY := baseLineY + float64(rowIdx*rowSpacing)

		if rowIdx == 0 {
			fmt.Fprintf(&b, `    <line class="animated" x1="%.0f" y1="%.0f" x2="%.0f" y2="%.0f" stroke="%s" stroke-width="3" stroke-linecap="round"/>`+"\n",
				lineStartX, lineY, lineEndX, lineY, colors.Border)
		} else {
			prevLineY := baseLineY + float64((rowIdx-1)*rowSpacing)
			fmt.Fprintf(&b, `    <path class="animated" d="M %.0f %.0f C %.0f %.0f, %.0f %.0f, %.0f %.0f L %.0f %.0f" fill="none" stroke="%s" stroke-width="3" stroke-linecap="round"/>`+"\n",
				lineEndX, prevLineY, lineEndX+40, prevLineY, lineEndX+40, lineY, lineEndX, lineY, lineStartX, lineY, colors.Border)
			fmt.Fprintf(&b, `    <polygon points="%.0f,%.0f %.0f,%.0f %.0f,%.0f" fill="%s" class="animated" opacity="0.7"/>`+"\n",
				lineStartX, lineY, lineStartX+30, lineY-16, lineStartX+30, lineY+16, colors.Border)
		}

		cardSpacing := (lineEndX - lineStartX) / float64(len(rowEntries))

		for i, entry := range rowEntries {
			xPos := lineStartX + float64(i)*cardSpacing + cardSpacing/2

			// First row alternates above/below; later rows all hang below
			isTop := rowIdx == 0 && i%2 == 0
			var contentY float64
			if isTop {
				contentY = lineY - 200
			} else {
				contentY = lineY + 80
			}

			isCurrent := entry.DateEnd == models.PresentSentinel
			var dotColor, connectorColor string
			dotRadius := 6
			dotClass := ""
			switch {
			case isCurrent:
				dotColor = colors.Warning
				connectorColor = colors.Warning
				dotRadius = 8
				dotClass = ` class="pulse"`
			case entry.Type == models.EntryTypeWork:
				dotColor = colors.Success
				connectorColor = colors.Success
			default:
				dotColor = colors.Purple
				connectorColor = colors.Purple
			}

			connectorEndY := contentY - 10
			if isTop {
				connectorEndY = contentY + timelineCardHeight
			}
			fmt.Fprintf(&b, `    <line x1="%.0f" y1="%.0f" x2="%.0f" y2="%.0f" stroke="%s" stroke-width="2" stroke-dasharray="4,4" opacity="0.3"/>`+"\n",
				xPos, lineY, xPos, connectorEndY, connectorColor)
			fmt.Fprintf(&b, `    <circle%s cx="%.0f" cy="%.0f" r="%d" fill="%s"/>`+"\n",
				dotClass, xPos, lineY, dotRadius, dotColor)

			borderColor := colors.Success
			typeIcon := "💼"
			if entry.Type == models.EntryTypeEducation {
				borderColor = colors.Purple
				typeIcon = "🎓"
			}

			cardX := xPos - timelineCardWidth/2
			textX := cardX + 12
			textY := contentY + 22

			dateText := fmt.Sprintf("%s - %s",
				career.FormatDate(entry.DateStart, dateMode, r.now),
				career.FormatDate(entry.DateEnd, dateMode, r.now))
			if c.Meta.ShowDuration || entry.ShowDuration {
				if duration := career.Duration(entry, r.now); duration != "" {
					dateText += fmt.Sprintf(" (%s)", duration)
				}
			}

			fmt.Fprintf(&b, `    <g class="slide-up">
        <rect x="%.0f" y="%.0f" width="%d" height="%d" rx="8" fill="%s" stroke="%s" stroke-width="2" opacity="0.95"/>
        <text x="%.0f" y="%.0f" style="font-size: 15px; font-weight: 600; fill: %s">%s %s</text>
        <text x="%.0f" y="%.0f" style="font-size: 13px; font-weight: 500; fill: %s">%s</text>
        <text x="%.0f" y="%.0f" style="font-size: 11px; fill: %s">%s</text>
        <text x="%.0f" y="%.0f" style="font-size: 11px; fill: %s">%s</text>`+"\n",
				cardX, contentY, timelineCardWidth, timelineCardHeight, colors.Background, borderColor,
				textX, textY, colors.Text, typeIcon, escape(truncate(entry.Title, 28)),
				textX, textY+18, borderColor, escape(truncate(entry.Company, 30)),
				textX, textY+36, colors.TextSecondary, escape(dateText),
				textX, textY+52, colors.TextMuted, escape(truncate(entry.Description, 38)))

			techs := entry.Technologies
			if len(techs) > 3 {
				techs = techs[:3]
			}
			badgeX := textX
			for _, tech := range techs {
				badgeWidth := float64(len(tech)*6 + 12)
				fmt.Fprintf(&b, `        <rect x="%.0f" y="%.0f" width="%.0f" height="16" rx="8" fill="%s" opacity="0.15"/>
        <text x="%.0f" y="%.0f" style="font-size: 9px; font-weight: 600; fill: %s">%s</text>`+"\n",
					badgeX, textY+70, badgeWidth, borderColor,
					badgeX+6, textY+81, borderColor, escape(tech))
				badgeX += badgeWidth + 6
			}
			b.WriteString("    </g>\n")
		}
	}

	// Certifications footer
	shown := visibleCertifications(c.Certifications, 5)
	if len(shown) > 0 {
		certY := float64(height - 100)
		fmt.Fprintf(&b, `    <line x1="80" y1="%.0f" x2="%d" y2="%.0f" stroke="%s" stroke-width="1" opacity="0.3"/>
    <text class="subtitle animated" x="80" y="%.0f">🏆 Certifications</text>`+"\n",
			certY-10, width-80, certY-10, colors.Border, certY+10)

		certX := 80.0
		for _, cert := range shown {
			fmt.Fprintf(&b, `    <g class="animated">
        <circle cx="%.0f" cy="%.0f" r="4" fill="%s"/>
        <text x="%.0f" y="%.0f" style="font-size: 11px; font-weight: 600">%s</text>
        <text x="%.0f" y="%.0f" style="font-size: 11px; fill: %s">(%s)</text>
    </g>`+"\n",
				certX, certY+35, colors.Warning,
				certX+12, certY+39, escape(cert.Name),
				certX+12, certY+52, colors.TextSecondary, escape(career.FormatDate(cert.Date, "year_only", r.now)))
			certX += 230
		}
	}

	// Total experience box, overlap-merged
	fmt.Fprintf(&b, `    <g class="animated">
        <rect x="%d" y="95" width="180" height="50" rx="8" fill="%s" opacity="0.8"/>
        <text class="subtitle" x="%d" y="115">Total Experience</text>
        <text style="font-size: 20px; font-weight: 700" x="%d" y="138" fill="%s">%s</text>
    </g>`+"\n",
		width-220, colors.Background,
		width-210,
		width-210, colors.Success, career.TotalExperience(c.ProfessionalTimeline, r.now))

	b.WriteString("</svg>")
	return b.String()
}

func visibleCertifications(certs []models.Certification, limit int) []models.Certification {
	var shown []models.Certification
	for _, cert := range certs {
		if !cert.Show {
			continue
		}
		shown = append(shown, cert)
		if len(shown) == limit {
			break
		}
	}
	return shown
}
