package svg

import (
	"fmt"
	"strings"
	"time"
)

// Renderer draws the dashboard charts. Output depends only on the input
// data, the theme, and the injected clock, so rendering the same snapshot
// twice produces byte-identical files.
type Renderer struct {
	theme Theme
	now   time.Time
}

// NewRenderer creates a renderer with an explicit theme and clock
func NewRenderer(theme Theme, now time.Time) *Renderer {
	return &Renderer{theme: theme, now: now.UTC()}
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

func escape(s string) string {
	return xmlEscaper.Replace(s)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

func (r *Renderer) animations() string {
	return `
        @keyframes fadeIn {
            from { opacity: 0; }
            to { opacity: 1; }
        }
        @keyframes slideUp {
            from { transform: translateY(10px); opacity: 0; }
            to { transform: translateY(0); opacity: 1; }
        }
        @keyframes scaleIn {
            from { transform: scale(0.95); opacity: 0; }
            to { transform: scale(1); opacity: 1; }
        }
        @keyframes pulse {
            0%, 100% { opacity: 1; }
            50% { opacity: 0.7; }
        }
        @keyframes glow {
            0%, 100% { filter: drop-shadow(0 0 3px currentColor); }
            50% { filter: drop-shadow(0 0 8px currentColor); }
        }
        .animated { animation: fadeIn 0.6s ease-out; }
        .slide-up { animation: slideUp 0.5s ease-out; }
        .scale-in { animation: scaleIn 0.4s ease-out; }
        .pulse { animation: pulse 2s ease-in-out infinite; }
        .glow { animation: glow 2s ease-in-out infinite; }`
}

func (r *Renderer) baseStyles() string {
	c := r.theme.Colors
	return fmt.Sprintf(`
        * {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Helvetica', 'Arial', sans-serif;
        }
        text { fill: %s; }
        .title { font-size: 20px; font-weight: 600; fill: %s; }
        .subtitle { font-size: 14px; font-weight: 500; fill: %s; }
        .value { font-size: 28px; font-weight: 700; }
        .value-large { font-size: 36px; font-weight: 700; }
        .label { font-size: 12px; opacity: 0.7; }
        .label-small { font-size: 10px; opacity: 0.6; }
        .badge { font-size: 11px; font-weight: 600; text-transform: uppercase; letter-spacing: 0.5px; }
        .metric-change { font-size: 13px; font-weight: 600; }
        .trend-up { fill: %s; }
        .trend-down { fill: %s; }
        .trend-neutral { fill: %s; }`,
		c.Text, c.Accent, c.TextSecondary, c.Success, c.Danger, c.TextSecondary)
}

// card wraps chart content in the shared rounded-card frame with the
// base styles and animations embedded
func (r *Renderer) card(width, height int, title, subtitle string, content []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, `<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`+"\n", width, height)
	b.WriteString("    <style>\n")
	b.WriteString(r.baseStyles())
	b.WriteString(r.animations())
	b.WriteString("\n    </style>\n")
	fmt.Fprintf(&b, `    <rect class="scale-in" width="%d" height="%d" fill="%s" rx="12"/>`+"\n", width, height, r.theme.Colors.Card)
	if title != "" {
		fmt.Fprintf(&b, `    <text class="title animated" x="24" y="40">%s</text>`+"\n", escape(title))
	}
	if subtitle != "" {
		fmt.Fprintf(&b, `    <text class="subtitle animated" x="24" y="65" style="animation-delay: 0.1s">%s</text>`+"\n", escape(subtitle))
	}
	for _, part := range content {
		b.WriteString("    ")
		b.WriteString(part)
		b.WriteString("\n")
	}
	b.WriteString("</svg>")

	return b.String()
}

// trendIndicator compares a value against its previous-period baseline.
// Returns the arrow glyph, the color to draw it in, and the change label.
func (r *Renderer) trendIndicator(current, previous float64) (string, string, string) {
	c := r.theme.Colors
	if previous == 0 {
		return "●", c.TextSecondary, "New"
	}

	change := (current - previous) / previous * 100
	switch {
	case change >= 1:
		return "↑", c.Success, fmt.Sprintf("+%.0f%%", change)
	case change <= -1:
		return "↓", c.Error, fmt.Sprintf("%.0f%%", change)
	default:
		return "●", c.TextSecondary, "±0%"
	}
}

var languageColors = map[string]string{
	"Python":     "#3572A5",
	"TypeScript": "#3178c6",
	"JavaScript": "#f1e05a",
	"Go":         "#00ADD8",
	"PHP":        "#4F5D95",
	"Java":       "#b07219",
	"C++":        "#f34b7d",
	"Ruby":       "#701516",
	"HTML":       "#e34c26",
	"CSS":        "#563d7c",
	"Shell":      "#89e051",
	"Rust":       "#dea584",
	"Swift":      "#ffac45",
	"Kotlin":     "#A97BFF",
	"C#":         "#178600",
	"Dart":       "#00B4AB",
}

var languageIcons = map[string]string{
	"Python":     "🐍",
	"TypeScript": "📘",
	"JavaScript": "📙",
	"Go":         "🔷",
	"PHP":        "🐘",
	"Java":       "☕",
	"C++":        "⚙️",
	"Ruby":       "💎",
	"HTML":       "🌐",
	"CSS":        "🎨",
	"Shell":      "🐚",
	"Rust":       "🦀",
	"Swift":      "🍎",
	"Kotlin":     "🅺",
	"C#":         "#️⃣",
	"Dart":       "🎯",
}

func (r *Renderer) languageColor(lang string) string {
	if color, ok := languageColors[lang]; ok {
		return color
	}
	return r.theme.Colors.Accent
}

func languageIcon(lang string) string {
	if icon, ok := languageIcons[lang]; ok {
		return icon
	}
	return "📝"
}
