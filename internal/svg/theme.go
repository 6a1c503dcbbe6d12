package svg

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Colors is the palette a theme file provides. Every renderer takes its
// colors from here so a theme swap recolors every chart consistently.
type Colors struct {
	Background          string `json:"background"`
	BackgroundSecondary string `json:"backgroundSecondary"`
	Card                string `json:"card"`
	CardHover           string `json:"cardHover"`
	Text                string `json:"text"`
	TextSecondary       string `json:"textSecondary"`
	TextMuted           string `json:"textMuted"`
	Border              string `json:"border"`
	Accent              string `json:"accent"`
	Success             string `json:"success"`
	Warning             string `json:"warning"`
	Error               string `json:"error"`
	Danger              string `json:"danger"`
	Purple              string `json:"purple"`
}

// Theme is one named palette loaded from themes/<name>.json
type Theme struct {
	Name   string `json:"name"`
	Colors Colors `json:"colors"`
}

// DefaultTheme returns the built-in dark palette, used when no theme file
// is available
func DefaultTheme() Theme {
	return Theme{
		Name: "dark",
		Colors: Colors{
			Background:          "#0d1117",
			BackgroundSecondary: "#161b22",
			Card:                "#161b22",
			CardHover:           "#21262d",
			Text:                "#e6edf3",
			TextSecondary:       "#8b949e",
			TextMuted:           "#6e7681",
			Border:              "#30363d",
			Accent:              "#58a6ff",
			Success:             "#3fb950",
			Warning:             "#d29922",
			Error:               "#f85149",
			Danger:              "#f85149",
			Purple:              "#a371f7",
		},
	}
}

// LoadTheme reads themes/<name>.json from the themes directory
func LoadTheme(themesDir, name string) (Theme, error) {
	path := filepath.Join(themesDir, name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("failed to read theme %s: %w", name, err)
	}

	var theme Theme
	if err := json.Unmarshal(data, &theme); err != nil {
		return Theme{}, fmt.Errorf("failed to decode theme %s: %w", name, err)
	}
	if theme.Name == "" {
		theme.Name = name
	}
	return theme, nil
}

// ColorByKey resolves a palette key name as used in tier definitions and
// intensity bands. Unknown keys fall back to the accent color.
func (t Theme) ColorByKey(key string) string {
	switch key {
	case "background":
		return t.Colors.Background
	case "backgroundSecondary":
		return t.Colors.BackgroundSecondary
	case "card":
		return t.Colors.Card
	case "text":
		return t.Colors.Text
	case "textSecondary":
		return t.Colors.TextSecondary
	case "textMuted":
		return t.Colors.TextMuted
	case "border":
		return t.Colors.Border
	case "accent":
		return t.Colors.Accent
	case "success":
		return t.Colors.Success
	case "warning":
		return t.Colors.Warning
	case "error", "danger":
		return t.Colors.Error
	case "purple":
		return t.Colors.Purple
	default:
		return t.Colors.Accent
	}
}
