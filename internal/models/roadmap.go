package models

// Skill is one skill inside a roadmap track with its current and target level
type Skill struct {
	Name   string `json:"name"`
	Level  int    `json:"level"`
	Target int    `json:"target"`
	Notes  string `json:"notes,omitempty"`
}

// Track groups related skills under a named learning path
type Track struct {
	Name   string  `json:"name"`
	Icon   string  `json:"icon"`
	Color  string  `json:"color"`
	Skills []Skill `json:"skills"`
}

// Goal is one tracked objective with a deadline
type Goal struct {
	Title    string `json:"title"`
	Progress int    `json:"progress"`
	Deadline string `json:"deadline"` // YYYY-MM-DD
	Priority string `json:"priority"` // high | medium | low
}

// Roadmap is the static learning roadmap configuration
type Roadmap struct {
	Tracks []Track `json:"tracks"`
	Goals  []Goal  `json:"goals"`
}
