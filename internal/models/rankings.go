package models

import (
	"time"
)

// ActivityBreakdown splits an activity score into its components
type ActivityBreakdown struct {
	Commits int `json:"commits"`
	PRs     int `json:"prs"`
	Issues  int `json:"issues"`
}

// ActivityRanking is a repository ranked by total activity
type ActivityRanking struct {
	Name      string            `json:"name"`
	FullName  string            `json:"full_name"`
	HTMLURL   string            `json:"html_url"`
	Language  string            `json:"language"`
	Score     int               `json:"score"`
	Breakdown ActivityBreakdown `json:"breakdown"`
	Stars     int               `json:"stars"`
	Private   bool              `json:"private"`
}

// StarsRanking is a repository ranked by star count
type StarsRanking struct {
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Language    string `json:"language"`
	Stars       int    `json:"stars"`
	Forks       int    `json:"forks"`
	Description string `json:"description"`
}

// RecencyRanking is a repository ranked by how recently it was pushed
type RecencyRanking struct {
	Name     string    `json:"name"`
	FullName string    `json:"full_name"`
	Language string    `json:"language"`
	LastPush time.Time `json:"last_push"`
	DaysAgo  int       `json:"days_ago"`
	Private  bool      `json:"private"`
}

// CommitsRanking is a repository ranked by commit count
type CommitsRanking struct {
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	Language string `json:"language"`
	Commits  int    `json:"commits"`
	Private  bool   `json:"private"`
}

// LanguageProject is a repository inside a per-language group
type LanguageProject struct {
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	Stars    int    `json:"stars"`
	Activity int    `json:"activity"`
	Private  bool   `json:"private"`
}

// Rankings collects every project ranking computed for one run
type Rankings struct {
	LastUpdate  time.Time                    `json:"last_update"`
	TopProjects []ActivityRanking            `json:"top_projects"`
	MostActive  []CommitsRanking             `json:"most_active"`
	MostStars   []StarsRanking               `json:"most_stars"`
	MostRecent  []RecencyRanking             `json:"most_recent"`
	ByLanguage  map[string][]LanguageProject `json:"by_language"`
}
