package models

import (
	"time"
)

// Streak holds consecutive-day commit activity. Current is only non-zero
// when the most recent active date is today or yesterday (UTC).
type Streak struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// DayCount is one calendar day's commit count
type DayCount struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// WeekCount is one ISO week's item count
type WeekCount struct {
	Week  string `json:"week"` // YYYY-Www
	Count int    `json:"count"`
}

// DailyStats summarizes commit activity grouped by calendar date (UTC)
type DailyStats struct {
	CommitsPerDay   []DayCount `json:"commits_per_day"`
	AverageCommits  float64    `json:"average_commits"`
	TotalDaysActive int        `json:"total_days_active"`
}

// WeeklyStats groups pull requests and closed issues by ISO week
type WeeklyStats struct {
	PRsPerWeek          []WeekCount `json:"prs_per_week"`
	IssuesClosedPerWeek []WeekCount `json:"issues_closed_per_week"`
}

// MonthlyStats counts activity in the current calendar month
type MonthlyStats struct {
	CommitsThisMonth int    `json:"commits_this_month"`
	PRsThisMonth     int    `json:"prs_this_month"`
	IssuesThisMonth  int    `json:"issues_this_month"`
	Month            string `json:"month"` // YYYY-MM
}

// LanguageCount is a language with its repository count and total bytes
type LanguageCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Bytes int64  `json:"bytes"`
}

// Metrics is the aggregated output of one collection run
type Metrics struct {
	Username     string          `json:"username"`
	Name         string          `json:"name"`
	TotalCommits int             `json:"total_commits"`
	TotalRepos   int             `json:"total_repos"`
	TotalPRs     int             `json:"total_prs"`
	TotalIssues  int             `json:"total_issues"`
	TotalStars   int             `json:"total_stars"`
	TotalForks   int             `json:"total_forks"`
	Contributors int             `json:"contributors"`
	Streak       Streak          `json:"activity_streak"`
	TopLanguages []LanguageCount `json:"top_languages"`
	DailyStats   DailyStats      `json:"daily_stats"`
	WeeklyStats  WeeklyStats     `json:"weekly_stats"`
	MonthlyStats MonthlyStats    `json:"monthly_stats"`
	LastUpdated  time.Time       `json:"last_updated"`
}

// MonthlySnapshot is one month's worth of accumulated metrics in the history file
type MonthlySnapshot struct {
	Month        string          `json:"month"` // YYYY-MM
	TotalCommits int             `json:"total_commits"`
	TotalRepos   int             `json:"total_repos"`
	TotalPRs     int             `json:"total_prs"`
	TotalStars   int             `json:"total_stars"`
	TotalIssues  int             `json:"total_issues"`
	Languages    []LanguageCount `json:"languages"`
	RecordedAt   time.Time       `json:"recorded_at"`
}

// History is the persisted monthly snapshot series, newest first,
// capped at twelve months
type History struct {
	MonthlySnapshots []MonthlySnapshot `json:"monthly_snapshots"`
}

// ActivityDay is one day's activity counts in the daily activity file
type ActivityDay struct {
	Date    string `json:"date"` // YYYY-MM-DD
	Commits int    `json:"commits"`
	PRs     int    `json:"prs"`
	Issues  int    `json:"issues"`
	Reviews int    `json:"reviews"`
}

// DailyActivity groups active days by month (YYYY-MM); days without any
// activity are not recorded
type DailyActivity struct {
	DailyStats map[string][]ActivityDay `json:"daily_stats"`
	Metadata   ActivityMetadata         `json:"metadata"`
}

type ActivityMetadata struct {
	LastUpdated   time.Time `json:"last_updated"`
	DaysCollected int       `json:"days_collected"`
	PeriodStart   string    `json:"period_start"`
	PeriodEnd     string    `json:"period_end"`
}

// FeaturedProject is one of the highlighted repositories with detail counts
type FeaturedProject struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Language     string   `json:"language"`
	Stars        int      `json:"stars"`
	Forks        int      `json:"forks"`
	Commits      int      `json:"commits"`
	PRs          int      `json:"prs"`
	Contributors int      `json:"contributors"`
	Created      string   `json:"created"`      // YYYY-MM-DD
	LastUpdated  string   `json:"last_updated"` // YYYY-MM-DD
	Topics       []string `json:"topics"`
	Status       string   `json:"status"` // active | archived
	URL          string   `json:"url"`
}

// Projects is the persisted featured projects file
type Projects struct {
	FeaturedProjects []FeaturedProject `json:"featured_projects"`
	Metadata         ProjectsMetadata  `json:"metadata"`
}

type ProjectsMetadata struct {
	LastUpdated time.Time `json:"last_updated"`
	TotalRepos  int       `json:"total_repos"`
}
