package models

import (
	"time"
)

// Repository represents one GitHub repository as collected from the API.
// FullName is unique within a collection run.
type Repository struct {
	Name        string     `json:"name"`
	FullName    string     `json:"full_name"`
	Private     bool       `json:"private"`
	Language    *string    `json:"language"`
	Stars       int        `json:"stars"`
	Forks       int        `json:"forks"`
	HTMLURL     string     `json:"html_url"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	PushedAt    *time.Time `json:"pushed_at"`
	Size        int        `json:"size"`
	OpenIssues  int        `json:"open_issues"`
	Description *string    `json:"description"`
}

// Commit represents a single commit authored by the collected user.
// SHA is unique within a repository; ordering by date is not guaranteed
// by the API and must be sorted by the aggregators.
type Commit struct {
	Repo         string    `json:"repo"`
	SHA          string    `json:"sha"`
	Message      string    `json:"message"`
	Date         time.Time `json:"date"`
	Additions    int       `json:"additions"`
	Deletions    int       `json:"deletions"`
	TotalChanges int       `json:"total_changes"`
}

// PullRequest represents a pull request in one of the user's repositories
type PullRequest struct {
	Repo         string     `json:"repo"`
	Number       int        `json:"number"`
	Title        string     `json:"title"`
	State        string     `json:"state"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	MergedAt     *time.Time `json:"merged_at"`
	ClosedAt     *time.Time `json:"closed_at"`
	User         string     `json:"user"`
	Additions    int        `json:"additions"`
	Deletions    int        `json:"deletions"`
	ChangedFiles int        `json:"changed_files"`
	Comments     int        `json:"comments"`
}

// Issue represents an issue in one of the user's repositories. Items that
// are actually pull requests are filtered out during collection.
type Issue struct {
	Repo      string     `json:"repo"`
	Number    int        `json:"number"`
	Title     string     `json:"title"`
	State     string     `json:"state"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	ClosedAt  *time.Time `json:"closed_at"`
	Comments  int        `json:"comments"`
	Labels    []string   `json:"labels"`
}

// Profile represents the collected user's GitHub profile
type Profile struct {
	Login       string    `json:"login"`
	Name        *string   `json:"name"`
	Bio         *string   `json:"bio"`
	Company     *string   `json:"company"`
	Location    *string   `json:"location"`
	Email       *string   `json:"email"`
	Blog        *string   `json:"blog"`
	Twitter     *string   `json:"twitter"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	PublicRepos int       `json:"public_repos"`
	PublicGists int       `json:"public_gists"`
	AvatarURL   string    `json:"avatar_url"`
	HTMLURL     string    `json:"html_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StarredRepo is a repository the user has starred
type StarredRepo struct {
	Name        string  `json:"name"`
	FullName    string  `json:"full_name"`
	Description *string `json:"description"`
	Language    *string `json:"language"`
	Stars       int     `json:"stars"`
	HTMLURL     string  `json:"html_url"`
}

// RateLimit is the core API rate limit status at a point in time
type RateLimit struct {
	Remaining int       `json:"remaining"`
	Limit     int       `json:"limit"`
	Reset     time.Time `json:"reset"`
}
