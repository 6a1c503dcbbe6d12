package models

import (
	"time"

	"github.com/google/uuid"
)

// Outcome states for a single repository during collection
const (
	OutcomeSuccess = "success"
	OutcomePartial = "partial"
	OutcomeFailed  = "failed"
)

// RepoOutcome records how collection went for one repository. A partial
// outcome means some of the repository's data was collected before an
// error was skipped over.
type RepoOutcome struct {
	Repo   string `json:"repo"`
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// CollectionReport summarizes one collection run. Failures never abort the
// run; they are recorded here so the run's completeness is visible.
type CollectionReport struct {
	RunID           string        `json:"run_id"`
	StartedAt       time.Time     `json:"started_at"`
	FinishedAt      time.Time     `json:"finished_at"`
	Username        string        `json:"username"`
	Repos           []RepoOutcome `json:"repos"`
	CommitsCount    int           `json:"commits_count"`
	PRsCount        int           `json:"prs_count"`
	IssuesCount     int           `json:"issues_count"`
	RateLimitBefore *RateLimit    `json:"rate_limit_before,omitempty"`
	RateLimitAfter  *RateLimit    `json:"rate_limit_after,omitempty"`
}

// NewCollectionReport creates a report for a run starting now
func NewCollectionReport(username string) *CollectionReport {
	return &CollectionReport{
		RunID:     uuid.New().String(),
		StartedAt: time.Now().UTC(),
		Username:  username,
	}
}

// Record appends one repository outcome
func (r *CollectionReport) Record(repo, status, reason string) {
	r.Repos = append(r.Repos, RepoOutcome{Repo: repo, Status: status, Reason: reason})
}

// FailedCount returns how many repositories failed entirely
func (r *CollectionReport) FailedCount() int {
	count := 0
	for _, o := range r.Repos {
		if o.Status == OutcomeFailed {
			count++
		}
	}
	return count
}
