package metrics

import (
	"sort"
	"time"

	"github.com/DannyahIA/profile-metrics/internal/models"
)

// BuildDailyActivity groups the current month's commits, pull requests,
// and issues into per-day counts, keyed by month. Days without any
// activity are left out of the file entirely.
func BuildDailyActivity(commits []models.Commit, prs []models.PullRequest, issues []models.Issue, periodStart, now time.Time) models.DailyActivity {
	type dayCounts struct {
		commits, prs, issues int
	}
	byDate := make(map[string]*dayCounts)
	counts := func(date string) *dayCounts {
		if c, ok := byDate[date]; ok {
			return c
		}
		c := &dayCounts{}
		byDate[date] = c
		return c
	}

	for _, c := range commits {
		counts(c.Date.UTC().Format("2006-01-02")).commits++
	}
	for _, pr := range prs {
		counts(pr.CreatedAt.UTC().Format("2006-01-02")).prs++
	}
	for _, issue := range issues {
		counts(issue.CreatedAt.UTC().Format("2006-01-02")).issues++
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	daily := make(map[string][]models.ActivityDay)
	for _, date := range dates {
		c := byDate[date]
		if c.commits == 0 && c.prs == 0 && c.issues == 0 {
			continue
		}
		month := date[:7]
		daily[month] = append(daily[month], models.ActivityDay{
			Date:    date,
			Commits: c.commits,
			PRs:     c.prs,
			Issues:  c.issues,
		})
	}

	return models.DailyActivity{
		DailyStats: daily,
		Metadata: models.ActivityMetadata{
			LastUpdated:   now.UTC(),
			DaysCollected: len(byDate),
			PeriodStart:   periodStart.UTC().Format("2006-01-02"),
			PeriodEnd:     now.UTC().Format("2006-01-02"),
		},
	}
}
