package metrics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/DannyahIA/profile-metrics/internal/models"
)

// Processor turns raw collected lists into aggregated metrics. The clock
// is injected so current-month and streak boundaries are testable.
type Processor struct {
	repos   []models.Repository
	commits []models.Commit
	prs     []models.PullRequest
	issues  []models.Issue
	now     time.Time
}

// NewProcessor creates a processor over one run's raw data
func NewProcessor(repos []models.Repository, commits []models.Commit, prs []models.PullRequest, issues []models.Issue, now time.Time) *Processor {
	return &Processor{
		repos:   repos,
		commits: commits,
		prs:     prs,
		issues:  issues,
		now:     now.UTC(),
	}
}

// DailyStats groups commits by calendar date (UTC) and computes the
// average over active days
func (p *Processor) DailyStats() models.DailyStats {
	byDate := make(map[string]int)
	for _, c := range p.commits {
		byDate[c.Date.UTC().Format("2006-01-02")]++
	}

	days := make([]models.DayCount, 0, len(byDate))
	for date, count := range byDate {
		days = append(days, models.DayCount{Date: date, Count: count})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	totalDays := len(byDate)
	average := 0.0
	if totalDays > 0 {
		average = math.Round(float64(len(p.commits))/float64(totalDays)*100) / 100
	}

	return models.DailyStats{
		CommitsPerDay:   days,
		AverageCommits:  average,
		TotalDaysActive: totalDays,
	}
}

// WeeklyStats groups PRs by creation week and issues by closing week
func (p *Processor) WeeklyStats() models.WeeklyStats {
	prsByWeek := make(map[string]int)
	for _, pr := range p.prs {
		prsByWeek[isoWeek(pr.CreatedAt)]++
	}

	issuesByWeek := make(map[string]int)
	for _, issue := range p.issues {
		if issue.ClosedAt != nil {
			issuesByWeek[isoWeek(*issue.ClosedAt)]++
		}
	}

	return models.WeeklyStats{
		PRsPerWeek:          sortedWeekCounts(prsByWeek),
		IssuesClosedPerWeek: sortedWeekCounts(issuesByWeek),
	}
}

// MonthlyStats counts activity created in the current calendar month
func (p *Processor) MonthlyStats() models.MonthlyStats {
	monthStart := time.Date(p.now.Year(), p.now.Month(), 1, 0, 0, 0, 0, time.UTC)

	stats := models.MonthlyStats{Month: p.now.Format("2006-01")}
	for _, c := range p.commits {
		if !c.Date.Before(monthStart) {
			stats.CommitsThisMonth++
		}
	}
	for _, pr := range p.prs {
		if !pr.CreatedAt.Before(monthStart) {
			stats.PRsThisMonth++
		}
	}
	for _, issue := range p.issues {
		if !issue.CreatedAt.Before(monthStart) {
			stats.IssuesThisMonth++
		}
	}
	return stats
}

// TopLanguages ranks languages by repository count, most common first.
// Ties are broken by name so the ranking is deterministic.
func (p *Processor) TopLanguages(limit int) []models.LanguageCount {
	counts := make(map[string]int)
	for _, repo := range p.repos {
		if repo.Language != nil && *repo.Language != "" {
			counts[*repo.Language]++
		}
	}

	langs := make([]models.LanguageCount, 0, len(counts))
	for name, count := range counts {
		langs = append(langs, models.LanguageCount{Name: name, Count: count})
	}
	sort.Slice(langs, func(i, j int) bool {
		if langs[i].Count != langs[j].Count {
			return langs[i].Count > langs[j].Count
		}
		return langs[i].Name < langs[j].Name
	})

	if len(langs) > limit {
		langs = langs[:limit]
	}
	return langs
}

// RankLanguagesByBytes ranks languages by total bytes of code, using the
// per-repository language breakdowns collected from the API
func RankLanguagesByBytes(counts map[string]int, bytes map[string]int64, limit int) []models.LanguageCount {
	langs := make([]models.LanguageCount, 0, len(counts))
	for name, count := range counts {
		langs = append(langs, models.LanguageCount{Name: name, Count: count, Bytes: bytes[name]})
	}
	sort.Slice(langs, func(i, j int) bool {
		if langs[i].Bytes != langs[j].Bytes {
			return langs[i].Bytes > langs[j].Bytes
		}
		return langs[i].Name < langs[j].Name
	})
	if len(langs) > limit {
		langs = langs[:limit]
	}
	return langs
}

// Streak computes current and longest consecutive-day commit streaks.
// The current streak only counts when the latest active date is today or
// yesterday (UTC); the grace day keeps an early-morning run from
// reporting a broken streak.
func (p *Processor) Streak() models.Streak {
	if len(p.commits) == 0 {
		return models.Streak{}
	}

	seen := make(map[string]bool)
	var dates []time.Time
	for _, c := range p.commits {
		day := c.Date.UTC().Truncate(24 * time.Hour)
		key := day.Format("2006-01-02")
		if !seen[key] {
			seen[key] = true
			dates = append(dates, day)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	today := p.now.Truncate(24 * time.Hour)

	current := 0
	latest := dates[len(dates)-1]
	if daysBetween(latest, today) <= 1 {
		current = 1
		for i := len(dates) - 1; i > 0; i-- {
			if daysBetween(dates[i-1], dates[i]) == 1 {
				current++
			} else {
				break
			}
		}
	}

	longest := 1
	run := 1
	for i := 1; i < len(dates); i++ {
		if daysBetween(dates[i-1], dates[i]) == 1 {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}

	return models.Streak{Current: current, Longest: longest}
}

// Generate computes the full metrics document for one run
func (p *Processor) Generate(profile *models.Profile, languages []models.LanguageCount, contributors int) models.Metrics {
	totalStars := 0
	totalForks := 0
	for _, repo := range p.repos {
		totalStars += repo.Stars
		totalForks += repo.Forks
	}

	username := ""
	name := ""
	if profile != nil {
		username = profile.Login
		name = profile.Login
		if profile.Name != nil && *profile.Name != "" {
			name = *profile.Name
		}
	}

	return models.Metrics{
		Username:     username,
		Name:         name,
		TotalCommits: len(p.commits),
		TotalRepos:   len(p.repos),
		TotalPRs:     len(p.prs),
		TotalIssues:  len(p.issues),
		TotalStars:   totalStars,
		TotalForks:   totalForks,
		Contributors: contributors,
		Streak:       p.Streak(),
		TopLanguages: languages,
		DailyStats:   p.DailyStats(),
		WeeklyStats:  p.WeeklyStats(),
		MonthlyStats: p.MonthlyStats(),
		LastUpdated:  p.now,
	}
}

// daysBetween returns the whole-day difference between two date-truncated times
func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

func isoWeek(t time.Time) string {
	year, week := t.UTC().ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

func sortedWeekCounts(byWeek map[string]int) []models.WeekCount {
	weeks := make([]models.WeekCount, 0, len(byWeek))
	for week, count := range byWeek {
		weeks = append(weeks, models.WeekCount{Week: week, Count: count})
	}
	sort.Slice(weeks, func(i, j int) bool { return weeks[i].Week < weeks[j].Week })
	return weeks
}
