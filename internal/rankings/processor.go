package rankings

import (
	"sort"
	"time"

	"github.com/DannyahIA/profile-metrics/internal/models"
)

// Processor computes project rankings from one run's raw data. Ties on
// any ranking key are broken by repository name ascending, so rankings
// are deterministic regardless of collection order.
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

// RankByActivity ranks repositories by commits + PRs + issues, keeping
// only repositories with a positive score
func (p *Processor) RankByActivity(limit int) []models.ActivityRanking {
	breakdowns := p.activityBreakdowns()

	var ranked []models.ActivityRanking
	for _, repo := range p.repos {
		b := breakdowns[repo.Name]
		score := b.Commits + b.PRs + b.Issues
		if score == 0 {
			continue
		}
		ranked = append(ranked, models.ActivityRanking{
			Name:      repo.Name,
			FullName:  repo.FullName,
			HTMLURL:   repo.HTMLURL,
			Language:  languageOf(repo),
			Score:     score,
			Breakdown: b,
			Stars:     repo.Stars,
			Private:   repo.Private,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Name < ranked[j].Name
	})

	return truncateActivity(ranked, limit)
}

// RankByStars ranks repositories with at least one star
func (p *Processor) RankByStars(limit int) []models.StarsRanking {
	var starred []models.StarsRanking
	for _, repo := range p.repos {
		if repo.Stars == 0 {
			continue
		}
		description := ""
		if repo.Description != nil {
			description = *repo.Description
		}
		starred = append(starred, models.StarsRanking{
			Name:        repo.Name,
			FullName:    repo.FullName,
			Language:    languageOf(repo),
			Stars:       repo.Stars,
			Forks:       repo.Forks,
			Description: description,
		})
	}

	sort.Slice(starred, func(i, j int) bool {
		if starred[i].Stars != starred[j].Stars {
			return starred[i].Stars > starred[j].Stars
		}
		return starred[i].Name < starred[j].Name
	})

	if len(starred) > limit {
		starred = starred[:limit]
	}
	return starred
}

// RankByRecency ranks repositories by last push, newest first.
// Repositories never pushed to are excluded.
func (p *Processor) RankByRecency(limit int) []models.RecencyRanking {
	var recent []models.RecencyRanking
	for _, repo := range p.repos {
		if repo.PushedAt == nil {
			continue
		}
		pushed := repo.PushedAt.UTC()
		recent = append(recent, models.RecencyRanking{
			Name:     repo.Name,
			FullName: repo.FullName,
			Language: languageOf(repo),
			LastPush: pushed,
			DaysAgo:  int(p.now.Sub(pushed).Hours() / 24),
			Private:  repo.Private,
		})
	}

	sort.Slice(recent, func(i, j int) bool {
		if !recent[i].LastPush.Equal(recent[j].LastPush) {
			return recent[i].LastPush.After(recent[j].LastPush)
		}
		return recent[i].Name < recent[j].Name
	})

	if len(recent) > limit {
		recent = recent[:limit]
	}
	return recent
}

// RankByCommits ranks repositories by commit count alone
func (p *Processor) RankByCommits(limit int) []models.CommitsRanking {
	counts := make(map[string]int)
	for _, c := range p.commits {
		counts[c.Repo]++
	}

	var ranked []models.CommitsRanking
	for _, repo := range p.repos {
		count := counts[repo.Name]
		if count == 0 {
			continue
		}
		ranked = append(ranked, models.CommitsRanking{
			Name:     repo.Name,
			FullName: repo.FullName,
			Language: languageOf(repo),
			Commits:  count,
			Private:  repo.Private,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Commits != ranked[j].Commits {
			return ranked[i].Commits > ranked[j].Commits
		}
		return ranked[i].Name < ranked[j].Name
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// RankByLanguage groups repositories by language, each group sorted by
// total activity. Repositories without a language are skipped.
func (p *Processor) RankByLanguage() map[string][]models.LanguageProject {
	breakdowns := p.activityBreakdowns()

	byLanguage := make(map[string][]models.LanguageProject)
	for _, repo := range p.repos {
		lang := languageOf(repo)
		if lang == "" {
			continue
		}
		b := breakdowns[repo.Name]
		byLanguage[lang] = append(byLanguage[lang], models.LanguageProject{
			Name:     repo.Name,
			FullName: repo.FullName,
			Stars:    repo.Stars,
			Activity: b.Commits + b.PRs + b.Issues,
			Private:  repo.Private,
		})
	}

	for lang := range byLanguage {
		projects := byLanguage[lang]
		sort.Slice(projects, func(i, j int) bool {
			if projects[i].Activity != projects[j].Activity {
				return projects[i].Activity > projects[j].Activity
			}
			return projects[i].Name < projects[j].Name
		})
	}

	return byLanguage
}

// Generate computes every ranking with the default limit of ten
func (p *Processor) Generate() models.Rankings {
	return models.Rankings{
		LastUpdate:  p.now,
		TopProjects: p.RankByActivity(10),
		MostActive:  p.RankByCommits(10),
		MostStars:   p.RankByStars(10),
		MostRecent:  p.RankByRecency(10),
		ByLanguage:  p.RankByLanguage(),
	}
}

func (p *Processor) activityBreakdowns() map[string]models.ActivityBreakdown {
	breakdowns := make(map[string]models.ActivityBreakdown)
	for _, c := range p.commits {
		b := breakdowns[c.Repo]
		b.Commits++
		breakdowns[c.Repo] = b
	}
	for _, pr := range p.prs {
		b := breakdowns[pr.Repo]
		b.PRs++
		breakdowns[pr.Repo] = b
	}
	for _, issue := range p.issues {
		b := breakdowns[issue.Repo]
		b.Issues++
		breakdowns[issue.Repo] = b
	}
	return breakdowns
}

func truncateActivity(ranked []models.ActivityRanking, limit int) []models.ActivityRanking {
	if len(ranked) > limit {
		return ranked[:limit]
	}
	return ranked
}

func languageOf(repo models.Repository) string {
	if repo.Language == nil {
		return ""
	}
	return *repo.Language
}
