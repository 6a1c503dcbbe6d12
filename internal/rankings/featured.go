package rankings

import (
	"sort"

	"github.com/DannyahIA/profile-metrics/internal/models"
)

// relevanceScore favors repositories people actually use: stars weigh
// triple, forks double, and having a primary language adds one.
func relevanceScore(repo models.Repository) int {
	score := repo.Stars*3 + repo.Forks*2
	if repo.Language != nil && *repo.Language != "" {
		score++
	}
	return score
}

// FeaturedRepositories picks the public repositories with the highest
// relevance score. Ties are broken by name so the selection is stable
// between runs.
func FeaturedRepositories(repos []models.Repository, limit int) []models.Repository {
	var public []models.Repository
	for _, repo := range repos {
		if !repo.Private {
			public = append(public, repo)
		}
	}

	sort.Slice(public, func(i, j int) bool {
		si, sj := relevanceScore(public[i]), relevanceScore(public[j])
		if si != sj {
			return si > sj
		}
		return public[i].Name < public[j].Name
	})

	if len(public) > limit {
		public = public[:limit]
	}
	return public
}

// FeaturedProjectFrom converts a repository into a featured project entry.
// Detail counts (commits, PRs, contributors, topics) are filled in by the
// caller after the extra API calls.
func FeaturedProjectFrom(repo models.Repository) models.FeaturedProject {
	description := "No description available"
	if repo.Description != nil && *repo.Description != "" {
		description = *repo.Description
	}
	language := "Unknown"
	if repo.Language != nil && *repo.Language != "" {
		language = *repo.Language
	}
	status := "archived"
	if repo.PushedAt != nil {
		status = "active"
	}

	return models.FeaturedProject{
		Name:        repo.Name,
		Description: description,
		Language:    language,
		Stars:       repo.Stars,
		Forks:       repo.Forks,
		Created:     repo.CreatedAt.UTC().Format("2006-01-02"),
		LastUpdated: repo.UpdatedAt.UTC().Format("2006-01-02"),
		Status:      status,
		URL:         repo.HTMLURL,
	}
}
