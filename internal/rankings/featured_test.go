package rankings

import (
	"testing"
	"time"

	"github.com/DannyahIA/profile-metrics/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeaturedRepositoriesScoring(t *testing.T) {
	starred := repoWith("starred", 10, "") // score 30
	forked := repoWith("forked", 0, "Go")  // score 21
	forked.Forks = 10
	plain := repoWith("plain", 0, "")          // score 0
	withLang := repoWith("with-lang", 0, "Go") // score 1

	featured := FeaturedRepositories([]models.Repository{plain, withLang, forked, starred}, 6)

	require.Len(t, featured, 4)
	assert.Equal(t, "starred", featured[0].Name)
	assert.Equal(t, "forked", featured[1].Name)
	assert.Equal(t, "with-lang", featured[2].Name)
	assert.Equal(t, "plain", featured[3].Name)
}

func TestFeaturedRepositoriesSkipsPrivate(t *testing.T) {
	private := repoWith("secret", 100, "Go")
	private.Private = true
	public := repoWith("open", 1, "Go")

	featured := FeaturedRepositories([]models.Repository{private, public}, 6)

	require.Len(t, featured, 1)
	assert.Equal(t, "open", featured[0].Name)
}

func TestFeaturedRepositoriesLimitAndTieBreak(t *testing.T) {
	repos := []models.Repository{
		repoWith("zeta", 2, ""),
		repoWith("alpha", 2, ""),
		repoWith("mid", 2, ""),
	}

	featured := FeaturedRepositories(repos, 2)

	require.Len(t, featured, 2)
	assert.Equal(t, "alpha", featured[0].Name)
	assert.Equal(t, "mid", featured[1].Name)
}

func TestFeaturedProjectFromDefaults(t *testing.T) {
	created := time.Date(2022, 3, 1, 10, 0, 0, 0, time.UTC)
	updated := time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC)

	repo := models.Repository{
		Name:      "bare",
		FullName:  "user/bare",
		Stars:     3,
		Forks:     1,
		HTMLURL:   "https://github.com/user/bare",
		CreatedAt: created,
		UpdatedAt: updated,
	}

	project := FeaturedProjectFrom(repo)

	assert.Equal(t, "No description available", project.Description)
	assert.Equal(t, "Unknown", project.Language)
	assert.Equal(t, "archived", project.Status, "no push date means the repo is dormant")
	assert.Equal(t, "2022-03-01", project.Created)
	assert.Equal(t, "2024-06-10", project.LastUpdated)

	pushed := updated
	repo.PushedAt = &pushed
	desc := "A real description"
	repo.Description = &desc
	lang := "Go"
	repo.Language = &lang

	project = FeaturedProjectFrom(repo)
	assert.Equal(t, "active", project.Status)
	assert.Equal(t, "A real description", project.Description)
	assert.Equal(t, "Go", project.Language)
}
