package export

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/DannyahIA/profile-metrics/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteFile(t *testing.T) {
	m := models.Metrics{
		Username:     "octocat",
		Name:         "The Octocat",
		TotalCommits: 120,
		TotalRepos:   8,
		TotalPRs:     15,
		TotalStars:   42,
		Streak:       models.Streak{Current: 3, Longest: 12},
		TopLanguages: []models.LanguageCount{
			{Name: "Go", Count: 5, Bytes: 100000},
			{Name: "Python", Count: 3, Bytes: 50000},
		},
		LastUpdated: time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC),
	}
	r := models.Rankings{
		TopProjects: []models.ActivityRanking{
			{Name: "busy", Language: "Go", Score: 9, Breakdown: models.ActivityBreakdown{Commits: 5, PRs: 3, Issues: 1}, Stars: 2},
		},
		MostStars: []models.StarsRanking{
			{Name: "popular", Language: "Go", Stars: 42, Forks: 7},
		},
		MostRecent: []models.RecencyRanking{
			{Name: "fresh", Language: "Python", LastPush: time.Date(2024, 6, 14, 8, 0, 0, 0, time.UTC), DaysAgo: 1},
		},
	}

	path := filepath.Join(t.TempDir(), WorkbookName)
	require.NoError(t, NewExporter(m, r).WriteFile(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Overview", "Languages", "Rankings"}, f.GetSheetList())

	username, err := f.GetCellValue("Overview", "B1")
	require.NoError(t, err)
	assert.Equal(t, "octocat", username)

	commits, err := f.GetCellValue("Overview", "B3")
	require.NoError(t, err)
	assert.Equal(t, "120", commits)

	lang, err := f.GetCellValue("Languages", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Go", lang)

	share, err := f.GetCellValue("Languages", "D2")
	require.NoError(t, err)
	assert.Equal(t, "62.5%", share)

	section, err := f.GetCellValue("Rankings", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Top Projects by Activity", section)

	project, err := f.GetCellValue("Rankings", "A3")
	require.NoError(t, err)
	assert.Equal(t, "busy", project)
}

func TestWriteFileEmptyAggregates(t *testing.T) {
	path := filepath.Join(t.TempDir(), WorkbookName)

	require.NoError(t, NewExporter(models.Metrics{}, models.Rankings{}).WriteFile(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Len(t, f.GetSheetList(), 3)
}
