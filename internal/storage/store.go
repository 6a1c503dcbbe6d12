package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/DannyahIA/profile-metrics/internal/models"
)

// Snapshot file names inside the data directory
const (
	MetricsFile       = "metrics.json"
	HistoryFile       = "history.json"
	DailyActivityFile = "daily_activity.json"
	ProjectsFile      = "projects.json"
	CareerFile        = "career.json"
	RoadmapFile       = "roadmap.json"
	ReportFile        = "report.json"
)

// HistoryLimit caps the history file at the latest twelve months
const HistoryLimit = 12

// Store reads and writes the flat JSON snapshot files. Files are always
// rewritten wholesale; there is no incremental patching.
type Store struct {
	dataDir string
}

// NewStore creates a store rooted at the given data directory
func NewStore(dataDir string) *Store {
	return &Store{dataDir: dataDir}
}

// SaveMetrics writes the metrics snapshot
func (s *Store) SaveMetrics(m models.Metrics) error {
	return s.write(MetricsFile, m)
}

// LoadMetrics reads the metrics snapshot
func (s *Store) LoadMetrics() (models.Metrics, error) {
	var m models.Metrics
	err := s.read(MetricsFile, &m)
	return m, err
}

// SaveHistory writes the monthly history file
func (s *Store) SaveHistory(h models.History) error {
	return s.write(HistoryFile, h)
}

// LoadHistory reads the monthly history; a missing file yields an empty history
func (s *Store) LoadHistory() models.History {
	var h models.History
	if err := s.read(HistoryFile, &h); err != nil {
		return models.History{}
	}
	return h
}

// UpdateHistory replaces or appends the current month's snapshot and trims
// the series to the latest twelve months, newest first
func (s *Store) UpdateHistory(m models.Metrics, now time.Time) (models.History, error) {
	history := s.LoadHistory()

	snapshot := models.MonthlySnapshot{
		Month:        now.UTC().Format("2006-01"),
		TotalCommits: m.TotalCommits,
		TotalRepos:   m.TotalRepos,
		TotalPRs:     m.TotalPRs,
		TotalStars:   m.TotalStars,
		TotalIssues:  m.TotalIssues,
		Languages:    m.TopLanguages,
		RecordedAt:   now.UTC(),
	}

	replaced := false
	for i, existing := range history.MonthlySnapshots {
		if existing.Month == snapshot.Month {
			history.MonthlySnapshots[i] = snapshot
			replaced = true
			break
		}
	}
	if !replaced {
		history.MonthlySnapshots = append(history.MonthlySnapshots, snapshot)
	}

	sort.Slice(history.MonthlySnapshots, func(i, j int) bool {
		return history.MonthlySnapshots[i].Month > history.MonthlySnapshots[j].Month
	})
	if len(history.MonthlySnapshots) > HistoryLimit {
		history.MonthlySnapshots = history.MonthlySnapshots[:HistoryLimit]
	}

	if err := s.SaveHistory(history); err != nil {
		return models.History{}, err
	}
	return history, nil
}

// SaveDailyActivity writes the daily activity file
func (s *Store) SaveDailyActivity(a models.DailyActivity) error {
	return s.write(DailyActivityFile, a)
}

// LoadDailyActivity reads daily activity; a missing file yields empty stats
func (s *Store) LoadDailyActivity() models.DailyActivity {
	var a models.DailyActivity
	if err := s.read(DailyActivityFile, &a); err != nil {
		return models.DailyActivity{DailyStats: map[string][]models.ActivityDay{}}
	}
	if a.DailyStats == nil {
		a.DailyStats = map[string][]models.ActivityDay{}
	}
	return a
}

// SaveProjects writes the featured projects file
func (s *Store) SaveProjects(p models.Projects) error {
	return s.write(ProjectsFile, p)
}

// LoadProjects reads featured projects; a missing file yields an empty list
func (s *Store) LoadProjects() models.Projects {
	var p models.Projects
	if err := s.read(ProjectsFile, &p); err != nil {
		return models.Projects{}
	}
	return p
}

// LoadCareer reads the static career configuration; a missing file yields
// an empty timeline so rendering can proceed without career data
func (s *Store) LoadCareer() models.Career {
	var c models.Career
	if err := s.read(CareerFile, &c); err != nil {
		return models.Career{Meta: models.CareerMeta{ShowDates: "year_only"}}
	}
	if c.Meta.ShowDates == "" {
		c.Meta.ShowDates = "year_only"
	}
	return c
}

// LoadRoadmap reads the learning roadmap; a missing file yields the default
func (s *Store) LoadRoadmap() models.Roadmap {
	var r models.Roadmap
	if err := s.read(RoadmapFile, &r); err != nil {
		return DefaultRoadmap()
	}
	return r
}

// SaveReport writes the collection run report
func (s *Store) SaveReport(r *models.CollectionReport) error {
	return s.write(ReportFile, r)
}

// SaveRankings writes the rankings snapshot
func (s *Store) SaveRankings(r models.Rankings) error {
	return s.write("rankings.json", r)
}

// LoadRankings reads the rankings snapshot; a missing file yields empty rankings
func (s *Store) LoadRankings() models.Rankings {
	var r models.Rankings
	if err := s.read("rankings.json", &r); err != nil {
		return models.Rankings{}
	}
	return r
}

func (s *Store) write(name string, v interface{}) error {
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}
	path := filepath.Join(s.dataDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

func (s *Store) read(name string, v interface{}) error {
	data, err := os.ReadFile(filepath.Join(s.dataDir, name))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return nil
}
