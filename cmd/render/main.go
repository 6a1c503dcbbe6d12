package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/DannyahIA/profile-metrics/internal/export"
	"github.com/DannyahIA/profile-metrics/internal/storage"
	"github.com/DannyahIA/profile-metrics/internal/svg"
	"github.com/DannyahIA/profile-metrics/pkg/config"
	"github.com/DannyahIA/profile-metrics/pkg/logger"
	"github.com/sirupsen/logrus"
)

func main() {
	exportXLSX := flag.Bool("xlsx", false, "also export the metrics workbook")
	flag.Parse()

	logger.Init()

	if err := config.Load(); err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	cfg := config.AppConfig

	store := storage.NewStore(cfg.Paths.DataDir)

	// Metrics are required; everything else falls back to defaults
	m, err := store.LoadMetrics()
	if err != nil {
		logger.Fatalf("failed to load metrics (run collect first): %v", err)
	}
	history := store.LoadHistory()
	activity := store.LoadDailyActivity()
	projects := store.LoadProjects()
	careerData := store.LoadCareer()
	roadmap := store.LoadRoadmap()

	theme, err := svg.LoadTheme(cfg.Paths.ThemesDir, cfg.Theme)
	if err != nil {
		logger.WithError(err).Warnf("theme %q unavailable, using the default theme", cfg.Theme)
		theme = svg.DefaultTheme()
	}

	renderer := svg.NewRenderer(theme, time.Now().UTC())

	charts := []struct {
		name   string
		file   string
		render func() string
	}{
		{"stats hero", "stats_hero.svg", func() string { return renderer.StatsHero(m, history) }},
		{"language chart", "language_chart.svg", func() string { return renderer.LanguageChart(m) }},
		{"language donut", "language_donut.svg", func() string { return renderer.LanguageDonut(m) }},
		{"activity calendar", "activity_calendar.svg", func() string { return renderer.ActivityCalendar(m) }},
		{"streak card", "streak_card.svg", func() string { return renderer.StreakCard(m) }},
		{"tier card", "tier_card.svg", func() string { return renderer.TierCard(m) }},
		{"performance comparison", "performance_comparison.svg", func() string { return renderer.PerformanceComparison(m, activity, history) }},
		{"featured projects", "featured_projects.svg", func() string { return renderer.FeaturedProjects(projects) }},
		{"career timeline", "career_timeline.svg", func() string { return renderer.CareerTimeline(careerData) }},
		{"goals tracker", "goals_tracker.svg", func() string { return renderer.GoalsTracker(roadmap) }},
		{"learning stats", "learning_stats.svg", func() string { return renderer.LearningStats(roadmap) }},
	}

	if err := os.MkdirAll(cfg.Paths.AssetsDir, 0o755); err != nil {
		logger.Fatalf("failed to create assets dir: %v", err)
	}

	start := time.Now()
	var failed []string

	for _, chart := range charts {
		out, err := renderChart(chart.render)
		if err == nil {
			path := filepath.Join(cfg.Paths.AssetsDir, chart.file)
			err = os.WriteFile(path, []byte(out), 0o644)
		}
		if err != nil {
			logger.WithError(err).Errorf("chart %s failed", chart.name)
			failed = append(failed, chart.name)
			continue
		}
		logger.WithFields(logrus.Fields{
			"chart": chart.name,
			"file":  chart.file,
			"bytes": len(out),
		}).Info("chart rendered")
	}

	if *exportXLSX {
		rank := store.LoadRankings()
		path := filepath.Join(cfg.Paths.AssetsDir, export.WorkbookName)
		if err := export.NewExporter(m, rank).WriteFile(path); err != nil {
			logger.WithError(err).Errorf("workbook export failed")
			failed = append(failed, "workbook export")
		} else {
			logger.WithField("file", export.WorkbookName).Info("workbook exported")
		}
	}

	logger.WithFields(logrus.Fields{
		"rendered": len(charts) - len(failed),
		"failed":   len(failed),
		"duration": time.Since(start).String(),
	}).Info("rendering finished")

	if len(failed) > 0 {
		os.Exit(1)
	}
}

// renderChart turns a renderer panic into an error so one broken chart
// never stops the remaining charts from being written
func renderChart(render func() string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("render panicked: %v", r)
		}
	}()
	return render(), nil
}
