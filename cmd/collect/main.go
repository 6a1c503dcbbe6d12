package main

import (
	"context"
	"os"
	"time"

	"github.com/DannyahIA/profile-metrics/internal/collector"
	"github.com/DannyahIA/profile-metrics/internal/metrics"
	"github.com/DannyahIA/profile-metrics/internal/models"
	"github.com/DannyahIA/profile-metrics/internal/rankings"
	"github.com/DannyahIA/profile-metrics/internal/storage"
	"github.com/DannyahIA/profile-metrics/pkg/config"
	"github.com/DannyahIA/profile-metrics/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Collection limits. The metrics window keeps commit totals realistic;
// the contributor cap keeps the run inside the API rate limit.
const (
	metricsWindowDays = 180
	languageLimit     = 12
	contributorRepos  = 10
	starredLimit      = 30
	featuredLimit     = 6
)

func main() {
	logger.Init()

	// Load configuration
	if err := config.Load(); err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	cfg := config.AppConfig

	if cfg.GitHub.Token == "" {
		logger.Fatalf("GH_TOKEN is required; set it in the environment or a .env file")
	}

	ctx := context.Background()
	coll, err := collector.New(ctx, cfg.GitHub.Token, cfg.GitHub.Username)
	if err != nil {
		logger.Fatalf("failed to authenticate with GitHub: %v", err)
	}
	logger.WithField("user", coll.Login()).Info("authenticated")

	now := time.Now().UTC()
	report := models.NewCollectionReport(coll.Login())

	if rate, err := coll.RateLimit(ctx); err == nil {
		report.RateLimitBefore = rate
		logger.WithFields(logrus.Fields{
			"remaining": rate.Remaining,
			"limit":     rate.Limit,
		}).Info("rate limit before collection")
	}

	store := storage.NewStore(cfg.Paths.DataDir)

	// Without the repository list there is nothing to collect
	repos, err := coll.CollectRepositories(ctx)
	if err != nil {
		logger.Fatalf("failed to list repositories: %v", err)
	}
	logger.WithField("count", len(repos)).Info("repositories collected")

	since := now.AddDate(0, 0, -metricsWindowDays)
	commits := coll.CollectCommits(ctx, repos, since, now, report)
	prs := coll.CollectPullRequests(ctx, repos, since, report)
	issues := coll.CollectIssues(ctx, repos, since, report)
	report.CommitsCount = len(commits)
	report.PRsCount = len(prs)
	report.IssuesCount = len(issues)
	logger.WithFields(logrus.Fields{
		"commits": len(commits),
		"prs":     len(prs),
		"issues":  len(issues),
	}).Info("activity collected")

	profile, err := coll.CollectProfile(ctx)
	if err != nil {
		logger.WithError(err).Warnf("profile unavailable, metrics will miss the display name")
	}

	if starred, err := coll.CollectStarred(ctx, starredLimit); err != nil {
		logger.WithError(err).Warnf("starred repositories unavailable")
	} else {
		logger.WithField("count", len(starred)).Info("starred repositories collected")
	}

	langCounts, langBytes := coll.CollectLanguages(ctx, repos)
	languages := metrics.RankLanguagesByBytes(langCounts, langBytes, languageLimit)
	contributors := coll.CollectContributors(ctx, repos, contributorRepos)

	processor := metrics.NewProcessor(repos, commits, prs, issues, now)
	m := processor.Generate(profile, languages, contributors)
	if err := store.SaveMetrics(m); err != nil {
		logger.Fatalf("failed to save metrics: %v", err)
	}

	// The daily activity file covers the current month; the metrics
	// window is a superset, so filter instead of re-fetching.
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	var monthCommits []models.Commit
	for _, c := range commits {
		if !c.Date.Before(monthStart) {
			monthCommits = append(monthCommits, c)
		}
	}
	var monthPRs []models.PullRequest
	for _, pr := range prs {
		if !pr.CreatedAt.Before(monthStart) {
			monthPRs = append(monthPRs, pr)
		}
	}
	var monthIssues []models.Issue
	for _, issue := range issues {
		if !issue.CreatedAt.Before(monthStart) {
			monthIssues = append(monthIssues, issue)
		}
	}
	activity := metrics.BuildDailyActivity(monthCommits, monthPRs, monthIssues, monthStart, now)
	if err := store.SaveDailyActivity(activity); err != nil {
		logger.Fatalf("failed to save daily activity: %v", err)
	}

	publicCount := 0
	for _, repo := range repos {
		if !repo.Private {
			publicCount++
		}
	}
	projects := models.Projects{
		Metadata: models.ProjectsMetadata{LastUpdated: now, TotalRepos: publicCount},
	}
	for _, repo := range rankings.FeaturedRepositories(repos, featuredLimit) {
		logger.WithField("repo", repo.FullName).Info("collecting project detail")
		detail := coll.CollectProjectDetail(ctx, repo)
		project := rankings.FeaturedProjectFrom(repo)
		project.Commits = detail.Commits
		project.PRs = detail.PRs
		project.Contributors = detail.Contributors
		project.Topics = detail.Topics
		projects.FeaturedProjects = append(projects.FeaturedProjects, project)
	}
	if err := store.SaveProjects(projects); err != nil {
		logger.Fatalf("failed to save projects: %v", err)
	}

	rank := rankings.NewProcessor(repos, commits, prs, issues, now).Generate()
	if err := store.SaveRankings(rank); err != nil {
		logger.Fatalf("failed to save rankings: %v", err)
	}

	if _, err := store.UpdateHistory(m, now); err != nil {
		logger.Fatalf("failed to update history: %v", err)
	}

	if rate, err := coll.RateLimit(ctx); err == nil {
		report.RateLimitAfter = rate
	}
	report.FinishedAt = time.Now().UTC()
	if err := store.SaveReport(report); err != nil {
		logger.Fatalf("failed to save report: %v", err)
	}

	failedRepos := make(map[string]bool)
	for _, outcome := range report.Repos {
		if outcome.Status == models.OutcomeFailed {
			failedRepos[outcome.Repo] = true
		}
	}
	logger.WithFields(logrus.Fields{
		"run_id":       report.RunID,
		"failed_repos": len(failedRepos),
		"duration":     report.FinishedAt.Sub(report.StartedAt).String(),
	}).Info("collection finished")

	if len(repos) > 0 && len(failedRepos) >= len(repos) {
		logger.Errorf("collection failed for all %d repositories", len(repos))
		os.Exit(1)
	}
}
