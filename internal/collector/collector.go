package collector

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/DannyahIA/profile-metrics/internal/models"
	"github.com/DannyahIA/profile-metrics/pkg/logger"
	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// Collector wraps the GitHub API client for one user's data. All per-repo
// methods record outcomes into the run report and keep going on errors, so
// a single broken repository never aborts a collection run.
type Collector struct {
	client *github.Client
	login  string
}

// New creates an authenticated collector. When username is empty the
// authenticated user is used.
func New(ctx context.Context, token, username string) (*Collector, error) {
	if token == "" {
		return nil, fmt.Errorf("GitHub token is required")
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)
	client := github.NewClient(tc)

	user, _, err := client.Users.Get(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &Collector{
		client: client,
		login:  user.GetLogin(),
	}, nil
}

// Login returns the resolved GitHub login of the collected user
func (c *Collector) Login() string {
	return c.login
}

// CollectRepositories fetches all repositories visible for the user
func (c *Collector) CollectRepositories(ctx context.Context) ([]models.Repository, error) {
	opt := &github.RepositoryListByUserOptions{
		Type:        "all",
		Sort:        "updated",
		Direction:   "desc",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var repos []models.Repository
	for {
		page, resp, err := c.client.Repositories.ListByUser(ctx, c.login, opt)
		if err != nil {
			return nil, fmt.Errorf("failed to list repositories: %w", err)
		}
		for _, r := range page {
			repos = append(repos, convertRepository(r))
		}
		if resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}

	return repos, nil
}

// CollectCommits fetches the user's commits in each repository within the
// given window. Commit stats require one extra API call per commit; a
// failed stats fetch leaves zeros and marks the repository partial.
func (c *Collector) CollectCommits(ctx context.Context, repos []models.Repository, since, until time.Time, report *models.CollectionReport) []models.Commit {
	var commits []models.Commit

	for _, repo := range repos {
		owner, name := splitFullName(repo.FullName)
		opt := &github.CommitsListOptions{
			Author:      c.login,
			Since:       since,
			Until:       until,
			ListOptions: github.ListOptions{PerPage: 100},
		}

		partial := false
		failed := false
		for {
			page, resp, err := c.client.Repositories.ListCommits(ctx, owner, name, opt)
			if err != nil {
				logger.WithError(err).Warnf("skipping commits for %s", repo.FullName)
				report.Record(repo.Name, models.OutcomeFailed, fmt.Sprintf("list commits: %v", err))
				failed = true
				break
			}
			for _, rc := range page {
				commit := models.Commit{
					Repo:    repo.Name,
					SHA:     rc.GetSHA(),
					Message: rc.GetCommit().GetMessage(),
					Date:    rc.GetCommit().GetAuthor().GetDate().Time.UTC(),
				}
				// Stats are not included in list responses
				detail, _, err := c.client.Repositories.GetCommit(ctx, owner, name, rc.GetSHA(), nil)
				if err != nil {
					partial = true
				} else if stats := detail.GetStats(); stats != nil {
					commit.Additions = stats.GetAdditions()
					commit.Deletions = stats.GetDeletions()
					commit.TotalChanges = stats.GetTotal()
				}
				commits = append(commits, commit)
			}
			if resp.NextPage == 0 {
				break
			}
			opt.Page = resp.NextPage
		}

		if failed {
			continue
		}
		if partial {
			report.Record(repo.Name, models.OutcomePartial, "commit stats unavailable for some commits")
		} else {
			report.Record(repo.Name, models.OutcomeSuccess, "")
		}
	}

	return commits
}

// CollectPullRequests fetches all pull requests updated since the given
// time across the user's repositories
func (c *Collector) CollectPullRequests(ctx context.Context, repos []models.Repository, since time.Time, report *models.CollectionReport) []models.PullRequest {
	var prs []models.PullRequest

	for _, repo := range repos {
		owner, name := splitFullName(repo.FullName)
		opt := &github.PullRequestListOptions{
			State:       "all",
			Sort:        "updated",
			Direction:   "desc",
			ListOptions: github.ListOptions{PerPage: 100},
		}

		done := false
		for !done {
			page, resp, err := c.client.PullRequests.List(ctx, owner, name, opt)
			if err != nil {
				logger.WithError(err).Warnf("skipping pull requests for %s", repo.FullName)
				report.Record(repo.Name, models.OutcomeFailed, fmt.Sprintf("list pull requests: %v", err))
				break
			}
			for _, pr := range page {
				if pr.GetUpdatedAt().Time.Before(since) {
					done = true
					break
				}
				converted := convertPullRequest(repo.Name, pr)
				// List responses omit additions/deletions/changed_files
				detail, _, err := c.client.PullRequests.Get(ctx, owner, name, pr.GetNumber())
				if err == nil {
					converted.Additions = detail.GetAdditions()
					converted.Deletions = detail.GetDeletions()
					converted.ChangedFiles = detail.GetChangedFiles()
					converted.Comments = detail.GetComments()
				}
				prs = append(prs, converted)
			}
			if resp.NextPage == 0 {
				break
			}
			opt.Page = resp.NextPage
		}
	}

	return prs
}

// CollectIssues fetches issues updated since the given time, excluding
// items that are actually pull requests
func (c *Collector) CollectIssues(ctx context.Context, repos []models.Repository, since time.Time, report *models.CollectionReport) []models.Issue {
	var issues []models.Issue

	for _, repo := range repos {
		owner, name := splitFullName(repo.FullName)
		opt := &github.IssueListByRepoOptions{
			State:       "all",
			Since:       since,
			ListOptions: github.ListOptions{PerPage: 100},
		}

		for {
			page, resp, err := c.client.Issues.ListByRepo(ctx, owner, name, opt)
			if err != nil {
				logger.WithError(err).Warnf("skipping issues for %s", repo.FullName)
				report.Record(repo.Name, models.OutcomeFailed, fmt.Sprintf("list issues: %v", err))
				break
			}
			for _, issue := range page {
				if issue.IsPullRequest() {
					continue
				}
				issues = append(issues, convertIssue(repo.Name, issue))
			}
			if resp.NextPage == 0 {
				break
			}
			opt.Page = resp.NextPage
		}
	}

	return issues
}

// CollectProfile fetches the user's profile information
func (c *Collector) CollectProfile(ctx context.Context) (*models.Profile, error) {
	user, _, err := c.client.Users.Get(ctx, c.login)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return convertProfile(user), nil
}

// CollectStarred fetches up to limit starred repositories
func (c *Collector) CollectStarred(ctx context.Context, limit int) ([]models.StarredRepo, error) {
	opt := &github.ActivityListStarredOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var starred []models.StarredRepo
	for {
		page, resp, err := c.client.Activity.ListStarred(ctx, c.login, opt)
		if err != nil {
			return starred, fmt.Errorf("failed to list starred repos: %w", err)
		}
		for _, sr := range page {
			repo := sr.GetRepository()
			starred = append(starred, models.StarredRepo{
				Name:        repo.GetName(),
				FullName:    repo.GetFullName(),
				Description: repo.Description,
				Language:    repo.Language,
				Stars:       repo.GetStargazersCount(),
				HTMLURL:     repo.GetHTMLURL(),
			})
			if len(starred) >= limit {
				return starred, nil
			}
		}
		if resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}

	return starred, nil
}

// CollectLanguages aggregates language usage over all repositories, both
// as repository counts and as total bytes. Repositories whose language
// breakdown cannot be fetched fall back to their primary language with
// size-based bytes.
func (c *Collector) CollectLanguages(ctx context.Context, repos []models.Repository) (map[string]int, map[string]int64) {
	counts := make(map[string]int)
	bytes := make(map[string]int64)

	for _, repo := range repos {
		owner, name := splitFullName(repo.FullName)
		langs, _, err := c.client.Repositories.ListLanguages(ctx, owner, name)
		if err != nil {
			logger.WithError(err).Debugf("language breakdown unavailable for %s", repo.FullName)
			if repo.Language != nil {
				counts[*repo.Language]++
				bytes[*repo.Language] += int64(repo.Size) * 1024
			}
			continue
		}
		for lang, b := range langs {
			counts[lang]++
			bytes[lang] += int64(b)
		}
	}

	return counts, bytes
}

// CollectContributors counts unique contributor logins over at most the
// first maxRepos repositories, to stay inside the rate limit
func (c *Collector) CollectContributors(ctx context.Context, repos []models.Repository, maxRepos int) int {
	seen := make(map[string]bool)

	for i, repo := range repos {
		if i >= maxRepos {
			break
		}
		owner, name := splitFullName(repo.FullName)
		opt := &github.ListContributorsOptions{
			ListOptions: github.ListOptions{PerPage: 100},
		}
		contributors, _, err := c.client.Repositories.ListContributors(ctx, owner, name, opt)
		if err != nil {
			continue
		}
		for _, contrib := range contributors {
			seen[contrib.GetLogin()] = true
		}
	}

	if len(seen) == 0 {
		return 1
	}
	return len(seen)
}

// ProjectDetail holds the extra per-repository counts used for the
// featured projects file
type ProjectDetail struct {
	Commits      int
	PRs          int
	Contributors int
	Topics       []string
}

// CollectProjectDetail fetches detail counts for one featured repository.
// Each count degrades independently; an error leaves its zero value.
func (c *Collector) CollectProjectDetail(ctx context.Context, repo models.Repository) ProjectDetail {
	owner, name := splitFullName(repo.FullName)
	detail := ProjectDetail{Contributors: 1}

	commitOpt := &github.CommitsListOptions{
		Author:      c.login,
		ListOptions: github.ListOptions{PerPage: 100},
	}
	for {
		page, resp, err := c.client.Repositories.ListCommits(ctx, owner, name, commitOpt)
		if err != nil {
			break
		}
		detail.Commits += len(page)
		if resp.NextPage == 0 {
			break
		}
		commitOpt.Page = resp.NextPage
	}

	prOpt := &github.PullRequestListOptions{
		State:       "all",
		ListOptions: github.ListOptions{PerPage: 100},
	}
	for {
		page, resp, err := c.client.PullRequests.List(ctx, owner, name, prOpt)
		if err != nil {
			break
		}
		for _, pr := range page {
			if pr.GetUser().GetLogin() == c.login {
				detail.PRs++
			}
		}
		if resp.NextPage == 0 {
			break
		}
		prOpt.Page = resp.NextPage
	}

	contributors, _, err := c.client.Repositories.ListContributors(ctx, owner, name, &github.ListContributorsOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	})
	if err == nil && len(contributors) > 0 {
		detail.Contributors = len(contributors)
	}

	topics, _, err := c.client.Repositories.ListAllTopics(ctx, owner, name)
	if err == nil {
		detail.Topics = topics
	}

	return detail
}

// RateLimit fetches the current core API rate limit status
func (c *Collector) RateLimit(ctx context.Context) (*models.RateLimit, error) {
	limits, _, err := c.client.RateLimit.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get rate limit: %w", err)
	}
	core := limits.GetCore()
	if core == nil {
		return nil, fmt.Errorf("rate limit response missing core limits")
	}
	return &models.RateLimit{
		Remaining: core.Remaining,
		Limit:     core.Limit,
		Reset:     core.Reset.Time.UTC(),
	}, nil
}

func splitFullName(fullName string) (owner, name string) {
	owner, name, ok := strings.Cut(fullName, "/")
	if !ok {
		return fullName, fullName
	}
	return owner, name
}
