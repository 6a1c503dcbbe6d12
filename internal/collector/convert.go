package collector

import (
	"time"

	"github.com/DannyahIA/profile-metrics/internal/models"
	"github.com/google/go-github/v57/github"
)

func convertRepository(r *github.Repository) models.Repository {
	repo := models.Repository{
		Name:        r.GetName(),
		FullName:    r.GetFullName(),
		Private:     r.GetPrivate(),
		Language:    r.Language,
		Stars:       r.GetStargazersCount(),
		Forks:       r.GetForksCount(),
		HTMLURL:     r.GetHTMLURL(),
		CreatedAt:   r.GetCreatedAt().Time.UTC(),
		UpdatedAt:   r.GetUpdatedAt().Time.UTC(),
		Size:        r.GetSize(),
		OpenIssues:  r.GetOpenIssuesCount(),
		Description: r.Description,
	}
	if r.PushedAt != nil {
		pushed := r.PushedAt.Time.UTC()
		repo.PushedAt = &pushed
	}
	return repo
}

func convertPullRequest(repoName string, pr *github.PullRequest) models.PullRequest {
	converted := models.PullRequest{
		Repo:      repoName,
		Number:    pr.GetNumber(),
		Title:     pr.GetTitle(),
		State:     pr.GetState(),
		CreatedAt: pr.GetCreatedAt().Time.UTC(),
		UpdatedAt: pr.GetUpdatedAt().Time.UTC(),
		User:      pr.GetUser().GetLogin(),
	}
	converted.MergedAt = timestampPtr(pr.MergedAt)
	converted.ClosedAt = timestampPtr(pr.ClosedAt)
	return converted
}

func convertIssue(repoName string, issue *github.Issue) models.Issue {
	labels := make([]string, 0, len(issue.Labels))
	for _, label := range issue.Labels {
		labels = append(labels, label.GetName())
	}
	return models.Issue{
		Repo:      repoName,
		Number:    issue.GetNumber(),
		Title:     issue.GetTitle(),
		State:     issue.GetState(),
		CreatedAt: issue.GetCreatedAt().Time.UTC(),
		UpdatedAt: issue.GetUpdatedAt().Time.UTC(),
		ClosedAt:  timestampPtr(issue.ClosedAt),
		Comments:  issue.GetComments(),
		Labels:    labels,
	}
}

func convertProfile(user *github.User) *models.Profile {
	return &models.Profile{
		Login:       user.GetLogin(),
		Name:        user.Name,
		Bio:         user.Bio,
		Company:     user.Company,
		Location:    user.Location,
		Email:       user.Email,
		Blog:        user.Blog,
		Twitter:     user.TwitterUsername,
		Followers:   user.GetFollowers(),
		Following:   user.GetFollowing(),
		PublicRepos: user.GetPublicRepos(),
		PublicGists: user.GetPublicGists(),
		AvatarURL:   user.GetAvatarURL(),
		HTMLURL:     user.GetHTMLURL(),
		CreatedAt:   user.GetCreatedAt().Time.UTC(),
		UpdatedAt:   user.GetUpdatedAt().Time.UTC(),
	}
}

func timestampPtr(ts *github.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.Time.UTC()
	return &t
}
