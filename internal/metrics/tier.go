package metrics

import (
	"github.com/DannyahIA/profile-metrics/internal/models"
)

// Tier is a coarse developer-level label derived from a weighted score
// over commits, repositories, streak, and pull requests
type Tier struct {
	Name        string
	Icon        string
	ColorKey    string // theme color key
	Description string
	Score       int
	NextTier    string
	NextScore   int
}

// Tier names, lowest to highest
const (
	TierBeginner     = "Beginner"
	TierIntermediate = "Intermediate"
	TierAdvanced     = "Advanced"
	TierExpert       = "Expert"
	TierElite        = "Elite"
)

// Weighted score components. Commits count double, repos and PRs weigh
// more per item, a live streak rewards consistency.
const (
	commitWeight = 2
	repoWeight   = 5
	streakWeight = 3
	prWeight     = 4
)

// ComputeTier derives the developer tier from aggregated metrics
func ComputeTier(m models.Metrics) Tier {
	score := m.TotalCommits*commitWeight +
		m.TotalRepos*repoWeight +
		m.Streak.Current*streakWeight +
		m.TotalPRs*prWeight

	switch {
	case score >= 1000:
		return Tier{Name: TierElite, Icon: "👑", ColorKey: "purple", Description: "Top 1% developers", Score: score, NextTier: TierElite, NextScore: 1000}
	case score >= 600:
		return Tier{Name: TierExpert, Icon: "💎", ColorKey: "accent", Description: "Highly experienced", Score: score, NextTier: TierElite, NextScore: 1000}
	case score >= 350:
		return Tier{Name: TierAdvanced, Icon: "⚡", ColorKey: "success", Description: "Solid experience", Score: score, NextTier: TierExpert, NextScore: 600}
	case score >= 150:
		return Tier{Name: TierIntermediate, Icon: "🌟", ColorKey: "warning", Description: "Growing developer", Score: score, NextTier: TierAdvanced, NextScore: 350}
	default:
		return Tier{Name: TierBeginner, Icon: "🌱", ColorKey: "success", Description: "Starting journey", Score: score, NextTier: TierIntermediate, NextScore: 150}
	}
}

// Progress returns completion toward the next tier as a 0-100 percentage
func (t Tier) Progress() float64 {
	if t.Name == TierElite {
		return 100
	}
	progress := float64(t.Score) / float64(t.NextScore) * 100
	if progress > 100 {
		progress = 100
	}
	return progress
}
