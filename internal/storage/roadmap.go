package storage

import "github.com/DannyahIA/profile-metrics/internal/models"

// DefaultRoadmap is the roadmap used when no roadmap.json exists, so the
// goals and learning charts always have something to draw
func DefaultRoadmap() models.Roadmap {
	return models.Roadmap{
		Tracks: []models.Track{
			{
				Name:  "Frontend Development",
				Icon:  "🎨",
				Color: "#61dafb",
				Skills: []models.Skill{
					{Name: "HTML/CSS", Level: 80, Target: 90},
					{Name: "JavaScript", Level: 70, Target: 85},
					{Name: "React", Level: 60, Target: 80},
					{Name: "TypeScript", Level: 50, Target: 75},
				},
			},
			{
				Name:  "Backend Development",
				Icon:  "⚙️",
				Color: "#3572A5",
				Skills: []models.Skill{
					{Name: "Python", Level: 75, Target: 90},
					{Name: "Node.js", Level: 55, Target: 75},
					{Name: "Databases", Level: 60, Target: 80},
					{Name: "APIs", Level: 70, Target: 85},
				},
			},
			{
				Name:  "DevOps & Tools",
				Icon:  "🚀",
				Color: "#2088FF",
				Skills: []models.Skill{
					{Name: "Git/GitHub", Level: 80, Target: 90},
					{Name: "Docker", Level: 40, Target: 70},
					{Name: "CI/CD", Level: 50, Target: 75},
					{Name: "Linux", Level: 65, Target: 80},
				},
			},
		},
		Goals: []models.Goal{
			{Title: "Master React Ecosystem", Progress: 65, Deadline: "2026-06-30", Priority: "high"},
			{Title: "Build 5 Full-Stack Projects", Progress: 40, Deadline: "2026-12-31", Priority: "medium"},
			{Title: "Contribute to Open Source", Progress: 30, Deadline: "2026-08-31", Priority: "high"},
		},
	}
}
