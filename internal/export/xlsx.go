package export

import (
	"fmt"

	"github.com/DannyahIA/profile-metrics/internal/models"
	"github.com/xuri/excelize/v2"
)

// WorkbookName is the file written into the assets directory
const WorkbookName = "profile-metrics.xlsx"

// Exporter writes collected metrics and rankings into a spreadsheet for
// offline analysis
type Exporter struct {
	metrics  models.Metrics
	rankings models.Rankings
}

// NewExporter creates an exporter over one run's aggregates
func NewExporter(m models.Metrics, r models.Rankings) *Exporter {
	return &Exporter{metrics: m, rankings: r}
}

// WriteFile builds the workbook and saves it at the given path
func (e *Exporter) WriteFile(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := e.writeOverview(f, headerStyle); err != nil {
		return err
	}
	if err := e.writeLanguages(f, headerStyle); err != nil {
		return err
	}
	if err := e.writeRankings(f, headerStyle); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func (e *Exporter) writeOverview(f *excelize.File, headerStyle int) error {
	const sheet = "Overview"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to rename overview sheet: %w", err)
	}

	m := e.metrics
	rows := []struct {
		label string
		value interface{}
	}{
		{"Username", m.Username},
		{"Name", m.Name},
		{"Total Commits", m.TotalCommits},
		{"Total Repositories", m.TotalRepos},
		{"Total Pull Requests", m.TotalPRs},
		{"Total Issues", m.TotalIssues},
		{"Total Stars", m.TotalStars},
		{"Total Forks", m.TotalForks},
		{"Contributors", m.Contributors},
		{"Current Streak (days)", m.Streak.Current},
		{"Longest Streak (days)", m.Streak.Longest},
		{"Average Commits per Active Day", m.DailyStats.AverageCommits},
		{"Active Days", m.DailyStats.TotalDaysActive},
		{"Last Updated", m.LastUpdated.UTC().Format("2006-01-02 15:04:05")},
	}

	for i, row := range rows {
		labelCell := fmt.Sprintf("A%d", i+1)
		if err := f.SetCellValue(sheet, labelCell, row.label); err != nil {
			return fmt.Errorf("failed to write overview: %w", err)
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", i+1), row.value); err != nil {
			return fmt.Errorf("failed to write overview: %w", err)
		}
		if err := f.SetCellStyle(sheet, labelCell, labelCell, headerStyle); err != nil {
			return fmt.Errorf("failed to style overview: %w", err)
		}
	}

	if err := f.SetColWidth(sheet, "A", "A", 30); err != nil {
		return fmt.Errorf("failed to size overview columns: %w", err)
	}
	return f.SetColWidth(sheet, "B", "B", 24)
}

func (e *Exporter) writeLanguages(f *excelize.File, headerStyle int) error {
	const sheet = "Languages"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create languages sheet: %w", err)
	}

	totalRepos := 0
	for _, lang := range e.metrics.TopLanguages {
		totalRepos += lang.Count
	}

	headers := []string{"Language", "Repositories", "Bytes", "Share"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to locate language header: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("failed to write language header: %w", err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("failed to style language header: %w", err)
		}
	}

	for i, lang := range e.metrics.TopLanguages {
		row := i + 2
		share := 0.0
		if totalRepos > 0 {
			share = float64(lang.Count) / float64(totalRepos)
		}
		values := []interface{}{lang.Name, lang.Count, lang.Bytes, fmt.Sprintf("%.1f%%", share*100)}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return fmt.Errorf("failed to locate language cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to write language row: %w", err)
			}
		}
	}

	return f.SetColWidth(sheet, "A", "D", 16)
}

func (e *Exporter) writeRankings(f *excelize.File, headerStyle int) error {
	const sheet = "Rankings"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create rankings sheet: %w", err)
	}

	row := 1
	writeHeader := func(cells ...string) error {
		for col, value := range cells {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
			if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
				return err
			}
		}
		row++
		return nil
	}
	writeRow := func(cells ...interface{}) error {
		for col, value := range cells {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
		row++
		return nil
	}

	if err := writeHeader("Top Projects by Activity"); err != nil {
		return fmt.Errorf("failed to write rankings: %w", err)
	}
	if err := writeHeader("Name", "Language", "Score", "Commits", "PRs", "Issues", "Stars"); err != nil {
		return fmt.Errorf("failed to write rankings: %w", err)
	}
	for _, p := range e.rankings.TopProjects {
		if err := writeRow(p.Name, p.Language, p.Score, p.Breakdown.Commits, p.Breakdown.PRs, p.Breakdown.Issues, p.Stars); err != nil {
			return fmt.Errorf("failed to write rankings: %w", err)
		}
	}
	row++

	if err := writeHeader("Most Starred"); err != nil {
		return fmt.Errorf("failed to write rankings: %w", err)
	}
	if err := writeHeader("Name", "Language", "Stars", "Forks"); err != nil {
		return fmt.Errorf("failed to write rankings: %w", err)
	}
	for _, p := range e.rankings.MostStars {
		if err := writeRow(p.Name, p.Language, p.Stars, p.Forks); err != nil {
			return fmt.Errorf("failed to write rankings: %w", err)
		}
	}
	row++

	if err := writeHeader("Most Recently Pushed"); err != nil {
		return fmt.Errorf("failed to write rankings: %w", err)
	}
	if err := writeHeader("Name", "Language", "Last Push", "Days Ago"); err != nil {
		return fmt.Errorf("failed to write rankings: %w", err)
	}
	for _, p := range e.rankings.MostRecent {
		if err := writeRow(p.Name, p.Language, p.LastPush.UTC().Format("2006-01-02"), p.DaysAgo); err != nil {
			return fmt.Errorf("failed to write rankings: %w", err)
		}
	}

	return f.SetColWidth(sheet, "A", "G", 18)
}
