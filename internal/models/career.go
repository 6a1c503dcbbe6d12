package models

// EntryTypeWork and EntryTypeEducation classify career entries
const (
	EntryTypeWork      = "work"
	EntryTypeEducation = "education"
)

// PresentSentinel marks an ongoing position's end date
const PresentSentinel = "present"

// CareerEntry is one position or study period. Dates are YYYY-MM; the end
// date may be "present". Loaded once from career.json, never mutated.
type CareerEntry struct {
	Type         string   `json:"type"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	DateStart    string   `json:"date_start"`
	DateEnd      string   `json:"date_end"`
	Technologies []string `json:"technologies"`
	Description  string   `json:"description"`
	ShowDuration bool     `json:"show_duration,omitempty"`
}

// Certification is one certification shown in the timeline footer
type Certification struct {
	Name string `json:"name"`
	Date string `json:"date"` // YYYY-MM
	Show bool   `json:"show"`
}

// CareerMeta holds the privacy settings for timeline rendering
type CareerMeta struct {
	ShowDates    string `json:"show_dates"` // month_year | year_only | hidden
	ShowDuration bool   `json:"show_duration"`
}

// Career is the static career configuration file
type Career struct {
	ProfessionalTimeline []CareerEntry   `json:"professional_timeline"`
	Certifications       []Certification `json:"certifications"`
	Meta                 CareerMeta      `json:"meta"`
}
