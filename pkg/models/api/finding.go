package api

import "time"

type Finding struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Severity       string    `json:"severity"`
	Status         string    `json:"status"`
	Category       string    `json:"category,omitempty"`
	SourceType     string    `json:"source_type"`
	SourceDetails  string    `json:"source_details,omitempty"`
	Tags           []string  `json:"tags,omitempty"`
	CreatedDate    time.Time `json:"created_date"`
	AssessmentID   string    `json:"assessment_id,omitempty"`
	PromotedToRisk bool      `json:"promoted_to_risk"`
	RiskID         string    `json:"risk_id,omitempty"`
}

type FindingMetrics struct {
	Total          int            `json:"total"`
	BySeverity     map[string]int `json:"by_severity"`
	ByStatus       map[string]int `json:"by_status"`
	BySource       map[string]int `json:"by_source"`
	PromotedToRisk int            `json:"promoted_to_risk"`
}
