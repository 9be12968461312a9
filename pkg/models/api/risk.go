package api

import "time"

type SourceFinding struct {
	FindingID  string    `json:"finding_id"`
	Title      string    `json:"title"`
	SourceType string    `json:"source_type"`
	Date       time.Time `json:"date"`
}

type BusinessImpact struct {
	Financial    string `json:"financial,omitempty"`
	Operational  string `json:"operational,omitempty"`
	Reputational string `json:"reputational,omitempty"`
	Compliance   string `json:"compliance,omitempty"`
}

type Treatment struct {
	Approach   string   `json:"approach,omitempty"`
	Plan       string   `json:"plan,omitempty"`
	Status     string   `json:"status"`
	Objectives []string `json:"objectives,omitempty"`
}

type Risk struct {
	ID             string          `json:"id"`
	ClientID       int             `json:"client_id"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	Impact         string          `json:"impact"`
	Likelihood     string          `json:"likelihood"`
	Status         string          `json:"status"`
	Category       string          `json:"category,omitempty"`
	LastAssessed   time.Time       `json:"last_assessed"`
	SourceFindings []SourceFinding `json:"source_findings,omitempty"`
	BusinessImpact BusinessImpact  `json:"business_impact"`
	Treatment      Treatment       `json:"treatment"`
}

type RiskSourceAnalysis struct {
	FromFindings       int            `json:"from_findings"`
	ManuallyIdentified int            `json:"manually_identified"`
	BySourceType       map[string]int `json:"by_source_type"`
}

type RiskStats struct {
	Total          int                `json:"total"`
	ByImpact       map[string]int     `json:"by_impact"`
	ByLikelihood   map[string]int     `json:"by_likelihood"`
	ByStatus       map[string]int     `json:"by_status"`
	ByTreatment    map[string]int     `json:"by_treatment"`
	SourceAnalysis RiskSourceAnalysis `json:"source_analysis"`
}
