package domain

import "time"

// Level is the 3-tier impact/likelihood rating used on risk records.
type Level string

const (
	LevelHigh   Level = "high"
	LevelMedium Level = "medium"
	LevelLow    Level = "low"
)

func AllLevels() []Level {
	return []Level{LevelHigh, LevelMedium, LevelLow}
}

type RiskStatus string

const (
	RiskActive      RiskStatus = "active"
	RiskMitigated   RiskStatus = "mitigated"
	RiskAccepted    RiskStatus = "accepted"
	RiskTransferred RiskStatus = "transferred"
)

func AllRiskStatuses() []RiskStatus {
	return []RiskStatus{RiskActive, RiskMitigated, RiskAccepted, RiskTransferred}
}

type TreatmentStatus string

const (
	TreatmentNotStarted TreatmentStatus = "not_started"
	TreatmentInProgress TreatmentStatus = "in_progress"
	TreatmentCompleted  TreatmentStatus = "completed"
	TreatmentBlocked    TreatmentStatus = "blocked"
)

func AllTreatmentStatuses() []TreatmentStatus {
	return []TreatmentStatus{TreatmentNotStarted, TreatmentInProgress, TreatmentCompleted, TreatmentBlocked}
}

// SourceFinding is a point-in-time copy of the finding a risk was promoted
// from. The original finding may change status independently afterwards;
// entries here are not kept in sync.
type SourceFinding struct {
	FindingID  string     `json:"finding_id"`
	Title      string     `json:"title"`
	SourceType SourceType `json:"source_type"`
	Date       time.Time  `json:"date"`
}

type BusinessImpact struct {
	Financial    string `json:"financial"`
	Operational  string `json:"operational"`
	Reputational string `json:"reputational"`
	Compliance   string `json:"compliance"`
}

type Treatment struct {
	Approach   string          `json:"approach"`
	Plan       string          `json:"plan"`
	Status     TreatmentStatus `json:"status"`
	Objectives []string        `json:"objectives"`
}

type Risk struct {
	ID             string
	ClientID       int
	Name           string
	Description    string
	Impact         Level
	Likelihood     Level
	Status         RiskStatus
	Category       string
	LastAssessed   time.Time
	SourceFindings []SourceFinding
	BusinessImpact BusinessImpact
	Treatment      Treatment
}

// FromFindings reports whether the risk was promoted from at least one finding.
func (r Risk) FromFindings() bool {
	return len(r.SourceFindings) > 0
}

// RiskSourceAnalysis splits a client's risks by provenance.
type RiskSourceAnalysis struct {
	FromFindings       int
	ManuallyIdentified int
	BySourceType       map[SourceType]int
}

// RiskStats is a zero-filled tally over a client's risks.
type RiskStats struct {
	Total          int
	ByImpact       map[Level]int
	ByLikelihood   map[Level]int
	ByStatus       map[RiskStatus]int
	ByTreatment    map[TreatmentStatus]int
	SourceAnalysis RiskSourceAnalysis
}
