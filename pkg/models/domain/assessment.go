package domain

import "time"

type AssessmentStatus string

const (
	AssessmentCompleted  AssessmentStatus = "completed"
	AssessmentInProgress AssessmentStatus = "in_progress"
	AssessmentScheduled  AssessmentStatus = "scheduled"
)

// Assessment is a scored evaluation of a client's posture. GeneratedFindings
// is always an ordered slice here; the array-or-object ambiguity of upstream
// payloads is resolved once, at the decode boundary (api.FindingCollection).
type Assessment struct {
	ID                string
	ClientID          int
	Date              time.Time
	Type              string
	Status            AssessmentStatus
	Category          string
	Score             int
	Answers           map[string]string
	GeneratedFindings []Finding
}
