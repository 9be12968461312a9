package domain

import "time"

type InitiativeStatus string

const (
	InitiativePlanned    InitiativeStatus = "planned"
	InitiativeInProgress InitiativeStatus = "in_progress"
	InitiativeCompleted  InitiativeStatus = "completed"
	InitiativeOnHold     InitiativeStatus = "on_hold"
)

type Milestone struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Completed bool      `json:"completed"`
	DueDate   time.Time `json:"due_date"`
}

type InitiativeResources struct {
	Team   []string `json:"team"`
	Budget string   `json:"budget"`
	Tools  []string `json:"tools"`
}

// Initiative is a planned body of work implementing an objective.
// ObjectiveID is either a plain objective id or a synthetic "risk-<id>"
// pseudo-objective id; the two namespaces coexist by string prefix.
type Initiative struct {
	ID          string
	ClientID    int
	Name        string
	Phase       string
	Timeline    string
	Status      InitiativeStatus
	ObjectiveID string
	Milestones  []Milestone
	Resources   InitiativeResources
}

// MilestonesComplete reports whether every milestone is done. Initiatives
// with no milestones are never considered complete this way.
func (i Initiative) MilestonesComplete() bool {
	if len(i.Milestones) == 0 {
		return false
	}
	for _, m := range i.Milestones {
		if !m.Completed {
			return false
		}
	}
	return true
}
