package api

import "time"

type ObjectiveMetrics struct {
	SuccessCriteria []string `json:"success_criteria,omitempty"`
	CurrentMetrics  []string `json:"current_metrics,omitempty"`
}

type Objective struct {
	ID            string           `json:"id"`
	ClientID      int              `json:"client_id"`
	Name          string           `json:"name"`
	Priority      string           `json:"priority"`
	Status        string           `json:"status"`
	DueDate       time.Time        `json:"due_date"`
	Progress      int              `json:"progress"`
	Metrics       ObjectiveMetrics `json:"metrics"`
	RiskID        string           `json:"risk_id,omitempty"`
	RiskTreatment string           `json:"risk_treatment,omitempty"`
}

type Milestone struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Completed bool      `json:"completed"`
	DueDate   time.Time `json:"due_date"`
}

type InitiativeResources struct {
	Team   []string `json:"team,omitempty"`
	Budget string   `json:"budget,omitempty"`
	Tools  []string `json:"tools,omitempty"`
}

type Initiative struct {
	ID          string              `json:"id"`
	ClientID    int                 `json:"client_id"`
	Name        string              `json:"name"`
	Phase       string              `json:"phase"`
	Timeline    string              `json:"timeline,omitempty"`
	Status      string              `json:"status"`
	ObjectiveID string              `json:"objective_id"`
	Milestones  []Milestone         `json:"milestones"`
	Resources   InitiativeResources `json:"resources"`
}
