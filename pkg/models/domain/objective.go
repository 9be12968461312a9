package domain

import "time"

type ObjectiveMetrics struct {
	SuccessCriteria []string `json:"success_criteria"`
	CurrentMetrics  []string `json:"current_metrics"`
}

// Objective is a security goal, optionally created to address a specific
// risk (RiskID set, RiskTreatment describing the treatment approach).
type Objective struct {
	ID            string
	ClientID      int
	Name          string
	Priority      Level
	Status        string
	DueDate       time.Time
	Progress      int // 0-100
	Metrics       ObjectiveMetrics
	RiskID        string
	RiskTreatment string
}
