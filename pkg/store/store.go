// Package store defines the client-scoped repositories the aggregation
// services read from. Implementations are injected at wiring time: the
// in-memory store backs tests and mock mode, the postgres store backs
// durable deployments.
package store

import (
	"context"

	"github.com/grc-tools/posture-atlas/pkg/models/domain"
)

type AssessmentStore interface {
	ListAssessments(ctx context.Context, clientID int) ([]domain.Assessment, error)
	GetAssessment(ctx context.Context, clientID int, id string) (domain.Assessment, error)
	CreateAssessment(ctx context.Context, a domain.Assessment) error
	UpdateAssessment(ctx context.Context, a domain.Assessment) error
	DeleteAssessment(ctx context.Context, clientID int, id string) error
}

type RiskStore interface {
	ListRisks(ctx context.Context, clientID int) ([]domain.Risk, error)
	GetRisk(ctx context.Context, clientID int, id string) (domain.Risk, error)
	CreateRisk(ctx context.Context, r domain.Risk) error
	UpdateRisk(ctx context.Context, r domain.Risk) error
	DeleteRisk(ctx context.Context, clientID int, id string) error
}

type ObjectiveStore interface {
	ListObjectives(ctx context.Context, clientID int) ([]domain.Objective, error)
	GetObjective(ctx context.Context, clientID int, id string) (domain.Objective, error)
	CreateObjective(ctx context.Context, o domain.Objective) error
	UpdateObjective(ctx context.Context, o domain.Objective) error
	DeleteObjective(ctx context.Context, clientID int, id string) error
}

type InitiativeStore interface {
	ListInitiatives(ctx context.Context, clientID int) ([]domain.Initiative, error)
	GetInitiative(ctx context.Context, clientID int, id string) (domain.Initiative, error)
	CreateInitiative(ctx context.Context, i domain.Initiative) error
	UpdateInitiative(ctx context.Context, i domain.Initiative) error
	DeleteInitiative(ctx context.Context, clientID int, id string) error
}
