// Package objectives manages security objectives, including the ones
// created to address a specific risk.
package objectives

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/grc-tools/posture-atlas/pkg/models/domain"
	"github.com/grc-tools/posture-atlas/pkg/store"
)

// riskObjectivePrefix marks the synthetic pseudo-objective id namespace:
// initiatives may point at "risk-<id>" instead of a real objective id. The
// two namespaces coexist by string prefix only.
const riskObjectivePrefix = "risk-"

type Service interface {
	ListObjectives(ctx context.Context, clientID int) ([]domain.Objective, error)
	GetObjective(ctx context.Context, clientID int, id string) (domain.Objective, error)
	CreateObjective(ctx context.Context, o domain.Objective) (domain.Objective, error)

	// CreateFromRisk derives an objective addressing a risk, linking it via
	// RiskID and appending its id to the risk's treatment objectives.
	CreateFromRisk(ctx context.Context, clientID int, riskID string) (domain.Objective, error)

	// ResolveRef resolves an initiative's objective reference: either a
	// plain objective id or a "risk-<id>" pseudo-objective. For the latter
	// a synthetic objective is materialized from the risk record.
	ResolveRef(ctx context.Context, clientID int, ref string) (domain.Objective, error)
}

type service struct {
	objectives store.ObjectiveStore
	risks      store.RiskStore
}

func NewService(objectives store.ObjectiveStore, risks store.RiskStore) Service {
	return &service{objectives: objectives, risks: risks}
}

func (s *service) ListObjectives(ctx context.Context, clientID int) ([]domain.Objective, error) {
	if clientID == 0 {
		return nil, domain.MissingField("client id")
	}
	return s.objectives.ListObjectives(ctx, clientID)
}

func (s *service) GetObjective(ctx context.Context, clientID int, id string) (domain.Objective, error) {
	if clientID == 0 {
		return domain.Objective{}, domain.MissingField("client id")
	}
	return s.objectives.GetObjective(ctx, clientID, id)
}

func (s *service) CreateObjective(ctx context.Context, o domain.Objective) (domain.Objective, error) {
	if o.ClientID == 0 {
		return domain.Objective{}, domain.MissingField("client id")
	}
	if o.Name == "" {
		return domain.Objective{}, domain.MissingField("name")
	}
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if err := s.objectives.CreateObjective(ctx, o); err != nil {
		return domain.Objective{}, err
	}
	return o, nil
}

func (s *service) CreateFromRisk(ctx context.Context, clientID int, riskID string) (domain.Objective, error) {
	risk, err := s.risks.GetRisk(ctx, clientID, riskID)
	if err != nil {
		return domain.Objective{}, err
	}

	objective := domain.Objective{
		ID:            uuid.NewString(),
		ClientID:      clientID,
		Name:          "Address risk: " + risk.Name,
		Priority:      risk.Impact,
		Status:        "planned",
		DueDate:       time.Now().AddDate(0, 3, 0),
		RiskID:        risk.ID,
		RiskTreatment: risk.Treatment.Approach,
	}
	if err := s.objectives.CreateObjective(ctx, objective); err != nil {
		return domain.Objective{}, err
	}

	risk.Treatment.Objectives = append(risk.Treatment.Objectives, objective.ID)
	if err := s.risks.UpdateRisk(ctx, risk); err != nil {
		return domain.Objective{}, err
	}
	return objective, nil
}

func (s *service) ResolveRef(ctx context.Context, clientID int, ref string) (domain.Objective, error) {
	if riskID, ok := strings.CutPrefix(ref, riskObjectivePrefix); ok {
		risk, err := s.risks.GetRisk(ctx, clientID, riskID)
		if err != nil {
			return domain.Objective{}, err
		}
		// Synthetic objective standing in for the risk; never persisted.
		return domain.Objective{
			ID:            ref,
			ClientID:      clientID,
			Name:          "Treat risk: " + risk.Name,
			Priority:      risk.Impact,
			Status:        string(risk.Treatment.Status),
			RiskID:        risk.ID,
			RiskTreatment: risk.Treatment.Approach,
		}, nil
	}
	return s.objectives.GetObjective(ctx, clientID, ref)
}
