// Package initiatives manages security initiatives and their milestones.
package initiatives

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/grc-tools/posture-atlas/pkg/models/domain"
	"github.com/grc-tools/posture-atlas/pkg/store"
)

type Service interface {
	ListInitiatives(ctx context.Context, clientID int) ([]domain.Initiative, error)
	GetInitiative(ctx context.Context, clientID int, id string) (domain.Initiative, error)
	CreateInitiative(ctx context.Context, i domain.Initiative) (domain.Initiative, error)

	// SetMilestoneCompleted updates one milestone. When every milestone of
	// the initiative is completed afterwards, the initiative status
	// auto-transitions to completed.
	SetMilestoneCompleted(ctx context.Context, clientID int, initiativeID, milestoneID string, completed bool) (domain.Initiative, error)
}

type service struct {
	initiatives store.InitiativeStore
}

func NewService(initiatives store.InitiativeStore) Service {
	return &service{initiatives: initiatives}
}

func (s *service) ListInitiatives(ctx context.Context, clientID int) ([]domain.Initiative, error) {
	if clientID == 0 {
		return nil, domain.MissingField("client id")
	}
	return s.initiatives.ListInitiatives(ctx, clientID)
}

func (s *service) GetInitiative(ctx context.Context, clientID int, id string) (domain.Initiative, error) {
	if clientID == 0 {
		return domain.Initiative{}, domain.MissingField("client id")
	}
	return s.initiatives.GetInitiative(ctx, clientID, id)
}

func (s *service) CreateInitiative(ctx context.Context, i domain.Initiative) (domain.Initiative, error) {
	if i.ClientID == 0 {
		return domain.Initiative{}, domain.MissingField("client id")
	}
	if i.Name == "" {
		return domain.Initiative{}, domain.MissingField("name")
	}
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	if i.Status == "" {
		i.Status = domain.InitiativePlanned
	}
	if err := s.initiatives.CreateInitiative(ctx, i); err != nil {
		return domain.Initiative{}, err
	}
	return i, nil
}

func (s *service) SetMilestoneCompleted(
	ctx context.Context,
	clientID int,
	initiativeID, milestoneID string,
	completed bool,
) (domain.Initiative, error) {
	initiative, err := s.GetInitiative(ctx, clientID, initiativeID)
	if err != nil {
		return domain.Initiative{}, err
	}

	idx := -1
	for i, m := range initiative.Milestones {
		if m.ID == milestoneID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return domain.Initiative{}, domain.NotFound("milestone", milestoneID)
	}
	initiative.Milestones[idx].Completed = completed

	if initiative.MilestonesComplete() {
		initiative.Status = domain.InitiativeCompleted
		zerolog.Ctx(ctx).Info().
			Str("initiative_id", initiativeID).
			Int("client_id", clientID).
			Msg("all milestones completed, initiative marked completed")
	} else if initiative.Status == domain.InitiativeCompleted {
		// Un-completing a milestone reopens the initiative.
		initiative.Status = domain.InitiativeInProgress
	}

	if err := s.initiatives.UpdateInitiative(ctx, initiative); err != nil {
		return domain.Initiative{}, err
	}
	return initiative, nil
}
