package adapters

import (
	"github.com/grc-tools/posture-atlas/pkg/models/api"
	"github.com/grc-tools/posture-atlas/pkg/models/domain"
)

func MapObjectiveDomainToApi(o domain.Objective) api.Objective {
	return api.Objective{
		ID:       o.ID,
		ClientID: o.ClientID,
		Name:     o.Name,
		Priority: string(o.Priority),
		Status:   o.Status,
		DueDate:  o.DueDate,
		Progress: o.Progress,
		Metrics: api.ObjectiveMetrics{
			SuccessCriteria: o.Metrics.SuccessCriteria,
			CurrentMetrics:  o.Metrics.CurrentMetrics,
		},
		RiskID:        o.RiskID,
		RiskTreatment: o.RiskTreatment,
	}
}

func MapObjectiveApiToDomain(o api.Objective) domain.Objective {
	return domain.Objective{
		ID:       o.ID,
		ClientID: o.ClientID,
		Name:     o.Name,
		Priority: domain.Level(o.Priority),
		Status:   o.Status,
		DueDate:  o.DueDate,
		Progress: o.Progress,
		Metrics: domain.ObjectiveMetrics{
			SuccessCriteria: o.Metrics.SuccessCriteria,
			CurrentMetrics:  o.Metrics.CurrentMetrics,
		},
		RiskID:        o.RiskID,
		RiskTreatment: o.RiskTreatment,
	}
}

func MapInitiativeDomainToApi(i domain.Initiative) api.Initiative {
	milestones := make([]api.Milestone, 0, len(i.Milestones))
	for _, m := range i.Milestones {
		milestones = append(milestones, api.Milestone{
			ID:        m.ID,
			Name:      m.Name,
			Completed: m.Completed,
			DueDate:   m.DueDate,
		})
	}
	return api.Initiative{
		ID:          i.ID,
		ClientID:    i.ClientID,
		Name:        i.Name,
		Phase:       i.Phase,
		Timeline:    i.Timeline,
		Status:      string(i.Status),
		ObjectiveID: i.ObjectiveID,
		Milestones:  milestones,
		Resources: api.InitiativeResources{
			Team:   i.Resources.Team,
			Budget: i.Resources.Budget,
			Tools:  i.Resources.Tools,
		},
	}
}

func MapInitiativeApiToDomain(i api.Initiative) domain.Initiative {
	milestones := make([]domain.Milestone, 0, len(i.Milestones))
	for _, m := range i.Milestones {
		milestones = append(milestones, domain.Milestone{
			ID:        m.ID,
			Name:      m.Name,
			Completed: m.Completed,
			DueDate:   m.DueDate,
		})
	}
	return domain.Initiative{
		ID:          i.ID,
		ClientID:    i.ClientID,
		Name:        i.Name,
		Phase:       i.Phase,
		Timeline:    i.Timeline,
		Status:      domain.InitiativeStatus(i.Status),
		ObjectiveID: i.ObjectiveID,
		Milestones:  milestones,
		Resources: domain.InitiativeResources{
			Team:   i.Resources.Team,
			Budget: i.Resources.Budget,
			Tools:  i.Resources.Tools,
		},
	}
}
