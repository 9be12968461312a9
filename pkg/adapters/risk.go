package adapters

import (
	"github.com/grc-tools/posture-atlas/pkg/models/api"
	"github.com/grc-tools/posture-atlas/pkg/models/domain"
)

func MapRiskDomainToApi(r domain.Risk) api.Risk {
	res := api.Risk{
		ID:           r.ID,
		ClientID:     r.ClientID,
		Name:         r.Name,
		Description:  r.Description,
		Impact:       string(r.Impact),
		Likelihood:   string(r.Likelihood),
		Status:       string(r.Status),
		Category:     r.Category,
		LastAssessed: r.LastAssessed,
		BusinessImpact: api.BusinessImpact{
			Financial:    r.BusinessImpact.Financial,
			Operational:  r.BusinessImpact.Operational,
			Reputational: r.BusinessImpact.Reputational,
			Compliance:   r.BusinessImpact.Compliance,
		},
		Treatment: api.Treatment{
			Approach:   r.Treatment.Approach,
			Plan:       r.Treatment.Plan,
			Status:     string(r.Treatment.Status),
			Objectives: r.Treatment.Objectives,
		},
	}
	for _, sf := range r.SourceFindings {
		res.SourceFindings = append(res.SourceFindings, api.SourceFinding{
			FindingID:  sf.FindingID,
			Title:      sf.Title,
			SourceType: string(sf.SourceType),
			Date:       sf.Date,
		})
	}
	return res
}

func MapRisksDomainToApi(risks []domain.Risk) []api.Risk {
	res := make([]api.Risk, 0, len(risks))
	for _, r := range risks {
		res = append(res, MapRiskDomainToApi(r))
	}
	return res
}

func MapRiskApiToDomain(r api.Risk) domain.Risk {
	res := domain.Risk{
		ID:           r.ID,
		ClientID:     r.ClientID,
		Name:         r.Name,
		Description:  r.Description,
		Impact:       domain.Level(r.Impact),
		Likelihood:   domain.Level(r.Likelihood),
		Status:       domain.RiskStatus(r.Status),
		Category:     r.Category,
		LastAssessed: r.LastAssessed,
		BusinessImpact: domain.BusinessImpact{
			Financial:    r.BusinessImpact.Financial,
			Operational:  r.BusinessImpact.Operational,
			Reputational: r.BusinessImpact.Reputational,
			Compliance:   r.BusinessImpact.Compliance,
		},
		Treatment: domain.Treatment{
			Approach:   r.Treatment.Approach,
			Plan:       r.Treatment.Plan,
			Status:     domain.TreatmentStatus(r.Treatment.Status),
			Objectives: r.Treatment.Objectives,
		},
	}
	for _, sf := range r.SourceFindings {
		res.SourceFindings = append(res.SourceFindings, domain.SourceFinding{
			FindingID:  sf.FindingID,
			Title:      sf.Title,
			SourceType: domain.SourceType(sf.SourceType),
			Date:       sf.Date,
		})
	}
	return res
}

func MapRiskStatsDomainToApi(s domain.RiskStats) api.RiskStats {
	res := api.RiskStats{
		Total:        s.Total,
		ByImpact:     make(map[string]int, len(s.ByImpact)),
		ByLikelihood: make(map[string]int, len(s.ByLikelihood)),
		ByStatus:     make(map[string]int, len(s.ByStatus)),
		ByTreatment:  make(map[string]int, len(s.ByTreatment)),
		SourceAnalysis: api.RiskSourceAnalysis{
			FromFindings:       s.SourceAnalysis.FromFindings,
			ManuallyIdentified: s.SourceAnalysis.ManuallyIdentified,
			BySourceType:       make(map[string]int, len(s.SourceAnalysis.BySourceType)),
		},
	}
	for k, v := range s.ByImpact {
		res.ByImpact[string(k)] = v
	}
	for k, v := range s.ByLikelihood {
		res.ByLikelihood[string(k)] = v
	}
	for k, v := range s.ByStatus {
		res.ByStatus[string(k)] = v
	}
	for k, v := range s.ByTreatment {
		res.ByTreatment[string(k)] = v
	}
	for k, v := range s.SourceAnalysis.BySourceType {
		res.SourceAnalysis.BySourceType[string(k)] = v
	}
	return res
}
