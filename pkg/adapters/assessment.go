package adapters

import (
	"github.com/grc-tools/posture-atlas/pkg/models/api"
	"github.com/grc-tools/posture-atlas/pkg/models/domain"
)

func MapAssessmentDomainToApi(a domain.Assessment) api.Assessment {
	return api.Assessment{
		ID:                a.ID,
		ClientID:          a.ClientID,
		Date:              a.Date,
		Type:              a.Type,
		Status:            string(a.Status),
		Category:          a.Category,
		Score:             a.Score,
		Answers:           a.Answers,
		GeneratedFindings: MapFindingsDomainToApi(a.GeneratedFindings),
	}
}

func MapAssessmentsDomainToApi(assessments []domain.Assessment) []api.Assessment {
	res := make([]api.Assessment, 0, len(assessments))
	for _, a := range assessments {
		res = append(res, MapAssessmentDomainToApi(a))
	}
	return res
}

func MapAssessmentApiToDomain(a api.Assessment) domain.Assessment {
	findings := make([]domain.Finding, 0, len(a.GeneratedFindings))
	for _, f := range a.GeneratedFindings {
		findings = append(findings, MapFindingApiToDomain(f))
	}
	return domain.Assessment{
		ID:                a.ID,
		ClientID:          a.ClientID,
		Date:              a.Date,
		Type:              a.Type,
		Status:            domain.AssessmentStatus(a.Status),
		Category:          a.Category,
		Score:             a.Score,
		Answers:           a.Answers,
		GeneratedFindings: findings,
	}
}
