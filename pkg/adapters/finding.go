package adapters

import (
	"github.com/grc-tools/posture-atlas/pkg/models/api"
	"github.com/grc-tools/posture-atlas/pkg/models/domain"
)

func MapFindingDomainToApi(f domain.Finding) api.Finding {
	return api.Finding{
		ID:             f.ID,
		Title:          f.Title,
		Description:    f.Description,
		Severity:       string(f.Severity),
		Status:         string(f.Status),
		Category:       f.Category,
		SourceType:     string(f.SourceType),
		SourceDetails:  f.SourceDetails,
		Tags:           f.Tags,
		CreatedDate:    f.CreatedDate,
		AssessmentID:   f.AssessmentID,
		PromotedToRisk: f.PromotedToRisk,
		RiskID:         f.RiskID,
	}
}

func MapFindingsDomainToApi(findings []domain.Finding) []api.Finding {
	res := make([]api.Finding, 0, len(findings))
	for _, f := range findings {
		res = append(res, MapFindingDomainToApi(f))
	}
	return res
}

func MapFindingApiToDomain(f api.Finding) domain.Finding {
	return domain.Finding{
		ID:             f.ID,
		Title:          f.Title,
		Description:    f.Description,
		Severity:       domain.Severity(f.Severity),
		Status:         domain.FindingStatus(f.Status),
		Category:       f.Category,
		SourceType:     domain.SourceType(f.SourceType),
		SourceDetails:  f.SourceDetails,
		Tags:           f.Tags,
		CreatedDate:    f.CreatedDate,
		AssessmentID:   f.AssessmentID,
		PromotedToRisk: f.PromotedToRisk,
		RiskID:         f.RiskID,
	}
}

func MapFindingMetricsDomainToApi(m domain.FindingMetrics) api.FindingMetrics {
	res := api.FindingMetrics{
		Total:          m.Total,
		BySeverity:     make(map[string]int, len(m.BySeverity)),
		ByStatus:       make(map[string]int, len(m.ByStatus)),
		BySource:       make(map[string]int, len(m.BySource)),
		PromotedToRisk: m.PromotedToRisk,
	}
	for k, v := range m.BySeverity {
		res.BySeverity[string(k)] = v
	}
	for k, v := range m.ByStatus {
		res.ByStatus[string(k)] = v
	}
	for k, v := range m.BySource {
		res.BySource[string(k)] = v
	}
	return res
}
