// Package findings flattens the findings embedded in a client's assessments
// into one uniform collection and derives tallies over it.
package findings

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/grc-tools/posture-atlas/pkg/models/domain"
	"github.com/grc-tools/posture-atlas/pkg/store"
)

type Aggregator interface {
	// GetFindings returns every finding embedded in the client's
	// assessments, stamped with its provenance and filtered conjunctively.
	GetFindings(ctx context.Context, clientID int, filters domain.FindingFilters) ([]domain.Finding, error)

	// GetFindingMetrics tallies the client's findings with zero-filled
	// severity, status and source buckets.
	GetFindingMetrics(ctx context.Context, clientID int) (domain.FindingMetrics, error)

	// PromoteToRisk turns an assessment finding into a standalone risk,
	// copying the finding as a source-finding entry and marking the
	// original as promoted.
	PromoteToRisk(ctx context.Context, clientID int, assessmentID, findingID string) (domain.Risk, error)
}

type aggregator struct {
	assessments store.AssessmentStore
	risks       store.RiskStore
}

func NewAggregator(assessments store.AssessmentStore, risks store.RiskStore) Aggregator {
	return &aggregator{
		assessments: assessments,
		risks:       risks,
	}
}

func (a *aggregator) GetFindings(
	ctx context.Context,
	clientID int,
	filters domain.FindingFilters,
) ([]domain.Finding, error) {
	if clientID == 0 {
		return nil, domain.MissingField("client id")
	}

	assessments, err := a.assessments.ListAssessments(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}

	findings := make([]domain.Finding, 0)
	for _, assessment := range assessments {
		for _, f := range assessment.GeneratedFindings {
			f.SourceType = domain.SourceSecurityAssessment
			f.SourceDetails = fmt.Sprintf("%s assessment %s", assessment.Type, assessment.ID)
			f.CreatedDate = assessment.Date
			f.AssessmentID = assessment.ID
			if matches(f, filters) {
				findings = append(findings, f)
			}
		}
	}
	return findings, nil
}

func (a *aggregator) GetFindingMetrics(ctx context.Context, clientID int) (domain.FindingMetrics, error) {
	findings, err := a.GetFindings(ctx, clientID, domain.FindingFilters{})
	if err != nil {
		return domain.FindingMetrics{}, err
	}

	metrics := domain.FindingMetrics{
		Total:      len(findings),
		BySeverity: make(map[domain.Severity]int, len(domain.AllSeverities())),
		ByStatus:   make(map[domain.FindingStatus]int, len(domain.AllFindingStatuses())),
		BySource:   make(map[domain.SourceType]int, len(domain.AllSourceTypes())),
	}
	for _, s := range domain.AllSeverities() {
		metrics.BySeverity[s] = 0
	}
	for _, s := range domain.AllFindingStatuses() {
		metrics.ByStatus[s] = 0
	}
	for _, s := range domain.AllSourceTypes() {
		metrics.BySource[s] = 0
	}

	for _, f := range findings {
		metrics.BySeverity[f.Severity]++
		metrics.ByStatus[f.Status]++
		metrics.BySource[f.SourceType]++
		if f.PromotedToRisk {
			metrics.PromotedToRisk++
		}
	}
	return metrics, nil
}

func (a *aggregator) PromoteToRisk(
	ctx context.Context,
	clientID int,
	assessmentID, findingID string,
) (domain.Risk, error) {
	if clientID == 0 {
		return domain.Risk{}, domain.MissingField("client id")
	}

	assessment, err := a.assessments.GetAssessment(ctx, clientID, assessmentID)
	if err != nil {
		return domain.Risk{}, err
	}

	idx := -1
	for i, f := range assessment.GeneratedFindings {
		if f.ID == findingID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return domain.Risk{}, domain.NotFound("finding", findingID)
	}

	finding := assessment.GeneratedFindings[idx]
	risk := domain.Risk{
		ID:           uuid.NewString(),
		ClientID:     clientID,
		Name:         finding.Title,
		Description:  finding.Description,
		Impact:       impactForSeverity(finding.Severity),
		Likelihood:   domain.LevelMedium,
		Status:       domain.RiskActive,
		Category:     finding.Category,
		LastAssessed: time.Now(),
		SourceFindings: []domain.SourceFinding{{
			FindingID:  finding.ID,
			Title:      finding.Title,
			SourceType: domain.SourceSecurityAssessment,
			Date:       assessment.Date,
		}},
		Treatment: domain.Treatment{Status: domain.TreatmentNotStarted},
	}

	if err := a.risks.CreateRisk(ctx, risk); err != nil {
		return domain.Risk{}, fmt.Errorf("create risk: %w", err)
	}

	assessment.GeneratedFindings[idx].PromotedToRisk = true
	assessment.GeneratedFindings[idx].RiskID = risk.ID
	if err := a.assessments.UpdateAssessment(ctx, assessment); err != nil {
		return domain.Risk{}, fmt.Errorf("update assessment: %w", err)
	}

	zerolog.Ctx(ctx).Info().
		Str("finding_id", findingID).
		Str("risk_id", risk.ID).
		Int("client_id", clientID).
		Msg("finding promoted to risk")

	return risk, nil
}

func matches(f domain.Finding, filters domain.FindingFilters) bool {
	if filters.SourceType != "" && f.SourceType != filters.SourceType {
		return false
	}
	if filters.Severity != "" && f.Severity != filters.Severity {
		return false
	}
	if filters.Status != "" && f.Status != filters.Status {
		return false
	}
	if len(filters.Tags) > 0 && !hasAnyTag(f.Tags, filters.Tags) {
		return false
	}
	return true
}

func hasAnyTag(tags, wanted []string) bool {
	for _, w := range wanted {
		for _, t := range tags {
			if t == w {
				return true
			}
		}
	}
	return false
}

func impactForSeverity(s domain.Severity) domain.Level {
	switch s {
	case domain.SeverityCritical, domain.SeverityHigh:
		return domain.LevelHigh
	case domain.SeverityMedium:
		return domain.LevelMedium
	default:
		return domain.LevelLow
	}
}
