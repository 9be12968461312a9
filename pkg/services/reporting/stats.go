package reporting

import (
	"context"

	"github.com/grc-tools/posture-atlas/pkg/models/domain"
	"github.com/grc-tools/posture-atlas/pkg/services/findings"
	"github.com/grc-tools/posture-atlas/pkg/services/risks"
)

// StatsProvider serves the statistics endpoints. The live provider computes
// from the stores on every call; the canned provider returns deterministic
// sample payloads for demo deployments. Selection happens at wiring time via
// the mock-mode config flag.
type StatsProvider interface {
	GetFindingMetrics(ctx context.Context, clientID int) (domain.FindingMetrics, error)
	GetRiskStats(ctx context.Context, clientID int) (domain.RiskStats, error)
}

type liveStats struct {
	findings findings.Aggregator
	risks    risks.Service
}

func NewLiveStats(findingAgg findings.Aggregator, riskSvc risks.Service) StatsProvider {
	return &liveStats{findings: findingAgg, risks: riskSvc}
}

func (s *liveStats) GetFindingMetrics(ctx context.Context, clientID int) (domain.FindingMetrics, error) {
	return s.findings.GetFindingMetrics(ctx, clientID)
}

func (s *liveStats) GetRiskStats(ctx context.Context, clientID int) (domain.RiskStats, error) {
	return s.risks.GetRiskStats(ctx, clientID)
}

type cannedStats struct{}

// NewCannedStats returns the mock-mode provider. Payloads are static and
// self-consistent so demo dashboards render sensibly.
func NewCannedStats() StatsProvider {
	return cannedStats{}
}

func (cannedStats) GetFindingMetrics(_ context.Context, clientID int) (domain.FindingMetrics, error) {
	if clientID == 0 {
		return domain.FindingMetrics{}, domain.MissingField("client id")
	}
	return domain.FindingMetrics{
		Total: 24,
		BySeverity: map[domain.Severity]int{
			domain.SeverityCritical:      2,
			domain.SeverityHigh:          5,
			domain.SeverityMedium:        9,
			domain.SeverityLow:           6,
			domain.SeverityInformational: 2,
		},
		ByStatus: map[domain.FindingStatus]int{
			domain.FindingOpen:       8,
			domain.FindingInProgress: 4,
			domain.FindingClosed:     10,
			domain.FindingReopened:   1,
			domain.FindingDuplicate:  1,
			domain.FindingDeferred:   0,
		},
		BySource: map[domain.SourceType]int{
			domain.SourceSecurityAssessment: 18,
			domain.SourceVulnerabilityScan:  4,
			domain.SourcePenetrationTest:    2,
			domain.SourceAudit:              0,
			domain.SourceManual:             0,
		},
		PromotedToRisk: 3,
	}, nil
}

func (cannedStats) GetRiskStats(_ context.Context, clientID int) (domain.RiskStats, error) {
	if clientID == 0 {
		return domain.RiskStats{}, domain.MissingField("client id")
	}
	return domain.RiskStats{
		Total: 11,
		ByImpact: map[domain.Level]int{
			domain.LevelHigh:   3,
			domain.LevelMedium: 5,
			domain.LevelLow:    3,
		},
		ByLikelihood: map[domain.Level]int{
			domain.LevelHigh:   2,
			domain.LevelMedium: 6,
			domain.LevelLow:    3,
		},
		ByStatus: map[domain.RiskStatus]int{
			domain.RiskActive:      6,
			domain.RiskMitigated:   3,
			domain.RiskAccepted:    1,
			domain.RiskTransferred: 1,
		},
		ByTreatment: map[domain.TreatmentStatus]int{
			domain.TreatmentNotStarted: 2,
			domain.TreatmentInProgress: 5,
			domain.TreatmentCompleted:  3,
			domain.TreatmentBlocked:    1,
		},
		SourceAnalysis: domain.RiskSourceAnalysis{
			FromFindings:       4,
			ManuallyIdentified: 7,
			BySourceType: map[domain.SourceType]int{
				domain.SourceSecurityAssessment: 3,
				domain.SourceVulnerabilityScan:  1,
			},
		},
	}, nil
}
