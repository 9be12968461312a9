package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grc-tools/posture-atlas/pkg/models/domain"
)

func TestIdentifyGaps(t *testing.T) {
	t.Run("clean posture yields no gaps", func(t *testing.T) {
		assessments := []domain.Assessment{{Score: 85, Status: domain.AssessmentCompleted}}
		assert.Empty(t, IdentifyGaps(nil, nil, assessments))
	})

	t.Run("each check contributes one gap", func(t *testing.T) {
		findings := []domain.Finding{
			{Severity: domain.SeverityCritical, Status: domain.FindingOpen},
			{Severity: domain.SeverityHigh, Status: domain.FindingInProgress},
			{Severity: domain.SeverityHigh, Status: domain.FindingClosed},
			{Severity: domain.SeverityLow, Status: domain.FindingOpen},
		}
		risks := []domain.Risk{
			{Impact: domain.LevelHigh, Status: domain.RiskActive},
			{Impact: domain.LevelHigh, Status: domain.RiskMitigated},
			{Impact: domain.LevelMedium, Status: domain.RiskActive},
		}
		assessments := []domain.Assessment{
			{Score: 65, Status: domain.AssessmentCompleted},
			{Score: 90, Status: domain.AssessmentCompleted},
		}

		gaps := IdentifyGaps(findings, risks, assessments)
		require.Len(t, gaps, 3)

		assert.Equal(t, domain.GapCriticalFindings, gaps[0].Type)
		assert.Equal(t, 2, gaps[0].Count)
		assert.Equal(t, domain.GapHighRisks, gaps[1].Type)
		assert.Equal(t, 1, gaps[1].Count)
		assert.Equal(t, domain.GapLowScores, gaps[2].Type)
		assert.Equal(t, 1, gaps[2].Count)
	})

	t.Run("duplicate findings do not count as open", func(t *testing.T) {
		findings := []domain.Finding{
			{Severity: domain.SeverityCritical, Status: domain.FindingDuplicate},
		}
		assert.Empty(t, IdentifyGaps(findings, nil, nil))
	})
}

func TestRecommendations(t *testing.T) {
	t.Run("low completed average yields medium advisory", func(t *testing.T) {
		assessments := []domain.Assessment{
			{Score: 60, Status: domain.AssessmentCompleted},
			{Score: 70, Status: domain.AssessmentCompleted},
			{Score: 10, Status: domain.AssessmentScheduled},
		}

		recs := Recommendations(nil, nil, assessments)
		require.Len(t, recs, 1)
		assert.Equal(t, domain.PriorityMedium, recs[0].Priority)
	})

	t.Run("no completed assessments yields no assessment advisory", func(t *testing.T) {
		assessments := []domain.Assessment{{Score: 10, Status: domain.AssessmentScheduled}}
		assert.Empty(t, Recommendations(nil, nil, assessments))
	})

	t.Run("open critical findings and active high risks are high priority", func(t *testing.T) {
		findings := []domain.Finding{{Severity: domain.SeverityHigh, Status: domain.FindingOpen}}
		risks := []domain.Risk{{Impact: domain.LevelHigh, Status: domain.RiskActive}}

		recs := Recommendations(findings, risks, nil)
		require.Len(t, recs, 2)
		assert.Equal(t, domain.PriorityHigh, recs[0].Priority)
		assert.Equal(t, domain.PriorityHigh, recs[1].Priority)
	})
}
