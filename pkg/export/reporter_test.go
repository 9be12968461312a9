package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grc-tools/posture-atlas/pkg/models/domain"
)

func TestHandleDashboard(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf)

	err := reporter.HandleDashboard(domain.ExecutiveDashboard{
		ClientID:    1,
		GeneratedAt: time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC),
		Summary: domain.ScoreSummary{
			OverallScore:    69,
			FindingScore:    67,
			RiskScore:       50,
			AssessmentScore: 90,
			TotalFindings:   3,
			OpenFindings:    1,
			TotalRisks:      2,
			ActiveRisks:     1,
		},
		Compliance: []domain.ControlCoverage{
			{Category: "Access Control", Score: 71, FindingScore: 50, RiskScore: 100, AssessmentScore: 70},
		},
		TopRisks: []domain.Risk{
			{Name: "Credential theft", Impact: domain.LevelHigh, Likelihood: domain.LevelMedium},
		},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Executive dashboard for client 1")
	assert.Contains(t, out, "Overall security score: 69")
	assert.Contains(t, out, "Access Control")
	assert.Contains(t, out, "[high/medium] Credential theft")
}

func TestHandleCompliance(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf)

	err := reporter.HandleCompliance(domain.ComplianceReport{
		ClientID:  1,
		Framework: "NIST CSF",
		Categories: []domain.CategoryCompliance{
			{
				Category: "Access Control",
				Status:   domain.ControlNeedsImprovement,
				Coverage: domain.ControlCoverage{Score: 71},
				Gaps: []domain.Gap{
					{Type: domain.GapCriticalFindings, Count: 1, Description: "1 open critical or high severity findings"},
				},
				Recommendations: []domain.Recommendation{
					{Priority: domain.PriorityHigh, Title: "Remediate critical findings", Description: "Address them."},
				},
			},
		},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Compliance report for client 1 (NIST CSF)")
	assert.Contains(t, out, "Access Control: needs_improvement (score 71)")
	assert.Contains(t, out, "gap: 1 open critical or high severity findings")
	assert.Contains(t, out, "[high] Remediate critical findings")
}
