package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grc-tools/posture-atlas/pkg/models/domain"
)

func TestFindingHealthScore(t *testing.T) {
	tests := []struct {
		name     string
		findings []domain.Finding
		expected int
	}{
		{
			name:     "no findings scores 100",
			findings: nil,
			expected: 100,
		},
		{
			name: "all critical open scores 0",
			findings: []domain.Finding{
				{Severity: domain.SeverityCritical, Status: domain.FindingOpen},
				{Severity: domain.SeverityCritical, Status: domain.FindingOpen},
				{Severity: domain.SeverityCritical, Status: domain.FindingOpen},
			},
			expected: 0,
		},
		{
			name: "all closed scores 100",
			findings: []domain.Finding{
				{Severity: domain.SeverityCritical, Status: domain.FindingClosed},
				{Severity: domain.SeverityHigh, Status: domain.FindingClosed},
			},
			expected: 100,
		},
		{
			name: "one critical open among three",
			findings: []domain.Finding{
				{Severity: domain.SeverityCritical, Status: domain.FindingOpen},
				{Severity: domain.SeverityLow, Status: domain.FindingClosed},
				{Severity: domain.SeverityLow, Status: domain.FindingClosed},
			},
			// weightedOpen = 1.0, total 3 -> round(100 - 33.33) = 67
			expected: 67,
		},
		{
			name: "informational findings carry no weight",
			findings: []domain.Finding{
				{Severity: domain.SeverityInformational, Status: domain.FindingOpen},
				{Severity: domain.SeverityInformational, Status: domain.FindingOpen},
			},
			expected: 100,
		},
		{
			name: "mixed severities all open",
			findings: []domain.Finding{
				{Severity: domain.SeverityHigh, Status: domain.FindingOpen},
				{Severity: domain.SeverityMedium, Status: domain.FindingInProgress},
				{Severity: domain.SeverityLow, Status: domain.FindingReopened},
				{Severity: domain.SeverityLow, Status: domain.FindingClosed},
			},
			// weightedOpen = 0.8+0.5+0.2 = 1.5, total 4 -> round(100-37.5) = 63
			expected: 63,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FindingHealthScore(tc.findings))
		})
	}
}

func TestRiskHealthScore(t *testing.T) {
	tests := []struct {
		name     string
		risks    []domain.Risk
		expected int
	}{
		{
			name:     "no risks scores 100",
			risks:    nil,
			expected: 100,
		},
		{
			name: "single active high risk scores 0",
			risks: []domain.Risk{
				{Impact: domain.LevelHigh, Status: domain.RiskActive},
			},
			expected: 0,
		},
		{
			name: "mitigated risks carry no weight",
			risks: []domain.Risk{
				{Impact: domain.LevelHigh, Status: domain.RiskMitigated},
				{Impact: domain.LevelMedium, Status: domain.RiskMitigated},
			},
			expected: 100,
		},
		{
			name: "one active high of two",
			risks: []domain.Risk{
				{Impact: domain.LevelHigh, Status: domain.RiskActive},
				{Impact: domain.LevelMedium, Status: domain.RiskMitigated},
			},
			// weightedActive = 1.0, total 2 -> 50
			expected: 50,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, RiskHealthScore(tc.risks))
		})
	}
}

func TestOverallSecurityScore(t *testing.T) {
	assert.Equal(t, 100, OverallSecurityScore(100, 100, 100))
	assert.Equal(t, 0, OverallSecurityScore(0, 0, 0))
	// 90*0.3 + 67*0.4 + 50*0.3 = 27 + 26.8 + 15 = 68.8 -> 69
	assert.Equal(t, 69, OverallSecurityScore(90, 67, 50))
	// No completed assessments contribute 0 for the assessment component.
	assert.Equal(t, 70, OverallSecurityScore(0, 100, 100))
}

// Pins the scenario of a client with one critical/open finding, two low/closed
// findings, one active high risk and one mitigated medium risk against the
// fully-remediated and fully-open variants of the same data.
func TestOverallSecurityScore_IntermediateScenario(t *testing.T) {
	assessmentAvg := 90.0 // one completed assessment at 90, one in progress at 60

	actual := []domain.Finding{
		{Severity: domain.SeverityCritical, Status: domain.FindingOpen},
		{Severity: domain.SeverityLow, Status: domain.FindingClosed},
		{Severity: domain.SeverityLow, Status: domain.FindingClosed},
	}
	allClosed := []domain.Finding{
		{Severity: domain.SeverityCritical, Status: domain.FindingClosed},
		{Severity: domain.SeverityLow, Status: domain.FindingClosed},
		{Severity: domain.SeverityLow, Status: domain.FindingClosed},
	}
	allOpen := []domain.Finding{
		{Severity: domain.SeverityCritical, Status: domain.FindingOpen},
		{Severity: domain.SeverityLow, Status: domain.FindingOpen},
		{Severity: domain.SeverityLow, Status: domain.FindingOpen},
	}
	risks := []domain.Risk{
		{Impact: domain.LevelHigh, Status: domain.RiskActive},
		{Impact: domain.LevelMedium, Status: domain.RiskMitigated},
	}
	riskScore := RiskHealthScore(risks)
	assert.Equal(t, 50, riskScore)

	scoreActual := OverallSecurityScore(assessmentAvg, FindingHealthScore(actual), riskScore)
	scoreClosed := OverallSecurityScore(assessmentAvg, FindingHealthScore(allClosed), riskScore)
	scoreOpen := OverallSecurityScore(assessmentAvg, FindingHealthScore(allOpen), riskScore)

	assert.Equal(t, 69, scoreActual)
	assert.Equal(t, 82, scoreClosed)
	assert.Equal(t, 63, scoreOpen)
	assert.Greater(t, scoreClosed, scoreActual)
	assert.Greater(t, scoreActual, scoreOpen)
}
