// Package scoring holds the pure functions that turn aggregator output into
// posture scores, control coverage, gaps and recommendations.
package scoring

import (
	"math"

	"github.com/grc-tools/posture-atlas/pkg/models/domain"
)

// findingSeverityWeights drives the finding health score. Informational
// findings carry no weight: they count toward the total but contribute
// nothing to the weighted open sum.
var findingSeverityWeights = map[domain.Severity]float64{
	domain.SeverityCritical: 1.0,
	domain.SeverityHigh:     0.8,
	domain.SeverityMedium:   0.5,
	domain.SeverityLow:      0.2,
}

// riskImpactWeights drives the risk health score over active risks.
var riskImpactWeights = map[domain.Level]float64{
	domain.LevelHigh:   1.0,
	domain.LevelMedium: 0.6,
	domain.LevelLow:    0.3,
}

// Blend weights for the overall posture score.
const (
	overallAssessmentWeight = 0.3
	overallFindingWeight    = 0.4
	overallRiskWeight       = 0.3
)

// FindingHealthScore is 100 with no findings, otherwise
// round(100 - weightedOpen/total*100) where weightedOpen sums the severity
// weights of still-open findings.
func FindingHealthScore(findings []domain.Finding) int {
	if len(findings) == 0 {
		return 100
	}
	var weightedOpen float64
	for _, f := range findings {
		if f.Open() {
			weightedOpen += findingSeverityWeights[f.Severity]
		}
	}
	return roundScore(100 - (weightedOpen/float64(len(findings)))*100)
}

// RiskHealthScore is 100 with no risks, otherwise
// round(100 - weightedActive/total*100) where weightedActive sums the impact
// weights of active risks.
func RiskHealthScore(risks []domain.Risk) int {
	if len(risks) == 0 {
		return 100
	}
	var weightedActive float64
	for _, r := range risks {
		if r.Status == domain.RiskActive {
			weightedActive += riskImpactWeights[r.Impact]
		}
	}
	return roundScore(100 - (weightedActive/float64(len(risks)))*100)
}

// OverallSecurityScore blends the three component scores 0.3/0.4/0.3.
// assessmentAvg is the mean score of completed assessments, 0 when none.
func OverallSecurityScore(assessmentAvg float64, findingScore, riskScore int) int {
	return roundScore(assessmentAvg*overallAssessmentWeight +
		float64(findingScore)*overallFindingWeight +
		float64(riskScore)*overallRiskWeight)
}

func roundScore(v float64) int {
	return int(math.Round(v))
}
