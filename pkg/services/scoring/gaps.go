package scoring

import (
	"fmt"

	"github.com/grc-tools/posture-atlas/pkg/models/domain"
)

// lowScoreThreshold flags assessments scoring below it as gaps.
const lowScoreThreshold = 70

// IdentifyGaps flags open critical/high findings, active high-impact risks
// and low assessment scores. Checks with a zero count produce no gap.
func IdentifyGaps(
	findings []domain.Finding,
	risks []domain.Risk,
	assessments []domain.Assessment,
) []domain.Gap {
	var gaps []domain.Gap

	if n := countCriticalOpen(findings); n > 0 {
		gaps = append(gaps, domain.Gap{
			Type:        domain.GapCriticalFindings,
			Count:       n,
			Description: fmt.Sprintf("%d open critical or high severity findings", n),
		})
	}
	if n := countActiveHighRisks(risks); n > 0 {
		gaps = append(gaps, domain.Gap{
			Type:        domain.GapHighRisks,
			Count:       n,
			Description: fmt.Sprintf("%d active high-impact risks", n),
		})
	}
	if n := countLowScores(assessments); n > 0 {
		gaps = append(gaps, domain.Gap{
			Type:        domain.GapLowScores,
			Count:       n,
			Description: fmt.Sprintf("%d assessments scored below %d", n, lowScoreThreshold),
		})
	}
	return gaps
}

// Recommendations derives priority-ordered advisories from the same three
// checks IdentifyGaps runs.
func Recommendations(
	findings []domain.Finding,
	risks []domain.Risk,
	assessments []domain.Assessment,
) []domain.Recommendation {
	var recs []domain.Recommendation

	if n := countCriticalOpen(findings); n > 0 {
		recs = append(recs, domain.Recommendation{
			Priority:    domain.PriorityHigh,
			Title:       "Remediate critical findings",
			Description: fmt.Sprintf("Address %d open critical or high severity findings before the next assessment cycle.", n),
		})
	}
	if n := countActiveHighRisks(risks); n > 0 {
		recs = append(recs, domain.Recommendation{
			Priority:    domain.PriorityHigh,
			Title:       "Treat high-impact risks",
			Description: fmt.Sprintf("Define or accelerate treatment plans for %d active high-impact risks.", n),
		})
	}
	if avg := recentCompletedAverage(assessments); avg > 0 && avg < lowScoreThreshold {
		recs = append(recs, domain.Recommendation{
			Priority:    domain.PriorityMedium,
			Title:       "Improve assessment outcomes",
			Description: fmt.Sprintf("Recent assessments average %.0f; target the weakest control categories to reach %d.", avg, lowScoreThreshold),
		})
	}
	return recs
}

func countCriticalOpen(findings []domain.Finding) int {
	var n int
	for _, f := range findings {
		if f.Open() && (f.Severity == domain.SeverityCritical || f.Severity == domain.SeverityHigh) {
			n++
		}
	}
	return n
}

func countActiveHighRisks(risks []domain.Risk) int {
	var n int
	for _, r := range risks {
		if r.Status == domain.RiskActive && r.Impact == domain.LevelHigh {
			n++
		}
	}
	return n
}

func countLowScores(assessments []domain.Assessment) int {
	var n int
	for _, a := range assessments {
		if a.Score < lowScoreThreshold {
			n++
		}
	}
	return n
}

func recentCompletedAverage(assessments []domain.Assessment) float64 {
	var sum, count int
	for _, a := range assessments {
		if a.Status == domain.AssessmentCompleted {
			sum += a.Score
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}
