package scoring

import (
	"sort"

	"github.com/grc-tools/posture-atlas/pkg/models/domain"
)

// Blend weights for the per-category coverage score.
const (
	coverageFindingWeight    = 0.4
	coverageRiskWeight       = 0.3
	coverageAssessmentWeight = 0.3
)

// CoverageByCategory buckets findings, risks and assessments by canonical
// control category and blends a coverage score per bucket. The four
// canonical categories are always present; unmapped raw categories form
// their own buckets. Flagging unmapped categories is the caller's job;
// this function stays pure.
func CoverageByCategory(
	findings []domain.Finding,
	risks []domain.Risk,
	assessments []domain.Assessment,
) []domain.ControlCoverage {
	buckets := make(map[string]*domain.ControlCoverage)
	for _, c := range CanonicalCategories() {
		buckets[c] = &domain.ControlCoverage{Category: c}
	}
	bucket := func(raw string) *domain.ControlCoverage {
		category, _ := CanonicalCategory(raw)
		if b, ok := buckets[category]; ok {
			return b
		}
		b := &domain.ControlCoverage{Category: category}
		buckets[category] = b
		return b
	}

	for _, f := range findings {
		b := bucket(f.Category)
		b.Findings.Total++
		if f.Status == domain.FindingClosed {
			b.Findings.Closed++
		} else {
			b.Findings.Open++
		}
	}
	for _, r := range risks {
		b := bucket(r.Category)
		b.Risks.Total++
		switch r.Status {
		case domain.RiskMitigated:
			b.Risks.Mitigated++
		case domain.RiskActive:
			b.Risks.Active++
		}
	}

	assessmentScores := make(map[string][]int)
	for _, a := range assessments {
		category, _ := CanonicalCategory(a.Category)
		if _, ok := buckets[category]; !ok {
			buckets[category] = &domain.ControlCoverage{Category: category}
		}
		assessmentScores[category] = append(assessmentScores[category], a.Score)
	}

	res := make([]domain.ControlCoverage, 0, len(buckets))
	for category, b := range buckets {
		b.FindingScore = ratioScore(b.Findings.Closed, b.Findings.Total)
		b.RiskScore = ratioScore(b.Risks.Mitigated, b.Risks.Total)
		b.AssessmentScore = roundScore(meanInt(assessmentScores[category]))
		b.Score = roundScore(float64(b.FindingScore)*coverageFindingWeight +
			float64(b.RiskScore)*coverageRiskWeight +
			float64(b.AssessmentScore)*coverageAssessmentWeight)
		res = append(res, *b)
	}

	// Canonical categories first in taxonomy order, extra buckets after,
	// alphabetically.
	rank := make(map[string]int, len(CanonicalCategories()))
	for i, c := range CanonicalCategories() {
		rank[c] = i
	}
	sort.SliceStable(res, func(i, j int) bool {
		ri, iCanon := rank[res[i].Category]
		rj, jCanon := rank[res[j].Category]
		switch {
		case iCanon && jCanon:
			return ri < rj
		case iCanon:
			return true
		case jCanon:
			return false
		default:
			return res[i].Category < res[j].Category
		}
	})
	return res
}

// ratioScore is round(part/total*100). An empty bucket scores 100: no
// findings or risks in a category means nothing is wrong there.
func ratioScore(part, total int) int {
	if total == 0 {
		return 100
	}
	return roundScore(float64(part) / float64(total) * 100)
}

func meanInt(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum int
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}
