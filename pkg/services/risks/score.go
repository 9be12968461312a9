package risks

import "github.com/grc-tools/posture-atlas/pkg/models/domain"

// riskScoreOrdinals is the 5-tier scale used by CalculateRiskScore. Keys are
// case-sensitive rating labels as entered on risk records.
var riskScoreOrdinals = map[string]int{
	"Critical":   5,
	"High":       4,
	"Medium":     3,
	"Low":        2,
	"Negligible": 1,
}

// priorityWeights is the 3-tier scale used for top-risk ranking. It is a
// deliberately separate table from riskScoreOrdinals: the two scales serve
// different call sites and must not be unified without product confirmation.
var priorityWeights = map[domain.Level]int{
	domain.LevelHigh:   3,
	domain.LevelMedium: 2,
	domain.LevelLow:    1,
}

// CalculateRiskScore maps impact and likelihood through the 5-tier ordinal
// scale and returns their product. Unknown labels rate as 1, not an error.
func CalculateRiskScore(impact, likelihood string) int {
	return ordinal(impact) * ordinal(likelihood)
}

func ordinal(label string) int {
	if v, ok := riskScoreOrdinals[label]; ok {
		return v
	}
	return 1
}

// RiskPriority ranks a risk for "top risks" listings using the 3-tier
// weight table. Unknown levels weigh 1.
func RiskPriority(impact, likelihood domain.Level) int {
	return priorityWeight(impact) * priorityWeight(likelihood)
}

func priorityWeight(l domain.Level) int {
	if v, ok := priorityWeights[l]; ok {
		return v
	}
	return 1
}
