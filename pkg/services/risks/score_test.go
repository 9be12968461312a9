package risks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grc-tools/posture-atlas/pkg/models/domain"
)

func TestCalculateRiskScore(t *testing.T) {
	tests := []struct {
		name       string
		impact     string
		likelihood string
		expected   int
	}{
		{"critical impact critical likelihood", "Critical", "Critical", 25},
		{"high impact high likelihood", "High", "High", 16},
		{"medium impact low likelihood", "Medium", "Low", 6},
		{"negligible both", "Negligible", "Negligible", 1},
		{"unknown labels rate as 1", "Catastrophic", "Unheard Of", 1},
		{"lowercase labels are not recognized", "high", "high", 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CalculateRiskScore(tc.impact, tc.likelihood))
		})
	}
}

func TestRiskPriority(t *testing.T) {
	assert.Equal(t, 9, RiskPriority(domain.LevelHigh, domain.LevelHigh))
	assert.Equal(t, 6, RiskPriority(domain.LevelHigh, domain.LevelMedium))
	assert.Equal(t, 1, RiskPriority(domain.LevelLow, domain.LevelLow))
	assert.Equal(t, 1, RiskPriority(domain.Level("critical"), domain.LevelLow))
}

// The 5-tier record scale and the 3-tier ranking scale are distinct tables.
// The same nominal rating must produce different products on each.
func TestScoringScalesStayIndependent(t *testing.T) {
	assert.Equal(t, 16, CalculateRiskScore("High", "High"))
	assert.Equal(t, 9, RiskPriority(domain.LevelHigh, domain.LevelHigh))
}
