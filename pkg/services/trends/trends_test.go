package trends

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grc-tools/posture-atlas/pkg/models/domain"
)

func TestFitTrendLine(t *testing.T) {
	tests := []struct {
		name      string
		points    []Point
		slope     float64
		direction domain.TrendDirection
	}{
		{
			name:      "no points is stable",
			points:    nil,
			slope:     0,
			direction: domain.TrendStable,
		},
		{
			name:      "single point is stable",
			points:    []Point{{X: 1, Y: 5}},
			slope:     0,
			direction: domain.TrendStable,
		},
		{
			name:      "identical x values is stable",
			points:    []Point{{X: 3, Y: 1}, {X: 3, Y: 9}},
			slope:     0,
			direction: domain.TrendStable,
		},
		{
			name:      "rising series is increasing",
			points:    []Point{{X: 0, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 3}},
			slope:     1,
			direction: domain.TrendIncreasing,
		},
		{
			name:      "falling series is decreasing",
			points:    []Point{{X: 0, Y: 3}, {X: 1, Y: 2}, {X: 2, Y: 1}},
			slope:     -1,
			direction: domain.TrendDecreasing,
		},
		{
			name:      "flat series is stable",
			points:    []Point{{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}},
			slope:     0,
			direction: domain.TrendStable,
		},
		{
			name:      "slope inside the dead band is stable",
			points:    []Point{{X: 0, Y: 0}, {X: 10, Y: 0.5}},
			slope:     0.05,
			direction: domain.TrendStable,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			line := FitTrendLine(tc.points)
			assert.InDelta(t, tc.slope, line.Slope, 1e-9)
			assert.Equal(t, tc.direction, line.Direction)
		})
	}
}

func TestProjectImpact(t *testing.T) {
	assert.Equal(t, domain.LevelHigh, ProjectImpact(MetricFindings, 0.5))
	assert.Equal(t, domain.LevelHigh, ProjectImpact(MetricFindings, -0.7))
	assert.Equal(t, domain.LevelMedium, ProjectImpact(MetricFindings, 0.2))
	assert.Equal(t, domain.LevelLow, ProjectImpact(MetricFindings, 0.1))

	// Assessment scores move on a 0-100 range, so the bands sit higher.
	assert.Equal(t, domain.LevelLow, ProjectImpact(MetricAssessments, 0.5))
	assert.Equal(t, domain.LevelMedium, ProjectImpact(MetricAssessments, 2))
	assert.Equal(t, domain.LevelHigh, ProjectImpact(MetricAssessments, -6))
}

func TestBuildTimeline(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	findings := []domain.Finding{
		{ID: "f1", CreatedDate: now.AddDate(0, 0, -10), Status: domain.FindingOpen},
		{ID: "f2", CreatedDate: now.AddDate(0, 0, -10), Status: domain.FindingClosed},
		{ID: "f3", CreatedDate: now.AddDate(0, 0, -200), Status: domain.FindingOpen},
	}
	risks := []domain.Risk{
		{ID: "r1", LastAssessed: now.AddDate(0, 0, -5), Status: domain.RiskMitigated},
	}
	assessments := []domain.Assessment{
		{ID: "a1", Date: now.AddDate(0, 0, -3), Status: domain.AssessmentCompleted, Score: 80},
		{ID: "a2", Date: now.AddDate(0, 0, -3), Status: domain.AssessmentCompleted, Score: 90},
		{ID: "a3", Date: now.AddDate(0, 0, -2), Status: domain.AssessmentScheduled, Score: 0},
	}

	timeline := BuildTimeline(findings, risks, assessments, 90, now)

	// Quiet days are omitted, as is the finding outside the window. The
	// scheduled assessment day still has activity on record but contributes
	// nothing to completed counts.
	require.Len(t, timeline, 4)

	day0 := timeline[0]
	assert.Equal(t, now.AddDate(0, 0, -10).Format(time.DateOnly), day0.Date.Format(time.DateOnly))
	assert.Equal(t, 2, day0.Findings.New)
	assert.Equal(t, 1, day0.Findings.Closed)

	day1 := timeline[1]
	assert.Equal(t, 1, day1.Risks.New)
	assert.Equal(t, 1, day1.Risks.Mitigated)

	day2 := timeline[2]
	assert.Equal(t, 2, day2.Assessments.Completed)
	assert.InDelta(t, 85.0, day2.Assessments.AverageScore, 1e-9)

	day3 := timeline[3]
	assert.Equal(t, 0, day3.Assessments.Completed)
	assert.Zero(t, day3.Assessments.AverageScore)
}

func TestBuildTimeline_DefaultPeriod(t *testing.T) {
	now := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	findings := []domain.Finding{
		{ID: "f1", CreatedDate: now.AddDate(0, 0, -89), Status: domain.FindingOpen},
	}

	timeline := BuildTimeline(findings, nil, nil, 0, now)
	require.Len(t, timeline, 1)
	assert.Equal(t, 1, timeline[0].Findings.New)
}

func TestAnalyze(t *testing.T) {
	now := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

	// Net new findings fall over the window while assessment scores climb.
	findings := []domain.Finding{
		{ID: "f1", CreatedDate: now.AddDate(0, 0, -20), Status: domain.FindingOpen},
		{ID: "f2", CreatedDate: now.AddDate(0, 0, -20), Status: domain.FindingOpen},
		{ID: "f3", CreatedDate: now.AddDate(0, 0, -10), Status: domain.FindingClosed},
	}
	assessments := []domain.Assessment{
		{ID: "a1", Date: now.AddDate(0, 0, -20), Status: domain.AssessmentCompleted, Score: 60},
		{ID: "a2", Date: now.AddDate(0, 0, -10), Status: domain.AssessmentCompleted, Score: 90},
	}

	analysis := Analyze(findings, nil, assessments, 0, now)

	assert.Equal(t, DefaultPeriodDays, analysis.PeriodDays)
	assert.Equal(t, now, analysis.GeneratedAt)
	require.Len(t, analysis.Timeline, 2)

	// Day deltas are 2 then 0, so the fitted slope is negative; at epoch
	// millisecond granularity it lands inside the stable dead band.
	assert.Less(t, analysis.Findings.Line.Slope, 0.0)
	assert.Equal(t, domain.TrendStable, analysis.Findings.Line.Direction)
	assert.Equal(t, domain.LevelLow, analysis.Findings.Impact)

	assert.Greater(t, analysis.Assessments.Line.Slope, 0.0)
	assert.Equal(t, domain.LevelLow, analysis.Assessments.Impact)

	// No risk activity means no points to fit.
	assert.Equal(t, domain.TrendStable, analysis.Risks.Line.Direction)
	assert.Zero(t, analysis.Risks.Line.Slope)
}
