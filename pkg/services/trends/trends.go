// Package trends builds per-day activity timelines and fits simple linear
// regressions over them to classify trend direction and projected impact.
package trends

import (
	"time"

	"github.com/grc-tools/posture-atlas/pkg/models/domain"
)

// DefaultPeriodDays is the lookback window when the caller does not pick one.
const DefaultPeriodDays = 90

// Direction thresholds on the OLS slope.
const (
	increasingSlope = 0.1
	decreasingSlope = -0.1
)

// Metric names the timeline series a trend line is fitted over.
type Metric string

const (
	MetricFindings    Metric = "findings"
	MetricRisks       Metric = "risks"
	MetricAssessments Metric = "assessments"
)

// Projection thresholds on the absolute slope. Assessment scores move on a
// 0-100 range while finding/risk counts move by small deltas, so the scales
// differ per metric.
var impactThresholds = map[Metric]struct{ high, medium float64 }{
	MetricFindings:    {high: 0.5, medium: 0.2},
	MetricRisks:       {high: 0.5, medium: 0.2},
	MetricAssessments: {high: 5, medium: 2},
}

// BuildTimeline walks day by day from now-period to now and emits an entry
// for every day with finding, risk or assessment activity. Activity matches
// on calendar date. Days without activity are omitted: the timeline is
// sparse, not a dense daily series.
func BuildTimeline(
	findings []domain.Finding,
	risks []domain.Risk,
	assessments []domain.Assessment,
	periodDays int,
	now time.Time,
) []domain.TimelineEntry {
	if periodDays <= 0 {
		periodDays = DefaultPeriodDays
	}

	findingsByDay := make(map[string][]domain.Finding)
	for _, f := range findings {
		day := f.CreatedDate.Format(time.DateOnly)
		findingsByDay[day] = append(findingsByDay[day], f)
	}
	risksByDay := make(map[string][]domain.Risk)
	for _, r := range risks {
		day := r.LastAssessed.Format(time.DateOnly)
		risksByDay[day] = append(risksByDay[day], r)
	}
	assessmentsByDay := make(map[string][]domain.Assessment)
	for _, a := range assessments {
		day := a.Date.Format(time.DateOnly)
		assessmentsByDay[day] = append(assessmentsByDay[day], a)
	}

	var timeline []domain.TimelineEntry
	start := now.AddDate(0, 0, -periodDays)
	for d := start; !d.After(now); d = d.AddDate(0, 0, 1) {
		day := d.Format(time.DateOnly)
		dayFindings := findingsByDay[day]
		dayRisks := risksByDay[day]
		dayAssessments := assessmentsByDay[day]
		if len(dayFindings) == 0 && len(dayRisks) == 0 && len(dayAssessments) == 0 {
			continue
		}

		entry := domain.TimelineEntry{Date: d}
		for _, f := range dayFindings {
			entry.Findings.New++
			if f.Status == domain.FindingClosed {
				entry.Findings.Closed++
			}
		}
		for _, r := range dayRisks {
			entry.Risks.New++
			if r.Status == domain.RiskMitigated {
				entry.Risks.Mitigated++
			}
		}
		var scoreSum int
		for _, a := range dayAssessments {
			if a.Status == domain.AssessmentCompleted {
				entry.Assessments.Completed++
				scoreSum += a.Score
			}
		}
		if entry.Assessments.Completed > 0 {
			entry.Assessments.AverageScore = float64(scoreSum) / float64(entry.Assessments.Completed)
		}
		timeline = append(timeline, entry)
	}
	return timeline
}

// Point is one (x, y) observation for trend fitting.
type Point struct {
	X float64
	Y float64
}

// FitTrendLine computes the ordinary-least-squares slope over the points and
// classifies direction at the ±0.1 thresholds. Fewer than two points yields
// a zero slope and a stable direction instead of dividing by zero.
func FitTrendLine(points []Point) domain.TrendLine {
	if len(points) < 2 {
		return domain.TrendLine{Slope: 0, Direction: domain.TrendStable}
	}

	n := float64(len(points))
	var sumX, sumY, sumXY, sumXX float64
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
		sumXY += p.X * p.Y
		sumXX += p.X * p.X
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return domain.TrendLine{Slope: 0, Direction: domain.TrendStable}
	}
	slope := (n*sumXY - sumX*sumY) / denom

	direction := domain.TrendStable
	switch {
	case slope > increasingSlope:
		direction = domain.TrendIncreasing
	case slope < decreasingSlope:
		direction = domain.TrendDecreasing
	}
	return domain.TrendLine{Slope: slope, Direction: direction}
}

// ProjectImpact classifies the magnitude of a fitted slope for a metric.
func ProjectImpact(metric Metric, slope float64) domain.Level {
	thresholds, ok := impactThresholds[metric]
	if !ok {
		thresholds = impactThresholds[MetricFindings]
	}
	abs := slope
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= thresholds.high:
		return domain.LevelHigh
	case abs >= thresholds.medium:
		return domain.LevelMedium
	default:
		return domain.LevelLow
	}
}

// Analyze builds the timeline for the window and fits one trend per metric.
// The x axis is the entry date in epoch milliseconds; the y values are net
// new findings (new-closed), net new risks (new-mitigated) and the day's
// average assessment score.
func Analyze(
	findings []domain.Finding,
	risks []domain.Risk,
	assessments []domain.Assessment,
	periodDays int,
	now time.Time,
) domain.TrendAnalysis {
	if periodDays <= 0 {
		periodDays = DefaultPeriodDays
	}
	timeline := BuildTimeline(findings, risks, assessments, periodDays, now)

	findingPoints := make([]Point, 0, len(timeline))
	riskPoints := make([]Point, 0, len(timeline))
	var assessmentPoints []Point
	for _, e := range timeline {
		x := float64(e.Date.UnixMilli())
		findingPoints = append(findingPoints, Point{X: x, Y: float64(e.Findings.New - e.Findings.Closed)})
		riskPoints = append(riskPoints, Point{X: x, Y: float64(e.Risks.New - e.Risks.Mitigated)})
		if e.Assessments.Completed > 0 {
			assessmentPoints = append(assessmentPoints, Point{X: x, Y: e.Assessments.AverageScore})
		}
	}

	return domain.TrendAnalysis{
		PeriodDays:  periodDays,
		GeneratedAt: now,
		Timeline:    timeline,
		Findings:    metricTrend(MetricFindings, findingPoints),
		Risks:       metricTrend(MetricRisks, riskPoints),
		Assessments: metricTrend(MetricAssessments, assessmentPoints),
	}
}

func metricTrend(metric Metric, points []Point) domain.MetricTrend {
	line := FitTrendLine(points)
	return domain.MetricTrend{
		Line:   line,
		Impact: ProjectImpact(metric, line.Slope),
	}
}
