package domain

import "time"

// ControlStatus classifies a control category's coverage score.
type ControlStatus string

const (
	ControlEffective        ControlStatus = "effective"
	ControlNeedsImprovement ControlStatus = "needs_improvement"
	ControlIneffective      ControlStatus = "ineffective"
)

// FindingTally summarizes the findings mapped to one control category.
type FindingTally struct {
	Total  int
	Open   int
	Closed int
}

// RiskTally summarizes the risks mapped to one control category.
type RiskTally struct {
	Total     int
	Active    int
	Mitigated int
}

// ControlCoverage is the blended coverage score for one control category.
type ControlCoverage struct {
	Category        string
	Findings        FindingTally
	Risks           RiskTally
	FindingScore    int
	RiskScore       int
	AssessmentScore int
	Score           int
}

type GapType string

const (
	GapCriticalFindings GapType = "critical_findings"
	GapHighRisks        GapType = "high_risks"
	GapLowScores        GapType = "low_scores"
)

type Gap struct {
	Type        GapType
	Count       int
	Description string
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type Recommendation struct {
	Priority    Priority
	Title       string
	Description string
}

// ScoreSummary carries the component scores behind the overall posture score.
type ScoreSummary struct {
	OverallScore     int
	FindingScore     int
	RiskScore        int
	AssessmentScore  float64
	TotalFindings    int
	OpenFindings     int
	TotalRisks       int
	ActiveRisks      int
	TotalAssessments int
}

// TrendWindow is the activity delta over a lookback window.
type TrendWindow struct {
	NewFindings    int
	ClosedFindings int
	NewRisks       int
	MitigatedRisks int
}

type ActivityType string

const (
	ActivityFinding    ActivityType = "finding"
	ActivityRisk       ActivityType = "risk"
	ActivityAssessment ActivityType = "assessment"
)

// ActivityEntry is one row of the dashboard's recent-activity feed.
type ActivityEntry struct {
	Type   ActivityType
	ID     string
	Title  string
	Detail string
	Date   time.Time
}

type ExecutiveDashboard struct {
	ClientID       int
	GeneratedAt    time.Time
	Summary        ScoreSummary
	Compliance     []ControlCoverage
	Trends         DashboardTrends
	TopRisks       []Risk
	RecentActivity []ActivityEntry
}

type DashboardTrends struct {
	Last30Days TrendWindow
	Last90Days TrendWindow
}

// CategoryCompliance is one control category's section of a compliance report.
type CategoryCompliance struct {
	Category        string
	Status          ControlStatus
	Coverage        ControlCoverage
	Gaps            []Gap
	Recommendations []Recommendation
}

type ComplianceReport struct {
	ClientID    int
	Framework   string
	GeneratedAt time.Time
	Categories  []CategoryCompliance
}

// TimelineEntry is one day of activity. Days with no activity are omitted
// from timelines entirely.
type TimelineEntry struct {
	Date        time.Time
	Findings    TimelineFindings
	Risks       TimelineRisks
	Assessments TimelineAssessments
}

type TimelineFindings struct {
	New    int
	Closed int
}

type TimelineRisks struct {
	New       int
	Mitigated int
}

type TimelineAssessments struct {
	Completed    int
	AverageScore float64
}

type TrendDirection string

const (
	TrendIncreasing TrendDirection = "increasing"
	TrendDecreasing TrendDirection = "decreasing"
	TrendStable     TrendDirection = "stable"
)

type TrendLine struct {
	Slope     float64
	Direction TrendDirection
}

// MetricTrend is a fitted trend line plus its projected impact magnitude.
type MetricTrend struct {
	Line   TrendLine
	Impact Level
}

type TrendAnalysis struct {
	ClientID    int
	PeriodDays  int
	GeneratedAt time.Time
	Timeline    []TimelineEntry
	Findings    MetricTrend
	Risks       MetricTrend
	Assessments MetricTrend
}
