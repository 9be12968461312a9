package api

import "time"

type FindingTally struct {
	Total  int `json:"total"`
	Open   int `json:"open"`
	Closed int `json:"closed"`
}

type RiskTally struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Mitigated int `json:"mitigated"`
}

type ControlCoverage struct {
	Category        string       `json:"category"`
	Findings        FindingTally `json:"findings"`
	Risks           RiskTally    `json:"risks"`
	FindingScore    int          `json:"finding_score"`
	RiskScore       int          `json:"risk_score"`
	AssessmentScore int          `json:"assessment_score"`
	Score           int          `json:"score"`
}

type Gap struct {
	Type        string `json:"type"`
	Count       int    `json:"count"`
	Description string `json:"description"`
}

type Recommendation struct {
	Priority    string `json:"priority"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ScoreSummary struct {
	OverallScore     int     `json:"overall_score"`
	FindingScore     int     `json:"finding_score"`
	RiskScore        int     `json:"risk_score"`
	AssessmentScore  float64 `json:"assessment_score"`
	TotalFindings    int     `json:"total_findings"`
	OpenFindings     int     `json:"open_findings"`
	TotalRisks       int     `json:"total_risks"`
	ActiveRisks      int     `json:"active_risks"`
	TotalAssessments int     `json:"total_assessments"`
}

type TrendWindow struct {
	NewFindings    int `json:"new_findings"`
	ClosedFindings int `json:"closed_findings"`
	NewRisks       int `json:"new_risks"`
	MitigatedRisks int `json:"mitigated_risks"`
}

type DashboardTrends struct {
	Last30Days TrendWindow `json:"last_30_days"`
	Last90Days TrendWindow `json:"last_90_days"`
}

type ActivityEntry struct {
	Type   string    `json:"type"`
	ID     string    `json:"id"`
	Title  string    `json:"title"`
	Detail string    `json:"detail,omitempty"`
	Date   time.Time `json:"date"`
}

type ExecutiveDashboard struct {
	ClientID       int               `json:"client_id"`
	GeneratedAt    time.Time         `json:"generated_at"`
	Summary        ScoreSummary      `json:"summary"`
	Compliance     []ControlCoverage `json:"compliance"`
	Trends         DashboardTrends   `json:"trends"`
	TopRisks       []Risk            `json:"top_risks"`
	RecentActivity []ActivityEntry   `json:"recent_activity"`
}

type CategoryCompliance struct {
	Category        string           `json:"category"`
	Status          string           `json:"status"`
	Coverage        ControlCoverage  `json:"coverage"`
	Gaps            []Gap            `json:"gaps"`
	Recommendations []Recommendation `json:"recommendations"`
}

type ComplianceReport struct {
	ClientID    int                  `json:"client_id"`
	Framework   string               `json:"framework"`
	GeneratedAt time.Time            `json:"generated_at"`
	Categories  []CategoryCompliance `json:"categories"`
}

type TimelineFindings struct {
	New    int `json:"new"`
	Closed int `json:"closed"`
}

type TimelineRisks struct {
	New       int `json:"new"`
	Mitigated int `json:"mitigated"`
}

type TimelineAssessments struct {
	Completed    int     `json:"completed"`
	AverageScore float64 `json:"average_score"`
}

type TimelineEntry struct {
	Date        string              `json:"date"`
	Findings    TimelineFindings    `json:"findings"`
	Risks       TimelineRisks       `json:"risks"`
	Assessments TimelineAssessments `json:"assessments"`
}

type TrendLine struct {
	Slope     float64 `json:"slope"`
	Direction string  `json:"direction"`
}

type MetricTrend struct {
	Line   TrendLine `json:"line"`
	Impact string    `json:"impact"`
}

type TrendAnalysis struct {
	ClientID    int             `json:"client_id"`
	PeriodDays  int             `json:"period_days"`
	GeneratedAt time.Time       `json:"generated_at"`
	Timeline    []TimelineEntry `json:"timeline"`
	Findings    MetricTrend     `json:"findings"`
	Risks       MetricTrend     `json:"risks"`
	Assessments MetricTrend     `json:"assessments"`
}
