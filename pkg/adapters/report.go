package adapters

import (
	"time"

	"github.com/grc-tools/posture-atlas/pkg/models/api"
	"github.com/grc-tools/posture-atlas/pkg/models/domain"
)

func MapControlCoverageDomainToApi(c domain.ControlCoverage) api.ControlCoverage {
	return api.ControlCoverage{
		Category: c.Category,
		Findings: api.FindingTally{
			Total:  c.Findings.Total,
			Open:   c.Findings.Open,
			Closed: c.Findings.Closed,
		},
		Risks: api.RiskTally{
			Total:     c.Risks.Total,
			Active:    c.Risks.Active,
			Mitigated: c.Risks.Mitigated,
		},
		FindingScore:    c.FindingScore,
		RiskScore:       c.RiskScore,
		AssessmentScore: c.AssessmentScore,
		Score:           c.Score,
	}
}

func MapGapsDomainToApi(gaps []domain.Gap) []api.Gap {
	res := make([]api.Gap, 0, len(gaps))
	for _, g := range gaps {
		res = append(res, api.Gap{
			Type:        string(g.Type),
			Count:       g.Count,
			Description: g.Description,
		})
	}
	return res
}

func MapRecommendationsDomainToApi(recs []domain.Recommendation) []api.Recommendation {
	res := make([]api.Recommendation, 0, len(recs))
	for _, r := range recs {
		res = append(res, api.Recommendation{
			Priority:    string(r.Priority),
			Title:       r.Title,
			Description: r.Description,
		})
	}
	return res
}

func MapExecutiveDashboardDomainToApi(d domain.ExecutiveDashboard) api.ExecutiveDashboard {
	compliance := make([]api.ControlCoverage, 0, len(d.Compliance))
	for _, c := range d.Compliance {
		compliance = append(compliance, MapControlCoverageDomainToApi(c))
	}
	activity := make([]api.ActivityEntry, 0, len(d.RecentActivity))
	for _, a := range d.RecentActivity {
		activity = append(activity, api.ActivityEntry{
			Type:   string(a.Type),
			ID:     a.ID,
			Title:  a.Title,
			Detail: a.Detail,
			Date:   a.Date,
		})
	}
	return api.ExecutiveDashboard{
		ClientID:    d.ClientID,
		GeneratedAt: d.GeneratedAt,
		Summary: api.ScoreSummary{
			OverallScore:     d.Summary.OverallScore,
			FindingScore:     d.Summary.FindingScore,
			RiskScore:        d.Summary.RiskScore,
			AssessmentScore:  d.Summary.AssessmentScore,
			TotalFindings:    d.Summary.TotalFindings,
			OpenFindings:     d.Summary.OpenFindings,
			TotalRisks:       d.Summary.TotalRisks,
			ActiveRisks:      d.Summary.ActiveRisks,
			TotalAssessments: d.Summary.TotalAssessments,
		},
		Compliance: compliance,
		Trends: api.DashboardTrends{
			Last30Days: mapTrendWindow(d.Trends.Last30Days),
			Last90Days: mapTrendWindow(d.Trends.Last90Days),
		},
		TopRisks:       MapRisksDomainToApi(d.TopRisks),
		RecentActivity: activity,
	}
}

func mapTrendWindow(w domain.TrendWindow) api.TrendWindow {
	return api.TrendWindow{
		NewFindings:    w.NewFindings,
		ClosedFindings: w.ClosedFindings,
		NewRisks:       w.NewRisks,
		MitigatedRisks: w.MitigatedRisks,
	}
}

func MapComplianceReportDomainToApi(r domain.ComplianceReport) api.ComplianceReport {
	categories := make([]api.CategoryCompliance, 0, len(r.Categories))
	for _, c := range r.Categories {
		categories = append(categories, api.CategoryCompliance{
			Category:        c.Category,
			Status:          string(c.Status),
			Coverage:        MapControlCoverageDomainToApi(c.Coverage),
			Gaps:            MapGapsDomainToApi(c.Gaps),
			Recommendations: MapRecommendationsDomainToApi(c.Recommendations),
		})
	}
	return api.ComplianceReport{
		ClientID:    r.ClientID,
		Framework:   r.Framework,
		GeneratedAt: r.GeneratedAt,
		Categories:  categories,
	}
}

func MapTrendAnalysisDomainToApi(t domain.TrendAnalysis) api.TrendAnalysis {
	timeline := make([]api.TimelineEntry, 0, len(t.Timeline))
	for _, e := range t.Timeline {
		timeline = append(timeline, api.TimelineEntry{
			Date: e.Date.Format(time.DateOnly),
			Findings: api.TimelineFindings{
				New:    e.Findings.New,
				Closed: e.Findings.Closed,
			},
			Risks: api.TimelineRisks{
				New:       e.Risks.New,
				Mitigated: e.Risks.Mitigated,
			},
			Assessments: api.TimelineAssessments{
				Completed:    e.Assessments.Completed,
				AverageScore: e.Assessments.AverageScore,
			},
		})
	}
	return api.TrendAnalysis{
		ClientID:    t.ClientID,
		PeriodDays:  t.PeriodDays,
		GeneratedAt: t.GeneratedAt,
		Timeline:    timeline,
		Findings:    mapMetricTrend(t.Findings),
		Risks:       mapMetricTrend(t.Risks),
		Assessments: mapMetricTrend(t.Assessments),
	}
}

func mapMetricTrend(m domain.MetricTrend) api.MetricTrend {
	return api.MetricTrend{
		Line: api.TrendLine{
			Slope:     m.Line.Slope,
			Direction: string(m.Line.Direction),
		},
		Impact: string(m.Impact),
	}
}
