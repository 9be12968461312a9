// Package reporting assembles aggregator and scoring output into the
// executive dashboard, compliance report and trend analysis payloads.
package reporting

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/grc-tools/posture-atlas/pkg/models/domain"
	"github.com/grc-tools/posture-atlas/pkg/services/assessments"
	"github.com/grc-tools/posture-atlas/pkg/services/findings"
	"github.com/grc-tools/posture-atlas/pkg/services/risks"
	"github.com/grc-tools/posture-atlas/pkg/services/scoring"
	"github.com/grc-tools/posture-atlas/pkg/services/trends"
)

const (
	topRiskCount       = 5
	recentActivityRows = 10

	effectiveThreshold        = 80
	needsImprovementThreshold = 60
)

type Reporter interface {
	GetExecutiveDashboard(ctx context.Context, clientID int) (domain.ExecutiveDashboard, error)
	GetComplianceReport(ctx context.Context, clientID int, framework string) (domain.ComplianceReport, error)
	GetTrendAnalysis(ctx context.Context, clientID int, periodDays int) (domain.TrendAnalysis, error)
}

type reporter struct {
	findings    findings.Aggregator
	risks       risks.Service
	assessments assessments.Service
	now         func() time.Time
}

func NewReporter(
	findingAgg findings.Aggregator,
	riskSvc risks.Service,
	assessmentSvc assessments.Service,
) Reporter {
	return &reporter{
		findings:    findingAgg,
		risks:       riskSvc,
		assessments: assessmentSvc,
		now:         time.Now,
	}
}

// clientData is the fan-out result the three reports are assembled from.
type clientData struct {
	findings    []domain.Finding
	metrics     domain.FindingMetrics
	risks       []domain.Risk
	stats       domain.RiskStats
	assessments []domain.Assessment
}

// fetch issues all reads concurrently and waits for all of them. Any error
// cancels the group and propagates; there is no partial-result degradation.
func (r *reporter) fetch(ctx context.Context, clientID int) (clientData, error) {
	var data clientData
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		data.findings, err = r.findings.GetFindings(gctx, clientID, domain.FindingFilters{})
		return err
	})
	g.Go(func() error {
		var err error
		data.metrics, err = r.findings.GetFindingMetrics(gctx, clientID)
		return err
	})
	g.Go(func() error {
		var err error
		data.risks, err = r.risks.ListRisks(gctx, clientID)
		return err
	})
	g.Go(func() error {
		var err error
		data.stats, err = r.risks.GetRiskStats(gctx, clientID)
		return err
	})
	g.Go(func() error {
		var err error
		data.assessments, err = r.assessments.ListAssessments(gctx, clientID)
		return err
	})
	if err := g.Wait(); err != nil {
		return clientData{}, err
	}
	return data, nil
}

func (r *reporter) GetExecutiveDashboard(ctx context.Context, clientID int) (domain.ExecutiveDashboard, error) {
	data, err := r.fetch(ctx, clientID)
	if err != nil {
		return domain.ExecutiveDashboard{}, err
	}
	now := r.now()

	findingScore := scoring.FindingHealthScore(data.findings)
	riskScore := scoring.RiskHealthScore(data.risks)
	assessmentAvg := assessments.CompletedAverage(data.assessments)
	overall := scoring.OverallSecurityScore(assessmentAvg, findingScore, riskScore)

	coverage := scoring.CoverageByCategory(data.findings, data.risks, data.assessments)
	logUnmappedCategories(ctx, data.findings, data.risks, data.assessments)

	topRisks := topActiveRisks(data.risks, topRiskCount)

	return domain.ExecutiveDashboard{
		ClientID:    clientID,
		GeneratedAt: now,
		Summary: domain.ScoreSummary{
			OverallScore:     overall,
			FindingScore:     findingScore,
			RiskScore:        riskScore,
			AssessmentScore:  assessmentAvg,
			TotalFindings:    len(data.findings),
			OpenFindings:     countOpenFindings(data.findings),
			TotalRisks:       len(data.risks),
			ActiveRisks:      data.stats.ByStatus[domain.RiskActive],
			TotalAssessments: len(data.assessments),
		},
		Compliance: coverage,
		Trends: domain.DashboardTrends{
			Last30Days: trendWindow(data, now, 30),
			Last90Days: trendWindow(data, now, 90),
		},
		TopRisks:       topRisks,
		RecentActivity: recentActivity(data, recentActivityRows),
	}, nil
}

func (r *reporter) GetComplianceReport(
	ctx context.Context,
	clientID int,
	framework string,
) (domain.ComplianceReport, error) {
	data, err := r.fetch(ctx, clientID)
	if err != nil {
		return domain.ComplianceReport{}, err
	}

	coverage := scoring.CoverageByCategory(data.findings, data.risks, data.assessments)
	categories := make([]domain.CategoryCompliance, 0, len(coverage))
	for _, c := range coverage {
		catFindings := findingsForCategory(data.findings, c.Category)
		catRisks := risksForCategory(data.risks, c.Category)
		catAssessments := assessmentsForCategory(data.assessments, c.Category)
		categories = append(categories, domain.CategoryCompliance{
			Category:        c.Category,
			Status:          controlStatus(c.Score),
			Coverage:        c,
			Gaps:            scoring.IdentifyGaps(catFindings, catRisks, catAssessments),
			Recommendations: scoring.Recommendations(catFindings, catRisks, catAssessments),
		})
	}

	return domain.ComplianceReport{
		ClientID:    clientID,
		Framework:   framework,
		GeneratedAt: r.now(),
		Categories:  categories,
	}, nil
}

func (r *reporter) GetTrendAnalysis(
	ctx context.Context,
	clientID int,
	periodDays int,
) (domain.TrendAnalysis, error) {
	data, err := r.fetch(ctx, clientID)
	if err != nil {
		return domain.TrendAnalysis{}, err
	}
	analysis := trends.Analyze(data.findings, data.risks, data.assessments, periodDays, r.now())
	analysis.ClientID = clientID
	return analysis, nil
}

func controlStatus(score int) domain.ControlStatus {
	switch {
	case score >= effectiveThreshold:
		return domain.ControlEffective
	case score >= needsImprovementThreshold:
		return domain.ControlNeedsImprovement
	default:
		return domain.ControlIneffective
	}
}

func countOpenFindings(findings []domain.Finding) int {
	var n int
	for _, f := range findings {
		if f.Open() {
			n++
		}
	}
	return n
}

func topActiveRisks(allRisks []domain.Risk, n int) []domain.Risk {
	active := make([]domain.Risk, 0, len(allRisks))
	for _, r := range allRisks {
		if r.Status == domain.RiskActive {
			active = append(active, r)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return risks.RiskPriority(active[i].Impact, active[i].Likelihood) >
			risks.RiskPriority(active[j].Impact, active[j].Likelihood)
	})
	if len(active) > n {
		active = active[:n]
	}
	return active
}

func trendWindow(data clientData, now time.Time, days int) domain.TrendWindow {
	cutoff := now.AddDate(0, 0, -days)
	var w domain.TrendWindow
	for _, f := range data.findings {
		if f.CreatedDate.Before(cutoff) {
			continue
		}
		w.NewFindings++
		if f.Status == domain.FindingClosed {
			w.ClosedFindings++
		}
	}
	for _, r := range data.risks {
		if r.LastAssessed.Before(cutoff) {
			continue
		}
		w.NewRisks++
		if r.Status == domain.RiskMitigated {
			w.MitigatedRisks++
		}
	}
	return w
}

func recentActivity(data clientData, n int) []domain.ActivityEntry {
	entries := make([]domain.ActivityEntry, 0,
		len(data.findings)+len(data.risks)+len(data.assessments))
	for _, f := range data.findings {
		entries = append(entries, domain.ActivityEntry{
			Type:   domain.ActivityFinding,
			ID:     f.ID,
			Title:  f.Title,
			Detail: string(f.Severity) + " / " + string(f.Status),
			Date:   f.CreatedDate,
		})
	}
	for _, r := range data.risks {
		entries = append(entries, domain.ActivityEntry{
			Type:   domain.ActivityRisk,
			ID:     r.ID,
			Title:  r.Name,
			Detail: string(r.Impact) + " impact / " + string(r.Status),
			Date:   r.LastAssessed,
		})
	}
	for _, a := range data.assessments {
		entries = append(entries, domain.ActivityEntry{
			Type:   domain.ActivityAssessment,
			ID:     a.ID,
			Title:  a.Type,
			Detail: string(a.Status),
			Date:   a.Date,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

func logUnmappedCategories(
	ctx context.Context,
	findings []domain.Finding,
	risks []domain.Risk,
	assessments []domain.Assessment,
) {
	logger := zerolog.Ctx(ctx)
	seen := make(map[string]bool)
	note := func(raw string) {
		if raw == "" || seen[raw] {
			return
		}
		if _, ok := scoring.CanonicalCategory(raw); !ok {
			seen[raw] = true
			logger.Debug().Str("category", raw).Msg("category not in control taxonomy, using as its own bucket")
		}
	}
	for _, f := range findings {
		note(f.Category)
	}
	for _, r := range risks {
		note(r.Category)
	}
	for _, a := range assessments {
		note(a.Category)
	}
}

func findingsForCategory(findings []domain.Finding, category string) []domain.Finding {
	var res []domain.Finding
	for _, f := range findings {
		if c, _ := scoring.CanonicalCategory(f.Category); c == category {
			res = append(res, f)
		}
	}
	return res
}

func risksForCategory(risks []domain.Risk, category string) []domain.Risk {
	var res []domain.Risk
	for _, r := range risks {
		if c, _ := scoring.CanonicalCategory(r.Category); c == category {
			res = append(res, r)
		}
	}
	return res
}

func assessmentsForCategory(assessments []domain.Assessment, category string) []domain.Assessment {
	var res []domain.Assessment
	for _, a := range assessments {
		if c, _ := scoring.CanonicalCategory(a.Category); c == category {
			res = append(res, a)
		}
	}
	return res
}
