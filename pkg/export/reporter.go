package export

import (
	"fmt"
	"io"
	"os"

	"github.com/grc-tools/posture-atlas/pkg/models/domain"
)

// Reporter renders report payloads for the CLI.
type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (r *Reporter) HandleDashboard(d domain.ExecutiveDashboard) error {
	fmt.Fprintf(r.writer, "Executive dashboard for client %d (generated %s)\n",
		d.ClientID, d.GeneratedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(r.writer, "\nOverall security score: %d\n", d.Summary.OverallScore)
	fmt.Fprintf(r.writer, "  findings %d | risks %d | assessments %.1f\n",
		d.Summary.FindingScore, d.Summary.RiskScore, d.Summary.AssessmentScore)
	fmt.Fprintf(r.writer, "  %d findings (%d open), %d risks (%d active), %d assessments\n",
		d.Summary.TotalFindings, d.Summary.OpenFindings,
		d.Summary.TotalRisks, d.Summary.ActiveRisks, d.Summary.TotalAssessments)

	fmt.Fprintf(r.writer, "\nControl coverage:\n")
	for _, c := range d.Compliance {
		fmt.Fprintf(r.writer, "  %-28s %3d (findings %d, risks %d, assessments %d)\n",
			c.Category, c.Score, c.FindingScore, c.RiskScore, c.AssessmentScore)
	}

	if len(d.TopRisks) > 0 {
		fmt.Fprintf(r.writer, "\nTop risks:\n")
		for _, risk := range d.TopRisks {
			fmt.Fprintf(r.writer, "  [%s/%s] %s\n", risk.Impact, risk.Likelihood, risk.Name)
		}
	}
	return nil
}

func (r *Reporter) HandleCompliance(report domain.ComplianceReport) error {
	fmt.Fprintf(r.writer, "Compliance report for client %d", report.ClientID)
	if report.Framework != "" {
		fmt.Fprintf(r.writer, " (%s)", report.Framework)
	}
	fmt.Fprintln(r.writer)
	for _, c := range report.Categories {
		fmt.Fprintf(r.writer, "\n%s: %s (score %d)\n", c.Category, c.Status, c.Coverage.Score)
		for _, g := range c.Gaps {
			fmt.Fprintf(r.writer, "  gap: %s\n", g.Description)
		}
		for _, rec := range c.Recommendations {
			fmt.Fprintf(r.writer, "  [%s] %s: %s\n", rec.Priority, rec.Title, rec.Description)
		}
	}
	return nil
}
