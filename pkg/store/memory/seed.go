package memory

import (
	"context"
	"time"

	"github.com/grc-tools/posture-atlas/pkg/models/domain"
)

// SeedSampleData loads a small, self-consistent demo data set for one client.
// Used by mock-mode deployments so dashboards have something to show.
func SeedSampleData(s *Store, clientID int) error {
	ctx := context.Background()
	now := time.Now()

	assessments := []domain.Assessment{
		{
			ID:       "asm-001",
			ClientID: clientID,
			Date:     now.AddDate(0, 0, -45),
			Type:     "security posture review",
			Status:   domain.AssessmentCompleted,
			Category: "Access Control",
			Score:    72,
			GeneratedFindings: []domain.Finding{
				{
					ID:       "fnd-001",
					Title:    "Stale admin accounts not deprovisioned",
					Severity: domain.SeverityHigh,
					Status:   domain.FindingOpen,
					Category: "Access Control",
					Tags:     []string{"iam", "offboarding"},
				},
				{
					ID:       "fnd-002",
					Title:    "Backups unencrypted at rest",
					Severity: domain.SeverityCritical,
					Status:   domain.FindingInProgress,
					Category: "Data Protection",
					Tags:     []string{"encryption"},
				},
			},
		},
		{
			ID:       "asm-002",
			ClientID: clientID,
			Date:     now.AddDate(0, 0, -12),
			Type:     "vulnerability assessment",
			Status:   domain.AssessmentCompleted,
			Category: "Vulnerability Management",
			Score:    84,
			GeneratedFindings: []domain.Finding{
				{
					ID:       "fnd-003",
					Title:    "Outdated TLS configuration on public endpoints",
					Severity: domain.SeverityMedium,
					Status:   domain.FindingClosed,
					Category: "Vulnerability Management",
					Tags:     []string{"tls"},
				},
			},
		},
	}
	for _, a := range assessments {
		if err := s.CreateAssessment(ctx, a); err != nil {
			return err
		}
	}

	risks := []domain.Risk{
		{
			ID:           "rsk-001",
			ClientID:     clientID,
			Name:         "Unauthorized access through orphaned accounts",
			Impact:       domain.LevelHigh,
			Likelihood:   domain.LevelMedium,
			Status:       domain.RiskActive,
			Category:     "Access Control",
			LastAssessed: now.AddDate(0, 0, -30),
			SourceFindings: []domain.SourceFinding{{
				FindingID:  "fnd-001",
				Title:      "Stale admin accounts not deprovisioned",
				SourceType: domain.SourceSecurityAssessment,
				Date:       now.AddDate(0, 0, -45),
			}},
			Treatment: domain.Treatment{
				Approach: "mitigate",
				Status:   domain.TreatmentInProgress,
			},
		},
		{
			ID:           "rsk-002",
			ClientID:     clientID,
			Name:         "Data exposure from legacy file shares",
			Impact:       domain.LevelMedium,
			Likelihood:   domain.LevelLow,
			Status:       domain.RiskMitigated,
			Category:     "Data Protection",
			LastAssessed: now.AddDate(0, 0, -8),
			Treatment: domain.Treatment{
				Approach: "mitigate",
				Status:   domain.TreatmentCompleted,
			},
		},
	}
	for _, r := range risks {
		if err := s.CreateRisk(ctx, r); err != nil {
			return err
		}
	}

	objective := domain.Objective{
		ID:       "obj-001",
		ClientID: clientID,
		Name:     "Quarterly access reviews for privileged accounts",
		Priority: domain.LevelHigh,
		Status:   "in_progress",
		DueDate:  now.AddDate(0, 2, 0),
		Progress: 40,
		RiskID:   "rsk-001",
	}
	if err := s.CreateObjective(ctx, objective); err != nil {
		return err
	}

	initiative := domain.Initiative{
		ID:          "ini-001",
		ClientID:    clientID,
		Name:        "Identity lifecycle automation",
		Phase:       "execution",
		Status:      domain.InitiativeInProgress,
		ObjectiveID: "obj-001",
		Milestones: []domain.Milestone{
			{ID: "ms-001", Name: "Connect HR feed", Completed: true, DueDate: now.AddDate(0, -1, 0)},
			{ID: "ms-002", Name: "Automate deprovisioning", Completed: false, DueDate: now.AddDate(0, 1, 0)},
		},
	}
	return s.CreateInitiative(ctx, initiative)
}
