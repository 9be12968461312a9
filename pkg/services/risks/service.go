// Package risks exposes the client-scoped risk collection with counting
// statistics and the two risk scoring scales.
package risks

import (
	"context"
	"fmt"
	"sort"

	"github.com/grc-tools/posture-atlas/pkg/models/domain"
	"github.com/grc-tools/posture-atlas/pkg/store"
)

type Service interface {
	ListRisks(ctx context.Context, clientID int) ([]domain.Risk, error)

	// GetRiskStats tallies the client's risks by impact, likelihood,
	// status, treatment stage and provenance. Buckets are zero-filled.
	GetRiskStats(ctx context.Context, clientID int) (domain.RiskStats, error)

	// TopRisks returns the client's active risks ordered by priority
	// descending, at most n entries.
	TopRisks(ctx context.Context, clientID int, n int) ([]domain.Risk, error)
}

type service struct {
	risks store.RiskStore
}

func NewService(risks store.RiskStore) Service {
	return &service{risks: risks}
}

func (s *service) ListRisks(ctx context.Context, clientID int) ([]domain.Risk, error) {
	if clientID == 0 {
		return nil, domain.MissingField("client id")
	}
	return s.risks.ListRisks(ctx, clientID)
}

func (s *service) GetRiskStats(ctx context.Context, clientID int) (domain.RiskStats, error) {
	risks, err := s.ListRisks(ctx, clientID)
	if err != nil {
		return domain.RiskStats{}, fmt.Errorf("list risks: %w", err)
	}

	stats := domain.RiskStats{
		Total:        len(risks),
		ByImpact:     make(map[domain.Level]int, len(domain.AllLevels())),
		ByLikelihood: make(map[domain.Level]int, len(domain.AllLevels())),
		ByStatus:     make(map[domain.RiskStatus]int, len(domain.AllRiskStatuses())),
		ByTreatment:  make(map[domain.TreatmentStatus]int, len(domain.AllTreatmentStatuses())),
		SourceAnalysis: domain.RiskSourceAnalysis{
			BySourceType: make(map[domain.SourceType]int),
		},
	}
	for _, l := range domain.AllLevels() {
		stats.ByImpact[l] = 0
		stats.ByLikelihood[l] = 0
	}
	for _, st := range domain.AllRiskStatuses() {
		stats.ByStatus[st] = 0
	}
	for _, ts := range domain.AllTreatmentStatuses() {
		stats.ByTreatment[ts] = 0
	}

	for _, r := range risks {
		stats.ByImpact[r.Impact]++
		stats.ByLikelihood[r.Likelihood]++
		stats.ByStatus[r.Status]++
		stats.ByTreatment[r.Treatment.Status]++
		if r.FromFindings() {
			stats.SourceAnalysis.FromFindings++
			for _, sf := range r.SourceFindings {
				stats.SourceAnalysis.BySourceType[sf.SourceType]++
			}
		} else {
			stats.SourceAnalysis.ManuallyIdentified++
		}
	}
	return stats, nil
}

func (s *service) TopRisks(ctx context.Context, clientID int, n int) ([]domain.Risk, error) {
	risks, err := s.ListRisks(ctx, clientID)
	if err != nil {
		return nil, err
	}

	active := make([]domain.Risk, 0, len(risks))
	for _, r := range risks {
		if r.Status == domain.RiskActive {
			active = append(active, r)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return RiskPriority(active[i].Impact, active[i].Likelihood) >
			RiskPriority(active[j].Impact, active[j].Likelihood)
	})
	if len(active) > n {
		active = active[:n]
	}
	return active, nil
}
