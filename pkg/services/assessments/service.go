// Package assessments exposes the client-scoped assessment collection.
package assessments

import (
	"context"

	"github.com/grc-tools/posture-atlas/pkg/models/domain"
	"github.com/grc-tools/posture-atlas/pkg/store"
)

type Service interface {
	ListAssessments(ctx context.Context, clientID int) ([]domain.Assessment, error)
}

type service struct {
	assessments store.AssessmentStore
}

func NewService(assessments store.AssessmentStore) Service {
	return &service{assessments: assessments}
}

func (s *service) ListAssessments(ctx context.Context, clientID int) ([]domain.Assessment, error) {
	if clientID == 0 {
		return nil, domain.MissingField("client id")
	}
	return s.assessments.ListAssessments(ctx, clientID)
}

// CompletedAverage is the arithmetic mean score of completed assessments,
// 0 when none are completed.
func CompletedAverage(assessments []domain.Assessment) float64 {
	var sum, count int
	for _, a := range assessments {
		if a.Status == domain.AssessmentCompleted {
			sum += a.Score
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}
