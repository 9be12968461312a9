package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grc-tools/posture-atlas/pkg/models/domain"
)

func TestAssessmentLifecycle(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	a := domain.Assessment{
		ID:       "asm-1",
		ClientID: 1,
		Date:     time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		Status:   domain.AssessmentCompleted,
		Score:    80,
	}
	require.NoError(t, s.CreateAssessment(ctx, a))

	got, err := s.GetAssessment(ctx, 1, "asm-1")
	require.NoError(t, err)
	assert.Equal(t, a, got)

	a.Score = 85
	require.NoError(t, s.UpdateAssessment(ctx, a))
	got, err = s.GetAssessment(ctx, 1, "asm-1")
	require.NoError(t, err)
	assert.Equal(t, 85, got.Score)

	require.NoError(t, s.DeleteAssessment(ctx, 1, "asm-1"))
	_, err = s.GetAssessment(ctx, 1, "asm-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListAssessments_SortedByDate(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	day := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.CreateAssessment(ctx, domain.Assessment{ID: "asm-b", ClientID: 1, Date: day.AddDate(0, 0, 5)}))
	require.NoError(t, s.CreateAssessment(ctx, domain.Assessment{ID: "asm-c", ClientID: 1, Date: day}))
	require.NoError(t, s.CreateAssessment(ctx, domain.Assessment{ID: "asm-a", ClientID: 1, Date: day}))

	list, err := s.ListAssessments(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "asm-a", list[0].ID)
	assert.Equal(t, "asm-c", list[1].ID)
	assert.Equal(t, "asm-b", list[2].ID)
}

func TestRiskLifecycle(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	r := domain.Risk{ID: "rsk-1", ClientID: 1, Name: "Exposed storage bucket", Status: domain.RiskActive}
	require.NoError(t, s.CreateRisk(ctx, r))

	got, err := s.GetRisk(ctx, 1, "rsk-1")
	require.NoError(t, err)
	assert.Equal(t, "Exposed storage bucket", got.Name)

	r.Status = domain.RiskMitigated
	require.NoError(t, s.UpdateRisk(ctx, r))
	got, err = s.GetRisk(ctx, 1, "rsk-1")
	require.NoError(t, err)
	assert.Equal(t, domain.RiskMitigated, got.Status)

	require.NoError(t, s.DeleteRisk(ctx, 1, "rsk-1"))
	assert.ErrorIs(t, s.DeleteRisk(ctx, 1, "rsk-1"), domain.ErrNotFound)
}

func TestUpdateMissingRecordsReturnNotFound(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	assert.ErrorIs(t, s.UpdateAssessment(ctx, domain.Assessment{ID: "x", ClientID: 1}), domain.ErrNotFound)
	assert.ErrorIs(t, s.UpdateRisk(ctx, domain.Risk{ID: "x", ClientID: 1}), domain.ErrNotFound)
	assert.ErrorIs(t, s.UpdateObjective(ctx, domain.Objective{ID: "x", ClientID: 1}), domain.ErrNotFound)
	assert.ErrorIs(t, s.UpdateInitiative(ctx, domain.Initiative{ID: "x", ClientID: 1}), domain.ErrNotFound)
}

func TestClientIsolation(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	require.NoError(t, s.CreateRisk(ctx, domain.Risk{ID: "rsk-1", ClientID: 1}))
	require.NoError(t, s.CreateRisk(ctx, domain.Risk{ID: "rsk-2", ClientID: 2}))

	one, err := s.ListRisks(ctx, 1)
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, "rsk-1", one[0].ID)

	_, err = s.GetRisk(ctx, 1, "rsk-2")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListForUnknownClientIsEmpty(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	risks, err := s.ListRisks(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, risks)

	objectives, err := s.ListObjectives(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, objectives)
}

func TestSeedSampleData(t *testing.T) {
	s := NewStore()
	require.NoError(t, SeedSampleData(s, 5))

	ctx := context.Background()
	assessments, err := s.ListAssessments(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, assessments, 2)

	risks, err := s.ListRisks(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, risks, 2)

	initiatives, err := s.ListInitiatives(ctx, 5)
	require.NoError(t, err)
	require.Len(t, initiatives, 1)
	assert.False(t, initiatives[0].MilestonesComplete())
}
