package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grc-tools/posture-atlas/pkg/models/domain"
	"github.com/grc-tools/posture-atlas/pkg/store"
)

var riskColumnNames = []string{
	"id", "client_id", "name", "description", "impact", "likelihood", "status",
	"category", "last_assessed", "source_findings", "business_impact", "treatment",
}

func newMockStore(t *testing.T) (store.RiskStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	s, err := NewRiskStore(db)
	require.NoError(t, err)
	return s, mock
}

func TestNewRiskStore_NilDB(t *testing.T) {
	_, err := NewRiskStore(nil)
	assert.Error(t, err)
}

func TestListRisks(t *testing.T) {
	s, mock := newMockStore(t)
	assessed := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(riskColumnNames).
		AddRow("rsk-1", 1, "Orphaned accounts", "Stale admin access", "high", "medium",
			"active", "Access Control", assessed,
			[]byte(`[{"finding_id":"fnd-1","title":"Stale admin accounts","source_type":"security_assessment","date":"2026-07-01T00:00:00Z"}]`),
			[]byte(`{"financial":"moderate","operational":"","reputational":"","compliance":""}`),
			[]byte(`{"approach":"mitigate","plan":"","status":"in_progress","objectives":["obj-1"]}`)).
		AddRow("rsk-2", 1, "Legacy file shares", "", "medium", "low",
			"mitigated", "Data Protection", assessed, []byte(`[]`), nil, nil)

	mock.ExpectQuery("SELECT (.+) FROM risks").
		WithArgs(1).
		WillReturnRows(rows)

	risks, err := s.ListRisks(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, risks, 2)

	first := risks[0]
	assert.Equal(t, "rsk-1", first.ID)
	assert.Equal(t, domain.LevelHigh, first.Impact)
	assert.Equal(t, domain.RiskActive, first.Status)
	require.Len(t, first.SourceFindings, 1)
	assert.Equal(t, "fnd-1", first.SourceFindings[0].FindingID)
	assert.Equal(t, "moderate", first.BusinessImpact.Financial)
	assert.Equal(t, domain.TreatmentInProgress, first.Treatment.Status)
	assert.Equal(t, []string{"obj-1"}, first.Treatment.Objectives)

	assert.Empty(t, risks[1].SourceFindings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRisk_NotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery("SELECT (.+) FROM risks").
		WithArgs(1, "rsk-missing").
		WillReturnRows(sqlmock.NewRows(riskColumnNames))

	_, err := s.GetRisk(context.Background(), 1, "rsk-missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRisk(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec("INSERT INTO risks").
		WithArgs("rsk-1", 1, "Orphaned accounts", "", "high", "medium", "active",
			"Access Control", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.CreateRisk(context.Background(), domain.Risk{
		ID:         "rsk-1",
		ClientID:   1,
		Name:       "Orphaned accounts",
		Impact:     domain.LevelHigh,
		Likelihood: domain.LevelMedium,
		Status:     domain.RiskActive,
		Category:   "Access Control",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRisk_NotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec("UPDATE risks").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.UpdateRisk(context.Background(), domain.Risk{ID: "rsk-missing", ClientID: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRisk(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec("DELETE FROM risks").
		WithArgs(1, "rsk-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.DeleteRisk(context.Background(), 1, "rsk-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRisk_NotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec("DELETE FROM risks").
		WithArgs(1, "rsk-missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, s.DeleteRisk(context.Background(), 1, "rsk-missing"), domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
