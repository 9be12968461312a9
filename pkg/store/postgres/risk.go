// Package postgres backs the risk collection with PostgreSQL. Nested
// structures (source findings, business impact, treatment) live in JSONB
// columns; everything queried by the aggregators is a plain column.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/grc-tools/posture-atlas/pkg/models/domain"
	"github.com/grc-tools/posture-atlas/pkg/store"
)

type riskStore struct {
	db *sql.DB
}

// Open connects to the database behind the pgx stdlib driver.
func Open(url string) (*sql.DB, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}

func NewRiskStore(db *sql.DB) (store.RiskStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &riskStore{db: db}, nil
}

const riskColumns = `id, client_id, name, description, impact, likelihood, status,
	category, last_assessed, source_findings, business_impact, treatment`

func (s *riskStore) ListRisks(ctx context.Context, clientID int) ([]domain.Risk, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+riskColumns+`
		FROM risks
		WHERE client_id = $1
		ORDER BY id`, clientID)
	if err != nil {
		return nil, fmt.Errorf("list risks: %w", err)
	}
	defer rows.Close()

	var risks []domain.Risk
	for rows.Next() {
		r, err := scanRisk(rows)
		if err != nil {
			return nil, err
		}
		risks = append(risks, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list risks: %w", err)
	}
	return risks, nil
}

func (s *riskStore) GetRisk(ctx context.Context, clientID int, id string) (domain.Risk, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+riskColumns+`
		FROM risks
		WHERE client_id = $1 AND id = $2`, clientID, id)
	r, err := scanRisk(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Risk{}, domain.NotFound("risk", id)
	}
	if err != nil {
		return domain.Risk{}, err
	}
	return r, nil
}

func (s *riskStore) CreateRisk(ctx context.Context, r domain.Risk) error {
	sourceFindings, businessImpact, treatment, err := marshalNested(r)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO risks (`+riskColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		r.ID, r.ClientID, r.Name, r.Description, string(r.Impact), string(r.Likelihood),
		string(r.Status), r.Category, r.LastAssessed, sourceFindings, businessImpact, treatment)
	if err != nil {
		return fmt.Errorf("create risk: %w", err)
	}
	return nil
}

func (s *riskStore) UpdateRisk(ctx context.Context, r domain.Risk) error {
	sourceFindings, businessImpact, treatment, err := marshalNested(r)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `
		UPDATE risks
		SET name = $3, description = $4, impact = $5, likelihood = $6, status = $7,
			category = $8, last_assessed = $9, source_findings = $10,
			business_impact = $11, treatment = $12
		WHERE client_id = $1 AND id = $2`,
		r.ClientID, r.ID, r.Name, r.Description, string(r.Impact), string(r.Likelihood),
		string(r.Status), r.Category, r.LastAssessed, sourceFindings, businessImpact, treatment)
	if err != nil {
		return fmt.Errorf("update risk: %w", err)
	}
	return requireAffected(res, "risk", r.ID)
}

func (s *riskStore) DeleteRisk(ctx context.Context, clientID int, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM risks WHERE client_id = $1 AND id = $2`, clientID, id)
	if err != nil {
		return fmt.Errorf("delete risk: %w", err)
	}
	return requireAffected(res, "risk", id)
}

func marshalNested(r domain.Risk) (sourceFindings, businessImpact, treatment []byte, err error) {
	if sourceFindings, err = json.Marshal(r.SourceFindings); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal source findings: %w", err)
	}
	if businessImpact, err = json.Marshal(r.BusinessImpact); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal business impact: %w", err)
	}
	if treatment, err = json.Marshal(r.Treatment); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal treatment: %w", err)
	}
	return sourceFindings, businessImpact, treatment, nil
}

func requireAffected(res sql.Result, kind, id string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.NotFound(kind, id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRisk(row rowScanner) (domain.Risk, error) {
	var (
		r              domain.Risk
		impact         string
		likelihood     string
		status         string
		lastAssessed   time.Time
		sourceFindings []byte
		businessImpact []byte
		treatment      []byte
	)
	err := row.Scan(&r.ID, &r.ClientID, &r.Name, &r.Description, &impact, &likelihood,
		&status, &r.Category, &lastAssessed, &sourceFindings, &businessImpact, &treatment)
	if err != nil {
		return domain.Risk{}, err
	}
	r.Impact = domain.Level(impact)
	r.Likelihood = domain.Level(likelihood)
	r.Status = domain.RiskStatus(status)
	r.LastAssessed = lastAssessed
	if len(sourceFindings) > 0 {
		if err := json.Unmarshal(sourceFindings, &r.SourceFindings); err != nil {
			return domain.Risk{}, fmt.Errorf("unmarshal source findings: %w", err)
		}
	}
	if len(businessImpact) > 0 {
		if err := json.Unmarshal(businessImpact, &r.BusinessImpact); err != nil {
			return domain.Risk{}, fmt.Errorf("unmarshal business impact: %w", err)
		}
	}
	if len(treatment) > 0 {
		if err := json.Unmarshal(treatment, &r.Treatment); err != nil {
			return domain.Risk{}, fmt.Errorf("unmarshal treatment: %w", err)
		}
	}
	return r, nil
}
