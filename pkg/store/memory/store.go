// Package memory is a mutex-guarded, map-backed implementation of the
// entity stores. Writes are last-write-wins; there are no transactions.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/grc-tools/posture-atlas/pkg/models/domain"
)

type Store struct {
	mu          sync.RWMutex
	assessments map[int]map[string]domain.Assessment
	risks       map[int]map[string]domain.Risk
	objectives  map[int]map[string]domain.Objective
	initiatives map[int]map[string]domain.Initiative
}

func NewStore() *Store {
	return &Store{
		assessments: make(map[int]map[string]domain.Assessment),
		risks:       make(map[int]map[string]domain.Risk),
		objectives:  make(map[int]map[string]domain.Objective),
		initiatives: make(map[int]map[string]domain.Initiative),
	}
}

func (s *Store) ListAssessments(_ context.Context, clientID int) ([]domain.Assessment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.assessments[clientID]), nil
}

func (s *Store) GetAssessment(_ context.Context, clientID int, id string) (domain.Assessment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.assessments[clientID][id]
	if !ok {
		return domain.Assessment{}, domain.NotFound("assessment", id)
	}
	return a, nil
}

func (s *Store) CreateAssessment(_ context.Context, a domain.Assessment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.assessments[a.ClientID] == nil {
		s.assessments[a.ClientID] = make(map[string]domain.Assessment)
	}
	s.assessments[a.ClientID][a.ID] = a
	return nil
}

func (s *Store) UpdateAssessment(_ context.Context, a domain.Assessment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.assessments[a.ClientID][a.ID]; !ok {
		return domain.NotFound("assessment", a.ID)
	}
	s.assessments[a.ClientID][a.ID] = a
	return nil
}

func (s *Store) DeleteAssessment(_ context.Context, clientID int, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.assessments[clientID][id]; !ok {
		return domain.NotFound("assessment", id)
	}
	delete(s.assessments[clientID], id)
	return nil
}

func (s *Store) ListRisks(_ context.Context, clientID int) ([]domain.Risk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	risks := make([]domain.Risk, 0, len(s.risks[clientID]))
	for _, r := range s.risks[clientID] {
		risks = append(risks, r)
	}
	sort.Slice(risks, func(i, j int) bool { return risks[i].ID < risks[j].ID })
	return risks, nil
}

func (s *Store) GetRisk(_ context.Context, clientID int, id string) (domain.Risk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.risks[clientID][id]
	if !ok {
		return domain.Risk{}, domain.NotFound("risk", id)
	}
	return r, nil
}

func (s *Store) CreateRisk(_ context.Context, r domain.Risk) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.risks[r.ClientID] == nil {
		s.risks[r.ClientID] = make(map[string]domain.Risk)
	}
	s.risks[r.ClientID][r.ID] = r
	return nil
}

func (s *Store) UpdateRisk(_ context.Context, r domain.Risk) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.risks[r.ClientID][r.ID]; !ok {
		return domain.NotFound("risk", r.ID)
	}
	s.risks[r.ClientID][r.ID] = r
	return nil
}

func (s *Store) DeleteRisk(_ context.Context, clientID int, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.risks[clientID][id]; !ok {
		return domain.NotFound("risk", id)
	}
	delete(s.risks[clientID], id)
	return nil
}

func (s *Store) ListObjectives(_ context.Context, clientID int) ([]domain.Objective, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	objectives := make([]domain.Objective, 0, len(s.objectives[clientID]))
	for _, o := range s.objectives[clientID] {
		objectives = append(objectives, o)
	}
	sort.Slice(objectives, func(i, j int) bool { return objectives[i].ID < objectives[j].ID })
	return objectives, nil
}

func (s *Store) GetObjective(_ context.Context, clientID int, id string) (domain.Objective, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.objectives[clientID][id]
	if !ok {
		return domain.Objective{}, domain.NotFound("objective", id)
	}
	return o, nil
}

func (s *Store) CreateObjective(_ context.Context, o domain.Objective) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.objectives[o.ClientID] == nil {
		s.objectives[o.ClientID] = make(map[string]domain.Objective)
	}
	s.objectives[o.ClientID][o.ID] = o
	return nil
}

func (s *Store) UpdateObjective(_ context.Context, o domain.Objective) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.objectives[o.ClientID][o.ID]; !ok {
		return domain.NotFound("objective", o.ID)
	}
	s.objectives[o.ClientID][o.ID] = o
	return nil
}

func (s *Store) DeleteObjective(_ context.Context, clientID int, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.objectives[clientID][id]; !ok {
		return domain.NotFound("objective", id)
	}
	delete(s.objectives[clientID], id)
	return nil
}

func (s *Store) ListInitiatives(_ context.Context, clientID int) ([]domain.Initiative, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	initiatives := make([]domain.Initiative, 0, len(s.initiatives[clientID]))
	for _, i := range s.initiatives[clientID] {
		initiatives = append(initiatives, i)
	}
	sort.Slice(initiatives, func(i, j int) bool { return initiatives[i].ID < initiatives[j].ID })
	return initiatives, nil
}

func (s *Store) GetInitiative(_ context.Context, clientID int, id string) (domain.Initiative, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.initiatives[clientID][id]
	if !ok {
		return domain.Initiative{}, domain.NotFound("initiative", id)
	}
	return i, nil
}

func (s *Store) CreateInitiative(_ context.Context, i domain.Initiative) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initiatives[i.ClientID] == nil {
		s.initiatives[i.ClientID] = make(map[string]domain.Initiative)
	}
	s.initiatives[i.ClientID][i.ID] = i
	return nil
}

func (s *Store) UpdateInitiative(_ context.Context, i domain.Initiative) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.initiatives[i.ClientID][i.ID]; !ok {
		return domain.NotFound("initiative", i.ID)
	}
	s.initiatives[i.ClientID][i.ID] = i
	return nil
}

func (s *Store) DeleteInitiative(_ context.Context, clientID int, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.initiatives[clientID][id]; !ok {
		return domain.NotFound("initiative", id)
	}
	delete(s.initiatives[clientID], id)
	return nil
}

// sortedValues orders assessments by date ascending, id as tiebreaker, so
// listings are stable across calls.
func sortedValues(m map[string]domain.Assessment) []domain.Assessment {
	res := make([]domain.Assessment, 0, len(m))
	for _, a := range m {
		res = append(res, a)
	}
	sort.Slice(res, func(i, j int) bool {
		if !res[i].Date.Equal(res[j].Date) {
			return res[i].Date.Before(res[j].Date)
		}
		return res[i].ID < res[j].ID
	})
	return res
}
