// Package grc holds the HTTP handlers for the posture API.
package grc

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/grc-tools/posture-atlas/pkg/adapters"
	"github.com/grc-tools/posture-atlas/pkg/models/api"
	"github.com/grc-tools/posture-atlas/pkg/models/domain"
	"github.com/grc-tools/posture-atlas/pkg/services/findings"
	"github.com/grc-tools/posture-atlas/pkg/services/initiatives"
	"github.com/grc-tools/posture-atlas/pkg/services/objectives"
	"github.com/grc-tools/posture-atlas/pkg/services/registry"
	"github.com/grc-tools/posture-atlas/pkg/services/reporting"
	"github.com/grc-tools/posture-atlas/pkg/services/risks"
	"github.com/grc-tools/posture-atlas/pkg/store"
)

type Handler struct {
	reporter    reporting.Reporter
	findings    findings.Aggregator
	risks       risks.Service
	stats       reporting.StatsProvider
	objectives  objectives.Service
	initiatives initiatives.Service
	registry    registry.Registry
	riskStore   store.RiskStore
	assessments store.AssessmentStore
}

type Dependencies struct {
	Reporter    reporting.Reporter
	Findings    findings.Aggregator
	Risks       risks.Service
	Stats       reporting.StatsProvider
	Objectives  objectives.Service
	Initiatives initiatives.Service
	Registry    registry.Registry
	RiskStore   store.RiskStore
	Assessments store.AssessmentStore
}

func NewHandler(deps Dependencies) *Handler {
	return &Handler{
		reporter:    deps.Reporter,
		findings:    deps.Findings,
		risks:       deps.Risks,
		stats:       deps.Stats,
		objectives:  deps.Objectives,
		initiatives: deps.Initiatives,
		registry:    deps.Registry,
		riskStore:   deps.RiskStore,
		assessments: deps.Assessments,
	}
}

func (h *Handler) ListClients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	clients, err := h.registry.GetClients(ctx)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, clients)
}

func (h *Handler) ListFindings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	clientID, err := clientID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	filters := domain.FindingFilters{
		SourceType: domain.SourceType(r.URL.Query().Get("source_type")),
		Severity:   domain.Severity(r.URL.Query().Get("severity")),
		Status:     domain.FindingStatus(r.URL.Query().Get("status")),
	}
	if tags, ok := r.URL.Query()["tag"]; ok {
		filters.Tags = tags
	}

	result, err := h.findings.GetFindings(ctx, clientID, filters)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, adapters.MapFindingsDomainToApi(result))
}

func (h *Handler) GetFindingMetrics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	clientID, err := clientID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	metrics, err := h.stats.GetFindingMetrics(ctx, clientID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, adapters.MapFindingMetricsDomainToApi(metrics))
}

func (h *Handler) PromoteFinding(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	clientID, err := clientID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	assessmentID := chi.URLParam(r, "assessmentID")
	findingID := chi.URLParam(r, "findingID")

	risk, err := h.findings.PromoteToRisk(ctx, clientID, assessmentID, findingID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, r, adapters.MapRiskDomainToApi(risk))
}

func (h *Handler) ListRisks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	clientID, err := clientID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	result, err := h.risks.ListRisks(ctx, clientID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, adapters.MapRisksDomainToApi(result))
}

func (h *Handler) GetRiskStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	clientID, err := clientID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	stats, err := h.stats.GetRiskStats(ctx, clientID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, adapters.MapRiskStatsDomainToApi(stats))
}

func (h *Handler) CreateRisk(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	clientID, err := clientID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var payload api.Risk
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	risk := adapters.MapRiskApiToDomain(payload)
	risk.ClientID = clientID
	if risk.Name == "" {
		writeError(w, r, domain.MissingField("name"))
		return
	}
	if risk.ID == "" {
		risk.ID = newID()
	}
	if risk.Status == "" {
		risk.Status = domain.RiskActive
	}
	if err := h.riskStore.CreateRisk(ctx, risk); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, r, adapters.MapRiskDomainToApi(risk))
}

func (h *Handler) UpdateRisk(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	clientID, err := clientID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var payload api.Risk
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	risk := adapters.MapRiskApiToDomain(payload)
	risk.ClientID = clientID
	risk.ID = chi.URLParam(r, "riskID")
	if err := h.riskStore.UpdateRisk(ctx, risk); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, adapters.MapRiskDomainToApi(risk))
}

func (h *Handler) DeleteRisk(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	clientID, err := clientID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.riskStore.DeleteRisk(ctx, clientID, chi.URLParam(r, "riskID")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListAssessments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	clientID, err := clientID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	result, err := h.assessments.ListAssessments(ctx, clientID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, adapters.MapAssessmentsDomainToApi(result))
}

func (h *Handler) CreateAssessment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	clientID, err := clientID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var payload api.Assessment
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	assessment := adapters.MapAssessmentApiToDomain(payload)
	assessment.ClientID = clientID
	if assessment.ID == "" {
		assessment.ID = newID()
	}
	if err := h.assessments.CreateAssessment(ctx, assessment); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, r, adapters.MapAssessmentDomainToApi(assessment))
}

func (h *Handler) ListObjectives(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	clientID, err := clientID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	result, err := h.objectives.ListObjectives(ctx, clientID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	response := make([]api.Objective, 0, len(result))
	for _, o := range result {
		response = append(response, adapters.MapObjectiveDomainToApi(o))
	}
	writeJSON(w, r, response)
}

func (h *Handler) CreateObjectiveFromRisk(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	clientID, err := clientID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	objective, err := h.objectives.CreateFromRisk(ctx, clientID, chi.URLParam(r, "riskID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, r, adapters.MapObjectiveDomainToApi(objective))
}

func (h *Handler) ListInitiatives(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	clientID, err := clientID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	result, err := h.initiatives.ListInitiatives(ctx, clientID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	response := make([]api.Initiative, 0, len(result))
	for _, i := range result {
		response = append(response, adapters.MapInitiativeDomainToApi(i))
	}
	writeJSON(w, r, response)
}

type milestoneUpdate struct {
	Completed bool `json:"completed"`
}

func (h *Handler) UpdateMilestone(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	clientID, err := clientID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var payload milestoneUpdate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	initiative, err := h.initiatives.SetMilestoneCompleted(ctx, clientID,
		chi.URLParam(r, "initiativeID"), chi.URLParam(r, "milestoneID"), payload.Completed)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, adapters.MapInitiativeDomainToApi(initiative))
}

func (h *Handler) GetExecutiveDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	clientID, err := clientID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	dashboard, err := h.reporter.GetExecutiveDashboard(ctx, clientID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, adapters.MapExecutiveDashboardDomainToApi(dashboard))
}

func (h *Handler) GetComplianceReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	clientID, err := clientID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	framework := r.URL.Query().Get("framework")
	report, err := h.reporter.GetComplianceReport(ctx, clientID, framework)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, adapters.MapComplianceReportDomainToApi(report))
}

func (h *Handler) GetTrendAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	clientID, err := clientID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	period := 0
	if raw := r.URL.Query().Get("period"); raw != "" {
		period, err = strconv.Atoi(raw)
		if err != nil || period < 0 {
			http.Error(w, "invalid 'period'. Expected a positive number of days", http.StatusBadRequest)
			return
		}
	}
	analysis, err := h.reporter.GetTrendAnalysis(ctx, clientID, period)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, adapters.MapTrendAnalysisDomainToApi(analysis))
}

func newID() string {
	return uuid.NewString()
}

func clientID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "clientID")
	if raw == "" {
		return 0, domain.MissingField("client id")
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, domain.MissingField("client id")
	}
	return id, nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Str("path", r.URL.Path).
			Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	logger := zerolog.Ctx(r.Context())
	switch {
	case errors.Is(err, domain.ErrMissingField):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
