// Package chi wires the query, health, and metrics endpoints onto a chi
// router and owns the JSON projection of domain records.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/faunadex/faunadex/internal/domain"
	"github.com/faunadex/faunadex/internal/logger"
	"github.com/faunadex/faunadex/internal/metrics"
	healthuc "github.com/faunadex/faunadex/internal/usecase/health"
	queryuc "github.com/faunadex/faunadex/internal/usecase/query"
)

// Server exposes the query pipeline over HTTP.
type Server struct {
	query      *queryuc.Service
	health     *healthuc.Service
	collection string
	logger     *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(query *queryuc.Service, health *healthuc.Service, collection string, logger *zap.Logger) *Server {
	return &Server{query: query, health: health, collection: collection, logger: logger}
}

// Routes registers all handlers on r.
func (s *Server) Routes(r chi.Router) {
	r.Post("/query", s.handleQuery)
	r.Get("/health", s.handleHealth)
	r.Get("/dbhealth", s.handleDBHealth)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
}

type queryRequest struct {
	Query string `json:"query"`
}

type animalDTO struct {
	Creature     string  `json:"creature"`
	IsWild       string  `json:"is_wild,omitempty"`
	Trainability float64 `json:"trainability"`
	Endangerment float64 `json:"endangered"`
}

type answerDTO struct {
	Intent  string      `json:"intent"`
	Animals []animalDTO `json:"animals"`
	Message string      `json:"message"`
}

// handleQuery handles POST /query.
func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.Query == "" {
		writeError(w, http.StatusBadRequest, domain.ErrInvalidQuery.Error())
		return
	}

	log := logger.FromContext(r.Context())

	answer, err := s.query.Process(r.Context(), req.Query)
	switch {
	case err == nil:
		// ok

	case errors.Is(err, domain.ErrBackendUnavailable):
		// Legacy contract: callers expect an always-200 answer, so a backend
		// failure degrades to the intent's empty result set. The failure is
		// still visible in logs and metrics.
		log.Error("catalog backend failure, degrading to empty answer",
			zap.String("query", req.Query),
			zap.Error(err),
		)
		metrics.DegradedQueriesTotal.Inc()
		answer = queryuc.DegradedAnswer(req.Query)

	case errors.Is(err, domain.ErrMissingScore):
		log.Error("catalog data integrity fault", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return

	default:
		log.Error("query processing failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Error processing query")
		return
	}

	metrics.QueriesTotal.WithLabelValues(answer.Intent.Label()).Inc()
	writeJSON(w, http.StatusOK, answerToDTO(answer))
}

// handleHealth handles GET /health.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"message": "Animal query service is running",
	})
}

// handleDBHealth handles GET /dbhealth.
func (s *Server) handleDBHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	if report.Status != healthuc.Healthy {
		body := map[string]string{"status": string(report.Status)}
		if report.Err != nil {
			body["error"] = report.Err.Error()
		}
		writeJSON(w, http.StatusServiceUnavailable, body)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":     string(report.Status),
		"collection": s.collection,
	})
}

// answerToDTO projects records per intent: the wildness attribute is exposed
// only for the full-catalog views, matching the wire contract.
func answerToDTO(a domain.Answer) answerDTO {
	includeWildness := a.Intent == domain.AllAnimals || a.Intent == domain.GeneralSearch

	animals := lo.Map(a.Animals, func(rec domain.Animal, _ int) animalDTO {
		dto := animalDTO{
			Creature:     rec.Creature,
			Trainability: rec.Trainability,
			Endangerment: rec.Endangerment,
		}
		if includeWildness {
			dto.IsWild = string(rec.Wildness)
		}
		return dto
	})
	if animals == nil {
		animals = []animalDTO{}
	}

	return answerDTO{
		Intent:  a.Intent.Label(),
		Animals: animals,
		Message: a.Message,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
