// Package chi exposes the workbench over HTTP.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/weaviq/internal/domain"
	collectionuc "github.com/kailas-cloud/weaviq/internal/usecase/collection"
	healthuc "github.com/kailas-cloud/weaviq/internal/usecase/health"
	opsuc "github.com/kailas-cloud/weaviq/internal/usecase/ops"
	queryuc "github.com/kailas-cloud/weaviq/internal/usecase/query"
	templateuc "github.com/kailas-cloud/weaviq/internal/usecase/template"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server is the HTTP API over the workbench use cases.
type Server struct {
	templates     *templateuc.Service
	queries       *queryuc.Service
	collections   *collectionuc.Service
	ops           *opsuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler

	metricsHandler http.Handler
}

// NewServer creates an HTTP API server.
func NewServer(
	templates *templateuc.Service,
	queries *queryuc.Service,
	collections *collectionuc.Service,
	ops *opsuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		templates:   templates,
		queries:     queries,
		collections: collections,
		ops:         ops,
		health:      health,
		logger:      logger,

		metricsHandler: promhttp.Handler(),
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, codeNotFound),
		sentinelHandler(domain.ErrAlreadyExists, http.StatusConflict, codeAlreadyExists),
		sentinelHandler(domain.ErrInvalidName, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrInvalidQuery, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrWeaviateUnavailable, http.StatusBadGateway, codeUpstreamUnavailable),
		sentinelHandler(domain.ErrEmbeddingProviderError, http.StatusBadGateway, codeEmbeddingProviderError),
	}
	return s
}

// Routes mounts all API routes on the router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/templates", s.ListTemplates)
	r.Post("/generate", s.GenerateQuery)

	r.Post("/queries/validate", s.ValidateQuery)
	r.Post("/queries/run", s.RunQuery)

	r.Get("/collections", s.ListCollections)
	r.Get("/collections/{name}", s.GetCollection)
	r.Post("/collections/validate-name", s.ValidateCollectionName)

	r.Get("/aliases", s.ListAliases)
	r.Post("/aliases", s.CreateAlias)
	r.Delete("/aliases/{alias}", s.DeleteAlias)

	r.Post("/backups/{backend}", s.CreateBackup)
	r.Get("/backups/{backend}/{id}", s.GetBackupStatus)

	r.Get("/healthz", s.Healthz)
	r.Get("/metrics", s.Metrics)
}

// ListTemplates handles GET /templates.
func (s *Server) ListTemplates(w http.ResponseWriter, _ *http.Request) {
	entries := s.templates.Catalog()
	out := make([]templateEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, templateEntry{
			Name:        e.Name,
			Description: e.Description,
			Shape:       string(e.Shape),
		})
	}
	writeJSON(w, http.StatusOK, templateList{Templates: out})
}

// GenerateQuery handles POST /generate.
func (s *Server) GenerateQuery(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.Template == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "Template name or query text is required")
		return
	}
	if req.Collection == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "Collection name is required")
		return
	}

	query := s.templates.Generate(r.Context(), req.Template, req.Collection, req.Limit, req.Config.toDomain())
	writeJSON(w, http.StatusOK, generateResponse{Query: query})
}

// ValidateQuery handles POST /queries/validate.
func (s *Server) ValidateQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	v := s.queries.Validate(req.Query)
	writeJSON(w, http.StatusOK, validationResponse{
		Valid:     v.Valid,
		Sanitized: v.Sanitized,
		Errors:    v.Errors,
	})
}

// RunQuery handles POST /queries/run.
func (s *Server) RunQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	resp, err := s.queries.Run(r.Context(), req.Query)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	out := runResponse{Data: resp.Data}
	for _, e := range resp.Errors {
		out.Errors = append(out.Errors, graphQLError{Message: e.Message, Path: e.Path})
	}
	writeJSON(w, http.StatusOK, out)
}

// ListCollections handles GET /collections.
func (s *Server) ListCollections(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.collections.List(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	out := make([]collectionSummary, 0, len(summaries))
	for _, c := range summaries {
		out = append(out, collectionSummary{
			Name:          c.Name,
			Description:   c.Description,
			PropertyCount: c.PropertyCount,
			Vectorized:    c.Vectorized,
		})
	}
	writeJSON(w, http.StatusOK, collectionList{Collections: out})
}

// GetCollection handles GET /collections/{name}.
func (s *Server) GetCollection(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	class, err := s.collections.Get(r.Context(), name)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, class)
}

// ValidateCollectionName handles POST /collections/validate-name.
func (s *Server) ValidateCollectionName(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	v := s.collections.ValidateName(req.Name)
	writeJSON(w, http.StatusOK, nameValidationResponse{Valid: v.Valid, Error: v.Error})
}

// ListAliases handles GET /aliases.
func (s *Server) ListAliases(w http.ResponseWriter, r *http.Request) {
	aliases, err := s.ops.ListAliases(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	out := make([]aliasEntry, 0, len(aliases))
	for _, a := range aliases {
		out = append(out, aliasEntry{Alias: a.Alias, Class: a.Class})
	}
	writeJSON(w, http.StatusOK, aliasList{Aliases: out})
}

// CreateAlias handles POST /aliases.
func (s *Server) CreateAlias(w http.ResponseWriter, r *http.Request) {
	var req aliasEntry
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.ops.CreateAlias(r.Context(), req.Alias, req.Class); err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, req)
}

// DeleteAlias handles DELETE /aliases/{alias}.
func (s *Server) DeleteAlias(w http.ResponseWriter, r *http.Request) {
	alias := chi.URLParam(r, "alias")

	if err := s.ops.DeleteAlias(r.Context(), alias); err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateBackup handles POST /backups/{backend}.
func (s *Server) CreateBackup(w http.ResponseWriter, r *http.Request) {
	backend := chi.URLParam(r, "backend")

	var req backupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	status, err := s.ops.CreateBackup(r.Context(), backend, req.ID, req.Include)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusAccepted, backupStatusResponse{
		ID:     status.ID,
		Path:   status.Path,
		Status: status.Status,
		Error:  status.Error,
	})
}

// GetBackupStatus handles GET /backups/{backend}/{id}.
func (s *Server) GetBackupStatus(w http.ResponseWriter, r *http.Request) {
	backend := chi.URLParam(r, "backend")
	id := chi.URLParam(r, "id")

	status, err := s.ops.BackupStatus(r.Context(), backend, id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, backupStatusResponse{
		ID:     status.ID,
		Path:   status.Path,
		Status: status.Status,
		Error:  status.Error,
	})
}

// Healthz handles GET /healthz.
func (s *Server) Healthz(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for name, result := range report.Checks {
		checks[name] = string(result)
	}

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, healthResponse{Status: string(report.Status), Checks: checks})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	s.metricsHandler.ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code errorCode, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrNotFound,
		domain.ErrAlreadyExists,
		domain.ErrInvalidName,
		domain.ErrInvalidQuery,
		domain.ErrWeaviateUnavailable,
		domain.ErrEmbeddingProviderError,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code errorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
