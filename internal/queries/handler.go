package queries

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/qit/internal/keyword"
	"github.com/JaimeStill/qit/pkg/handlers"
	"github.com/JaimeStill/qit/pkg/pagination"
	"github.com/JaimeStill/qit/pkg/routes"
)

// Handler provides HTTP endpoints for query generation.
type Handler struct {
	sys         System
	logger      *slog.Logger
	pagination  pagination.Config
	maxBodySize int64
}

// Response is the JSON body of a generate request: the run metadata plus
// one page of the filtered queries.
type Response struct {
	ID                uuid.UUID                                 `json:"id"`
	Seed              string                                    `json:"seed"`
	Locale            keyword.Locale                            `json:"locale"`
	Counts            map[keyword.Intent]int                    `json:"counts"`
	SuggestionsFailed bool                                      `json:"suggestions_failed"`
	GeneratedAt       time.Time                                 `json:"generated_at"`
	Queries           pagination.PageResult[keyword.Classified] `json:"queries"`
}

// NewHandler creates a Handler with the given system, logger, pagination
// config and request body limit.
func NewHandler(
	sys System,
	logger *slog.Logger,
	pagination pagination.Config,
	maxBodySize int64,
) *Handler {
	return &Handler{
		sys:         sys,
		logger:      logger.With("handler", "queries"),
		pagination:  pagination,
		maxBodySize: maxBodySize,
	}
}

// Routes returns the route group definition for query endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/queries",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Generate, OpenAPI: generateOperation()},
			{Method: "POST", Pattern: "/export", Handler: h.Export, OpenAPI: exportOperation()},
			{Method: "GET", Pattern: "/rules", Handler: h.Rules, OpenAPI: rulesOperation()},
		},
		Schemas: Schemas(),
	}
}

// Generate runs the pipeline for the JSON request body and returns a page of
// the classified queries. The intent and source query parameters filter the
// page; counts always cover the full result.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	filters, err := FiltersFromQuery(r.URL.Query())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	result, ok := h.run(w, r)
	if !ok {
		return
	}

	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)

	handlers.RespondJSON(w, http.StatusOK, Response{
		ID:                result.ID,
		Seed:              result.Seed,
		Locale:            result.Locale,
		Counts:            result.Counts,
		SuggestionsFailed: result.SuggestionsFailed,
		GeneratedAt:       result.GeneratedAt,
		Queries:           pagination.Slice(filters.Apply(result.Queries), page),
	})
}

// Export runs the pipeline for the JSON request body and returns the
// filtered queries as a CSV attachment.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	filters, err := FiltersFromQuery(r.URL.Query())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	result, ok := h.run(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, filters.Apply(result.Queries)); err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", ExportFilename(result)))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// Rules returns the active expansion catalog and intent rule table.
func (h *Handler) Rules(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.sys.Tables())
}

func (h *Handler) run(w http.ResponseWriter, r *http.Request) (*Result, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			handlers.RespondError(w, h.logger, http.StatusRequestEntityTooLarge, err)
			return nil, false
		}
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("%w: %v", ErrInvalidRequest, err))
		return nil, false
	}

	result, err := h.sys.Run(r.Context(), req)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return nil, false
	}

	return result, true
}
