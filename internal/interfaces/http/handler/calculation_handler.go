// Package handler contains the HTTP handlers of the calculation API.
// Handlers decode JSON with go-chi/render, delegate to the use case, and
// answer with the dto.APIResponse envelope.
package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/hapkiduki/freight-weight/internal/application/dto"
	"github.com/hapkiduki/freight-weight/internal/application/port"
	"github.com/hapkiduki/freight-weight/internal/application/usecase"
	"github.com/hapkiduki/freight-weight/pkg/logger"
)

// Calculator is the use case the handlers drive.
type Calculator interface {
	Calculate(ctx context.Context, req dto.CalculationRequest) (*dto.CalculationResponse, error)
	Convert(ctx context.Context, req dto.ConversionRequest) (*dto.ConversionResponse, error)
	Carriers(ctx context.Context) []dto.CarrierResponse
}

// Handler serves the calculation endpoints.
type Handler struct {
	calc      Calculator
	logger    port.Logger
	version   string
	startedAt time.Time
}

// New creates a Handler.
//
// Parameters:
//   - calc: the calculation use case
//   - log: structured logger
//   - version: build version reported by /health
//
// Returns:
//   - *Handler: the handler set
func New(calc Calculator, log port.Logger, version string) *Handler {
	return &Handler{
		calc:      calc,
		logger:    log,
		version:   version,
		startedAt: time.Now(),
	}
}

// Health reports liveness, version and uptime.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, dto.HealthResponse{
		Status:  "healthy",
		Version: h.version,
		Uptime:  time.Since(h.startedAt).Round(time.Second).String(),
	})
}

// ListCarriers handles GET /v1/carriers.
func (h *Handler) ListCarriers(w http.ResponseWriter, r *http.Request) {
	respond(w, r, h.version, dto.NewSuccessResponse(h.calc.Carriers(r.Context())))
}

// Calculate handles POST /v1/calculations.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req dto.CalculationRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		h.badJSON(w, r, err)
		return
	}

	resp, err := h.calc.Calculate(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond(w, r, h.version, dto.NewSuccessResponse(resp))
}

// Convert handles POST /v1/conversions.
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	var req dto.ConversionRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		h.badJSON(w, r, err)
		return
	}

	resp, err := h.calc.Convert(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond(w, r, h.version, dto.NewSuccessResponse(resp))
}

// NotFound handles unknown routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusNotFound)
	respond(w, r, h.version, dto.NewErrorResponse[any](dto.CodeNotFound, "The requested resource was not found"))
}

// MethodNotAllowed handles known routes hit with the wrong method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusMethodNotAllowed)
	respond(w, r, h.version, dto.NewErrorResponse[any](dto.CodeMethodNotAllowed, "The requested method is not allowed for this resource"))
}

func (h *Handler) badJSON(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.WithContext(r.Context()).Debug("Invalid request body", "error", err)

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		render.Status(r, http.StatusRequestEntityTooLarge)
		respond(w, r, h.version, dto.NewErrorResponse[any](dto.CodeInvalidJSON, "Request body too large"))
		return
	}
	render.Status(r, http.StatusBadRequest)
	respond(w, r, h.version, dto.NewErrorResponse[any](dto.CodeInvalidJSON, "Request body must be valid JSON"))
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	var verrs usecase.ValidationErrors
	if errors.As(err, &verrs) {
		render.Status(r, http.StatusBadRequest)
		respond(w, r, h.version, dto.NewValidationErrorResponse[any](verrs))
		return
	}

	h.logger.WithContext(r.Context()).Error("Request failed", "path", r.URL.Path, "error", err)
	render.Status(r, http.StatusInternalServerError)
	respond(w, r, h.version, dto.NewErrorResponse[any](dto.CodeInternal, "An unexpected error occurred"))
}

// respond attaches request metadata and renders the envelope as JSON.
func respond[T any](w http.ResponseWriter, r *http.Request, version string, resp dto.APIResponse[T]) {
	render.JSON(w, r, resp.WithMeta(&dto.ResponseMeta{
		RequestID: logger.RequestIDFromContext(r.Context()),
		Version:   version,
	}))
}
