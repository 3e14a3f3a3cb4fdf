// Package handler exposes the vurdering API used by the caseworker frontend.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"medvirkning/internal/platform/middleware"
	"medvirkning/internal/vurdering/models"
	"medvirkning/pkg/platform/sentinel"
	strs "medvirkning/pkg/platform/strings"
	"medvirkning/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

const BasePath = "/api/internad/v1/manglende-medvirkning"

// Service defines the vurdering operations the API needs.
type Service interface {
	Create(ctx context.Context, req models.NewVurdering) (models.Vurdering, error)
	List(ctx context.Context, personident models.Personident) ([]models.Vurdering, error)
	Get(ctx context.Context, id uuid.UUID) (models.Vurdering, error)
	LatestForPersons(ctx context.Context, personidenter []models.Personident) (map[models.Personident]models.Vurdering, error)
}

// Handler handles vurdering endpoints.
type Handler struct {
	logger       *slog.Logger
	service      Service
	validate     *validator.Validate
	jwtValidator middleware.JWTValidator
}

func New(service Service, jwtValidator middleware.JWTValidator, logger *slog.Logger) *Handler {
	return &Handler{
		logger:       logger,
		service:      service,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		jwtValidator: jwtValidator,
	}
}

// Register registers the vurdering routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Route(BasePath, func(r chi.Router) {
		r.Use(chimw.Timeout(30 * time.Second))
		r.Use(middleware.RequireAuth(h.jwtValidator, h.logger))
		r.Get("/vurderinger", h.handleGetVurderinger)
		r.Post("/vurderinger", h.handleCreateVurdering)
		r.Get("/vurderinger/{uuid}", h.handleGetVurdering)
		r.Post("/get-vurderinger", h.handleGetLatestVurderinger)
	})
}

func (h *Handler) handleGetVurderinger(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	personident, err := models.ParsePersonident(r.Header.Get(PersonidentHeader))
	if err != nil {
		h.logger.WarnContext(ctx, "missing or invalid personident header",
			"call_id", requestcontext.CallID(ctx),
			"error", err,
		)
		writeError(w, http.StatusBadRequest, "bad_request", "No valid "+PersonidentHeader+" supplied in request header")
		return
	}

	vurderinger, err := h.service.List(ctx, personident)
	if err != nil {
		h.writeServiceError(ctx, w, "failed to list vurderinger", err)
		return
	}
	if len(vurderinger) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	resp := make([]VurderingResponse, 0, len(vurderinger))
	for _, v := range vurderinger {
		resp = append(resp, toResponse(v))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetVurdering(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := uuid.Parse(chi.URLParam(r, "uuid"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid vurdering uuid")
		return
	}

	v, err := h.service.Get(ctx, id)
	if err != nil {
		h.writeServiceError(ctx, w, "failed to get vurdering", err)
		return
	}
	writeJSON(w, http.StatusOK, toResponse(v))
}

func (h *Handler) handleCreateVurdering(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req NewVurderingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid create vurdering request",
			"call_id", requestcontext.CallID(ctx),
			"error", err,
		)
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.logger.WarnContext(ctx, "create vurdering request failed validation",
			"call_id", requestcontext.CallID(ctx),
			"error", err,
		)
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	if len(req.Document) == 0 {
		writeError(w, http.StatusBadRequest, "bad_request", models.ErrEmptyDocument.Error())
		return
	}

	created, err := h.service.Create(ctx, req.toModel(requestcontext.NAVIdent(ctx)))
	if err != nil {
		h.writeServiceError(ctx, w, "failed to create vurdering", err)
		return
	}
	writeJSON(w, http.StatusCreated, toResponse(created))
}

func (h *Handler) handleGetLatestVurderinger(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req VurderingerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}
	req.Personidenter = strs.DedupeTrimmed(req.Personidenter)
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	personidenter := make([]models.Personident, 0, len(req.Personidenter))
	for _, p := range req.Personidenter {
		personidenter = append(personidenter, models.Personident(p))
	}
	latest, err := h.service.LatestForPersons(ctx, personidenter)
	if err != nil {
		h.writeServiceError(ctx, w, "failed to get latest vurderinger", err)
		return
	}
	if len(latest) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	resp := VurderingerResponse{Vurderinger: make(map[string]VurderingResponse, len(latest))}
	for p, v := range latest {
		resp.Vurderinger[p.String()] = toResponse(v)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) writeServiceError(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	switch {
	case errors.Is(err, sentinel.ErrValidation):
		h.logger.WarnContext(ctx, msg, "call_id", requestcontext.CallID(ctx), "error", err)
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, sentinel.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, sentinel.ErrUnavailable):
		h.logger.ErrorContext(ctx, msg, "call_id", requestcontext.CallID(ctx), "error", err)
		writeError(w, http.StatusServiceUnavailable, "unavailable", "a downstream service is unavailable")
	default:
		h.logger.ErrorContext(ctx, msg, "call_id", requestcontext.CallID(ctx), "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "")
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError omits the description for internal errors.
func writeError(w http.ResponseWriter, status int, code, description string) {
	body := map[string]string{"error": code}
	if description != "" && status < http.StatusInternalServerError {
		body["error_description"] = description
	}
	writeJSON(w, status, body)
}
