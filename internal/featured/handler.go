package featured

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"mansionmarket-backend/internal/httpx"
	"mansionmarket-backend/internal/middleware"
	"mansionmarket-backend/internal/transport"
)

type Handler struct {
	service *Service
	log     *slog.Logger
}

func NewHandler(service *Service, log *slog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log,
	}
}

// Set returns the write handler for one family. All four families share the
// same validation and error surface.
func (h *Handler) Set(family Family) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := h.logWithRequest(r).With(slog.String("family", string(family)))

		var req SetRequest
		if err := httpx.DecodeJSON(r.Body, &req); err != nil {
			log.Warn("featured set: invalid json")
			transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
		defer cancel()

		set, err := h.service.Set(ctx, family, req.References)
		if err != nil {
			var refErr *ReferenceNotFoundError
			switch {
			case errors.Is(err, ErrEmptyReferences):
				log.Warn("featured set: empty reference list")
				transport.WriteError(w, http.StatusBadRequest, "At least one reference number is required", nil)
			case errors.Is(err, ErrTooManyReferences):
				log.Warn("featured set: too many references")
				transport.WriteError(w, http.StatusBadRequest, "Maximum of four reference numbers allowed", nil)
			case errors.As(err, &refErr):
				log.Warn("featured set: reference not found", slog.String("reference", refErr.Reference))
				transport.WriteError(w, http.StatusBadRequest, "Reference number "+refErr.Reference+" not found", nil)
			default:
				log.Error("featured set: database error", slog.String("error", err.Error()))
				transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
			}
			return
		}

		log.Info("featured set: ok", slog.Int("count", len(set.References)))
		transport.WriteMessage(w, http.StatusCreated, "Featured properties saved successfully", set)
	}
}

// Get returns the read handler for one family: the expanded, ordered property
// documents, or an empty array when nothing is featured yet.
func (h *Handler) Get(family Family) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := h.logWithRequest(r).With(slog.String("family", string(family)))

		ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
		defer cancel()

		items, err := h.service.Get(ctx, family)
		if err != nil {
			log.Error("featured get: database error", slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
			return
		}

		log.Info("featured get: ok", slog.Int("count", len(items)))
		transport.WriteJSON(w, http.StatusOK, items)
	}
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return h.log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
