package subscribers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"mansionmarket-backend/internal/httpx"
	"mansionmarket-backend/internal/middleware"
	"mansionmarket-backend/internal/transport"
	"mansionmarket-backend/internal/validation"

	"github.com/go-chi/chi/v5"
)

type NewsletterHandler struct {
	service *NewsletterService
	val     *validation.Validator
	log     *slog.Logger
}

func NewNewsletterHandler(service *NewsletterService, val *validation.Validator, log *slog.Logger) *NewsletterHandler {
	return &NewsletterHandler{
		service: service,
		val:     val,
		log:     log,
	}
}

func (h *NewsletterHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req NewsletterRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("newsletter create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("newsletter create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	item, err := h.service.Create(ctx, req)
	if err != nil {
		log.Error("newsletter create: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("newsletter create: ok", slog.String("subscriber_id", item.ID))
	transport.WriteMessage(w, http.StatusCreated, "Email added to newsletter successfully", item)
}

func (h *NewsletterHandler) List(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	items, err := h.service.List(ctx)
	if err != nil {
		log.Error("newsletter list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}
	transport.WriteJSON(w, http.StatusOK, items)
}

func (h *NewsletterHandler) Get(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := chi.URLParam(r, "id")
	if !httpx.ValidObjectID(id) {
		log.Warn("newsletter get: invalid id", slog.String("subscriber_id", id))
		transport.WriteError(w, http.StatusBadRequest, "invalid id format", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := h.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("newsletter get: not found", slog.String("subscriber_id", id))
			transport.WriteError(w, http.StatusNotFound, "subscriber not found", nil)
			return
		}
		log.Error("newsletter get: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}
	transport.WriteJSON(w, http.StatusOK, item)
}

func (h *NewsletterHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := chi.URLParam(r, "id")
	if !httpx.ValidObjectID(id) {
		log.Warn("newsletter update: invalid id", slog.String("subscriber_id", id))
		transport.WriteError(w, http.StatusBadRequest, "invalid id format", nil)
		return
	}

	var req NewsletterRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("newsletter update: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("newsletter update: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	item, err := h.service.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("newsletter update: not found", slog.String("subscriber_id", id))
			transport.WriteError(w, http.StatusNotFound, "subscriber not found", nil)
			return
		}
		log.Error("newsletter update: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("newsletter update: ok", slog.String("subscriber_id", id))
	transport.WriteMessage(w, http.StatusOK, "Subscriber updated successfully", item)
}

func (h *NewsletterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := chi.URLParam(r, "id")
	if !httpx.ValidObjectID(id) {
		log.Warn("newsletter delete: invalid id", slog.String("subscriber_id", id))
		transport.WriteError(w, http.StatusBadRequest, "invalid id format", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.service.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("newsletter delete: not found", slog.String("subscriber_id", id))
			transport.WriteError(w, http.StatusNotFound, "subscriber not found", nil)
			return
		}
		log.Error("newsletter delete: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("newsletter delete: ok", slog.String("subscriber_id", id))
	transport.WriteMessage(w, http.StatusOK, "Subscriber deleted successfully", nil)
}

func (h *NewsletterHandler) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return h.log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}

type MagazineEmailHandler struct {
	service *MagazineEmailService
	val     *validation.Validator
	log     *slog.Logger
}

func NewMagazineEmailHandler(service *MagazineEmailService, val *validation.Validator, log *slog.Logger) *MagazineEmailHandler {
	return &MagazineEmailHandler{
		service: service,
		val:     val,
		log:     log,
	}
}

func (h *MagazineEmailHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req MagazineEmailRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("magazine email create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("magazine email create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	item, err := h.service.Create(ctx, req)
	if err != nil {
		log.Error("magazine email create: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("magazine email create: ok", slog.String("subscriber_id", item.ID))
	transport.WriteMessage(w, http.StatusCreated, "Email added to magazine email list successfully", item)
}

func (h *MagazineEmailHandler) List(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	items, err := h.service.List(ctx)
	if err != nil {
		log.Error("magazine email list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}
	transport.WriteJSON(w, http.StatusOK, items)
}

func (h *MagazineEmailHandler) Get(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := chi.URLParam(r, "id")
	if !httpx.ValidObjectID(id) {
		log.Warn("magazine email get: invalid id", slog.String("subscriber_id", id))
		transport.WriteError(w, http.StatusBadRequest, "invalid id format", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := h.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("magazine email get: not found", slog.String("subscriber_id", id))
			transport.WriteError(w, http.StatusNotFound, "subscriber not found", nil)
			return
		}
		log.Error("magazine email get: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}
	transport.WriteJSON(w, http.StatusOK, item)
}

func (h *MagazineEmailHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := chi.URLParam(r, "id")
	if !httpx.ValidObjectID(id) {
		log.Warn("magazine email update: invalid id", slog.String("subscriber_id", id))
		transport.WriteError(w, http.StatusBadRequest, "invalid id format", nil)
		return
	}

	var req MagazineEmailRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("magazine email update: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("magazine email update: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	item, err := h.service.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("magazine email update: not found", slog.String("subscriber_id", id))
			transport.WriteError(w, http.StatusNotFound, "subscriber not found", nil)
			return
		}
		log.Error("magazine email update: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("magazine email update: ok", slog.String("subscriber_id", id))
	transport.WriteMessage(w, http.StatusOK, "Subscriber updated successfully", item)
}

func (h *MagazineEmailHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := chi.URLParam(r, "id")
	if !httpx.ValidObjectID(id) {
		log.Warn("magazine email delete: invalid id", slog.String("subscriber_id", id))
		transport.WriteError(w, http.StatusBadRequest, "invalid id format", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.service.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("magazine email delete: not found", slog.String("subscriber_id", id))
			transport.WriteError(w, http.StatusNotFound, "subscriber not found", nil)
			return
		}
		log.Error("magazine email delete: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("magazine email delete: ok", slog.String("subscriber_id", id))
	transport.WriteMessage(w, http.StatusOK, "Subscriber deleted successfully", nil)
}

func (h *MagazineEmailHandler) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return h.log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
