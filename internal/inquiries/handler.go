package inquiries

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"mansionmarket-backend/internal/httpx"
	"mansionmarket-backend/internal/middleware"
	"mansionmarket-backend/internal/notifications"
	"mansionmarket-backend/internal/transport"
	"mansionmarket-backend/internal/validation"

	"github.com/go-chi/chi/v5"
)

// Notifier sends the inquiry notification email. *notifications.BrevoClient
// satisfies it; a nil Notifier disables notifications entirely.
type Notifier interface {
	SendInquiryNotification(ctx context.Context, toEmail string, inquiry notifications.InquiryNotification) (string, error)
}

type Handler struct {
	service     *Service
	val         *validation.Validator
	mailer      Notifier
	notifyEmail string
	log         *slog.Logger
}

func NewHandler(service *Service, val *validation.Validator, mailer Notifier, notifyEmail string, log *slog.Logger) *Handler {
	return &Handler{
		service:     service,
		val:         val,
		mailer:      mailer,
		notifyEmail: notifyEmail,
		log:         log,
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req UpsertRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("inquiry create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("inquiry create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	item, err := h.service.Create(ctx, req)
	if err != nil {
		log.Error("inquiry create: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	// Notification failures are logged, never surfaced. The inquiry is already
	// stored at this point.
	if h.mailer != nil && h.notifyEmail != "" {
		notifyCtx, notifyCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer notifyCancel()

		_, mailErr := h.mailer.SendInquiryNotification(notifyCtx, h.notifyEmail, notifications.InquiryNotification{
			FirstName:   item.FirstName,
			LastName:    item.LastName,
			Email:       item.Email,
			Phone:       item.Phone,
			Message:     item.Message,
			SubmittedAt: item.CreatedAt.Format(time.RFC1123),
		})
		if mailErr != nil {
			log.Error("inquiry create: notification failed", slog.String("inquiry_id", item.ID), slog.String("error", mailErr.Error()))
		}
	}

	log.Info("inquiry create: ok", slog.String("inquiry_id", item.ID))
	transport.WriteMessage(w, http.StatusCreated, "Inquiry submitted successfully", item)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	items, err := h.service.List(ctx)
	if err != nil {
		log.Error("inquiry list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("inquiry list: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := chi.URLParam(r, "id")
	if !httpx.ValidObjectID(id) {
		log.Warn("inquiry get: invalid id", slog.String("inquiry_id", id))
		transport.WriteError(w, http.StatusBadRequest, "invalid id format", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := h.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("inquiry get: not found", slog.String("inquiry_id", id))
			transport.WriteError(w, http.StatusNotFound, "inquiry not found", nil)
			return
		}
		log.Error("inquiry get: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}
	transport.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := chi.URLParam(r, "id")
	if !httpx.ValidObjectID(id) {
		log.Warn("inquiry update: invalid id", slog.String("inquiry_id", id))
		transport.WriteError(w, http.StatusBadRequest, "invalid id format", nil)
		return
	}

	var req UpsertRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("inquiry update: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("inquiry update: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	item, err := h.service.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("inquiry update: not found", slog.String("inquiry_id", id))
			transport.WriteError(w, http.StatusNotFound, "inquiry not found", nil)
			return
		}
		log.Error("inquiry update: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("inquiry update: ok", slog.String("inquiry_id", id))
	transport.WriteMessage(w, http.StatusOK, "Inquiry updated successfully", item)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := chi.URLParam(r, "id")
	if !httpx.ValidObjectID(id) {
		log.Warn("inquiry delete: invalid id", slog.String("inquiry_id", id))
		transport.WriteError(w, http.StatusBadRequest, "invalid id format", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.service.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("inquiry delete: not found", slog.String("inquiry_id", id))
			transport.WriteError(w, http.StatusNotFound, "inquiry not found", nil)
			return
		}
		log.Error("inquiry delete: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("inquiry delete: ok", slog.String("inquiry_id", id))
	transport.WriteMessage(w, http.StatusOK, "Inquiry deleted successfully", nil)
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
