package dashboard

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"mansionmarket-backend/internal/middleware"
	"mansionmarket-backend/internal/properties"
	"mansionmarket-backend/internal/transport"
	"mansionmarket-backend/internal/users"
)

// Handler aggregates the data each role's dashboard renders. Route-level role
// checks live in middleware.RequireRole; these handlers only assemble payloads.
type Handler struct {
	users      *users.Service
	properties *properties.Service
	log        *slog.Logger
}

func NewHandler(userSvc *users.Service, propertySvc *properties.Service, log *slog.Logger) *Handler {
	return &Handler{
		users:      userSvc,
		properties: propertySvc,
		log:        log,
	}
}

type adminResponse struct {
	Message    string                      `json:"message"`
	Properties []properties.PropertyDetail `json:"properties"`
}

type superadminResponse struct {
	Message    string                      `json:"message"`
	Users      []users.User                `json:"users"`
	Properties []properties.PropertyDetail `json:"properties"`
}

func (h *Handler) Admin(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	items, err := h.properties.List(ctx)
	if err != nil {
		log.Error("admin dashboard: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, adminResponse{
		Message:    "Admin dashboard data",
		Properties: items,
	})
}

func (h *Handler) Superadmin(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	userItems, err := h.users.List(ctx)
	if err != nil {
		log.Error("superadmin dashboard: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}
	propertyItems, err := h.properties.List(ctx)
	if err != nil {
		log.Error("superadmin dashboard: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, superadminResponse{
		Message:    "Superadmin dashboard data",
		Users:      userItems,
		Properties: propertyItems,
	})
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
