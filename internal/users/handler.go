package users

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"mansionmarket-backend/internal/auth"
	"mansionmarket-backend/internal/httpx"
	"mansionmarket-backend/internal/middleware"
	"mansionmarket-backend/internal/transport"
	"mansionmarket-backend/internal/validation"
)

type Handler struct {
	service *Service
	val     *validation.Validator
	tokens  *auth.Manager
	log     *slog.Logger
}

// NewHandler accepts a nil token manager; auth endpoints then answer 503
// instead of issuing unsigned tokens.
func NewHandler(service *Service, val *validation.Validator, tokens *auth.Manager, log *slog.Logger) *Handler {
	return &Handler{
		service: service,
		val:     val,
		tokens:  tokens,
		log:     log,
	}
}

type signupResponse struct {
	Message   string `json:"message"`
	Token     string `json:"token"`
	Role      string `json:"role"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type loginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	if h.tokens == nil {
		log.Error("signup: jwt secret not configured")
		transport.WriteError(w, http.StatusServiceUnavailable, "authentication is not configured", nil)
		return
	}

	var req SignupRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("signup: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("signup: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	item, err := h.service.Signup(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrPasswordMismatch):
			log.Warn("signup: password mismatch")
			transport.WriteError(w, http.StatusBadRequest, "Passwords do not match", nil)
		case errors.Is(err, ErrEmailTaken):
			log.Warn("signup: email taken")
			transport.WriteError(w, http.StatusBadRequest, "Email already exists", nil)
		default:
			log.Error("signup: database error", slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		}
		return
	}

	token, err := h.tokens.NewAccessToken(item.ID, item.Role)
	if err != nil {
		log.Error("signup: token error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "token error", nil)
		return
	}

	log.Info("signup: ok", slog.String("user_id", item.ID), slog.String("role", item.Role))
	transport.WriteJSON(w, http.StatusCreated, signupResponse{
		Message:   "User created successfully",
		Token:     token,
		Role:      item.Role,
		FirstName: item.FirstName,
		LastName:  item.LastName,
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	if h.tokens == nil {
		log.Error("login: jwt secret not configured")
		transport.WriteError(w, http.StatusServiceUnavailable, "authentication is not configured", nil)
		return
	}

	var req LoginRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("login: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("login: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	item, err := h.service.Login(ctx, req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			log.Warn("login: invalid credentials")
			transport.WriteError(w, http.StatusBadRequest, "Invalid credentials", nil)
			return
		}
		log.Error("login: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	token, err := h.tokens.NewAccessToken(item.ID, item.Role)
	if err != nil {
		log.Error("login: token error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "token error", nil)
		return
	}

	log.Info("login: ok", slog.String("user_id", item.ID), slog.String("role", item.Role))
	transport.WriteJSON(w, http.StatusOK, loginResponse{
		Token: token,
		Role:  item.Role,
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
