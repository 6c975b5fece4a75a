package articles

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"mansionmarket-backend/internal/httpx"
	"mansionmarket-backend/internal/middleware"
	"mansionmarket-backend/internal/storage"
	"mansionmarket-backend/internal/transport"
	"mansionmarket-backend/internal/validation"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service *Service
	val     *validation.Validator
	store   storage.Storage
	log     *slog.Logger
}

func NewHandler(service *Service, val *validation.Validator, store storage.Storage, log *slog.Logger) *Handler {
	return &Handler{
		service: service,
		val:     val,
		store:   store,
		log:     log,
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	if err := httpx.ParseMultipart(r); err != nil {
		log.Warn("article create: invalid multipart form")
		transport.WriteError(w, http.StatusBadRequest, "invalid multipart form", nil)
		return
	}

	req := upsertRequestFromForm(r)
	if err := h.val.Struct(req); err != nil {
		log.Warn("article create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	mainImage, err := h.saveMainImage(ctx, r)
	if err != nil {
		log.Error("article create: upload error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "upload error", nil)
		return
	}
	if mainImage == "" {
		log.Warn("article create: missing main image")
		transport.WriteError(w, http.StatusBadRequest, "main image is required", nil)
		return
	}

	item, err := h.service.Create(ctx, req, mainImage)
	if err != nil {
		log.Error("article create: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("article create: ok", slog.String("article_id", item.ID), slog.String("slug", item.Slug))
	transport.WriteMessage(w, http.StatusCreated, "Magazine detail added successfully", item)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	items, err := h.service.List(ctx)
	if err != nil {
		log.Error("article list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("article list: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := chi.URLParam(r, "id")
	if !httpx.ValidObjectID(id) {
		log.Warn("article get: invalid id", slog.String("article_id", id))
		transport.WriteError(w, http.StatusBadRequest, "invalid id format", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := h.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("article get: not found", slog.String("article_id", id))
			transport.WriteError(w, http.StatusNotFound, "magazine detail not found", nil)
			return
		}
		log.Error("article get: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	slug := chi.URLParam(r, "slug")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := h.service.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("article get by slug: not found", slog.String("slug", slug))
			transport.WriteError(w, http.StatusNotFound, "magazine detail not found", nil)
			return
		}
		log.Error("article get by slug: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := chi.URLParam(r, "id")
	if !httpx.ValidObjectID(id) {
		log.Warn("article update: invalid id", slog.String("article_id", id))
		transport.WriteError(w, http.StatusBadRequest, "invalid id format", nil)
		return
	}

	if err := httpx.ParseMultipart(r); err != nil {
		log.Warn("article update: invalid multipart form")
		transport.WriteError(w, http.StatusBadRequest, "invalid multipart form", nil)
		return
	}

	req := upsertRequestFromForm(r)
	if err := h.val.Struct(req); err != nil {
		log.Warn("article update: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	mainImage, err := h.saveMainImage(ctx, r)
	if err != nil {
		log.Error("article update: upload error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "upload error", nil)
		return
	}

	item, err := h.service.Update(ctx, id, req, mainImage)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("article update: not found", slog.String("article_id", id))
			transport.WriteError(w, http.StatusNotFound, "magazine detail not found", nil)
			return
		}
		log.Error("article update: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("article update: ok", slog.String("article_id", id))
	transport.WriteMessage(w, http.StatusOK, "Magazine detail updated successfully", item)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := chi.URLParam(r, "id")
	if !httpx.ValidObjectID(id) {
		log.Warn("article delete: invalid id", slog.String("article_id", id))
		transport.WriteError(w, http.StatusBadRequest, "invalid id format", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.service.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("article delete: not found", slog.String("article_id", id))
			transport.WriteError(w, http.StatusNotFound, "magazine detail not found", nil)
			return
		}
		log.Error("article delete: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("article delete: ok", slog.String("article_id", id))
	transport.WriteMessage(w, http.StatusOK, "Magazine detail deleted successfully", nil)
}

func (h *Handler) saveMainImage(ctx context.Context, r *http.Request) (string, error) {
	file, header, err := httpx.FormFile(r, "mainImage")
	if err != nil {
		return "", err
	}
	if file == nil {
		return "", nil
	}
	defer file.Close()
	return h.store.Save(ctx, header.Filename, file)
}

func upsertRequestFromForm(r *http.Request) UpsertRequest {
	return UpsertRequest{
		Category: httpx.FormValue(r, "category"),
		Author:   httpx.FormValue(r, "author"),
		Title:    httpx.FormValue(r, "title"),
		Subtitle: httpx.FormValue(r, "subtitle"),
		Time:     httpx.FormValue(r, "time"),
		Content:  httpx.FormValue(r, "content"),
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
