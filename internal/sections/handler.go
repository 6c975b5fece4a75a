package sections

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"mansionmarket-backend/internal/cache"
	"mansionmarket-backend/internal/httpx"
	"mansionmarket-backend/internal/middleware"
	"mansionmarket-backend/internal/storage"
	"mansionmarket-backend/internal/transport"
	"mansionmarket-backend/internal/validation"

	"github.com/go-chi/chi/v5"
)

// BannerHandler serves one banner section (multipart payloads with an image
// upload). Current reads go through the cache; every write drops the key.
type BannerHandler struct {
	service  *BannerService
	val      *validation.Validator
	store    storage.Storage
	cache    cache.Cache
	cacheTTL time.Duration
	label    string
	log      *slog.Logger
}

func NewBannerHandler(service *BannerService, val *validation.Validator, store storage.Storage, c cache.Cache, cacheTTL time.Duration, label string, log *slog.Logger) *BannerHandler {
	return &BannerHandler{
		service:  service,
		val:      val,
		store:    store,
		cache:    c,
		cacheTTL: cacheTTL,
		label:    label,
		log:      log,
	}
}

func (h *BannerHandler) cacheKey() string {
	return "section:" + h.service.Key()
}

func (h *BannerHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	if err := httpx.ParseMultipart(r); err != nil {
		log.Warn("banner create: invalid multipart form", slog.String("section", h.service.Key()))
		transport.WriteError(w, http.StatusBadRequest, "invalid multipart form", nil)
		return
	}

	req := BannerUpsertRequest{
		Heading:    httpx.FormValue(r, "heading"),
		Subheading: httpx.FormValue(r, "subheading"),
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("banner create: validation error", slog.String("section", h.service.Key()))
		transport.WriteError(w, http.StatusBadRequest, "all fields are required", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	imagePath, err := h.saveImage(ctx, r)
	if err != nil {
		log.Error("banner create: upload error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "upload error", nil)
		return
	}
	if imagePath == "" {
		log.Warn("banner create: missing image", slog.String("section", h.service.Key()))
		transport.WriteError(w, http.StatusBadRequest, "all fields are required", nil)
		return
	}

	item, err := h.service.Save(ctx, req, imagePath)
	if err != nil {
		log.Error("banner create: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	_ = h.cache.Delete(r.Context(), h.cacheKey())
	log.Info("banner create: ok", slog.String("section", h.service.Key()))
	transport.WriteMessage(w, http.StatusCreated, h.label+" content added successfully", item)
}

func (h *BannerHandler) Current(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	if cached, ok, err := h.cache.Get(r.Context(), h.cacheKey()); err == nil && ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(cached)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, found, err := h.service.Current(ctx)
	if err != nil {
		log.Error("banner current: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	var payload interface{} = item
	if !found {
		payload = struct{}{}
	}
	if raw, err := json.Marshal(payload); err == nil {
		_ = h.cache.Set(r.Context(), h.cacheKey(), raw, h.cacheTTL)
	}
	transport.WriteJSON(w, http.StatusOK, payload)
}

func (h *BannerHandler) List(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := h.service.List(ctx)
	if err != nil {
		log.Error("banner list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}
	transport.WriteJSON(w, http.StatusOK, items)
}

func (h *BannerHandler) Get(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := h.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("banner get: not found", slog.String("id", id))
			transport.WriteError(w, http.StatusNotFound, h.label+" not found", nil)
			return
		}
		log.Error("banner get: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}
	transport.WriteJSON(w, http.StatusOK, item)
}

func (h *BannerHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := chi.URLParam(r, "id")

	if err := httpx.ParseMultipart(r); err != nil {
		log.Warn("banner update: invalid multipart form", slog.String("id", id))
		transport.WriteError(w, http.StatusBadRequest, "invalid multipart form", nil)
		return
	}

	req := BannerUpsertRequest{
		Heading:    httpx.FormValue(r, "heading"),
		Subheading: httpx.FormValue(r, "subheading"),
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("banner update: validation error", slog.String("id", id))
		transport.WriteError(w, http.StatusBadRequest, "all fields are required", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	imagePath, err := h.saveImage(ctx, r)
	if err != nil {
		log.Error("banner update: upload error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "upload error", nil)
		return
	}

	item, err := h.service.Update(ctx, id, req, imagePath)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("banner update: not found", slog.String("id", id))
			transport.WriteError(w, http.StatusNotFound, h.label+" not found", nil)
			return
		}
		log.Error("banner update: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	_ = h.cache.Delete(r.Context(), h.cacheKey())
	log.Info("banner update: ok", slog.String("id", id))
	transport.WriteMessage(w, http.StatusOK, h.label+" updated successfully", item)
}

func (h *BannerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.service.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("banner delete: not found", slog.String("id", id))
			transport.WriteError(w, http.StatusNotFound, h.label+" not found", nil)
			return
		}
		log.Error("banner delete: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	_ = h.cache.Delete(r.Context(), h.cacheKey())
	log.Info("banner delete: ok", slog.String("id", id))
	transport.WriteMessage(w, http.StatusOK, h.label+" deleted successfully", nil)
}

func (h *BannerHandler) saveImage(ctx context.Context, r *http.Request) (string, error) {
	file, header, err := httpx.FormFile(r, "image")
	if err != nil {
		return "", err
	}
	if file == nil {
		return "", nil
	}
	defer file.Close()
	return h.store.Save(ctx, header.Filename, file)
}

func (h *BannerHandler) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return h.log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}

// PromoHandler serves one text-and-button section (JSON payloads).
type PromoHandler struct {
	service  *PromoService
	val      *validation.Validator
	cache    cache.Cache
	cacheTTL time.Duration
	label    string
	log      *slog.Logger
}

func NewPromoHandler(service *PromoService, val *validation.Validator, c cache.Cache, cacheTTL time.Duration, label string, log *slog.Logger) *PromoHandler {
	return &PromoHandler{
		service:  service,
		val:      val,
		cache:    c,
		cacheTTL: cacheTTL,
		label:    label,
		log:      log,
	}
}

func (h *PromoHandler) cacheKey() string {
	return "section:" + h.service.Key()
}

func (h *PromoHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req PromoUpsertRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("promo create: invalid json", slog.String("section", h.service.Key()))
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("promo create: validation error", slog.String("section", h.service.Key()))
		transport.WriteError(w, http.StatusBadRequest, "all fields are required", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	item, err := h.service.Save(ctx, req)
	if err != nil {
		log.Error("promo create: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	_ = h.cache.Delete(r.Context(), h.cacheKey())
	log.Info("promo create: ok", slog.String("section", h.service.Key()))
	transport.WriteMessage(w, http.StatusCreated, h.label+" content added successfully", item)
}

func (h *PromoHandler) Current(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	if cached, ok, err := h.cache.Get(r.Context(), h.cacheKey()); err == nil && ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(cached)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, found, err := h.service.Current(ctx)
	if err != nil {
		log.Error("promo current: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	var payload interface{} = item
	if !found {
		payload = struct{}{}
	}
	if raw, err := json.Marshal(payload); err == nil {
		_ = h.cache.Set(r.Context(), h.cacheKey(), raw, h.cacheTTL)
	}
	transport.WriteJSON(w, http.StatusOK, payload)
}

func (h *PromoHandler) List(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := h.service.List(ctx)
	if err != nil {
		log.Error("promo list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}
	transport.WriteJSON(w, http.StatusOK, items)
}

func (h *PromoHandler) Get(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := h.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("promo get: not found", slog.String("id", id))
			transport.WriteError(w, http.StatusNotFound, h.label+" not found", nil)
			return
		}
		log.Error("promo get: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}
	transport.WriteJSON(w, http.StatusOK, item)
}

func (h *PromoHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := chi.URLParam(r, "id")

	var req PromoUpsertRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("promo update: invalid json", slog.String("id", id))
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("promo update: validation error", slog.String("id", id))
		transport.WriteError(w, http.StatusBadRequest, "all fields are required", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	item, err := h.service.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("promo update: not found", slog.String("id", id))
			transport.WriteError(w, http.StatusNotFound, h.label+" not found", nil)
			return
		}
		log.Error("promo update: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	_ = h.cache.Delete(r.Context(), h.cacheKey())
	log.Info("promo update: ok", slog.String("id", id))
	transport.WriteMessage(w, http.StatusOK, h.label+" updated successfully", item)
}

func (h *PromoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.service.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("promo delete: not found", slog.String("id", id))
			transport.WriteError(w, http.StatusNotFound, h.label+" not found", nil)
			return
		}
		log.Error("promo delete: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	_ = h.cache.Delete(r.Context(), h.cacheKey())
	log.Info("promo delete: ok", slog.String("id", id))
	transport.WriteMessage(w, http.StatusOK, h.label+" deleted successfully", nil)
}

func (h *PromoHandler) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return h.log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
