package properties

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
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
		log.Warn("property create: invalid multipart form")
		transport.WriteError(w, http.StatusBadRequest, "invalid multipart form", nil)
		return
	}

	req := upsertRequestFromForm(r)
	if err := h.val.Struct(req); err != nil {
		log.Warn("property create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	// Uploads land on disk before the remaining checks run, so a request
	// rejected below can leave files in the uploads dir that no document
	// references.
	files, err := h.saveUploads(ctx, r)
	if err != nil {
		log.Error("property create: upload error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "upload error", nil)
		return
	}
	if files.Image == "" || files.AgentImage == "" {
		log.Warn("property create: missing images")
		transport.WriteError(w, http.StatusBadRequest, "image and agent image are required", nil)
		return
	}

	item, err := h.service.Create(ctx, req, files)
	if err != nil {
		if errors.Is(err, ErrDuplicateReference) {
			log.Warn("property create: duplicate reference", slog.String("reference", req.Reference))
			transport.WriteError(w, http.StatusBadRequest, "duplicate reference number", nil)
			return
		}
		log.Error("property create: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("property create: ok", slog.String("property_id", item.ID), slog.String("reference", item.Reference))
	transport.WriteMessage(w, http.StatusCreated, "Property saved successfully", item)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	items, err := h.service.List(ctx)
	if err != nil {
		log.Error("property list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("property list: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) GetByReference(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	reference := strings.TrimSpace(chi.URLParam(r, "reference"))

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := h.service.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("property get by reference: not found", slog.String("reference", reference))
			transport.WriteError(w, http.StatusNotFound, "property not found", nil)
			return
		}
		log.Error("property get by reference: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := chi.URLParam(r, "id")
	if !httpx.ValidObjectID(id) {
		log.Warn("property get: invalid id", slog.String("property_id", id))
		transport.WriteError(w, http.StatusBadRequest, "invalid id format", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := h.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("property get: not found", slog.String("property_id", id))
			transport.WriteError(w, http.StatusNotFound, "property not found", nil)
			return
		}
		log.Error("property get: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := chi.URLParam(r, "id")
	if !httpx.ValidObjectID(id) {
		log.Warn("property update: invalid id", slog.String("property_id", id))
		transport.WriteError(w, http.StatusBadRequest, "invalid id format", nil)
		return
	}

	if err := httpx.ParseMultipart(r); err != nil {
		log.Warn("property update: invalid multipart form")
		transport.WriteError(w, http.StatusBadRequest, "invalid multipart form", nil)
		return
	}

	req := upsertRequestFromForm(r)
	if err := h.val.Struct(req); err != nil {
		log.Warn("property update: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	files, err := h.saveUploads(ctx, r)
	if err != nil {
		log.Error("property update: upload error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "upload error", nil)
		return
	}

	item, err := h.service.Update(ctx, id, req, files)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("property update: not found", slog.String("property_id", id))
			transport.WriteError(w, http.StatusNotFound, "property not found", nil)
			return
		}
		if errors.Is(err, ErrDuplicateReference) {
			log.Warn("property update: duplicate reference", slog.String("reference", req.Reference))
			transport.WriteError(w, http.StatusBadRequest, "duplicate reference number", nil)
			return
		}
		log.Error("property update: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("property update: ok", slog.String("property_id", id))
	transport.WriteMessage(w, http.StatusOK, "Property updated successfully", item)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := chi.URLParam(r, "id")
	if !httpx.ValidObjectID(id) {
		log.Warn("property delete: invalid id", slog.String("property_id", id))
		transport.WriteError(w, http.StatusBadRequest, "invalid id format", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.service.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("property delete: not found", slog.String("property_id", id))
			transport.WriteError(w, http.StatusNotFound, "property not found", nil)
			return
		}
		log.Error("property delete: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("property delete: ok", slog.String("property_id", id))
	transport.WriteMessage(w, http.StatusOK, "Property deleted successfully", nil)
}

func (h *Handler) saveUploads(ctx context.Context, r *http.Request) (FileSet, error) {
	var files FileSet
	var err error

	if files.Image, err = h.saveUpload(ctx, r, "image"); err != nil {
		return FileSet{}, err
	}
	if files.Video, err = h.saveUpload(ctx, r, "video"); err != nil {
		return FileSet{}, err
	}
	if files.AgentImage, err = h.saveUpload(ctx, r, "agentimage"); err != nil {
		return FileSet{}, err
	}
	return files, nil
}

func (h *Handler) saveUpload(ctx context.Context, r *http.Request, field string) (string, error) {
	file, header, err := httpx.FormFile(r, field)
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
		Reference:       httpx.FormValue(r, "reference"),
		PropertyType:    httpx.FormValue(r, "propertytype"),
		Size:            httpx.FormValue(r, "size"),
		Bedrooms:        httpx.FormValue(r, "bedrooms"),
		Bathrooms:       httpx.FormValue(r, "bathrooms"),
		FurnishingType:  httpx.FormValue(r, "furnishingtype"),
		BuiltUpArea:     httpx.FormValue(r, "builtuparea"),
		ProjectStatus:   httpx.FormValue(r, "projectstatus"),
		Community:       httpx.FormValue(r, "community"),
		SubCommunity:    httpx.FormValue(r, "subcommunity"),
		Country:         httpx.FormValue(r, "country"),
		Price:           httpx.FormValue(r, "price"),
		Title:           httpx.FormValue(r, "title"),
		Subtitle:        httpx.FormValue(r, "subtitle"),
		Description:     httpx.FormValue(r, "description"),
		Amenities:       httpx.FormValue(r, "amenities"),
		PropertyAddress: httpx.FormValue(r, "propertyaddress"),
		UnitNo:          httpx.FormValue(r, "unitno"),
		Tag:             httpx.FormValue(r, "tag"),
		Status:          httpx.FormValue(r, "status"),
		AgentName:       httpx.FormValue(r, "agentname"),
		Designation:     httpx.FormValue(r, "designation"),
		Email:           httpx.FormValue(r, "email"),
		Phone:           httpx.FormValue(r, "phone"),
		WhatsAppNo:      httpx.FormValue(r, "whatsaapno"),
		CallNo:          httpx.FormValue(r, "callno"),
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
