package controllers

import (
	"log/slog"
	"net/http"

	"github.com/adedejiayobami0-ux/scene-backend/internal/delivery/http/helpers"
	"github.com/adedejiayobami0-ux/scene-backend/internal/delivery/http/middleware"
	"github.com/adedejiayobami0-ux/scene-backend/internal/domain"
)

// maxPhotoBytes caps recap photo uploads at 10 MiB.
const maxPhotoBytes = 10 << 20

type RecapController struct {
	Logger  *slog.Logger
	Service domain.RecapService
}

func NewRecapController(logger *slog.Logger, svc domain.RecapService) *RecapController {
	return &RecapController{
		Logger:  logger,
		Service: svc,
	}
}

// UploadPhoto godoc
// @Summary Upload a recap photo
// @Description Stores the photo in object storage and records it against the event. Multipart field name: photo. Owner-only.
// @Tags recap
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param photo formData file true "Photo file"
// @Success 201 {object} helpers.APIResponse "data contains the photo record"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 503 {object} helpers.APIResponse "error.code: dependency_unavailable"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/photos [post]
func (c *RecapController) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxPhotoBytes)
	file, header, err := r.FormFile("photo")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing photo file")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	photo, err := c.Service.UploadPhoto(r.Context(), eventID, userID, header.Filename, contentType, file)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, photo)
}

// ListPhotos godoc
// @Summary List recap photos for an event
// @Tags recap
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data is an array of photo records"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/photos [get]
func (c *RecapController) ListPhotos(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}

	photos, err := c.Service.ListPhotos(r.Context(), eventID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, photos)
}
