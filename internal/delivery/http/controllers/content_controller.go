package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/adedejiayobami0-ux/scene-backend/internal/delivery/http/helpers"
	"github.com/adedejiayobami0-ux/scene-backend/internal/delivery/http/middleware"
	"github.com/adedejiayobami0-ux/scene-backend/internal/domain"
)

type ContentController struct {
	Logger  *slog.Logger
	Service domain.ContentService
}

func NewContentController(logger *slog.Logger, svc domain.ContentService) *ContentController {
	return &ContentController{
		Logger:  logger,
		Service: svc,
	}
}

// GeneratePromo godoc
// @Summary Generate promotional copy for an event
// @Description Produces promotional variants via the text-generation service, or a deterministic fallback when none is configured. Stored and returned. Owner-only.
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 201 {object} helpers.APIResponse "data is an array of promo content"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/promo [post]
func (c *ContentController) GeneratePromo(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	contents, err := c.Service.GeneratePromo(r.Context(), eventID, userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, contents)
}

// ImproveDescriptionRequest is the request body for POST /events/{eventID}/description.
type ImproveDescriptionRequest struct {
	Draft string `json:"draft"`
}

// Validate implements helpers.Validator.
func (r *ImproveDescriptionRequest) Validate() []string {
	if strings.TrimSpace(r.Draft) == "" {
		return []string{"draft is required"}
	}
	return nil
}

// ImproveDescription godoc
// @Summary Improve an event description
// @Description Rewrites the draft via the text-generation service, or a deterministic fallback when none is configured. Stored and returned. Owner-only.
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param body body controllers.ImproveDescriptionRequest true "Draft description"
// @Success 201 {object} helpers.APIResponse "data contains the improved description"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/description [post]
func (c *ContentController) ImproveDescription(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	var req ImproveDescriptionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	content, err := c.Service.ImproveDescription(r.Context(), eventID, userID, req.Draft)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, content)
}

// ListContent godoc
// @Summary List generated content for an event
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data is an array of promo content"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/content [get]
func (c *ContentController) ListContent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	contents, err := c.Service.ListContent(r.Context(), eventID, userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, contents)
}
