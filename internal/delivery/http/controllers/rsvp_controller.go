package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/adedejiayobami0-ux/scene-backend/internal/delivery/http/helpers"
	"github.com/adedejiayobami0-ux/scene-backend/internal/domain"
)

type RSVPController struct {
	Logger  *slog.Logger
	Service domain.AdmissionService
}

func NewRSVPController(logger *slog.Logger, svc domain.AdmissionService) *RSVPController {
	return &RSVPController{
		Logger:  logger,
		Service: svc,
	}
}

// RSVPRequest is the request body for POST /events/{eventID}/rsvp.
type RSVPRequest struct {
	Name    string            `json:"name"`
	Email   string            `json:"email"`
	Answers map[string]string `json:"answers"`
}

// Validate implements helpers.Validator.
func (r *RSVPRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(r.Email) == "" {
		errs = append(errs, "email is required")
	}
	return errs
}

// RSVP godoc
// @Summary RSVP to an event
// @Description Admits a guest to the event. Status is confirmed for free events and unpaid for paid ones. Public, no authentication required.
// @Tags rsvp
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Param body body controllers.RSVPRequest true "Guest details and question answers"
// @Success 201 {object} helpers.APIResponse "data contains attendee_id and status"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: capacity_exceeded"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/rsvp [post]
func (c *RSVPController) RSVP(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	var req RSVPRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	attendee := &domain.Attendee{
		Name:    req.Name,
		Email:   req.Email,
		Answers: req.Answers,
	}
	result, err := c.Service.Admit(r.Context(), eventID, attendee)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, result)
}
