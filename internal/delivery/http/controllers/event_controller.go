package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/adedejiayobami0-ux/scene-backend/internal/delivery/http/helpers"
	"github.com/adedejiayobami0-ux/scene-backend/internal/delivery/http/middleware"
	"github.com/adedejiayobami0-ux/scene-backend/internal/domain"
)

type EventController struct {
	Logger    *slog.Logger
	Events    domain.EventService
	Admission domain.AdmissionService
	Analytics domain.AnalyticsService
}

func NewEventController(logger *slog.Logger, events domain.EventService, admission domain.AdmissionService, analytics domain.AnalyticsService) *EventController {
	return &EventController{
		Logger:    logger,
		Events:    events,
		Admission: admission,
		Analytics: analytics,
	}
}

// QuestionSpec is one custom question in a create-event request.
type QuestionSpec struct {
	Label    string `json:"label"`
	Required bool   `json:"required"`
}

// CreateEventRequest is the request body for POST /events.
type CreateEventRequest struct {
	Name                string         `json:"name"`
	Description         string         `json:"description"`
	Date                *time.Time     `json:"date"`
	Location            string         `json:"location"`
	Capacity            int            `json:"capacity"`
	PaymentRequired     bool           `json:"payment_required"`
	TicketPrice         int64          `json:"ticket_price"`
	PaymentInstructions string         `json:"payment_instructions"`
	Questions           []QuestionSpec `json:"questions"`
}

// Validate implements helpers.Validator.
func (r *CreateEventRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is required")
	}
	if r.Capacity < 0 {
		errs = append(errs, "capacity must be >= 0")
	}
	if r.PaymentRequired && r.TicketPrice <= 0 {
		errs = append(errs, "ticket_price must be positive for paid events")
	}
	for _, q := range r.Questions {
		if strings.TrimSpace(q.Label) == "" {
			errs = append(errs, "question label is required")
			break
		}
	}
	return errs
}

// CreateEvent godoc
// @Summary Create an event
// @Description Creates an event owned by the authenticated organizer.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body controllers.CreateEventRequest true "Event payload"
// @Success 201 {object} helpers.APIResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	ownerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	event := &domain.Event{
		OwnerID:             ownerID,
		Name:                req.Name,
		Description:         req.Description,
		Date:                req.Date,
		Location:            req.Location,
		Capacity:            req.Capacity,
		PaymentRequired:     req.PaymentRequired,
		TicketPrice:         req.TicketPrice,
		PaymentInstructions: req.PaymentInstructions,
	}
	for _, q := range req.Questions {
		event.Questions = append(event.Questions, domain.Question{Label: q.Label, Required: q.Required})
	}

	created, err := c.Events.CreateEvent(r.Context(), event)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, created)
}

// GetEvent godoc
// @Summary Get an event
// @Description Returns the event with its RSVP question list. Public.
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains the event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}

	event, err := c.Events.GetEvent(r.Context(), eventID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// ListMyEvents godoc
// @Summary List the organizer's events
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data is an array of events"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) ListMyEvents(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	events, err := c.Events.ListMyEvents(r.Context(), ownerID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// ListAttendees godoc
// @Summary List attendees of an event
// @Description Returns the attendee list with answers. Owner-only.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data is an array of attendees"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/attendees [get]
func (c *EventController) ListAttendees(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	attendees, err := c.Admission.ListAttendees(r.Context(), eventID, userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, attendees)
}

// GetAnalytics godoc
// @Summary Get event analytics
// @Description Returns attendee counts by status, revenue, capacity, and event date. Owner-only.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains the summary"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/analytics [get]
func (c *EventController) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	summary, err := c.Analytics.Summarize(r.Context(), eventID, userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, summary)
}
