package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/adedejiayobami0-ux/scene-backend/internal/delivery/http/helpers"
	"github.com/adedejiayobami0-ux/scene-backend/internal/delivery/http/middleware"
	"github.com/adedejiayobami0-ux/scene-backend/internal/domain"
)

type MessageController struct {
	Logger  *slog.Logger
	Service domain.MessageService
}

func NewMessageController(logger *slog.Logger, svc domain.MessageService) *MessageController {
	return &MessageController{
		Logger:  logger,
		Service: svc,
	}
}

// PostMessageRequest is the request body for POST /events/{eventID}/messages.
type PostMessageRequest struct {
	SenderName string `json:"sender_name"`
	Body       string `json:"body"`
}

// Validate implements helpers.Validator.
func (r *PostMessageRequest) Validate() []string {
	if strings.TrimSpace(r.Body) == "" {
		return []string{"body is required"}
	}
	return nil
}

// PostMessage godoc
// @Summary Post a message on an event board
// @Description Appends a message to the event's board. Public, no authentication required.
// @Tags messages
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Param body body controllers.PostMessageRequest true "Message payload"
// @Success 201 {object} helpers.APIResponse "data contains the message"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/messages [post]
func (c *MessageController) PostMessage(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	var req PostMessageRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	msg := &domain.Message{SenderName: req.SenderName, Body: req.Body}
	created, err := c.Service.PostMessage(r.Context(), eventID, msg)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, created)
}

// ListMessages godoc
// @Summary List messages on an event board
// @Tags messages
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data is an array of messages"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/messages [get]
func (c *MessageController) ListMessages(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}

	messages, err := c.Service.ListMessages(r.Context(), eventID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, messages)
}

// BroadcastRequest is the request body for POST /events/{eventID}/messages/broadcast.
type BroadcastRequest struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Validate implements helpers.Validator.
func (r *BroadcastRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Subject) == "" {
		errs = append(errs, "subject is required")
	}
	if strings.TrimSpace(r.Body) == "" {
		errs = append(errs, "body is required")
	}
	return errs
}

// Broadcast godoc
// @Summary Email an announcement to all attendees
// @Description Sends the announcement to every attendee via email and appends it to the board. Owner-only.
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param body body controllers.BroadcastRequest true "Announcement payload"
// @Success 200 {object} helpers.APIResponse "data contains sent count and failed recipients"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/messages/broadcast [post]
func (c *MessageController) Broadcast(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	var req BroadcastRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	result, err := c.Service.Broadcast(r.Context(), eventID, userID, req.Subject, req.Body)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, result)
}
