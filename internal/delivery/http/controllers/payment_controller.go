package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/adedejiayobami0-ux/scene-backend/internal/delivery/http/helpers"
	"github.com/adedejiayobami0-ux/scene-backend/internal/domain"
)

type PaymentController struct {
	Logger  *slog.Logger
	Service domain.PaymentService
}

func NewPaymentController(logger *slog.Logger, svc domain.PaymentService) *PaymentController {
	return &PaymentController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateIntent godoc
// @Summary Create a payment intent for an unpaid attendee
// @Description Asks the payment gateway for an intent covering the attendee's ticket and returns the client secret. Public, no authentication required.
// @Tags payments
// @Produce json
// @Param attendeeID path string true "Attendee ID (UUID)"
// @Success 201 {object} helpers.APIResponse "data contains the payment intent"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: invalid_transition"
// @Failure 503 {object} helpers.APIResponse "error.code: dependency_unavailable"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /attendees/{attendeeID}/payment-intent [post]
func (c *PaymentController) CreateIntent(w http.ResponseWriter, r *http.Request) {
	attendeeID, ok := pathID(w, r, "attendeeID")
	if !ok {
		return
	}

	intent, err := c.Service.CreateIntent(r.Context(), attendeeID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, intent)
}

// ConfirmPaymentRequest is the request body for POST /attendees/{attendeeID}/confirm-payment.
type ConfirmPaymentRequest struct {
	PaymentID string `json:"payment_id"`
}

// Validate implements helpers.Validator.
func (r *ConfirmPaymentRequest) Validate() []string {
	if strings.TrimSpace(r.PaymentID) == "" {
		return []string{"payment_id is required"}
	}
	return nil
}

// ConfirmPayment godoc
// @Summary Confirm an attendee's payment
// @Description Records the externally-confirmed payment and transitions the attendee from unpaid to paid. Idempotent for already-paid attendees. Public, no authentication required.
// @Tags payments
// @Accept json
// @Produce json
// @Param attendeeID path string true "Attendee ID (UUID)"
// @Param body body controllers.ConfirmPaymentRequest true "Gateway payment reference"
// @Success 200 {object} helpers.APIResponse "data contains the attendee"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: invalid_transition"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /attendees/{attendeeID}/confirm-payment [post]
func (c *PaymentController) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	attendeeID, ok := pathID(w, r, "attendeeID")
	if !ok {
		return
	}
	var req ConfirmPaymentRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	attendee, err := c.Service.ConfirmPayment(r.Context(), attendeeID, req.PaymentID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, attendee)
}
