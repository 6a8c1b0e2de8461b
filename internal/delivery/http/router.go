package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/adedejiayobami0-ux/scene-backend/internal/delivery/http/controllers"
	"github.com/adedejiayobami0-ux/scene-backend/internal/delivery/http/middleware"
	"github.com/adedejiayobami0-ux/scene-backend/internal/domain"
)

// Controllers bundles everything the router mounts.
type Controllers struct {
	Auth    *controllers.AuthController
	Event   *controllers.EventController
	RSVP    *controllers.RSVPController
	Payment *controllers.PaymentController
	Message *controllers.MessageController
	Content *controllers.ContentController
	Recap   *controllers.RecapController
}

// NewRouter initializes the HTTP router with all application routes.
// RSVP, payment confirmation, and message endpoints are public; organizer
// endpoints sit behind RequireAuth.
func NewRouter(c Controllers, verifier domain.TokenVerifier, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(verifier, logger)

	// Auth
	mux.HandleFunc("POST /auth/signup", c.Auth.SignUp)
	mux.HandleFunc("POST /auth/login", c.Auth.LogIn)

	// Organizer API
	mux.HandleFunc("POST /events", requireAuth(c.Event.CreateEvent))
	mux.HandleFunc("GET /events", requireAuth(c.Event.ListMyEvents))
	mux.HandleFunc("GET /events/{eventID}/attendees", requireAuth(c.Event.ListAttendees))
	mux.HandleFunc("GET /events/{eventID}/analytics", requireAuth(c.Event.GetAnalytics))
	mux.HandleFunc("POST /events/{eventID}/promo", requireAuth(c.Content.GeneratePromo))
	mux.HandleFunc("POST /events/{eventID}/description", requireAuth(c.Content.ImproveDescription))
	mux.HandleFunc("GET /events/{eventID}/content", requireAuth(c.Content.ListContent))
	mux.HandleFunc("POST /events/{eventID}/messages/broadcast", requireAuth(c.Message.Broadcast))
	mux.HandleFunc("POST /events/{eventID}/photos", requireAuth(c.Recap.UploadPhoto))

	// Public API
	mux.HandleFunc("GET /events/{eventID}", c.Event.GetEvent)
	mux.HandleFunc("POST /events/{eventID}/rsvp", c.RSVP.RSVP)
	mux.HandleFunc("POST /attendees/{attendeeID}/payment-intent", c.Payment.CreateIntent)
	mux.HandleFunc("POST /attendees/{attendeeID}/confirm-payment", c.Payment.ConfirmPayment)
	mux.HandleFunc("GET /events/{eventID}/messages", c.Message.ListMessages)
	mux.HandleFunc("POST /events/{eventID}/messages", c.Message.PostMessage)
	mux.HandleFunc("GET /events/{eventID}/photos", c.Recap.ListPhotos)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
