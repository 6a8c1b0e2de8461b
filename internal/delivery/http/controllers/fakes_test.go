package controllers

import (
	"context"
	"io"
	"log/slog"

	"github.com/adedejiayobami0-ux/scene-backend/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// Well-formed UUIDs for path values; pathID rejects anything else.
const (
	testEventID    = "7b1e9a40-3c2d-4f5e-9a8b-1c2d3e4f5a6b"
	testAttendeeID = "9d2f8c31-5e4a-4b6c-8d7e-2f3a4b5c6d7e"
)

type fakeAdmissionService struct {
	admitResult   *domain.AdmissionResult
	admitErr      error
	lastEventID   string
	lastAttendee  *domain.Attendee
	listResult    []*domain.Attendee
	listErr       error
	lastListEvent string
	lastCallerID  string
}

func (f *fakeAdmissionService) Admit(ctx context.Context, eventID string, a *domain.Attendee) (*domain.AdmissionResult, error) {
	f.lastEventID = eventID
	f.lastAttendee = a
	if f.admitErr != nil {
		return nil, f.admitErr
	}
	return f.admitResult, nil
}

func (f *fakeAdmissionService) ListAttendees(ctx context.Context, eventID, callerID string) ([]*domain.Attendee, error) {
	f.lastListEvent = eventID
	f.lastCallerID = callerID
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listResult, nil
}

type fakePaymentService struct {
	intent         *domain.PaymentIntent
	intentErr      error
	confirmed      *domain.Attendee
	confirmErr     error
	lastAttendeeID string
	lastPaymentRef string
}

func (f *fakePaymentService) CreateIntent(ctx context.Context, attendeeID string) (*domain.PaymentIntent, error) {
	f.lastAttendeeID = attendeeID
	if f.intentErr != nil {
		return nil, f.intentErr
	}
	return f.intent, nil
}

func (f *fakePaymentService) ConfirmPayment(ctx context.Context, attendeeID, paymentRef string) (*domain.Attendee, error) {
	f.lastAttendeeID = attendeeID
	f.lastPaymentRef = paymentRef
	if f.confirmErr != nil {
		return nil, f.confirmErr
	}
	return f.confirmed, nil
}

type fakeEventService struct {
	createResult *domain.Event
	createErr    error
	getResult    *domain.Event
	getErr       error
	listResult   []*domain.Event
	listErr      error
	lastCreated  *domain.Event
	lastOwnerID  string
}

func (f *fakeEventService) CreateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	f.lastCreated = event
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createResult != nil {
		return f.createResult, nil
	}
	event.ID = "ev-created"
	return event, nil
}

func (f *fakeEventService) GetEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getResult, nil
}

func (f *fakeEventService) ListMyEvents(ctx context.Context, ownerID string) ([]*domain.Event, error) {
	f.lastOwnerID = ownerID
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listResult, nil
}

type fakeAnalyticsService struct {
	summary      *domain.EventSummary
	err          error
	lastEventID  string
	lastCallerID string
}

func (f *fakeAnalyticsService) Summarize(ctx context.Context, eventID, callerID string) (*domain.EventSummary, error) {
	f.lastEventID = eventID
	f.lastCallerID = callerID
	if f.err != nil {
		return nil, f.err
	}
	return f.summary, nil
}

type fakeUserService struct {
	token     string
	user      *domain.User
	signUpErr error
	logInErr  error
	lastEmail string
}

func (f *fakeUserService) SignUp(ctx context.Context, email, name, password string) (string, *domain.User, error) {
	f.lastEmail = email
	if f.signUpErr != nil {
		return "", nil, f.signUpErr
	}
	return f.token, f.user, nil
}

func (f *fakeUserService) LogIn(ctx context.Context, email, password string) (string, *domain.User, error) {
	f.lastEmail = email
	if f.logInErr != nil {
		return "", nil, f.logInErr
	}
	return f.token, f.user, nil
}

type fakeMessageService struct {
	posted        *domain.Message
	postErr       error
	listResult    []*domain.Message
	listErr       error
	broadcast     *domain.BroadcastResult
	broadcastErr  error
	lastEventID   string
	lastSubject   string
	lastBody      string
	lastBroadcast string
}

func (f *fakeMessageService) PostMessage(ctx context.Context, eventID string, msg *domain.Message) (*domain.Message, error) {
	f.lastEventID = eventID
	if f.postErr != nil {
		return nil, f.postErr
	}
	return f.posted, nil
}

func (f *fakeMessageService) ListMessages(ctx context.Context, eventID string) ([]*domain.Message, error) {
	f.lastEventID = eventID
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listResult, nil
}

func (f *fakeMessageService) Broadcast(ctx context.Context, eventID, ownerID, subject, body string) (*domain.BroadcastResult, error) {
	f.lastEventID = eventID
	f.lastBroadcast = ownerID
	f.lastSubject = subject
	f.lastBody = body
	if f.broadcastErr != nil {
		return nil, f.broadcastErr
	}
	return f.broadcast, nil
}
