package services

import (
	"context"
	"errors"
	"testing"

	"github.com/adedejiayobami0-ux/scene-backend/internal/domain"
)

func TestAdmissionService_Admit(t *testing.T) {
	freeEvent := &domain.Event{ID: "e1", OwnerID: "u1", Name: "Picnic", Capacity: 50}
	paidEvent := &domain.Event{ID: "e2", OwnerID: "u1", Name: "Gala", Capacity: 50, PaymentRequired: true, TicketPrice: 5000}
	questionEvent := &domain.Event{
		ID: "e3", OwnerID: "u1", Name: "Dinner", Capacity: 10,
		Questions: []domain.Question{
			{ID: "q1", Label: "Dietary needs", Required: true},
			{ID: "q2", Label: "Plus one", Required: false},
		},
	}

	tests := []struct {
		name       string
		eventID    string
		attendee   *domain.Attendee
		createErr  error
		wantStatus domain.AttendeeStatus
		wantErr    error
	}{
		{
			name:       "free event admits as confirmed",
			eventID:    "e1",
			attendee:   &domain.Attendee{Name: "Ada", Email: "ada@example.com"},
			wantStatus: domain.StatusConfirmed,
		},
		{
			name:       "paid event admits as unpaid",
			eventID:    "e2",
			attendee:   &domain.Attendee{Name: "Ada", Email: "ada@example.com"},
			wantStatus: domain.StatusUnpaid,
		},
		{
			name:     "unknown event",
			eventID:  "missing",
			attendee: &domain.Attendee{Name: "Ada", Email: "ada@example.com"},
			wantErr:  domain.ErrNotFound,
		},
		{
			name:     "missing name",
			eventID:  "e1",
			attendee: &domain.Attendee{Name: "  ", Email: "ada@example.com"},
			wantErr:  domain.ErrInvalidInput,
		},
		{
			name:     "bad email",
			eventID:  "e1",
			attendee: &domain.Attendee{Name: "Ada", Email: "not-an-email"},
			wantErr:  domain.ErrInvalidInput,
		},
		{
			name:     "missing required answer",
			eventID:  "e3",
			attendee: &domain.Attendee{Name: "Ada", Email: "ada@example.com", Answers: map[string]string{"q2": "yes"}},
			wantErr:  domain.ErrInvalidInput,
		},
		{
			name:       "optional answer may be empty",
			eventID:    "e3",
			attendee:   &domain.Attendee{Name: "Ada", Email: "ada@example.com", Answers: map[string]string{"q1": "vegan"}},
			wantStatus: domain.StatusConfirmed,
		},
		{
			name:      "capacity exceeded surfaces unchanged",
			eventID:   "e1",
			attendee:  &domain.Attendee{Name: "Ada", Email: "ada@example.com"},
			createErr: domain.ErrCapacityExceeded,
			wantErr:   domain.ErrCapacityExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eventRepo := &mockEventRepository{events: map[string]*domain.Event{
				"e1": freeEvent, "e2": paidEvent, "e3": questionEvent,
			}}
			attendeeRepo := &mockAttendeeRepository{createErr: tt.createErr}
			svc := NewAdmissionService(eventRepo, attendeeRepo)

			got, err := svc.Admit(context.Background(), tt.eventID, tt.attendee)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if tt.wantErr == domain.ErrInvalidInput && len(attendeeRepo.inserted) != 0 {
					t.Fatalf("rejected admission must not insert a row")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Status != tt.wantStatus {
				t.Errorf("expected status %s, got %s", tt.wantStatus, got.Status)
			}
			if got.AttendeeID == "" {
				t.Errorf("expected attendee ID to be set")
			}
		})
	}
}

func TestAdmissionService_Admit_NormalizesEmail(t *testing.T) {
	eventRepo := &mockEventRepository{events: map[string]*domain.Event{
		"e1": {ID: "e1", OwnerID: "u1", Name: "Picnic", Capacity: 5},
	}}
	attendeeRepo := &mockAttendeeRepository{}
	svc := NewAdmissionService(eventRepo, attendeeRepo)

	a := &domain.Attendee{Name: " Ada ", Email: " Ada@Example.COM "}
	if _, err := svc.Admit(context.Background(), "e1", a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Email != "ada@example.com" {
		t.Errorf("expected normalized email, got %q", a.Email)
	}
	if a.Name != "Ada" {
		t.Errorf("expected trimmed name, got %q", a.Name)
	}
}

func TestAdmissionService_ListAttendees(t *testing.T) {
	event := &domain.Event{ID: "e1", OwnerID: "u1", Name: "Picnic", Capacity: 5}
	attendees := []*domain.Attendee{
		{ID: "a1", EventID: "e1", Name: "Ada", Email: "ada@example.com", Status: domain.StatusConfirmed},
	}

	tests := []struct {
		name      string
		eventID   string
		callerID  string
		wantCount int
		wantErr   error
	}{
		{name: "owner sees attendees", eventID: "e1", callerID: "u1", wantCount: 1},
		{name: "non-owner is rejected", eventID: "e1", callerID: "u2", wantErr: domain.ErrForbidden},
		{name: "unknown event", eventID: "missing", callerID: "u1", wantErr: domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eventRepo := &mockEventRepository{events: map[string]*domain.Event{"e1": event}}
			attendeeRepo := &mockAttendeeRepository{byEvent: map[string][]*domain.Attendee{"e1": attendees}}
			svc := NewAdmissionService(eventRepo, attendeeRepo)

			got, err := svc.ListAttendees(context.Background(), tt.eventID, tt.callerID)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != tt.wantCount {
				t.Errorf("expected %d attendees, got %d", tt.wantCount, len(got))
			}
		})
	}
}
