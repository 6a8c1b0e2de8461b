package services

import (
	"context"
	"io"
	"time"

	"github.com/adedejiayobami0-ux/scene-backend/internal/domain"
)

type mockEventRepository struct {
	events  map[string]*domain.Event
	byOwner map[string][]*domain.Event
	err     error
	created []*domain.Event
}

func (m *mockEventRepository) Create(ctx context.Context, event *domain.Event) error {
	if m.err != nil {
		return m.err
	}
	event.ID = "ev-new"
	m.created = append(m.created, event)
	return nil
}

func (m *mockEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	ev, ok := m.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return ev, nil
}

func (m *mockEventRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.byOwner[ownerID], nil
}

type mockAttendeeRepository struct {
	attendees map[string]*domain.Attendee
	byEvent   map[string][]*domain.Attendee
	counts    map[domain.AttendeeStatus]int

	createErr    error
	markPaidDone bool
	markPaidErr  error
	markPaidHook func()

	inserted   []*domain.Attendee
	markedPaid []string
}

func (m *mockAttendeeRepository) CreateWithinCapacity(ctx context.Context, eventID string, a *domain.Attendee) error {
	if m.createErr != nil {
		return m.createErr
	}
	a.ID = "att-new"
	m.inserted = append(m.inserted, a)
	return nil
}

func (m *mockAttendeeRepository) GetByID(ctx context.Context, id string) (*domain.Attendee, error) {
	a, ok := m.attendees[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return a, nil
}

func (m *mockAttendeeRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Attendee, error) {
	return m.byEvent[eventID], nil
}

func (m *mockAttendeeRepository) MarkPaid(ctx context.Context, id, paymentRef string) (bool, error) {
	if m.markPaidErr != nil {
		return false, m.markPaidErr
	}
	m.markedPaid = append(m.markedPaid, id)
	if m.markPaidHook != nil {
		m.markPaidHook()
	}
	return m.markPaidDone, nil
}

func (m *mockAttendeeRepository) CountByStatus(ctx context.Context, eventID string) (map[domain.AttendeeStatus]int, error) {
	if m.counts == nil {
		return map[domain.AttendeeStatus]int{}, nil
	}
	return m.counts, nil
}

type mockUserRepository struct {
	byEmail   map[string]*domain.User
	createErr error
	created   []*domain.User
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	user.ID = "user-new"
	m.created = append(m.created, user)
	return nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return nil, domain.ErrNotFound
}

type mockMessageRepository struct {
	byEvent   map[string][]*domain.Message
	createErr error
	created   []*domain.Message
}

func (m *mockMessageRepository) Create(ctx context.Context, msg *domain.Message) error {
	if m.createErr != nil {
		return m.createErr
	}
	msg.ID = "msg-new"
	m.created = append(m.created, msg)
	return nil
}

func (m *mockMessageRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Message, error) {
	return m.byEvent[eventID], nil
}

type mockPromoRepository struct {
	byEvent   map[string][]*domain.PromoContent
	createErr error
	created   []*domain.PromoContent
}

func (m *mockPromoRepository) Create(ctx context.Context, pc *domain.PromoContent) error {
	if m.createErr != nil {
		return m.createErr
	}
	pc.ID = "promo-new"
	m.created = append(m.created, pc)
	return nil
}

func (m *mockPromoRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.PromoContent, error) {
	return m.byEvent[eventID], nil
}

type mockRecapRepository struct {
	byEvent   map[string][]*domain.RecapPhoto
	createErr error
	created   []*domain.RecapPhoto
}

func (m *mockRecapRepository) Create(ctx context.Context, photo *domain.RecapPhoto) error {
	if m.createErr != nil {
		return m.createErr
	}
	photo.ID = "photo-new"
	m.created = append(m.created, photo)
	return nil
}

func (m *mockRecapRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.RecapPhoto, error) {
	return m.byEvent[eventID], nil
}

type mockPaymentGateway struct {
	intent *domain.PaymentIntent
	err    error
	calls  []int64
}

func (m *mockPaymentGateway) CreateIntent(ctx context.Context, amountMinor int64, currency string) (*domain.PaymentIntent, error) {
	m.calls = append(m.calls, amountMinor)
	if m.err != nil {
		return nil, m.err
	}
	return m.intent, nil
}

func (m *mockPaymentGateway) Enabled() bool { return m.err == nil }

type mockContentGenerator struct {
	text     string
	variants []string
	source   domain.PromoSource
	err      error
}

func (m *mockContentGenerator) Improve(ctx context.Context, event *domain.Event, draft string) (string, domain.PromoSource, error) {
	if m.err != nil {
		return "", "", m.err
	}
	return m.text, m.source, nil
}

func (m *mockContentGenerator) Promote(ctx context.Context, event *domain.Event) ([]string, domain.PromoSource, error) {
	if m.err != nil {
		return nil, "", m.err
	}
	return m.variants, m.source, nil
}

type mockPhotoStore struct {
	url  string
	err  error
	keys []string
}

func (m *mockPhotoStore) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.keys = append(m.keys, key)
	return m.url, nil
}

func (m *mockPhotoStore) Enabled() bool { return m.err == nil }

type mockEmailService struct {
	failFor map[string]error
	sentTo  []string
}

func (m *mockEmailService) SendWelcomeMessage(ctx context.Context, data *domain.WelcomeMessageEmailData) error {
	if err, ok := m.failFor[data.Email]; ok {
		return err
	}
	m.sentTo = append(m.sentTo, data.Email)
	return nil
}

func (m *mockEmailService) SendAnnouncement(ctx context.Context, to string, data *domain.AnnouncementEmailData) error {
	if err, ok := m.failFor[to]; ok {
		return err
	}
	m.sentTo = append(m.sentTo, to)
	return nil
}

type mockHasher struct {
	compareErr error
}

func (m *mockHasher) GenerateSalt() (string, error) { return "salt", nil }

func (m *mockHasher) Hash(salt, password string) (string, error) {
	return "hash:" + salt + ":" + password, nil
}

func (m *mockHasher) Compare(hash, salt, password string) error { return m.compareErr }

type mockTokenIssuer struct {
	err error
}

func (m *mockTokenIssuer) Issue(userID, email string, expiry time.Duration) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return "token-" + userID, nil
}
