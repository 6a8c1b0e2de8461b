package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/adedejiayobami0-ux/scene-backend/internal/domain"
)

const defaultBaseURL = "https://api.stripe.com"

type httpGateway struct {
	client  *http.Client
	apiKey  string
	baseURL string
}

// NewHTTPGateway returns a PaymentGateway that creates payment intents over
// the provider's REST API. baseURL may be overridden for test doubles.
func NewHTTPGateway(client *http.Client, apiKey, baseURL string) domain.PaymentGateway {
	if client == nil {
		client = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &httpGateway{client: client, apiKey: apiKey, baseURL: strings.TrimRight(baseURL, "/")}
}

func (g *httpGateway) Enabled() bool { return true }

type intentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

func (g *httpGateway) CreateIntent(ctx context.Context, amountMinor int64, currency string) (*domain.PaymentIntent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountMinor, 10))
	form.Set("currency", currency)

	endpoint := g.baseURL + "/v1/payment_intents"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call payment gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("payment gateway returned status: %d", resp.StatusCode)
	}

	var data intentResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode gateway response: %w", err)
	}
	return &domain.PaymentIntent{
		ID:           data.ID,
		ClientSecret: data.ClientSecret,
		Amount:       data.Amount,
		Currency:     data.Currency,
	}, nil
}

type disabledGateway struct{}

// NewDisabledGateway returns the gateway variant used when no payment
// provider is configured. CreateIntent always fails with ErrPaymentsDisabled.
func NewDisabledGateway() domain.PaymentGateway {
	return &disabledGateway{}
}

func (d *disabledGateway) Enabled() bool { return false }

func (d *disabledGateway) CreateIntent(ctx context.Context, amountMinor int64, currency string) (*domain.PaymentIntent, error) {
	return nil, domain.ErrPaymentsDisabled
}
