package domain

import "context"

// PaymentIntent is the gateway's handle for an in-flight payment. The client
// completes the payment out-of-band using ClientSecret; the gateway's
// confirmation comes back as an opaque payment reference.
// swagger:model PaymentIntent
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"` // minor units
	Currency     string `json:"currency"`
}

// PaymentGateway creates payment intents with an external payment provider.
// The disabled variant returns ErrPaymentsDisabled from CreateIntent.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency string) (*PaymentIntent, error)
	Enabled() bool
}
