package utils

import (
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
)

// SetStripeKey configures the Stripe client with the processor secret key
func SetStripeKey(key string) {
	stripe.Key = key
}

// ToMinorUnits converts a price in major currency units to the smallest
// denomination (e.g. dollars to cents), rounded to the nearest integer.
func ToMinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// CreatePaymentIntent requests a card payment authorization from Stripe for
// the given amount in minor units and returns the client secret used by the
// caller's client-side confirmation flow.
func CreatePaymentIntent(amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}
