package payment

import (
	"errors"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/paymentintent"
)

var ErrStripeNotConfigured = errors.New("stripe not configured")

// StripeService creates payment intents against the gateway. Charge
// confirmation happens on the client; the backend only hands out the secret.
type StripeService struct {
	secretKey string
}

func NewStripeService(secretKey string) *StripeService {
	// The SDK key is process-global; set it once at construction.
	if secretKey != "" {
		stripe.Key = secretKey
	}
	return &StripeService{secretKey: secretKey}
}

func (s *StripeService) Configured() bool {
	return s.secretKey != ""
}

// CreatePaymentIntent converts the price from major units to cents and
// returns the intent's client secret.
func (s *StripeService) CreatePaymentIntent(price float64) (string, error) {
	if s.secretKey == "" {
		return "", ErrStripeNotConfigured
	}

	amount := int64(math.Round(price * 100))
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return pi.ClientSecret, nil
}
