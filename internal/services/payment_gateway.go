// internal/services/payment_gateway.go
package services

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/paymentintent"

	"github.com/codetrade/backend/internal/config"
	"github.com/codetrade/backend/internal/utils"
)

// Intent is the gateway-neutral view of a payment intent.
type Intent struct {
	ID           string
	ClientSecret string
	Status       string
	Amount       int64
	Currency     string
}

const IntentStatusSucceeded = "succeeded"

// PaymentGateway abstracts the two-step intent/confirm payment protocol so
// the HTTP layer never talks to a provider SDK directly.
type PaymentGateway interface {
	CreateIntent(amountMinorUnits int64, currency string, metadata map[string]string) (*Intent, error)
	Retrieve(id string) (*Intent, error)
}

// NewPaymentGateway returns the Stripe-backed gateway when a secret key is
// configured and the local sandbox otherwise.
func NewPaymentGateway(cfg *config.Config) PaymentGateway {
	if cfg.Payment.StripeSecretKey != "" {
		return newStripeGateway(cfg)
	}
	logrus.Warn("STRIPE_SECRET_KEY not set, using sandbox payment gateway")
	return newSandboxGateway()
}

type stripeGateway struct {
	cfg *config.Config
}

func newStripeGateway(cfg *config.Config) *stripeGateway {
	stripe.Key = cfg.Payment.StripeSecretKey
	return &stripeGateway{cfg: cfg}
}

func (g *stripeGateway) CreateIntent(amountMinorUnits int64, currency string, metadata map[string]string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountMinorUnits),
		Currency: stripe.String(currency),
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return stripeIntent(pi), nil
}

func (g *stripeGateway) Retrieve(id string) (*Intent, error) {
	pi, err := paymentintent.Get(id, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment intent: %w", err)
	}
	return stripeIntent(pi), nil
}

func stripeIntent(pi *stripe.PaymentIntent) *Intent {
	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
	}
}

// sandboxGateway mimics the provider for development: created intents start
// as requires_payment_method and report succeeded on retrieval.
type sandboxGateway struct {
	mu      sync.Mutex
	intents map[string]*Intent
}

func newSandboxGateway() *sandboxGateway {
	return &sandboxGateway{intents: make(map[string]*Intent)}
}

func (g *sandboxGateway) CreateIntent(amountMinorUnits int64, currency string, metadata map[string]string) (*Intent, error) {
	suffix, err := utils.GenerateRandomString(16)
	if err != nil {
		return nil, fmt.Errorf("failed to generate intent id: %w", err)
	}

	intent := &Intent{
		ID:           "pi_sandbox_" + suffix,
		ClientSecret: "pi_sandbox_" + suffix + "_secret",
		Status:       "requires_payment_method",
		Amount:       amountMinorUnits,
		Currency:     currency,
	}

	g.mu.Lock()
	g.intents[intent.ID] = intent
	g.mu.Unlock()

	return intent, nil
}

func (g *sandboxGateway) Retrieve(id string) (*Intent, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if intent, ok := g.intents[id]; ok {
		intent.Status = IntentStatusSucceeded
		return intent, nil
	}

	// Unknown ids still resolve so a restarted dev server can confirm
	// earlier intents.
	return &Intent{ID: id, Status: IntentStatusSucceeded}, nil
}
