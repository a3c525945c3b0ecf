package handlers

import (
	"log"

	"invento/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/paymentintent"
)

// minorUnits converts a price in dollars to an integer amount in cents,
// truncating fractional cents. A zero or missing price yields the
// provider's 50-cent minimum charge.
func minorUnits(price float64) int64 {
	if price <= 0 {
		return 50
	}
	return int64(price * 100)
}

type PaymentIntentHandler struct{}

func NewPaymentIntentHandler() *PaymentIntentHandler {
	return &PaymentIntentHandler{}
}

// HandleCreatePaymentIntent creates a Stripe payment intent for the
// given price and returns its client secret.
// POST /create-payment-intent
func (h *PaymentIntentHandler) HandleCreatePaymentIntent(c *fiber.Ctx) error {
	var req models.CreatePaymentIntentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cannot parse JSON"})
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(minorUnits(req.Price)),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		log.Printf("Stripe payment intent creation failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to create payment intent"})
	}

	return c.JSON(fiber.Map{"clientSecret": pi.ClientSecret})
}
