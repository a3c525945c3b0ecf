package handlers

import (
	"log"
	"time"

	"invento/database"
	"invento/models"
	"invento/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
)

type PaymentHandler struct {
	payments database.Collection
}

func NewPaymentHandler(payments database.Collection) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// HandleGetPayments returns every payment.
// GET /api/payments
func (h *PaymentHandler) HandleGetPayments(c *fiber.Ctx) error {
	return h.listPayments(c, bson.M{})
}

// HandleGetPaymentsByEmail returns the payments for one customer.
// GET /api/payment/:email
func (h *PaymentHandler) HandleGetPaymentsByEmail(c *fiber.Ctx) error {
	return h.listPayments(c, bson.M{"customerEmail": c.Params("email")})
}

func (h *PaymentHandler) listPayments(c *fiber.Ctx, filter bson.M) error {
	cursor, err := h.payments.Find(c.Context(), filter)
	if err != nil {
		log.Printf("Error listing payments: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to fetch payments"})
	}

	payments := []models.Payment{}
	if err := cursor.All(c.Context(), &payments); err != nil {
		log.Printf("Error decoding payments: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to fetch payments"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": payments})
}

// HandleCreatePayment records a payment after the client confirms the
// charge against the provider.
// POST /api/payment/create
func (h *PaymentHandler) HandleCreatePayment(c *fiber.Ctx) error {
	var req models.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cannot parse JSON"})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "A valid customerEmail is required"})
	}

	payment := models.Payment{
		CustomerEmail: req.CustomerEmail,
		Amount:        req.Amount,
		TransactionID: req.TransactionID,
		Date:          time.Now(),
	}
	result, err := h.payments.InsertOne(c.Context(), payment)
	if err != nil {
		log.Printf("Error creating payment for %s: %v", req.CustomerEmail, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to create payment"})
	}

	return c.JSON(fiber.Map{"status": "success", "insertedId": result.InsertedID})
}
