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

type SaleHandler struct {
	sales database.Collection
}

func NewSaleHandler(sales database.Collection) *SaleHandler {
	return &SaleHandler{sales: sales}
}

// HandleGetSales returns every sale.
// GET /api/sale
func (h *SaleHandler) HandleGetSales(c *fiber.Ctx) error {
	return h.listSales(c, bson.M{})
}

// HandleGetSalesByEmail returns the sales recorded for one email.
// GET /api/sale/:email
func (h *SaleHandler) HandleGetSalesByEmail(c *fiber.Ctx) error {
	return h.listSales(c, bson.M{"email": c.Params("email")})
}

func (h *SaleHandler) listSales(c *fiber.Ctx, filter bson.M) error {
	cursor, err := h.sales.Find(c.Context(), filter)
	if err != nil {
		log.Printf("Error listing sales: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to fetch sales"})
	}

	sales := []models.Sale{}
	if err := cursor.All(c.Context(), &sales); err != nil {
		log.Printf("Error decoding sales: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to fetch sales"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": sales})
}

// HandleCreateSale records a checkout event. The matching product
// quantity decrement is a separate call; the two are not atomic.
// POST /api/sale/create
func (h *SaleHandler) HandleCreateSale(c *fiber.Ctx) error {
	var req models.CreateSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cannot parse JSON"})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "A valid email is required"})
	}

	sale := models.Sale{
		Email:    req.Email,
		Products: req.Products,
		Total:    req.Total,
		Date:     time.Now(),
	}
	result, err := h.sales.InsertOne(c.Context(), sale)
	if err != nil {
		log.Printf("Error creating sale for %s: %v", req.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to create sale"})
	}

	return c.JSON(fiber.Map{"status": "success", "insertedId": result.InsertedID})
}
