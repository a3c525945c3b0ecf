package handlers

import (
	"log"

	"invento/database"
	"invento/models"
	"invento/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ShopHandler struct {
	shops database.Collection
}

func NewShopHandler(shops database.Collection) *ShopHandler {
	return &ShopHandler{shops: shops}
}

// HandleGetShops returns every shop.
// GET /api/shop
func (h *ShopHandler) HandleGetShops(c *fiber.Ctx) error {
	cursor, err := h.shops.Find(c.Context(), bson.M{})
	if err != nil {
		log.Printf("Error listing shops: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to fetch shops"})
	}

	shops := []models.Shop{}
	if err := cursor.All(c.Context(), &shops); err != nil {
		log.Printf("Error decoding shops: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to fetch shops"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": shops})
}

// HandleGetShop returns the shop owned by the given email.
// GET /api/shop/:email
func (h *ShopHandler) HandleGetShop(c *fiber.Ctx) error {
	email := c.Params("email")

	var shop models.Shop
	err := h.shops.FindOne(c.Context(), bson.M{"email": email}).Decode(&shop)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Shop not found"})
		}
		log.Printf("Error fetching shop for %s: %v", email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to fetch shop"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": shop})
}

// HandleCreateShop creates the owner's shop unless one already exists.
// One shop per email; the duplicate check and the insert run as a
// single upsert.
// POST /api/shop/create
func (h *ShopHandler) HandleCreateShop(c *fiber.Ctx) error {
	var req models.CreateShopRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cannot parse JSON"})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "email and shopName are required"})
	}

	shop := models.Shop{
		Email:    req.Email,
		ShopName: req.ShopName,
		ShopLogo: req.ShopLogo,
		Limit:    req.Limit,
	}
	result, err := h.shops.UpdateOne(c.Context(),
		bson.M{"email": req.Email},
		bson.M{"$setOnInsert": shop},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		log.Printf("Error creating shop for %s: %v", req.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to create shop"})
	}

	if result.MatchedCount > 0 {
		return c.JSON(fiber.Map{"message": "You already have a shop! Manage it from your dashboard."})
	}

	return c.JSON(fiber.Map{"status": "success", "insertedId": result.UpsertedID})
}

// HandleIncreaseLimit adds the requested amount to the shop's limit.
// A missing limit field counts as zero. The read and the write are one
// atomic $inc.
// PATCH /api/shop/update/:email
func (h *ShopHandler) HandleIncreaseLimit(c *fiber.Ctx) error {
	return h.adjustLimit(c, 1)
}

// HandleDecreaseLimit subtracts the requested amount from the shop's
// limit. The balance is not floored; a negative result is persisted.
// PATCH /api/shop/update/limit/:email
func (h *ShopHandler) HandleDecreaseLimit(c *fiber.Ctx) error {
	return h.adjustLimit(c, -1)
}

func (h *ShopHandler) adjustLimit(c *fiber.Ctx, sign float64) error {
	email := c.Params("email")

	var req models.AdjustLimitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cannot parse JSON"})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "A numeric limit is required"})
	}

	result, err := h.shops.UpdateOne(c.Context(),
		bson.M{"email": email},
		bson.M{"$inc": bson.M{"limit": sign * *req.Limit}},
	)
	if err != nil {
		log.Printf("Error updating limit for %s: %v", email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to update limit"})
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Shop not found"})
	}

	return c.JSON(fiber.Map{"status": "success", "modifiedCount": result.ModifiedCount})
}

// HandleDeleteShop deletes a shop by its document id.
// DELETE /api/shop/delete/:id
func (h *ShopHandler) HandleDeleteShop(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid shop id"})
	}

	result, err := h.shops.DeleteOne(c.Context(), bson.M{"_id": id})
	if err != nil {
		log.Printf("Error deleting shop %s: %v", id.Hex(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to delete shop"})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Shop not found"})
	}

	return c.JSON(fiber.Map{"status": "success", "deletedCount": result.DeletedCount})
}
