package handlers

import (
	"log"

	"invento/database"
	"invento/models"
	"invento/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserHandler struct {
	users database.Collection
	shops database.Collection
}

func NewUserHandler(users, shops database.Collection) *UserHandler {
	return &UserHandler{users: users, shops: shops}
}

// HandleGetUsers returns every user.
// GET /api/users
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	cursor, err := h.users.Find(c.Context(), bson.M{})
	if err != nil {
		log.Printf("Error listing users: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to fetch users"})
	}

	users := []models.User{}
	if err := cursor.All(c.Context(), &users); err != nil {
		log.Printf("Error decoding users: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to fetch users"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": users})
}

// HandleGetUser returns one user by email.
// GET /api/user/:email
func (h *UserHandler) HandleGetUser(c *fiber.Ctx) error {
	email := c.Params("email")

	var user models.User
	err := h.users.FindOne(c.Context(), bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "User not found"})
		}
		log.Printf("Error fetching user %s: %v", email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to fetch user"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": user})
}

// HandleCreateUser inserts a new user unconditionally. Used by signup
// flows that de-duplicate on the client.
// POST /api/user/create
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	var req models.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cannot parse JSON"})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "A valid email is required"})
	}

	user := models.User{Email: req.Email, Name: req.Name, Photo: req.Photo}
	result, err := h.users.InsertOne(c.Context(), user)
	if err != nil {
		log.Printf("Error creating user %s: %v", req.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to create user"})
	}

	return c.JSON(fiber.Map{"status": "success", "insertedId": result.InsertedID})
}

// HandleCreateUserIfAbsent inserts the user only when no document exists
// for the email. The check and the insert are a single upsert, so two
// concurrent signups for the same email cannot both insert.
// POST /api/user/create/:email
func (h *UserHandler) HandleCreateUserIfAbsent(c *fiber.Ctx) error {
	email := c.Params("email")

	var req models.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cannot parse JSON"})
	}
	req.Email = email
	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "A valid email is required"})
	}

	user := models.User{Email: req.Email, Name: req.Name, Photo: req.Photo}
	result, err := h.users.UpdateOne(c.Context(),
		bson.M{"email": email},
		bson.M{"$setOnInsert": user},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		log.Printf("Error creating user %s: %v", email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to create user"})
	}

	if result.MatchedCount > 0 {
		return c.JSON(fiber.Map{"message": "already have an account"})
	}

	return c.JSON(fiber.Map{"status": "success", "insertedId": result.UpsertedID})
}

// HandlePromoteUser promotes a user to shop manager, copying the shop's
// display fields onto the user document.
// PATCH /api/user/update/:email
func (h *UserHandler) HandlePromoteUser(c *fiber.Ctx) error {
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

	update := bson.M{"$set": bson.M{
		"role":     models.RoleShopManager,
		"shopName": shop.ShopName,
		"shopId":   shop.ID,
		"shopLogo": shop.ShopLogo,
	}}
	result, err := h.users.UpdateOne(c.Context(), bson.M{"email": email}, update)
	if err != nil {
		log.Printf("Error promoting user %s: %v", email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to update user"})
	}

	return c.JSON(fiber.Map{"status": "success", "modifiedCount": result.ModifiedCount})
}
