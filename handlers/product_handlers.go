package handlers

import (
	"log"
	"time"

	"invento/database"
	"invento/models"
	"invento/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProductHandler struct {
	products database.Collection
}

func NewProductHandler(products database.Collection) *ProductHandler {
	return &ProductHandler{products: products}
}

// HandleGetProducts returns every product.
// GET /api/products
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	return h.listProducts(c, bson.M{})
}

// HandleGetProductsByShop returns the products owned by a shop email.
// GET /api/product/:email
func (h *ProductHandler) HandleGetProductsByShop(c *fiber.Ctx) error {
	return h.listProducts(c, bson.M{"shopEmail": c.Params("email")})
}

func (h *ProductHandler) listProducts(c *fiber.Ctx, filter bson.M) error {
	cursor, err := h.products.Find(c.Context(), filter)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to fetch products"})
	}

	products := []models.Product{}
	if err := cursor.All(c.Context(), &products); err != nil {
		log.Printf("Error decoding products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to fetch products"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": products})
}

// HandleGetProduct returns one product by id.
// GET /api/product/id/:id
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid product id"})
	}

	var product models.Product
	err = h.products.FindOne(c.Context(), bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Product not found"})
		}
		log.Printf("Error fetching product %s: %v", id.Hex(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to fetch product"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": product})
}

// HandleCreateProduct inserts a product for a shop.
// POST /api/product/create
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req models.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cannot parse JSON"})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "shopEmail and productName are required"})
	}

	product := models.Product{
		ShopEmail:           req.ShopEmail,
		ProductName:         req.ProductName,
		ProductQuantity:     req.ProductQuantity,
		ProductionCost:      req.ProductionCost,
		ProfitMarginPercent: req.ProfitMarginPercent,
		DiscountPercent:     req.DiscountPercent,
		ProductImage:        req.ProductImage,
		ProductCode:         req.ProductCode,
		ProductLocation:     req.ProductLocation,
		Description:         req.Description,
		SellingPrice:        req.SellingPrice,
		LastUpdate:          time.Now(),
	}
	result, err := h.products.InsertOne(c.Context(), product)
	if err != nil {
		log.Printf("Error creating product for %s: %v", req.ShopEmail, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to create product"})
	}

	return c.JSON(fiber.Map{"status": "success", "insertedId": result.InsertedID})
}

// HandleUpdateProduct overwrites the named product fields and refreshes
// lastUpdate. Fields outside the set, including sellCount and
// shopEmail, keep their stored values.
// PATCH /api/product/update/:id
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid product id"})
	}

	var req models.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cannot parse JSON"})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "productName is required"})
	}

	update := bson.M{"$set": bson.M{
		"productName":         req.ProductName,
		"productQuantity":     req.ProductQuantity,
		"productionCost":      req.ProductionCost,
		"profitMarginPercent": req.ProfitMarginPercent,
		"discountPercent":     req.DiscountPercent,
		"productImage":        req.ProductImage,
		"productCode":         req.ProductCode,
		"productLocation":     req.ProductLocation,
		"description":         req.Description,
		"sellingPrice":        req.SellingPrice,
		"lastUpdate":          time.Now(),
	}}
	result, err := h.products.UpdateOne(c.Context(), bson.M{"_id": id}, update)
	if err != nil {
		log.Printf("Error updating product %s: %v", id.Hex(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to update product"})
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Product not found"})
	}

	return c.JSON(fiber.Map{"status": "success", "modifiedCount": result.ModifiedCount})
}

// HandleCheckoutProduct writes the post-sale quantity and sell count,
// leaving every other field untouched.
// PATCH /api/product/update/checkout/:id
func (h *ProductHandler) HandleCheckoutProduct(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid product id"})
	}

	var req models.CheckoutUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cannot parse JSON"})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "productQuantity and sellCount are required"})
	}

	update := bson.M{"$set": bson.M{
		"productQuantity": *req.ProductQuantity,
		"sellCount":       *req.SellCount,
	}}
	result, err := h.products.UpdateOne(c.Context(), bson.M{"_id": id}, update)
	if err != nil {
		log.Printf("Error updating product %s after checkout: %v", id.Hex(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to update product"})
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Product not found"})
	}

	return c.JSON(fiber.Map{"status": "success", "modifiedCount": result.ModifiedCount})
}

// HandleDeleteProduct deletes a product by id.
// DELETE /api/product/delete/:id
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid product id"})
	}

	result, err := h.products.DeleteOne(c.Context(), bson.M{"_id": id})
	if err != nil {
		log.Printf("Error deleting product %s: %v", id.Hex(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to delete product"})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Product not found"})
	}

	return c.JSON(fiber.Map{"status": "success", "deletedCount": result.DeletedCount})
}
