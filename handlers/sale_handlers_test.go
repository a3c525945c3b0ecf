package handlers

import (
	"net/http/httptest"
	"testing"

	"invento/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestCreateSale_RecordsCheckout(t *testing.T) {
	sales := &fakeCollection{insertResult: &mongo.InsertOneResult{InsertedID: primitive.NewObjectID()}}
	h := NewSaleHandler(sales)

	app := fiber.New()
	app.Post("/api/sale/create", h.HandleCreateSale)

	body := `{"email":"jane@example.com","products":[{"productId":"p1","productName":"Widget","quantity":2,"sellingPrice":4.99}],"total":9.98}`
	resp, err := app.Test(jsonRequest("POST", "/api/sale/create", body))
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	sale := sales.lastInsert.(models.Sale)
	assert.Equal(t, "jane@example.com", sale.Email)
	assert.Len(t, sale.Products, 1)
	assert.Equal(t, 9.98, sale.Total)
}

func TestCreateSale_RejectsMissingEmail(t *testing.T) {
	sales := &fakeCollection{}
	h := NewSaleHandler(sales)

	app := fiber.New()
	app.Post("/api/sale/create", h.HandleCreateSale)

	resp, err := app.Test(jsonRequest("POST", "/api/sale/create", `{"total":9.98}`))
	assert.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
	assert.Nil(t, sales.lastInsert)
}

func TestGetSalesByEmail_Filters(t *testing.T) {
	sales := &fakeCollection{findDocs: []interface{}{
		models.Sale{Email: "jane@example.com", Total: 9.98},
	}}
	h := NewSaleHandler(sales)

	app := fiber.New()
	app.Get("/api/sale/:email", h.HandleGetSalesByEmail)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/sale/jane@example.com", nil))
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, bson.M{"email": "jane@example.com"}, sales.lastFilter)
}
