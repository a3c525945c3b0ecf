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

func TestCreatePayment_Inserts(t *testing.T) {
	payments := &fakeCollection{insertResult: &mongo.InsertOneResult{InsertedID: primitive.NewObjectID()}}
	h := NewPaymentHandler(payments)

	app := fiber.New()
	app.Post("/api/payment/create", h.HandleCreatePayment)

	body := `{"customerEmail":"jane@example.com","amount":9.98,"transactionId":"pi_123"}`
	resp, err := app.Test(jsonRequest("POST", "/api/payment/create", body))
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	payment := payments.lastInsert.(models.Payment)
	assert.Equal(t, "jane@example.com", payment.CustomerEmail)
	assert.Equal(t, "pi_123", payment.TransactionID)
}

func TestCreatePayment_RejectsMissingCustomerEmail(t *testing.T) {
	payments := &fakeCollection{}
	h := NewPaymentHandler(payments)

	app := fiber.New()
	app.Post("/api/payment/create", h.HandleCreatePayment)

	resp, err := app.Test(jsonRequest("POST", "/api/payment/create", `{"amount":9.98}`))
	assert.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
	assert.Nil(t, payments.lastInsert)
}

func TestGetPaymentsByEmail_FiltersOnCustomerEmail(t *testing.T) {
	payments := &fakeCollection{findDocs: []interface{}{
		models.Payment{CustomerEmail: "jane@example.com", Amount: 9.98},
	}}
	h := NewPaymentHandler(payments)

	app := fiber.New()
	app.Get("/api/payment/:email", h.HandleGetPaymentsByEmail)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/payment/jane@example.com", nil))
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, bson.M{"customerEmail": "jane@example.com"}, payments.lastFilter)
}
