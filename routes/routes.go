package routes

import (
	"context"

	"invento/config"
	"invento/database"
	"invento/handlers"
	"invento/middleware"
	"invento/models"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
)

// Store exposes the collections the routes are wired over. *database.DB
// satisfies it; tests substitute fakes.
type Store interface {
	Users() database.Collection
	Shops() database.Collection
	Products() database.Collection
	Sales() database.Collection
	Payments() database.Collection
}

// Setup wires every route with its guard chain.
func Setup(app *fiber.App, cfg *config.Config, db Store) {
	auth := middleware.Authenticate(cfg.JWTSecret)
	admin := middleware.AdminRequired(userRoleLookup(db.Users()))

	tokenHandler := handlers.NewTokenHandler(cfg.JWTSecret)
	userHandler := handlers.NewUserHandler(db.Users(), db.Shops())
	shopHandler := handlers.NewShopHandler(db.Shops())
	productHandler := handlers.NewProductHandler(db.Products())
	saleHandler := handlers.NewSaleHandler(db.Sales())
	paymentHandler := handlers.NewPaymentHandler(db.Payments())
	intentHandler := handlers.NewPaymentIntentHandler()

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("server is running")
	})

	app.Post("/api/jwt/token", tokenHandler.HandleIssueToken)

	// Users
	app.Get("/api/users", auth, admin, userHandler.HandleGetUsers)
	app.Get("/api/user/:email", auth, userHandler.HandleGetUser)
	app.Post("/api/user/create", userHandler.HandleCreateUser)
	app.Post("/api/user/create/:email", userHandler.HandleCreateUserIfAbsent)
	app.Patch("/api/user/update/:email", userHandler.HandlePromoteUser)

	// Shops
	app.Get("/api/shop", auth, admin, shopHandler.HandleGetShops)
	app.Get("/api/shop/:email", auth, shopHandler.HandleGetShop)
	app.Post("/api/shop/create", shopHandler.HandleCreateShop)
	app.Patch("/api/shop/update/:email", auth, shopHandler.HandleIncreaseLimit)
	app.Patch("/api/shop/update/limit/:email", auth, shopHandler.HandleDecreaseLimit)
	app.Delete("/api/shop/delete/:id", auth, admin, shopHandler.HandleDeleteShop)

	// Products
	app.Get("/api/products", auth, productHandler.HandleGetProducts)
	app.Get("/api/product/id/:id", auth, productHandler.HandleGetProduct)
	app.Get("/api/product/:email", auth, productHandler.HandleGetProductsByShop)
	app.Post("/api/product/create", productHandler.HandleCreateProduct)
	app.Patch("/api/product/update/checkout/:id", auth, productHandler.HandleCheckoutProduct)
	app.Patch("/api/product/update/:id", auth, productHandler.HandleUpdateProduct)
	app.Delete("/api/product/delete/:id", auth, productHandler.HandleDeleteProduct)

	// Payment intent
	app.Post("/create-payment-intent", intentHandler.HandleCreatePaymentIntent)

	// Sales
	app.Get("/api/sale", auth, admin, saleHandler.HandleGetSales)
	app.Get("/api/sale/:email", auth, saleHandler.HandleGetSalesByEmail)
	app.Post("/api/sale/create", saleHandler.HandleCreateSale)

	// Payments
	app.Get("/api/payments", auth, admin, paymentHandler.HandleGetPayments)
	app.Get("/api/payment/:email", auth, paymentHandler.HandleGetPaymentsByEmail)
	app.Post("/api/payment/create", paymentHandler.HandleCreatePayment)
}

func userRoleLookup(users database.Collection) middleware.RoleLookup {
	return func(ctx context.Context, email string) (string, error) {
		var user models.User
		if err := users.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
			return "", err
		}
		return user.Role, nil
	}
}
