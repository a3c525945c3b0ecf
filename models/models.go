package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- JWT & Auth ---

type JwtClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// --- Core Documents ---

// User represents an account. Role starts empty and becomes
// "Shop-Manager" once the user is promoted, or "System-Admin" for
// operators.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email    string             `bson:"email" json:"email"`
	Name     string             `bson:"name,omitempty" json:"name,omitempty"`
	Photo    string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role     string             `bson:"role,omitempty" json:"role,omitempty"`
	ShopName string             `bson:"shopName,omitempty" json:"shopName,omitempty"`
	ShopID   primitive.ObjectID `bson:"shopId,omitempty" json:"shopId,omitempty"`
	ShopLogo string             `bson:"shopLogo,omitempty" json:"shopLogo,omitempty"`
}

const (
	RoleShopManager = "Shop-Manager"
	RoleSystemAdmin = "System-Admin"
)

// Shop is a single store owned by one user, keyed by the owner's email.
// Limit is the shop's consumable credit balance.
type Shop struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email    string             `bson:"email" json:"email"`
	ShopName string             `bson:"shopName" json:"shopName"`
	ShopLogo string             `bson:"shopLogo,omitempty" json:"shopLogo,omitempty"`
	Limit    float64            `bson:"limit" json:"limit"`
}

// Product is an inventory item belonging to a shop.
type Product struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ShopEmail           string             `bson:"shopEmail" json:"shopEmail"`
	ProductName         string             `bson:"productName" json:"productName"`
	ProductQuantity     int                `bson:"productQuantity" json:"productQuantity"`
	ProductionCost      float64            `bson:"productionCost" json:"productionCost"`
	ProfitMarginPercent float64            `bson:"profitMarginPercent" json:"profitMarginPercent"`
	DiscountPercent     float64            `bson:"discountPercent" json:"discountPercent"`
	ProductImage        string             `bson:"productImage,omitempty" json:"productImage,omitempty"`
	ProductCode         string             `bson:"productCode,omitempty" json:"productCode,omitempty"`
	ProductLocation     string             `bson:"productLocation,omitempty" json:"productLocation,omitempty"`
	Description         string             `bson:"description,omitempty" json:"description,omitempty"`
	SellingPrice        float64            `bson:"sellingPrice" json:"sellingPrice"`
	LastUpdate          time.Time          `bson:"lastUpdate" json:"lastUpdate"`
	SellCount           int                `bson:"sellCount" json:"sellCount"`
}

// SaleItem is one line of a checkout event.
type SaleItem struct {
	ProductID    string  `bson:"productId" json:"productId"`
	ProductName  string  `bson:"productName" json:"productName"`
	Quantity     int     `bson:"quantity" json:"quantity"`
	SellingPrice float64 `bson:"sellingPrice" json:"sellingPrice"`
}

// Sale records a checkout event. Append-only.
type Sale struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email    string             `bson:"email" json:"email"`
	Products []SaleItem         `bson:"products,omitempty" json:"products,omitempty"`
	Total    float64            `bson:"total" json:"total"`
	Date     time.Time          `bson:"date" json:"date"`
}

// Payment records a confirmed charge. Append-only.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	CustomerEmail string             `bson:"customerEmail" json:"customerEmail"`
	Amount        float64            `bson:"amount" json:"amount"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Date          time.Time          `bson:"date" json:"date"`
}
