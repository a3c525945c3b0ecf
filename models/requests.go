package models

// Request bodies are parsed into tagged structs and validated at the
// handler boundary; arbitrary payload shapes are rejected rather than
// persisted.

type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type CreateUserRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

type CreateShopRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	ShopName string  `json:"shopName" validate:"required"`
	ShopLogo string  `json:"shopLogo"`
	Limit    float64 `json:"limit" validate:"gte=0"`
}

// AdjustLimitRequest carries the delta for a limit top-up or debit.
// Limit is a pointer so a missing field is distinguishable from zero.
type AdjustLimitRequest struct {
	Limit *float64 `json:"limit" validate:"required"`
}

type CreateProductRequest struct {
	ShopEmail           string  `json:"shopEmail" validate:"required,email"`
	ProductName         string  `json:"productName" validate:"required"`
	ProductQuantity     int     `json:"productQuantity" validate:"gte=0"`
	ProductionCost      float64 `json:"productionCost" validate:"gte=0"`
	ProfitMarginPercent float64 `json:"profitMarginPercent"`
	DiscountPercent     float64 `json:"discountPercent"`
	ProductImage        string  `json:"productImage"`
	ProductCode         string  `json:"productCode"`
	ProductLocation     string  `json:"productLocation"`
	Description         string  `json:"description"`
	SellingPrice        float64 `json:"sellingPrice" validate:"gte=0"`
}

// UpdateProductRequest is the fixed field set a full product update
// overwrites. Fields outside this set are left untouched in the store.
type UpdateProductRequest struct {
	ProductName         string  `json:"productName" validate:"required"`
	ProductQuantity     int     `json:"productQuantity" validate:"gte=0"`
	ProductionCost      float64 `json:"productionCost" validate:"gte=0"`
	ProfitMarginPercent float64 `json:"profitMarginPercent"`
	DiscountPercent     float64 `json:"discountPercent"`
	ProductImage        string  `json:"productImage"`
	ProductCode         string  `json:"productCode"`
	ProductLocation     string  `json:"productLocation"`
	Description         string  `json:"description"`
	SellingPrice        float64 `json:"sellingPrice" validate:"gte=0"`
}

// CheckoutUpdateRequest narrows a product update to the two fields a
// completed sale touches.
type CheckoutUpdateRequest struct {
	ProductQuantity *int `json:"productQuantity" validate:"required,gte=0"`
	SellCount       *int `json:"sellCount" validate:"required,gte=0"`
}

type CreateSaleRequest struct {
	Email    string     `json:"email" validate:"required,email"`
	Products []SaleItem `json:"products"`
	Total    float64    `json:"total" validate:"gte=0"`
}

type CreatePaymentRequest struct {
	CustomerEmail string  `json:"customerEmail" validate:"required,email"`
	Amount        float64 `json:"amount" validate:"gte=0"`
	TransactionID string  `json:"transactionId"`
}

type CreatePaymentIntentRequest struct {
	Price float64 `json:"price"`
}
