package dto

import "github.com/shopspring/decimal"

type ProductView struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	IsFavorite  bool            `json:"is_favorite"`
}

type CartLine struct {
	Product   ProductView     `json:"product"`
	Quantity  int32           `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type CartView struct {
	Items []CartLine      `json:"items"`
	Total decimal.Decimal `json:"total"`
}

type CheckoutView struct {
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"` // gateway minor units (paise)
	Currency string `json:"currency"`
	KeyID    string `json:"key"`
	Name     string `json:"name"`
}
