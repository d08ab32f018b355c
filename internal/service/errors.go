package service

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrEmptyCart       = errors.New("cart is empty")
)
