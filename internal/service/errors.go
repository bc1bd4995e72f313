package service

import "errors"

// Sentinel errors for ledger rule violations. Handlers map these to 4xx
// responses; everything else is treated as a persistence failure.
var (
	ErrInvalidPaymentMethod = errors.New("payment method must be cash or credit")
	ErrInvalidTotal         = errors.New("bill total must be positive")
	ErrNoItems              = errors.New("bill must contain at least one item")
	ErrInvalidItem          = errors.New("bill item must have positive quantity and non-negative unit price")
	ErrInsufficientStock    = errors.New("insufficient stock")
	ErrInvalidAmount        = errors.New("amount must be positive")
	ErrProductRequired      = errors.New("purchase requires a product id or product name")
	ErrInvalidCredentials   = errors.New("invalid username or password")
)
