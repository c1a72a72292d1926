package types

import "errors"

// Engine failure taxonomy. Every mutating operation either completes fully or
// fails with one of these and leaves no partial state behind.
var (
	ErrAccessDenied      = errors.New("caller is not the contract owner")
	ErrInvalidPaymentDay = errors.New("payment day must be between 1 and 29")
	ErrEmployeeExists    = errors.New("employee already exists")
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrEmployeeNotActive = errors.New("employee not active")
	ErrUpkeepNotDue      = errors.New("upkeep not needed")
	ErrInsufficientFunds = errors.New("insufficient contract balance")
	ErrOracleUnavailable = errors.New("price feed unavailable")
)

const (
	ErrInvalidInput  = "Invalid input"
	ErrDatabaseError = "Database error"
	ErrUnauthorized  = "Unauthorized access"
	ErrInternalError = "internal server error"
)
