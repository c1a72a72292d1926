package models

import (
	"time"
)

// Employee is the registry record for one payee. IDs are assigned by the
// database sequentially starting at 1 and are never reused.
type Employee struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	WalletAddress  string    `gorm:"uniqueIndex;not null" json:"wallet_address"`
	Name           string    `json:"name"`
	SalaryUSD      uint64    `gorm:"not null" json:"salary_usd"`
	PaymentDay     int       `gorm:"not null" json:"payment_day"` // 1..29 so every month has it
	JoinedAt       time.Time `gorm:"not null" json:"joined_at"`
	Active         bool      `gorm:"not null;default:true" json:"active"`
	LastPaidPeriod string    `json:"last_paid_period"` // "YYYY-MM", empty = never paid
}

// ActiveAddress is the ordered enumeration of active wallets. It is kept
// separate from the employee table so removal is a single row delete and
// never perturbs employee ids.
type ActiveAddress struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Wallet string `gorm:"uniqueIndex;not null" json:"wallet"`
}

// PaymentRecord is one settled payment. Records are append-only and share a
// single global id sequence across all employees.
type PaymentRecord struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	EmployeeID uint      `gorm:"index;not null" json:"employee_id"`
	Wallet     string    `gorm:"index;not null" json:"wallet"`
	Timestamp  time.Time `gorm:"not null" json:"timestamp"`
	AmountUSD  uint64    `gorm:"not null" json:"amount_usd"`
	AmountWei  string    `gorm:"not null" json:"amount_wei"` // 18-decimal native amount, decimal string
}

// TreasuryAccount holds the shared native-asset pool. A single row (ID=1)
// carries the balance in wei as a decimal string; sqlite has no 256-bit
// integer column.
type TreasuryAccount struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	BalanceWei string    `gorm:"not null;default:'0'" json:"balance_wei"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// OwnerAccount persists the access gate's owner so an ownership transfer
// survives restarts. A single row (ID=1) is seeded from configuration on
// first boot and rewritten on every transfer.
type OwnerAccount struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Wallet    string    `gorm:"not null" json:"wallet"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuditEvent is the append-only notification channel consumed by the
// dashboard: employee lifecycle changes, payments, deposits, ownership moves.
type AuditEvent struct {
	ID         string    `gorm:"type:uuid;primary_key" json:"id"`
	Type       string    `gorm:"index;not null" json:"type"`
	EmployeeID uint      `json:"employee_id,omitempty"`
	Wallet     string    `json:"wallet,omitempty"`
	FromWallet string    `json:"from_wallet,omitempty"` // previous owner on ownership transfers
	AmountUSD  uint64    `json:"amount_usd,omitempty"`
	AmountWei  string    `json:"amount_wei,omitempty"`
	CreatedAt  time.Time `gorm:"not null;index" json:"created_at"`
}
