package engine

import (
	"math/big"
	"time"

	"defisalary/models"

	"gorm.io/gorm"
)

// Ledger is the append-only record of executed payments.
type Ledger struct {
	db *gorm.DB
}

func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// append stores one payment inside the caller's transaction and returns the
// stored record with its global id assigned.
func (l *Ledger) append(tx *gorm.DB, emp models.Employee, amountUSD uint64, amountWei *big.Int, at time.Time) (models.PaymentRecord, error) {
	record := models.PaymentRecord{
		EmployeeID: emp.ID,
		Wallet:     emp.WalletAddress,
		Timestamp:  at,
		AmountUSD:  amountUSD,
		AmountWei:  amountWei.String(),
	}
	if err := tx.Create(&record).Error; err != nil {
		return models.PaymentRecord{}, err
	}
	return record, nil
}

// HistoryByWallet lists an employee's payments in insertion order.
func (l *Ledger) HistoryByWallet(wallet string) ([]models.PaymentRecord, error) {
	var records []models.PaymentRecord
	err := l.db.Where("wallet = ?", wallet).Order("id").Find(&records).Error
	return records, err
}

// TotalUSDPaid is the running USD total across every payment ever made.
func (l *Ledger) TotalUSDPaid() (uint64, error) {
	var total uint64
	err := l.db.Model(&models.PaymentRecord{}).
		Select("COALESCE(SUM(amount_usd), 0)").
		Scan(&total).Error
	return total, err
}
