package engine

import (
	"fmt"
	"math/big"

	"defisalary/models"
	"defisalary/types"

	"gorm.io/gorm"
)

const treasuryRowID = 1

// Treasury is the shared native-asset pool payments are settled from. There
// is no per-employee reservation; sufficiency is checked at execution time.
type Treasury struct {
	db     *gorm.DB
	events *Recorder
}

func NewTreasury(db *gorm.DB, events *Recorder) (*Treasury, error) {
	t := &Treasury{db: db, events: events}
	account := models.TreasuryAccount{ID: treasuryRowID, BalanceWei: "0"}
	if err := db.FirstOrCreate(&account, models.TreasuryAccount{ID: treasuryRowID}).Error; err != nil {
		return nil, err
	}
	return t, nil
}

// Balance returns the current pool balance in wei.
func (t *Treasury) Balance() (*big.Int, error) {
	return t.balance(t.db)
}

func (t *Treasury) balance(db *gorm.DB) (*big.Int, error) {
	var account models.TreasuryAccount
	if err := db.First(&account, treasuryRowID).Error; err != nil {
		return nil, err
	}
	balance, ok := new(big.Int).SetString(account.BalanceWei, 10)
	if !ok {
		return nil, fmt.Errorf("corrupt treasury balance %q", account.BalanceWei)
	}
	return balance, nil
}

// Deposit credits the pool. Any caller may fund the contract; no registry or
// ledger state changes as a result.
func (t *Treasury) Deposit(amount *big.Int) (*big.Int, error) {
	if amount == nil || amount.Sign() <= 0 {
		return nil, fmt.Errorf("deposit amount must be positive")
	}
	var newBalance *big.Int
	err := t.db.Transaction(func(tx *gorm.DB) error {
		balance, err := t.balance(tx)
		if err != nil {
			return err
		}
		newBalance = balance.Add(balance, amount)
		if err := tx.Model(&models.TreasuryAccount{}).
			Where("id = ?", treasuryRowID).
			Update("balance_wei", newBalance.String()).Error; err != nil {
			return err
		}
		return t.events.record(tx, models.AuditEvent{
			Type:      EventDeposit,
			AmountWei: amount.String(),
		})
	})
	if err != nil {
		return nil, err
	}
	return newBalance, nil
}

// debit subtracts amount inside the caller's transaction, failing with
// ErrInsufficientFunds when the pool cannot cover it.
func (t *Treasury) debit(tx *gorm.DB, amount *big.Int) error {
	balance, err := t.balance(tx)
	if err != nil {
		return err
	}
	if balance.Cmp(amount) < 0 {
		return types.ErrInsufficientFunds
	}
	balance.Sub(balance, amount)
	return tx.Model(&models.TreasuryAccount{}).
		Where("id = ?", treasuryRowID).
		Update("balance_wei", balance.String()).Error
}
