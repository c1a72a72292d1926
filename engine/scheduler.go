package engine

import (
	"context"
	"errors"
	"sync"
	"time"

	"defisalary/models"
	"defisalary/types"

	"gorm.io/gorm"
)

// periodOf renders the payment cycle an instant belongs to. One payment per
// employee per period.
func periodOf(t time.Time) string {
	return t.Format("2006-01")
}

// Scheduler runs the due-check / execute protocol. CheckUpkeep is advisory
// and read-only; PerformUpkeep re-derives due-ness before touching anything,
// which is what makes duplicate or racing keeper calls safe.
type Scheduler struct {
	db       *gorm.DB
	oracle   *Oracle
	treasury *Treasury
	ledger   *Ledger
	events   *Recorder

	// Now is the clock used for day-of-month and period matching. Tests pin it.
	Now func() time.Time

	mu     sync.Mutex
	cursor uint // last active_addresses.id the scan stopped at
}

func NewScheduler(db *gorm.DB, oracle *Oracle, treasury *Treasury, ledger *Ledger, events *Recorder) *Scheduler {
	return &Scheduler{
		db:       db,
		oracle:   oracle,
		treasury: treasury,
		ledger:   ledger,
		events:   events,
		Now:      time.Now,
	}
}

func (s *Scheduler) due(emp models.Employee, now time.Time) bool {
	return emp.Active &&
		emp.PaymentDay == now.Day() &&
		emp.LastPaidPeriod != periodOf(now)
}

// checkScanBatch caps how many active addresses one CheckUpkeep call
// inspects. Larger registries are covered across successive calls via the
// cursor instead of inside a single one.
const checkScanBatch = 50

// CheckUpkeep scans a bounded window of the active enumeration for the
// first due employee, resuming from where the previous call stopped rather
// than restarting at the front, so per-call cost stays flat and repeated
// invocations rotate fairly through the registry. The returned selector is
// the employee's wallet; callers must not treat it as proof of due-ness,
// PerformUpkeep re-validates.
func (s *Scheduler) CheckUpkeep(_ []byte) (bool, []byte, error) {
	now := s.Now()

	s.mu.Lock()
	cursor := s.cursor
	s.mu.Unlock()

	// one window: ids above the cursor first, then wrap
	var addresses []models.ActiveAddress
	err := s.db.Where("id > ?", cursor).Order("id").Limit(checkScanBatch).Find(&addresses).Error
	if err != nil {
		return false, nil, err
	}
	if len(addresses) < checkScanBatch {
		var wrapped []models.ActiveAddress
		err := s.db.Where("id <= ?", cursor).Order("id").Limit(checkScanBatch - len(addresses)).Find(&wrapped).Error
		if err != nil {
			return false, nil, err
		}
		addresses = append(addresses, wrapped...)
	}
	if len(addresses) == 0 {
		return false, nil, nil
	}

	wallets := make([]string, len(addresses))
	for i, addr := range addresses {
		wallets[i] = addr.Wallet
	}
	var employees []models.Employee
	if err := s.db.Where("wallet_address IN ?", wallets).Find(&employees).Error; err != nil {
		return false, nil, err
	}
	byWallet := make(map[string]models.Employee, len(employees))
	for _, emp := range employees {
		byWallet[emp.WalletAddress] = emp
	}

	for _, addr := range addresses {
		emp, ok := byWallet[addr.Wallet]
		if !ok {
			continue
		}
		if s.due(emp, now) {
			s.setCursor(addr.ID)
			return true, []byte(emp.WalletAddress), nil
		}
	}
	s.setCursor(addresses[len(addresses)-1].ID)
	return false, nil, nil
}

func (s *Scheduler) setCursor(id uint) {
	s.mu.Lock()
	s.cursor = id
	s.mu.Unlock()
}

// PerformUpkeep settles the employee the selector names. Due-ness is
// re-derived from scratch; a stale or duplicate selector fails with
// ErrUpkeepNotDue and mutates nothing. Stamping the period, debiting the
// treasury and appending the ledger record commit as one transaction.
func (s *Scheduler) PerformUpkeep(ctx context.Context, selector []byte) (models.PaymentRecord, error) {
	wallet := string(selector)
	if wallet == "" {
		return models.PaymentRecord{}, types.ErrUpkeepNotDue
	}
	now := s.Now()

	var record models.PaymentRecord
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var emp models.Employee
		if err := tx.Where("wallet_address = ?", wallet).First(&emp).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.ErrUpkeepNotDue
			}
			return err
		}
		if !s.due(emp, now) {
			return types.ErrUpkeepNotDue
		}

		amountWei, err := s.oracle.Convert(ctx, emp.SalaryUSD)
		if err != nil {
			return err
		}
		if err := s.treasury.debit(tx, amountWei); err != nil {
			return err
		}

		emp.LastPaidPeriod = periodOf(now)
		if err := tx.Save(&emp).Error; err != nil {
			return err
		}

		record, err = s.ledger.append(tx, emp, emp.SalaryUSD, amountWei, now)
		if err != nil {
			return err
		}
		return s.events.record(tx, models.AuditEvent{
			Type:       EventSalaryPaid,
			EmployeeID: emp.ID,
			Wallet:     emp.WalletAddress,
			AmountUSD:  emp.SalaryUSD,
			AmountWei:  amountWei.String(),
		})
	})
	if err != nil {
		return models.PaymentRecord{}, err
	}
	return record, nil
}
