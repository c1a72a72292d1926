package engine

import (
	"context"
	"math/big"
	"sync"

	"defisalary/models"

	"gorm.io/gorm"
)

// Engine is the settlement service: one object owning the access gate,
// registry, ledger, treasury, oracle and scheduler. A single mutex
// serializes every mutation so no caller ever observes a half-applied
// update; reads go straight to storage and stay advisory.
type Engine struct {
	mu sync.Mutex

	db        *gorm.DB
	gate      *AccessGate
	registry  *Registry
	ledger    *Ledger
	treasury  *Treasury
	oracle    *Oracle
	scheduler *Scheduler
	events    *Recorder
}

func New(db *gorm.DB, owner string, feed PriceFeed) (*Engine, error) {
	events := NewRecorder(db)
	treasury, err := NewTreasury(db, events)
	if err != nil {
		return nil, err
	}
	oracle := NewOracle(feed)
	ledger := NewLedger(db)
	gate, err := NewAccessGate(db, owner)
	if err != nil {
		return nil, err
	}

	return &Engine{
		db:        db,
		gate:      gate,
		registry:  NewRegistry(db, events),
		ledger:    ledger,
		treasury:  treasury,
		oracle:    oracle,
		scheduler: NewScheduler(db, oracle, treasury, ledger, events),
		events:    events,
	}, nil
}

// Scheduler exposes the underlying scheduler so callers can pin its clock.
func (e *Engine) Scheduler() *Scheduler {
	return e.scheduler
}

// --- owner-gated mutations ---

func (e *Engine) AddEmployee(caller, wallet, name string, salaryUSD uint64, paymentDay int) (models.Employee, error) {
	if err := e.gate.Authorize(caller); err != nil {
		return models.Employee{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.registry.Add(wallet, name, salaryUSD, paymentDay)
}

func (e *Engine) UpdateEmployee(caller, wallet, name string, salaryUSD uint64, paymentDay int) (models.Employee, error) {
	if err := e.gate.Authorize(caller); err != nil {
		return models.Employee{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.registry.Update(wallet, name, salaryUSD, paymentDay)
}

func (e *Engine) RemoveEmployee(caller, wallet string) (models.Employee, error) {
	if err := e.gate.Authorize(caller); err != nil {
		return models.Employee{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.registry.Remove(wallet)
}

// TransferOwnership hands the gate to next. The owner row and the audit
// event commit together; the in-memory gate only flips after they do.
func (e *Engine) TransferOwnership(caller, next string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	previous := e.gate.Owner()
	next, err := e.gate.validateTransfer(caller, next)
	if err != nil {
		return err
	}

	err = e.db.Transaction(func(tx *gorm.DB) error {
		if err := e.gate.persist(tx, next); err != nil {
			return err
		}
		return e.events.record(tx, models.AuditEvent{
			Type:       EventOwnershipTransferred,
			Wallet:     next,
			FromWallet: previous,
		})
	})
	if err != nil {
		return err
	}

	e.gate.setOwner(next)
	return nil
}

// --- keeper protocol (not owner-gated) ---

func (e *Engine) CheckUpkeep(hint []byte) (bool, []byte, error) {
	return e.scheduler.CheckUpkeep(hint)
}

func (e *Engine) PerformUpkeep(ctx context.Context, selector []byte) (models.PaymentRecord, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scheduler.PerformUpkeep(ctx, selector)
}

// --- funding ---

// Deposit credits the shared pool. Deliberately ungated: anyone may fund the
// contract.
func (e *Engine) Deposit(amount *big.Int) (*big.Int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.treasury.Deposit(amount)
}

// --- read API ---

func (e *Engine) Owner() string { return e.gate.Owner() }

func (e *Engine) Employee(wallet string) (models.Employee, error) { return e.registry.ByWallet(wallet) }

func (e *Engine) WalletByID(id uint) (string, error) { return e.registry.WalletByID(id) }

func (e *Engine) ActiveWallets() ([]string, error) { return e.registry.ActiveWallets() }

func (e *Engine) ActiveEmployees() ([]models.Employee, error) { return e.registry.ActiveEmployees() }

func (e *Engine) InactiveEmployees() ([]models.Employee, error) {
	return e.registry.InactiveEmployees()
}

func (e *Engine) EmployeeCount() (int64, error) { return e.registry.Count() }

func (e *Engine) ActiveEmployeeCount() (int64, error) { return e.registry.ActiveCount() }

func (e *Engine) PaymentHistory(wallet string) ([]models.PaymentRecord, error) {
	return e.ledger.HistoryByWallet(wallet)
}

func (e *Engine) TotalUSDPaid() (uint64, error) { return e.ledger.TotalUSDPaid() }

func (e *Engine) LatestPrice(ctx context.Context) (*big.Int, error) { return e.oracle.LatestPrice(ctx) }

func (e *Engine) ConvertUSD(ctx context.Context, usd uint64) (*big.Int, error) {
	return e.oracle.Convert(ctx, usd)
}

func (e *Engine) Balance() (*big.Int, error) { return e.treasury.Balance() }

func (e *Engine) Events(limit int) ([]models.AuditEvent, error) { return e.events.List(limit) }
