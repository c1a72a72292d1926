package engine

import (
	"errors"
	"time"

	"defisalary/models"
	"defisalary/types"

	"gorm.io/gorm"
)

// Registry owns all employee records. Mutations are owner-gated by the
// engine before they reach here.
type Registry struct {
	db     *gorm.DB
	events *Recorder
}

func NewRegistry(db *gorm.DB, events *Recorder) *Registry {
	return &Registry{db: db, events: events}
}

// Payment days are capped at 29 so every month, February included, has a
// matching day.
func validPaymentDay(day int) bool {
	return day >= 1 && day <= 29
}

// Add registers a new payee. The wallet must never have been registered
// before, active or not.
func (r *Registry) Add(wallet, name string, salaryUSD uint64, paymentDay int) (models.Employee, error) {
	if !validPaymentDay(paymentDay) {
		return models.Employee{}, types.ErrInvalidPaymentDay
	}

	employee := models.Employee{
		WalletAddress: wallet,
		Name:          name,
		SalaryUSD:     salaryUSD,
		PaymentDay:    paymentDay,
		JoinedAt:      time.Now(),
		Active:        true,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Employee{}).Where("wallet_address = ?", wallet).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return types.ErrEmployeeExists
		}
		if err := tx.Create(&employee).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.ActiveAddress{Wallet: wallet}).Error; err != nil {
			return err
		}
		return r.events.record(tx, models.AuditEvent{
			Type:       EventEmployeeAdded,
			EmployeeID: employee.ID,
			Wallet:     wallet,
			AmountUSD:  salaryUSD,
		})
	})
	if err != nil {
		return models.Employee{}, err
	}
	return employee, nil
}

// Update rewrites name, salary and payment day of an active employee.
// lastPaidPeriod is left alone so an update never re-arms the current cycle.
func (r *Registry) Update(wallet, name string, salaryUSD uint64, paymentDay int) (models.Employee, error) {
	if !validPaymentDay(paymentDay) {
		return models.Employee{}, types.ErrInvalidPaymentDay
	}

	var employee models.Employee
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("wallet_address = ?", wallet).First(&employee).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.ErrEmployeeNotFound
			}
			return err
		}
		if !employee.Active {
			return types.ErrEmployeeNotActive
		}
		employee.Name = name
		employee.SalaryUSD = salaryUSD
		employee.PaymentDay = paymentDay
		if err := tx.Save(&employee).Error; err != nil {
			return err
		}
		return r.events.record(tx, models.AuditEvent{
			Type:       EventEmployeeUpdated,
			EmployeeID: employee.ID,
			Wallet:     wallet,
		})
	})
	if err != nil {
		return models.Employee{}, err
	}
	return employee, nil
}

// Remove deactivates an employee and drops the wallet from the active
// enumeration. The record itself stays; ids are never reused.
func (r *Registry) Remove(wallet string) (models.Employee, error) {
	var employee models.Employee
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("wallet_address = ?", wallet).First(&employee).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.ErrEmployeeNotFound
			}
			return err
		}
		if !employee.Active {
			return types.ErrEmployeeNotActive
		}
		employee.Active = false
		if err := tx.Save(&employee).Error; err != nil {
			return err
		}
		if err := tx.Where("wallet = ?", wallet).Delete(&models.ActiveAddress{}).Error; err != nil {
			return err
		}
		return r.events.record(tx, models.AuditEvent{
			Type:       EventEmployeeRemoved,
			EmployeeID: employee.ID,
			Wallet:     wallet,
		})
	})
	if err != nil {
		return models.Employee{}, err
	}
	return employee, nil
}

// ByWallet returns the full record for a wallet, registered or not.
func (r *Registry) ByWallet(wallet string) (models.Employee, error) {
	var employee models.Employee
	err := r.db.Where("wallet_address = ?", wallet).First(&employee).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Employee{}, types.ErrEmployeeNotFound
	}
	return employee, err
}

// WalletByID maps an employee id back to its wallet.
func (r *Registry) WalletByID(id uint) (string, error) {
	var employee models.Employee
	err := r.db.First(&employee, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", types.ErrEmployeeNotFound
	}
	return employee.WalletAddress, err
}

// ActiveWallets enumerates active wallets in registration order.
func (r *Registry) ActiveWallets() ([]string, error) {
	var addresses []models.ActiveAddress
	if err := r.db.Order("id").Find(&addresses).Error; err != nil {
		return nil, err
	}
	wallets := make([]string, 0, len(addresses))
	for _, addr := range addresses {
		wallets = append(wallets, addr.Wallet)
	}
	return wallets, nil
}

func (r *Registry) ActiveEmployees() ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.Where("active = ?", true).Order("id").Find(&employees).Error
	return employees, err
}

func (r *Registry) InactiveEmployees() ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.Where("active = ?", false).Order("id").Find(&employees).Error
	return employees, err
}

// Count is the number of employees ever registered.
func (r *Registry) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Employee{}).Count(&count).Error
	return count, err
}

func (r *Registry) ActiveCount() (int64, error) {
	var count int64
	err := r.db.Model(&models.Employee{}).Where("active = ?", true).Count(&count).Error
	return count, err
}
