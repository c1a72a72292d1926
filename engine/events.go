package engine

import (
	"time"

	"defisalary/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Audit event types consumed by the dashboard.
const (
	EventEmployeeAdded        = "employee_added"
	EventEmployeeUpdated      = "employee_updated"
	EventEmployeeRemoved      = "employee_removed"
	EventSalaryPaid           = "salary_paid"
	EventDeposit              = "deposit"
	EventOwnershipTransferred = "ownership_transferred"
)

// Recorder appends audit events. Events are never updated or deleted.
type Recorder struct {
	db *gorm.DB
}

func NewRecorder(db *gorm.DB) *Recorder {
	return &Recorder{db: db}
}

// record writes the event through tx so it commits or rolls back with the
// mutation that produced it.
func (r *Recorder) record(tx *gorm.DB, ev models.AuditEvent) error {
	ev.ID = uuid.New().String()
	ev.CreatedAt = time.Now()
	return tx.Create(&ev).Error
}

// List returns the most recent events, newest first.
func (r *Recorder) List(limit int) ([]models.AuditEvent, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var events []models.AuditEvent
	err := r.db.Order("created_at DESC, id DESC").Limit(limit).Find(&events).Error
	return events, err
}
