package engine

import (
	"strings"
	"sync"

	"defisalary/models"
	"defisalary/types"

	"gorm.io/gorm"
)

const ownerRowID = 1

// AccessGate holds the single owner identity consulted by every mutating
// registry operation. The owner is durable: the configured address only
// seeds the gate on first boot, after that the persisted row wins, so a
// transfer survives restarts. The keeper's check/perform path is
// deliberately not gated.
type AccessGate struct {
	mu    sync.RWMutex
	owner string
}

func NewAccessGate(db *gorm.DB, owner string) (*AccessGate, error) {
	record := models.OwnerAccount{
		ID:     ownerRowID,
		Wallet: strings.ToLower(strings.TrimSpace(owner)),
	}
	if err := db.FirstOrCreate(&record, models.OwnerAccount{ID: ownerRowID}).Error; err != nil {
		return nil, err
	}
	return &AccessGate{owner: record.Wallet}, nil
}

func (g *AccessGate) Owner() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.owner
}

// Authorize returns ErrAccessDenied unless caller is the current owner.
// Addresses are compared case-insensitively.
func (g *AccessGate) Authorize(caller string) error {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !strings.EqualFold(strings.TrimSpace(caller), g.owner) {
		return types.ErrAccessDenied
	}
	return nil
}

// validateTransfer authorizes the caller and normalizes the next owner,
// without applying anything yet.
func (g *AccessGate) validateTransfer(caller, next string) (string, error) {
	if err := g.Authorize(caller); err != nil {
		return "", err
	}
	next = strings.ToLower(strings.TrimSpace(next))
	if next == "" {
		return "", types.ErrAccessDenied
	}
	return next, nil
}

// persist rewrites the owner row through the caller's transaction.
func (g *AccessGate) persist(tx *gorm.DB, next string) error {
	return tx.Model(&models.OwnerAccount{}).
		Where("id = ?", ownerRowID).
		Update("wallet", next).Error
}

// setOwner swaps the in-memory owner once the row is committed.
func (g *AccessGate) setOwner(next string) {
	g.mu.Lock()
	g.owner = next
	g.mu.Unlock()
}
