package services

import (
	"context"
	"errors"
	"time"

	"defisalary/engine"
	"defisalary/types"
	"defisalary/utils"

	"go.uber.org/zap"
)

// Keeper is the in-process periodic trigger: every interval it asks the
// engine whether upkeep is due and, if so, performs it. The engine itself
// stays cadence-free; production deployments can disable this and drive the
// HTTP trigger endpoints from an external automation network instead.
type Keeper struct {
	engine   *engine.Engine
	interval time.Duration
}

func NewKeeper(eng *engine.Engine, interval time.Duration) *Keeper {
	return &Keeper{engine: eng, interval: interval}
}

// Run blocks until ctx is done. One due employee is settled per tick; the
// next tick picks up the next one.
func (k *Keeper) Run(ctx context.Context) {
	ticker := time.NewTicker(k.interval)
	defer ticker.Stop()

	utils.Logger.Info("Keeper started", zap.Duration("interval", k.interval))
	for {
		select {
		case <-ctx.Done():
			utils.Logger.Info("Keeper stopped")
			return
		case <-ticker.C:
			k.tick(ctx)
		}
	}
}

func (k *Keeper) tick(ctx context.Context) {
	due, selector, err := k.engine.CheckUpkeep(nil)
	if err != nil {
		utils.Logger.Error("Upkeep check failed", zap.Error(err))
		return
	}
	if !due {
		return
	}

	record, err := k.engine.PerformUpkeep(ctx, selector)
	if err != nil {
		// lost the race with another trigger, or transient; next cycle retries
		if errors.Is(err, types.ErrUpkeepNotDue) {
			return
		}
		utils.Logger.Error("Upkeep execution failed",
			zap.String("wallet", string(selector)),
			zap.Error(err))
		return
	}

	utils.Logger.Info("Salary paid",
		zap.Uint("payment_id", record.ID),
		zap.String("wallet", record.Wallet),
		zap.Uint64("amount_usd", record.AmountUSD),
		zap.String("amount_wei", record.AmountWei))
}
