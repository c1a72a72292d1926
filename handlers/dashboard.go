package handlers

import (
	"strconv"

	"defisalary/types"

	"github.com/gofiber/fiber/v2"
)

// Dashboard & Overview
type ContractStats struct {
	TotalEmployees  int64  `json:"total_employees"`
	ActiveEmployees int64  `json:"active_employees"`
	TotalUSDPaid    uint64 `json:"total_usd_paid"`
	BalanceWei      string `json:"balance_wei"`
	PriceWei        string `json:"price_wei,omitempty"`
}

func GetContractStats(c *fiber.Ctx) error {
	var stats ContractStats
	var err error

	if stats.TotalEmployees, err = Engine.EmployeeCount(); err != nil {
		return respondError(c, err)
	}
	if stats.ActiveEmployees, err = Engine.ActiveEmployeeCount(); err != nil {
		return respondError(c, err)
	}
	if stats.TotalUSDPaid, err = Engine.TotalUSDPaid(); err != nil {
		return respondError(c, err)
	}

	balance, err := Engine.Balance()
	if err != nil {
		return respondError(c, err)
	}
	stats.BalanceWei = balance.String()

	// a feed hiccup should not take the whole stats panel down
	if price, err := Engine.LatestPrice(c.Context()); err == nil {
		stats.PriceWei = price.String()
	}

	return c.JSON(types.APIResponse{
		Success: true,
		Data:    stats,
	})
}

func GetEvents(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "100"))

	events, err := Engine.Events(limit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(types.APIResponse{
		Success: true,
		Data:    events,
	})
}
