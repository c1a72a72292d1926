package handlers

import (
	"math/big"
	"strconv"

	"defisalary/types"

	"github.com/gofiber/fiber/v2"
)

func GetPaymentHistory(c *fiber.Ctx) error {
	records, err := Engine.PaymentHistory(c.Params("wallet"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(types.APIResponse{
		Success: true,
		Data:    records,
	})
}

func GetTotalPaid(c *fiber.Ctx) error {
	total, err := Engine.TotalUSDPaid()
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(types.APIResponse{
		Success: true,
		Data:    fiber.Map{"total_usd_paid": total},
	})
}

func GetLatestPrice(c *fiber.Ctx) error {
	price, err := Engine.LatestPrice(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(types.APIResponse{
		Success: true,
		Data:    fiber.Map{"price_wei": price.String()},
	})
}

// ConvertUSD previews the wei amount a USD figure settles at right now.
func ConvertUSD(c *fiber.Ctx) error {
	usd, err := strconv.ParseUint(c.Params("usd"), 10, 64)
	if err != nil {
		return c.Status(400).JSON(types.APIResponse{
			Success: false,
			Error:   types.ErrInvalidInput,
		})
	}

	amount, err := Engine.ConvertUSD(c.Context(), usd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(types.APIResponse{
		Success: true,
		Data:    fiber.Map{"amount_usd": usd, "amount_wei": amount.String()},
	})
}

type DepositRequest struct {
	AmountWei string `json:"amount_wei"`
}

// Deposit funds the shared pool. Ungated on purpose: anyone may send funds.
func Deposit(c *fiber.Ctx) error {
	var req DepositRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(types.APIResponse{
			Success: false,
			Error:   types.ErrInvalidInput,
		})
	}

	amount, ok := new(big.Int).SetString(req.AmountWei, 10)
	if !ok || amount.Sign() <= 0 {
		return c.Status(400).JSON(types.APIResponse{
			Success: false,
			Error:   types.ErrInvalidInput,
		})
	}

	balance, err := Engine.Deposit(amount)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(types.APIResponse{
		Success: true,
		Message: "Deposit received",
		Data:    fiber.Map{"balance_wei": balance.String()},
	})
}

func GetBalance(c *fiber.Ctx) error {
	balance, err := Engine.Balance()
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(types.APIResponse{
		Success: true,
		Data:    fiber.Map{"balance_wei": balance.String()},
	})
}
