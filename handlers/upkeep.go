package handlers

import (
	"encoding/base64"

	"defisalary/types"

	"github.com/gofiber/fiber/v2"
)

// The keeper endpoints are intentionally unauthenticated: the periodic
// caller is an external, non-owner principal, and PerformUpkeep re-validates
// everything before mutating.

func CheckUpkeep(c *fiber.Ctx) error {
	due, selector, err := Engine.CheckUpkeep(nil)
	if err != nil {
		return respondError(c, err)
	}

	data := fiber.Map{"upkeep_needed": due}
	if due {
		data["perform_data"] = base64.StdEncoding.EncodeToString(selector)
	}

	return c.JSON(types.APIResponse{
		Success: true,
		Data:    data,
	})
}

type PerformUpkeepRequest struct {
	PerformData string `json:"perform_data"`
}

func PerformUpkeep(c *fiber.Ctx) error {
	var req PerformUpkeepRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(types.APIResponse{
			Success: false,
			Error:   types.ErrInvalidInput,
		})
	}

	selector, err := base64.StdEncoding.DecodeString(req.PerformData)
	if err != nil {
		return c.Status(400).JSON(types.APIResponse{
			Success: false,
			Error:   types.ErrInvalidInput,
		})
	}

	record, err := Engine.PerformUpkeep(c.Context(), selector)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(types.APIResponse{
		Success: true,
		Message: "Salary paid",
		Data:    record,
	})
}
