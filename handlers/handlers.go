package handlers

import (
	"errors"

	"defisalary/engine"
	"defisalary/types"
	"defisalary/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var (
	Engine *engine.Engine
)

func InitHandlers(eng *engine.Engine) {
	Engine = eng
}

// respondError maps the engine's failure taxonomy onto HTTP statuses. Every
// engine failure is all-or-nothing, so there is nothing to clean up here.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, types.ErrAccessDenied):
		return c.Status(403).JSON(types.APIResponse{Success: false, Error: err.Error()})
	case errors.Is(err, types.ErrInvalidPaymentDay):
		return c.Status(400).JSON(types.APIResponse{Success: false, Error: err.Error()})
	case errors.Is(err, types.ErrEmployeeNotFound):
		return c.Status(404).JSON(types.APIResponse{Success: false, Error: err.Error()})
	case errors.Is(err, types.ErrEmployeeExists),
		errors.Is(err, types.ErrEmployeeNotActive),
		errors.Is(err, types.ErrUpkeepNotDue):
		return c.Status(409).JSON(types.APIResponse{Success: false, Error: err.Error()})
	case errors.Is(err, types.ErrInsufficientFunds):
		return c.Status(402).JSON(types.APIResponse{Success: false, Error: err.Error()})
	case errors.Is(err, types.ErrOracleUnavailable):
		return c.Status(503).JSON(types.APIResponse{Success: false, Error: err.Error()})
	default:
		utils.Logger.Error("Unexpected engine error", zap.Error(err))
		return c.Status(500).JSON(types.APIResponse{Success: false, Error: types.ErrInternalError})
	}
}
