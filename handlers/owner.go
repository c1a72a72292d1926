package handlers

import (
	"defisalary/middleware"
	"defisalary/types"

	"github.com/gofiber/fiber/v2"
)

func GetOwner(c *fiber.Ctx) error {
	return c.JSON(types.APIResponse{
		Success: true,
		Data:    fiber.Map{"owner": Engine.Owner()},
	})
}

type TransferOwnershipRequest struct {
	NewOwner string `json:"new_owner"`
}

func TransferOwnership(c *fiber.Ctx) error {
	var req TransferOwnershipRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(types.APIResponse{
			Success: false,
			Error:   types.ErrInvalidInput,
		})
	}

	if err := Engine.TransferOwnership(middleware.CallerWallet(c), req.NewOwner); err != nil {
		return respondError(c, err)
	}

	return c.JSON(types.APIResponse{
		Success: true,
		Message: "Ownership transferred",
		Data:    fiber.Map{"owner": Engine.Owner()},
	})
}
