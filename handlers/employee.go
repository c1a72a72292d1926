package handlers

import (
	"strconv"

	"defisalary/middleware"
	"defisalary/types"

	"github.com/gofiber/fiber/v2"
)

type EmployeeRequest struct {
	WalletAddress string `json:"wallet_address"`
	Name          string `json:"name"`
	SalaryUSD     uint64 `json:"salary_usd"`
	PaymentDay    int    `json:"payment_day"`
}

func AddEmployee(c *fiber.Ctx) error {
	var req EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(types.APIResponse{
			Success: false,
			Error:   types.ErrInvalidInput,
		})
	}

	employee, err := Engine.AddEmployee(middleware.CallerWallet(c), req.WalletAddress, req.Name, req.SalaryUSD, req.PaymentDay)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(types.APIResponse{
		Success: true,
		Message: "Employee added successfully",
		Data:    employee,
	})
}

func UpdateEmployee(c *fiber.Ctx) error {
	wallet := c.Params("wallet")

	var req EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(types.APIResponse{
			Success: false,
			Error:   types.ErrInvalidInput,
		})
	}

	employee, err := Engine.UpdateEmployee(middleware.CallerWallet(c), wallet, req.Name, req.SalaryUSD, req.PaymentDay)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(types.APIResponse{
		Success: true,
		Message: "Employee updated successfully",
		Data:    employee,
	})
}

func RemoveEmployee(c *fiber.Ctx) error {
	wallet := c.Params("wallet")

	employee, err := Engine.RemoveEmployee(middleware.CallerWallet(c), wallet)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(types.APIResponse{
		Success: true,
		Message: "Employee removed successfully",
		Data:    employee,
	})
}

func GetEmployee(c *fiber.Ctx) error {
	employee, err := Engine.Employee(c.Params("wallet"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(types.APIResponse{
		Success: true,
		Data:    employee,
	})
}

func GetEmployeeWallet(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(types.APIResponse{
			Success: false,
			Error:   types.ErrInvalidInput,
		})
	}

	wallet, err := Engine.WalletByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(types.APIResponse{
		Success: true,
		Data:    fiber.Map{"id": id, "wallet": wallet},
	})
}

func GetActiveWallets(c *fiber.Ctx) error {
	wallets, err := Engine.ActiveWallets()
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(types.APIResponse{
		Success: true,
		Data:    wallets,
	})
}

func GetActiveEmployees(c *fiber.Ctx) error {
	employees, err := Engine.ActiveEmployees()
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(types.APIResponse{
		Success: true,
		Data:    employees,
	})
}

func GetInactiveEmployees(c *fiber.Ctx) error {
	employees, err := Engine.InactiveEmployees()
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(types.APIResponse{
		Success: true,
		Data:    employees,
	})
}
