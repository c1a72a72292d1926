package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEmployeeHandler(t *testing.T) {
	addBody := EmployeeRequest{
		WalletAddress: employee1,
		Name:          "John Doe",
		SalaryUSD:     5000,
		PaymentDay:    15,
	}

	t.Run("Owner Adds Employee", func(t *testing.T) {
		app, _, _ := setupTest(t)

		resp, parsed := doJSON(t, app, "POST", "/employees", createTestToken(t, testOwner), addBody)
		assert.Equal(t, 200, resp.StatusCode)
		assert.True(t, parsed.Success)
	})

	t.Run("Missing Token Is Unauthorized", func(t *testing.T) {
		app, _, _ := setupTest(t)

		resp, _ := doJSON(t, app, "POST", "/employees", "", addBody)
		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("Non Owner Is Forbidden", func(t *testing.T) {
		app, _, _ := setupTest(t)

		resp, parsed := doJSON(t, app, "POST", "/employees", createTestToken(t, nonOwner), addBody)
		assert.Equal(t, 403, resp.StatusCode)
		assert.False(t, parsed.Success)
	})

	t.Run("Invalid Payment Day Is Bad Request", func(t *testing.T) {
		app, _, _ := setupTest(t)

		bad := addBody
		bad.PaymentDay = 30
		resp, _ := doJSON(t, app, "POST", "/employees", createTestToken(t, testOwner), bad)
		assert.Equal(t, 400, resp.StatusCode)
	})

	t.Run("Duplicate Wallet Is Conflict", func(t *testing.T) {
		app, _, _ := setupTest(t)

		token := createTestToken(t, testOwner)
		resp, _ := doJSON(t, app, "POST", "/employees", token, addBody)
		require.Equal(t, 200, resp.StatusCode)
		resp, _ = doJSON(t, app, "POST", "/employees", token, addBody)
		assert.Equal(t, 409, resp.StatusCode)
	})
}

func TestEmployeeReadHandlers(t *testing.T) {
	app, _, _ := setupTest(t)
	token := createTestToken(t, testOwner)

	resp, _ := doJSON(t, app, "POST", "/employees", token, EmployeeRequest{
		WalletAddress: employee1, Name: "John Doe", SalaryUSD: 5000, PaymentDay: 15,
	})
	require.Equal(t, 200, resp.StatusCode)

	t.Run("Get By Wallet", func(t *testing.T) {
		resp, parsed := doJSON(t, app, "GET", "/employees/"+employee1, "", nil)
		assert.Equal(t, 200, resp.StatusCode)
		data := parsed.Data.(map[string]interface{})
		assert.Equal(t, "John Doe", data["name"])
		assert.Equal(t, true, data["active"])
	})

	t.Run("Get Wallet By Id", func(t *testing.T) {
		resp, parsed := doJSON(t, app, "GET", "/employees/id/1", "", nil)
		assert.Equal(t, 200, resp.StatusCode)
		data := parsed.Data.(map[string]interface{})
		assert.Equal(t, employee1, data["wallet"])
	})

	t.Run("Unknown Wallet Is Not Found", func(t *testing.T) {
		resp, _ := doJSON(t, app, "GET", "/employees/"+nonOwner, "", nil)
		assert.Equal(t, 404, resp.StatusCode)
	})

	t.Run("Remove Then Listings Split", func(t *testing.T) {
		resp, _ := doJSON(t, app, "DELETE", "/employees/"+employee1, token, nil)
		require.Equal(t, 200, resp.StatusCode)

		resp, parsed := doJSON(t, app, "GET", "/employees", "", nil)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Empty(t, parsed.Data)

		resp, parsed = doJSON(t, app, "GET", "/employees/inactive", "", nil)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Len(t, parsed.Data.([]interface{}), 1)
	})
}
