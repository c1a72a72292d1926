package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"defisalary/config"
	"defisalary/engine"
	"defisalary/middleware"
	"defisalary/models"
	"defisalary/types"
	"defisalary/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	testOwner = "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266"
	employee1 = "0x70997970c51812dc3a010c7d01b50e0d17dc79c8"
	nonOwner  = "0x90f79bf6eb2c4f870365e785982e1f101e93b906"
)

func init() {
	config.AppConfig.JWTSecret = "test-secret"
	config.AppConfig.OwnerAddress = testOwner
	utils.InitLogger()
}

func setupTest(t *testing.T) (*fiber.App, *engine.Engine, *engine.StaticFeed) {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Employee{},
		&models.ActiveAddress{},
		&models.PaymentRecord{},
		&models.TreasuryAccount{},
		&models.OwnerAccount{},
		&models.AuditEvent{},
	))

	feed := engine.NewStaticFeed(big.NewInt(2000_0000_0000)) // $2000, 8 decimals
	eng, err := engine.New(db, testOwner, feed)
	require.NoError(t, err)
	InitHandlers(eng)

	app := fiber.New()
	app.Post("/employees", middleware.RequireAuth, AddEmployee)
	app.Put("/employees/:wallet", middleware.RequireAuth, UpdateEmployee)
	app.Delete("/employees/:wallet", middleware.RequireAuth, RemoveEmployee)
	app.Get("/employees", GetActiveEmployees)
	app.Get("/employees/inactive", GetInactiveEmployees)
	app.Get("/employees/wallets", GetActiveWallets)
	app.Get("/employees/id/:id", GetEmployeeWallet)
	app.Get("/employees/:wallet", GetEmployee)
	app.Get("/employees/:wallet/payments", GetPaymentHistory)
	app.Get("/payroll/total", GetTotalPaid)
	app.Get("/price", GetLatestPrice)
	app.Get("/convert/:usd", ConvertUSD)
	app.Get("/balance", GetBalance)
	app.Get("/owner", GetOwner)
	app.Get("/stats", GetContractStats)
	app.Get("/events", GetEvents)
	app.Post("/deposit", Deposit)
	app.Post("/upkeep/check", CheckUpkeep)
	app.Post("/upkeep/perform", PerformUpkeep)

	return app, eng, feed
}

// createTestToken mints a bearer token carrying the caller's wallet claim.
func createTestToken(t *testing.T, wallet string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"wallet": wallet,
		"exp":    time.Now().Add(24 * time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(config.AppConfig.JWTSecret))
	require.NoError(t, err)
	return signed
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, types.APIResponse) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(data))
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	var parsed types.APIResponse
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &parsed))
	}
	return resp, parsed
}
