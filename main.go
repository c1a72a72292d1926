package main

import (
	"context"
	"log"

	"defisalary/config"
	"defisalary/engine"
	"defisalary/handlers"
	"defisalary/middleware"
	"defisalary/models"
	"defisalary/services"
	"defisalary/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func initServices() (*engine.Engine, error) {
	var err error
	DB, err = gorm.Open(sqlite.Open(config.AppConfig.DBPath), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = DB.AutoMigrate(
		&models.Employee{},
		&models.ActiveAddress{},
		&models.PaymentRecord{},
		&models.TreasuryAccount{},
		&models.OwnerAccount{},
		&models.AuditEvent{},
	)
	if err != nil {
		return nil, err
	}

	feed := engine.NewFeedClient(config.AppConfig.PriceFeedURL, config.AppConfig.PriceFeedTimeout)
	return engine.New(DB, config.AppConfig.OwnerAddress, feed)
}

func registerRoutes(app *fiber.App) {
	// owner-gated mutations
	app.Post("/employees", middleware.RequireAuth, handlers.AddEmployee)
	app.Put("/employees/:wallet", middleware.RequireAuth, handlers.UpdateEmployee)
	app.Delete("/employees/:wallet", middleware.RequireAuth, handlers.RemoveEmployee)
	app.Post("/owner/transfer", middleware.RequireAuth, handlers.TransferOwnership)

	// read API
	app.Get("/employees", handlers.GetActiveEmployees)
	app.Get("/employees/inactive", handlers.GetInactiveEmployees)
	app.Get("/employees/wallets", handlers.GetActiveWallets)
	app.Get("/employees/id/:id", handlers.GetEmployeeWallet)
	app.Get("/employees/:wallet", handlers.GetEmployee)
	app.Get("/employees/:wallet/payments", handlers.GetPaymentHistory)
	app.Get("/payroll/total", handlers.GetTotalPaid)
	app.Get("/price", handlers.GetLatestPrice)
	app.Get("/convert/:usd", handlers.ConvertUSD)
	app.Get("/balance", handlers.GetBalance)
	app.Get("/owner", handlers.GetOwner)
	app.Get("/stats", handlers.GetContractStats)
	app.Get("/events", handlers.GetEvents)

	// funding and keeper trigger, deliberately unauthenticated
	app.Post("/deposit", handlers.Deposit)
	app.Post("/upkeep/check", handlers.CheckUpkeep)
	app.Post("/upkeep/perform", handlers.PerformUpkeep)
}

func main() {
	config.LoadConfig()
	utils.InitLogger()

	eng, err := initServices()
	if err != nil {
		log.Fatal("Failed to initialize services:", err)
	}
	handlers.InitHandlers(eng)

	if config.AppConfig.KeeperEnabled {
		keeper := services.NewKeeper(eng, config.AppConfig.KeeperInterval)
		go keeper.Run(context.Background())
	}

	app := fiber.New()
	registerRoutes(app)

	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
