package route

import (
	"investment-service/src/internal/delivery/http"
	"investment-service/src/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v2"
)

type RouteConfig struct {
	App              *fiber.App
	WalletController *http.WalletController
	GardenController *http.GardenController
	StockController  *http.StockController
	AdminController  *http.AdminController
	AuthMiddleware   fiber.Handler
}

func (c *RouteConfig) Setup() {
	c.App.Use(middleware.NewLogger())
	c.App.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})
	c.SetupAuthRoute()
}

func (c *RouteConfig) SetupAuthRoute() {
	c.App.Use(c.AuthMiddleware)

	c.App.Get("/wallet/v1", c.WalletController.GetWallet)
	c.App.Post("/wallet/v1/transfer", c.WalletController.Transfer)
	c.App.Get("/wallet/v1/transactions", c.WalletController.ListTransactions)

	c.App.Get("/garden/v1/farm", c.GardenController.GetFarm)
	c.App.Post("/garden/v1/plant", c.GardenController.Plant)
	c.App.Post("/garden/v1/water/:plotId", c.GardenController.Water)
	c.App.Post("/garden/v1/harvest/:plotId", c.GardenController.Harvest)
	c.App.Post("/garden/v1/sell", c.GardenController.SellProduce)
	c.App.Post("/garden/v1/plots", c.GardenController.BuyPlot)

	c.App.Get("/stocks/v1/list", c.StockController.ListStocks)
	c.App.Get("/stocks/v1/portfolio", c.StockController.Portfolio)
	c.App.Get("/stocks/v1/:stockId", c.StockController.GetStock)
	c.App.Post("/stocks/v1/buy", c.StockController.Buy)
	c.App.Post("/stocks/v1/sell", c.StockController.Sell)

	admin := c.App.Group("/admin/v1", middleware.VerifyAdmin())
	admin.Post("/investments/simulate-day", c.AdminController.SimulateDay)
	admin.Get("/investments/scheduler-status", c.AdminController.SchedulerStatus)
}
