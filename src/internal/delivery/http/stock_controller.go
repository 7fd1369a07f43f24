package http

import (
	"investment-service/src/internal/delivery/http/middleware"
	"investment-service/src/internal/model"
	"investment-service/src/internal/usecase"
	"investment-service/src/pkg/log"
	"investment-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type StockController struct {
	Log     log.Log
	UseCase *usecase.StockUseCase
}

func NewStockController(useCase *usecase.StockUseCase, logger log.Log) *StockController {
	return &StockController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *StockController) ListStocks(ctx *fiber.Ctx) error {
	request := &model.ListStocksRequest{
		CategoryID: ctx.Query("category_id"),
	}
	result := c.UseCase.ListStocks(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "List Stocks", fiber.StatusOK, ctx)
}

func (c *StockController) GetStock(ctx *fiber.Ctx) error {
	request := &model.GetStockRequest{
		StockID: ctx.Params("stockId"),
	}
	result := c.UseCase.GetStock(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Get Stock", fiber.StatusOK, ctx)
}

func (c *StockController) Portfolio(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := &model.GetPortfolioRequest{
		UserID: auth.UserID,
	}
	result := c.UseCase.Portfolio(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Get Portfolio", fiber.StatusOK, ctx)
}

func (c *StockController) Buy(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := new(model.TradeRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("StockController.Buy", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.UserID = auth.UserID
	result := c.UseCase.Buy(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Buy Stock", fiber.StatusOK, ctx)
}

func (c *StockController) Sell(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := new(model.TradeRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("StockController.Sell", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.UserID = auth.UserID
	result := c.UseCase.Sell(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Sell Stock", fiber.StatusOK, ctx)
}
