package http

import (
	"investment-service/src/internal/delivery/http/middleware"
	"investment-service/src/internal/model"
	"investment-service/src/internal/usecase"
	"investment-service/src/pkg/log"
	"investment-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type GardenController struct {
	Log     log.Log
	UseCase *usecase.GardenUseCase
}

func NewGardenController(useCase *usecase.GardenUseCase, logger log.Log) *GardenController {
	return &GardenController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *GardenController) GetFarm(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := &model.GetFarmRequest{
		UserID: auth.UserID,
	}
	result := c.UseCase.GetFarm(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Get Farm", fiber.StatusOK, ctx)
}

func (c *GardenController) Plant(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := new(model.PlantRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("GardenController.Plant", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.UserID = auth.UserID
	result := c.UseCase.Plant(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Plant Seed", fiber.StatusOK, ctx)
}

func (c *GardenController) Water(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := &model.WaterRequest{
		UserID: auth.UserID,
		PlotID: ctx.Params("plotId"),
	}
	result := c.UseCase.Water(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Water Plot", fiber.StatusOK, ctx)
}

func (c *GardenController) Harvest(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := &model.HarvestRequest{
		UserID: auth.UserID,
		PlotID: ctx.Params("plotId"),
	}
	result := c.UseCase.Harvest(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Harvest Plot", fiber.StatusOK, ctx)
}

func (c *GardenController) SellProduce(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := new(model.SellProduceRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("GardenController.SellProduce", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.UserID = auth.UserID
	result := c.UseCase.SellProduce(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Sell Produce", fiber.StatusOK, ctx)
}

func (c *GardenController) BuyPlot(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := &model.BuyPlotRequest{
		UserID: auth.UserID,
	}
	result := c.UseCase.BuyPlot(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Buy Plot", fiber.StatusOK, ctx)
}
