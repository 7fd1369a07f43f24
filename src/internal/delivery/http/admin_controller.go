package http

import (
	"investment-service/src/internal/usecase"
	"investment-service/src/pkg/log"
	"investment-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type AdminController struct {
	Log     log.Log
	UseCase *usecase.SchedulerUseCase
}

func NewAdminController(useCase *usecase.SchedulerUseCase, logger log.Log) *AdminController {
	return &AdminController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *AdminController) SimulateDay(ctx *fiber.Ctx) error {
	result := c.UseCase.SimulateDay(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Simulate Day", fiber.StatusOK, ctx)
}

func (c *AdminController) SchedulerStatus(ctx *fiber.Ctx) error {
	result := c.UseCase.Status(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Scheduler Status", fiber.StatusOK, ctx)
}
