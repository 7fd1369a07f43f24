package http

import (
	"investment-service/src/internal/delivery/http/middleware"
	"investment-service/src/internal/model"
	"investment-service/src/internal/usecase"
	"investment-service/src/pkg/log"
	"investment-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type WalletController struct {
	Log     log.Log
	UseCase *usecase.WalletUseCase
}

func NewWalletController(useCase *usecase.WalletUseCase, logger log.Log) *WalletController {
	return &WalletController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *WalletController) GetWallet(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := &model.GetWalletRequest{
		UserID: auth.UserID,
	}
	result := c.UseCase.GetWallet(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Get Wallet", fiber.StatusOK, ctx)
}

func (c *WalletController) Transfer(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := new(model.TransferRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("WalletController.Transfer", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.UserID = auth.UserID
	result := c.UseCase.Transfer(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Transfer", fiber.StatusOK, ctx)
}

func (c *WalletController) ListTransactions(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := &model.ListTransactionsRequest{
		UserID: auth.UserID,
		Limit:  ctx.QueryInt("limit"),
		Offset: ctx.QueryInt("offset"),
	}
	result := c.UseCase.ListTransactions(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "List Transactions", fiber.StatusOK, ctx)
}
