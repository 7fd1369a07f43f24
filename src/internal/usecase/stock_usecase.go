package usecase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"investment-service/src/internal/entity"
	"investment-service/src/internal/gateway/messaging"
	"investment-service/src/internal/model"
	"investment-service/src/internal/model/converter"
	"investment-service/src/internal/repository"
	"investment-service/src/pkg/clock"
	httpError "investment-service/src/pkg/http-error"
	"investment-service/src/pkg/log"
	"investment-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const priceHistoryLimit = 30

type StockUseCase struct {
	Log                 log.Log
	Validate            *validator.Validate
	StockRepository     *repository.StockRepository
	WalletRepository    *repository.WalletRepository
	Config              *viper.Viper
	TransactionProducer *messaging.TransactionProducer
	Clock               clock.Clock

	window marketWindow
}

func NewStockUseCase(
	logger log.Log,
	validate *validator.Validate,
	stockRepository *repository.StockRepository,
	walletRepository *repository.WalletRepository,
	cfg *viper.Viper,
	transactionProducer *messaging.TransactionProducer,
	clk clock.Clock,
) *StockUseCase {
	return &StockUseCase{
		Log:                 logger,
		Validate:            validate,
		StockRepository:     stockRepository,
		WalletRepository:    walletRepository,
		Config:              cfg,
		TransactionProducer: transactionProducer,
		Clock:               clk,
		window:              loadMarketWindow(cfg, "market.stocks"),
	}
}

func (c *StockUseCase) ListStocks(ctx context.Context, request *model.ListStocksRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	stocks, err := c.StockRepository.FindStocks(ctx, request.CategoryID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to load stocks: %v", err)
		result.Error = errObj
		c.Log.Error("stock-usecase", errObj.Message, "ListStocks", request.CategoryID)
		return result
	}

	responses := make([]model.StockResponse, 0, len(stocks))
	for i := range stocks {
		responses = append(responses, converter.StockToResponse(&stocks[i]))
	}
	result.Data = responses
	return result
}

func (c *StockUseCase) GetStock(ctx context.Context, request *model.GetStockRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	stock, err := c.StockRepository.FindStock(ctx, request.StockID)
	if err != nil {
		result.Error = c.stockError(err, request.StockID, "GetStock")
		return result
	}

	history, err := c.StockRepository.FindPriceHistory(ctx, stock.StockID, priceHistoryLimit)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to load price history: %v", err)
		result.Error = errObj
		c.Log.Error("stock-usecase", errObj.Message, "GetStock", stock.StockID)
		return result
	}

	result.Data = converter.StockToDetailResponse(stock, history)
	return result
}

func (c *StockUseCase) Portfolio(ctx context.Context, request *model.GetPortfolioRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	holdings, err := c.StockRepository.FindHoldings(ctx, request.UserID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to load holdings: %v", err)
		result.Error = errObj
		c.Log.Error("stock-usecase", errObj.Message, "Portfolio", request.UserID)
		return result
	}

	response := &model.PortfolioResponse{
		Holdings:     []model.HoldingResponse{},
		IsMarketOpen: c.window.IsOpen(c.Clock.Now()),
	}
	for i := range holdings {
		stock, err := c.StockRepository.FindStock(ctx, holdings[i].StockID)
		if err != nil {
			errObj := httpError.NewInternalServerError()
			errObj.Message = fmt.Sprintf("failed to load stock %s: %v", holdings[i].StockID, err)
			result.Error = errObj
			c.Log.Error("stock-usecase", errObj.Message, "Portfolio", holdings[i].StockID)
			return result
		}
		item := converter.HoldingToResponse(&holdings[i], stock)
		response.Holdings = append(response.Holdings, item)
		response.TotalInvested = utils.Round2(response.TotalInvested + item.TotalInvested)
		response.TotalCurrentValue = utils.Round2(response.TotalCurrentValue + item.CurrentValue)
	}
	response.TotalProfitLoss = utils.Round2(response.TotalCurrentValue - response.TotalInvested)

	result.Data = response
	return result
}

func (c *StockUseCase) Buy(ctx context.Context, request *model.TradeRequest) utils.Result {
	var result utils.Result

	if errResult := c.validateTrade(ctx, request, "Buy"); errResult != nil {
		result.Error = errResult
		return result
	}

	stock, err := c.StockRepository.FindStock(ctx, request.StockID)
	if err != nil {
		result.Error = c.stockError(err, request.StockID, "Buy")
		return result
	}
	if !stock.IsActive {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("stock %s is not tradable", stock.Symbol)
		result.Error = errObj
		return result
	}

	investing, err := c.WalletRepository.FindAccountByType(ctx, request.UserID, entity.AccountInvesting)
	if err != nil {
		result.Error = c.accountError(err, "Buy")
		return result
	}

	cost := utils.Round2(stock.CurrentPrice * float64(request.Quantity))
	record, holding, err := c.StockRepository.Buy(ctx, repository.BuyStockParams{
		UserID:           request.UserID,
		Stock:            stock,
		Quantity:         request.Quantity,
		Cost:             cost,
		InvestingAccount: investing,
		Now:              c.Clock.Now(),
	})
	if err != nil {
		if errors.Is(err, repository.ErrInsufficientFunds) {
			errObj := httpError.NewBadRequest()
			errObj.Message = fmt.Sprintf("insufficient investing balance, %d shares of %s cost %.2f", request.Quantity, stock.Symbol, cost)
			result.Error = errObj
		} else {
			errObj := httpError.NewInternalServerError()
			errObj.Message = fmt.Sprintf("failed to buy stock: %v", err)
			result.Error = errObj
		}
		c.Log.Error("stock-usecase", result.Error.Error(), "Buy", stock.StockID)
		return result
	}

	c.publishTransaction(record, "Buy")
	c.Log.Info("stock-usecase", "stock bought", "Buy", record.TransactionID)

	result.Data = &model.BuyStockResponse{
		Message:         fmt.Sprintf("bought %d shares of %s", request.Quantity, stock.Symbol),
		Quantity:        request.Quantity,
		UnitPrice:       stock.CurrentPrice,
		TotalCost:       cost,
		AverageBuyPrice: holding.AverageBuyPrice,
		TransactionID:   record.TransactionID,
	}
	return result
}

func (c *StockUseCase) Sell(ctx context.Context, request *model.TradeRequest) utils.Result {
	var result utils.Result

	if errResult := c.validateTrade(ctx, request, "Sell"); errResult != nil {
		result.Error = errResult
		return result
	}

	stock, err := c.StockRepository.FindStock(ctx, request.StockID)
	if err != nil {
		result.Error = c.stockError(err, request.StockID, "Sell")
		return result
	}

	investing, err := c.WalletRepository.FindAccountByType(ctx, request.UserID, entity.AccountInvesting)
	if err != nil {
		result.Error = c.accountError(err, "Sell")
		return result
	}

	proceeds := utils.Round2(stock.CurrentPrice * float64(request.Quantity))
	sellResult, err := c.StockRepository.Sell(ctx, repository.SellStockParams{
		UserID:           request.UserID,
		Stock:            stock,
		Quantity:         request.Quantity,
		Proceeds:         proceeds,
		InvestingAccount: investing,
		Now:              c.Clock.Now(),
	})
	if err != nil {
		if errors.Is(err, repository.ErrInsufficientShares) {
			errObj := httpError.NewBadRequest()
			errObj.Message = fmt.Sprintf("not enough shares of %s to sell", stock.Symbol)
			result.Error = errObj
		} else {
			errObj := httpError.NewInternalServerError()
			errObj.Message = fmt.Sprintf("failed to sell stock: %v", err)
			result.Error = errObj
		}
		c.Log.Error("stock-usecase", result.Error.Error(), "Sell", stock.StockID)
		return result
	}

	c.publishTransaction(sellResult.Transaction, "Sell")
	c.Log.Info("stock-usecase", "stock sold", "Sell", sellResult.Transaction.TransactionID)

	realized := utils.Round2(proceeds - sellResult.AverageBuyPrice*float64(request.Quantity))
	result.Data = &model.SellStockResponse{
		Message:        fmt.Sprintf("sold %d shares of %s", request.Quantity, stock.Symbol),
		Quantity:       request.Quantity,
		UnitPrice:      stock.CurrentPrice,
		Proceeds:       proceeds,
		RealizedProfit: realized,
		TransactionID:  sellResult.Transaction.TransactionID,
	}
	return result
}

func (c *StockUseCase) validateTrade(ctx context.Context, request *model.TradeRequest, scope string) error {
	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		c.Log.Error("stock-usecase", errObj.Message, scope, utils.ConvertString(request))
		return errObj
	}
	if !c.window.IsOpen(c.Clock.Now()) {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("stock market is closed, open %02d:00-%02d:00", c.window.OpenHour, c.window.CloseHour)
		c.Log.Error("stock-usecase", errObj.Message, scope, request.UserID)
		return errObj
	}
	return nil
}

func (c *StockUseCase) stockError(err error, stockID, scope string) error {
	if errors.Is(err, sql.ErrNoRows) {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("stock %s not found", stockID)
		c.Log.Error("stock-usecase", errObj.Message, scope, stockID)
		return errObj
	}
	errObj := httpError.NewInternalServerError()
	errObj.Message = fmt.Sprintf("failed to load stock: %v", err)
	c.Log.Error("stock-usecase", errObj.Message, scope, stockID)
	return errObj
}

func (c *StockUseCase) accountError(err error, scope string) error {
	if errors.Is(err, sql.ErrNoRows) {
		errObj := httpError.NewNotFound()
		errObj.Message = "investing account not found"
		c.Log.Error("stock-usecase", errObj.Message, scope, "")
		return errObj
	}
	errObj := httpError.NewInternalServerError()
	errObj.Message = fmt.Sprintf("failed to load investing account: %v", err)
	c.Log.Error("stock-usecase", errObj.Message, scope, "")
	return errObj
}

func (c *StockUseCase) publishTransaction(record *entity.Transaction, scope string) {
	event := converter.TransactionToEvent(record)
	if err := c.TransactionProducer.SendTransactionRecorded(event); err != nil {
		c.Log.Error("stock-usecase", fmt.Sprintf("failed to publish transaction event: %v", err), scope, record.TransactionID)
	}
}
