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
	httpError "investment-service/src/pkg/http-error"
	"investment-service/src/pkg/log"
	"investment-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type WalletUseCase struct {
	Log                   log.Log
	Validate              *validator.Validate
	WalletRepository      *repository.WalletRepository
	TransactionRepository *repository.TransactionRepository
	StockRepository       *repository.StockRepository
	GardenRepository      *repository.GardenRepository
	Config                *viper.Viper
	TransactionProducer   *messaging.TransactionProducer
}

func NewWalletUseCase(
	logger log.Log,
	validate *validator.Validate,
	walletRepository *repository.WalletRepository,
	transactionRepository *repository.TransactionRepository,
	stockRepository *repository.StockRepository,
	gardenRepository *repository.GardenRepository,
	cfg *viper.Viper,
	transactionProducer *messaging.TransactionProducer,
) *WalletUseCase {
	return &WalletUseCase{
		Log:                   logger,
		Validate:              validate,
		WalletRepository:      walletRepository,
		TransactionRepository: transactionRepository,
		StockRepository:       stockRepository,
		GardenRepository:      gardenRepository,
		Config:                cfg,
		TransactionProducer:   transactionProducer,
	}
}

func (c *WalletUseCase) GetWallet(ctx context.Context, request *model.GetWalletRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("wallet-usecase", errObj.Message, "GetWallet", utils.ConvertString(request))
		return result
	}

	accounts, err := c.WalletRepository.FindAccounts(ctx, request.UserID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to load accounts: %v", err)
		result.Error = errObj
		c.Log.Error("wallet-usecase", errObj.Message, "GetWallet", request.UserID)
		return result
	}
	if len(accounts) == 0 {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("wallet for user %s not found", request.UserID)
		result.Error = errObj
		return result
	}

	savingsAllocated, err := c.WalletRepository.ActiveSavingsAllocation(ctx, request.UserID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to load savings goals: %v", err)
		result.Error = errObj
		c.Log.Error("wallet-usecase", errObj.Message, "GetWallet", request.UserID)
		return result
	}

	investingAllocated, err := c.investingAllocation(ctx, request.UserID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to value investments: %v", err)
		result.Error = errObj
		c.Log.Error("wallet-usecase", errObj.Message, "GetWallet", request.UserID)
		return result
	}

	response := &model.WalletResponse{
		SavingsAllocated:   utils.Round2(savingsAllocated),
		InvestingAllocated: utils.Round2(investingAllocated),
	}
	for _, account := range accounts {
		resp := model.AccountResponse{
			AccountType: account.AccountType,
			Balance:     account.Balance,
		}
		switch account.AccountType {
		case entity.AccountSavings:
			// goal allocations are carved out of the balance, not on top of it
			resp.AllocatedBalance = utils.Round2(savingsAllocated)
			resp.AvailableBalance = utils.Round2(account.Balance - savingsAllocated)
			resp.TotalBalance = account.Balance
		case entity.AccountInvesting:
			// holdings and growing seeds live outside the cash balance
			resp.AllocatedBalance = utils.Round2(investingAllocated)
			resp.AvailableBalance = account.Balance
			resp.TotalBalance = utils.Round2(account.Balance + investingAllocated)
		default:
			resp.AvailableBalance = account.Balance
			resp.TotalBalance = account.Balance
		}
		response.TotalAvailable = utils.Round2(response.TotalAvailable + resp.AvailableBalance)
		response.Accounts = append(response.Accounts, resp)
	}

	result.Data = response
	return result
}

// investingAllocation values stock holdings at current prices plus the seed
// cost sunk into growing plots.
func (c *WalletUseCase) investingAllocation(ctx context.Context, userID string) (float64, error) {
	holdings, err := c.StockRepository.FindHoldings(ctx, userID)
	if err != nil {
		return 0, err
	}

	var allocated float64
	for _, holding := range holdings {
		stock, err := c.StockRepository.FindStock(ctx, holding.StockID)
		if err != nil {
			return 0, err
		}
		allocated += float64(holding.Quantity) * stock.CurrentPrice
	}

	plots, err := c.GardenRepository.FindPlots(ctx, userID)
	if err != nil {
		return 0, err
	}
	species, err := c.GardenRepository.FindAllSpecies(ctx)
	if err != nil {
		return 0, err
	}
	costByPlant := make(map[string]float64, len(species))
	for _, sp := range species {
		costByPlant[sp.PlantID] = sp.SeedCost
	}
	for _, plot := range plots {
		if plot.PlantID != nil && plot.Status != entity.PlotEmpty && plot.Status != entity.PlotDead {
			allocated += costByPlant[*plot.PlantID]
		}
	}

	return allocated, nil
}

func (c *WalletUseCase) Transfer(ctx context.Context, request *model.TransferRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("wallet-usecase", errObj.Message, "Transfer", utils.ConvertString(request))
		return result
	}
	if request.FromAccount == "" && request.ToAccount == "" {
		errObj := httpError.NewBadRequest()
		errObj.Message = "at least one of from_account or to_account is required"
		result.Error = errObj
		return result
	}
	if request.FromAccount == request.ToAccount && request.FromAccount != "" {
		errObj := httpError.NewBadRequest()
		errObj.Message = "from_account and to_account must differ"
		result.Error = errObj
		return result
	}

	params := repository.TransferParams{
		UserID:          request.UserID,
		Amount:          utils.Round2(request.Amount),
		TransactionType: request.TransactionType,
		Description:     request.Description,
	}
	if request.FromAccount != "" {
		from, err := c.WalletRepository.FindAccountByType(ctx, request.UserID, request.FromAccount)
		if err != nil {
			result.Error = c.accountLookupError(err, request.FromAccount, "Transfer")
			return result
		}
		params.From = from
	}
	if request.ToAccount != "" {
		to, err := c.WalletRepository.FindAccountByType(ctx, request.UserID, request.ToAccount)
		if err != nil {
			result.Error = c.accountLookupError(err, request.ToAccount, "Transfer")
			return result
		}
		params.To = to
	}

	record, err := c.WalletRepository.Transfer(ctx, params)
	if err != nil {
		if errors.Is(err, repository.ErrInsufficientFunds) {
			errObj := httpError.NewBadRequest()
			errObj.Message = fmt.Sprintf("insufficient funds in %s account", request.FromAccount)
			result.Error = errObj
			c.Log.Error("wallet-usecase", errObj.Message, "Transfer", request.UserID)
			return result
		}
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("transfer failed: %v", err)
		result.Error = errObj
		c.Log.Error("wallet-usecase", errObj.Message, "Transfer", request.UserID)
		return result
	}

	c.publishTransaction(record, "Transfer")
	c.Log.Info("wallet-usecase", "transfer recorded", "Transfer", record.TransactionID)

	result.Data = &model.TransferResponse{
		Message:       "transfer completed",
		TransactionID: record.TransactionID,
	}
	return result
}

func (c *WalletUseCase) ListTransactions(ctx context.Context, request *model.ListTransactionsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("wallet-usecase", errObj.Message, "ListTransactions", utils.ConvertString(request))
		return result
	}
	if request.Limit == 0 {
		request.Limit = 50
	}

	transactions, err := c.TransactionRepository.ListByUser(ctx, request.UserID, request.Limit, request.Offset)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to load transactions: %v", err)
		result.Error = errObj
		c.Log.Error("wallet-usecase", errObj.Message, "ListTransactions", request.UserID)
		return result
	}

	result.Data = converter.TransactionsToResponse(transactions)
	return result
}

func (c *WalletUseCase) accountLookupError(err error, accountType, scope string) error {
	if errors.Is(err, sql.ErrNoRows) {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("%s account not found", accountType)
		c.Log.Error("wallet-usecase", errObj.Message, scope, accountType)
		return errObj
	}
	errObj := httpError.NewInternalServerError()
	errObj.Message = fmt.Sprintf("failed to load %s account: %v", accountType, err)
	c.Log.Error("wallet-usecase", errObj.Message, scope, accountType)
	return errObj
}

func (c *WalletUseCase) publishTransaction(record *entity.Transaction, scope string) {
	event := converter.TransactionToEvent(record)
	if err := c.TransactionProducer.SendTransactionRecorded(event); err != nil {
		c.Log.Error("wallet-usecase", fmt.Sprintf("failed to publish transaction event: %v", err), scope, record.TransactionID)
	}
}
