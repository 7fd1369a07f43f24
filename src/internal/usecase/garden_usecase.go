package usecase

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	mathrand "math/rand"
	"sync"
	"time"

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
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

// A plot that has been dead this long is cleared back to empty on the next
// read; the plant is lost but the plot is not.
const deadPlotGraceHours = 24.0

type GardenUseCase struct {
	Log                 log.Log
	Validate            *validator.Validate
	GardenRepository    *repository.GardenRepository
	WalletRepository    *repository.WalletRepository
	Config              *viper.Viper
	Redis               redis.UniversalClient
	TransactionProducer *messaging.TransactionProducer
	Clock               clock.Clock

	window marketWindow
	mu     sync.Mutex
	rand   *mathrand.Rand
}

func NewGardenUseCase(
	logger log.Log,
	validate *validator.Validate,
	gardenRepository *repository.GardenRepository,
	walletRepository *repository.WalletRepository,
	cfg *viper.Viper,
	redisClient redis.UniversalClient,
	transactionProducer *messaging.TransactionProducer,
	clk clock.Clock,
	rng *mathrand.Rand,
) *GardenUseCase {
	return &GardenUseCase{
		Log:                 logger,
		Validate:            validate,
		GardenRepository:    gardenRepository,
		WalletRepository:    walletRepository,
		Config:              cfg,
		Redis:               redisClient,
		TransactionProducer: transactionProducer,
		Clock:               clk,
		window:              loadMarketWindow(cfg, "market.garden"),
		rand:                rng,
	}
}

func (c *GardenUseCase) nextFloat() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rand.Float64()
}

// evaluatePlotLifecycle applies the passive decay rules to a plot as of now.
// Thresholds over the species water interval w: >w water_needed, >1.5w
// wilting, >2w dead. Otherwise growth progress advances toward ready.
func evaluatePlotLifecycle(plot entity.GardenPlot, species *entity.PlantSpecies, now time.Time) entity.GardenPlot {
	if plot.Status == entity.PlotEmpty || plot.Status == entity.PlotReady {
		return plot
	}
	if plot.PlantID == nil || plot.PlantedAt == nil || plot.LastWatered == nil {
		return plot
	}

	interval := species.WaterIntervalHours
	sinceWater := now.Sub(*plot.LastWatered).Hours()

	if plot.Status == entity.PlotDead {
		if sinceWater > 2*interval+deadPlotGraceHours {
			return clearedPlot(plot)
		}
		return plot
	}

	switch {
	case sinceWater > 2*interval:
		plot.Status = entity.PlotDead
	case sinceWater > 1.5*interval:
		plot.Status = entity.PlotWilting
	case sinceWater > interval:
		plot.Status = entity.PlotWaterNeeded
	default:
		elapsed := now.Sub(*plot.PlantedAt).Hours()
		progress := elapsed / species.GrowthTimeHours * 100
		if progress >= 100 {
			plot.GrowthProgress = 100
			plot.Status = entity.PlotReady
		} else {
			plot.GrowthProgress = utils.Round2(progress)
			plot.Status = entity.PlotGrowing
		}
	}
	return plot
}

func clearedPlot(plot entity.GardenPlot) entity.GardenPlot {
	plot.PlantID = nil
	plot.PlantedAt = nil
	plot.LastWatered = nil
	plot.GrowthProgress = 0
	plot.Status = entity.PlotEmpty
	return plot
}

func (c *GardenUseCase) GetFarm(ctx context.Context, request *model.GetFarmRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("garden-usecase", errObj.Message, "GetFarm", utils.ConvertString(request))
		return result
	}

	now := c.Clock.Now()

	species, err := c.GardenRepository.FindAllSpecies(ctx)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to load plant species: %v", err)
		result.Error = errObj
		c.Log.Error("garden-usecase", errObj.Message, "GetFarm", "")
		return result
	}
	speciesByID := make(map[string]entity.PlantSpecies, len(species))
	for _, sp := range species {
		speciesByID[sp.PlantID] = sp
	}

	plots, err := c.GardenRepository.FindPlots(ctx, request.UserID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to load plots: %v", err)
		result.Error = errObj
		c.Log.Error("garden-usecase", errObj.Message, "GetFarm", request.UserID)
		return result
	}

	response := &model.FarmResponse{
		IsMarketOpen: c.window.IsOpen(now),
		PlotCost:     c.Config.GetFloat64("garden.plot_cost"),
	}

	for i := range plots {
		evaluated := plots[i]
		if sp, ok := lookupSpecies(speciesByID, plots[i].PlantID); ok {
			evaluated = evaluatePlotLifecycle(plots[i], sp, now)
			if evaluated.Status != plots[i].Status || evaluated.GrowthProgress != plots[i].GrowthProgress {
				if err := c.GardenRepository.UpdatePlotLifecycle(ctx, &evaluated); err != nil {
					c.Log.Error("garden-usecase", fmt.Sprintf("failed to persist plot state: %v", err), "GetFarm", evaluated.PlotID)
				}
			}
		}
		response.Plots = append(response.Plots, converter.PlotToResponse(&evaluated, speciesByID))
	}

	for i := range species {
		response.Seeds = append(response.Seeds, converter.SpeciesToResponse(&species[i]))
	}

	inventory, err := c.GardenRepository.FindInventory(ctx, request.UserID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to load inventory: %v", err)
		result.Error = errObj
		c.Log.Error("garden-usecase", errObj.Message, "GetFarm", request.UserID)
		return result
	}
	for i := range inventory {
		response.Inventory = append(response.Inventory, converter.InventoryToResponse(&inventory[i], speciesByID))
	}

	prices, err := c.marketPricesToday(ctx, now)
	if err != nil {
		c.Log.Error("garden-usecase", fmt.Sprintf("failed to load market prices: %v", err), "GetFarm", "")
	}
	for i := range prices {
		response.MarketPrices = append(response.MarketPrices, converter.MarketPriceToResponse(&prices[i]))
	}

	result.Data = response
	return result
}

func lookupSpecies(speciesByID map[string]entity.PlantSpecies, plantID *string) (*entity.PlantSpecies, bool) {
	if plantID == nil {
		return nil, false
	}
	sp, ok := speciesByID[*plantID]
	if !ok {
		return nil, false
	}
	return &sp, true
}

func (c *GardenUseCase) Plant(ctx context.Context, request *model.PlantRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("garden-usecase", errObj.Message, "Plant", utils.ConvertString(request))
		return result
	}

	now := c.Clock.Now()

	plot, species, errResult := c.loadPlotForAction(ctx, request.UserID, request.PlotID, request.PlantID, "Plant")
	if errResult != nil {
		result.Error = errResult
		return result
	}
	if sp, ok := c.speciesForPlot(ctx, plot); ok {
		evaluated := evaluatePlotLifecycle(*plot, sp, now)
		plot = &evaluated
	}
	if plot.Status != entity.PlotEmpty {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("plot is %s, seeds can only be planted in an empty plot", plot.Status)
		result.Error = errObj
		c.Log.Error("garden-usecase", errObj.Message, "Plant", plot.PlotID)
		return result
	}

	spending, err := c.WalletRepository.FindAccountByType(ctx, request.UserID, entity.AccountSpending)
	if err != nil {
		result.Error = c.accountError(err, "Plant")
		return result
	}

	record, err := c.GardenRepository.Plant(ctx, repository.PlantParams{
		Plot:            plot,
		Species:         species,
		SpendingAccount: spending,
		Now:             now,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidState):
			errObj := httpError.NewBadRequest()
			errObj.Message = "plot is not empty"
			result.Error = errObj
		case errors.Is(err, repository.ErrInsufficientFunds):
			errObj := httpError.NewBadRequest()
			errObj.Message = fmt.Sprintf("insufficient funds for seed costing %.2f", species.SeedCost)
			result.Error = errObj
		default:
			errObj := httpError.NewInternalServerError()
			errObj.Message = fmt.Sprintf("failed to plant: %v", err)
			result.Error = errObj
		}
		c.Log.Error("garden-usecase", result.Error.Error(), "Plant", plot.PlotID)
		return result
	}

	c.publishTransaction(record, "Plant")
	c.Log.Info("garden-usecase", "seed planted", "Plant", plot.PlotID)

	result.Data = &model.PlantResponse{
		Message:  fmt.Sprintf("%s planted", species.Name),
		SeedCost: species.SeedCost,
	}
	return result
}

func (c *GardenUseCase) Water(ctx context.Context, request *model.WaterRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("garden-usecase", errObj.Message, "Water", utils.ConvertString(request))
		return result
	}

	now := c.Clock.Now()

	plot, err := c.GardenRepository.FindPlot(ctx, request.UserID, request.PlotID)
	if err != nil {
		result.Error = c.plotError(err, request.PlotID, "Water")
		return result
	}

	sp, ok := c.speciesForPlot(ctx, plot)
	if ok {
		evaluated := evaluatePlotLifecycle(*plot, sp, now)
		plot = &evaluated
	}
	switch plot.Status {
	case entity.PlotEmpty, entity.PlotDead, entity.PlotReady:
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("cannot water a plot that is %s", plot.Status)
		result.Error = errObj
		c.Log.Error("garden-usecase", errObj.Message, "Water", plot.PlotID)
		return result
	}

	plot.LastWatered = &now
	plot.Status = entity.PlotGrowing
	if err := c.GardenRepository.UpdatePlotLifecycle(ctx, plot); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to water plot: %v", err)
		result.Error = errObj
		c.Log.Error("garden-usecase", errObj.Message, "Water", plot.PlotID)
		return result
	}

	c.Log.Info("garden-usecase", "plot watered", "Water", plot.PlotID)
	result.Data = &model.WaterResponse{Message: "plot watered"}
	return result
}

func (c *GardenUseCase) Harvest(ctx context.Context, request *model.HarvestRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("garden-usecase", errObj.Message, "Harvest", utils.ConvertString(request))
		return result
	}

	now := c.Clock.Now()

	plot, err := c.GardenRepository.FindPlot(ctx, request.UserID, request.PlotID)
	if err != nil {
		result.Error = c.plotError(err, request.PlotID, "Harvest")
		return result
	}

	sp, ok := c.speciesForPlot(ctx, plot)
	if !ok {
		errObj := httpError.NewBadRequest()
		errObj.Message = "nothing is planted in this plot"
		result.Error = errObj
		return result
	}
	evaluated := evaluatePlotLifecycle(*plot, sp, now)
	if evaluated.Status != entity.PlotReady {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("plot is %s, only a ready plot can be harvested", evaluated.Status)
		result.Error = errObj
		c.Log.Error("garden-usecase", errObj.Message, "Harvest", plot.PlotID)
		return result
	}

	// persist the lazily computed ready state so the harvest guard applies
	if evaluated.Status != plot.Status {
		if err := c.GardenRepository.UpdatePlotLifecycle(ctx, &evaluated); err != nil {
			errObj := httpError.NewInternalServerError()
			errObj.Message = fmt.Sprintf("failed to persist plot state: %v", err)
			result.Error = errObj
			c.Log.Error("garden-usecase", errObj.Message, "Harvest", plot.PlotID)
			return result
		}
	}

	if err := c.GardenRepository.Harvest(ctx, repository.HarvestParams{Plot: &evaluated, Species: sp}); err != nil {
		if errors.Is(err, repository.ErrInvalidState) {
			errObj := httpError.NewConflict()
			errObj.Message = "plot was already harvested"
			result.Error = errObj
		} else {
			errObj := httpError.NewInternalServerError()
			errObj.Message = fmt.Sprintf("failed to harvest: %v", err)
			result.Error = errObj
		}
		c.Log.Error("garden-usecase", result.Error.Error(), "Harvest", plot.PlotID)
		return result
	}

	c.Log.Info("garden-usecase", "plot harvested", "Harvest", plot.PlotID)
	result.Data = &model.HarvestResponse{
		Message:   fmt.Sprintf("harvested %d %s of %s", sp.HarvestYield, sp.YieldUnit, sp.Name),
		PlantID:   sp.PlantID,
		Yield:     sp.HarvestYield,
		YieldUnit: sp.YieldUnit,
	}
	return result
}

func (c *GardenUseCase) SellProduce(ctx context.Context, request *model.SellProduceRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("garden-usecase", errObj.Message, "SellProduce", utils.ConvertString(request))
		return result
	}

	now := c.Clock.Now()
	if !c.window.IsOpen(now) {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("produce market is closed, open %02d:00-%02d:00", c.window.OpenHour, c.window.CloseHour)
		result.Error = errObj
		c.Log.Error("garden-usecase", errObj.Message, "SellProduce", request.UserID)
		return result
	}

	species, err := c.GardenRepository.FindSpecies(ctx, request.PlantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("plant %s not found", request.PlantID)
			result.Error = errObj
		} else {
			errObj := httpError.NewInternalServerError()
			errObj.Message = fmt.Sprintf("failed to load plant: %v", err)
			result.Error = errObj
		}
		c.Log.Error("garden-usecase", result.Error.Error(), "SellProduce", request.PlantID)
		return result
	}

	price, err := c.ensureMarketPrice(ctx, species, now)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to resolve market price: %v", err)
		result.Error = errObj
		c.Log.Error("garden-usecase", errObj.Message, "SellProduce", request.PlantID)
		return result
	}

	spending, err := c.WalletRepository.FindAccountByType(ctx, request.UserID, entity.AccountSpending)
	if err != nil {
		result.Error = c.accountError(err, "SellProduce")
		return result
	}

	proceeds := utils.Round2(price.CurrentPrice * float64(request.Quantity))
	record, err := c.GardenRepository.SellProduce(ctx, repository.SellProduceParams{
		UserID:          request.UserID,
		Species:         species,
		Quantity:        request.Quantity,
		UnitPrice:       price.CurrentPrice,
		Proceeds:        proceeds,
		SpendingAccount: spending,
		Now:             now,
	})
	if err != nil {
		if errors.Is(err, repository.ErrInsufficientInventory) {
			errObj := httpError.NewBadRequest()
			errObj.Message = fmt.Sprintf("not enough %s in inventory", species.Name)
			result.Error = errObj
		} else {
			errObj := httpError.NewInternalServerError()
			errObj.Message = fmt.Sprintf("failed to sell produce: %v", err)
			result.Error = errObj
		}
		c.Log.Error("garden-usecase", result.Error.Error(), "SellProduce", request.PlantID)
		return result
	}

	c.publishTransaction(record, "SellProduce")
	c.Log.Info("garden-usecase", "produce sold", "SellProduce", record.TransactionID)

	result.Data = &model.SellProduceResponse{
		Message:       fmt.Sprintf("sold %d %s of %s", request.Quantity, species.YieldUnit, species.Name),
		UnitPrice:     price.CurrentPrice,
		Proceeds:      proceeds,
		TransactionID: record.TransactionID,
	}
	return result
}

func (c *GardenUseCase) BuyPlot(ctx context.Context, request *model.BuyPlotRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("garden-usecase", errObj.Message, "BuyPlot", utils.ConvertString(request))
		return result
	}

	cost := c.Config.GetFloat64("garden.plot_cost")
	spending, err := c.WalletRepository.FindAccountByType(ctx, request.UserID, entity.AccountSpending)
	if err != nil {
		result.Error = c.accountError(err, "BuyPlot")
		return result
	}

	plotID, record, err := c.GardenRepository.BuyPlot(ctx, repository.BuyPlotParams{
		UserID:          request.UserID,
		Cost:            cost,
		SpendingAccount: spending,
		Now:             c.Clock.Now(),
	})
	if err != nil {
		if errors.Is(err, repository.ErrInsufficientFunds) {
			errObj := httpError.NewBadRequest()
			errObj.Message = fmt.Sprintf("insufficient funds, a plot costs %.2f", cost)
			result.Error = errObj
		} else {
			errObj := httpError.NewInternalServerError()
			errObj.Message = fmt.Sprintf("failed to buy plot: %v", err)
			result.Error = errObj
		}
		c.Log.Error("garden-usecase", result.Error.Error(), "BuyPlot", request.UserID)
		return result
	}

	c.publishTransaction(record, "BuyPlot")
	c.Log.Info("garden-usecase", "plot purchased", "BuyPlot", plotID)

	result.Data = &model.BuyPlotResponse{
		Message: "plot purchased",
		PlotID:  plotID,
		Cost:    cost,
	}
	return result
}

// ensureMarketPrice returns today's snapshot for the species, generating it
// lazily from base price and fluctuation on the first sale of the day.
func (c *GardenUseCase) ensureMarketPrice(ctx context.Context, species *entity.PlantSpecies, now time.Time) (*entity.MarketPrice, error) {
	date := now.Format("2006-01-02")

	price, err := c.GardenRepository.FindMarketPrice(ctx, species.PlantID, date)
	if err == nil {
		return price, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	fluctuation := species.PriceFluctuationPercent / 100
	delta := (c.nextFloat()*2 - 1) * fluctuation
	generated := &entity.MarketPrice{
		PlantID:      species.PlantID,
		Date:         date,
		CurrentPrice: utils.Round2(species.BaseSellPrice * (1 + delta)),
	}
	if generated.CurrentPrice < 0.01 {
		generated.CurrentPrice = 0.01
	}

	if err := c.GardenRepository.UpsertMarketPrice(ctx, generated); err != nil {
		return nil, err
	}
	c.invalidateMarketCache(ctx, date)

	// re-read so a concurrent lazy create resolves to one price for the day
	return c.GardenRepository.FindMarketPrice(ctx, species.PlantID, date)
}

func (c *GardenUseCase) marketPricesToday(ctx context.Context, now time.Time) ([]entity.MarketPrice, error) {
	date := now.Format("2006-01-02")
	key := fmt.Sprintf("GARDEN:MARKET:%s", date)

	cached, err := c.Redis.Get(ctx, key).Result()
	if err == nil && cached != "" {
		var prices []entity.MarketPrice
		if err := json.Unmarshal([]byte(cached), &prices); err == nil {
			return prices, nil
		}
	}

	prices, err := c.GardenRepository.FindMarketPrices(ctx, date)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(prices); err == nil {
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).Add(24 * time.Hour)
		if redisErr := c.Redis.Set(ctx, key, data, midnight.Sub(now)).Err(); redisErr != nil {
			c.Log.Error("garden-usecase", fmt.Sprintf("failed to cache market prices: %v", redisErr), "marketPricesToday", key)
		}
	}

	return prices, nil
}

func (c *GardenUseCase) invalidateMarketCache(ctx context.Context, date string) {
	key := fmt.Sprintf("GARDEN:MARKET:%s", date)
	if err := c.Redis.Del(ctx, key).Err(); err != nil {
		c.Log.Error("garden-usecase", fmt.Sprintf("failed to invalidate market cache: %v", err), "invalidateMarketCache", key)
	}
}

func (c *GardenUseCase) speciesForPlot(ctx context.Context, plot *entity.GardenPlot) (*entity.PlantSpecies, bool) {
	if plot.PlantID == nil {
		return nil, false
	}
	sp, err := c.GardenRepository.FindSpecies(ctx, *plot.PlantID)
	if err != nil {
		return nil, false
	}
	return sp, true
}

func (c *GardenUseCase) loadPlotForAction(ctx context.Context, userID, plotID, plantID, scope string) (*entity.GardenPlot, *entity.PlantSpecies, error) {
	plot, err := c.GardenRepository.FindPlot(ctx, userID, plotID)
	if err != nil {
		return nil, nil, c.plotError(err, plotID, scope)
	}

	species, err := c.GardenRepository.FindSpecies(ctx, plantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("seed %s not found", plantID)
			c.Log.Error("garden-usecase", errObj.Message, scope, plantID)
			return nil, nil, errObj
		}
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to load seed: %v", err)
		c.Log.Error("garden-usecase", errObj.Message, scope, plantID)
		return nil, nil, errObj
	}

	return plot, species, nil
}

func (c *GardenUseCase) plotError(err error, plotID, scope string) error {
	if errors.Is(err, sql.ErrNoRows) {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("plot %s not found", plotID)
		c.Log.Error("garden-usecase", errObj.Message, scope, plotID)
		return errObj
	}
	errObj := httpError.NewInternalServerError()
	errObj.Message = fmt.Sprintf("failed to load plot: %v", err)
	c.Log.Error("garden-usecase", errObj.Message, scope, plotID)
	return errObj
}

func (c *GardenUseCase) accountError(err error, scope string) error {
	if errors.Is(err, sql.ErrNoRows) {
		errObj := httpError.NewNotFound()
		errObj.Message = "spending account not found"
		c.Log.Error("garden-usecase", errObj.Message, scope, "")
		return errObj
	}
	errObj := httpError.NewInternalServerError()
	errObj.Message = fmt.Sprintf("failed to load spending account: %v", err)
	c.Log.Error("garden-usecase", errObj.Message, scope, "")
	return errObj
}

func (c *GardenUseCase) publishTransaction(record *entity.Transaction, scope string) {
	event := converter.TransactionToEvent(record)
	if err := c.TransactionProducer.SendTransactionRecorded(event); err != nil {
		c.Log.Error("garden-usecase", fmt.Sprintf("failed to publish transaction event: %v", err), scope, record.TransactionID)
	}
}
