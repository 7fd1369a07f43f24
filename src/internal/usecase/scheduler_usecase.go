package usecase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	mathrand "math/rand"
	"sync"
	"time"

	"investment-service/src/internal/entity"
	"investment-service/src/internal/gateway/messaging"
	"investment-service/src/internal/model"
	"investment-service/src/internal/repository"
	"investment-service/src/pkg/clock"
	httpError "investment-service/src/pkg/http-error"
	"investment-service/src/pkg/log"
	"investment-service/src/pkg/utils"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

// Prices never walk below this floor, however unlucky the draw.
const minStockPrice = 0.01

type SchedulerUseCase struct {
	Log                 log.Log
	StockRepository     *repository.StockRepository
	GardenRepository    *repository.GardenRepository
	SchedulerRepository *repository.SchedulerRepository
	Config              *viper.Viper
	Redis               redis.UniversalClient
	TransactionProducer *messaging.TransactionProducer
	Clock               clock.Clock

	mu   sync.Mutex
	rand *mathrand.Rand
}

func NewSchedulerUseCase(
	logger log.Log,
	stockRepository *repository.StockRepository,
	gardenRepository *repository.GardenRepository,
	schedulerRepository *repository.SchedulerRepository,
	cfg *viper.Viper,
	redisClient redis.UniversalClient,
	transactionProducer *messaging.TransactionProducer,
	clk clock.Clock,
	rng *mathrand.Rand,
) *SchedulerUseCase {
	return &SchedulerUseCase{
		Log:                 logger,
		StockRepository:     stockRepository,
		GardenRepository:    gardenRepository,
		SchedulerRepository: schedulerRepository,
		Config:              cfg,
		Redis:               redisClient,
		TransactionProducer: transactionProducer,
		Clock:               clk,
		rand:                rng,
	}
}

func (c *SchedulerUseCase) nextFloat() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rand.Float64()
}

// HandleDailySimulation is the asynq handler for the daily run. A run that
// already has a log row for today is skipped, so retries and overlapping
// schedules stay harmless.
func (c *SchedulerUseCase) HandleDailySimulation(ctx context.Context, task *asynq.Task) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	now := c.Clock.Now()
	date := now.Format("2006-01-02")

	if _, err := c.SchedulerRepository.FindLog(ctx, entity.TaskDailySimulation, date); err == nil {
		c.Log.Info("scheduler-usecase", "daily simulation already ran", "HandleDailySimulation", date)
		return nil
	} else if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to check scheduler log: %w", err)
	}

	stocksUpdated, pricesRefreshed, runErr := c.runSimulation(ctx, now)

	logRow := &entity.SchedulerLog{
		LogID:   uuid.New().String(),
		Task:    entity.TaskDailySimulation,
		RunDate: date,
		Status:  entity.SchedulerStatusSuccess,
		Details: fmt.Sprintf("stocks_updated=%d prices_refreshed=%d", stocksUpdated, pricesRefreshed),
	}
	if runErr != nil {
		logRow.Status = entity.SchedulerStatusFailure
		logRow.Details = runErr.Error()
	}

	if err := c.SchedulerRepository.InsertLog(ctx, logRow); err != nil {
		if errors.Is(err, repository.ErrAlreadyProcessed) {
			c.Log.Info("scheduler-usecase", "daily simulation logged by a concurrent run", "HandleDailySimulation", date)
			return nil
		}
		return fmt.Errorf("failed to record scheduler log: %w", err)
	}

	if runErr != nil {
		return runErr
	}

	c.publishSimulation(logRow, stocksUpdated)
	c.Log.Info("scheduler-usecase", "daily simulation completed", "HandleDailySimulation", logRow.Details)
	return nil
}

// SimulateDay is the admin force-run. It reprices unconditionally and does
// not touch the scheduler log, so the scheduled run for the day still fires.
func (c *SchedulerUseCase) SimulateDay(ctx context.Context) utils.Result {
	var result utils.Result

	now := c.Clock.Now()
	stocksUpdated, pricesRefreshed, err := c.runSimulation(ctx, now)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("simulation failed: %v", err)
		result.Error = errObj
		c.Log.Error("scheduler-usecase", errObj.Message, "SimulateDay", "")
		return result
	}

	c.Log.Info("scheduler-usecase", "manual simulation completed", "SimulateDay", fmt.Sprintf("stocks_updated=%d", stocksUpdated))
	result.Data = &model.SimulateDayResponse{
		Message:         "daily simulation executed",
		Date:            now.Format("2006-01-02"),
		StocksUpdated:   stocksUpdated,
		PricesRefreshed: pricesRefreshed,
	}
	return result
}

func (c *SchedulerUseCase) Status(ctx context.Context) utils.Result {
	var result utils.Result

	now := c.Clock.Now()
	ranToday := false
	if _, err := c.SchedulerRepository.FindLog(ctx, entity.TaskDailySimulation, now.Format("2006-01-02")); err == nil {
		ranToday = true
	}

	hour := c.Config.GetInt("scheduler.daily_hour")
	nextRun := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !nextRun.After(now) {
		nextRun = nextRun.Add(24 * time.Hour)
	}

	result.Data = &model.SchedulerStatusResponse{
		SchedulerRunning: c.Config.GetBool("scheduler.enabled"),
		Jobs: []model.SchedulerJobResponse{
			{
				ID:          entity.TaskDailySimulation,
				Trigger:     fmt.Sprintf("cron[0 %d * * *]", hour),
				NextRunTime: nextRun.Format(time.RFC3339),
			},
		},
		RanToday: ranToday,
	}
	return result
}

// runSimulation walks every active stock price and snapshots a garden market
// price for every species, for the given day.
func (c *SchedulerUseCase) runSimulation(ctx context.Context, now time.Time) (int, int, error) {
	date := now.Format("2006-01-02")

	stocks, err := c.StockRepository.FindStocks(ctx, "")
	if err != nil {
		return 0, 0, fmt.Errorf("failed to load stocks: %w", err)
	}

	stocksUpdated := 0
	for i := range stocks {
		stock := &stocks[i]
		delta := (c.nextFloat()*2 - 1) * stock.Volatility
		price := utils.Round2(stock.CurrentPrice * (1 + delta))
		if price < minStockPrice {
			price = minStockPrice
		}
		if err := c.StockRepository.UpdatePriceWithHistory(ctx, stock.StockID, price, date); err != nil {
			return stocksUpdated, 0, fmt.Errorf("failed to reprice stock %s: %w", stock.Symbol, err)
		}
		stocksUpdated++
	}

	species, err := c.GardenRepository.FindAllSpecies(ctx)
	if err != nil {
		return stocksUpdated, 0, fmt.Errorf("failed to load plant species: %w", err)
	}

	pricesRefreshed := 0
	for i := range species {
		sp := &species[i]
		delta := (c.nextFloat()*2 - 1) * sp.PriceFluctuationPercent / 100
		price := &entity.MarketPrice{
			PlantID:      sp.PlantID,
			Date:         date,
			CurrentPrice: utils.Round2(sp.BaseSellPrice * (1 + delta)),
		}
		if price.CurrentPrice < minStockPrice {
			price.CurrentPrice = minStockPrice
		}
		if err := c.GardenRepository.UpsertMarketPrice(ctx, price); err != nil {
			return stocksUpdated, pricesRefreshed, fmt.Errorf("failed to snapshot market price for %s: %w", sp.Name, err)
		}
		pricesRefreshed++
	}

	key := fmt.Sprintf("GARDEN:MARKET:%s", date)
	if err := c.Redis.Del(ctx, key).Err(); err != nil {
		c.Log.Error("scheduler-usecase", fmt.Sprintf("failed to invalidate market cache: %v", err), "runSimulation", key)
	}

	return stocksUpdated, pricesRefreshed, nil
}

func (c *SchedulerUseCase) publishSimulation(logRow *entity.SchedulerLog, stocksUpdated int) {
	event := &model.SimulationEvent{
		EventID:       uuid.New().String(),
		Task:          logRow.Task,
		Date:          logRow.RunDate,
		Status:        logRow.Status,
		StocksUpdated: stocksUpdated,
	}
	if err := c.TransactionProducer.SendSimulationCompleted(event); err != nil {
		c.Log.Error("scheduler-usecase", fmt.Sprintf("failed to publish simulation event: %v", err), "publishSimulation", logRow.RunDate)
	}
}
