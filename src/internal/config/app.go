package config

import (
	mathrand "math/rand"
	"time"

	"investment-service/src/internal/delivery/http"
	"investment-service/src/internal/delivery/http/middleware"
	"investment-service/src/internal/delivery/http/route"
	"investment-service/src/internal/entity"
	"investment-service/src/internal/gateway/messaging"
	"investment-service/src/internal/repository"
	"investment-service/src/internal/usecase"
	"investment-service/src/pkg/clock"
	"investment-service/src/pkg/databases/mysql"
	kafkaPkgConfluent "investment-service/src/pkg/kafka/confluent"
	"investment-service/src/pkg/log"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
)

type BootstrapConfig struct {
	DB       mysql.DBInterface
	App      *fiber.App
	Log      log.Log
	Validate *validator.Validate
	Config   *viper.Viper
	Producer kafkaPkgConfluent.Producer
	Redis    redis.UniversalClient
	Async    *asynq.ServeMux
}

// NewRand builds the shared price source. A nonzero simulation.seed makes
// every price walk reproducible.
func NewRand(v *viper.Viper) *mathrand.Rand {
	seed := v.GetInt64("simulation.seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return mathrand.New(mathrand.NewSource(seed))
}

func Bootstrap(config *BootstrapConfig) {
	// setup repositories
	walletRepository := repository.NewWalletRepository(config.DB)
	transactionRepository := repository.NewTransactionRepository(config.DB)
	gardenRepository := repository.NewGardenRepository(config.DB)
	stockRepository := repository.NewStockRepository(config.DB)
	schedulerRepository := repository.NewSchedulerRepository(config.DB)
	transactionProducer := messaging.NewTransactionProducer(config.Producer, config.Log)

	clk := clock.New()
	// each usecase guards its own source, so they must not share one
	gardenRand := NewRand(config.Config)
	schedulerRand := NewRand(config.Config)

	// setup use cases
	walletUseCase := usecase.NewWalletUseCase(
		config.Log,
		config.Validate,
		walletRepository,
		transactionRepository,
		stockRepository,
		gardenRepository,
		config.Config,
		transactionProducer,
	)

	gardenUseCase := usecase.NewGardenUseCase(
		config.Log,
		config.Validate,
		gardenRepository,
		walletRepository,
		config.Config,
		config.Redis,
		transactionProducer,
		clk,
		gardenRand,
	)

	stockUseCase := usecase.NewStockUseCase(
		config.Log,
		config.Validate,
		stockRepository,
		walletRepository,
		config.Config,
		transactionProducer,
		clk,
	)

	schedulerUseCase := usecase.NewSchedulerUseCase(
		config.Log,
		stockRepository,
		gardenRepository,
		schedulerRepository,
		config.Config,
		config.Redis,
		transactionProducer,
		clk,
		schedulerRand,
	)

	// setup controller
	walletController := http.NewWalletController(walletUseCase, config.Log)
	gardenController := http.NewGardenController(gardenUseCase, config.Log)
	stockController := http.NewStockController(stockUseCase, config.Log)
	adminController := http.NewAdminController(schedulerUseCase, config.Log)
	// setup middleware
	authMiddleware := middleware.VerifyBearer(config.Config)
	config.Async.HandleFunc(entity.TaskDailySimulation, schedulerUseCase.HandleDailySimulation)
	routeConfig := route.RouteConfig{
		App:              config.App,
		WalletController: walletController,
		GardenController: gardenController,
		StockController:  stockController,
		AdminController:  adminController,
		AuthMiddleware:   authMiddleware,
	}
	routeConfig.Setup()
}
