package main

import (
	"context"
	"fmt"
	"investment-service/src/internal/config"
	"investment-service/src/internal/entity"
	"investment-service/src/pkg/log"
	"os"
	"os/signal"
	"time"

	"github.com/hibiken/asynq"
)

func main() {

	viperConfig := config.NewViper()
	viperConfig.SetDefault("log.level", "DEBUG")
	viperConfig.SetDefault("app.name", "INVESTMENT_SERVICE")
	viperConfig.SetDefault("web.port", 8080)
	viperConfig.SetDefault("market.timezone", "Asia/Jakarta")
	viperConfig.SetDefault("market.garden.open_hour", 6)
	viperConfig.SetDefault("market.garden.close_hour", 18)
	viperConfig.SetDefault("market.stocks.open_hour", 9)
	viperConfig.SetDefault("market.stocks.close_hour", 15)
	viperConfig.SetDefault("garden.plot_cost", 50)
	viperConfig.SetDefault("scheduler.enabled", true)
	viperConfig.SetDefault("scheduler.daily_hour", 0)
	viperConfig.SetDefault("asynq.concurrency", 5)
	log.InitLogger(viperConfig)
	config.NewKafkaConfig(viperConfig)
	logger := log.GetLogger()
	config.LoadRedisConfig(viperConfig)
	db := config.NewDatabase(viperConfig, logger)
	redisClient := config.NewRedis()
	producer := config.NewKafkaProducer(viperConfig, logger)
	validate := config.NewValidator(viperConfig)
	app := config.NewFiber(viperConfig)
	asynqMux := asynq.NewServeMux()
	config.Bootstrap(&config.BootstrapConfig{
		DB:       db,
		App:      app,
		Log:      logger,
		Validate: validate,
		Config:   viperConfig,
		Producer: producer,
		Redis:    redisClient,
		Async:    asynqMux,
	})

	if viperConfig.GetBool("scheduler.enabled") {
		asynqServer := config.NewAsynqServer(viperConfig)
		go func() {
			if err := asynqServer.Run(asynqMux); err != nil {
				logger.Error("main", fmt.Sprintf("Failed to start asynq server: %v", err), "asynq", "")
			}
		}()

		scheduler, err := config.NewAsynqScheduler(viperConfig, entity.TaskDailySimulation)
		if err != nil {
			logger.Error("main", fmt.Sprintf("Failed to build scheduler: %v", err), "asynq", "")
		} else {
			go func() {
				if err := scheduler.Run(); err != nil {
					logger.Error("main", fmt.Sprintf("Failed to start scheduler: %v", err), "asynq", "")
				}
			}()
		}
	}

	webPort := viperConfig.GetInt("web.port")
	err := app.Listen(fmt.Sprintf(":%d", webPort))
	if err != nil {
		log.GetLogger().Error("main", fmt.Sprintf("Failed to start server: %v", err), "main", "")
	}
	done := make(chan bool)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)

	go func() {
		<-quit
		logger.Info("main", "Server investment-service is shutting down...", "gracefull", "")

		_, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := app.Shutdown(); err != nil {
			logger.Error("main", fmt.Sprintf("Error during shutdown: %v", err), "graceful", "")
		}
		close(done)
	}()

	<-done
	logger.Info("main", fmt.Sprintf("Server %s stopped", viperConfig.GetString("app.name")), "gracefull", "")
}
