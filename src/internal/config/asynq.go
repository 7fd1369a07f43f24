package config

import (
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/spf13/viper"
)

func asynqRedisOpt(v *viper.Viper) asynq.RedisClientOpt {
	host := v.GetString("redis.host")
	if host == "" {
		host = "127.0.0.1"
	}

	port := v.GetInt("redis.port")
	if port == 0 {
		port = 6379
	}

	return asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: v.GetString("redis.password"),
		DB:       v.GetInt("redis.db"),
	}
}

func NewAsynqServer(v *viper.Viper) *asynq.Server {
	return asynq.NewServer(asynqRedisOpt(v), asynq.Config{
		Concurrency: v.GetInt("asynq.concurrency"),
	})
}

// NewAsynqScheduler registers the daily simulation task at the configured
// hour in the market timezone.
func NewAsynqScheduler(v *viper.Viper, taskType string) (*asynq.Scheduler, error) {
	location, err := time.LoadLocation(v.GetString("market.timezone"))
	if err != nil {
		location = time.UTC
	}

	scheduler := asynq.NewScheduler(asynqRedisOpt(v), &asynq.SchedulerOpts{
		Location: location,
	})

	hour := v.GetInt("scheduler.daily_hour")
	cronspec := fmt.Sprintf("0 %d * * *", hour)
	if _, err := scheduler.Register(cronspec, asynq.NewTask(taskType, nil)); err != nil {
		return nil, err
	}

	return scheduler, nil
}
