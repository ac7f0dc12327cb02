package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/wael7705/movo-project/cmd"
	httpserver "github.com/wael7705/movo-project/internal/adapters/in/http"
	"github.com/wael7705/movo-project/internal/adapters/out/postgres/captainrepo"
	"github.com/wael7705/movo-project/internal/adapters/out/postgres/customerrepo"
	"github.com/wael7705/movo-project/internal/adapters/out/postgres/eventlog"
	"github.com/wael7705/movo-project/internal/adapters/out/postgres/orderrepo"
	"github.com/wael7705/movo-project/internal/adapters/out/postgres/restaurantrepo"
	"github.com/wael7705/movo-project/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := connectDB(configs)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", configs.RedisHost, configs.RedisPort),
		Password: configs.RedisPassword,
	})

	app := cmd.NewCompositionRoot(configs, gormDB, redisClient, logger)

	startJobs(&app, logger)
	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:      goDotEnvVariable("HTTP_PORT"),
		DBHost:        goDotEnvVariable("DB_HOST"),
		DBPort:        goDotEnvVariable("DB_PORT"),
		DBUser:        goDotEnvVariable("DB_USER"),
		DBPassword:    goDotEnvVariable("DB_PASSWORD"),
		DBName:        goDotEnvVariable("DB_NAME"),
		DBSslMode:     goDotEnvVariable("DB_SSLMODE"),
		RedisHost:     goDotEnvVariable("REDIS_HOST"),
		RedisPort:     goDotEnvVariable("REDIS_PORT"),
		RedisPassword: goDotEnvVariable("REDIS_PASSWORD"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&captainrepo.CaptainDTO{},
		&customerrepo.CustomerDTO{},
		&restaurantrepo.RestaurantDTO{},
		&eventlog.OrderEventDTO{},
		&eventlog.IdempotencyKeyDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	return gormDB
}

func startJobs(app *cmd.CompositionRoot, logger *slog.Logger) {
	jobManager := jobs.NewJobManager(
		app.CreateReleaseScheduledOrdersCommandHandler(),
		app.CreateBroadcastCaptainPositionsCommandHandler(),
		logger,
	)

	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpserver.NewServer(
		app.CreateCreateDemoOrderCommandHandler(),
		app.CreateAdvanceOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateSetOrderStatusCommandHandler(),
		app.CreateAssignCaptainCommandHandler(),
		app.CreateGetOrderCardsQueryHandler(),
		app.CreateGetOrderCountsQueryHandler(),
		app.CreateGetDispatchCandidatesQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
