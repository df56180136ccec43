package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"orderflow/cmd"
	httpin "orderflow/internal/adapters/in/http"
	"orderflow/internal/adapters/out/postgres/orderrepo"
	"orderflow/internal/pkg/logging"
)

func main() {
	configs := getConfigs()
	logger := logging.NewLogger(configs.LogLevel)

	gormDB := mustConnectDB(configs)

	app, err := cmd.NewCompositionRoot(context.Background(), configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Error building composition root: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	config := cmd.Config{
		HTTPPort: envVariable("HTTP_PORT", "8080"),
		LogLevel: envVariable("LOG_LEVEL", "info"),

		DBHost:     envVariable("DB_HOST", "localhost"),
		DBPort:     envVariable("DB_PORT", "5432"),
		DBUser:     envVariable("DB_USER", "postgres"),
		DBPassword: envVariable("DB_PASSWORD", "postgres"),
		DBName:     envVariable("DB_NAME", "orderflow"),
		DBSslMode:  envVariable("DB_SSLMODE", "disable"),

		LookupBaseURL:    envVariable("LOOKUP_BASE_URL", "http://localhost:9090"),
		LookupTimeoutSec: envInt64Variable("LOOKUP_TIMEOUT_SEC", 5),
		LookupRetryMax:   int(envInt64Variable("LOOKUP_RETRY_MAX", 3)),

		MinioEndpoint:  envVariable("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccessKey: envVariable("MINIO_ACCESS_KEY", "minioadmin"),
		MinioSecretKey: envVariable("MINIO_SECRET_KEY", "minioadmin"),
		MinioBucket:    envVariable("MINIO_BUCKET", "order-exports"),
		MinioUseSSL:    envVariable("MINIO_USE_SSL", "false") == "true",

		ProcessUserIDs:  envUserIDsVariable("PROCESS_USER_IDS"),
		ProcessSchedule: envVariable("PROCESS_SCHEDULE", "0 */5 * * * *"),
	}
	return config
}

func envVariable(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt64Variable(key string, fallback int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return parsed
}

// envUserIDsVariable parses a comma separated list of user ids, e.g. "1,7,42".
func envUserIDsVariable(key string) []int64 {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}

	var userIDs []int64
	for _, part := range strings.Split(value, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			log.Fatalf("Error parsing %s: %v", key, err)
		}
		userIDs = append(userIDs, id)
	}
	return userIDs
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		configs.DBHost, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBPort, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&orderrepo.OrderDTO{}); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
	return gormDB
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(
		app.CreateProcessOrdersCommandHandler(),
		app.CreateGetUserOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
