package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"bakery/cmd"
	bakeryhttp "bakery/internal/adapters/in/http"
	"bakery/internal/adapters/out/postgres/orderrepo"
	"bakery/internal/adapters/out/postgres/productrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	ctx := context.Background()
	if err := app.WarmStore(ctx); err != nil {
		log.Fatalf("Error warming order store: %v", err)
	}

	consumer, err := app.CreateOrderChangeConsumer(configs)
	if err != nil {
		log.Fatalf("Error creating order change consumer: %v", err)
	}
	defer consumer.Close()
	go func() {
		if consumeErr := consumer.Start(ctx); consumeErr != nil {
			logger.Error("order change consumer exited", "error", consumeErr)
		}
	}()

	jobManager := app.CreateJobManager(configs)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	go app.Hub().Run()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:              goDotEnvVariable("KAFKA_HOST"),
		KafkaConsumerGroup:     goDotEnvVariable("KAFKA_CONSUMER_GROUP"),
		KafkaOrderChangedTopic: goDotEnvVariable("KAFKA_ORDER_CHANGED_TOPIC"),
		ResendAPIKey:           goDotEnvVariable("RESEND_API_KEY"),
		MailFrom:               goDotEnvVariable("MAIL_FROM"),
		SnapshotOrderLimit:     goDotEnvIntVariable("SNAPSHOT_ORDER_LIMIT"),
		BackupIntervalMinutes:  goDotEnvIntVariable("BACKUP_INTERVAL_MINUTES"),
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

func goDotEnvIntVariable(key string) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return 0
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Error parsing %s as an integer: %v", key, err)
	}
	return value
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err = db.AutoMigrate(&orderrepo.OrderDTO{}, &productrepo.ProductDTO{}); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/ws", func(c echo.Context) error {
		app.Hub().HandleWebSocket(c.Response(), c.Request())
		return nil
	})

	server := bakeryhttp.NewServer(
		app.Store(),
		app.CreatePlaceOrderCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateEditOrderCommandHandler(),
		app.CreateRemoveOrderCommandHandler(),
		app.CreateCreateProductCommandHandler(),
		app.CreateUpdateProductCommandHandler(),
		app.CreateGetActiveOrdersQueryHandler(),
		app.CreateGetOrdersSummaryQueryHandler(),
		app.CreateGetProductsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
