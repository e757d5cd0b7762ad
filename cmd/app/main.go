package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/cmd"
	adapterhttp "github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/adapters/in/http"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/adapters/out/postgres/orderrepo"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/adapters/out/postgres/shipmentrepo"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateSyncPurchaseOrdersCommandHandler(),
		configs.ErpSyncSchedule,
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		DBHost:           goDotEnvVariable("DB_HOST"),
		DBPort:           goDotEnvVariable("DB_PORT"),
		DBUser:           goDotEnvVariable("DB_USER"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD"),
		DBName:           goDotEnvVariable("DB_NAME"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE"),
		ErpNextURL:       goDotEnvVariable("ERPNEXT_URL"),
		ErpNextAPIKey:    goDotEnvVariable("ERPNEXT_API_KEY"),
		ErpNextAPISecret: goDotEnvVariable("ERPNEXT_API_SECRET"),
		ErpSyncSchedule:  goDotEnvVariable("ERP_SYNC_SCHEDULE"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.ShipmentOrderDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := adapterhttp.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateChangeDeliveryDateCommandHandler(),
		app.CreateAcceptShipmentProposalCommandHandler(),
		app.CreateDispatchShipmentCommandHandler(),
		app.CreateSyncPurchaseOrdersCommandHandler(),
		app.CreateGetPurchaseOrdersQueryHandler(),
		app.CreateGetShipmentsQueryHandler(),
		app.CreateGetShipmentPlanQueryHandler(),
		app.CreateGetSupplierScoresQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
