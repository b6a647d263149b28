package main

import (
	"fmt"
	"log/slog"
	"os"

	"comanda/cmd"
	adapter_http "comanda/internal/adapters/in/http"
	"comanda/internal/adapters/out/postgres/dishrepo"
	"comanda/internal/adapters/out/postgres/orderrepo"
	"comanda/internal/adapters/out/postgres/summaryrepo"
	"comanda/internal/core/application/usecases/commands"
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/staff"
	"comanda/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := mustOpenDB(configs)
	mustMigrate(db)

	app := cmd.NewCompositionRoot(configs, db)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := buildJobManager(&app, configs, logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		ShiftCloseSchedule: goDotEnvVariable("SHIFT_CLOSE_SCHEDULE"),
		ShiftCloseStaffID:  goDotEnvVariable("SHIFT_CLOSE_STAFF_ID"),
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

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func mustMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&dishrepo.DishDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&summaryrepo.SummaryDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := db.Exec("CREATE SEQUENCE IF NOT EXISTS order_numbers").Error; err != nil {
		log.Fatalf("Failed to create order number sequence: %v", err)
	}
}

// buildJobManager wires the scheduled jobs. Without a shift close schedule
// no job runs and no system staff id is required; closes then happen only
// through the API.
func buildJobManager(app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) *jobs.JobManager {
	if configs.ShiftCloseSchedule == "" {
		logger.Info("Shift close job disabled, no schedule configured")
		return jobs.NewJobManager(commands.CloseShiftCommandHandler{}, staff.Actor{}, "", logger)
	}

	return jobs.NewJobManager(
		app.CreateCloseShiftCommandHandler(),
		systemActor(configs),
		configs.ShiftCloseSchedule,
		logger,
	)
}

// systemActor is the identity the scheduled shift close runs under. The id
// comes from configuration so the summaries attribute automated closes
// consistently across restarts.
func systemActor(configs cmd.Config) staff.Actor {
	id, err := kernel.UUIDFromString(configs.ShiftCloseStaffID)
	if err != nil {
		log.Fatalf("Invalid SHIFT_CLOSE_STAFF_ID: %v", err)
	}

	actor, err := staff.NewActor(id, staff.RoleAdmin)
	if err != nil {
		log.Fatalf("Failed to build system actor: %v", err)
	}
	return actor
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := adapter_http.NewServer(
		app.CreateCreateDishCommandHandler(),
		app.CreateUpdateDishCommandHandler(),
		app.CreateDeleteDishCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderCommandHandler(),
		app.CreateCloseOrderCommandHandler(),
		app.CreateCloseShiftCommandHandler(),
		app.CreateGetAllDishesQueryHandler(),
		app.CreateGetDishQueryHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateCashierReportQueryHandler(),
	)

	e := echo.New()
	if err := server.RegisterRoutes(e); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
