package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"laundry/cmd"
	httpin "laundry/internal/adapters/in/http"
	"laundry/internal/adapters/out/email"
	"laundry/internal/adapters/out/kafka"
	"laundry/internal/adapters/out/postgres"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := newLogger(configs.LogLevel)

	gormDB, err := gorm.Open(pgdriver.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("Error getting database handle: %v", err)
	}
	defer sqlDB.Close()

	if err = postgres.Migrate(sqlDB); err != nil {
		log.Fatalf("Error applying migrations: %v", err)
	}

	ctx := context.Background()
	sender, err := email.NewSESSender(ctx, configs.SESRegion, configs.SESFromAddress)
	if err != nil {
		log.Fatalf("Error creating e-mail sender: %v", err)
	}
	publisher, err := kafka.NewSaramaPublisher(configs.KafkaBrokers(), configs.KafkaOrderChangedTopic)
	if err != nil {
		log.Fatalf("Error creating event publisher: %v", err)
	}
	defer publisher.Close()

	app := cmd.NewCompositionRoot(configs, gormDB, sender, publisher, logger)

	jobManager, err := app.CreateJobManager()
	if err != nil {
		log.Fatalf("Error creating jobs: %v", err)
	}
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs, logger)
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())

	server := httpin.NewServer(httpin.Handlers{
		PlaceOrder:         app.CreatePlaceOrderCommandHandler(),
		ChangeOrderStatus:  app.CreateChangeOrderStatusCommandHandler(),
		DispatchDriver:     app.CreateDispatchDriverCommandHandler(),
		GenerateInvoice:    app.CreateGenerateInvoiceCommandHandler(),
		ResendNotification: app.CreateResendNotificationCommandHandler(),
		ActiveOrders:       app.CreateGetActiveOrdersQueryHandler(),
		OrderDetails:       app.CreateGetOrderDetailsQueryHandler(),
		OrderHistory:       app.CreateGetOrderHistoryQueryHandler(),
		DriverAssignments:  app.CreateGetDriverAssignmentsQueryHandler(),
	}, logger)
	if err := server.Register(e, []byte(configs.JWTSecret)); err != nil {
		log.Fatalf("Error registering HTTP routes: %v", err)
	}

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Error(err)
	}
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: l}))
}
