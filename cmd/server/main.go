package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/app"
	"github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/handlers"
	"github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	logger.Init(slog.LevelInfo)
	log := logger.New("main")

	application, err := app.New()
	if err != nil {
		log.Er("failed to create app", err)
		os.Exit(1)
	}
	defer func() {
		if err := application.Close(); err != nil {
			log.Er("failed to close app", err)
		}
	}()

	logger.Init(parseLogLevel(application.Config.LogLevel))

	server := fiber.New(fiber.Config{
		AppName: "pap-inventory-api",
	})
	server.Use(recover.New())
	server.Use(cors.New())

	if err := handlers.Router(server, application); err != nil {
		log.Er("failed to register routes", err)
		os.Exit(1)
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-shutdown
		log.Info("Shutting down server")
		if err := server.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Er("failed to shut down server cleanly", err)
		}
	}()

	address := fmt.Sprintf(":%d", application.Config.Port)
	log.Info("Starting server", "address", address)
	if err := server.Listen(address); err != nil {
		log.Er("server stopped", err)
		os.Exit(1)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
