package app

import (
	"github.com/benjaminJohnson2204/PAP-Inventory-Processing/config"
	"github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/auth"
	"github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/database"
	"github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/handlers/middleware"
	"github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/logger"
	"github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/repositories"

	furnitureController "github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/controllers/furniture"
	vsrController "github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/controllers/vsr"
)

type App struct {
	Database   database.DB
	Middleware middleware.Middleware
	Config     config.Config

	// Repositories
	VSRRepo       repositories.VSRRepository
	FurnitureRepo repositories.FurnitureItemRepository
	UserRepo      repositories.UserRepository

	// Controllers
	VSRController       *vsrController.VSRController
	FurnitureController *furnitureController.FurnitureController
}

func New() (*App, error) {
	log := logger.New("app").Function("New")

	config, err := config.InitConfig()
	if err != nil {
		return &App{}, log.Err("failed to initialize config", err)
	}

	db, err := database.New(config)
	if err != nil {
		return &App{}, log.Err("failed to create database", err)
	}

	verifier, err := auth.NewVerifier(config)
	if err != nil {
		return &App{}, log.Err("failed to create token verifier", err)
	}

	// Initialize repositories
	vsrRepo := repositories.NewVSR(db)
	furnitureRepo := repositories.NewFurnitureItem(db)
	userRepo := repositories.NewUser(db)

	// Initialize controllers and middleware with repositories
	middleware := middleware.New(config, verifier, userRepo)
	vsrController := vsrController.New(vsrRepo, furnitureRepo)
	furnitureController := furnitureController.New(furnitureRepo)

	app := &App{
		Database:            db,
		Config:              config,
		Middleware:          middleware,
		VSRRepo:             vsrRepo,
		FurnitureRepo:       furnitureRepo,
		UserRepo:            userRepo,
		VSRController:       vsrController,
		FurnitureController: furnitureController,
	}

	if err := app.validate(); err != nil {
		return &App{}, log.Err("failed to validate app", err)
	}

	return app, nil
}

func (a *App) validate() error {
	log := logger.New("app").Function("validate")

	if a.Database.SQL == nil {
		return log.ErrMsg("database is nil")
	}

	if a.Config == (config.Config{}) {
		return log.ErrMsg("config is nil")
	}

	nilChecks := []any{
		a.VSRRepo,
		a.FurnitureRepo,
		a.UserRepo,
		a.VSRController,
		a.FurnitureController,
	}

	for _, check := range nilChecks {
		if check == nil {
			return log.ErrMsg("nil check failed")
		}
	}

	return nil
}

func (a *App) Close() error {
	return a.Database.Close()
}
