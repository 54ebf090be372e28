package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/benjaminJohnson2204/PAP-Inventory-Processing/cmd/migration/initialize"
	"github.com/benjaminJohnson2204/PAP-Inventory-Processing/cmd/migration/seed"
	"github.com/benjaminJohnson2204/PAP-Inventory-Processing/config"
	"github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/logger"

	migrate "github.com/rubenv/sql-migrate"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	seedFlag := flag.Bool("seed", false, "also load development seed data")
	migrationsDir := flag.String("migrations", "migrations", "path to migration files")
	flag.Parse()

	logger.Init(slog.LevelInfo)
	log := logger.New("migration")

	cfg, err := config.InitConfig()
	if err != nil {
		log.Er("failed to load config", err)
		os.Exit(1)
	}

	db, err := gorm.Open(sqlite.Open(cfg.DatabaseDbPath), &gorm.Config{})
	if err != nil {
		log.Er("failed to open database", err, "dbPath", cfg.DatabaseDbPath)
		os.Exit(1)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Er("failed to get database handle", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	migrations := &migrate.FileMigrationSource{Dir: *migrationsDir}
	applied, err := migrate.Exec(sqlDB, "sqlite3", migrations, migrate.Up)
	if err != nil {
		log.Er("failed to apply migrations", err)
		os.Exit(1)
	}
	log.Info("Applied migrations", "count", applied)

	if err := initialize.InitializeTables(db, cfg, log); err != nil {
		log.Er("failed to initialize tables", err)
		os.Exit(1)
	}

	if *seedFlag {
		if err := seed.Seed(db, cfg, log); err != nil {
			log.Er("failed to seed development data", err)
			os.Exit(1)
		}
	}

	log.Info("Migration complete")
}
