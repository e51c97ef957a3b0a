// Schema migration and seeding tool. Runs the same migrations the API
// server runs at startup, then exits.
package main

import (
	"fmt"
	"os"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/hostpicks/hostpicks-backend/internal/config"
	"github.com/hostpicks/hostpicks-backend/internal/migration"
	pkglogger "github.com/hostpicks/hostpicks-backend/pkg/logger"
)

func main() {
	config.LoadDotEnv()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.InitStructured(env)
	log := pkglogger.GetLogger()

	cfg, err := config.Load(fmt.Sprintf("configs/config.%s.yaml", env))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	mysqlCfg, err := mysqldriver.ParseDSN(cfg.Database.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("invalid DSN")
	}
	db, err := gorm.Open(mysql.Open(mysqlCfg.FormatDSN()), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := migration.Run(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	if err := migration.SeedSEORules(db); err != nil {
		log.Fatal().Err(err).Msg("SEO rule seeding failed")
	}
	if err := migration.SeedAdminUser(db, os.Getenv("ADMIN_USERNAME"), os.Getenv("ADMIN_PASSWORD")); err != nil {
		log.Fatal().Err(err).Msg("admin seeding failed")
	}

	log.Info().Msg("migration complete")
}
