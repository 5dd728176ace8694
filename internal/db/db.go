package db

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/macicado/barberagenda/internal/config"
	"github.com/macicado/barberagenda/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.BusinessConfig{},
		&models.Service{},
		&models.Booking{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	seed(db)

	return db
}

// seed garante a linha única de configuração e o catálogo inicial.
// Nunca sobrescreve o que o painel já alterou.
func seed(db *gorm.DB) {
	var cfgCount int64
	db.Model(&models.BusinessConfig{}).Count(&cfgCount)
	if cfgCount == 0 {
		cfg := models.DefaultBusinessConfig()
		if err := db.Create(&cfg).Error; err != nil {
			log.Error().Err(err).Msg("failed to seed business config")
		}
	}

	var svcCount int64
	db.Model(&models.Service{}).Count(&svcCount)
	if svcCount == 0 {
		services := models.DefaultServices()
		if err := db.Create(&services).Error; err != nil {
			log.Error().Err(err).Msg("failed to seed services")
		}
	}
}
