package migration

import (
	"github.com/openretail/salesboard/internal/config"
	salesdomain "github.com/openretail/salesboard/internal/sales/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			return RunMigrations(sqlDB)
		}
		return conn.AutoMigrate(salesdomain.Models()...)
	}),
)
