package db_fx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"shorex/internal/infra"
	"shorex/internal/repositories"
)

var Module = fx.Provide(
	provideDB,
	provideRecordRepository)

func provideDB(lc fx.Lifecycle) *gorm.DB {
	db := infra.InitPostgresql()
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			infra.ClosePostgresql(db)
			return nil
		},
	})
	return db
}

func provideRecordRepository(db *gorm.DB) repositories.RecordRepository {
	return repositories.NewRecordRepository(db)
}
