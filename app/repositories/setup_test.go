package repositories

import (
	"testing"

	"github.com/shashiranjanraj/medicare/app/models"
	"github.com/shashiranjanraj/medicare/pkg/database"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Manufacturer{},
		&models.Category{},
		&models.Salt{},
		&models.Product{},
		&models.ProductSalt{},
		&models.Substitute{},
		&models.FAQ{},
		&models.Review{},
		&models.Order{},
		&models.OrderItem{},
	))

	database.DB = db
	t.Cleanup(func() {
		database.DB = nil
		_ = sqlDB.Close()
	})

	return db
}
