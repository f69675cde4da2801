package services

import (
	"testing"

	"github.com/shashiranjanraj/medicare/app/models"
	"github.com/shashiranjanraj/medicare/pkg/database"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an in-memory database, migrates the full schema, and
// points the process-wide handle at it for the duration of the test.
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

func createManufacturer(t *testing.T, db *gorm.DB, name string) models.Manufacturer {
	t.Helper()
	m := models.Manufacturer{Name: name, Country: "India"}
	require.NoError(t, db.Create(&m).Error)
	return m
}

func createCategory(t *testing.T, db *gorm.DB, name string) models.Category {
	t.Helper()
	c := models.Category{Name: name}
	require.NoError(t, db.Create(&c).Error)
	return c
}

func createSalt(t *testing.T, db *gorm.DB, name string) models.Salt {
	t.Helper()
	s := models.Salt{Name: name}
	require.NoError(t, db.Create(&s).Error)
	return s
}

func createProduct(t *testing.T, db *gorm.DB, p models.Product) models.Product {
	t.Helper()
	require.NoError(t, db.Create(&p).Error)
	return p
}

func linkSalt(t *testing.T, db *gorm.DB, productID, saltID uint, strength string) {
	t.Helper()
	require.NoError(t, db.Create(&models.ProductSalt{
		ProductID: productID,
		SaltID:    saltID,
		Strength:  strength,
	}).Error)
}

func createUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	u := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		IsActive:     true,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}
