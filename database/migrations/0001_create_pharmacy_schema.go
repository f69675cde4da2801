// Package migrations holds the schema migrations, registered in
// chronological order via init().
package migrations

import (
	"github.com/shashiranjanraj/medicare/app/models"
	"github.com/shashiranjanraj/medicare/pkg/migration"
	"gorm.io/gorm"
)

func init() {
	migration.Register("20260101000000_create_pharmacy_schema", &CreatePharmacySchema{})
}

// CreatePharmacySchema creates every catalog, user, and order table.
type CreatePharmacySchema struct{}

func (CreatePharmacySchema) Up(db *gorm.DB) error {
	return db.AutoMigrate(
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
	)
}

func (CreatePharmacySchema) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(
		&models.OrderItem{},
		&models.Order{},
		&models.Review{},
		&models.FAQ{},
		&models.Substitute{},
		&models.ProductSalt{},
		&models.Product{},
		&models.Salt{},
		&models.Category{},
		&models.Manufacturer{},
		&models.User{},
	)
}
