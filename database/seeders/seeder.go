// Package seeders populates the database with development data.
package seeders

import (
	"fmt"

	"gorm.io/gorm"
)

// Seeder fills one slice of the database with sample rows. Seeders must
// be idempotent: running twice leaves the data unchanged.
type Seeder interface {
	Name() string
	Seed(db *gorm.DB) error
}

var registry []Seeder

// Register adds a seeder to the global registry in run order.
func Register(s Seeder) {
	registry = append(registry, s)
}

// Run executes every registered seeder in order.
func Run(db *gorm.DB) error {
	for _, s := range registry {
		fmt.Printf("  Seeding: %s\n", s.Name())
		if err := s.Seed(db); err != nil {
			return fmt.Errorf("seeder %s: %w", s.Name(), err)
		}
	}
	return nil
}
