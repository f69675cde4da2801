package repositories

import (
	"github.com/shashiranjanraj/medicare/app/models"
	"github.com/shashiranjanraj/medicare/pkg/orm"
)

// UserRepository handles database operations for User.
type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindByIdentifier looks up a user by username or email; the login form
// accepts either in the same field.
func (r *UserRepository) FindByIdentifier(identifier string) (models.User, error) {
	var user models.User
	err := orm.DB().Model(&models.User{}).
		Where("username = ? OR email = ?", identifier, identifier).
		First(&user)
	return user, err
}

// FindByUsername looks up a user by their unique username.
func (r *UserRepository) FindByUsername(username string) (models.User, error) {
	var user models.User
	err := orm.DB().Model(&models.User{}).Where("username = ?", username).First(&user)
	return user, err
}

// ExistsByUsernameOrEmail reports whether either identifier is taken.
func (r *UserRepository) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	var count int64
	err := orm.DB().Model(&models.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count)
	return count > 0, err
}

// Create persists a new user record.
func (r *UserRepository) Create(user *models.User) error {
	return orm.DB().Create(user)
}
