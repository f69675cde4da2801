package repositories

import (
	"github.com/shashiranjanraj/medicare/app/models"
	"github.com/shashiranjanraj/medicare/pkg/orm"
)

// ReviewRepository handles database operations for Review.
type ReviewRepository struct{}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

// ActiveByProduct returns one page of active reviews for the product,
// newest first.
func (r *ReviewRepository) ActiveByProduct(productID uint, page, perPage int) ([]models.Review, orm.Pagination, error) {
	var reviews []models.Review
	pagination, err := orm.DB().Model(&models.Review{}).
		Where("product_id = ?", productID).
		Where("is_active = ?", true).
		Order("created_at desc").
		GetWithPagination(&reviews, page, perPage)
	return reviews, pagination, err
}

// Create persists a new review.
func (r *ReviewRepository) Create(review *models.Review) error {
	return orm.DB().Create(review)
}
