package services

import (
	"errors"
	"strings"

	"github.com/shashiranjanraj/medicare/app/models"
	"github.com/shashiranjanraj/medicare/app/repositories"
	"github.com/shashiranjanraj/medicare/app/resources"
	"github.com/shashiranjanraj/medicare/pkg/apperr"
	"github.com/shashiranjanraj/medicare/pkg/orm"
	"gorm.io/gorm"
)

// ReviewInput is the submit-review request body. Rating and comment are
// both mandatory.
type ReviewInput struct {
	Rating       int    `json:"rating" validate:"required,integer,gte=1,lte=5"`
	Title        string `json:"title" validate:"nullable,max=255"`
	Comment      string `json:"comment" validate:"required"`
	ReviewerName string `json:"reviewer_name" validate:"nullable,max=100"`
}

// ReviewService handles listing and submitting product reviews.
type ReviewService struct {
	reviews *repositories.ReviewRepository
	catalog *repositories.CatalogRepository
	users   *repositories.UserRepository
}

func NewReviewService() *ReviewService {
	return &ReviewService{
		reviews: repositories.NewReviewRepository(),
		catalog: repositories.NewCatalogRepository(),
		users:   repositories.NewUserRepository(),
	}
}

// ListForProduct returns one page of the product's active reviews.
func (s *ReviewService) ListForProduct(productID uint, page, perPage int) ([]resources.ReviewPayload, orm.Pagination, error) {
	reviews, pagination, err := s.reviews.ActiveByProduct(productID, page, perPage)
	if err != nil {
		return nil, orm.Pagination{}, apperr.Wrap(apperr.Internal, "Failed to fetch reviews", err)
	}
	return resources.NewReviewPayloads(reviews), pagination, nil
}

// Add creates a review for the product on behalf of the authenticated user.
// When no reviewer name is supplied, the user's first name is used, falling
// back to Anonymous.
func (s *ReviewService) Add(productID uint, username string, input ReviewInput) (resources.ReviewPayload, error) {
	// Re-checked here so the rule holds for every caller, not just the
	// HTTP binding path.
	if input.Rating < 1 || input.Rating > 5 || strings.TrimSpace(input.Comment) == "" {
		return resources.ReviewPayload{}, apperr.New(apperr.Validation, "Rating and comment are required")
	}

	if _, err := s.catalog.FindProductByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return resources.ReviewPayload{}, apperr.New(apperr.NotFound, "Product not found")
		}
		return resources.ReviewPayload{}, apperr.Wrap(apperr.Internal, "Failed to submit review", err)
	}

	review := models.Review{
		ProductID:    productID,
		Rating:       input.Rating,
		Title:        input.Title,
		Comment:      input.Comment,
		ReviewerName: input.ReviewerName,
		IsActive:     true,
	}

	user, err := s.users.FindByUsername(username)
	if err == nil {
		review.UserID = &user.ID
		if review.ReviewerName == "" {
			review.ReviewerName = user.FirstName
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return resources.ReviewPayload{}, apperr.Wrap(apperr.Internal, "Failed to submit review", err)
	}

	if review.ReviewerName == "" {
		review.ReviewerName = "Anonymous"
	}

	if err := s.reviews.Create(&review); err != nil {
		return resources.ReviewPayload{}, apperr.Wrap(apperr.Internal, "Failed to submit review", err)
	}

	return resources.NewReviewPayload(review), nil
}
