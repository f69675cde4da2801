package services

import (
	"testing"

	"github.com/shashiranjanraj/medicare/app/models"
	"github.com/shashiranjanraj/medicare/pkg/apperr"
	"github.com/shashiranjanraj/medicare/pkg/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddReviewUsesFirstNameWhenNameOmitted(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService()

	user := createUser(t, db, "reviewer")
	require.NoError(t, db.Model(&models.User{}).
		Where("id = ?", user.ID).Update("first_name", "Priya").Error)

	maker := createManufacturer(t, db, "Cipla Ltd")
	product := createProduct(t, db, models.Product{
		Name: "Crocin 500", SKU: "CRO-500", ManufacturerID: maker.ID, IsActive: true,
	})

	review, err := svc.Add(product.ID, user.Username, ReviewInput{Rating: 5, Title: "Great", Comment: "Works well"})
	require.NoError(t, err)
	assert.Equal(t, "Priya", review.ReviewerName)
	assert.Equal(t, 5, review.Rating)
}

func TestAddReviewFallsBackToAnonymous(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService()

	user := createUser(t, db, "reviewer") // no first name
	maker := createManufacturer(t, db, "Cipla Ltd")
	product := createProduct(t, db, models.Product{
		Name: "Crocin 500", SKU: "CRO-500", ManufacturerID: maker.ID, IsActive: true,
	})

	review, err := svc.Add(product.ID, user.Username, ReviewInput{Rating: 3, Comment: "Average"})
	require.NoError(t, err)
	assert.Equal(t, "Anonymous", review.ReviewerName)
}

func TestAddReviewRequiresComment(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService()

	user := createUser(t, db, "reviewer")
	maker := createManufacturer(t, db, "Cipla Ltd")
	product := createProduct(t, db, models.Product{
		Name: "Crocin 500", SKU: "CRO-500", ManufacturerID: maker.ID, IsActive: true,
	})

	// The binding layer flags the missing field.
	errs := validate.Struct(&ReviewInput{Rating: 5})
	assert.Contains(t, errs, "comment")

	// And the service refuses it even when called directly.
	_, err := svc.Add(product.ID, user.Username, ReviewInput{Rating: 5})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.Validation))
	assert.Contains(t, err.Error(), "Rating and comment are required")

	// Whitespace is not a comment.
	_, err = svc.Add(product.ID, user.Username, ReviewInput{Rating: 5, Comment: "   "})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.Validation))

	var count int64
	require.NoError(t, db.Model(&models.Review{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAddReviewMissingProduct(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService()
	user := createUser(t, db, "reviewer")

	_, err := svc.Add(9999, user.Username, ReviewInput{Rating: 4, Comment: "Fine"})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.NotFound))
}

func TestListForProductPaginatesActiveOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService()

	maker := createManufacturer(t, db, "Cipla Ltd")
	product := createProduct(t, db, models.Product{
		Name: "Crocin 500", SKU: "CRO-500", ManufacturerID: maker.ID, IsActive: true,
	})

	for i := 0; i < 5; i++ {
		require.NoError(t, db.Create(&models.Review{
			ProductID: product.ID, Rating: 4, ReviewerName: "R", IsActive: true,
		}).Error)
	}
	require.NoError(t, db.Create(&models.Review{
		ProductID: product.ID, Rating: 1, ReviewerName: "Hidden", IsActive: false,
	}).Error)

	reviews, pagination, err := svc.ListForProduct(product.ID, 1, 2)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)
	assert.Equal(t, int64(5), pagination.Total)
	assert.Equal(t, 3, pagination.Pages)
	assert.True(t, pagination.HasNext)
	assert.False(t, pagination.HasPrev)
}
