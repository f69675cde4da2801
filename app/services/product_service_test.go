package services

import (
	"testing"

	"github.com/shashiranjanraj/medicare/app/models"
	"github.com/shashiranjanraj/medicare/pkg/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetailAggregatesEverything(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService()

	maker := createManufacturer(t, db, "Cipla Ltd")
	category := createCategory(t, db, "Pain Relief")
	salt := createSalt(t, db, "Paracetamol")

	product := createProduct(t, db, models.Product{
		Name:           "Crocin 500",
		SKU:            "CRO-500",
		ManufacturerID: maker.ID,
		CategoryID:     &category.ID,
		Price:          20.50,
		Uses:           "Fever;Headache",
		SideEffects:    "Nausea",
		IsActive:       true,
	})
	linkSalt(t, db, product.ID, salt.ID, "500mg")

	// One product FAQ and one salt FAQ; product FAQs must come first.
	require.NoError(t, db.Create(&models.FAQ{
		ProductID: &product.ID, Question: "Product Q", Answer: "A", IsActive: true,
	}).Error)
	require.NoError(t, db.Create(&models.FAQ{
		SaltID: &salt.ID, Question: "Salt Q", Answer: "A", IsActive: true,
	}).Error)

	require.NoError(t, db.Create(&models.Review{
		ProductID: product.ID, Rating: 5, ReviewerName: "A", IsActive: true,
	}).Error)
	require.NoError(t, db.Create(&models.Review{
		ProductID: product.ID, Rating: 4, ReviewerName: "B", IsActive: true,
	}).Error)
	// Inactive reviews are invisible everywhere.
	require.NoError(t, db.Create(&models.Review{
		ProductID: product.ID, Rating: 1, ReviewerName: "C", IsActive: false,
	}).Error)

	related := createProduct(t, db, models.Product{
		Name: "Calpol 500", SKU: "CAL-500", ManufacturerID: maker.ID,
		CategoryID: &category.ID, Price: 18, IsActive: true,
	})
	linkSalt(t, db, related.ID, salt.ID, "500mg")

	detail, err := svc.Detail(product.ID)
	require.NoError(t, err)

	assert.Equal(t, "Crocin 500", detail.ProductDetails.Name)
	assert.Equal(t, []string{"Fever", "Headache"}, detail.ProductDetails.Uses)
	require.NotNil(t, detail.ProductDetails.Manufacturer)
	assert.Equal(t, "Cipla Ltd", *detail.ProductDetails.Manufacturer)

	require.Len(t, detail.SaltContent, 1)
	assert.Equal(t, "Paracetamol", detail.SaltContent[0].SaltName)
	assert.Equal(t, "500mg", detail.SaltContent[0].Strength)

	require.Len(t, detail.FAQs, 2)
	assert.Equal(t, "Product Q", detail.FAQs[0].Question)
	assert.Equal(t, "Salt Q", detail.FAQs[1].Question)

	assert.Equal(t, 2, detail.TotalReviews)
	assert.Equal(t, 4.5, detail.AverageRating)

	// No curated edges, so the salt-sharing sibling shows up as a
	// fallback substitute with the fixed score.
	require.Len(t, detail.Substitutes, 1)
	assert.Equal(t, related.ID, detail.Substitutes[0].ID)
	assert.Equal(t, 0.8, detail.Substitutes[0].SimilarityScore)

	require.Len(t, detail.RelatedProducts, 1)
	assert.Equal(t, "Calpol 500", detail.RelatedProducts[0].Name)
}

func TestDetailNotFound(t *testing.T) {
	newTestDB(t)
	svc := NewProductService()

	_, err := svc.Detail(12345)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.NotFound))
}

func TestDetailServesInactiveProduct(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService()

	maker := createManufacturer(t, db, "Sun Pharma")
	product := createProduct(t, db, models.Product{
		Name: "Old Med", SKU: "OLD-1", ManufacturerID: maker.ID, IsActive: false,
	})

	detail, err := svc.Detail(product.ID)
	require.NoError(t, err)
	assert.False(t, detail.ProductDetails.IsActive)
}

func TestSubstitutesPreferCuratedOverFallback(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService()

	maker := createManufacturer(t, db, "Cipla Ltd")
	salt := createSalt(t, db, "Ibuprofen")

	subject := createProduct(t, db, models.Product{
		Name: "Brufen 400", SKU: "BRU-400", ManufacturerID: maker.ID, IsActive: true,
	})
	curated := createProduct(t, db, models.Product{
		Name: "Ibugesic 400", SKU: "IBU-400", ManufacturerID: maker.ID, IsActive: true,
	})
	sharing := createProduct(t, db, models.Product{
		Name: "Advil 400", SKU: "ADV-400", ManufacturerID: maker.ID, IsActive: true,
	})

	linkSalt(t, db, subject.ID, salt.ID, "400mg")
	linkSalt(t, db, sharing.ID, salt.ID, "400mg")

	require.NoError(t, db.Create(&models.Substitute{
		ProductID: subject.ID, SubstituteProductID: curated.ID, SimilarityScore: 0.92,
	}).Error)

	detail, err := svc.Detail(subject.ID)
	require.NoError(t, err)

	// The curated edge wins; the salt-sharing product must not leak in.
	require.Len(t, detail.Substitutes, 1)
	assert.Equal(t, curated.ID, detail.Substitutes[0].ID)
	assert.Equal(t, 0.92, detail.Substitutes[0].SimilarityScore)
}

func TestFallbackSubstitutesExcludeSelfAndInactive(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService()

	maker := createManufacturer(t, db, "Cipla Ltd")
	saltA := createSalt(t, db, "Paracetamol")
	saltB := createSalt(t, db, "Caffeine")

	subject := createProduct(t, db, models.Product{
		Name: "Combo Med", SKU: "CMB-1", ManufacturerID: maker.ID, IsActive: true,
	})
	linkSalt(t, db, subject.ID, saltA.ID, "500mg")
	linkSalt(t, db, subject.ID, saltB.ID, "30mg")

	// Shares both salts: must still appear exactly once.
	both := createProduct(t, db, models.Product{
		Name: "Combo Twin", SKU: "CMB-2", ManufacturerID: maker.ID, IsActive: true,
	})
	linkSalt(t, db, both.ID, saltA.ID, "500mg")
	linkSalt(t, db, both.ID, saltB.ID, "30mg")

	inactive := createProduct(t, db, models.Product{
		Name: "Retired Combo", SKU: "CMB-3", ManufacturerID: maker.ID, IsActive: false,
	})
	linkSalt(t, db, inactive.ID, saltA.ID, "500mg")

	detail, err := svc.Detail(subject.ID)
	require.NoError(t, err)

	require.Len(t, detail.Substitutes, 1)
	assert.Equal(t, both.ID, detail.Substitutes[0].ID)
}

func TestAverageRatingRoundsToOneDecimal(t *testing.T) {
	reviews := []models.Review{{Rating: 5}, {Rating: 4}, {Rating: 4}}
	assert.Equal(t, 4.3, averageRating(reviews)) // 13/3 = 4.333...

	assert.Equal(t, 0.0, averageRating(nil))
}

func TestRelatedProductsCappedAtFour(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService()

	maker := createManufacturer(t, db, "GSK")
	category := createCategory(t, db, "Vitamins")

	subject := createProduct(t, db, models.Product{
		Name: "Vit A", SKU: "VIT-A", ManufacturerID: maker.ID,
		CategoryID: &category.ID, IsActive: true,
	})

	for _, sku := range []string{"VIT-B", "VIT-C", "VIT-D", "VIT-E", "VIT-F", "VIT-G"} {
		createProduct(t, db, models.Product{
			Name: sku, SKU: sku, ManufacturerID: maker.ID,
			CategoryID: &category.ID, IsActive: true,
		})
	}

	detail, err := svc.Detail(subject.ID)
	require.NoError(t, err)
	assert.Len(t, detail.RelatedProducts, 4)
}

func TestSearchRequiresResultsAcrossJoins(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService()

	maker := createManufacturer(t, db, "Aurex Labs")
	salt := createSalt(t, db, "Azithromycin")

	product := createProduct(t, db, models.Product{
		Name: "Zithro 250", SKU: "ZIT-250", ManufacturerID: maker.ID, IsActive: true,
	})
	linkSalt(t, db, product.ID, salt.ID, "250mg")

	// By salt name.
	results, pagination, err := svc.Search("azithro", 1, 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Zithro 250", results[0].Name)
	assert.Equal(t, int64(1), pagination.Total)

	// By manufacturer name.
	results, _, err = svc.Search("aurex", 1, 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
}
