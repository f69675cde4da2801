package services

import (
	"errors"
	"math"

	"github.com/shashiranjanraj/medicare/app/models"
	"github.com/shashiranjanraj/medicare/app/repositories"
	"github.com/shashiranjanraj/medicare/app/resources"
	"github.com/shashiranjanraj/medicare/pkg/apperr"
	"github.com/shashiranjanraj/medicare/pkg/collection"
	"github.com/shashiranjanraj/medicare/pkg/orm"
	"gorm.io/gorm"
)

const (
	substituteLimit = 6
	saltFAQLimit    = 10
	relatedLimit    = 4

	// Score attached to substitutes discovered through shared salts.
	// Curated edges carry their own score; composition overlap alone is
	// treated as a fixed 0.8 similarity.
	fallbackSimilarityScore = 0.8
)

// ProductDetail is the aggregated detail-page document: the product, its
// composition, substitutes, FAQs, review summary and related products,
// assembled in one call.
type ProductDetail struct {
	ProductDetails  resources.ProductPayload       `json:"product_details"`
	SaltContent     []resources.SaltContentPayload `json:"salt_content"`
	Substitutes     []resources.SubstitutePayload  `json:"substitutes"`
	FAQs            []resources.FAQPayload         `json:"faqs"`
	Reviews         []resources.ReviewPayload      `json:"reviews"`
	AverageRating   float64                        `json:"average_rating"`
	TotalReviews    int                            `json:"total_reviews"`
	RelatedProducts []resources.ProductPayload     `json:"related_products"`
}

// ProductService implements the catalog read operations: the detail
// aggregation, listing, and cross-entity search.
type ProductService struct {
	catalog *repositories.CatalogRepository
}

func NewProductService() *ProductService {
	return &ProductService{catalog: repositories.NewCatalogRepository()}
}

// Detail assembles the full detail document for one product. The product
// itself is served even when inactive; only its satellite lists (substitutes,
// FAQs, reviews, related products) are filtered to active rows.
func (s *ProductService) Detail(id uint) (*ProductDetail, error) {
	product, err := s.catalog.FindProductByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "Product not found")
		}
		return nil, apperr.Wrap(apperr.Internal, "Failed to fetch product", err)
	}

	links, err := s.catalog.SaltComposition(product.ID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Failed to fetch product", err)
	}
	saltIDs := collection.Map(links, func(l models.ProductSalt) uint { return l.SaltID })

	substitutes, err := s.substitutes(product.ID, saltIDs)
	if err != nil {
		return nil, err
	}

	faqs, err := s.faqs(product.ID, saltIDs)
	if err != nil {
		return nil, err
	}

	reviews, err := s.catalog.ActiveReviews(product.ID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Failed to fetch product", err)
	}

	related, err := s.related(product)
	if err != nil {
		return nil, err
	}

	saltContent := collection.Map(links, resources.NewSaltContentPayload)
	if saltContent == nil {
		saltContent = []resources.SaltContentPayload{}
	}

	return &ProductDetail{
		ProductDetails:  resources.NewProductPayload(product),
		SaltContent:     saltContent,
		Substitutes:     substitutes,
		FAQs:            faqs,
		Reviews:         resources.NewReviewPayloads(reviews),
		AverageRating:   averageRating(reviews),
		TotalReviews:    len(reviews),
		RelatedProducts: related,
	}, nil
}

// substitutes prefers the curated edge list; only when no edges exist does
// it fall back to active products sharing at least one salt. The two
// sources are never mixed.
func (s *ProductService) substitutes(productID uint, saltIDs []uint) ([]resources.SubstitutePayload, error) {
	curated, err := s.catalog.CuratedSubstitutes(productID, substituteLimit)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Failed to fetch substitutes", err)
	}

	if len(curated) > 0 {
		out := collection.Map(curated, func(edge models.Substitute) resources.SubstitutePayload {
			return resources.NewSubstitutePayload(edge.SubstituteProduct, edge.SimilarityScore)
		})
		return out, nil
	}

	shared, err := s.catalog.ProductsSharingSalts(productID, saltIDs, substituteLimit)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Failed to fetch substitutes", err)
	}

	out := collection.Map(shared, func(p models.Product) resources.SubstitutePayload {
		return resources.NewSubstitutePayload(p, fallbackSimilarityScore)
	})
	if out == nil {
		out = []resources.SubstitutePayload{}
	}
	return out, nil
}

// faqs unions the product's own FAQs with FAQs of its salts, product FAQs
// first, salt FAQs capped at saltFAQLimit.
func (s *ProductService) faqs(productID uint, saltIDs []uint) ([]resources.FAQPayload, error) {
	productFAQs, err := s.catalog.ActiveProductFAQs(productID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Failed to fetch FAQs", err)
	}

	saltFAQs, err := s.catalog.ActiveSaltFAQs(saltIDs, saltFAQLimit)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Failed to fetch FAQs", err)
	}

	out := make([]resources.FAQPayload, 0, len(productFAQs)+len(saltFAQs))
	for _, f := range productFAQs {
		out = append(out, resources.NewFAQPayload(f))
	}
	for _, f := range saltFAQs {
		out = append(out, resources.NewFAQPayload(f))
	}
	return out, nil
}

func (s *ProductService) related(product models.Product) ([]resources.ProductPayload, error) {
	if product.CategoryID == nil {
		return []resources.ProductPayload{}, nil
	}

	products, err := s.catalog.RelatedProducts(*product.CategoryID, product.ID, relatedLimit)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Failed to fetch related products", err)
	}
	return resources.NewProductPayloads(products), nil
}

// List returns one page of active products matching the filters.
func (s *ProductService) List(filters repositories.ProductFilters, page, perPage int) ([]resources.ProductPayload, orm.Pagination, error) {
	products, pagination, err := s.catalog.ListProducts(filters, page, perPage)
	if err != nil {
		return nil, orm.Pagination{}, apperr.Wrap(apperr.Internal, "Failed to fetch products", err)
	}
	return resources.NewProductPayloads(products), pagination, nil
}

// Search matches the query against product names and descriptions, salt
// names, and manufacturer names.
func (s *ProductService) Search(query string, page, perPage int) ([]resources.ProductPayload, orm.Pagination, error) {
	products, pagination, err := s.catalog.SearchProducts(query, page, perPage)
	if err != nil {
		return nil, orm.Pagination{}, apperr.Wrap(apperr.Internal, "Search failed", err)
	}
	return resources.NewProductPayloads(products), pagination, nil
}

// Categories lists every category.
func (s *ProductService) Categories() ([]resources.CategoryPayload, error) {
	categories, err := s.catalog.AllCategories()
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Failed to fetch categories", err)
	}
	out := collection.Map(categories, resources.NewCategoryPayload)
	if out == nil {
		out = []resources.CategoryPayload{}
	}
	return out, nil
}

// Manufacturers lists every manufacturer.
func (s *ProductService) Manufacturers() ([]resources.ManufacturerPayload, error) {
	manufacturers, err := s.catalog.AllManufacturers()
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Failed to fetch manufacturers", err)
	}
	out := collection.Map(manufacturers, resources.NewManufacturerPayload)
	if out == nil {
		out = []resources.ManufacturerPayload{}
	}
	return out, nil
}

// averageRating is the mean of the given reviews' ratings rounded to one
// decimal, 0 when there are none.
func averageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := collection.Sum(reviews, func(r models.Review) float64 { return float64(r.Rating) })
	return math.Round(sum/float64(len(reviews))*10) / 10
}
