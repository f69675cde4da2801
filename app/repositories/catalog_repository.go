package repositories

import (
	"strings"
	"time"

	"github.com/shashiranjanraj/medicare/app/models"
	"github.com/shashiranjanraj/medicare/pkg/orm"
	"gorm.io/gorm"
)

const metaCacheTTL = 10 * time.Minute

// ProductFilters are the optional, conjunctive product list filters.
// Nil/zero fields impose no constraint.
type ProductFilters struct {
	Search               string
	CategoryID           uint
	ManufacturerID       uint
	MinPrice             *float64
	MaxPrice             *float64
	PrescriptionRequired *bool
}

// CatalogRepository is the read side over products, salts, manufacturers,
// categories, substitutes, FAQs and reviews.
type CatalogRepository struct{}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{}
}

// FindProductByID fetches one product with its manufacturer and category.
// Inactive products are returned too; the detail endpoint serves them.
func (r *CatalogRepository) FindProductByID(id uint) (models.Product, error) {
	var product models.Product
	err := orm.DB().Model(&models.Product{}).
		Preload("Manufacturer").
		Preload("Category").
		Where("id = ?", id).
		First(&product)
	return product, err
}

// SaltComposition returns the product's salt links with salts preloaded.
func (r *CatalogRepository) SaltComposition(productID uint) ([]models.ProductSalt, error) {
	var links []models.ProductSalt
	err := orm.DB().Model(&models.ProductSalt{}).
		Preload("Salt").
		Where("product_id = ?", productID).
		Get(&links)
	return links, err
}

// CuratedSubstitutes returns up to limit curated substitute edges for the
// product, in curation order, with candidate products preloaded.
func (r *CatalogRepository) CuratedSubstitutes(productID uint, limit int) ([]models.Substitute, error) {
	var subs []models.Substitute
	err := orm.DB().Model(&models.Substitute{}).
		Preload("SubstituteProduct").
		Preload("SubstituteProduct.Manufacturer").
		Where("product_id = ?", productID).
		Limit(limit).
		Get(&subs)
	return subs, err
}

// ProductsSharingSalts returns up to limit other active products that
// contain at least one of the given salts, excluding the subject product.
// A product sharing several salts appears once.
func (r *CatalogRepository) ProductsSharingSalts(productID uint, saltIDs []uint, limit int) ([]models.Product, error) {
	if len(saltIDs) == 0 {
		return nil, nil
	}

	var products []models.Product
	err := orm.DB().Model(&models.Product{}).
		Joins("JOIN product_salts ON product_salts.product_id = products.id").
		Where("product_salts.salt_id IN ?", saltIDs).
		Where("products.id <> ?", productID).
		Where("products.is_active = ?", true).
		Distinct("products.*").
		Preload("Manufacturer").
		Limit(limit).
		Get(&products)
	return products, err
}

// ActiveProductFAQs returns all active FAQs tagged directly to the product.
func (r *CatalogRepository) ActiveProductFAQs(productID uint) ([]models.FAQ, error) {
	var faqs []models.FAQ
	err := orm.DB().Model(&models.FAQ{}).
		Where("product_id = ?", productID).
		Where("is_active = ?", true).
		Get(&faqs)
	return faqs, err
}

// ActiveSaltFAQs returns up to limit active FAQs tagged to any of the salts.
func (r *CatalogRepository) ActiveSaltFAQs(saltIDs []uint, limit int) ([]models.FAQ, error) {
	if len(saltIDs) == 0 {
		return nil, nil
	}

	var faqs []models.FAQ
	err := orm.DB().Model(&models.FAQ{}).
		Where("salt_id IN ?", saltIDs).
		Where("is_active = ?", true).
		Limit(limit).
		Get(&faqs)
	return faqs, err
}

// ActiveReviews returns every active review for the product.
func (r *CatalogRepository) ActiveReviews(productID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := orm.DB().Model(&models.Review{}).
		Where("product_id = ?", productID).
		Where("is_active = ?", true).
		Get(&reviews)
	return reviews, err
}

// RelatedProducts returns up to limit other active products in the same
// category.
func (r *CatalogRepository) RelatedProducts(categoryID, excludeProductID uint, limit int) ([]models.Product, error) {
	var products []models.Product
	err := orm.DB().Model(&models.Product{}).
		Preload("Manufacturer").
		Preload("Category").
		Where("category_id = ?", categoryID).
		Where("id <> ?", excludeProductID).
		Where("is_active = ?", true).
		Limit(limit).
		Get(&products)
	return products, err
}

// ListProducts returns one page of active products matching every supplied
// filter (AND semantics).
func (r *CatalogRepository) ListProducts(f ProductFilters, page, perPage int) ([]models.Product, orm.Pagination, error) {
	q := orm.DB().Model(&models.Product{}).
		Preload("Manufacturer").
		Preload("Category").
		Where("is_active = ?", true)

	if f.Search != "" {
		like := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where("(LOWER(name) LIKE ? OR LOWER(description_general) LIKE ?)", like, like)
	}
	if f.CategoryID != 0 {
		q = q.Where("category_id = ?", f.CategoryID)
	}
	if f.ManufacturerID != 0 {
		q = q.Where("manufacturer_id = ?", f.ManufacturerID)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}
	if f.PrescriptionRequired != nil {
		q = q.Where("prescription_required = ?", *f.PrescriptionRequired)
	}

	var products []models.Product
	pagination, err := q.GetWithPagination(&products, page, perPage)
	return products, pagination, err
}

// SearchProducts matches the query against product name/description, salt
// name, and manufacturer name through the composition join. Rows are
// de-duplicated before pagination so a product with several matching
// salts appears once, and the total counts distinct products.
func (r *CatalogRepository) SearchProducts(query string, page, perPage int) ([]models.Product, orm.Pagination, error) {
	like := "%" + strings.ToLower(query) + "%"

	base := func() *gorm.DB {
		return orm.DB().Gorm().
			Model(&models.Product{}).
			Joins("JOIN product_salts ON product_salts.product_id = products.id").
			Joins("JOIN salts ON salts.id = product_salts.salt_id").
			Joins("JOIN manufacturers ON manufacturers.id = products.manufacturer_id").
			Where("products.is_active = ?", true).
			Where(`(LOWER(products.name) LIKE ?
				OR LOWER(products.description_general) LIKE ?
				OR LOWER(salts.name) LIKE ?
				OR LOWER(manufacturers.name) LIKE ?)`, like, like, like, like)
	}

	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 1
	}

	var total int64
	if err := base().Distinct("products.id").Count(&total).Error; err != nil {
		return nil, orm.Pagination{}, err
	}

	var products []models.Product
	err := base().
		Distinct("products.*").
		Preload("Manufacturer").
		Preload("Category").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&products).Error
	if err != nil {
		return nil, orm.Pagination{}, err
	}

	return products, orm.NewPagination(page, perPage, total), nil
}

// AllCategories lists every category, read-through cached in Redis.
func (r *CatalogRepository) AllCategories() ([]models.Category, error) {
	var categories []models.Category
	err := orm.DB().Model(&models.Category{}).
		Cache("catalog:categories", metaCacheTTL, &categories)
	return categories, err
}

// AllManufacturers lists every manufacturer, read-through cached in Redis.
func (r *CatalogRepository) AllManufacturers() ([]models.Manufacturer, error) {
	var manufacturers []models.Manufacturer
	err := orm.DB().Model(&models.Manufacturer{}).
		Cache("catalog:manufacturers", metaCacheTTL, &manufacturers)
	return manufacturers, err
}

// CategoryDescendants walks the category tree breadth-first and returns
// every category below root, using the parent-id adjacency index.
func (r *CatalogRepository) CategoryDescendants(rootID uint) ([]models.Category, error) {
	var out []models.Category
	frontier := []uint{rootID}

	for len(frontier) > 0 {
		var children []models.Category
		err := orm.DB().Model(&models.Category{}).
			Where("parent_id IN ?", frontier).
			Get(&children)
		if err != nil {
			return nil, err
		}
		if len(children) == 0 {
			break
		}

		out = append(out, children...)
		frontier = frontier[:0]
		for _, c := range children {
			frontier = append(frontier, c.ID)
		}
	}

	return out, nil
}
