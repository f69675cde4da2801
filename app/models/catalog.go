package models

import (
	"time"

	"gorm.io/gorm"
)

// Manufacturer is a normalized drug maker record.
type Manufacturer struct {
	gorm.Model
	Name            string `gorm:"uniqueIndex;size:255;not null" json:"name"`
	Country         string `gorm:"size:100" json:"country"`
	EstablishedYear int    `json:"established_year"`
	Website         string `gorm:"size:255" json:"website"`
	Description     string `gorm:"type:text" json:"description"`

	Products []Product `json:"-"`
}

// Category is a product category. Categories form a tree via ParentID;
// a root category has a nil parent.
type Category struct {
	gorm.Model
	Name        string `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	ParentID    *uint  `gorm:"index" json:"parent_id"`

	Parent   *Category  `gorm:"foreignKey:ParentID" json:"-"`
	Children []Category `gorm:"foreignKey:ParentID" json:"-"`
	Products []Product  `json:"-"`
}

// Salt is an active pharmaceutical ingredient.
type Salt struct {
	gorm.Model
	Name             string  `gorm:"uniqueIndex;size:255;not null" json:"name"`
	ChemicalFormula  string  `gorm:"size:100" json:"chemical_formula"`
	MolecularWeight  float64 `json:"molecular_weight"`
	Description      string  `gorm:"type:text" json:"description"`
	TherapeuticClass string  `gorm:"size:200" json:"therapeutic_class"`

	FAQs []FAQ `json:"-"`
}

// Product is a medicine listing. The clinical text fields (Uses,
// SideEffects, Precautions, Interactions) hold semicolon-delimited lists
// and are split into arrays at the API boundary.
type Product struct {
	gorm.Model
	Name               string  `gorm:"size:255;not null;index" json:"name"`
	SKU                string  `gorm:"uniqueIndex;size:50;not null" json:"sku"`
	ManufacturerID     uint    `gorm:"not null;index" json:"manufacturer_id"`
	CategoryID         *uint   `gorm:"index" json:"category_id"`
	Price              float64 `gorm:"not null" json:"price"`
	MRP                float64 `json:"mrp"`
	DiscountPercentage float64 `json:"discount_percentage"`
	DescriptionGeneral string  `gorm:"type:text" json:"description_general"`
	Uses               string  `gorm:"type:text" json:"-"`
	HowItWorks         string  `gorm:"type:text" json:"how_it_works"`
	HowToUse           string  `gorm:"type:text" json:"how_to_use"`
	SideEffects        string  `gorm:"type:text" json:"-"`
	Precautions        string  `gorm:"type:text" json:"-"`
	Interactions       string  `gorm:"type:text" json:"-"`
	DosageForm         string  `gorm:"size:100" json:"dosage_form"` // Tablet, Capsule, Syrup, ...
	Strength           string  `gorm:"size:100" json:"strength"`    // 300mg, 500ml, ...
	PackSize           string  `gorm:"size:50" json:"pack_size"`    // 10 tablets, 100ml, ...

	PrescriptionRequired bool       `gorm:"default:true" json:"prescription_required"`
	IsActive             bool       `gorm:"default:true" json:"is_active"`
	StockQuantity        int        `gorm:"default:0" json:"stock_quantity"`
	ReorderLevel         int        `gorm:"default:10" json:"reorder_level"`
	ExpiryDate           *time.Time `json:"expiry_date"`
	ManufacturingDate    *time.Time `json:"manufacturing_date"`
	BatchNumber          string     `gorm:"size:50" json:"batch_number"`
	StorageConditions    string     `gorm:"size:255" json:"storage_conditions"`

	Manufacturer Manufacturer  `json:"-"`
	Category     *Category     `json:"-"`
	ProductSalts []ProductSalt `json:"-"`
	Reviews      []Review      `json:"-"`
}

// ProductSalt links a product to one of its salts with the composition
// strength and percentage. A product may contain several salts and a salt
// appears in many products.
type ProductSalt struct {
	gorm.Model
	ProductID  uint    `gorm:"not null;index" json:"product_id"`
	SaltID     uint    `gorm:"not null;index" json:"salt_id"`
	Strength   string  `gorm:"size:100;not null" json:"strength"` // e.g. "300mg", "500IU"
	Percentage float64 `json:"percentage"`

	Salt Salt `json:"-"`
}

// Substitute is a curated, directed edge from a product to a candidate
// replacement, with a similarity score in [0,1] assigned at curation time.
type Substitute struct {
	gorm.Model
	ProductID           uint    `gorm:"not null;index:idx_substitute_pair,unique" json:"product_id"`
	SubstituteProductID uint    `gorm:"not null;index:idx_substitute_pair,unique" json:"substitute_product_id"`
	SimilarityScore     float64 `gorm:"default:0" json:"similarity_score"`

	SubstituteProduct Product `gorm:"foreignKey:SubstituteProductID" json:"-"`
}

// FAQ is a question/answer pair attached to a salt, a product, or both.
// Both references nil (orphan) or both set are valid states.
type FAQ struct {
	gorm.Model
	SaltID    *uint  `gorm:"index" json:"salt_id"`
	ProductID *uint  `gorm:"index" json:"product_id"`
	Question  string `gorm:"type:text;not null" json:"question"`
	Answer    string `gorm:"type:text;not null" json:"answer"`
	Category  string `gorm:"size:100" json:"category"` // Usage, Side Effects, Dosage, ...
	IsActive  bool   `gorm:"default:true" json:"is_active"`
}

// Review is a 1-5 star product review, optionally tied to a user account.
// ReviewerName is denormalized so reviews survive account changes.
type Review struct {
	gorm.Model
	ProductID        uint   `gorm:"not null;index" json:"product_id"`
	UserID           *uint  `gorm:"index" json:"user_id"`
	Rating           int    `gorm:"not null" json:"rating"`
	Title            string `gorm:"size:255" json:"title"`
	Comment          string `gorm:"type:text" json:"comment"`
	ReviewerName     string `gorm:"size:100;default:Anonymous" json:"reviewer_name"`
	VerifiedPurchase bool   `gorm:"default:false" json:"verified_purchase"`
	HelpfulCount     int    `gorm:"default:0" json:"helpful_count"`
	IsActive         bool   `gorm:"default:true" json:"is_active"`
}
