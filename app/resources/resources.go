// Package resources shapes models into the JSON payloads the API returns.
// Payload builders never return nil slices for list fields, so absent data
// serialises as [] rather than null.
package resources

import (
	"strings"
	"time"

	"github.com/shashiranjanraj/medicare/app/models"
	"github.com/shashiranjanraj/medicare/pkg/collection"
)

// SplitList splits a semicolon-delimited text field into an ordered list.
// Empty text yields an empty (non-nil) slice.
func SplitList(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ";")
}

// UserPayload is the public shape of a user account.
type UserPayload struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsActive  bool   `json:"is_active"`
}

func NewUserPayload(u models.User) UserPayload {
	return UserPayload{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsActive:  u.IsActive,
	}
}

type ManufacturerPayload struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	Country         string `json:"country"`
	EstablishedYear int    `json:"established_year"`
	Website         string `json:"website"`
}

func NewManufacturerPayload(m models.Manufacturer) ManufacturerPayload {
	return ManufacturerPayload{
		ID:              m.ID,
		Name:            m.Name,
		Country:         m.Country,
		EstablishedYear: m.EstablishedYear,
		Website:         m.Website,
	}
}

type CategoryPayload struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ParentID    *uint  `json:"parent_id"`
}

func NewCategoryPayload(c models.Category) CategoryPayload {
	return CategoryPayload{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		ParentID:    c.ParentID,
	}
}

// ProductPayload is the full product record with clinical text fields
// split into lists and related names denormalized.
type ProductPayload struct {
	ID                   uint     `json:"id"`
	Name                 string   `json:"name"`
	SKU                  string   `json:"sku"`
	Manufacturer         *string  `json:"manufacturer"`
	Category             *string  `json:"category"`
	Price                float64  `json:"price"`
	MRP                  float64  `json:"mrp"`
	DiscountPercentage   float64  `json:"discount_percentage"`
	DescriptionGeneral   string   `json:"description_general"`
	Uses                 []string `json:"uses"`
	HowItWorks           string   `json:"how_it_works"`
	HowToUse             string   `json:"how_to_use"`
	SideEffects          []string `json:"side_effects"`
	Precautions          []string `json:"precautions"`
	Interactions         []string `json:"interactions"`
	DosageForm           string   `json:"dosage_form"`
	Strength             string   `json:"strength"`
	PackSize             string   `json:"pack_size"`
	PrescriptionRequired bool     `json:"prescription_required"`
	IsActive             bool     `json:"is_active"`
	StockQuantity        int      `json:"stock_quantity"`
	ExpiryDate           *string  `json:"expiry_date"`
	ManufacturingDate    *string  `json:"manufacturing_date"`
	BatchNumber          string   `json:"batch_number"`
	StorageConditions    string   `json:"storage_conditions"`
}

func NewProductPayload(p models.Product) ProductPayload {
	payload := ProductPayload{
		ID:                   p.ID,
		Name:                 p.Name,
		SKU:                  p.SKU,
		Price:                p.Price,
		MRP:                  p.MRP,
		DiscountPercentage:   p.DiscountPercentage,
		DescriptionGeneral:   p.DescriptionGeneral,
		Uses:                 SplitList(p.Uses),
		HowItWorks:           p.HowItWorks,
		HowToUse:             p.HowToUse,
		SideEffects:          SplitList(p.SideEffects),
		Precautions:          SplitList(p.Precautions),
		Interactions:         SplitList(p.Interactions),
		DosageForm:           p.DosageForm,
		Strength:             p.Strength,
		PackSize:             p.PackSize,
		PrescriptionRequired: p.PrescriptionRequired,
		IsActive:             p.IsActive,
		StockQuantity:        p.StockQuantity,
		BatchNumber:          p.BatchNumber,
		StorageConditions:    p.StorageConditions,
		ExpiryDate:           dateString(p.ExpiryDate),
		ManufacturingDate:    dateString(p.ManufacturingDate),
	}

	if p.Manufacturer.ID != 0 {
		name := p.Manufacturer.Name
		payload.Manufacturer = &name
	}
	if p.Category != nil {
		name := p.Category.Name
		payload.Category = &name
	}

	return payload
}

func NewProductPayloads(products []models.Product) []ProductPayload {
	out := collection.Map(products, NewProductPayload)
	if out == nil {
		out = []ProductPayload{}
	}
	return out
}

// SaltContentPayload is one entry of a product's composition list.
type SaltContentPayload struct {
	SaltName    string  `json:"salt_name"`
	Strength    string  `json:"strength"`
	Percentage  float64 `json:"percentage"`
	Description string  `json:"description"`
}

func NewSaltContentPayload(ps models.ProductSalt) SaltContentPayload {
	return SaltContentPayload{
		SaltName:    ps.Salt.Name,
		Strength:    ps.Strength,
		Percentage:  ps.Percentage,
		Description: ps.Salt.Description,
	}
}

// SubstitutePayload is one substitute candidate. The ID is the candidate
// product's ID, not the edge's.
type SubstitutePayload struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	Manufacturer    string  `json:"manufacturer"`
	Price           float64 `json:"price"`
	Strength        string  `json:"strength"`
	SimilarityScore float64 `json:"similarity_score"`
}

func NewSubstitutePayload(p models.Product, score float64) SubstitutePayload {
	return SubstitutePayload{
		ID:              p.ID,
		Name:            p.Name,
		Manufacturer:    p.Manufacturer.Name,
		Price:           p.Price,
		Strength:        p.Strength,
		SimilarityScore: score,
	}
}

type FAQPayload struct {
	ID       uint   `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

func NewFAQPayload(f models.FAQ) FAQPayload {
	return FAQPayload{
		ID:       f.ID,
		Question: f.Question,
		Answer:   f.Answer,
		Category: f.Category,
	}
}

type ReviewPayload struct {
	ID               uint   `json:"id"`
	Rating           int    `json:"rating"`
	Title            string `json:"title"`
	Comment          string `json:"comment"`
	ReviewerName     string `json:"reviewer_name"`
	VerifiedPurchase bool   `json:"verified_purchase"`
	HelpfulCount     int    `json:"helpful_count"`
	Date             string `json:"date"`
}

func NewReviewPayload(r models.Review) ReviewPayload {
	return ReviewPayload{
		ID:               r.ID,
		Rating:           r.Rating,
		Title:            r.Title,
		Comment:          r.Comment,
		ReviewerName:     r.ReviewerName,
		VerifiedPurchase: r.VerifiedPurchase,
		HelpfulCount:     r.HelpfulCount,
		Date:             r.CreatedAt.Format("2006-01-02"),
	}
}

func NewReviewPayloads(reviews []models.Review) []ReviewPayload {
	out := collection.Map(reviews, NewReviewPayload)
	if out == nil {
		out = []ReviewPayload{}
	}
	return out
}

type OrderPayload struct {
	ID            uint    `json:"id"`
	OrderNumber   string  `json:"order_number"`
	Status        string  `json:"status"`
	TotalAmount   float64 `json:"total_amount"`
	PaymentMethod string  `json:"payment_method"`
	PaymentStatus string  `json:"payment_status"`
	CreatedAt     string  `json:"created_at"`
}

func NewOrderPayload(o models.Order) OrderPayload {
	return OrderPayload{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		Status:        o.Status,
		TotalAmount:   o.TotalAmount,
		PaymentMethod: o.PaymentMethod,
		PaymentStatus: o.PaymentStatus,
		CreatedAt:     o.CreatedAt.Format(time.RFC3339),
	}
}

func dateString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
