package seeders

import (
	"time"

	"github.com/shashiranjanraj/medicare/app/models"
	"github.com/shashiranjanraj/medicare/pkg/auth"
	"gorm.io/gorm"
)

func init() {
	Register(&DemoSeeder{})
}

// DemoSeeder loads a small but complete pharmacy catalog: a test user,
// manufacturers, categories, salts, products with compositions, curated
// substitutes, FAQs, and reviews.
type DemoSeeder struct{}

func (DemoSeeder) Name() string { return "demo" }

func (DemoSeeder) Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", "testuser").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil // already seeded
	}

	hash, err := auth.HashPassword("password123")
	if err != nil {
		return err
	}

	user := models.User{
		Username:     "testuser",
		Email:        "test@example.com",
		PasswordHash: hash,
		FirstName:    "Test",
		LastName:     "User",
		IsActive:     true,
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}

	manufacturers := []models.Manufacturer{
		{Name: "Cipla Ltd", Country: "India", EstablishedYear: 1935, Website: "https://www.cipla.com"},
		{Name: "Sun Pharma", Country: "India", EstablishedYear: 1983, Website: "https://www.sunpharma.com"},
		{Name: "GSK", Country: "United Kingdom", EstablishedYear: 2000, Website: "https://www.gsk.com"},
	}
	if err := db.Create(&manufacturers).Error; err != nil {
		return err
	}

	painRelief := models.Category{Name: "Pain Relief", Description: "Analgesics and anti-inflammatory medicines"}
	if err := db.Create(&painRelief).Error; err != nil {
		return err
	}
	categories := []models.Category{
		{Name: "Tablets", Description: "Oral solid dosage forms", ParentID: &painRelief.ID},
		{Name: "Antibiotics", Description: "Anti-bacterial medicines"},
		{Name: "Vitamins", Description: "Nutritional supplements"},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}

	salts := []models.Salt{
		{Name: "Paracetamol", ChemicalFormula: "C8H9NO2", MolecularWeight: 151.16, Description: "Analgesic and antipyretic", TherapeuticClass: "Analgesic"},
		{Name: "Ibuprofen", ChemicalFormula: "C13H18O2", MolecularWeight: 206.28, Description: "Non-steroidal anti-inflammatory", TherapeuticClass: "NSAID"},
		{Name: "Amoxicillin", ChemicalFormula: "C16H19N3O5S", MolecularWeight: 365.4, Description: "Broad-spectrum penicillin antibiotic", TherapeuticClass: "Antibiotic"},
	}
	if err := db.Create(&salts).Error; err != nil {
		return err
	}

	expiry := time.Now().AddDate(2, 0, 0)
	manufactured := time.Now().AddDate(0, -6, 0)

	products := []models.Product{
		{
			Name:               "Crocin Advance 500mg",
			SKU:                "CRO-500-15",
			ManufacturerID:     manufacturers[2].ID,
			CategoryID:         &painRelief.ID,
			Price:              20.50, MRP: 25.00, DiscountPercentage: 18,
			DescriptionGeneral: "Fast-acting paracetamol tablet for fever and mild pain.",
			Uses:               "Fever;Headache;Body ache",
			HowItWorks:         "Blocks prostaglandin production in the brain.",
			HowToUse:           "Take with water after food.",
			SideEffects:        "Nausea;Skin rash",
			Precautions:        "Avoid alcohol;Do not exceed 4g per day",
			Interactions:       "Warfarin;Alcohol",
			DosageForm:         "Tablet", Strength: "500mg", PackSize: "15 tablets",
			PrescriptionRequired: false, IsActive: true, StockQuantity: 500,
			ExpiryDate: &expiry, ManufacturingDate: &manufactured,
			BatchNumber: "CR2601A", StorageConditions: "Store below 25°C",
		},
		{
			Name:               "Calpol 500mg",
			SKU:                "CAL-500-15",
			ManufacturerID:     manufacturers[2].ID,
			CategoryID:         &painRelief.ID,
			Price:              18.00, MRP: 22.00, DiscountPercentage: 18,
			DescriptionGeneral: "Paracetamol tablet for fever and pain relief.",
			Uses:               "Fever;Pain",
			DosageForm:         "Tablet", Strength: "500mg", PackSize: "15 tablets",
			PrescriptionRequired: false, IsActive: true, StockQuantity: 320,
		},
		{
			Name:               "Brufen 400mg",
			SKU:                "BRU-400-10",
			ManufacturerID:     manufacturers[0].ID,
			CategoryID:         &painRelief.ID,
			Price:              32.00, MRP: 40.00, DiscountPercentage: 20,
			DescriptionGeneral: "Ibuprofen tablet for pain and inflammation.",
			Uses:               "Pain;Inflammation;Fever",
			SideEffects:        "Stomach upset;Heartburn",
			DosageForm:         "Tablet", Strength: "400mg", PackSize: "10 tablets",
			PrescriptionRequired: false, IsActive: true, StockQuantity: 210,
		},
		{
			Name:               "Mox 500 Capsule",
			SKU:                "MOX-500-10",
			ManufacturerID:     manufacturers[1].ID,
			CategoryID:         &categories[1].ID,
			Price:              85.00, MRP: 95.00, DiscountPercentage: 10,
			DescriptionGeneral: "Amoxicillin capsule for bacterial infections.",
			Uses:               "Respiratory infections;Ear infections;UTI",
			Precautions:        "Complete the full course",
			DosageForm:         "Capsule", Strength: "500mg", PackSize: "10 capsules",
			PrescriptionRequired: true, IsActive: true, StockQuantity: 140,
		},
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}

	links := []models.ProductSalt{
		{ProductID: products[0].ID, SaltID: salts[0].ID, Strength: "500mg", Percentage: 100},
		{ProductID: products[1].ID, SaltID: salts[0].ID, Strength: "500mg", Percentage: 100},
		{ProductID: products[2].ID, SaltID: salts[1].ID, Strength: "400mg", Percentage: 100},
		{ProductID: products[3].ID, SaltID: salts[2].ID, Strength: "500mg", Percentage: 100},
	}
	if err := db.Create(&links).Error; err != nil {
		return err
	}

	substitutes := []models.Substitute{
		{ProductID: products[0].ID, SubstituteProductID: products[1].ID, SimilarityScore: 0.95},
	}
	if err := db.Create(&substitutes).Error; err != nil {
		return err
	}

	faqs := []models.FAQ{
		{ProductID: &products[0].ID, Question: "Can I take Crocin on an empty stomach?", Answer: "It is better taken after food.", Category: "Usage", IsActive: true},
		{SaltID: &salts[0].ID, Question: "Is paracetamol safe during pregnancy?", Answer: "Consult your doctor before use.", Category: "Safety", IsActive: true},
		{SaltID: &salts[1].ID, Question: "Does ibuprofen cause drowsiness?", Answer: "Drowsiness is uncommon.", Category: "Side Effects", IsActive: true},
	}
	if err := db.Create(&faqs).Error; err != nil {
		return err
	}

	reviews := []models.Review{
		{ProductID: products[0].ID, UserID: &user.ID, Rating: 5, Title: "Works fast", Comment: "Fever gone in an hour.", ReviewerName: "Test", VerifiedPurchase: true, IsActive: true},
		{ProductID: products[0].ID, Rating: 4, Title: "Good", Comment: "Reliable for headaches.", ReviewerName: "Anonymous", IsActive: true},
	}
	return db.Create(&reviews).Error
}
