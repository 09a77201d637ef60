package main

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/johnquangdev/virtual-office/internal/domain/entities"
	"github.com/johnquangdev/virtual-office/internal/infrastructure/database"
	"github.com/johnquangdev/virtual-office/pkg/config"
)

func main() {
	log.Println("🚀 Starting demo company seed...")

	// Load configuration from .env
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	log.Println("🗑️  Cleaning up existing demo company...")
	db.Where("name = ?", "Acme Dynamics").Delete(&entities.Company{})

	company := &entities.Company{
		ID:          uuid.New(),
		Name:        "Acme Dynamics",
		Description: strPtr("Acme Dynamics builds industrial robots for small factories."),
		Industry:    strPtr("robotics"),
	}
	if err := db.Create(company).Error; err != nil {
		log.Fatalf("❌ Failed to create company: %v", err)
	}

	personas := []struct {
		Name        string
		Role        string
		Personality string
		Expertise   string
	}{
		{"Maya", "Engineering Lead", "pragmatic, direct, allergic to scope creep", `["robotics","golang","systems design"]`},
		{"Felix", "Product Manager", "enthusiastic, asks a lot of clarifying questions", `["roadmaps","customer research"]`},
		{"Iris", "Finance Analyst", "precise, cautious, always quantifies risk", `["budgeting","forecasting"]`},
	}

	log.Println("👥 Creating staff personas...")
	for _, p := range personas {
		staff := &entities.Staff{
			ID:          uuid.New(),
			CompanyID:   company.ID,
			Name:        p.Name,
			Role:        p.Role,
			Personality: strPtr(p.Personality),
			Expertise:   datatypes.JSON(p.Expertise),
			IsActive:    true,
		}
		if err := db.Create(staff).Error; err != nil {
			log.Printf("❌ Failed to create staff %s: %v", p.Name, err)
			continue
		}
		log.Printf("✅ Created %s (%s) — id=%s", p.Name, p.Role, staff.ID)
	}

	log.Println("📚 Creating knowledge base entries...")
	entries := []entities.Knowledge{
		{ID: uuid.New(), CompanyID: company.ID, Title: "Release cadence", Content: "We ship firmware updates every second Tuesday."},
		{ID: uuid.New(), CompanyID: company.ID, Title: "Q3 priority", Content: "The Q3 priority is the compact arm line for food processing plants."},
	}
	for _, entry := range entries {
		if err := db.Create(&entry).Error; err != nil {
			log.Printf("❌ Failed to create knowledge entry %q: %v", entry.Title, err)
		}
	}

	log.Printf("✅ Demo company seeded — company_id=%s", company.ID)
}

func strPtr(s string) *string { return &s }
