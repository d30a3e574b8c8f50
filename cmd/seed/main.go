package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/portfolio/backend/internal/db"
	"github.com/portfolio/backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// SeedData is the structure of the YAML fixture file
type SeedData struct {
	Admins []struct {
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
	} `yaml:"admins"`
	DiagnosticPatterns []struct {
		Keywords           []string `yaml:"keywords"`
		PossibleCauses     []string `yaml:"possibleCauses"`
		DebugSteps         []string `yaml:"debugSteps"`
		Complexity         string   `yaml:"complexity"`
		RecommendedService string   `yaml:"recommendedService"`
	} `yaml:"diagnosticPatterns"`
	Skills []struct {
		Name        string `yaml:"name"`
		Category    string `yaml:"category"`
		Proficiency int    `yaml:"proficiency"`
		SortOrder   int    `yaml:"sortOrder"`
	} `yaml:"skills"`
	Journey []struct {
		Title       string   `yaml:"title"`
		Period      string   `yaml:"period"`
		Description string   `yaml:"description"`
		Highlights  []string `yaml:"highlights"`
		SortOrder   int      `yaml:"sortOrder"`
	} `yaml:"journey"`
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Connect to database
	db.Connect()

	// Run migrations first
	log.Println("Running database migrations...")
	db.AutoMigrate()

	log.Println("Seeding database with fixture data...")

	data, err := loadSeedData()
	if err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}

	seedAdmins(data)
	seedDiagnosticPatterns(data)
	seedSkills(data)
	seedJourney(data)

	log.Println("✅ Database seeding completed successfully!")
}

func loadSeedData() (*SeedData, error) {
	raw, err := os.ReadFile("data/seed.yaml")
	if err != nil {
		// Fall back to invocation from cmd/seed
		raw, err = os.ReadFile("../../data/seed.yaml")
		if err != nil {
			return nil, err
		}
	}

	var data SeedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func seedAdmins(data *SeedData) {
	for _, entry := range data.Admins {
		var existing models.Admin
		if err := db.DB.Where("email = ?", entry.Email).First(&existing).Error; err == nil {
			log.Printf("⚠️  Admin already exists: %s", entry.Email)
			continue
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(entry.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("Error hashing password for %s: %v", entry.Email, err)
			continue
		}

		admin := models.Admin{
			Email:    entry.Email,
			Password: string(hashedPassword),
			Name:     entry.Name,
		}
		if err := db.DB.Create(&admin).Error; err != nil {
			log.Printf("Error creating admin %s: %v", entry.Email, err)
		} else {
			log.Printf("✅ Created admin: %s", entry.Email)
		}
	}
}

func seedDiagnosticPatterns(data *SeedData) {
	var count int64
	db.DB.Model(&models.DiagnosticPattern{}).Count(&count)
	if count > 0 {
		log.Printf("⚠️  Diagnostic patterns already seeded (%d rows)", count)
		return
	}

	for _, entry := range data.DiagnosticPatterns {
		pattern := models.DiagnosticPattern{
			Keywords:           entry.Keywords,
			PossibleCauses:     entry.PossibleCauses,
			DebugSteps:         entry.DebugSteps,
			Complexity:         models.Complexity(entry.Complexity),
			RecommendedService: entry.RecommendedService,
		}
		if err := pattern.Validate(); err != nil {
			log.Printf("Skipping invalid diagnostic pattern: %v", err)
			continue
		}
		if err := db.DB.Create(&pattern).Error; err != nil {
			log.Printf("Error creating diagnostic pattern: %v", err)
		}
	}
	log.Printf("✅ Seeded %d diagnostic patterns", len(data.DiagnosticPatterns))
}

func seedSkills(data *SeedData) {
	var count int64
	db.DB.Model(&models.Skill{}).Count(&count)
	if count > 0 {
		log.Printf("⚠️  Skills already seeded (%d rows)", count)
		return
	}

	for _, entry := range data.Skills {
		skill := models.Skill{
			Name:        entry.Name,
			Category:    entry.Category,
			Proficiency: entry.Proficiency,
			SortOrder:   entry.SortOrder,
		}
		if err := db.DB.Create(&skill).Error; err != nil {
			log.Printf("Error creating skill %s: %v", entry.Name, err)
		}
	}
	log.Printf("✅ Seeded %d skills", len(data.Skills))
}

func seedJourney(data *SeedData) {
	var count int64
	db.DB.Model(&models.JourneyPhase{}).Count(&count)
	if count > 0 {
		log.Printf("⚠️  Journey phases already seeded (%d rows)", count)
		return
	}

	for _, entry := range data.Journey {
		phase := models.JourneyPhase{
			Title:       entry.Title,
			Period:      entry.Period,
			Description: entry.Description,
			Highlights:  entry.Highlights,
			SortOrder:   entry.SortOrder,
		}
		if err := db.DB.Create(&phase).Error; err != nil {
			log.Printf("Error creating journey phase %s: %v", entry.Title, err)
		}
	}
	log.Printf("✅ Seeded %d journey phases", len(data.Journey))
}
