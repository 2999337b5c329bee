package config

import (
	"log"

	"staffhub/internal/adapters/persistence/models"
	"staffhub/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedDefaultDepartment(); err != nil {
		log.Printf("⚠️ Department seeder skipped: %v", err)
	}
	if err := s.seedAdminUser(); err != nil {
		log.Printf("⚠️ Admin seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedDefaultDepartment creates a General department if none exist
func (s *Seeder) seedDefaultDepartment() error {
	var count int64
	if err := s.db.Model(&models.Department{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	dept := &models.Department{Name: "General", Status: models.StatusActive}
	if err := s.db.Create(dept).Error; err != nil {
		return err
	}

	log.Println("🌱 Seeded default department: General")
	return nil
}

// seedAdminUser seeds a default admin account when no ADMIN exists.
// Development convenience only; production admins are created through a
// controlled process.
func (s *Seeder) seedAdminUser() error {
	var count int64
	if err := s.db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var dept models.Department
	if err := s.db.First(&dept).Error; err != nil {
		return err
	}

	hashed, err := password.Hash(getEnv("SEED_ADMIN_PASSWORD", "admin@12345"))
	if err != nil {
		return err
	}

	admin := &models.User{
		Username:      "admin",
		Email:         getEnv("SEED_ADMIN_EMAIL", "admin@staffhub.local"),
		ContactNumber: "0000000000",
		Password:      hashed,
		Role:          models.RoleAdmin,
		Status:        models.StatusActive,
		DepartmentID:  dept.ID,
	}
	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Println("🌱 Seeded default admin user: admin")
	return nil
}
