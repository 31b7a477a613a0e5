package main

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"quickdesk-backend/internal/config"
	"quickdesk-backend/internal/database"
	"quickdesk-backend/internal/database/models"
	apperrors "quickdesk-backend/internal/errors"
	"quickdesk-backend/internal/repository"
	"quickdesk-backend/internal/security"
	"quickdesk-backend/internal/service"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TenantData is one organization with its first admin
type TenantData struct {
	OrganizationName string `yaml:"organization_name"`
	Domain           string `yaml:"domain"`
	Name             string `yaml:"name"`
	Email            string `yaml:"email"`
	Password         string `yaml:"password"`
}

// TenantsFile is the layout of every YAML file under the data directory
type TenantsFile struct {
	Tenants []TenantData `yaml:"tenants"`
}

func main() {
	log.Println("Loading initial tenants from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	dataDir := "scripts/data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	seeder := &tenantSeeder{
		tenants:   repository.NewTenantRepository(db),
		hasher:    security.NewHasher(cfg.BcryptCost),
		validator: service.NewValidator(),
		now:       time.Now,
	}
	if err := seeder.loadDir(context.Background(), dataDir); err != nil {
		log.Fatalf("Failed to load tenants: %v", err)
	}

	log.Println("Initial tenants loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

type tenantSeeder struct {
	tenants   repository.TenantRepositoryInterface
	hasher    *security.Hasher
	validator *service.Validator
	now       func() time.Time
}

func (s *tenantSeeder) loadDir(ctx context.Context, dataDir string) error {
	tenants, err := loadTenants(dataDir)
	if err != nil {
		return err
	}

	created, skipped := 0, 0
	for _, tenant := range tenants {
		ok, err := s.seed(ctx, tenant)
		if err != nil {
			return fmt.Errorf("tenant %s: %w", tenant.OrganizationName, err)
		}
		if ok {
			created++
		} else {
			skipped++
		}
	}

	log.Printf("Tenants: %d created, %d skipped, %d total", created, skipped, len(tenants))
	return nil
}

// seed creates one tenant. It returns false when the organization or the
// user already exists.
func (s *tenantSeeder) seed(ctx context.Context, data TenantData) (bool, error) {
	req := service.SignupRequest{
		OrganizationName: strings.TrimSpace(data.OrganizationName),
		Domain:           strings.ToLower(strings.TrimSpace(data.Domain)),
		Name:             strings.TrimSpace(data.Name),
		Email:            strings.ToLower(strings.TrimSpace(data.Email)),
		Password:         data.Password,
		ConfirmPassword:  data.Password,
	}
	if err := s.validator.Struct(&req); err != nil {
		return false, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return false, err
	}

	_, err = s.tenants.SeedTenant(ctx, models.PendingSignup{
		OrganizationName: req.OrganizationName,
		Domain:           req.Domain,
		Name:             req.Name,
		Email:            req.Email,
		PasswordHash:     hash,
	}, s.now())
	if apperrors.IsAlreadyExists(err) {
		log.Printf("Warning: skipping %s: %v", req.OrganizationName, err)
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func loadTenants(dataDir string) ([]TenantData, error) {
	var tenants []TenantData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || (!strings.HasSuffix(path, ".yaml") && !strings.HasSuffix(path, ".yml")) {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		var file TenantsFile
		if err := yaml.Unmarshal(content, &file); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		tenants = append(tenants, file.Tenants...)
		return nil
	})

	return tenants, err
}
