package repository

import (
	"context"

	"quickdesk-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationRepository handles database operations for organizations
type OrganizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// GetByID retrieves an organization by ID
func (r *OrganizationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	err := r.db.WithContext(ctx).First(&org, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetByName retrieves an organization by name
func (r *OrganizationRepository) GetByName(ctx context.Context, name string) (*models.Organization, error) {
	var org models.Organization
	err := r.db.WithContext(ctx).First(&org, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetByDomain retrieves an organization by domain
func (r *OrganizationRepository) GetByDomain(ctx context.Context, domain string) (*models.Organization, error) {
	var org models.Organization
	err := r.db.WithContext(ctx).First(&org, "domain = ?", domain).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// ExistsByNameOrDomain reports whether an organization already uses the name or the domain
func (r *OrganizationRepository) ExistsByNameOrDomain(ctx context.Context, name, domain string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Organization{}).
		Where("name = ? OR domain = ?", name, domain).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
