package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"venu/internal/models/db_models"
)

type FacilityRepository interface {
	ListActive(ctx context.Context) ([]db_models.Facility, error)
	FindByName(ctx context.Context, name string) (*db_models.Facility, error)
	Upsert(ctx context.Context, facility *db_models.Facility) error
}

type facilityRepository struct {
	db *gorm.DB
}

func NewFacilityRepository(db *gorm.DB) FacilityRepository {
	return &facilityRepository{db: db}
}

func (r *facilityRepository) ListActive(ctx context.Context) ([]db_models.Facility, error) {
	var facilities []db_models.Facility
	err := r.db.WithContext(ctx).
		Where("active = true").
		Order("name ASC").
		Find(&facilities).Error
	return facilities, err
}

func (r *facilityRepository) FindByName(ctx context.Context, name string) (*db_models.Facility, error) {
	var facility db_models.Facility
	err := r.db.WithContext(ctx).First(&facility, "name = ?", name).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &facility, nil
}

// Upsert keeps catalog seeding idempotent: re-running the seed against an
// already-migrated database is a no-op for existing names.
func (r *facilityRepository) Upsert(ctx context.Context, facility *db_models.Facility) error {
	existing, err := r.FindByName(ctx, facility.Name)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	return r.db.WithContext(ctx).Create(facility).Error
}
