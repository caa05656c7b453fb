package services

import (
	"context"

	"github.com/lib/pq"

	"venu/internal/models/db_models"
	"venu/internal/repositories"
	"venu/pkg/utils"
)

type FacilityServiceInterface interface {
	ListFacilities(ctx context.Context) ([]db_models.Facility, error)
	SeedDefaults(ctx context.Context) error
}

type FacilityService struct {
	facilityRepo repositories.FacilityRepository
}

func NewFacilityService(facilityRepo repositories.FacilityRepository) FacilityServiceInterface {
	return &FacilityService{facilityRepo: facilityRepo}
}

func (s *FacilityService) ListFacilities(ctx context.Context) ([]db_models.Facility, error) {
	facilities, err := s.facilityRepo.ListActive(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return facilities, nil
}

// SeedDefaults inserts the default catalog once; existing names are left
// untouched on subsequent runs.
func (s *FacilityService) SeedDefaults(ctx context.Context) error {
	defaults := []db_models.Facility{
		{
			Name:        "Grand Hall",
			Description: "Main event hall, up to 300 guests",
			Amenities:   pq.StringArray{"stage", "sound_system", "projector", "catering_kitchen"},
			TimeSlots:   pq.StringArray{"morning", "afternoon", "evening"},
			Active:      true,
		},
		{
			Name:        "Garden Pavilion",
			Description: "Outdoor pavilion, up to 120 guests",
			Amenities:   pq.StringArray{"open_air", "string_lights", "bar_counter"},
			TimeSlots:   pq.StringArray{"afternoon", "evening"},
			Active:      true,
		},
		{
			Name:        "Conference Room",
			Description: "Meeting space, up to 40 guests",
			Amenities:   pq.StringArray{"projector", "whiteboard", "video_conferencing"},
			TimeSlots:   pq.StringArray{"morning", "afternoon"},
			Active:      true,
		},
	}

	for i := range defaults {
		if err := s.facilityRepo.Upsert(ctx, &defaults[i]); err != nil {
			return utils.ErrDatabaseError
		}
	}
	return nil
}
