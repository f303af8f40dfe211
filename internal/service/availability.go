package service

import (
	"errors"
	"fmt"
	"time"

	"gamecenter-backend/internal/database/models"
	apperrors "gamecenter-backend/internal/errors"
	"gamecenter-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailabilityService handles declared availability. Declarations are
// per-GM per-date; re-declaring a date overwrites the previous slots.
type AvailabilityService struct {
	repo      repository.AvailabilityRepositoryInterface
	gmRepo    repository.GameMasterRepositoryInterface
	validator *validator.Validate
}

// NewAvailabilityService creates a new availability service
func NewAvailabilityService(
	repo repository.AvailabilityRepositoryInterface,
	gmRepo repository.GameMasterRepositoryInterface,
	validator *validator.Validate,
) *AvailabilityService {
	return &AvailabilityService{repo: repo, gmRepo: gmRepo, validator: validator}
}

// DeclareAvailabilityRequest represents the request to declare availability
type DeclareAvailabilityRequest struct {
	GMID      uuid.UUID `json:"gm_id" validate:"required"`
	Date      time.Time `json:"date" validate:"required"`
	TimeSlots []string  `json:"time_slots" validate:"required,min=1"`
}

// AvailabilityResponse represents a declared availability day
type AvailabilityResponse struct {
	ID        uuid.UUID `json:"id"`
	GMID      uuid.UUID `json:"gm_id"`
	Date      string    `json:"date"`
	TimeSlots []string  `json:"time_slots"`
}

// Declare records the availability slots of a GM for a date, replacing any
// previous declaration for the same date. Slot tokens are validated so a
// typo never silently becomes an unparseable declaration.
func (s *AvailabilityService) Declare(req *DeclareAvailabilityRequest) (*AvailabilityResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.gmRepo.GetByID(req.GMID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGameMasterNotFound
		}
		return nil, fmt.Errorf("failed to load game master: %w", err)
	}

	for _, slot := range req.TimeSlots {
		if slot == models.SlotFullDay || slot == models.SlotUnavailableDay || isUnavailableToken(slot) {
			continue
		}
		if _, err := parseSlotToken(slot); err != nil {
			return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidTimeFormat, slot)
		}
	}

	availability := &models.GMAvailability{
		GMID: req.GMID,
		Date: req.Date,
	}
	if err := availability.SetSlots(req.TimeSlots); err != nil {
		return nil, fmt.Errorf("failed to encode time slots: %w", err)
	}

	if err := s.repo.Upsert(availability); err != nil {
		return nil, fmt.Errorf("failed to save availability: %w", err)
	}
	return toAvailabilityResponse(availability), nil
}

// GetByGM retrieves a GM's declarations within an inclusive date range
func (s *AvailabilityService) GetByGM(gmID uuid.UUID, from, to time.Time) ([]AvailabilityResponse, error) {
	rows, err := s.repo.GetByGM(gmID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list availability: %w", err)
	}
	responses := make([]AvailabilityResponse, 0, len(rows))
	for i := range rows {
		responses = append(responses, *toAvailabilityResponse(&rows[i]))
	}
	return responses, nil
}

// GetByDate retrieves every declaration for a date
func (s *AvailabilityService) GetByDate(date time.Time) ([]AvailabilityResponse, error) {
	rows, err := s.repo.GetByDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to list availability: %w", err)
	}
	responses := make([]AvailabilityResponse, 0, len(rows))
	for i := range rows {
		responses = append(responses, *toAvailabilityResponse(&rows[i]))
	}
	return responses, nil
}

// Delete removes a declaration. A GM with no declaration for a date is
// simply undeclared, which the conflict checker reports as "none".
func (s *AvailabilityService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAvailabilityNotFound
		}
		return fmt.Errorf("failed to delete availability: %w", err)
	}
	return nil
}

func toAvailabilityResponse(a *models.GMAvailability) *AvailabilityResponse {
	return &AvailabilityResponse{
		ID:        a.ID,
		GMID:      a.GMID,
		Date:      a.Date.Format("2006-01-02"),
		TimeSlots: a.Slots(),
	}
}
