package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/holiday"
	"github.com/sweldo-hq/sweldo-backend-go/internal/pkg/database"
)

type HolidayServiceImpl struct {
	db *database.DB
	holiday.HolidayRepository
}

func NewHolidayService(db *database.DB, holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{db: db, HolidayRepository: holidayRepo}
}

// CreateHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) CreateHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}
	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	h := holiday.Holiday{
		Name:       req.Name,
		Type:       holiday.Type(req.Type),
		StartDate:  start,
		EndDate:    end,
		Multiplier: req.Multiplier,
	}
	created, err := s.HolidayRepository.Create(ctx, h)
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to create holiday: %w", err)
	}
	return mapHolidayToResponse(created), nil
}

// ListByMonth implements holiday.HolidayService.
func (s *HolidayServiceImpl) ListByMonth(ctx context.Context, year, month int) ([]holiday.HolidayResponse, error) {
	holidays, err := s.HolidayRepository.ListByMonth(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, mapHolidayToResponse(h))
	}
	return responses, nil
}

// DeleteHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) DeleteHoliday(ctx context.Context, id string) error {
	return s.HolidayRepository.Delete(ctx, id)
}

func mapHolidayToResponse(h holiday.Holiday) holiday.HolidayResponse {
	return holiday.HolidayResponse{
		ID:         h.ID,
		Name:       h.Name,
		Type:       string(h.Type),
		StartDate:  h.StartDate.Format("2006-01-02"),
		EndDate:    h.EndDate.Format("2006-01-02"),
		Multiplier: h.Multiplier,
	}
}
