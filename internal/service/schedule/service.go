package schedule

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/schedule"
	"github.com/sweldo-hq/sweldo-backend-go/internal/pkg/database"
)

type EmploymentTypeServiceImpl struct {
	db *database.DB
	schedule.EmploymentTypeRepository
}

func NewEmploymentTypeService(db *database.DB, repo schedule.EmploymentTypeRepository) schedule.EmploymentTypeService {
	return &EmploymentTypeServiceImpl{
		db:                       db,
		EmploymentTypeRepository: repo,
	}
}

// GetEmploymentType implements schedule.EmploymentTypeService.
func (s *EmploymentTypeServiceImpl) GetEmploymentType(ctx context.Context, name string) (schedule.EmploymentTypeResponse, error) {
	et, err := s.EmploymentTypeRepository.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, schedule.ErrEmploymentTypeNotFound) {
			return schedule.EmploymentTypeResponse{}, schedule.ErrEmploymentTypeNotFound
		}
		return schedule.EmploymentTypeResponse{}, fmt.Errorf("failed to get employment type: %w", err)
	}
	return mapEmploymentTypeToResponse(et), nil
}

// ListEmploymentTypes implements schedule.EmploymentTypeService.
func (s *EmploymentTypeServiceImpl) ListEmploymentTypes(ctx context.Context) ([]schedule.EmploymentTypeResponse, error) {
	types, err := s.EmploymentTypeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employment types: %w", err)
	}

	responses := make([]schedule.EmploymentTypeResponse, 0, len(types))
	for _, et := range types {
		responses = append(responses, mapEmploymentTypeToResponse(et))
	}
	return responses, nil
}

// UpsertEmploymentType implements schedule.EmploymentTypeService.
func (s *EmploymentTypeServiceImpl) UpsertEmploymentType(ctx context.Context, req schedule.UpsertEmploymentTypeRequest) (schedule.EmploymentTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.EmploymentTypeResponse{}, err
	}

	hoursOfWork := 8
	if req.HoursOfWork != nil {
		hoursOfWork = *req.HoursOfWork
	}
	requiresTracking := true
	if req.RequiresTimeTracking != nil {
		requiresTracking = *req.RequiresTimeTracking
	}

	pattern := make(map[int]schedule.DailySchedule, len(req.WeekPattern))
	for _, d := range req.WeekPattern {
		pattern[d.DayOfWeek] = schedule.DailySchedule{
			TimeIn:  d.TimeIn,
			TimeOut: d.TimeOut,
			IsOff:   d.IsOff,
		}
	}

	et := schedule.EmploymentType{
		Name:                 req.Name,
		HoursOfWork:          hoursOfWork,
		RequiresTimeTracking: requiresTracking,
		WeekPattern:          pattern,
	}

	saved, err := s.EmploymentTypeRepository.Upsert(ctx, et)
	if err != nil {
		return schedule.EmploymentTypeResponse{}, fmt.Errorf("failed to upsert employment type: %w", err)
	}
	return mapEmploymentTypeToResponse(saved), nil
}

// DeleteEmploymentType implements schedule.EmploymentTypeService.
func (s *EmploymentTypeServiceImpl) DeleteEmploymentType(ctx context.Context, id string) error {
	if err := s.EmploymentTypeRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, schedule.ErrEmploymentTypeNotFound) {
			return schedule.ErrEmploymentTypeNotFound
		}
		return fmt.Errorf("failed to delete employment type: %w", err)
	}
	return nil
}

func mapEmploymentTypeToResponse(et schedule.EmploymentType) schedule.EmploymentTypeResponse {
	pattern := make([]schedule.DailyScheduleResponse, 0, len(et.WeekPattern))
	for day, d := range et.WeekPattern {
		pattern = append(pattern, schedule.DailyScheduleResponse{
			DayOfWeek: day,
			TimeIn:    d.TimeIn,
			TimeOut:   d.TimeOut,
			IsOff:     d.IsOff,
		})
	}
	sort.Slice(pattern, func(i, j int) bool { return pattern[i].DayOfWeek < pattern[j].DayOfWeek })

	return schedule.EmploymentTypeResponse{
		ID:                   et.ID,
		Name:                 et.Name,
		HoursOfWork:          et.StandardHours(),
		RequiresTimeTracking: et.RequiresTimeTracking,
		WeekPattern:          pattern,
	}
}
