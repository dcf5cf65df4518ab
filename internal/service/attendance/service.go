package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/attendance"
	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/compensation"
	"github.com/sweldo-hq/sweldo-backend-go/internal/pkg/database"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	settingsRepo        attendance.SettingsRepository
	compensationService compensation.CompensationService
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	settingsRepo attendance.SettingsRepository,
	compensationService compensation.CompensationService,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		settingsRepo:         settingsRepo,
		compensationService:  compensationService,
	}
}

// UpsertAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) UpsertAttendance(ctx context.Context, req attendance.UpsertAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	date, _ := time.Parse("2006-01-02", req.Date)

	att := attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Day:        date.Day(),
		Month:      int(date.Month()),
		Year:       date.Year(),
		TimeIn:     req.TimeIn,
		TimeOut:    req.TimeOut,
	}
	saved, err := s.AttendanceRepository.Upsert(ctx, att)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}

	// The punch edit succeeded; a failed recompute is logged and retried by
	// the next pass rather than failing the edit.
	if _, err := s.compensationService.RecomputeDay(ctx, req.EmployeeID, date); err != nil {
		slog.Warn("failed to recompute compensation after punch edit",
			"employee_id", req.EmployeeID, "date", req.Date, "error", err)
	}

	return mapAttendanceToResponse(saved), nil
}

// ListMonth implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListMonth(ctx context.Context, employeeID string, year, month int) ([]attendance.AttendanceResponse, error) {
	atts, err := s.AttendanceRepository.ListByMonth(ctx, employeeID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	responses := make([]attendance.AttendanceResponse, 0, len(atts))
	for _, att := range atts {
		responses = append(responses, mapAttendanceToResponse(att))
	}
	return responses, nil
}

// DeleteAttendance implements attendance.AttendanceService. Removing a punch
// changes the day's inputs, so the day is recomputed just like an upsert.
func (s *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, id string) error {
	deleted, err := s.AttendanceRepository.Delete(ctx, id)
	if err != nil {
		return err
	}

	if _, err := s.compensationService.RecomputeDay(ctx, deleted.EmployeeID, deleted.Date()); err != nil {
		slog.Warn("failed to recompute compensation after punch delete",
			"employee_id", deleted.EmployeeID, "date", deleted.Date().Format("2006-01-02"), "error", err)
	}

	return nil
}

// GetSettings implements attendance.AttendanceService. A missing row answers
// with the defaults so the settings form always has something to show.
func (s *AttendanceServiceImpl) GetSettings(ctx context.Context) (attendance.SettingsResponse, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if err == attendance.ErrSettingsNotFound {
			return mapSettingsToResponse(attendance.DefaultSettings()), nil
		}
		return attendance.SettingsResponse{}, fmt.Errorf("failed to get settings: %w", err)
	}
	return mapSettingsToResponse(settings), nil
}

// UpdateSettings implements attendance.AttendanceService. Unset fields keep
// their current values.
func (s *AttendanceServiceImpl) UpdateSettings(ctx context.Context, req attendance.UpdateSettingsRequest) (attendance.SettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.SettingsResponse{}, err
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if err != attendance.ErrSettingsNotFound {
			return attendance.SettingsResponse{}, fmt.Errorf("failed to get settings: %w", err)
		}
		settings = attendance.DefaultSettings()
	}

	if req.LateGracePeriodMinutes != nil {
		settings.LateGracePeriodMinutes = *req.LateGracePeriodMinutes
	}
	if req.LateDeductionPerMinute != nil {
		settings.LateDeductionPerMinute = *req.LateDeductionPerMinute
	}
	if req.UndertimeGracePeriodMinutes != nil {
		settings.UndertimeGracePeriodMinutes = *req.UndertimeGracePeriodMinutes
	}
	if req.UndertimeDeductionPerMinute != nil {
		settings.UndertimeDeductionPerMinute = *req.UndertimeDeductionPerMinute
	}
	if req.OvertimeHourlyMultiplier != nil {
		settings.OvertimeHourlyMultiplier = *req.OvertimeHourlyMultiplier
	}
	if req.NightDifferentialMultiplier != nil {
		settings.NightDifferentialMultiplier = *req.NightDifferentialMultiplier
	}
	if req.NightWindowStart != nil {
		settings.NightWindowStart = *req.NightWindowStart
	}
	if req.NightWindowEnd != nil {
		settings.NightWindowEnd = *req.NightWindowEnd
	}
	if req.RegularHolidayMultiplier != nil {
		settings.RegularHolidayMultiplier = *req.RegularHolidayMultiplier
	}
	if req.SpecialHolidayMultiplier != nil {
		settings.SpecialHolidayMultiplier = *req.SpecialHolidayMultiplier
	}

	saved, err := s.settingsRepo.Upsert(ctx, settings)
	if err != nil {
		return attendance.SettingsResponse{}, fmt.Errorf("failed to save settings: %w", err)
	}
	return mapSettingsToResponse(saved), nil
}

func mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:         att.ID,
		EmployeeID: att.EmployeeID,
		Date:       att.Date().Format("2006-01-02"),
		TimeIn:     att.TimeIn,
		TimeOut:    att.TimeOut,
	}
}

func mapSettingsToResponse(s attendance.Settings) attendance.SettingsResponse {
	return attendance.SettingsResponse{
		ID:                          s.ID,
		LateGracePeriodMinutes:      s.LateGracePeriodMinutes,
		LateDeductionPerMinute:      s.LateDeductionPerMinute,
		UndertimeGracePeriodMinutes: s.UndertimeGracePeriodMinutes,
		UndertimeDeductionPerMinute: s.UndertimeDeductionPerMinute,
		OvertimeHourlyMultiplier:    s.OvertimeHourlyMultiplier,
		NightDifferentialMultiplier: s.NightDifferentialMultiplier,
		NightWindowStart:            s.NightWindowStart,
		NightWindowEnd:              s.NightWindowEnd,
		RegularHolidayMultiplier:    s.RegularHolidayMultiplier,
		SpecialHolidayMultiplier:    s.SpecialHolidayMultiplier,
	}
}
