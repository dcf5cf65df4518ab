package compensation

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/attendance"
	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/compensation"
	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/employee"
	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/holiday"
	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/schedule"
	"github.com/sweldo-hq/sweldo-backend-go/internal/pkg/database"
	scheduleService "github.com/sweldo-hq/sweldo-backend-go/internal/service/schedule"
)

type CompensationServiceImpl struct {
	db *database.DB
	compensation.CompensationRepository
	attendanceRepo     attendance.AttendanceRepository
	settingsRepo       attendance.SettingsRepository
	employeeRepo       employee.EmployeeRepository
	employmentTypeRepo schedule.EmploymentTypeRepository
	holidayRepo        holiday.HolidayRepository
}

func NewCompensationService(
	db *database.DB,
	compensationRepo compensation.CompensationRepository,
	attendanceRepo attendance.AttendanceRepository,
	settingsRepo attendance.SettingsRepository,
	employeeRepo employee.EmployeeRepository,
	employmentTypeRepo schedule.EmploymentTypeRepository,
	holidayRepo holiday.HolidayRepository,
) compensation.CompensationService {
	return &CompensationServiceImpl{
		db:                     db,
		CompensationRepository: compensationRepo,
		attendanceRepo:         attendanceRepo,
		settingsRepo:           settingsRepo,
		employeeRepo:           employeeRepo,
		employmentTypeRepo:     employmentTypeRepo,
		holidayRepo:            holidayRepo,
	}
}

// computeInputs is everything one month's recomputation needs, loaded once.
// employmentType is nil when the employee's type has no stored definition;
// the computation then degrades to zero/base records instead of failing.
type computeInputs struct {
	employee       employee.Employee
	settings       attendance.Settings
	employmentType *schedule.EmploymentType
	holidays       []holiday.Holiday
}

func (s *CompensationServiceImpl) loadInputs(ctx context.Context, employeeID string, year, month int) (computeInputs, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return computeInputs{}, employee.ErrEmployeeNotFound
		}
		return computeInputs{}, fmt.Errorf("failed to get employee: %w", err)
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, attendance.ErrSettingsNotFound) {
			return computeInputs{}, fmt.Errorf("failed to get attendance settings: %w", err)
		}
		settings = attendance.DefaultSettings()
	}

	inputs := computeInputs{employee: emp, settings: settings}

	et, err := s.employmentTypeRepo.GetByName(ctx, emp.EmploymentType)
	if err != nil {
		if !errors.Is(err, schedule.ErrEmploymentTypeNotFound) {
			return computeInputs{}, fmt.Errorf("failed to get employment type: %w", err)
		}
		// Missing schedule definition degrades to zero records, not a fault.
	} else {
		inputs.employmentType = &et
	}

	holidays, err := s.holidayRepo.ListByMonth(ctx, year, month)
	if err != nil {
		return computeInputs{}, fmt.Errorf("failed to list holidays: %w", err)
	}
	inputs.holidays = holidays

	return inputs, nil
}

// computeDay runs the per-day state machine: unscheduled rest day, scheduled
// without punch, scheduled with punch, holiday, or frozen manual override.
// Re-running it with the same inputs always yields the same record.
func (s *CompensationServiceImpl) computeDay(inputs computeInputs, existing *compensation.Compensation, att *attendance.Attendance, year, month, day int) compensation.Compensation {
	rec := compensation.NewDefault(inputs.employee.ID, year, month, day)
	if existing != nil {
		rec = *existing
	}
	if rec.ManualOverride {
		// User-authoritative; recomputation must not touch it.
		return rec
	}

	// Leave and notes are form inputs, not derived from punches; they
	// survive recomputation.
	leaveType, leavePay, notes := rec.LeaveType, rec.LeavePay, rec.Notes
	id, createdAt := rec.ID, rec.CreatedAt
	rec = compensation.NewDefault(inputs.employee.ID, year, month, day)
	rec.ID, rec.CreatedAt = id, createdAt
	rec.LeaveType, rec.LeavePay, rec.Notes = leaveType, leavePay, notes

	if inputs.employmentType == nil {
		// No schedule definition: degrade to a zero/base record.
		return rec
	}
	et := *inputs.employmentType

	date := rec.Date()
	hol := holiday.FindForDate(inputs.holidays, date)
	var sched *schedule.DailySchedule
	if et.RequiresTimeTracking {
		sched = scheduleService.ResolveDailySchedule(et, date)
	}

	present := att != nil && att.HasPunch()

	switch {
	case hol != nil:
		rec.DayType = compensation.DayTypeHoliday
	case et.RequiresTimeTracking && sched == nil:
		rec.DayType = compensation.DayTypeRestDay
	default:
		rec.DayType = compensation.DayTypeRegular
	}

	if !et.RequiresTimeTracking {
		// Presence is binary; any punch means a full day. The result is not
		// re-derivable from punches, so it freezes as a manual record.
		pm := ComputePayMetrics(zeroTimeMetrics(), inputs.settings, inputs.employee.DailyRate, hol, et, present)
		applyPayMetrics(&rec, pm)
		if present {
			rec.HoursWorked = decimal.NewFromInt(int64(et.StandardHours()))
			rec.ManualOverride = true
		}
		return rec
	}

	// Rest day without a holiday: nothing scheduled, nothing owed.
	if sched == nil && hol == nil {
		return rec
	}

	// Scheduled workday with no punches and no holiday is an absence.
	// Holiday pay takes precedence: a holiday is never an absence.
	if hol == nil && !present {
		rec.Absence = true
		return rec
	}

	tm := zeroTimeMetrics()
	if sched != nil && att != nil {
		tm = ComputeTimeMetrics(date, ActualTime{TimeIn: att.TimeIn, TimeOut: att.TimeOut}, *sched, inputs.settings, et)
	}
	pm := ComputePayMetrics(tm, inputs.settings, inputs.employee.DailyRate, hol, et, present)

	rec.HoursWorked = tm.HoursWorked
	rec.LateMinutes = tm.LateMinutes
	rec.UndertimeMinutes = tm.UndertimeMinutes
	rec.OvertimeMinutes = tm.OvertimeMinutes
	rec.NightDifferentialHours = tm.NightDifferentialHours
	applyPayMetrics(&rec, pm)

	return rec
}

func applyPayMetrics(rec *compensation.Compensation, pm PayMetrics) {
	rec.GrossPay = pm.GrossPay
	rec.Deductions = pm.Deductions
	rec.NetPay = pm.NetPay
	rec.LateDeduction = pm.LateDeduction
	rec.UndertimeDeduction = pm.UndertimeDeduction
	rec.OvertimePay = pm.OvertimePay
	rec.NightDifferentialPay = pm.NightDifferentialPay
	rec.HolidayBonus = pm.HolidayBonus
}

// RecomputeMonth implements compensation.CompensationService.
func (s *CompensationServiceImpl) RecomputeMonth(ctx context.Context, employeeID string, year, month int) ([]compensation.CompensationResponse, error) {
	inputs, err := s.loadInputs(ctx, employeeID, year, month)
	if err != nil {
		return nil, err
	}

	atts, err := s.attendanceRepo.ListByMonth(ctx, employeeID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	attByDay := make(map[int]*attendance.Attendance, len(atts))
	for i := range atts {
		attByDay[atts[i].Day] = &atts[i]
	}

	existing, err := s.CompensationRepository.ListByMonth(ctx, employeeID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list compensations: %w", err)
	}
	existingByDay := make(map[int]*compensation.Compensation, len(existing))
	for i := range existing {
		existingByDay[existing[i].Day] = &existing[i]
	}

	days := daysInMonth(year, month)
	records := make([]compensation.Compensation, 0, days)
	for day := 1; day <= days; day++ {
		records = append(records, s.computeDay(inputs, existingByDay[day], attByDay[day], year, month, day))
	}

	if err := s.CompensationRepository.SaveMonth(ctx, employeeID, year, month, records); err != nil {
		return nil, fmt.Errorf("failed to save compensations: %w", err)
	}

	responses := make([]compensation.CompensationResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapCompensationToResponse(rec))
	}
	return responses, nil
}

// RecomputeDay implements compensation.CompensationService.
func (s *CompensationServiceImpl) RecomputeDay(ctx context.Context, employeeID string, date time.Time) (compensation.CompensationResponse, error) {
	year, month, day := date.Year(), int(date.Month()), date.Day()

	inputs, err := s.loadInputs(ctx, employeeID, year, month)
	if err != nil {
		return compensation.CompensationResponse{}, err
	}

	att, err := s.attendanceRepo.GetByDay(ctx, employeeID, year, month, day)
	if err != nil {
		return compensation.CompensationResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	existing, err := s.CompensationRepository.GetByDay(ctx, employeeID, year, month, day)
	if err != nil {
		return compensation.CompensationResponse{}, fmt.Errorf("failed to get compensation: %w", err)
	}

	rec := s.computeDay(inputs, existing, att, year, month, day)
	saved, err := s.CompensationRepository.Upsert(ctx, rec)
	if err != nil {
		return compensation.CompensationResponse{}, fmt.Errorf("failed to save compensation: %w", err)
	}
	return mapCompensationToResponse(saved), nil
}

// ListMonth implements compensation.CompensationService.
func (s *CompensationServiceImpl) ListMonth(ctx context.Context, employeeID string, year, month int) ([]compensation.CompensationResponse, error) {
	records, err := s.CompensationRepository.ListByMonth(ctx, employeeID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list compensations: %w", err)
	}

	responses := make([]compensation.CompensationResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapCompensationToResponse(rec))
	}
	return responses, nil
}

// ApplyManualEdit implements compensation.CompensationService.
//
// Each edited field re-derives only its direct downstream totals with the
// stored formulas: a minutes field recomputes its deduction or pay component
// then deductions/gross then net; a component recomputes gross then net;
// gross and net adjust each other through the current deductions value.
func (s *CompensationServiceImpl) ApplyManualEdit(ctx context.Context, req compensation.ManualEditRequest) (compensation.CompensationResponse, error) {
	if err := req.Validate(); err != nil {
		return compensation.CompensationResponse{}, err
	}
	date, _ := time.Parse("2006-01-02", req.Date)
	year, month, day := date.Year(), int(date.Month()), date.Day()

	inputs, err := s.loadInputs(ctx, req.EmployeeID, year, month)
	if err != nil {
		return compensation.CompensationResponse{}, err
	}

	existing, err := s.CompensationRepository.GetByDay(ctx, req.EmployeeID, year, month, day)
	if err != nil {
		return compensation.CompensationResponse{}, fmt.Errorf("failed to get compensation: %w", err)
	}
	rec := compensation.NewDefault(req.EmployeeID, year, month, day)
	if existing != nil {
		rec = *existing
	}
	rec.ManualOverride = true

	hours := 8
	if inputs.employmentType != nil {
		hours = inputs.employmentType.StandardHours()
	}
	hourlyRate := inputs.employee.DailyRate.Div(decimal.NewFromInt(int64(hours)))
	settings := inputs.settings

	for _, edit := range collectEdits(&req, settings, hourlyRate) {
		edit.apply(&rec)
	}

	saved, err := s.CompensationRepository.Upsert(ctx, rec)
	if err != nil {
		return compensation.CompensationResponse{}, fmt.Errorf("failed to save compensation: %w", err)
	}
	return mapCompensationToResponse(saved), nil
}

// SetManualOverride implements compensation.CompensationService.
func (s *CompensationServiceImpl) SetManualOverride(ctx context.Context, req compensation.SetManualOverrideRequest) (compensation.CompensationResponse, error) {
	if err := req.Validate(); err != nil {
		return compensation.CompensationResponse{}, err
	}
	date, _ := time.Parse("2006-01-02", req.Date)
	year, month, day := date.Year(), int(date.Month()), date.Day()

	if !req.Enabled {
		// Back to computed mode: re-run the full pipeline, discarding manual
		// edits.
		existing, err := s.CompensationRepository.GetByDay(ctx, req.EmployeeID, year, month, day)
		if err != nil {
			return compensation.CompensationResponse{}, fmt.Errorf("failed to get compensation: %w", err)
		}
		if existing != nil && existing.ManualOverride {
			existing.ManualOverride = false
			if _, err := s.CompensationRepository.Upsert(ctx, *existing); err != nil {
				return compensation.CompensationResponse{}, fmt.Errorf("failed to save compensation: %w", err)
			}
		}
		return s.RecomputeDay(ctx, req.EmployeeID, date)
	}

	existing, err := s.CompensationRepository.GetByDay(ctx, req.EmployeeID, year, month, day)
	if err != nil {
		return compensation.CompensationResponse{}, fmt.Errorf("failed to get compensation: %w", err)
	}
	rec := compensation.NewDefault(req.EmployeeID, year, month, day)
	if existing != nil {
		rec = *existing
	}
	rec.ManualOverride = true

	saved, err := s.CompensationRepository.Upsert(ctx, rec)
	if err != nil {
		return compensation.CompensationResponse{}, fmt.Errorf("failed to save compensation: %w", err)
	}
	return mapCompensationToResponse(saved), nil
}

type fieldEdit struct {
	field compensation.Field
	apply func(*compensation.Compensation)
}

// collectEdits turns the set fields of a request into apply functions,
// ordered by field role so that plain fields land before formula-bearing
// ones and direct total edits land last. Within a role, request field order
// is preserved.
func collectEdits(req *compensation.ManualEditRequest, settings attendance.Settings, hourlyRate decimal.Decimal) []fieldEdit {
	var edits []fieldEdit

	if req.DayType != nil {
		v := compensation.DayType(*req.DayType)
		edits = append(edits, fieldEdit{compensation.FieldDayType, func(rec *compensation.Compensation) {
			rec.DayType = v
		}})
	}
	if req.LeaveType != nil {
		v := *req.LeaveType
		edits = append(edits, fieldEdit{compensation.FieldLeaveType, func(rec *compensation.Compensation) {
			rec.LeaveType = v
		}})
	}
	if req.Absence != nil {
		v := *req.Absence
		edits = append(edits, fieldEdit{compensation.FieldAbsence, func(rec *compensation.Compensation) {
			rec.Absence = v
		}})
	}
	if req.Notes != nil {
		v := *req.Notes
		edits = append(edits, fieldEdit{compensation.FieldNotes, func(rec *compensation.Compensation) {
			rec.Notes = v
		}})
	}
	if req.HoursWorked != nil {
		v := *req.HoursWorked
		edits = append(edits, fieldEdit{compensation.FieldHoursWorked, func(rec *compensation.Compensation) {
			rec.HoursWorked = v
		}})
	}
	if req.LateMinutes != nil {
		v := *req.LateMinutes
		edits = append(edits, fieldEdit{compensation.FieldLateMinutes, func(rec *compensation.Compensation) {
			rec.LateMinutes = v
			rec.LateDeduction = decimal.Zero
			if billable := v - settings.LateGracePeriodMinutes; billable > 0 {
				rec.LateDeduction = decimal.NewFromInt(int64(billable)).Mul(settings.LateDeductionPerMinute)
			}
			rec.Deductions = rec.LateDeduction.Add(rec.UndertimeDeduction)
			rec.NetPay = rec.GrossPay.Sub(rec.Deductions)
		}})
	}
	if req.UndertimeMinutes != nil {
		v := *req.UndertimeMinutes
		edits = append(edits, fieldEdit{compensation.FieldUndertimeMinutes, func(rec *compensation.Compensation) {
			rec.UndertimeMinutes = v
			rec.UndertimeDeduction = decimal.Zero
			if billable := v - settings.UndertimeGracePeriodMinutes; billable > 0 {
				rec.UndertimeDeduction = decimal.NewFromInt(int64(billable)).Mul(settings.UndertimeDeductionPerMinute)
			}
			rec.Deductions = rec.LateDeduction.Add(rec.UndertimeDeduction)
			rec.NetPay = rec.GrossPay.Sub(rec.Deductions)
		}})
	}
	if req.OvertimeMinutes != nil {
		v := *req.OvertimeMinutes
		edits = append(edits, fieldEdit{compensation.FieldOvertimeMinutes, func(rec *compensation.Compensation) {
			rec.OvertimeMinutes = v
			newPay := decimal.NewFromInt(int64(v / 60)).
				Mul(hourlyRate).
				Mul(settings.OvertimeHourlyMultiplier)
			rec.GrossPay = rec.GrossPay.Sub(rec.OvertimePay).Add(newPay)
			rec.OvertimePay = newPay
			rec.NetPay = rec.GrossPay.Sub(rec.Deductions)
		}})
	}
	if req.NightDifferentialHours != nil {
		v := *req.NightDifferentialHours
		edits = append(edits, fieldEdit{compensation.FieldNightDifferentialHours, func(rec *compensation.Compensation) {
			rec.NightDifferentialHours = v
			newPay := v.Mul(hourlyRate).Mul(settings.NightDifferentialMultiplier)
			rec.GrossPay = rec.GrossPay.Sub(rec.NightDifferentialPay).Add(newPay)
			rec.NightDifferentialPay = newPay
			rec.NetPay = rec.GrossPay.Sub(rec.Deductions)
		}})
	}
	if req.LeavePay != nil {
		v := *req.LeavePay
		edits = append(edits, fieldEdit{compensation.FieldLeavePay, func(rec *compensation.Compensation) {
			rec.GrossPay = rec.GrossPay.Sub(rec.LeavePay).Add(v)
			rec.LeavePay = v
			rec.NetPay = rec.GrossPay.Sub(rec.Deductions)
		}})
	}
	if req.GrossPay != nil {
		v := *req.GrossPay
		edits = append(edits, fieldEdit{compensation.FieldGrossPay, func(rec *compensation.Compensation) {
			rec.GrossPay = v
			rec.NetPay = rec.GrossPay.Sub(rec.Deductions)
		}})
	}
	if req.NetPay != nil {
		v := *req.NetPay
		edits = append(edits, fieldEdit{compensation.FieldNetPay, func(rec *compensation.Compensation) {
			rec.NetPay = v
			rec.GrossPay = rec.NetPay.Add(rec.Deductions)
		}})
	}

	sort.SliceStable(edits, func(i, j int) bool {
		return editRank(edits[i].field) < editRank(edits[j].field)
	})
	return edits
}

// editRank orders edits: plain values, then formula-bearing components,
// then the gross/net pair which must see every component's contribution.
func editRank(f compensation.Field) int {
	switch f.Role() {
	case compensation.RoleManual:
		return 0
	case compensation.RoleComputedMinutes, compensation.RoleComputedHours:
		return 1
	default:
		if f == compensation.FieldGrossPay || f == compensation.FieldNetPay {
			return 3
		}
		return 2
	}
}

func mapCompensationToResponse(c compensation.Compensation) compensation.CompensationResponse {
	return compensation.CompensationResponse{
		ID:                     c.ID,
		EmployeeID:             c.EmployeeID,
		Date:                   c.Date().Format("2006-01-02"),
		DayType:                string(c.DayType),
		HoursWorked:            c.HoursWorked.Round(2),
		LateMinutes:            c.LateMinutes,
		UndertimeMinutes:       c.UndertimeMinutes,
		OvertimeMinutes:        c.OvertimeMinutes,
		NightDifferentialHours: c.NightDifferentialHours.Round(2),
		GrossPay:               c.GrossPay.Round(2),
		Deductions:             c.Deductions.Round(2),
		NetPay:                 c.NetPay.Round(2),
		LateDeduction:          c.LateDeduction.Round(2),
		UndertimeDeduction:     c.UndertimeDeduction.Round(2),
		OvertimePay:            c.OvertimePay.Round(2),
		NightDifferentialPay:   c.NightDifferentialPay.Round(2),
		HolidayBonus:           c.HolidayBonus.Round(2),
		LeaveType:              c.LeaveType,
		LeavePay:               c.LeavePay.Round(2),
		Absence:                c.Absence,
		ManualOverride:         c.ManualOverride,
		Notes:                  c.Notes,
	}
}

func daysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
