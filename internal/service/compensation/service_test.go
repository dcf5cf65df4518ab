package compensation

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/attendance"
	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/compensation"
	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/employee"
	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/holiday"
	"github.com/sweldo-hq/sweldo-backend-go/internal/domain/schedule"
)

type dayKey struct{ year, month, day int }

type fakeCompensationRepo struct {
	records map[dayKey]compensation.Compensation
	nextID  int
}

func newFakeCompensationRepo() *fakeCompensationRepo {
	return &fakeCompensationRepo{records: make(map[dayKey]compensation.Compensation)}
}

func (r *fakeCompensationRepo) ListByMonth(_ context.Context, _ string, year, month int) ([]compensation.Compensation, error) {
	var out []compensation.Compensation
	for day := 1; day <= 31; day++ {
		if rec, ok := r.records[dayKey{year, month, day}]; ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeCompensationRepo) GetByDay(_ context.Context, _ string, year, month, day int) (*compensation.Compensation, error) {
	if rec, ok := r.records[dayKey{year, month, day}]; ok {
		return &rec, nil
	}
	return nil, nil
}

func (r *fakeCompensationRepo) Upsert(_ context.Context, c compensation.Compensation) (compensation.Compensation, error) {
	if c.ID == "" {
		r.nextID++
		c.ID = fmt.Sprintf("comp-%d", r.nextID)
	}
	r.records[dayKey{c.Year, c.Month, c.Day}] = c
	return c, nil
}

func (r *fakeCompensationRepo) SaveMonth(ctx context.Context, _ string, _, _ int, records []compensation.Compensation) error {
	for _, rec := range records {
		if _, err := r.Upsert(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

type fakeAttendanceRepo struct {
	records map[dayKey]attendance.Attendance
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[dayKey]attendance.Attendance)}
}

func (r *fakeAttendanceRepo) punch(year, month, day int, in, out string) {
	r.records[dayKey{year, month, day}] = attendance.Attendance{
		ID: fmt.Sprintf("att-%d-%d-%d", year, month, day), EmployeeID: "emp-1",
		Year: year, Month: month, Day: day, TimeIn: in, TimeOut: out,
	}
}

func (r *fakeAttendanceRepo) ListByMonth(_ context.Context, _ string, year, month int) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for day := 1; day <= 31; day++ {
		if rec, ok := r.records[dayKey{year, month, day}]; ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeAttendanceRepo) GetByDay(_ context.Context, _ string, year, month, day int) (*attendance.Attendance, error) {
	if rec, ok := r.records[dayKey{year, month, day}]; ok {
		return &rec, nil
	}
	return nil, nil
}

func (r *fakeAttendanceRepo) Upsert(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	r.records[dayKey{att.Year, att.Month, att.Day}] = att
	return att, nil
}

func (r *fakeAttendanceRepo) Delete(_ context.Context, id string) (attendance.Attendance, error) {
	for k, rec := range r.records {
		if rec.ID == id {
			delete(r.records, k)
			return rec, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

type fakeSettingsRepo struct {
	settings *attendance.Settings
}

func (r *fakeSettingsRepo) Get(_ context.Context) (attendance.Settings, error) {
	if r.settings == nil {
		return attendance.Settings{}, attendance.ErrSettingsNotFound
	}
	return *r.settings, nil
}

func (r *fakeSettingsRepo) Upsert(_ context.Context, s attendance.Settings) (attendance.Settings, error) {
	r.settings = &s
	return s, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *fakeEmployeeRepo) ListActive(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range r.employees {
		if emp.Active {
			out = append(out, emp)
		}
	}
	return out, nil
}

type fakeEmploymentTypeRepo struct {
	types map[string]schedule.EmploymentType
}

func (r *fakeEmploymentTypeRepo) GetByName(_ context.Context, name string) (schedule.EmploymentType, error) {
	et, ok := r.types[name]
	if !ok {
		return schedule.EmploymentType{}, schedule.ErrEmploymentTypeNotFound
	}
	return et, nil
}

func (r *fakeEmploymentTypeRepo) List(_ context.Context) ([]schedule.EmploymentType, error) {
	var out []schedule.EmploymentType
	for _, et := range r.types {
		out = append(out, et)
	}
	return out, nil
}

func (r *fakeEmploymentTypeRepo) Upsert(_ context.Context, et schedule.EmploymentType) (schedule.EmploymentType, error) {
	r.types[et.Name] = et
	return et, nil
}

func (r *fakeEmploymentTypeRepo) Delete(_ context.Context, _ string) error { return nil }

type fakeHolidayRepo struct {
	holidays []holiday.Holiday
}

func (r *fakeHolidayRepo) ListByMonth(_ context.Context, _, _ int) ([]holiday.Holiday, error) {
	return r.holidays, nil
}

func (r *fakeHolidayRepo) Create(_ context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	r.holidays = append(r.holidays, h)
	return h, nil
}

func (r *fakeHolidayRepo) Delete(_ context.Context, _ string) error { return nil }

type compFixture struct {
	comp     *fakeCompensationRepo
	att      *fakeAttendanceRepo
	settings *fakeSettingsRepo
	types    *fakeEmploymentTypeRepo
	holidays *fakeHolidayRepo
	svc      compensation.CompensationService
}

// weekdayPattern schedules Monday through Friday 08:00-17:00 with the
// weekend off.
func weekdayPattern() map[int]schedule.DailySchedule {
	pattern := make(map[int]schedule.DailySchedule)
	for wd := 1; wd <= 5; wd++ {
		pattern[wd] = schedule.DailySchedule{TimeIn: "08:00", TimeOut: "17:00"}
	}
	pattern[6] = schedule.DailySchedule{IsOff: true}
	return pattern
}

func newCompFixture(t *testing.T) *compFixture {
	t.Helper()

	settings := attendance.DefaultSettings()
	settings.LateDeductionPerMinute = decimal.NewFromInt(2)
	settings.UndertimeDeductionPerMinute = decimal.NewFromInt(2)

	f := &compFixture{
		comp:     newFakeCompensationRepo(),
		att:      newFakeAttendanceRepo(),
		settings: &fakeSettingsRepo{settings: &settings},
		types: &fakeEmploymentTypeRepo{types: map[string]schedule.EmploymentType{
			"Regular": {
				ID: "et-1", Name: "Regular", HoursOfWork: 8,
				RequiresTimeTracking: true, WeekPattern: weekdayPattern(),
			},
		}},
		holidays: &fakeHolidayRepo{},
	}

	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", Name: "Juan dela Cruz", EmploymentType: "Regular", DailyRate: decimal.NewFromInt(1000), Active: true},
	}}

	f.svc = NewCompensationService(nil, f.comp, f.att, f.settings, employees, f.types, f.holidays)
	return f
}

// March 2025: the 1st is a Saturday, the 3rd the first Monday.
const (
	testYear  = 2025
	testMonth = 3
)

func recordFor(t *testing.T, records []compensation.CompensationResponse, date string) compensation.CompensationResponse {
	t.Helper()
	for _, rec := range records {
		if rec.Date == date {
			return rec
		}
	}
	t.Fatalf("no record for %s", date)
	return compensation.CompensationResponse{}
}

func TestRecomputeMonth_FullMonth(t *testing.T) {
	f := newCompFixture(t)
	f.att.punch(testYear, testMonth, 3, "08:00", "17:00")

	records, err := f.svc.RecomputeMonth(context.Background(), "emp-1", testYear, testMonth)
	require.NoError(t, err)
	require.Len(t, records, 31)

	worked := recordFor(t, records, "2025-03-03")
	assert.Equal(t, "Regular", worked.DayType)
	assert.False(t, worked.Absence)
	decEq(t, "1000", worked.GrossPay)
	decEq(t, "1000", worked.NetPay)
	decEq(t, "9", worked.HoursWorked)

	// Scheduled Tuesday with no punch is an absence.
	absent := recordFor(t, records, "2025-03-04")
	assert.True(t, absent.Absence)
	decEq(t, "0", absent.GrossPay)

	// Saturday is marked off; Sunday has no pattern entry. Both are rest
	// days, never absences.
	for _, date := range []string{"2025-03-01", "2025-03-02"} {
		rest := recordFor(t, records, date)
		assert.Equal(t, "Rest Day", rest.DayType, date)
		assert.False(t, rest.Absence, date)
		decEq(t, "0", rest.GrossPay)
	}
}

func TestRecomputeMonth_Idempotent(t *testing.T) {
	f := newCompFixture(t)
	f.att.punch(testYear, testMonth, 3, "08:10", "17:30")
	f.att.punch(testYear, testMonth, 5, "08:00", "16:00")

	first, err := f.svc.RecomputeMonth(context.Background(), "emp-1", testYear, testMonth)
	require.NoError(t, err)
	second, err := f.svc.RecomputeMonth(context.Background(), "emp-1", testYear, testMonth)
	require.NoError(t, err)

	// The second pass rebuilds from the persisted records and must change
	// nothing.
	require.Equal(t, len(first), len(second))
	for i := range first {
		first[i].ID, second[i].ID = "", ""
		assert.Equal(t, first[i], second[i])
	}
}

func TestRecomputeMonth_LateAndUndertimeDeductions(t *testing.T) {
	f := newCompFixture(t)
	// 10 minutes late, 5 past the grace period, at 2 per minute.
	f.att.punch(testYear, testMonth, 3, "08:10", "17:00")

	records, err := f.svc.RecomputeMonth(context.Background(), "emp-1", testYear, testMonth)
	require.NoError(t, err)

	rec := recordFor(t, records, "2025-03-03")
	assert.Equal(t, 10, rec.LateMinutes)
	decEq(t, "10", rec.LateDeduction)
	decEq(t, "10", rec.Deductions)
	decEq(t, "990", rec.NetPay)
}

func TestRecomputeMonth_HolidayIsNeverAbsence(t *testing.T) {
	f := newCompFixture(t)
	f.holidays.holidays = []holiday.Holiday{{
		ID: "hol-1", Name: "Araw ng Kagitingan", Type: holiday.TypeRegular,
		StartDate: dateOf(2025, 3, 4), EndDate: dateOf(2025, 3, 4),
		Multiplier: decimal.NewFromInt(2),
	}}

	// No punch on the holiday.
	records, err := f.svc.RecomputeMonth(context.Background(), "emp-1", testYear, testMonth)
	require.NoError(t, err)

	rec := recordFor(t, records, "2025-03-04")
	assert.Equal(t, "Holiday", rec.DayType)
	assert.False(t, rec.Absence)
	decEq(t, "2000", rec.HolidayBonus)
	decEq(t, "3000", rec.GrossPay)
}

func TestRecomputeMonth_ManualOverrideIsFrozen(t *testing.T) {
	f := newCompFixture(t)
	frozen := compensation.NewDefault("emp-1", testYear, testMonth, 3)
	frozen.ID = "comp-frozen"
	frozen.ManualOverride = true
	frozen.GrossPay = decimal.NewFromInt(5000)
	frozen.NetPay = decimal.NewFromInt(5000)
	frozen.Notes = "adjusted by admin"
	f.comp.records[dayKey{testYear, testMonth, 3}] = frozen

	// Fresh punches that would normally rewrite the day.
	f.att.punch(testYear, testMonth, 3, "08:00", "17:00")

	records, err := f.svc.RecomputeMonth(context.Background(), "emp-1", testYear, testMonth)
	require.NoError(t, err)

	rec := recordFor(t, records, "2025-03-03")
	assert.True(t, rec.ManualOverride)
	decEq(t, "5000", rec.GrossPay)
	assert.Equal(t, "adjusted by admin", rec.Notes)
}

func TestRecomputeMonth_PreservesLeaveAndNotes(t *testing.T) {
	f := newCompFixture(t)
	existing := compensation.NewDefault("emp-1", testYear, testMonth, 5)
	existing.ID = "comp-5"
	existing.LeaveType = "Sick Leave"
	existing.LeavePay = decimal.NewFromInt(500)
	existing.Notes = "half-day leave"
	f.comp.records[dayKey{testYear, testMonth, 5}] = existing

	records, err := f.svc.RecomputeMonth(context.Background(), "emp-1", testYear, testMonth)
	require.NoError(t, err)

	rec := recordFor(t, records, "2025-03-05")
	assert.Equal(t, "comp-5", rec.ID)
	assert.Equal(t, "Sick Leave", rec.LeaveType)
	decEq(t, "500", rec.LeavePay)
	assert.Equal(t, "half-day leave", rec.Notes)
}

func TestRecomputeMonth_MissingEmploymentTypeDegrades(t *testing.T) {
	f := newCompFixture(t)
	delete(f.types.types, "Regular")
	f.att.punch(testYear, testMonth, 3, "08:00", "17:00")

	records, err := f.svc.RecomputeMonth(context.Background(), "emp-1", testYear, testMonth)
	require.NoError(t, err)
	require.Len(t, records, 31)

	rec := recordFor(t, records, "2025-03-03")
	decEq(t, "0", rec.GrossPay)
	assert.False(t, rec.Absence)
}

func TestRecomputeMonth_MissingSettingsUsesDefaults(t *testing.T) {
	f := newCompFixture(t)
	f.settings.settings = nil // default late deduction rate is zero
	f.att.punch(testYear, testMonth, 3, "08:30", "17:00")

	records, err := f.svc.RecomputeMonth(context.Background(), "emp-1", testYear, testMonth)
	require.NoError(t, err)

	rec := recordFor(t, records, "2025-03-03")
	assert.Equal(t, 30, rec.LateMinutes)
	decEq(t, "0", rec.LateDeduction)
	decEq(t, "1000", rec.NetPay)
}

func TestRecomputeMonth_UnknownEmployee(t *testing.T) {
	f := newCompFixture(t)
	_, err := f.svc.RecomputeMonth(context.Background(), "nobody", testYear, testMonth)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestRecomputeDay_NonTrackingPunchFreezesRecord(t *testing.T) {
	f := newCompFixture(t)
	f.types.types["Fixed"] = schedule.EmploymentType{
		ID: "et-2", Name: "Fixed", HoursOfWork: 8, RequiresTimeTracking: false,
	}
	emp := employee.Employee{ID: "emp-2", Name: "Maria Santos", EmploymentType: "Fixed", DailyRate: decimal.NewFromInt(800), Active: true}
	f.svc = NewCompensationService(nil, f.comp, f.att, f.settings,
		&fakeEmployeeRepo{employees: map[string]employee.Employee{"emp-2": emp}}, f.types, f.holidays)

	f.att.records[dayKey{testYear, testMonth, 3}] = attendance.Attendance{
		EmployeeID: "emp-2", Year: testYear, Month: testMonth, Day: 3, TimeIn: "10:00",
	}

	rec, err := f.svc.RecomputeDay(context.Background(), "emp-2", dateOf(testYear, testMonth, 3))
	require.NoError(t, err)

	decEq(t, "800", rec.GrossPay)
	decEq(t, "8", rec.HoursWorked)
	assert.True(t, rec.ManualOverride)
	assert.Equal(t, 0, rec.LateMinutes)
}

func TestApplyManualEdit_LateMinutesRederivesTotals(t *testing.T) {
	f := newCompFixture(t)
	f.att.punch(testYear, testMonth, 3, "08:00", "17:00")
	_, err := f.svc.RecomputeMonth(context.Background(), "emp-1", testYear, testMonth)
	require.NoError(t, err)

	rec, err := f.svc.ApplyManualEdit(context.Background(), compensation.ManualEditRequest{
		EmployeeID:  "emp-1",
		Date:        "2025-03-03",
		LateMinutes: intPtr(15),
	})
	require.NoError(t, err)

	assert.True(t, rec.ManualOverride)
	assert.Equal(t, 15, rec.LateMinutes)
	// 10 billable minutes at 2 per minute.
	decEq(t, "20", rec.LateDeduction)
	decEq(t, "20", rec.Deductions)
	decEq(t, "980", rec.NetPay)
}

func TestApplyManualEdit_OvertimeMinutesWholeHours(t *testing.T) {
	f := newCompFixture(t)
	f.att.punch(testYear, testMonth, 3, "08:00", "17:00")
	_, err := f.svc.RecomputeMonth(context.Background(), "emp-1", testYear, testMonth)
	require.NoError(t, err)

	rec, err := f.svc.ApplyManualEdit(context.Background(), compensation.ManualEditRequest{
		EmployeeID:      "emp-1",
		Date:            "2025-03-03",
		OvertimeMinutes: intPtr(89),
	})
	require.NoError(t, err)

	// One whole hour at hourly 125 and multiplier 1.25.
	decEq(t, "156.25", rec.OvertimePay)
	decEq(t, "1156.25", rec.GrossPay)
	decEq(t, "1156.25", rec.NetPay)
}

func TestApplyManualEdit_GrossAppliedAfterComponents(t *testing.T) {
	f := newCompFixture(t)
	f.att.punch(testYear, testMonth, 3, "08:00", "17:00")
	_, err := f.svc.RecomputeMonth(context.Background(), "emp-1", testYear, testMonth)
	require.NoError(t, err)

	// A direct gross edit in the same request lands after the minutes edit,
	// so the final net reflects both.
	rec, err := f.svc.ApplyManualEdit(context.Background(), compensation.ManualEditRequest{
		EmployeeID:  "emp-1",
		Date:        "2025-03-03",
		LateMinutes: intPtr(15),
		GrossPay:    decPtr(decimal.NewFromInt(2000)),
	})
	require.NoError(t, err)

	decEq(t, "2000", rec.GrossPay)
	decEq(t, "20", rec.Deductions)
	decEq(t, "1980", rec.NetPay)
}

func TestApplyManualEdit_NetBackfillsGross(t *testing.T) {
	f := newCompFixture(t)
	f.att.punch(testYear, testMonth, 3, "08:10", "17:00")
	_, err := f.svc.RecomputeMonth(context.Background(), "emp-1", testYear, testMonth)
	require.NoError(t, err)

	rec, err := f.svc.ApplyManualEdit(context.Background(), compensation.ManualEditRequest{
		EmployeeID: "emp-1",
		Date:       "2025-03-03",
		NetPay:     decPtr(decimal.NewFromInt(900)),
	})
	require.NoError(t, err)

	decEq(t, "900", rec.NetPay)
	// Deductions were 10 from the recompute.
	decEq(t, "910", rec.GrossPay)
}

func TestApplyManualEdit_InvalidRequest(t *testing.T) {
	f := newCompFixture(t)
	_, err := f.svc.ApplyManualEdit(context.Background(), compensation.ManualEditRequest{
		EmployeeID: "",
		Date:       "not-a-date",
	})
	assert.Error(t, err)
}

func TestSetManualOverride_DisableRecomputes(t *testing.T) {
	f := newCompFixture(t)
	f.att.punch(testYear, testMonth, 3, "08:00", "17:00")
	_, err := f.svc.RecomputeMonth(context.Background(), "emp-1", testYear, testMonth)
	require.NoError(t, err)

	_, err = f.svc.ApplyManualEdit(context.Background(), compensation.ManualEditRequest{
		EmployeeID: "emp-1",
		Date:       "2025-03-03",
		GrossPay:   decPtr(decimal.NewFromInt(9999)),
	})
	require.NoError(t, err)

	rec, err := f.svc.SetManualOverride(context.Background(), compensation.SetManualOverrideRequest{
		EmployeeID: "emp-1",
		Date:       "2025-03-03",
		Enabled:    false,
	})
	require.NoError(t, err)

	// The manual figure is discarded and the day recomputed from punches.
	assert.False(t, rec.ManualOverride)
	decEq(t, "1000", rec.GrossPay)
}

func TestSetManualOverride_EnableCreatesRecord(t *testing.T) {
	f := newCompFixture(t)
	rec, err := f.svc.SetManualOverride(context.Background(), compensation.SetManualOverrideRequest{
		EmployeeID: "emp-1",
		Date:       "2025-03-12",
		Enabled:    true,
	})
	require.NoError(t, err)

	assert.True(t, rec.ManualOverride)
	assert.Equal(t, "2025-03-12", rec.Date)
	decEq(t, "0", rec.GrossPay)
}

func intPtr(v int) *int { return &v }

func decPtr(v decimal.Decimal) *decimal.Decimal { return &v }

func dateOf(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
}
