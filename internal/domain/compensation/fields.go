package compensation

// FieldRole classifies compensation fields by how manual edits interact with
// the stored formulas. Roles are an explicit table rather than anything
// inferred from field names.
type FieldRole int

const (
	// RoleManual fields carry no formula; edits set the value and nothing else.
	RoleManual FieldRole = iota
	// RoleComputedMinutes fields feed a per-minute formula; editing one
	// re-derives its dependent monetary component and the downstream totals.
	RoleComputedMinutes
	// RoleComputedHours fields feed an hourly formula.
	RoleComputedHours
	// RoleComputedMonetary fields are pay/deduction components; editing one
	// re-derives only the downstream totals.
	RoleComputedMonetary
)

type Field string

const (
	FieldDayType                Field = "day_type"
	FieldHoursWorked            Field = "hours_worked"
	FieldLateMinutes            Field = "late_minutes"
	FieldUndertimeMinutes       Field = "undertime_minutes"
	FieldOvertimeMinutes        Field = "overtime_minutes"
	FieldNightDifferentialHours Field = "night_differential_hours"
	FieldGrossPay               Field = "gross_pay"
	FieldNetPay                 Field = "net_pay"
	FieldLeaveType              Field = "leave_type"
	FieldLeavePay               Field = "leave_pay"
	FieldAbsence                Field = "absence"
	FieldNotes                  Field = "notes"
)

var fieldRoles = map[Field]FieldRole{
	FieldDayType:                RoleManual,
	FieldHoursWorked:            RoleComputedHours,
	FieldLateMinutes:            RoleComputedMinutes,
	FieldUndertimeMinutes:       RoleComputedMinutes,
	FieldOvertimeMinutes:        RoleComputedMinutes,
	FieldNightDifferentialHours: RoleComputedHours,
	FieldGrossPay:               RoleComputedMonetary,
	FieldNetPay:                 RoleComputedMonetary,
	FieldLeaveType:              RoleManual,
	FieldLeavePay:               RoleComputedMonetary,
	FieldAbsence:                RoleManual,
	FieldNotes:                  RoleManual,
}

// Role returns the field's role, RoleManual for unknown fields.
func (f Field) Role() FieldRole {
	return fieldRoles[f]
}
