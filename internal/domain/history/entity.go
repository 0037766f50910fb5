package history

import "time"

// FieldBaseSalary is the field name under which salary changes are recorded.
const FieldBaseSalary = "Base Salary"

// Entry is one field-level change in an employee's employment record.
type Entry struct {
	ID         string
	EmployeeID string
	FieldName  string
	OldValue   *string
	NewValue   string
	ChangedAt  time.Time
	ChangedBy  *string
}
