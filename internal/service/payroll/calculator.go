package payroll

import (
	"time"

	"github.com/peopleops-dev/hr-backend-go/internal/domain/attendance"
	"github.com/peopleops-dev/hr-backend-go/internal/domain/leave"
	"github.com/peopleops-dev/hr-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

const (
	// WorkingDaysTarget is the assumed number of paid working days per
	// month. Days not covered by attendance or approved leave count as
	// unpaid and drive deductions.
	WorkingDaysTarget = 22

	moneyScale = 2
)

var (
	attendanceBonusRate = decimal.NewFromFloat(0.05)
	workingDaysTarget   = decimal.NewFromInt(WorkingDaysTarget)

	// defaultBasicSalary applies when an employee has no recorded base
	// salary history.
	defaultBasicSalary = decimal.NewFromInt(10_000_000)
)

// periodWindow returns the first and last calendar day of (month, year).
func periodWindow(month, year int) (start, end time.Time) {
	start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, -1)
	return start, end
}

// computeStats derives working-day statistics for one employee over a
// calendar month. Attendance counts distinct dates; approved leave counts
// overlap days clipped to the month, endpoints inclusive. Days covered by
// both attendance and leave are not reconciled against each other, only
// against the monthly target: paid days cap at WorkingDaysTarget and unpaid
// days floor at zero.
func computeStats(attendances []attendance.Attendance, leaves []leave.LeaveRequest, month, year int) payroll.Stats {
	start, end := periodWindow(month, year)

	seen := make(map[string]struct{}, len(attendances))
	for _, a := range attendances {
		d := a.Date
		if d.Before(start) || d.After(end) {
			continue
		}
		seen[d.Format("2006-01-02")] = struct{}{}
	}
	attendanceDays := len(seen)

	approvedLeaveDays := 0
	for _, l := range leaves {
		if l.Status != leave.StatusApproved {
			continue
		}
		approvedLeaveDays += overlapDays(l.FromDate, l.ToDate, start, end)
	}

	paidDays := attendanceDays + approvedLeaveDays
	if paidDays > WorkingDaysTarget {
		paidDays = WorkingDaysTarget
	}

	return payroll.Stats{
		AttendanceDays:    attendanceDays,
		ApprovedLeaveDays: approvedLeaveDays,
		UnpaidDays:        WorkingDaysTarget - paidDays,
	}
}

// overlapDays counts the days in [from, to] that fall within
// [windowStart, windowEnd], both ranges endpoint-inclusive.
func overlapDays(from, to, windowStart, windowEnd time.Time) int {
	from = truncateToDay(from)
	to = truncateToDay(to)

	if from.Before(windowStart) {
		from = windowStart
	}
	if to.After(windowEnd) {
		to = windowEnd
	}
	if to.Before(from) {
		return 0
	}
	return int(to.Sub(from).Hours()/24) + 1
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// computeBonus awards a flat 5% attendance bonus for a month with zero
// unpaid days; any unpaid absence forfeits the whole bonus.
func computeBonus(basicSalary decimal.Decimal, stats payroll.Stats) decimal.Decimal {
	if stats.UnpaidDays != 0 {
		return decimal.Zero
	}
	return basicSalary.Mul(attendanceBonusRate).Round(moneyScale)
}

// computeDeductions charges one daily rate per unpaid day. Rounding is
// applied to the daily rate before multiplication so the stored amounts
// match payslip line items exactly.
func computeDeductions(basicSalary decimal.Decimal, stats payroll.Stats) decimal.Decimal {
	dailyRate := basicSalary.DivRound(workingDaysTarget, moneyScale)
	return dailyRate.Mul(decimal.NewFromInt(int64(stats.UnpaidDays))).Round(moneyScale)
}
