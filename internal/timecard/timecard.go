package timecard

import (
	"time"

	"github.com/google/uuid"
)

// Status is the approval state of a time record. Only approved records
// count toward labor totals.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// TimeRecord is one employee's attendance for one calendar day.
type TimeRecord struct {
	ID         uuid.UUID
	EmployeeID int
	StoreID    string
	Date       time.Time

	ClockInAt  *time.Time
	ClockOutAt *time.Time

	BreakMinutes int

	// Live break state for an in-progress shift.
	IsOnBreak      bool
	LastBreakStart *time.Time

	Status Status
}

// WorkedMinutes returns the minutes worked for a closed period: a
// missing clock-out contributes zero rather than an open-ended shift.
func (r *TimeRecord) WorkedMinutes() int {
	if r.ClockInAt == nil {
		return 0
	}

	end := r.ClockInAt
	if r.ClockOutAt != nil {
		end = r.ClockOutAt
	}

	return workedMinutes(*r.ClockInAt, *end, r.BreakMinutes)
}

// WorkedMinutesLive returns the minutes worked so far for an in-progress
// shift, using now as the stand-in clock-out. The caller supplies now so
// that aggregation stays deterministic.
func (r *TimeRecord) WorkedMinutesLive(now time.Time) int {
	if r.ClockInAt == nil {
		return 0
	}

	end := now
	if r.ClockOutAt != nil {
		end = *r.ClockOutAt
	}

	return workedMinutes(*r.ClockInAt, end, r.BreakMinutes)
}

func workedMinutes(in, out time.Time, breakMinutes int) int {
	worked := int(out.Sub(in).Minutes()) - breakMinutes

	return max(0, worked)
}
