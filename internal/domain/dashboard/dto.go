package dashboard

import "time"

// FilterAll is the sentinel meaning "no filter on this dimension".
const FilterAll = "all"

// StatsQuery carries the raw admin filter values. Empty or "all" bypasses
// both the directory lookup and the filter itself.
type StatsQuery struct {
	DepartmentID string
	ProjectID    string
	StartDate    string // YYYY-MM-DD
	EndDate      string // YYYY-MM-DD
}

// StatsFilter is the parsed, validated form of a StatsQuery.
type StatsFilter struct {
	DepartmentID *string
	ProjectID    *string
	StartDate    *time.Time
	EndDate      *time.Time
}

// ========== ADMIN STATS ==========

// AdminStatsResponse holds the leave counters for the admin dashboard.
// TotalWorkHours is nil when the attendance store is unavailable; leave
// counters are still served in that case.
type AdminStatsResponse struct {
	OnLeave        int64   `json:"on_leave"`
	Approved       int64   `json:"approved"`
	Pending        int64   `json:"pending"`
	Rejected       int64   `json:"rejected"`
	TotalWorkHours *string `json:"total_work_hours"` // e.g. "128h 30m"
}

// ========== EMPLOYEE STATS ==========

// TodaySessionResponse mirrors the employee's attendance session for today.
type TodaySessionResponse struct {
	Status    string  `json:"status"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
}

// EmployeeStatsResponse is the self-scoped employee dashboard payload.
type EmployeeStatsResponse struct {
	CheckInTime    *string               `json:"check_in_time"`
	CheckOutTime   *string               `json:"check_out_time"`
	LeavesApproved int64                 `json:"leaves_approved"`
	LeavesPending  int64                 `json:"leaves_pending"`
	TodaySession   *TodaySessionResponse `json:"today_session"`
}

// ========== WEEKLY HOURS ==========

// WeeklyHourItem is one day in the trailing-7-day work hours chart.
type WeeklyHourItem struct {
	Label string  `json:"label"` // weekday name, e.g. "Monday"
	Hours float64 `json:"hours"`
}

type WeeklyHoursResponse struct {
	StartDate string           `json:"start_date"`
	EndDate   string           `json:"end_date"`
	Days      []WeeklyHourItem `json:"days"`
}
