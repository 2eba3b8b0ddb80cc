package dashboard

import (
	"fmt"
	"math"
	"time"

	"github.com/crewdesk/crewdesk-backend-go/internal/domain/attendance"
	"github.com/crewdesk/crewdesk-backend-go/internal/domain/leave"
)

// FormatWorkHours renders a fractional hour count as "Xh Ym", rounding to the
// nearest whole minute. Zero-valued components are omitted, except that a zero
// total renders as "0m".
func FormatWorkHours(hours float64) string {
	totalMinutes := int64(math.Round(hours * 60))

	h := totalMinutes / 60
	m := totalMinutes % 60

	switch {
	case h == 0 && m == 0:
		return "0m"
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}

// CountByStatus tallies requests per status in a single pass.
func CountByStatus(requests []leave.LeaveRequest) map[leave.LeaveRequestStatus]int64 {
	counts := make(map[leave.LeaveRequestStatus]int64, 4)
	for _, request := range requests {
		counts[request.Status]++
	}
	return counts
}

// OnLeaveCount counts approved requests whose date range covers the given
// day, bounds inclusive.
func OnLeaveCount(requests []leave.LeaveRequest, day time.Time) int64 {
	var count int64
	for _, request := range requests {
		if request.Status != leave.LeaveRequestStatusApproved {
			continue
		}
		if request.CoversDate(day) {
			count++
		}
	}
	return count
}

// SumWorkedMinutes totals worked minutes across sessions.
func SumWorkedMinutes(sessions []attendance.Session) int64 {
	var total int64
	for _, session := range sessions {
		total += session.WorkedMinutes
	}
	return total
}
