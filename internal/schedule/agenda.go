package schedule

import (
	"sort"
	"time"

	"github.com/alexanderramin/showdeck/internal/domain"
	"github.com/alexanderramin/showdeck/internal/timeutil"
)

// Hourly grid bounds: 13 one-hour slots starting at 07:00 local time.
const (
	HourlyFirstHour = 7
	HourlySlotCount = 13
)

// HourSlot is one row of the hourly grid: the slot instant and the
// meetings occupying it.
type HourSlot struct {
	Time     time.Time
	Meetings []*domain.Meeting
}

// MeetingsOn returns the meetings whose start instant falls on the same
// calendar day as day, sorted ascending by start. The input is never
// mutated.
func MeetingsOn(meetings []*domain.Meeting, day time.Time) []*domain.Meeting {
	out := make([]*domain.Meeting, 0, len(meetings))
	for _, m := range meetings {
		if timeutil.SameDay(m.Start, day) {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})
	return out
}

// HourSlots builds the hourly grid for the given day. A meeting occupies a
// slot when the slot instant is at or after its start and strictly before
// its end.
func HourSlots(meetings []*domain.Meeting, day time.Time) []HourSlot {
	dayMeetings := MeetingsOn(meetings, day)
	slots := make([]HourSlot, 0, HourlySlotCount)
	for i := 0; i < HourlySlotCount; i++ {
		at := timeutil.HourSlot(day, HourlyFirstHour+i)
		slot := HourSlot{Time: at}
		for _, m := range dayMeetings {
			if m.Occupies(at) {
				slot.Meetings = append(slot.Meetings, m)
			}
		}
		slots = append(slots, slot)
	}
	return slots
}

// DistinctDays returns the distinct calendar days (midnight instants)
// present across all meetings, sorted ascending.
func DistinctDays(meetings []*domain.Meeting) []time.Time {
	seen := make(map[time.Time]bool)
	days := make([]time.Time, 0, len(meetings))
	for _, m := range meetings {
		d := timeutil.DayStart(m.Start)
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// StepDay moves the selected date to the previous (dir < 0) or next
// (dir > 0) distinct meeting day. Stepping past either boundary is a
// no-op: the current date is returned unchanged.
func StepDay(meetings []*domain.Meeting, current time.Time, dir int) time.Time {
	days := DistinctDays(meetings)
	idx := -1
	for i, d := range days {
		if timeutil.SameDay(d, current) {
			idx = i
			break
		}
	}
	next := idx + dir
	if next < 0 || next >= len(days) {
		return current
	}
	return days[next]
}
