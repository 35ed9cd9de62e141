package cli

import (
	"time"

	"github.com/alexanderramin/showdeck/internal/schedule"
)

// ViewMode selects which schedule panel is shown on the left.
type ViewMode string

const (
	ModeAgenda ViewMode = "agenda"
	ModeHourly ViewMode = "hourly"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	Organizer *schedule.Organizer

	// Selection state, never persisted.
	SelectedDate time.Time
	Mode         ViewMode

	// Transient status line (last action outcome or error).
	Status string

	// Terminal dimensions
	Width  int
	Height int
}

// NewSharedState initializes the selection state: the first meeting's day,
// or today when the schedule is empty.
func NewSharedState(org *schedule.Organizer) *SharedState {
	return &SharedState{
		Organizer:    org,
		SelectedDate: org.State().FirstMeetingStart(time.Now()),
		Mode:         ModeAgenda,
	}
}

// ResetSelectedDate re-derives the selected date after an import replaced
// the meeting list.
func (s *SharedState) ResetSelectedDate() {
	s.SelectedDate = s.Organizer.State().FirstMeetingStart(time.Now())
}

// ContentHeight returns the available height for view content, accounting
// for the header (2 lines) and the status bar (2 lines).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
