package domain

import "time"

// State is the aggregate root: every meeting and travel item for the trip
// plus the optional assistant link. Exactly one instance is live in a
// running process; handlers and renderers borrow it, they never copy it.
type State struct {
	Meetings     []*Meeting    `json:"meetings"`
	Travel       []*TravelItem `json:"travel"`
	AssistantURL string        `json:"externalLink"`
}

// NewState returns an empty aggregate.
func NewState() *State {
	return &State{
		Meetings: []*Meeting{},
		Travel:   []*TravelItem{},
	}
}

// Clone returns a deep copy of the whole aggregate.
func (s *State) Clone() *State {
	c := &State{
		Meetings:     make([]*Meeting, len(s.Meetings)),
		Travel:       make([]*TravelItem, len(s.Travel)),
		AssistantURL: s.AssistantURL,
	}
	for i, m := range s.Meetings {
		c.Meetings[i] = m.Clone()
	}
	for i, t := range s.Travel {
		c.Travel[i] = t.Clone()
	}
	return c
}

// MeetingByID finds a meeting by identifier.
func (s *State) MeetingByID(id string) (*Meeting, bool) {
	for _, m := range s.Meetings {
		if m.ID == id {
			return m, true
		}
	}
	return nil, false
}

// ReplaceMeeting swaps the stored meeting with the same ID for the given
// one. Returns false if no meeting with that ID exists.
func (s *State) ReplaceMeeting(m *Meeting) bool {
	for i, existing := range s.Meetings {
		if existing.ID == m.ID {
			s.Meetings[i] = m
			return true
		}
	}
	return false
}

// RemoveMeeting deletes the meeting with the given ID. Returns false if no
// such meeting exists.
func (s *State) RemoveMeeting(id string) bool {
	for i, m := range s.Meetings {
		if m.ID == id {
			s.Meetings = append(s.Meetings[:i], s.Meetings[i+1:]...)
			return true
		}
	}
	return false
}

// TravelByID finds a travel item by identifier.
func (s *State) TravelByID(id string) (*TravelItem, bool) {
	for _, t := range s.Travel {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

// ReplaceTravel swaps the stored travel item with the same ID for the given
// one. Returns false if no item with that ID exists.
func (s *State) ReplaceTravel(t *TravelItem) bool {
	for i, existing := range s.Travel {
		if existing.ID == t.ID {
			s.Travel[i] = t
			return true
		}
	}
	return false
}

// RemoveTravel deletes the travel item with the given ID. Returns false if
// no such item exists.
func (s *State) RemoveTravel(id string) bool {
	for i, t := range s.Travel {
		if t.ID == id {
			s.Travel = append(s.Travel[:i], s.Travel[i+1:]...)
			return true
		}
	}
	return false
}

// FirstMeetingStart returns the start of the first meeting in list order,
// or the fallback when the list is empty. Used to pick the initially
// selected day.
func (s *State) FirstMeetingStart(fallback time.Time) time.Time {
	if len(s.Meetings) > 0 {
		return s.Meetings[0].Start
	}
	return fallback
}
