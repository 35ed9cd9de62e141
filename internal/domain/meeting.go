package domain

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Meeting is a scheduled appointment at the show.
type Meeting struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	Location      string     `json:"location,omitempty"`
	Booth         string     `json:"booth,omitempty"`
	Start         time.Time  `json:"start"`
	End           time.Time  `json:"end"`
	Attendees     []Attendee `json:"attendees"`
	TalkingPoints string     `json:"talkingPoints,omitempty"`
	PrepChecklist string     `json:"prepChecklist,omitempty"`
}

// Clone returns a deep copy of the meeting for draft editing. The copy
// shares nothing with the original, so an abandoned draft leaves the
// stored record untouched.
func (m *Meeting) Clone() *Meeting {
	c := *m
	c.Attendees = make([]Attendee, len(m.Attendees))
	copy(c.Attendees, m.Attendees)
	return &c
}

// Validate checks the meeting at commit time. A title is required and the
// end instant must not precede the start instant.
func (m *Meeting) Validate() error {
	return validation.ValidateStruct(m,
		validation.Field(&m.Title, validation.Required.Error("title is required")),
		validation.Field(&m.End, validation.By(notBefore(m.Start))),
	)
}

// DurationHours returns the meeting length in fractional hours.
func (m *Meeting) DurationHours() float64 {
	return m.End.Sub(m.Start).Hours()
}

// Occupies reports whether the meeting covers the given hour-slot instant.
// The interval is half-open: a meeting ending exactly at the slot does not
// occupy it.
func (m *Meeting) Occupies(slot time.Time) bool {
	return !slot.Before(m.Start) && slot.Before(m.End)
}

// RemoveAttendee deletes the attendee with the given ID from the meeting's
// list. Returns false if no such attendee exists.
func (m *Meeting) RemoveAttendee(id string) bool {
	for i, a := range m.Attendees {
		if a.ID == id {
			m.Attendees = append(m.Attendees[:i], m.Attendees[i+1:]...)
			return true
		}
	}
	return false
}

func notBefore(start time.Time) validation.RuleFunc {
	return func(value interface{}) error {
		end, ok := value.(time.Time)
		if !ok {
			return errors.New("not a time value")
		}
		if end.Before(start) {
			return errors.New("end must not be before start")
		}
		return nil
	}
}
