package domain

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type TravelType string

const (
	TravelFlight TravelType = "flight"
	TravelHotel  TravelType = "hotel"
	TravelGround TravelType = "ground"
)

// TravelTypes lists the accepted travel types in display order.
var TravelTypes = []TravelType{TravelFlight, TravelHotel, TravelGround}

// TravelItem is a booking attached to the trip: a flight, a hotel stay, or
// ground transport. Start and end are optional.
type TravelItem struct {
	ID           string     `json:"id"`
	Type         TravelType `json:"type"`
	Label        string     `json:"label"`
	Confirmation string     `json:"confirmation,omitempty"`
	Start        *time.Time `json:"start,omitempty"`
	End          *time.Time `json:"end,omitempty"`
	Details      string     `json:"details,omitempty"`
}

// Clone returns a deep copy of the travel item for draft editing.
func (t *TravelItem) Clone() *TravelItem {
	c := *t
	if t.Start != nil {
		s := *t.Start
		c.Start = &s
	}
	if t.End != nil {
		e := *t.End
		c.End = &e
	}
	return &c
}

// Validate checks the travel item at commit time. The type must be one of
// the fixed enumeration; when both instants are set, end must not precede
// start.
func (t *TravelItem) Validate() error {
	if err := validation.ValidateStruct(t,
		validation.Field(&t.Type, validation.Required, validation.In(TravelFlight, TravelHotel, TravelGround)),
	); err != nil {
		return err
	}
	if t.Start != nil && t.End != nil && t.End.Before(*t.Start) {
		return validation.Errors{"end": validation.NewError("validation_end_before_start", "end must not be before start")}
	}
	return nil
}
