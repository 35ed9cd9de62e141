package domain

import (
	"time"

	"github.com/google/uuid"
)

// NewID returns a fresh opaque record identifier.
func NewID() string {
	return uuid.NewString()
}

// SeedState returns the example schedule used when no saved state exists:
// a one-day slate of intro meetings plus inbound travel. The sample day is
// anchored to September 16 of the current year so the agenda opens on
// something plausible.
func SeedState() *State {
	day := time.Date(time.Now().Year(), time.September, 16, 9, 0, 0, 0, time.Local)

	chris := Attendee{
		ID:         NewID(),
		Name:       "Chris Williams",
		Title:      "VP Partnerships",
		Company:    "NorthBridge",
		ProfileURL: "https://www.linkedin.com/in/example-chris",
		Notes:      "Loves concise dashboards; ask about the Zoho practice.",
	}
	amanda := Attendee{
		ID:         NewID(),
		Name:       "Amanda Lee",
		Title:      "Head of Marketing",
		Company:    "Protocol80",
		ProfileURL: "https://www.linkedin.com/in/example-amanda",
		Notes:      "Interested in co-marketing webinars and case studies.",
	}
	hudson := Attendee{
		ID:         NewID(),
		Name:       "Hudson Carter",
		Title:      "Solutions Architect",
		Company:    "CloudTrailz",
		ProfileURL: "https://www.linkedin.com/in/example-hudson",
		Notes:      "Deep NetSuite background; prefers technical prep notes.",
	}

	flightStart := day.Add(-24 * time.Hour)
	flightEnd := day.Add(-22 * time.Hour)
	hotelStart := day.Add(-1 * time.Hour)
	hotelEnd := day.Add(48 * time.Hour)

	return &State{
		Meetings: []*Meeting{
			{
				ID:            NewID(),
				Title:         "NorthBridge intro",
				Description:   "Explore reseller fit; prioritize Zoho + Monday integrations.",
				Location:      "Hall B – Meeting Room 3",
				Booth:         "B122",
				Start:         day,
				End:           day.Add(time.Hour),
				Attendees:     []Attendee{chris},
				TalkingPoints: "15% target share from one ecosystem; co-selling playbook; partner portal access.",
				PrepChecklist: "Review Zoho marketplace listing; pull 2 case studies; confirm NDA status.",
			},
			{
				ID:            NewID(),
				Title:         "Protocol80 co-marketing sprint",
				Description:   "Finalize webinar topics and case study pipeline.",
				Location:      "Expo Café (near Hall A)",
				Booth:         "A210",
				Start:         day.Add(2 * time.Hour),
				End:           day.Add(3 * time.Hour),
				Attendees:     []Attendee{amanda},
				TalkingPoints: "Partner spotlight webinar; co-branded email templates; design resources.",
				PrepChecklist: "Bring sample creative; align on audience; set metrics.",
			},
			{
				ID:            NewID(),
				Title:         "CloudTrailz technical sync",
				Description:   "Deep-dive NetSuite/HubSpot patterns; managed custom objects beta lessons.",
				Location:      "Booth C341",
				Booth:         "C341",
				Start:         day.Add(4 * time.Hour),
				End:           day.Add(5 * time.Hour),
				Attendees:     []Attendee{hudson},
				TalkingPoints: "QuickBooks Desktop beta, then pivot to NetSuite/Intacct; out-of-the-box industry apps.",
				PrepChecklist: "Open architecture diagram; confirm data model mapping doc.",
			},
		},
		Travel: []*TravelItem{
			{
				ID:           NewID(),
				Type:         TravelFlight,
				Label:        "ATL → BOS (AC 1234)",
				Confirmation: "Z7X9QW",
				Start:        &flightStart,
				End:          &flightEnd,
				Details:      "Seat 14C; carry-on only.",
			},
			{
				ID:           NewID(),
				Type:         TravelHotel,
				Label:        "Westin Seaport, Boston",
				Confirmation: "H987654",
				Start:        &hotelStart,
				End:          &hotelEnd,
				Details:      "Breakfast included.",
			},
		},
	}
}
