package domain

import "strings"

// Attendee is a person attached to a meeting. Attendees live inside their
// parent meeting's list and have no life of their own.
type Attendee struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Title      string `json:"title,omitempty"`
	Company    string `json:"company,omitempty"`
	ProfileURL string `json:"profileUrl,omitempty"`
	PhotoURL   string `json:"photoUrl,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// Initial returns the uppercased first letter of the attendee's name for
// avatar rendering, or "?" when the name is empty.
func (a Attendee) Initial() string {
	name := strings.TrimSpace(a.Name)
	if name == "" {
		return "?"
	}
	return strings.ToUpper(name[:1])
}

// Affiliation joins title and company, skipping empty parts.
func (a Attendee) Affiliation() string {
	parts := make([]string, 0, 2)
	if a.Title != "" {
		parts = append(parts, a.Title)
	}
	if a.Company != "" {
		parts = append(parts, a.Company)
	}
	return strings.Join(parts, " • ")
}
