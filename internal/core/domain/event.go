package domain

import "time"

// Event is the core aggregate: a planned cookout.
type Event struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	MenuID      string    `json:"menu_id,omitempty" bson:"menu_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Date        time.Time `json:"date" bson:"date"`
	Time        string    `json:"time" bson:"time"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	// Deadline is the RSVP cutoff for attendees.
	Deadline  time.Time `json:"deadline" bson:"deadline"`
	AddressID string    `json:"address_id,omitempty" bson:"address_id,omitempty"`
	HostID    string    `json:"host_id" bson:"host_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Attendee records one user's participation in one event.
type Attendee struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	EventID     string `json:"event_id" bson:"event_id"`
	UserID      string `json:"user_id" bson:"user_id"`
	IsHost      bool   `json:"is_host" bson:"is_host"`
	IsAttending bool   `json:"is_attending" bson:"is_attending"`
	FirstName   string `json:"first_name" bson:"first_name"`
	LastName    string `json:"last_name" bson:"last_name"`
	AdultGuests int    `json:"adult_guests" bson:"adult_guests"`
	ChildGuests int    `json:"child_guests" bson:"child_guests"`
}

// Address is a physical location an event can point at.
type Address struct {
	ID            string `json:"id" bson:"_id,omitempty"`
	StreetAddress string `json:"street_address" bson:"street_address"`
	City          string `json:"city" bson:"city"`
	State         string `json:"state" bson:"state"`
	Zip           string `json:"zip" bson:"zip"`
}
