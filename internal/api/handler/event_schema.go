package handler

import (
	"time"

	"github.com/cookouthq/cookout-api/internal/core/domain"
)

const dateLayout = "2006-01-02"

type eventRequest struct {
	MenuID      string `json:"menu_id"`
	Name        string `json:"name"        validate:"required"`
	Date        string `json:"date"        validate:"required,datetime=2006-01-02"`
	Time        string `json:"time"        validate:"required"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"    validate:"required,datetime=2006-01-02"`
	AddressID   string `json:"address_id"`
}

// toEvent maps the request to a domain event. Dates are already checked by
// the datetime validator, so the parses cannot fail here.
func (r eventRequest) toEvent() *domain.Event {
	date, _ := time.Parse(dateLayout, r.Date)
	deadline, _ := time.Parse(dateLayout, r.Deadline)
	return &domain.Event{
		MenuID:      r.MenuID,
		Name:        r.Name,
		Date:        date,
		Time:        r.Time,
		Description: r.Description,
		Deadline:    deadline,
		AddressID:   r.AddressID,
	}
}

type attendeeRequest struct {
	UserID      string `json:"user_id"      validate:"required"`
	IsAttending bool   `json:"is_attending"`
	FirstName   string `json:"first_name"   validate:"required"`
	LastName    string `json:"last_name"    validate:"required"`
	AdultGuests int    `json:"adult_guests" validate:"gte=0"`
	ChildGuests int    `json:"child_guests" validate:"gte=0"`
}

func (r attendeeRequest) toAttendee() *domain.Attendee {
	return &domain.Attendee{
		UserID:      r.UserID,
		IsAttending: r.IsAttending,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		AdultGuests: r.AdultGuests,
		ChildGuests: r.ChildGuests,
	}
}

type addressRequest struct {
	StreetAddress string `json:"street_address" validate:"required"`
	City          string `json:"city"           validate:"required"`
	State         string `json:"state"          validate:"required"`
	Zip           string `json:"zip"            validate:"required"`
}

func (r addressRequest) toAddress() *domain.Address {
	return &domain.Address{
		StreetAddress: r.StreetAddress,
		City:          r.City,
		State:         r.State,
		Zip:           r.Zip,
	}
}

type inviteRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role"  validate:"required"`
}
