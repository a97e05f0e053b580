package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cookouthq/cookout-api/internal/core/ports"
)

// EventHandler exposes the event, attendee, and address endpoints. Every
// route is mounted behind the session middleware; the signed-in user comes
// from the request, never from handler state.
type EventHandler struct {
	events ports.EventService
}

func NewEventHandler(events ports.EventService) *EventHandler {
	return &EventHandler{events: events}
}

// List returns the events the signed-in user attends or hosts.
//
// @Summary      List the current user's events
// @Tags         events
// @Produce      json
// @Success      200  {object}  response
// @Failure      401  {object}  map[string]string
// @Router       /api/events [get]
func (h *EventHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	events, err := h.events.ListEvents(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response{Data: events})
}

// Create adds a new event hosted by the signed-in user.
//
// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        body  body      eventRequest  true  "Event details"
// @Success      201   {object}  response
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/events [post]
func (h *EventHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req eventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.events.CreateEvent(c.Request().Context(), user, req.toEvent())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, response{Data: created})
}

// Get returns one event the signed-in user has access to.
//
// @Summary      Event details
// @Tags         events
// @Produce      json
// @Param        eventid  path      string  true  "Event ID"
// @Success      200      {object}  response
// @Failure      400      {object}  map[string]string
// @Failure      401      {object}  map[string]string
// @Router       /api/event/{eventid} [get]
func (h *EventHandler) Get(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	event, err := h.events.GetEvent(c.Request().Context(), c.Param("eventid"), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response{Data: event})
}

// Update replaces an event the signed-in user hosts. The body of a
// successful update carries both the previous and the new state.
//
// @Summary      Update an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        eventid  path      string        true  "Event ID"
// @Param        body     body      eventRequest  true  "New event details"
// @Success      200      {object}  response
// @Failure      400      {object}  map[string]string
// @Failure      401      {object}  map[string]string
// @Router       /api/event/{eventid} [put]
func (h *EventHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req eventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.events.UpdateEvent(c.Request().Context(), c.Param("eventid"), user.ID, req.toEvent())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response{Data: map[string]any{
		"old": updated.Old,
		"new": updated.New,
	}})
}

// Delete removes an event the signed-in user hosts, returning the deleted event.
//
// @Summary      Delete an event
// @Tags         events
// @Produce      json
// @Param        eventid  path      string  true  "Event ID"
// @Success      200      {object}  response
// @Failure      400      {object}  map[string]string
// @Failure      401      {object}  map[string]string
// @Router       /api/event/{eventid} [delete]
func (h *EventHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	deleted, err := h.events.DeleteEvent(c.Request().Context(), c.Param("eventid"), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response{Data: deleted})
}

// ListAttendees returns the attendees of an event the user has access to.
//
// @Summary      List event attendees
// @Tags         events
// @Produce      json
// @Param        eventid  path      string  true  "Event ID"
// @Success      200      {object}  response
// @Failure      400      {object}  map[string]string
// @Failure      401      {object}  map[string]string
// @Router       /api/event/{eventid}/attendees [get]
func (h *EventHandler) ListAttendees(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	attendees, err := h.events.ListAttendees(c.Request().Context(), c.Param("eventid"), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response{Data: attendees})
}

// AddAttendee adds an attendee to an event the signed-in user hosts.
//
// @Summary      Add an event attendee
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        eventid  path      string           true  "Event ID"
// @Param        body     body      attendeeRequest  true  "Attendee details"
// @Success      201      {object}  response
// @Failure      400      {object}  map[string]string
// @Failure      401      {object}  map[string]string
// @Router       /api/event/{eventid}/attendees [post]
func (h *EventHandler) AddAttendee(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req attendeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	added, err := h.events.AddAttendee(c.Request().Context(), c.Param("eventid"), user.ID, req.toAttendee())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, response{Data: added})
}

// GetAddress looks up an address by id.
//
// @Summary      Address details
// @Tags         addresses
// @Produce      json
// @Param        addressid  path      string  true  "Address ID"
// @Success      200        {object}  response
// @Failure      400        {object}  map[string]string
// @Router       /api/address/{addressid} [get]
func (h *EventHandler) GetAddress(c echo.Context) error {
	address, err := h.events.GetAddress(c.Request().Context(), c.Param("addressid"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response{Data: address})
}

// CreateAddress stores a new address for later use by events.
//
// @Summary      Create an address
// @Tags         addresses
// @Accept       json
// @Produce      json
// @Param        body  body      addressRequest  true  "Address details"
// @Success      201   {object}  response
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/address [post]
func (h *EventHandler) CreateAddress(c echo.Context) error {
	if _, err := currentUser(c); err != nil {
		return err
	}

	var req addressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.events.CreateAddress(c.Request().Context(), req.toAddress())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, response{Data: created})
}
