package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cookouthq/cookout-api/internal/core/ports"
)

// InviteHandler handles email invitations to events.
type InviteHandler struct {
	invites ports.InviteService
}

func NewInviteHandler(invites ports.InviteService) *InviteHandler {
	return &InviteHandler{invites: invites}
}

// Invite accepts an invitation for async delivery. The invitation is
// persisted immediately but delivered by the worker pool, hence 202.
//
// @Summary      Invite someone to an event
// @Tags         invites
// @Accept       json
// @Produce      json
// @Param        eventid  path      string         true  "Event ID"
// @Param        body     body      inviteRequest  true  "Invitee details"
// @Success      202      {object}  response
// @Failure      400      {object}  map[string]string
// @Failure      401      {object}  map[string]string
// @Router       /api/event/{eventid}/invitees [post]
func (h *InviteHandler) Invite(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req inviteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	invite, err := h.invites.Invite(c.Request().Context(), ports.InviteInput{
		EventID: c.Param("eventid"),
		UserID:  user.ID,
		Email:   req.Email,
		Role:    req.Role,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, response{Data: invite})
}

// ListInvites returns the invitations of an event the user has access to.
//
// @Summary      List event invitees
// @Tags         invites
// @Produce      json
// @Param        eventid  path      string  true  "Event ID"
// @Success      200      {object}  response
// @Failure      400      {object}  map[string]string
// @Failure      401      {object}  map[string]string
// @Router       /api/event/{eventid}/invitees [get]
func (h *InviteHandler) ListInvites(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	invites, err := h.invites.ListInvites(c.Request().Context(), c.Param("eventid"), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response{Data: invites})
}
