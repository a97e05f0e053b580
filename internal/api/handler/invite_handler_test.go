package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/cookouthq/cookout-api/internal/core/domain"
	"github.com/cookouthq/cookout-api/internal/core/ports"
)

type stubInviteService struct {
	inviteFn func(ctx context.Context, in ports.InviteInput) (*domain.Invite, error)
	listFn   func(ctx context.Context, eventID, userID string) ([]domain.Invite, error)
}

func (s *stubInviteService) Invite(ctx context.Context, in ports.InviteInput) (*domain.Invite, error) {
	return s.inviteFn(ctx, in)
}

func (s *stubInviteService) ListInvites(ctx context.Context, eventID, userID string) ([]domain.Invite, error) {
	return s.listFn(ctx, eventID, userID)
}

func TestInviteHandler_Invite(t *testing.T) {
	svc := &stubInviteService{
		inviteFn: func(_ context.Context, in ports.InviteInput) (*domain.Invite, error) {
			if in.EventID != "e1" || in.UserID != "u1" {
				t.Fatalf("wrong ids: %+v", in)
			}
			if in.Email != "guest@example.org" || in.Role != domain.RoleAttendee {
				t.Fatalf("request not mapped: %+v", in)
			}
			return &domain.Invite{EventID: in.EventID, Email: in.Email, Status: domain.InvitePending}, nil
		},
	}
	body := `{"email":"guest@example.org","role":"attendee"}`
	c, rec := newEventContext(t, http.MethodPost, body, &domain.User{ID: "u1"})
	c.SetParamNames("eventid")
	c.SetParamValues("e1")

	if err := NewInviteHandler(svc).Invite(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
}

func TestInviteHandler_InviteBadEmail(t *testing.T) {
	body := `{"email":"not-an-email","role":"attendee"}`
	c, _ := newEventContext(t, http.MethodPost, body, &domain.User{ID: "u1"})

	err := NewInviteHandler(&stubInviteService{}).Invite(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestInviteHandler_InviteNotHost(t *testing.T) {
	svc := &stubInviteService{
		inviteFn: func(_ context.Context, in ports.InviteInput) (*domain.Invite, error) {
			return nil, domain.ErrEventNotFound
		},
	}
	body := `{"email":"guest@example.org","role":"attendee"}`
	c, _ := newEventContext(t, http.MethodPost, body, &domain.User{ID: "intruder"})
	c.SetParamNames("eventid")
	c.SetParamValues("e1")

	err := NewInviteHandler(svc).Invite(c)
	if err != domain.ErrEventNotFound {
		t.Fatalf("expected ErrEventNotFound to propagate, got %v", err)
	}
}

func TestInviteHandler_ListInvites(t *testing.T) {
	svc := &stubInviteService{
		listFn: func(_ context.Context, eventID, userID string) ([]domain.Invite, error) {
			return []domain.Invite{{EventID: eventID, Email: "guest@example.org"}}, nil
		},
	}
	c, rec := newEventContext(t, http.MethodGet, "", &domain.User{ID: "u1"})
	c.SetParamNames("eventid")
	c.SetParamValues("e1")

	if err := NewInviteHandler(svc).ListInvites(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
