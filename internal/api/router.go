package api

import (
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cookouthq/cookout-api/internal/api/handler"
	"github.com/cookouthq/cookout-api/internal/api/middleware"
	"github.com/cookouthq/cookout-api/internal/core/ports"
	"github.com/cookouthq/cookout-api/internal/core/service"
	mongodb "github.com/cookouthq/cookout-api/internal/infrastructure/db/mongo"
)

// Deps carries the shared infrastructure the router wires handlers to.
type Deps struct {
	Mongo         *mongo.Database
	Redis         *redis.Client
	SessionSecret string
	InviteQueue   service.InviteQueue
	Log           zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("cookout"))

	store := sessions.NewCookieStore([]byte(deps.SessionSecret))
	e.Use(session.Middleware(store))

	// --- Dependencies ---
	userStore := mongodb.NewUserStore(deps.Mongo)
	eventRepo := mongodb.NewEventRepository(deps.Mongo)
	addressRepo := mongodb.NewAddressRepository(deps.Mongo)
	inviteRepo := mongodb.NewInviteRepository(deps.Mongo)

	eventService := service.NewEventService(eventRepo, addressRepo, deps.Log)
	inviteService := service.NewInviteService(eventRepo, inviteRepo, deps.InviteQueue, deps.Log)

	authHandler := handler.NewAuthHandler()
	eventHandler := handler.NewEventHandler(eventService)
	inviteHandler := handler.NewInviteHandler(inviteService)

	// Every /api route gets a request-bound session context and AuthProvider.
	apiGroup := e.Group("/api", middleware.Session(userStore, deps.Log))

	// --- Auth routes ---
	apiGroup.POST("/auth/register", authHandler.Register)
	apiGroup.POST("/auth/login", authHandler.Login)
	apiGroup.POST("/auth/logout", authHandler.Logout)
	// Not gated by RequireAuth: a missing session and a wrong current
	// password must be indistinguishable to the caller.
	apiGroup.PUT("/auth/password", authHandler.ChangePassword)
	apiGroup.GET("/auth/me", authHandler.Me)

	// --- Event / attendee / address routes ---
	authed := apiGroup.Group("", middleware.RequireAuth())
	authed.GET("/events", eventHandler.List)
	authed.POST("/events", eventHandler.Create)
	authed.GET("/event/:eventid", eventHandler.Get)
	authed.PUT("/event/:eventid", eventHandler.Update)
	authed.DELETE("/event/:eventid", eventHandler.Delete)
	authed.GET("/event/:eventid/attendees", eventHandler.ListAttendees)
	authed.POST("/event/:eventid/attendees", eventHandler.AddAttendee)
	authed.GET("/event/:eventid/invitees", inviteHandler.ListInvites)
	authed.POST("/event/:eventid/invitees", inviteHandler.Invite)
	authed.GET("/address/:addressid", eventHandler.GetAddress)
	authed.POST("/address", eventHandler.CreateAddress)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

// The mongo store must keep satisfying the core contract the middleware
// builds providers from.
var _ ports.UserStore = (*mongodb.UserStore)(nil)
