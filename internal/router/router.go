package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/serenitypath/hospital-api/internal/config"
	"github.com/serenitypath/hospital-api/internal/handler"
	appointmentHandler "github.com/serenitypath/hospital-api/internal/handler/appointment"
	authHandler "github.com/serenitypath/hospital-api/internal/handler/auth"
	bookingHandler "github.com/serenitypath/hospital-api/internal/handler/booking"
	calendarHandler "github.com/serenitypath/hospital-api/internal/handler/calendar"
	catalogHandler "github.com/serenitypath/hospital-api/internal/handler/catalog"
	chatHandler "github.com/serenitypath/hospital-api/internal/handler/chat"
	contactHandler "github.com/serenitypath/hospital-api/internal/handler/contact"
	contentHandler "github.com/serenitypath/hospital-api/internal/handler/content"
	sessionHandler "github.com/serenitypath/hospital-api/internal/handler/session"
	teamHandler "github.com/serenitypath/hospital-api/internal/handler/team"
	"github.com/serenitypath/hospital-api/internal/middleware"
)

// Handlers bundles every domain handler the router mounts.
type Handlers struct {
	Ops         *handler.Handler
	Auth        *authHandler.Handler
	Team        *teamHandler.Handler
	Booking     *bookingHandler.Handler
	Calendar    *calendarHandler.Handler
	Session     *sessionHandler.Handler
	Appointment *appointmentHandler.Handler
	Catalog     *catalogHandler.Handler
	Content     *contentHandler.Handler
	Contact     *contactHandler.Handler
	Chat        *chatHandler.Handler
}

type Router struct {
	engine *gin.Engine
	auth   *middleware.AuthMiddleware
	h      Handlers
}

func NewRouter(cfg *config.Config, auth *middleware.AuthMiddleware, h Handlers) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Metrics(),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)
	if cfg.RateLimit.Enabled {
		engine.Use(middleware.NewRateLimiter(cfg.RateLimit).Handle())
	}

	return &Router{engine: engine, auth: auth, h: h}
}

func (r *Router) Engine() *gin.Engine { return r.engine }

// Setup mounts all routes. Everything under /api/v1/admin requires a valid
// admin token; the rest is the public site surface.
func (r *Router) Setup() {
	r.engine.GET("/health/live", r.h.Ops.Live)
	r.engine.GET("/health/ready", r.h.Ops.Ready)
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.engine.Group("/api/v1")
	{
		api.POST("/auth/login", r.h.Auth.Login)

		api.GET("/content", r.h.Content.GetContent)
		api.GET("/music", r.h.Content.GetMusic)
		api.GET("/chat/config", r.h.Content.GetChatConfig)
		api.POST("/chat", r.h.Chat.Chat)

		api.GET("/team", r.h.Team.ListMembers)
		api.GET("/team/:id", r.h.Team.GetMember)

		api.GET("/services", r.h.Catalog.ListServices)
		api.GET("/services/:id", r.h.Catalog.GetService)
		api.GET("/programs", r.h.Catalog.ListPrograms)
		api.GET("/facilities", r.h.Catalog.ListFacilities)

		api.GET("/online-sessions", r.h.Session.ListOnlineSessions)

		api.POST("/bookings", r.h.Booking.Submit)
		api.POST("/appointments", r.h.Appointment.Create)
		api.POST("/contact", r.h.Contact.SubmitRequest)
		api.POST("/suggestions", r.h.Contact.SubmitSuggestion)
		api.POST("/subscribe", r.h.Contact.Subscribe)
	}

	admin := api.Group("/admin", r.auth.Authenticate())
	{
		admin.POST("/team", r.h.Team.CreateMember)
		admin.PUT("/team/:id", r.h.Team.UpdateMember)
		admin.DELETE("/team/:id", r.h.Team.DeleteMember)
		admin.POST("/team/:id/slots", r.h.Team.AddSlot)
		admin.DELETE("/team/:id/slots/:slotId", r.h.Team.RemoveSlot)

		admin.GET("/bookings", r.h.Booking.List)
		admin.PATCH("/bookings/:id/status", r.h.Booking.UpdateStatus)
		admin.DELETE("/bookings/:id", r.h.Booking.Delete)

		admin.GET("/calendar", r.h.Calendar.Timeline)

		admin.GET("/staff-sessions", r.h.Session.ListStaffSessions)
		admin.POST("/staff-sessions", r.h.Session.CreateStaffSession)
		admin.DELETE("/staff-sessions/:id", r.h.Session.DeleteStaffSession)

		admin.POST("/online-sessions", r.h.Session.CreateOnlineSession)
		admin.PUT("/online-sessions/:id", r.h.Session.UpdateOnlineSession)
		admin.DELETE("/online-sessions/:id", r.h.Session.DeleteOnlineSession)

		admin.GET("/appointments", r.h.Appointment.List)
		admin.PATCH("/appointments/:id/status", r.h.Appointment.UpdateStatus)
		admin.DELETE("/appointments/:id", r.h.Appointment.Delete)

		admin.POST("/services", r.h.Catalog.CreateService)
		admin.PUT("/services/:id", r.h.Catalog.UpdateService)
		admin.DELETE("/services/:id", r.h.Catalog.DeleteService)
		admin.POST("/programs", r.h.Catalog.CreateProgram)
		admin.PUT("/programs/:id", r.h.Catalog.UpdateProgram)
		admin.DELETE("/programs/:id", r.h.Catalog.DeleteProgram)
		admin.POST("/facilities", r.h.Catalog.CreateFacility)
		admin.PUT("/facilities/:id", r.h.Catalog.UpdateFacility)
		admin.DELETE("/facilities/:id", r.h.Catalog.DeleteFacility)

		admin.PUT("/content", r.h.Content.UpdateContent)
		admin.PUT("/music", r.h.Content.UpdateMusic)
		admin.PUT("/chat/config", r.h.Content.UpdateChatConfig)

		admin.GET("/contact", r.h.Contact.ListRequests)
		admin.PATCH("/contact/:id/status", r.h.Contact.UpdateRequestStatus)
		admin.DELETE("/contact/:id", r.h.Contact.DeleteRequest)
		admin.GET("/suggestions", r.h.Contact.ListSuggestions)
		admin.DELETE("/suggestions/:id", r.h.Contact.DeleteSuggestion)
		admin.GET("/subscribers", r.h.Contact.ListSubscribers)
		admin.DELETE("/subscribers/:email", r.h.Contact.Unsubscribe)
	}
}
