// Package router wires the HTTP routes of the service.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	meetinghandler "teamcall_backend/internal/feature/meeting/transport/handler"
	participanthandler "teamcall_backend/internal/feature/participant/transport/handler"
	summaryhandler "teamcall_backend/internal/feature/summary/transport/handler"
	userhandler "teamcall_backend/internal/feature/user/transport/handler"
	"teamcall_backend/internal/platform/googleauth"
	"teamcall_backend/internal/platform/http/handler"
	jwtmw "teamcall_backend/internal/platform/jwt"
)

// Handlers groups the feature handlers the router mounts.
type Handlers struct {
	Users        *userhandler.UserHandler
	Meetings     *meetinghandler.MeetingHandler
	Participants *participanthandler.ParticipantHandler
	Summaries    *summaryhandler.SummaryHandler
}

// NewRouter builds the gin engine with all routes mounted.
func NewRouter(h Handlers, issuer *jwtmw.Issuer, verifier googleauth.Verifier, origins []string) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = origins
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	// Liveness probe, no auth.
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)

	users := r.Group("/users")
	{
		users.POST("/register", h.Users.Register)
		users.POST("/login", h.Users.Login)
		users.POST("/password-recovery/request", h.Users.RequestRecovery)
		users.POST("/password-recovery/reset", h.Users.ResetPassword)

		// Google-federated flows carry a Google ID token instead of
		// our own JWT.
		google := users.Group("/")
		google.Use(googleauth.Required(verifier))
		{
			google.POST("loginGoogle", h.Users.LoginGoogle)
			google.POST("registerGoogle", h.Users.RegisterGoogle)
		}

		auth := users.Group("/")
		auth.Use(jwtmw.AuthRequired(issuer))
		{
			auth.PUT("me", h.Users.UpdateProfile)
			auth.PUT("me/password", h.Users.ChangePassword)
			auth.DELETE("me", h.Users.DeleteMe)
			auth.GET("", h.Users.List)
			auth.GET(":id", h.Users.Get)
		}
	}

	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired(issuer))
	{
		auth.POST("/meetings/create", h.Meetings.Create)
		auth.GET("/meetings", h.Meetings.List)
		auth.GET("/meetings/:id", h.Meetings.Get)
		auth.PUT("/meetings/:id", h.Meetings.Update)
		auth.PATCH("/meetings/finish/:id", h.Meetings.Finish)
		auth.DELETE("/meetings/:id", h.Meetings.Delete)

		auth.POST("/participants/join", h.Participants.Join)
		auth.GET("/participants/:meetingId", h.Participants.Roster)
		auth.DELETE("/participants/:meetingId", h.Participants.Leave)
		auth.POST("/participants/finish/:meetingId", h.Participants.Finish)

		auth.POST("/summaries", h.Summaries.Save)
		auth.POST("/summaries/generate", h.Summaries.Generate)
		auth.GET("/summaries/:meetingId", h.Summaries.Latest)
		auth.GET("/summaries/:meetingId/all", h.Summaries.All)
		auth.GET("/summaries/:meetingId/user/:userId", h.Summaries.LatestForUser)
	}

	return r
}
