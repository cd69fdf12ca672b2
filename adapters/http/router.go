package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/interview-tracker/internal/application/service"
	"github.com/khoahotran/interview-tracker/internal/domain/profile"
	"github.com/khoahotran/interview-tracker/pkg/auth"
	"github.com/khoahotran/interview-tracker/pkg/logger"
)

type Handlers struct {
	Auth      *AuthHandler
	Interview *InterviewHandler
	Standup   *StandupHandler
	Analysis  *AnalysisHandler
	Profile   *ProfileHandler
	RSS       *RSSHandler
}

type RouterDeps struct {
	JWT      *auth.JWTService
	Revoker  service.TokenRevoker
	Profiles profile.Repository
	Logger   logger.Logger
}

// RegisterRoutes mounts the API under /api. The engine is expected to already carry ErrorMiddleware.
func RegisterRoutes(router *gin.Engine, h Handlers, deps RouterDeps) {
	authMiddleware := AuthMiddleware(deps.JWT, deps.Revoker, deps.Logger)
	verified := RequireVerified(deps.Profiles)

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/signup", h.Auth.SignUp)
			authGroup.POST("/signin", h.Auth.SignIn)
			authGroup.POST("/password/reset-request", h.Auth.RequestPasswordReset)
			authGroup.POST("/password/reset", h.Auth.UpdatePassword)

			session := authGroup.Group("")
			session.Use(authMiddleware)
			{
				session.POST("/signout", h.Auth.SignOut)
				session.PUT("/password", h.Auth.UpdatePassword)
				session.GET("/me", verified, h.Auth.CurrentUser)
			}
		}

		private := api.Group("")
		private.Use(authMiddleware, verified)
		{
			interviews := private.Group("/interviews")
			{
				interviews.GET("", h.Interview.ListMine)
				interviews.GET("/all", h.Interview.ListAll)
				interviews.POST("", h.Interview.Create)
				interviews.PUT("/:id", h.Interview.Update)
				interviews.PATCH("/:id/status", h.Interview.UpdateStatus)
				interviews.DELETE("/:id", h.Interview.Delete)
				interviews.POST("/analyze", h.Analysis.Analyze)
			}

			standups := private.Group("/standups")
			{
				standups.GET("", h.Standup.ListMine)
				standups.GET("/all", h.Standup.ListAll)
				standups.POST("", h.Standup.Upsert)
				standups.DELETE("/:id", h.Standup.Delete)
				standups.GET("/feed", h.RSS.StandupFeed)
			}

			admin := private.Group("/admin")
			admin.Use(RequireAdmin())
			{
				admin.GET("/profiles/pending", h.Profile.ListPending)
				admin.POST("/profiles/:id/verify", h.Profile.Verify)
			}
		}
	}
}
