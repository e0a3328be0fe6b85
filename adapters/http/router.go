package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/walterBrayan/BackTalentHub/pkg/auth"
	"github.com/walterBrayan/BackTalentHub/pkg/logger"
)

type Handlers struct {
	Auth         *AuthHandler
	Profile      *ProfileHandler
	Collections  *CollectionsHandler
	Skills       *SkillHandler
	Resumes      *ResumeHandler
	Applications *ApplicationHandler
}

// NewRouter assembles the full route table. Everything except register,
// login and the health check sits behind the bearer-token middleware.
func NewRouter(h Handlers, jwtSvc *auth.JWTService, log logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(ErrorMiddleware(log))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	api := router.Group("/api")
	{
		api.POST("/auth/register", h.Auth.Register)
		api.POST("/auth/login", h.Auth.Login)

		private := api.Group("/")
		private.Use(AuthMiddleware(jwtSvc))
		{
			private.GET("/profile", h.Profile.GetProfile)
			private.PUT("/profile", h.Profile.UpdateProfile)
			private.GET("/user/profile", h.Profile.GetFullProfile)

			private.PUT("/user/work-experience", h.Collections.ReplaceWorkExperiences)
			private.PUT("/user/education", h.Collections.ReplaceEducations)
			private.PUT("/user/languages", h.Collections.ReplaceLanguages)
			private.PUT("/user/certificates", h.Collections.ReplaceCertificates)

			private.POST("/user/skills", h.Skills.AddSkills)
			private.PUT("/user/skills", h.Skills.UpdateSkills)
			private.GET("/user/skills", h.Skills.GetSkills)
			private.GET("/skills/search", h.Skills.SearchSkills)

			private.GET("/resumes", h.Resumes.List)
			private.POST("/resumes", h.Resumes.Create)
			private.GET("/resumes/:id", h.Resumes.Get)
			private.PUT("/resumes/:id", h.Resumes.Update)
			private.DELETE("/resumes/:id", h.Resumes.Archive)
			private.POST("/resumes/generate", h.Resumes.Generate)

			private.GET("/applications", h.Applications.List)
			private.POST("/applications", h.Applications.Create)
			private.GET("/applications/:id", h.Applications.Get)
			private.PUT("/applications/:id", h.Applications.Update)
		}
	}

	return router
}
