package http

import (
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/laybeentan/portfolio-api/internal/config"
	"github.com/laybeentan/portfolio-api/pkg/logger"
)

func NewRouter(
	cfg config.Config,
	log logger.Logger,
	profileHandler *ProfileHandler,
	portfolioHandler *PortfolioHandler,
	contactHandler *ContactHandler,
	systemHandler *SystemHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(ErrorMiddleware(log))

	corsCfg := cors.DefaultConfig()
	if slices.Contains(cfg.CORS.AllowedOrigins, "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORS.AllowedOrigins
		corsCfg.AllowCredentials = true
	}
	router.Use(cors.New(corsCfg))

	api := router.Group("/api")
	{
		api.GET("/", systemHandler.Root)
		api.GET("/health", systemHandler.Health)

		api.GET("/profile", profileHandler.GetProfile)
		api.GET("/experience", portfolioHandler.GetExperience)
		api.GET("/skills", portfolioHandler.GetSkills)
		api.GET("/projects", portfolioHandler.GetProjects)
		api.GET("/certifications", portfolioHandler.GetCertifications)
		api.GET("/education", portfolioHandler.GetEducation)
		api.GET("/statistics", portfolioHandler.GetStatistics)

		api.POST("/contact", contactHandler.SubmitContact)
	}

	return router
}
