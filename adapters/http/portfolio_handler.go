package http

import (
	"github.com/gin-gonic/gin"

	portfolioUC "github.com/laybeentan/portfolio-api/internal/application/usecase/portfolio"
	"github.com/laybeentan/portfolio-api/pkg/logger"
)

// PortfolioHandler serves the profile-scoped read endpoints. All of them
// answer 200 with empty data when no profile exists.
type PortfolioHandler struct {
	useCase *portfolioUC.PortfolioUseCase
	logger  logger.Logger
}

func NewPortfolioHandler(uc *portfolioUC.PortfolioUseCase, log logger.Logger) *PortfolioHandler {
	return &PortfolioHandler{useCase: uc, logger: log}
}

func (h *PortfolioHandler) GetExperience(c *gin.Context) {
	items, err := h.useCase.ListExperience(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, ToExperienceDTOs(items), "Experience retrieved successfully")
}

func (h *PortfolioHandler) GetSkills(c *gin.Context) {
	skills, err := h.useCase.ListSkills(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, GroupSkills(skills), "Skills retrieved successfully")
}

func (h *PortfolioHandler) GetProjects(c *gin.Context) {
	items, err := h.useCase.ListProjects(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, ToProjectDTOs(items), "Projects retrieved successfully")
}

func (h *PortfolioHandler) GetCertifications(c *gin.Context) {
	items, err := h.useCase.ListCertifications(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, ToCertificationDTOs(items), "Certifications retrieved successfully")
}

func (h *PortfolioHandler) GetEducation(c *gin.Context) {
	items, err := h.useCase.ListEducation(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, ToEducationDTOs(items), "Education retrieved successfully")
}

func (h *PortfolioHandler) GetStatistics(c *gin.Context) {
	stats, err := h.useCase.Statistics(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	if stats == nil {
		respondOK(c, gin.H{}, "No profile found")
		return
	}
	respondOK(c, stats, "Statistics retrieved successfully")
}
