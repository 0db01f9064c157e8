package http

import (
	"github.com/gin-gonic/gin"

	profileUC "github.com/laybeentan/portfolio-api/internal/application/usecase/profile"
	"github.com/laybeentan/portfolio-api/pkg/logger"
)

type ProfileHandler struct {
	profileUseCase *profileUC.ProfileUseCase
	logger         logger.Logger
}

func NewProfileHandler(uc *profileUC.ProfileUseCase, log logger.Logger) *ProfileHandler {
	return &ProfileHandler{profileUseCase: uc, logger: log}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	p, err := h.profileUseCase.GetProfile(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	respondOK(c, ToProfileDTO(p), "Profile retrieved successfully")
}
