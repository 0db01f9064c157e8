package http

import (
	"github.com/gin-gonic/gin"

	contactUC "github.com/laybeentan/portfolio-api/internal/application/usecase/contact"
	"github.com/laybeentan/portfolio-api/pkg/apperror"
	"github.com/laybeentan/portfolio-api/pkg/logger"
)

type ContactHandler struct {
	useCase *contactUC.ContactUseCase
	logger  logger.Logger
}

func NewContactHandler(uc *contactUC.ContactUseCase, log logger.Logger) *ContactHandler {
	return &ContactHandler{useCase: uc, logger: log}
}

func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid contact submission", err))
		return
	}

	created, err := h.useCase.Submit(c.Request.Context(), contactUC.SubmitContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		c.Error(err)
		return
	}

	respondOK(c, ToContactSubmissionDTO(created), "Thank you for your message. I will respond within 24-48 hours.")
}
