package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campuscell/studentcell/internal/app/models/dto"
	"github.com/campuscell/studentcell/internal/app/services"
	"github.com/campuscell/studentcell/internal/middleware"
)

// EmailController handles bulk email broadcasts to roster segments.
type EmailController struct {
	emailService *services.EmailService
}

// NewEmailController creates a new EmailController.
func NewEmailController(emailService *services.EmailService) *EmailController {
	return &EmailController{emailService: emailService}
}

// GetTemplates returns the canned message templates.
// @Summary List email templates
// @Tags email
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.EmailTemplate}
// @Router /email/templates [get]
func (c *EmailController) GetTemplates(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.emailService.Templates(),
		Timestamp: time.Now(),
	})
}

// SendEmail broadcasts one message to the selected recipient set.
// @Summary Broadcast an email
// @Description Sends one message to the whole roster, one batch, or an explicit student list. An empty recipient set is rejected.
// @Tags email
// @Accept json
// @Produce json
// @Param request body dto.SendEmailRequest true "Broadcast content and recipient selector"
// @Success 200 {object} dto.APIResponse{data=dto.SendEmailResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Router /email/send [post]
func (c *EmailController) SendEmail(ctx *gin.Context) {
	var req dto.SendEmailRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid email request").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.emailService.Broadcast(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}
