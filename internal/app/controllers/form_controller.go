package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campuscell/studentcell/internal/app/models"
	"github.com/campuscell/studentcell/internal/app/models/dto"
	"github.com/campuscell/studentcell/internal/app/services"
	"github.com/campuscell/studentcell/internal/middleware"
)

// FormController handles the frequently-used forms catalog.
type FormController struct {
	formService *services.FormService
}

// NewFormController creates a new FormController.
func NewFormController(formService *services.FormService) *FormController {
	return &FormController{formService: formService}
}

// ListForms returns the forms catalog.
// @Summary List forms
// @Tags forms
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Form}
// @Router /forms [get]
func (c *FormController) ListForms(ctx *gin.Context) {
	forms, err := c.formService.ListForms(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if forms == nil {
		forms = []*models.Form{}
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      forms,
		Timestamp: time.Now(),
	})
}

// CreateForm registers a new form.
// @Summary Register a form
// @Tags forms
// @Accept json
// @Produce json
// @Param request body dto.CreateFormRequest true "Form information"
// @Success 201 {object} dto.APIResponse{data=models.Form}
// @Failure 400 {object} dto.ErrorResponse
// @Router /forms [post]
func (c *FormController) CreateForm(ctx *gin.Context) {
	var req dto.CreateFormRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid form data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	form, err := c.formService.CreateForm(ctx, &models.Form{
		Title:    req.Title,
		Category: req.Category,
		Type:     models.FormType(req.Type),
		URL:      req.URL,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      form,
		Timestamp: time.Now(),
	})
}

// DeleteForm removes a form from the catalog.
// @Summary Delete a form
// @Tags forms
// @Param id path string true "Form ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /forms/{id} [delete]
func (c *FormController) DeleteForm(ctx *gin.Context) {
	if err := c.formService.DeleteForm(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
