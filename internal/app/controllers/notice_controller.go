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

// NoticeController handles the notice board.
type NoticeController struct {
	noticeService *services.NoticeService
}

// NewNoticeController creates a new NoticeController.
func NewNoticeController(noticeService *services.NoticeService) *NoticeController {
	return &NoticeController{noticeService: noticeService}
}

// ListNotices returns active notices, pinned first then newest.
// @Summary List notices
// @Tags notices
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Notice}
// @Router /notices [get]
func (c *NoticeController) ListNotices(ctx *gin.Context) {
	notices, err := c.noticeService.ListNotices(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if notices == nil {
		notices = []*models.Notice{}
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      notices,
		Timestamp: time.Now(),
	})
}

// CreateNotice publishes a notice.
// @Summary Publish a notice
// @Tags notices
// @Accept json
// @Produce json
// @Param request body dto.CreateNoticeRequest true "Notice content"
// @Success 201 {object} dto.APIResponse{data=models.Notice}
// @Failure 400 {object} dto.ErrorResponse
// @Router /notices [post]
func (c *NoticeController) CreateNotice(ctx *gin.Context) {
	var req dto.CreateNoticeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid notice data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	notice, err := c.noticeService.CreateNotice(ctx, &models.Notice{
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		ExpiryAt:    req.ExpiryAt,
		Pinned:      req.Pinned,
		Attachments: req.Attachments,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      notice,
		Timestamp: time.Now(),
	})
}

// DeleteNotice removes a notice.
// @Summary Delete a notice
// @Tags notices
// @Param id path string true "Notice ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /notices/{id} [delete]
func (c *NoticeController) DeleteNotice(ctx *gin.Context) {
	if err := c.noticeService.DeleteNotice(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
