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

// HelpdeskController handles student support tickets.
type HelpdeskController struct {
	helpdeskService *services.HelpdeskService
}

// NewHelpdeskController creates a new HelpdeskController.
func NewHelpdeskController(helpdeskService *services.HelpdeskService) *HelpdeskController {
	return &HelpdeskController{helpdeskService: helpdeskService}
}

// ListTickets returns all tickets, newest first.
// @Summary List tickets
// @Tags helpdesk
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Ticket}
// @Router /tickets [get]
func (c *HelpdeskController) ListTickets(ctx *gin.Context) {
	tickets, err := c.helpdeskService.ListTickets(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if tickets == nil {
		tickets = []*models.Ticket{}
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      tickets,
		Timestamp: time.Now(),
	})
}

// CreateTicket opens a new ticket. New tickets always start Pending.
// @Summary Open a ticket
// @Tags helpdesk
// @Accept json
// @Produce json
// @Param request body dto.CreateTicketRequest true "Ticket content"
// @Success 201 {object} dto.APIResponse{data=models.Ticket}
// @Failure 400 {object} dto.ErrorResponse
// @Router /tickets [post]
func (c *HelpdeskController) CreateTicket(ctx *gin.Context) {
	var req dto.CreateTicketRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid ticket data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	ticket, err := c.helpdeskService.CreateTicket(ctx, &models.Ticket{
		StudentRoll: req.StudentRoll,
		StudentName: req.StudentName,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      ticket,
		Timestamp: time.Now(),
	})
}

// UpdateTicketStatus moves a ticket through its lifecycle, optionally
// appending a staff response.
// @Summary Update ticket status
// @Tags helpdesk
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID"
// @Param request body dto.UpdateTicketStatusRequest true "New status and optional response"
// @Success 200 {object} dto.APIResponse{data=models.Ticket}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tickets/{id}/status [put]
func (c *HelpdeskController) UpdateTicketStatus(ctx *gin.Context) {
	var req dto.UpdateTicketStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid status update").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	ticket, err := c.helpdeskService.UpdateStatus(ctx, ctx.Param("id"), models.TicketStatus(req.Status), req.Response)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      ticket,
		Timestamp: time.Now(),
	})
}
