package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campuscell/studentcell/internal/app/models"
	"github.com/campuscell/studentcell/internal/app/models/dto"
	"github.com/campuscell/studentcell/internal/app/services"
	"github.com/campuscell/studentcell/internal/middleware"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportController produces downloadable roster artifacts.
type ExportController struct {
	exportService  *services.ExportService
	rosterService  *services.RosterService
	studentService *services.StudentService
}

// NewExportController creates a new ExportController.
func NewExportController(exportService *services.ExportService, rosterService *services.RosterService, studentService *services.StudentService) *ExportController {
	return &ExportController{
		exportService:  exportService,
		rosterService:  rosterService,
		studentService: studentService,
	}
}

// Export renders the current view as a downloadable file.
// @Summary Export students
// @Description Renders the selected columns of the filtered+sorted view. With resolved filters the export covers the filtered view, otherwise the whole roster. Column order is fixed regardless of selection order.
// @Tags export
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param request body dto.ExportRequest true "Export parameters"
// @Success 200 {file} binary
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /students/export [post]
func (c *ExportController) Export(ctx *gin.Context) {
	var req dto.ExportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid export request").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	if req.Sort.Field != "" && !models.ValidSortField(req.Sort.Field) {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Unknown sort field").WithField("sort.field")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	records, err := c.recordsForExport(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	payload, err := c.exportService.Export(records, req.Columns, services.ExportFormat(req.Format))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	filename := fmt.Sprintf("students-%s.%s", time.Now().Format("2006-01-02"), req.Format)
	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	ctx.Data(http.StatusOK, xlsxContentType, payload)
}

// GetExportColumns lists the exportable column keys in output order.
// @Summary List export columns
// @Tags export
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]string}
// @Router /students/export/columns [get]
func (c *ExportController) GetExportColumns(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      services.ExportColumnKeys(),
		Timestamp: time.Now(),
	})
}

// recordsForExport resolves the record set an export covers. Resolved
// filters narrow it to the filtered view; anything else exports the
// whole roster.
func (c *ExportController) recordsForExport(ctx *gin.Context, req dto.ExportRequest) ([]*models.Student, error) {
	if req.Filters.Resolved() {
		view, err := c.rosterService.View(ctx, req.Filters, req.Sort.Field, sortDirection(req.Sort.Order))
		if err != nil {
			return nil, err
		}
		return view.Students, nil
	}

	records, err := c.studentService.ListStudents(ctx)
	if err != nil {
		return nil, err
	}
	if req.Sort.Field != "" {
		records = c.rosterService.Sort(records, req.Sort.Field, sortDirection(req.Sort.Order))
	}
	return records, nil
}

func sortDirection(order string) models.SortDirection {
	if order == string(models.SortDesc) {
		return models.SortDesc
	}
	return models.SortAsc
}
