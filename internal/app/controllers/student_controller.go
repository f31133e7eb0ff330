package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campuscell/studentcell/internal/app/models"
	"github.com/campuscell/studentcell/internal/app/models/dto"
	"github.com/campuscell/studentcell/internal/app/services"
	"github.com/campuscell/studentcell/internal/middleware"
)

// StudentController handles roster operations: CRUD, the filtered view,
// and interactive search.
type StudentController struct {
	studentService *services.StudentService
	rosterService  *services.RosterService
}

// NewStudentController creates a new StudentController.
func NewStudentController(studentService *services.StudentService, rosterService *services.RosterService) *StudentController {
	return &StudentController{
		studentService: studentService,
		rosterService:  rosterService,
	}
}

// ListStudents returns the filtered+sorted roster view.
// @Summary List students
// @Description Applies the filter dimensions from the query string and returns the roster view. Until batch, branch and course are all set the view is unresolved and carries no rows.
// @Tags students
// @Produce json
// @Param batch query string false "Batch filter"
// @Param branch query string false "Branch filter"
// @Param course query string false "Course type filter"
// @Param section query string false "Section filter"
// @Param remark query string false "Remark flag filter (le|left|cr)"
// @Param sort query string false "Sort field"
// @Param order query string false "Sort direction (asc|desc)"
// @Success 200 {object} dto.APIResponse{data=dto.RosterResponse}
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	filters := models.DecodeFilterState(ctx.Request.URL.Query())
	if !models.ValidRemarkFilter(filters.Remark) {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Unknown remark filter").WithField("remark")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	sortField := ctx.Query("sort")
	if sortField != "" && !models.ValidSortField(sortField) {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Unknown sort field").WithField("sort")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	direction := models.SortAsc
	if ctx.Query("order") == string(models.SortDesc) {
		direction = models.SortDesc
	}

	view, err := c.rosterService.View(ctx, filters, sortField, direction)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	students := view.Students
	if students == nil {
		students = []*models.Student{}
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.RosterResponse{
			Resolved: view.Resolved,
			Total:    len(students),
			Filters:  filters.Encode().Encode(),
			Students: students,
		},
		Timestamp: time.Now(),
	})
}

// SearchStudents performs interactive lookup over the full store.
// @Summary Search students
// @Description Substring search over name, roll, phone and email. An empty query returns an empty result set.
// @Tags students
// @Produce json
// @Param q query string true "Search query"
// @Param limit query int false "Truncate to the first N matches (0 = all)"
// @Success 200 {object} dto.APIResponse{data=dto.SearchResponse}
// @Router /students/search [get]
func (c *StudentController) SearchStudents(ctx *gin.Context) {
	query := ctx.Query("q")

	matches, err := c.rosterService.SearchStore(ctx, query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	total := len(matches)
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 && limit < len(matches) {
			matches = matches[:limit]
		}
	}
	if matches == nil {
		matches = []*models.Student{}
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SearchResponse{
			Query:    query,
			Total:    total,
			Students: matches,
		},
		Timestamp: time.Now(),
	})
}

// GetStudentByRoll retrieves one student.
// @Summary Get student by roll
// @Tags students
// @Produce json
// @Param roll path string true "Roll number"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{roll} [get]
func (c *StudentController) GetStudentByRoll(ctx *gin.Context) {
	student, err := c.studentService.GetStudentByRoll(ctx, ctx.Param("roll"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// CreateStudent handles manual roster entry.
// @Summary Add a student
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=models.Student}
// @Failure 400 {object} dto.ErrorResponse
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.CreateStudent(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// UpdateStudent replaces a student record.
// @Summary Update a student
// @Tags students
// @Accept json
// @Produce json
// @Param roll path string true "Roll number"
// @Param request body dto.UpdateStudentRequest true "Updated student information"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{roll} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.UpdateStudent(ctx, ctx.Param("roll"), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// DeleteStudent removes a student record.
// @Summary Delete a student
// @Tags students
// @Param roll path string true "Roll number"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{roll} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if err := c.studentService.DeleteStudent(ctx, ctx.Param("roll")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// GetDistinctValues feeds the filter dropdowns.
// @Summary Distinct filter values
// @Tags students
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.DistinctValuesResponse}
// @Router /students/filters [get]
func (c *StudentController) GetDistinctValues(ctx *gin.Context) {
	batches, branches, sections, courses, err := c.rosterService.DistinctValues(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.DistinctValuesResponse{
			Batches:  batches,
			Branches: branches,
			Sections: sections,
			Courses:  courses,
		},
		Timestamp: time.Now(),
	})
}
