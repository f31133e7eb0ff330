package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/campuscell/studentcell/internal/app/controllers"
	"github.com/campuscell/studentcell/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	importController *controllers.ImportController,
	exportController *controllers.ExportController,
	noticeController *controllers.NoticeController,
	formController *controllers.FormController,
	helpdeskController *controllers.HelpdeskController,
	emailController *controllers.EmailController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Student roster routes. Fixed segments are registered before the
	// :roll parameter so gin does not capture them as roll numbers.
	students := v1.Group("/students")
	{
		students.GET("", studentController.ListStudents)
		students.POST("", studentController.CreateStudent)
		students.GET("/search", studentController.SearchStudents)
		students.GET("/filters", studentController.GetDistinctValues)

		students.POST("/import/preview", importController.PreviewImport)
		students.POST("/import", importController.Import)

		students.GET("/export/columns", exportController.GetExportColumns)
		students.POST("/export", exportController.Export)

		students.GET("/:roll", studentController.GetStudentByRoll)
		students.PUT("/:roll", studentController.UpdateStudent)
		students.DELETE("/:roll", studentController.DeleteStudent)
	}

	// Notice board routes
	notices := v1.Group("/notices")
	{
		notices.GET("", noticeController.ListNotices)
		notices.POST("", noticeController.CreateNotice)
		notices.DELETE("/:id", noticeController.DeleteNotice)
	}

	// Forms catalog routes
	forms := v1.Group("/forms")
	{
		forms.GET("", formController.ListForms)
		forms.POST("", formController.CreateForm)
		forms.DELETE("/:id", formController.DeleteForm)
	}

	// Helpdesk ticket routes
	tickets := v1.Group("/tickets")
	{
		tickets.GET("", helpdeskController.ListTickets)
		tickets.POST("", helpdeskController.CreateTicket)
		tickets.PUT("/:id/status", helpdeskController.UpdateTicketStatus)
	}

	// Email broadcast routes
	email := v1.Group("/email")
	{
		email.GET("/templates", emailController.GetTemplates)
		email.POST("/send", emailController.SendEmail)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
