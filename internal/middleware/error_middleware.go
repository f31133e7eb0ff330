package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/campuscell/studentcell/internal/app/models/dto"
	"github.com/campuscell/studentcell/internal/pkg/apperrors"
)

// HandleAPIError maps service errors onto HTTP responses. Controllers
// funnel every non-binding error through here so status codes and
// error codes stay consistent across the API.
func HandleAPIError(c *gin.Context, err error) {
	message := err.Error()
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		message = custom.Message
	}

	switch {
	case errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrNoticeNotFound),
		errors.Is(err, apperrors.ErrFormNotFound),
		errors.Is(err, apperrors.ErrTicketNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(404, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message)))

	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(409, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeResourceConflict, message)))

	case errors.Is(err, apperrors.ErrNoColumnsSelected):
		c.JSON(422, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeNoColumnsSelected, "Select at least one column to export")))

	case errors.Is(err, apperrors.ErrExportFormatUnavailable):
		c.JSON(422, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeFormatUnavailable, "PDF export is not available yet")))

	case errors.Is(err, apperrors.ErrUnknownExportFormat):
		c.JSON(400, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)))

	case errors.Is(err, apperrors.ErrImportValidation):
		// Controllers with row detail render this themselves; reaching
		// here means the detail was lost upstream.
		c.JSON(422, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeImportRejected, message)))

	case errors.Is(err, apperrors.ErrEmptyCSV):
		c.JSON(400, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "CSV file contains no data rows")))

	case errors.Is(err, apperrors.ErrInvalidRoll),
		errors.Is(err, apperrors.ErrInvalidPhone),
		errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)))

	default:
		c.JSON(500, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}
