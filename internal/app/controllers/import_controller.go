package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campuscell/studentcell/internal/app/models/dto"
	"github.com/campuscell/studentcell/internal/app/services"
	"github.com/campuscell/studentcell/internal/middleware"
	"github.com/campuscell/studentcell/internal/pkg/apperrors"
)

// ImportController handles CSV ingestion: preview and commit.
type ImportController struct {
	importService *services.ImportService
}

// NewImportController creates a new ImportController.
func NewImportController(importService *services.ImportService) *ImportController {
	return &ImportController{importService: importService}
}

// csvUpload returns the CSV payload of the request. The file arrives
// either as the "file" part of a multipart form or as the raw body.
func csvUpload(ctx *gin.Context) (io.ReadCloser, error) {
	header, err := ctx.FormFile("file")
	if err == nil {
		return header.Open()
	}
	if ctx.Request.Body == nil {
		return nil, apperrors.NewBadRequestError("no CSV payload in request")
	}
	return ctx.Request.Body, nil
}

// PreviewImport decodes an uploaded CSV without committing it.
// @Summary Preview a CSV import
// @Description Parses the file, auto-detects the header to field mapping and returns the first rows for review. The store is not modified.
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} dto.APIResponse{data=dto.ImportPreviewResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Router /students/import/preview [post]
func (c *ImportController) PreviewImport(ctx *gin.Context) {
	file, err := csvUpload(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer file.Close()

	preview, err := c.importService.Preview(file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.ImportPreviewResponse{
			Headers:      preview.Headers,
			FieldMapping: preview.FieldMapping,
			RowCount:     preview.RowCount,
			Preview:      preview.Preview,
		},
		Timestamp: time.Now(),
	})
}

// Import validates and commits an uploaded CSV.
// @Summary Import students from CSV
// @Description Validates every row and commits all of them in one step. A single failing row rejects the whole file and leaves the roster unchanged. An optional "mapping" form field carries JSON overrides for the detected header mapping.
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Param mapping formData string false "Field mapping overrides as a JSON object"
// @Success 201 {object} dto.APIResponse{data=dto.ImportResultResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /students/import [post]
func (c *ImportController) Import(ctx *gin.Context) {
	file, err := csvUpload(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer file.Close()

	var overrides map[string]string
	if raw := ctx.PostForm("mapping"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &overrides); err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid mapping overrides").WithField("mapping").WithDetails(err.Error())
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
	}

	imported, rowErrors, err := c.importService.Import(ctx, file, overrides)
	if err != nil {
		if len(rowErrors) > 0 {
			out := make([]dto.ImportRowError, 0, len(rowErrors))
			for _, re := range rowErrors {
				out = append(out, dto.ImportRowError{Row: re.Row, Errors: re.Errors})
			}
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeImportRejected, "Import rejected, no rows were committed").
				WithDetails(dto.ImportErrorResponse{RowErrors: out})
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(errorDetail))
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data: dto.ImportResultResponse{
			Imported: imported,
			Total:    imported,
		},
		Timestamp: time.Now(),
	})
}
