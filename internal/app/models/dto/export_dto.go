package dto

import "github.com/campuscell/studentcell/internal/app/models"

// ExportRequest selects what to export. Columns holds selected column
// keys from the fixed superset; output column order is always the
// superset declaration order, never the selection order.
type ExportRequest struct {
	Format  string             `json:"format" binding:"required,oneof=xlsx pdf"`
	Columns []string           `json:"columns"`
	Filters models.FilterState `json:"filters"`
	Sort    SortRequest        `json:"sort"`
}

// SortRequest names the sort field and direction for a view.
type SortRequest struct {
	Field string `json:"field"`
	Order string `json:"order" binding:"omitempty,oneof=asc desc"`
}
