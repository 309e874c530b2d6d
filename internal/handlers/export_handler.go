package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/psgurav-dev/analytics-dashboard/internal/domain/dataset"
	"github.com/psgurav-dev/analytics-dashboard/internal/services"
)

// ExportHandler serializes a filtered projection of the record set to a
// downloadable delimited-text document.
type ExportHandler struct {
	datasets    *services.DatasetService
	exporter    *services.ExportService
	datasetSize int
}

// NewExportHandler creates an export handler.
func NewExportHandler(datasets *services.DatasetService, exporter *services.ExportService, datasetSize int) *ExportHandler {
	return &ExportHandler{
		datasets:    datasets,
		exporter:    exporter,
		datasetSize: datasetSize,
	}
}

type exportFilters struct {
	DateRange *struct {
		Start string `json:"start"`
		End   string `json:"end"`
	} `json:"dateRange"`
	Device string `json:"device"`
	Status string `json:"status"`
}

type exportRequest struct {
	Filters     *exportFilters `json:"filters"`
	SortBy      string         `json:"sortBy"`
	SortOrder   string         `json:"sortOrder"`
	SelectedIDs []string       `json:"selectedIds"`
}

// Export handles POST /export-csv. Column order is fixed regardless of the
// requested sort.
func (h *ExportHandler) Export(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    "INVALID_REQUEST_BODY",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	records := h.datasets.Dataset(h.datasetSize)

	if req.Filters != nil {
		spec := dataset.FilterSpec{
			Device: req.Filters.Device,
			Status: req.Filters.Status,
		}
		if req.Filters.DateRange != nil {
			dateRange, err := parseDateRange(req.Filters.DateRange.Start, req.Filters.DateRange.End)
			if err != nil {
				c.JSON(http.StatusBadRequest, ErrorResponse{
					Code:    "INVALID_DATE_RANGE",
					Message: "Invalid date range",
					Details: err.Error(),
				})
				return
			}
			spec.DateRange = dateRange
		}
		records = services.Filter(records, spec)
	}

	records = services.SelectByUserIDs(records, req.SelectedIDs)

	if req.SortBy != "" {
		sortBy, err := dataset.ParseSortField(req.SortBy)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    "INVALID_SORT_FIELD",
				Message: "Invalid sortBy",
				Details: err.Error(),
			})
			return
		}
		sortOrder := dataset.OrderDesc
		if req.SortOrder != "" {
			if sortOrder, err = dataset.ParseSortOrder(req.SortOrder); err != nil {
				c.JSON(http.StatusBadRequest, ErrorResponse{
					Code:    "INVALID_SORT_ORDER",
					Message: "Invalid sortOrder",
					Details: err.Error(),
				})
				return
			}
		}
		records = services.Sort(records, sortBy, sortOrder)
	}

	document := h.exporter.CSV(records, dataset.ExportFields)

	filename := fmt.Sprintf("analytics-export-%s.csv", uuid.New().String())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", document)
}
