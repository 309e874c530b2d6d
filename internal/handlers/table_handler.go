package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/psgurav-dev/analytics-dashboard/internal/domain/dataset"
	"github.com/psgurav-dev/analytics-dashboard/internal/services"
)

// TableHandler serves filtered, sorted, paginated pages of the canonical
// record set.
type TableHandler struct {
	datasets    *services.DatasetService
	datasetSize int
}

// NewTableHandler creates a table handler reading datasetSize rows from the
// dataset service.
func NewTableHandler(datasets *services.DatasetService, datasetSize int) *TableHandler {
	return &TableHandler{
		datasets:    datasets,
		datasetSize: datasetSize,
	}
}

// List handles GET /table-data. Malformed parameters are rejected with a
// validation error rather than silently defaulted.
func (h *TableHandler) List(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    "INVALID_PAGE",
			Message: "Invalid page",
			Details: dataset.ErrInvalidPage.Error(),
		})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    "INVALID_LIMIT",
			Message: "Invalid limit",
			Details: dataset.ErrInvalidLimit.Error(),
		})
		return
	}

	sortBy, err := dataset.ParseSortField(c.DefaultQuery("sortBy", string(dataset.FieldTimestamp)))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    "INVALID_SORT_FIELD",
			Message: "Invalid sortBy",
			Details: err.Error(),
		})
		return
	}

	sortOrder, err := dataset.ParseSortOrder(c.DefaultQuery("sortOrder", string(dataset.OrderDesc)))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    "INVALID_SORT_ORDER",
			Message: "Invalid sortOrder",
			Details: err.Error(),
		})
		return
	}

	dateRange, err := parseDateRange(c.Query("dateStart"), c.Query("dateEnd"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    "INVALID_DATE_RANGE",
			Message: "Invalid date range",
			Details: err.Error(),
		})
		return
	}

	spec := dataset.FilterSpec{
		DateRange: dateRange,
		Device:    c.Query("device"),
		Status:    c.Query("status"),
	}

	records := h.datasets.Dataset(h.datasetSize)
	filtered := services.Filter(records, spec)
	sorted := services.Sort(filtered, sortBy, sortOrder)
	pageSlice, total, totalPages := services.Paginate(sorted, page, limit)

	c.JSON(http.StatusOK, gin.H{
		"data":       pageSlice,
		"total":      total,
		"page":       page,
		"limit":      limit,
		"totalPages": totalPages,
	})
}
