package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/psgurav-dev/analytics-dashboard/internal/domain/analytics"
	"github.com/psgurav-dev/analytics-dashboard/internal/domain/dataset"
	"github.com/psgurav-dev/analytics-dashboard/internal/services"
)

// AnalyticsHandler serves the aggregated dashboard summary.
type AnalyticsHandler struct {
	datasets    *services.DatasetService
	metrics     *services.MetricsService
	datasetSize int
}

// NewAnalyticsHandler creates an analytics handler.
func NewAnalyticsHandler(datasets *services.DatasetService, metrics *services.MetricsService, datasetSize int) *AnalyticsHandler {
	return &AnalyticsHandler{
		datasets:    datasets,
		metrics:     metrics,
		datasetSize: datasetSize,
	}
}

// Summary handles GET /analytics.
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	dateRange, err := parseDateRange(c.Query("dateStart"), c.Query("dateEnd"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    "INVALID_DATE_RANGE",
			Message: "Invalid date range",
			Details: err.Error(),
		})
		return
	}

	filter := analytics.SummaryFilter{
		DateRange: dateRange,
		Platform:  c.DefaultQuery("platform", dataset.DeviceAll),
	}

	records := h.datasets.Dataset(h.datasetSize)
	c.JSON(http.StatusOK, h.metrics.Summarize(records, filter))
}
