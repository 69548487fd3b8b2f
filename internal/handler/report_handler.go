package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/GTDGit/gtd_bi/internal/analytics"
	"github.com/GTDGit/gtd_bi/internal/service"
	"github.com/GTDGit/gtd_bi/internal/utils"
)

// ReportHandler serves the computed dashboards.
type ReportHandler struct {
	sales    *service.SalesReportService
	learning *service.LearningReportService
	timeout  time.Duration
}

// NewReportHandler creates a new ReportHandler. Each report is computed
// within timeout.
func NewReportHandler(sales *service.SalesReportService, learning *service.LearningReportService, timeout time.Duration) *ReportHandler {
	return &ReportHandler{sales: sales, learning: learning, timeout: timeout}
}

// GetSalesReport handles GET /v1/reports/sales?region=
func (h *ReportHandler) GetSalesReport(c *gin.Context) {
	filter, ok := h.regionFilter(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	report, err := h.sales.Build(ctx, filter)
	if err != nil {
		h.failure(c, err, "Failed to compute sales report")
		return
	}
	utils.SuccessForRegion(c, http.StatusOK, "Sales report computed", filter.String(), report)
}

// GetSalesRegions handles GET /v1/reports/sales/regions
func (h *ReportHandler) GetSalesRegions(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	regions, err := h.sales.Regions(ctx)
	if err != nil {
		h.failure(c, err, "Failed to list regions")
		return
	}
	utils.Success(c, http.StatusOK, "Regions retrieved", gin.H{
		"regions": append([]string{analytics.AllRegionsValue}, regions...),
	})
}

// GetLearningReport handles GET /v1/reports/learning?region=
func (h *ReportHandler) GetLearningReport(c *gin.Context) {
	filter, ok := h.regionFilter(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	report, err := h.learning.Build(ctx, filter)
	if err != nil {
		h.failure(c, err, "Failed to compute learning report")
		return
	}
	utils.SuccessForRegion(c, http.StatusOK, "Learning report computed", filter.String(), report)
}

// regionFilter reads ?region=. An absent parameter explicitly means every
// region; a present but blank one is rejected.
func (h *ReportHandler) regionFilter(c *gin.Context) (analytics.RegionFilter, bool) {
	raw, present := c.GetQuery("region")
	if !present {
		return analytics.AllRegions(), true
	}
	filter, err := analytics.ParseRegionFilter(raw)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, utils.ErrInvalidRequest.Error(), err.Error())
		return analytics.RegionFilter{}, false
	}
	return filter, true
}

func (h *ReportHandler) failure(c *gin.Context, err error, message string) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.Error(c, http.StatusGatewayTimeout, utils.ErrTimeout.Error(), "Report computation timed out")
		return
	}
	utils.Error(c, http.StatusInternalServerError, utils.ErrInternal.Error(), message)
}
