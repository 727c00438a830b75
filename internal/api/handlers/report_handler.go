package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lagerkoll/backend-go/internal/centra"
	"github.com/lagerkoll/backend-go/internal/reorder"
	"github.com/lagerkoll/backend-go/internal/service"
)

const dateLayout = "2006-01-02"

type ReportHandler struct {
	service *service.InventoryService
}

func NewReportHandler(service *service.InventoryService) *ReportHandler {
	return &ReportHandler{service: service}
}

func (h *ReportHandler) parseRequest(c *gin.Context) (service.Request, reorder.Filter, error) {
	now := time.Now().UTC()
	req := service.Request{
		From:         now.AddDate(0, 0, -30),
		To:           now,
		LeadTimeDays: 7,
		SafetyStock:  10,
		OnlyShipped:  true,
	}

	if from := strings.TrimSpace(c.Query("from")); from != "" {
		parsed, err := time.Parse(dateLayout, from)
		if err != nil {
			return req, reorder.Filter{}, err
		}
		req.From = parsed
	}
	if to := strings.TrimSpace(c.Query("to")); to != "" {
		parsed, err := time.Parse(dateLayout, to)
		if err != nil {
			return req, reorder.Filter{}, err
		}
		req.To = parsed
	}

	if leadTime, err := strconv.Atoi(c.DefaultQuery("lead_time", "7")); err == nil && leadTime >= 0 {
		req.LeadTimeDays = leadTime
	}
	if safety, err := strconv.Atoi(c.DefaultQuery("safety_stock", "10")); err == nil && safety >= 0 {
		req.SafetyStock = safety
	}
	if onlyShipped, err := strconv.ParseBool(c.DefaultQuery("only_shipped", "true")); err == nil {
		req.OnlyShipped = onlyShipped
	}

	filter := reorder.Filter{}
	if activeOnly, err := strconv.ParseBool(c.DefaultQuery("active_only", "false")); err == nil {
		filter.ActiveOnly = activeOnly
	}
	if excludeBundles, err := strconv.ParseBool(c.DefaultQuery("exclude_bundles", "false")); err == nil {
		filter.ExcludeBundles = excludeBundles
	}
	filter.ExcludeSupplier = strings.TrimSpace(c.Query("exclude_supplier"))

	return req, filter, nil
}

func (h *ReportHandler) GetReport(c *gin.Context) {
	req, filter, err := h.parseRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date parameter", "details": err.Error()})
		return
	}

	rows, err := h.service.FetchInventoryWithSales(c.Request.Context(), req)
	if err != nil {
		// A fetch failure means the upstream API could not be read; an empty
		// report is a success and never takes this path.
		if fe, ok := centra.AsFetchError(err); ok {
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "failed to fetch catalog data",
				"stage": fe.Stage,
				"page":  fe.Page,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build report", "details": err.Error()})
		return
	}

	rows = filter.Apply(rows)
	c.JSON(http.StatusOK, gin.H{
		"rows":  rows,
		"total": len(rows),
	})
}

func (h *ReportHandler) InvalidateCache(c *gin.Context) {
	if err := h.service.InvalidateCache(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to invalidate cache", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "invalidated"})
}
