package handler

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/jengzang/validity-dashboard/internal/analysis"
	"github.com/jengzang/validity-dashboard/internal/models"
	"github.com/jengzang/validity-dashboard/internal/service"
	"github.com/jengzang/validity-dashboard/pkg/response"
)

// Routes the page calls back into
const (
	DashboardPath = "/api/v1/dashboard"
	RangePath     = "/api/v1/range"
	ExportPath    = "/api/v1/export"
)

// PageTemplate is the name of the dashboard page template
const PageTemplate = "dashboard.html"

//go:embed templates/*.html
var templateFS embed.FS

// LoadTemplates parses the embedded page templates
func LoadTemplates() (*template.Template, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}

// DashboardHandler handles HTTP requests for the validity dashboard
type DashboardHandler struct {
	service *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(service *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Index handles GET /
func (h *DashboardHandler) Index(c *gin.Context) {
	view := h.service.View(c.Request.Context(), models.DefaultSliderLow, models.DefaultSliderHigh)

	state, err := json.Marshal(view)
	if err != nil {
		response.InternalError(c, "Failed to render dashboard", err)
		return
	}

	c.HTML(http.StatusOK, PageTemplate, gin.H{
		"Title":        "Ad Traffic Validity by Location",
		"State":        template.JS(state),
		"Label":        view.Label,
		"Low":          models.DefaultSliderLow,
		"High":         models.DefaultSliderHigh,
		"SliderMin":    analysis.SliderMin,
		"SliderMax":    analysis.SliderMax,
		"SliderStep":   analysis.SliderStep,
		"DashboardURL": DashboardPath,
		"ExportURL":    ExportPath,
	})
}

// GetDashboard handles GET /api/v1/dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	var filter models.RangeFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	low, high := filter.Positions()
	response.Success(c, h.service.View(c.Request.Context(), low, high))
}

// GetRange handles GET /api/v1/range
func (h *DashboardHandler) GetRange(c *gin.Context) {
	var filter models.RangeFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	low, high := filter.Positions()
	response.Success(c, h.service.Range(low, high))
}

// Export handles GET /api/v1/export
func (h *DashboardHandler) Export(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.service.Export(c.Request.Context(), &buf); err != nil {
		response.InternalError(c, "Failed to export data", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.service.ExportFilename()))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
