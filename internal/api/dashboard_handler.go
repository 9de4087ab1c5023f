package api

import (
	"alcyxob/runtrack/internal/domain"
	"alcyxob/runtrack/internal/service"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the aggregated views and exports.
type DashboardHandler struct {
	dashboardService service.DashboardService
	exportService    service.ExportService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService service.DashboardService, exportService service.ExportService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		exportService:    exportService,
	}
}

// --- DTOs for API ---

type DayTotalResponse struct {
	Label    string  `json:"label"`
	Date     string  `json:"date"`
	Distance float64 `json:"distance"`
}

type WeekTotalResponse struct {
	Label    string  `json:"label"`
	Monday   string  `json:"monday"`
	Distance float64 `json:"distance"`
}

type TotalsResponse struct {
	Goal     float64 `json:"goal"`
	Distance float64 `json:"distance"`
	Runs     int     `json:"runs"`
	Diff     float64 `json:"diff"`
}

type DashboardResponse struct {
	Days        []DayTotalResponse  `json:"days"`
	RecentWeeks []WeekTotalResponse `json:"recentWeeks"`
	AllWeeks    []WeekTotalResponse `json:"allWeeks"`
	Totals      TotalsResponse      `json:"totals"`
}

type DayResponse struct {
	Date     string  `json:"date"`
	Goal     float64 `json:"goal"`
	Distance float64 `json:"distance"`
	Runs     string  `json:"runs"`
	NumRuns  int     `json:"numRuns"`
	Diff     float64 `json:"diff"`
}

type ComparisonResponse struct {
	Distance        float64 `json:"distance"`
	DistancePercent float64 `json:"distancePercent"`
	Longest         float64 `json:"longest"`
	LongestPercent  float64 `json:"longestPercent"`
}

type WeekResponse struct {
	Name           string              `json:"name"`
	Monday         string              `json:"monday"`
	Sunday         string              `json:"sunday"`
	Days           []DayResponse       `json:"days"`
	Totals         TotalsResponse      `json:"totals"`
	Longest        float64             `json:"longest"`
	Average        float64             `json:"average"`
	DailyDistances []float64           `json:"dailyDistances"`
	Previous       *ComparisonResponse `json:"previous,omitempty"`
}

type ExportResponse struct {
	ID          string     `json:"id"`
	FileName    string     `json:"fileName"`
	Weeks       int        `json:"weeks"`
	Size        int64      `json:"size"`
	CreatedAt   time.Time  `json:"createdAt"`
	DownloadURL string     `json:"downloadUrl,omitempty"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
}

func mapTotals(t service.Totals) TotalsResponse {
	return TotalsResponse{Goal: t.Goal, Distance: t.Distance, Runs: t.Runs, Diff: t.Diff}
}

func mapWeekTotals(weeks []service.WeekTotal) []WeekTotalResponse {
	out := make([]WeekTotalResponse, len(weeks))
	for i, w := range weeks {
		out[i] = WeekTotalResponse{Label: w.Label, Monday: w.Monday.Format(service.DateLayout), Distance: w.Distance}
	}
	return out
}

// MapDashboardToResponse converts the dashboard summary to its DTO.
func MapDashboardToResponse(d *service.Dashboard) DashboardResponse {
	days := make([]DayTotalResponse, len(d.Days))
	for i, day := range d.Days {
		days[i] = DayTotalResponse{Label: day.Label, Date: day.Date.Format(service.DateLayout), Distance: day.Distance}
	}
	return DashboardResponse{
		Days:        days,
		RecentWeeks: mapWeekTotals(d.RecentWeeks),
		AllWeeks:    mapWeekTotals(d.AllWeeks),
		Totals:      mapTotals(d.Totals),
	}
}

// MapWeeksToResponse converts week summaries to DTOs, keeping their order.
func MapWeeksToResponse(weeks []service.WeekSummary) []WeekResponse {
	out := make([]WeekResponse, len(weeks))
	for i, w := range weeks {
		days := make([]DayResponse, len(w.Days))
		for j, d := range w.Days {
			days[j] = DayResponse{
				Date:     d.Date.Format(service.DateLayout),
				Goal:     d.Goal,
				Distance: d.Distance,
				Runs:     d.Runs,
				NumRuns:  d.NumRuns,
				Diff:     d.Diff,
			}
		}
		out[i] = WeekResponse{
			Name:           w.Name,
			Monday:         w.Monday.Format(service.DateLayout),
			Sunday:         w.Sunday.Format(service.DateLayout),
			Days:           days,
			Totals:         mapTotals(w.Totals),
			Longest:        w.Longest,
			Average:        w.Average,
			DailyDistances: w.DailyDistances,
		}
		if w.Previous != nil {
			out[i].Previous = &ComparisonResponse{
				Distance:        w.Previous.Distance,
				DistancePercent: w.Previous.DistancePercent,
				Longest:         w.Previous.Longest,
				LongestPercent:  w.Previous.LongestPercent,
			}
		}
	}
	return out
}

func MapExportToResponse(e *domain.Export) ExportResponse {
	if e == nil {
		return ExportResponse{}
	}
	return ExportResponse{
		ID:        e.ID.Hex(),
		FileName:  e.FileName,
		Weeks:     e.Weeks,
		Size:      e.Size,
		CreatedAt: e.CreatedAt,
	}
}

// --- Handler Methods ---

// GetDashboard godoc
// @Summary Dashboard of the authenticated user
// @Description Last seven days, trailing weeks and all-time weekly totals.
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DashboardResponse
// @Failure 422 {object} gin.H "Records could not be aggregated"
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	d, err := h.dashboardService.Dashboard(c.Request.Context(), userID)
	if err != nil {
		abortWithServiceError(c, err, "Failed to build dashboard.")
		return
	}
	c.JSON(http.StatusOK, MapDashboardToResponse(d))
}

// GetHistory godoc
// @Summary Weekly history, newest first
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {array} WeekResponse
// @Router /weeks [get]
func (h *DashboardHandler) GetHistory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	weeks, err := h.dashboardService.History(c.Request.Context(), userID)
	if err != nil {
		abortWithServiceError(c, err, "Failed to build weekly history.")
		return
	}
	c.JSON(http.StatusOK, MapWeeksToResponse(weeks))
}

// CreateExport godoc
// @Summary Export the weekly history as CSV
// @Description Stores the CSV in object storage and returns a temporary download link.
// @Tags Exports
// @Produce json
// @Security BearerAuth
// @Success 201 {object} ExportResponse
// @Router /exports [post]
func (h *DashboardHandler) CreateExport(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	res, err := h.exportService.ExportWeekly(c.Request.Context(), userID)
	if err != nil {
		abortWithServiceError(c, err, "Failed to export weekly history.")
		return
	}
	resp := MapExportToResponse(res.Export)
	resp.DownloadURL = res.DownloadURL
	resp.ExpiresAt = &res.ExpiresAt
	c.JSON(http.StatusCreated, resp)
}

// ListExports godoc
// @Summary List exports of the authenticated user
// @Description Each export carries a fresh download link.
// @Tags Exports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ExportResponse
// @Router /exports [get]
func (h *DashboardHandler) ListExports(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	exports, err := h.exportService.ListExports(c.Request.Context(), userID)
	if err != nil {
		abortWithServiceError(c, err, "Failed to retrieve exports.")
		return
	}

	out := make([]ExportResponse, len(exports))
	for i := range exports {
		out[i] = MapExportToResponse(&exports[i])
		url, err := h.exportService.DownloadURL(c.Request.Context(), exports[i])
		if err != nil {
			abortWithServiceError(c, err, "Failed to sign export link.")
			return
		}
		out[i].DownloadURL = url
	}
	c.JSON(http.StatusOK, out)
}
