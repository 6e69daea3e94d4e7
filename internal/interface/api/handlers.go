package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"rampcontrol-service/internal/domain/entity"
	"rampcontrol-service/internal/domain/repository"
	"rampcontrol-service/internal/usecase"
	"rampcontrol-service/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Handler bundles the usecases behind the dashboard API
type Handler struct {
	dashboard   *usecase.DashboardService
	analytics   *usecase.AnalyticsService
	submitter   *usecase.ReportSubmitter
	leaderRepo  repository.LeaderRepository
	archiveRepo repository.ArchiveRepository
	logger      logger.Logger
}

// NewHandler creates a new API handler
func NewHandler(
	dashboard *usecase.DashboardService,
	analytics *usecase.AnalyticsService,
	submitter *usecase.ReportSubmitter,
	leaderRepo repository.LeaderRepository,
	archiveRepo repository.ArchiveRepository,
	logger logger.Logger,
) *Handler {
	return &Handler{
		dashboard:   dashboard,
		analytics:   analytics,
		submitter:   submitter,
		leaderRepo:  leaderRepo,
		archiveRepo: archiveRepo,
		logger:      logger,
	}
}

// periodParams reads the shared date-range/shift query parameters. The
// range defaults to the last 30 days; shift "todos" or empty means all.
func periodParams(c *gin.Context) (start, end string, shift entity.Shift) {
	now := time.Now()
	start = c.DefaultQuery("start", now.AddDate(0, 0, -30).Format("2006-01-02"))
	end = c.DefaultQuery("end", now.Format("2006-01-02"))

	rawShift := c.Query("shift")
	if rawShift != "" && rawShift != "todos" {
		shift = entity.NormalizeShift(rawShift)
	}
	return start, end, shift
}

// GetDashboard serves GET /api/v1/dashboard
func (h *Handler) GetDashboard(c *gin.Context) {
	date := c.DefaultQuery("date", time.Now().Format("2006-01-02"))
	shift := entity.NormalizeShift(c.DefaultQuery("shift", string(entity.ShiftMorning)))

	view, err := h.dashboard.GetDashboard(c.Request.Context(), date, shift)
	if err != nil {
		h.logger.Error("Dashboard query failed", "date", date, "shift", string(shift), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load dashboard"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetAnalytics serves GET /api/v1/analytics
func (h *Handler) GetAnalytics(c *gin.Context) {
	start, end, shift := periodParams(c)

	result, err := h.analytics.BuildPeriodAnalytics(c.Request.Context(), start, end, shift)
	if err != nil {
		h.logger.Error("Analytics query failed", "start", start, "end", end, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build analytics"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetHistory serves GET /api/v1/history
func (h *Handler) GetHistory(c *gin.Context) {
	start, end, shift := periodParams(c)

	result, err := h.analytics.BuildPeriodAnalytics(c.Request.Context(), start, end, shift)
	if err != nil {
		h.logger.Error("History query failed", "start", start, "end", end, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load history"})
		return
	}

	flights := usecase.FilterFlightHistory(result.Summary.FlatFlightList, c.Query("q"))
	c.JSON(http.StatusOK, gin.H{
		"flights": flights,
		"total":   len(flights),
	})
}

// GetFleet serves GET /api/v1/fleet
func (h *Handler) GetFleet(c *gin.Context) {
	summary, fleet, err := h.dashboard.GetFleet(c.Request.Context())
	if err != nil {
		h.logger.Error("Fleet query failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load fleet"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"summary": summary,
		"fleet":   fleet,
	})
}

// GetLeaders serves GET /api/v1/leaders
func (h *Handler) GetLeaders(c *gin.Context) {
	leaders, err := h.leaderRepo.List(c.Request.Context())
	if err != nil {
		h.logger.Error("Leader query failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load leaders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"leaders": leaders})
}

// GetArchives serves GET /api/v1/archive
func (h *Handler) GetArchives(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	archives, err := h.archiveRepo.FindRecent(c.Request.Context(), limit)
	if err != nil {
		h.logger.Error("Archive query failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load archives"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"archives": archives})
}

// GetArchiveByReport serves GET /api/v1/archive/:reportId
func (h *Handler) GetArchiveByReport(c *gin.Context) {
	reportID := c.Param("reportId")

	archive, err := h.archiveRepo.FindByReportID(c.Request.Context(), reportID)
	if err != nil {
		h.logger.Error("Archive lookup failed", "reportId", reportID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load archive"})
		return
	}
	if archive == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "archive not found"})
		return
	}
	c.JSON(http.StatusOK, archive)
}

// SubmitReport serves POST /api/v1/reports
func (h *Handler) SubmitReport(c *gin.Context) {
	var input usecase.SubmitReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	report, err := h.submitter.Submit(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidReport) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Report submission failed", "date", input.Date, "shift", input.Shift, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store report"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"report":   report,
		"handover": report.RawMessage,
	})
}
