package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dojanghq/dojang/internal/app/models/dto"
	"github.com/dojanghq/dojang/internal/app/services"
	"github.com/dojanghq/dojang/internal/middleware"
)

// DashboardController serves the aggregated landing-page views
type DashboardController struct {
	dashboardService *services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService *services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// AdminStats returns the headline admin numbers
// @Summary Get admin statistics
// @Description Returns the active roster size, the month's collections and events, and overdue payments
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.AdminStatsResponse} "Statistics retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /dashboard/stats [get]
func (c *DashboardController) AdminStats(ctx *gin.Context) {
	resp, err := c.dashboardService.AdminStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Statistics retrieved", resp))
}

// MartialArtsDistribution breaks the roster down by discipline
// @Summary Get the discipline distribution
// @Description Breaks the active roster down by martial art with percentages
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.MartialArtsDistributionResponse} "Distribution retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /dashboard/martial-arts [get]
func (c *DashboardController) MartialArtsDistribution(ctx *gin.Context) {
	resp, err := c.dashboardService.MartialArtsDistribution(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Distribution retrieved", resp))
}

// PaymentsStatus summarizes the month's payment state
// @Summary Get the payment status summary
// @Description Summarizes the current month's paid and pending fees plus everything overdue
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.PaymentsStatusResponse} "Status retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /dashboard/payments [get]
func (c *DashboardController) PaymentsStatus(ctx *gin.Context) {
	resp, err := c.dashboardService.PaymentsStatus(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Payment status retrieved", resp))
}

// ActiveAlerts lists the most pressing issues
// @Summary Get active alerts
// @Description Lists the most overdue payments and the week's upcoming events
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ActiveAlertsResponse} "Alerts retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /dashboard/alerts [get]
func (c *DashboardController) ActiveAlerts(ctx *gin.Context) {
	resp, err := c.dashboardService.ActiveAlerts(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Alerts retrieved", resp))
}

// RecentStudents lists the latest registrations
// @Summary Get recent registrations
// @Description Lists the most recently registered students
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum students to return" default(5)
// @Success 200 {object} dto.APIResponse{data=dto.RecentStudentsResponse} "Students retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /dashboard/recent-students [get]
func (c *DashboardController) RecentStudents(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "5"))

	resp, err := c.dashboardService.RecentStudents(ctx, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Recent students retrieved", resp))
}

// StudentDashboard aggregates one student's landing page
// @Summary Get a student dashboard
// @Description Aggregates a student's profile, grades, payments and upcoming events. A student may only view their own.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.StudentDashboardResponse} "Dashboard retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Not your dashboard"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /dashboard/student/{id} [get]
func (c *DashboardController) StudentDashboard(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.dashboardService.StudentDashboard(ctx, id, currentUserID(ctx), isAdmin(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Dashboard retrieved", resp))
}
