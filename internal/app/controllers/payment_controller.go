package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dojanghq/dojang/internal/app/models/dto"
	"github.com/dojanghq/dojang/internal/app/services"
	"github.com/dojanghq/dojang/internal/middleware"
	"github.com/dojanghq/dojang/internal/pkg/helpers"
)

// PaymentController handles monthly fee management
type PaymentController struct {
	paymentService *services.PaymentService
}

// NewPaymentController creates a new PaymentController
func NewPaymentController(paymentService *services.PaymentService) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

// Create registers a monthly fee
// @Summary Create a payment
// @Description Registers one monthly fee for a student. One payment per student and month.
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePaymentRequest true "Payment data"
// @Success 201 {object} dto.APIResponse{data=models.Payment} "Payment created"
// @Failure 400 {object} dto.ErrorResponse "Invalid period, amount or duplicate month"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /payments [post]
func (c *PaymentController) Create(ctx *gin.Context) {
	var req dto.CreatePaymentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	payment, err := c.paymentService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Payment created", payment))
}

// MarkAsPaid settles a pending payment
// @Summary Mark a payment as paid
// @Description Settles a pending payment with the given method (defaults to cash)
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Payment ID" Format(int64) minimum(1)
// @Param request body dto.MarkPaidRequest false "Settlement data"
// @Success 200 {object} dto.APIResponse{data=models.Payment} "Payment settled"
// @Failure 400 {object} dto.ErrorResponse "Unknown payment method or already paid"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Payment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /payments/{id}/pay [put]
func (c *PaymentController) MarkAsPaid(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	req := dto.MarkPaidRequest{}
	if ctx.Request.ContentLength > 0 && !bindJSON(ctx, &req) {
		return
	}

	payment, err := c.paymentService.MarkAsPaid(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Payment marked as paid", payment))
}

// Delete removes a payment
// @Summary Delete a payment
// @Description Removes a payment record for good
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Payment ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Payment deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid payment ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Payment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /payments/{id} [delete]
func (c *PaymentController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.paymentService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Payment deleted", nil))
}

// GetStudentPayments lists one student's payments
// @Summary List a student's payments
// @Description Lists a student's payments with totals, optionally filtered by year, month or state
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Param year query int false "Year filter"
// @Param month query string false "Month filter (YYYY-MM)"
// @Param paid query bool false "Paid state filter"
// @Success 200 {object} dto.APIResponse{data=dto.StudentPaymentsResponse} "Payments retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter value"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Not your payments"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/payments [get]
func (c *PaymentController) GetStudentPayments(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var filter dto.PaymentFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid query parameters")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.paymentService.GetStudentPayments(ctx, id, currentUserID(ctx), isAdmin(ctx), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Payments retrieved", resp))
}

// GetMyPayments lists the caller's own payments
// @Summary List my payments
// @Description Lists the calling student's payments for a year with a summary, defaulting to the current year
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param year query int false "Year filter"
// @Success 200 {object} dto.APIResponse{data=dto.MyPaymentsResponse} "Payments retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "No student profile linked to this account"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /payments/my [get]
func (c *PaymentController) GetMyPayments(ctx *gin.Context) {
	year, _ := strconv.Atoi(ctx.Query("year"))

	resp, err := c.paymentService.GetMyPayments(ctx, currentUserID(ctx), year)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Payments retrieved", resp))
}

// GetAlerts returns the overdue and upcoming payment buckets
// @Summary Get payment alerts
// @Description Lists overdue payments and those due within the next week
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.PaymentAlertsResponse} "Alerts retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /payments/alerts [get]
func (c *PaymentController) GetAlerts(ctx *gin.Context) {
	resp, err := c.paymentService.GetAlerts(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Payment alerts retrieved", resp))
}

// GetMonthlyReport returns the admin payment report for one period
// @Summary Get the monthly report
// @Description Summarizes one month's payments with per-discipline breakdowns. Defaults to the current month.
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param month query string false "Period (YYYY-MM) or numeric month when year is given, defaults to current month"
// @Param year query int false "Year, combined with a numeric month"
// @Success 200 {object} dto.APIResponse{data=dto.MonthlyReportResponse} "Report retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid period format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /payments/report [get]
func (c *PaymentController) GetMonthlyReport(ctx *gin.Context) {
	period := helpers.PeriodFor(ctx.Query("year"), ctx.Query("month"), time.Now())

	resp, err := c.paymentService.GetMonthlyReport(ctx, period)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Monthly report retrieved", resp))
}
