package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dojanghq/dojang/internal/app/models"
	"github.com/dojanghq/dojang/internal/app/models/dto"
	"github.com/dojanghq/dojang/internal/app/services"
	"github.com/dojanghq/dojang/internal/middleware"
)

// Controllers holds all the controller instances
type Controllers struct {
	AuthController       *AuthController
	StudentController    *StudentController
	BeltController       *BeltController
	FederationController *FederationController
	PaymentController    *PaymentController
	EventController      *EventController
	DashboardController  *DashboardController
}

// NewControllers wires every controller to its service
func NewControllers(svc *services.Services) *Controllers {
	return &Controllers{
		AuthController:       NewAuthController(svc.AuthService),
		StudentController:    NewStudentController(svc.StudentService, svc.PhotoService),
		BeltController:       NewBeltController(svc.BeltService),
		FederationController: NewFederationController(svc.FederationService),
		PaymentController:    NewPaymentController(svc.PaymentService),
		EventController:      NewEventController(svc.EventService),
		DashboardController:  NewDashboardController(svc.DashboardService),
	}
}

// parseIDParam reads a positive int64 path parameter, writing a 400 response
// on failure.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter")
		errorDetail = errorDetail.WithDetails(name + " must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// currentUserID returns the authenticated user's ID set by the auth middleware
func currentUserID(ctx *gin.Context) int64 {
	if v, exists := ctx.Get(middleware.ContextUserID); exists {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}

// isAdmin reports whether the caller holds the admin role
func isAdmin(ctx *gin.Context) bool {
	v, exists := ctx.Get(middleware.ContextRoleType)
	return exists && v == string(models.RoleAdmin)
}

// bindJSON binds the request body, writing a 400 response on failure
func bindJSON(ctx *gin.Context, obj interface{}) bool {
	if err := ctx.ShouldBindJSON(obj); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return false
	}
	return true
}
