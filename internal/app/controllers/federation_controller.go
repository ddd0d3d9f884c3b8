package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dojanghq/dojang/internal/app/models/dto"
	"github.com/dojanghq/dojang/internal/app/services"
	"github.com/dojanghq/dojang/internal/middleware"
)

// FederationController handles federations and student licensing
type FederationController struct {
	federationService *services.FederationService
}

// NewFederationController creates a new FederationController
func NewFederationController(federationService *services.FederationService) *FederationController {
	return &FederationController{
		federationService: federationService,
	}
}

// List returns the federation catalog
// @Summary List federations
// @Description Lists federations, optionally filtered by discipline or country
// @Tags federations
// @Produce json
// @Security BearerAuth
// @Param martialArt query string false "Martial art filter"
// @Param country query string false "Country filter"
// @Success 200 {object} dto.APIResponse{data=dto.FederationListResponse} "Federations retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /federations [get]
func (c *FederationController) List(ctx *gin.Context) {
	var filter dto.FederationFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid query parameters")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.federationService.ListFederations(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Federations retrieved", resp))
}

// GetByID retrieves one federation
// @Summary Get federation details
// @Description Retrieves a federation by its ID
// @Tags federations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Federation ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Federation} "Federation retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid federation ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Federation not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /federations/{id} [get]
func (c *FederationController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	federation, err := c.federationService.GetFederation(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Federation retrieved", federation))
}

// FederateStudent enrolls a student under a federation license
// @Summary Federate a student
// @Description Assigns a federation license to a student, archiving any previous license
// @Tags federations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Param request body dto.FederateStudentRequest true "License data"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student federated"
// @Failure 400 {object} dto.ErrorResponse "Discipline not covered or license number already in use"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Student or federation not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/federate [post]
func (c *FederationController) FederateStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.FederateStudentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	student, err := c.federationService.FederateStudent(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Student federated", student))
}

// GetFederatedStudents lists a federation's licensed students
// @Summary List federated students
// @Description Lists a federation's students with expired and expiring license alerts
// @Tags federations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Federation ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.FederatedStudentsResponse} "Students retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid federation ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Federation not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /federations/{id}/students [get]
func (c *FederationController) GetFederatedStudents(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.federationService.GetFederatedStudents(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Federated students retrieved", resp))
}

// GetLicenseHistory lists a student's archived licenses
// @Summary Get license history
// @Description Lists the licenses a student has held, newest first
// @Tags federations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.LicenseHistoryEntry} "History retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/license-history [get]
func (c *FederationController) GetLicenseHistory(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	history, err := c.federationService.GetLicenseHistory(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("License history retrieved", history))
}
