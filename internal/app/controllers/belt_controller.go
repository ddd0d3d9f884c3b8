package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dojanghq/dojang/internal/app/models/dto"
	"github.com/dojanghq/dojang/internal/app/services"
	"github.com/dojanghq/dojang/internal/middleware"
)

// BeltController handles the belt catalog and grade progressions
type BeltController struct {
	beltService *services.BeltService
}

// NewBeltController creates a new BeltController
func NewBeltController(beltService *services.BeltService) *BeltController {
	return &BeltController{
		beltService: beltService,
	}
}

// ListBelts returns the belt ladder
// @Summary List belts
// @Description Lists every belt in rank order
// @Tags belts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Belt} "Belts retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /belts [get]
func (c *BeltController) ListBelts(ctx *gin.Context) {
	belts, err := c.beltService.ListBelts(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Belts retrieved", belts))
}

// Promote advances a student to a new belt
// @Summary Promote a student
// @Description Moves a student to a new belt and archives the previous one in their history
// @Tags belts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Param request body dto.PromoteRequest true "Promotion data"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student promoted"
// @Failure 400 {object} dto.ErrorResponse "Unknown belt or invalid exam date"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/promote [post]
func (c *BeltController) Promote(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.PromoteRequest
	if !bindJSON(ctx, &req) {
		return
	}

	student, err := c.beltService.Promote(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Student promoted", student))
}

// GetBeltHistory lists a student's belt progression
// @Summary Get belt history
// @Description Lists every belt a student has held, oldest first
// @Tags belts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.BeltHistoryResponse} "History retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/belt-history [get]
func (c *BeltController) GetBeltHistory(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	history, err := c.beltService.GetBeltHistory(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Belt history retrieved", history))
}
