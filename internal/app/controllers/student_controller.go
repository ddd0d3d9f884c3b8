package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dojanghq/dojang/internal/app/models"
	"github.com/dojanghq/dojang/internal/app/models/dto"
	"github.com/dojanghq/dojang/internal/app/services"
	"github.com/dojanghq/dojang/internal/middleware"
)

// StudentController handles student profile operations
type StudentController struct {
	studentService *services.StudentService
	photoService   *services.PhotoService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService, photoService *services.PhotoService) *StudentController {
	return &StudentController{
		studentService: studentService,
		photoService:   photoService,
	}
}

// Search lists active students
// @Summary List students
// @Description Lists active students, optionally filtered by discipline, category, belt or federation state
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param martialArt query string false "Martial art filter"
// @Param category query string false "Category filter"
// @Param currentBelt query string false "Belt filter"
// @Param federated query bool false "Federation state filter"
// @Success 200 {object} dto.APIResponse{data=dto.StudentListResponse} "Students retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter value"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) Search(ctx *gin.Context) {
	var filter dto.StudentSearchFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid query parameters")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.studentService.Search(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Students retrieved", resp))
}

// GetByID retrieves one student
// @Summary Get student details
// @Description Retrieves a student profile with its belt history
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [get]
func (c *StudentController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	student, err := c.studentService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Student retrieved", student))
}

// GetMyProfile retrieves the caller's own profile
// @Summary Get my student profile
// @Description Retrieves the student profile linked to the calling account
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.Student} "Profile retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "No student profile linked to this account"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/me [get]
func (c *StudentController) GetMyProfile(ctx *gin.Context) {
	student, err := c.studentService.GetMyProfile(ctx, currentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Profile retrieved", student))
}

// UpdateMyProfile lets a student edit their contact details
// @Summary Update my contact details
// @Description Updates the phone, address or emergency contact of the calling student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateMyProfileRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Profile updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "No student profile linked to this account"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/me/profile [put]
func (c *StudentController) UpdateMyProfile(ctx *gin.Context) {
	var req dto.UpdateMyProfileRequest
	if !bindJSON(ctx, &req) {
		return
	}

	student, err := c.studentService.UpdateMyProfile(ctx, currentUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Profile updated", student))
}

// Update applies an admin edit to a student
// @Summary Update a student
// @Description Updates any editable field of a student profile
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Param request body dto.UpdateStudentRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [put]
func (c *StudentController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	student, err := c.studentService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Student updated", student))
}

// Deactivate soft-deletes a student
// @Summary Deactivate a student
// @Description Flags a student inactive and disables their login. History is kept.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.DeactivatedStudent} "Student deactivated"
// @Failure 400 {object} dto.ErrorResponse "Student already inactive"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [delete]
func (c *StudentController) Deactivate(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.studentService.Deactivate(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Student deactivated", resp))
}

// UploadPhoto replaces a student's profile photo
// @Summary Upload a profile photo
// @Description Uploads a profile photo (jpeg, jpg, png, gif or webp, max 5MB) to the CDN
// @Tags students
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Param photo formData file true "Photo file"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Photo uploaded"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid photo file"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/photo [post]
func (c *StudentController) UploadPhoto(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	header, err := ctx.FormFile("photo")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Photo file is required")
		errorDetail = errorDetail.WithField("photo")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.photoService.UploadPhoto(ctx, id, header)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Photo uploaded", student))
}

// DeletePhoto removes a student's profile photo
// @Summary Delete a profile photo
// @Description Removes a student's profile photo from the CDN and the profile
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Photo deleted"
// @Failure 400 {object} dto.ErrorResponse "Student has no photo"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/photo [delete]
func (c *StudentController) DeletePhoto(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.photoService.DeletePhoto(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Photo deleted", nil))
}

// UploadMyPhoto replaces the calling student's profile photo
// @Summary Upload my profile photo
// @Description Uploads the calling student's profile photo (jpeg, jpg, png, gif or webp, max 5MB)
// @Tags students
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param photo formData file true "Photo file"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Photo uploaded"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid photo file"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "No student profile linked to this account"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/me/photo [post]
func (c *StudentController) UploadMyPhoto(ctx *gin.Context) {
	me, err := c.studentService.GetMyProfile(ctx, currentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	header, err := ctx.FormFile("photo")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Photo file is required")
		errorDetail = errorDetail.WithField("photo")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.photoService.UploadPhoto(ctx, me.ID, header)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Photo uploaded", student))
}

// DeleteMyPhoto removes the calling student's profile photo
// @Summary Delete my profile photo
// @Description Removes the calling student's profile photo from the CDN and the profile
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse "Photo deleted"
// @Failure 400 {object} dto.ErrorResponse "No photo to delete"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "No student profile linked to this account"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/me/photo [delete]
func (c *StudentController) DeleteMyPhoto(ctx *gin.Context) {
	me, err := c.studentService.GetMyProfile(ctx, currentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.photoService.DeletePhoto(ctx, me.ID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Photo deleted", nil))
}

// AddAchievement records an achievement on a student
// @Summary Record an achievement
// @Description Adds a competition or exam result to a student's record
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Param request body models.Achievement true "Achievement data"
// @Success 201 {object} dto.APIResponse{data=models.Achievement} "Achievement recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/achievements [post]
func (c *StudentController) AddAchievement(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var achievement models.Achievement
	if !bindJSON(ctx, &achievement) {
		return
	}

	created, err := c.studentService.AddAchievement(ctx, id, &achievement)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Achievement recorded", created))
}

// GetAchievements lists a student's achievements
// @Summary List achievements
// @Description Lists the achievements recorded on a student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.Achievement} "Achievements retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/achievements [get]
func (c *StudentController) GetAchievements(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	achievements, err := c.studentService.GetAchievements(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Achievements retrieved", achievements))
}
