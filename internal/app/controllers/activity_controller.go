package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/galacticorp/hr-portal/internal/app/models"
	"github.com/galacticorp/hr-portal/internal/app/models/dto"
	"github.com/galacticorp/hr-portal/internal/app/services"
	"github.com/galacticorp/hr-portal/internal/middleware"
	"github.com/galacticorp/hr-portal/internal/pkg/identity"
)

// ActivityController handles activity directory operations
type ActivityController struct {
	activityService services.ActivityService
	identity        identity.Provider
}

// NewActivityController creates a new ActivityController
func NewActivityController(activityService services.ActivityService, idp identity.Provider) *ActivityController {
	return &ActivityController{
		activityService: activityService,
		identity:        idp,
	}
}

// GetAllActivities handles listing the activity catalog with optional filtering
// @Summary List activities
// @Description Retrieves the activity catalog. An optional search term matches title or description case-insensitively; an optional type narrows the list to one category.
// @Tags activities
// @Accept json
// @Produce json
// @Param search query string false "Search term matched against title and description"
// @Param type query string false "Activity type filter" Enums(Education, Social, Team-building)
// @Success 200 {object} dto.APIResponse{data=dto.ActivityListResponse} "Activities retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /activities [get]
func (c *ActivityController) GetAllActivities(ctx *gin.Context) {
	var filter dto.ActivityFilterRequest
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid filter parameters")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	activities, err := c.activityService.ListActivities(ctx, filter.Search, filter.Type)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewActivityListResponse(activities)))
}

// GetActivityByID handles retrieving a single activity
// @Summary Get activity by ID
// @Description Retrieves a specific activity by its id
// @Tags activities
// @Accept json
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} dto.APIResponse{data=dto.ActivityResponse} "Activity retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Activity not found"
// @Router /activities/{id} [get]
func (c *ActivityController) GetActivityByID(ctx *gin.Context) {
	activity, err := c.activityService.GetActivity(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewActivityResponse(activity)))
}

// CreateActivity handles creating a new activity
// @Summary Create activity
// @Description Creates a new activity. The id is assigned by the server, the roster starts empty and the configured current user is recorded as host.
// @Tags activities
// @Accept json
// @Produce json
// @Param activity body dto.CreateActivityRequest true "Activity fields"
// @Success 201 {object} dto.APIResponse{data=dto.ActivityResponse} "Activity created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Storage failure"
// @Router /activities [post]
func (c *ActivityController) CreateActivity(ctx *gin.Context) {
	var req dto.CreateActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	draft := &models.Activity{
		Title:       req.Title,
		Description: req.Description,
		Type:        models.ActivityType(req.Type),
		Date:        req.Date,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
		Tags:        dto.NormalizeTags(req.Tags),
	}

	activity, err := c.activityService.CreateActivity(ctx, draft)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewActivityResponse(activity)))
}

// UpdateActivity handles editing an existing activity
// @Summary Update activity
// @Description Replaces the editable fields of an existing activity. Host identity and roster are not affected.
// @Tags activities
// @Accept json
// @Produce json
// @Param id path string true "Activity ID"
// @Param activity body dto.UpdateActivityRequest true "Activity fields"
// @Success 200 {object} dto.APIResponse{data=dto.ActivityResponse} "Activity updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Activity not found"
// @Router /activities/{id} [put]
func (c *ActivityController) UpdateActivity(ctx *gin.Context) {
	var req dto.UpdateActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	activity := &models.Activity{
		ID:          ctx.Param("id"),
		Title:       req.Title,
		Description: req.Description,
		Type:        models.ActivityType(req.Type),
		Date:        req.Date,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
		Tags:        dto.NormalizeTags(req.Tags),
	}

	updated, err := c.activityService.UpdateActivity(ctx, activity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewActivityResponse(updated)))
}

// DeleteActivity handles removing an activity
// @Summary Delete activity
// @Description Removes an activity from the catalog. There is no soft delete.
// @Tags activities
// @Accept json
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} dto.APIResponse "Activity deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Activity not found"
// @Router /activities/{id} [delete]
func (c *ActivityController) DeleteActivity(ctx *gin.Context) {
	if err := c.activityService.DeleteActivity(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessMessageResponse("Activity deleted successfully"))
}

// JoinActivity handles enrolling a user in an activity
// @Summary Join activity
// @Description Adds a user to the activity roster. Without a body the configured current user joins.
// @Tags activities
// @Accept json
// @Produce json
// @Param id path string true "Activity ID"
// @Param roster body dto.RosterRequest false "User joining the activity"
// @Success 200 {object} dto.APIResponse{data=dto.ActivityResponse} "Roster updated"
// @Failure 400 {object} dto.ErrorResponse "Malformed request body"
// @Failure 404 {object} dto.ErrorResponse "Activity not found"
// @Failure 409 {object} dto.ErrorResponse "User already attending"
// @Router /activities/{id}/join [post]
func (c *ActivityController) JoinActivity(ctx *gin.Context) {
	userID, err := c.rosterUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	activity, err := c.activityService.JoinActivity(ctx, ctx.Param("id"), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewActivityResponse(activity)))
}

// LeaveActivity handles removing a user from an activity roster
// @Summary Leave activity
// @Description Removes a user from the activity roster. Without a body the configured current user leaves.
// @Tags activities
// @Accept json
// @Produce json
// @Param id path string true "Activity ID"
// @Param roster body dto.RosterRequest false "User leaving the activity"
// @Success 200 {object} dto.APIResponse{data=dto.ActivityResponse} "Roster updated"
// @Failure 400 {object} dto.ErrorResponse "Malformed request body"
// @Failure 404 {object} dto.ErrorResponse "Activity not found"
// @Failure 409 {object} dto.ErrorResponse "User not attending"
// @Router /activities/{id}/leave [post]
func (c *ActivityController) LeaveActivity(ctx *gin.Context) {
	userID, err := c.rosterUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	activity, err := c.activityService.LeaveActivity(ctx, ctx.Param("id"), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewActivityResponse(activity)))
}

// rosterUserID resolves the user a join/leave request refers to. An absent or
// empty body falls back to the configured current user; a body that fails to
// parse is a client error, not an implicit fallback.
func (c *ActivityController) rosterUserID(ctx *gin.Context) (string, error) {
	var req dto.RosterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return c.identity.CurrentUser().ID, nil
		}
		return "", err
	}
	if req.UserID == "" {
		return c.identity.CurrentUser().ID, nil
	}
	return req.UserID, nil
}
