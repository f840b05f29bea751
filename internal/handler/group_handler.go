package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"wallfit/internal/errors"
	"wallfit/internal/service"
)

// GroupHandler handles group endpoints.
type GroupHandler struct {
	groupService service.GroupService
}

// NewGroupHandler creates a new group handler.
func NewGroupHandler(groupService service.GroupService) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

// CreateGroupRequest represents a new group.
type CreateGroupRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

func groupIDParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid group ID",
			Code:  "INVALID_GROUP_ID",
		})
	}
	return uint(id), nil
}

// CreateGroup godoc
// @Summary Create a group
// @Description The creator becomes the sole initial member.
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateGroupRequest true "Group"
// @Success 201 {object} model.Group
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /community/groups [post]
func (h *GroupHandler) CreateGroup(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CreateGroupRequest
	if err := bindStrict(c, &req); err != nil {
		return err
	}

	group, err := h.groupService.CreateGroup(c.Request().Context(), userID, req.Name, req.Description, req.Image)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, group)
}

// ListGroups godoc
// @Summary List all groups, newest first
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Group
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /community/groups [get]
func (h *GroupHandler) ListGroups(c echo.Context) error {
	groups, err := h.groupService.ListGroups(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, groups)
}

// GetGroup godoc
// @Summary Get a group by ID
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Success 200 {object} model.Group
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /community/groups/{id} [get]
func (h *GroupHandler) GetGroup(c echo.Context) error {
	groupID, err := groupIDParam(c)
	if err != nil {
		return err
	}

	group, err := h.groupService.GetGroup(c.Request().Context(), groupID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, group)
}

// JoinGroup godoc
// @Summary Join a group
// @Description A duplicate join is rejected, not ignored.
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Success 200 {object} model.Group
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /community/groups/{id}/join [post]
func (h *GroupHandler) JoinGroup(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	groupID, err := groupIDParam(c)
	if err != nil {
		return err
	}

	group, err := h.groupService.JoinGroup(c.Request().Context(), userID, groupID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, group)
}

// LeaveGroup godoc
// @Summary Leave a group
// @Description The creator can never leave. Leaving without membership is a no-op.
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Success 200 {object} model.Group
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /community/groups/{id}/leave [post]
func (h *GroupHandler) LeaveGroup(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	groupID, err := groupIDParam(c)
	if err != nil {
		return err
	}

	group, err := h.groupService.LeaveGroup(c.Request().Context(), userID, groupID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, group)
}
