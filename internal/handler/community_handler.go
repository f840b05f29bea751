package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"wallfit/internal/errors"
	"wallfit/internal/service"
)

// CommunityHandler handles post and reply endpoints.
type CommunityHandler struct {
	communityService service.CommunityService
}

// NewCommunityHandler creates a new community handler.
func NewCommunityHandler(communityService service.CommunityService) *CommunityHandler {
	return &CommunityHandler{communityService: communityService}
}

// CreatePostRequest represents a new post.
type CreatePostRequest struct {
	Content    string `json:"content" validate:"required"`
	GroupID    *uint  `json:"groupId"`
	IsQuestion bool   `json:"isQuestion"`
}

// ReplyRequest represents a new reply on a post.
type ReplyRequest struct {
	Content string `json:"content" validate:"required"`
}

// ListPosts godoc
// @Summary List posts, newest first
// @Description Returns the global feed, or a group's posts when groupId is given.
// @Tags community
// @Produce json
// @Security BearerAuth
// @Param groupId query int false "Group ID"
// @Success 200 {array} model.Post
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /community/posts [get]
func (h *CommunityHandler) ListPosts(c echo.Context) error {
	var groupID *uint
	if raw := c.QueryParam("groupId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "invalid group ID",
				Code:  "INVALID_GROUP_ID",
			})
		}
		parsed := uint(id)
		groupID = &parsed
	}

	posts, err := h.communityService.ListPosts(c.Request().Context(), groupID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, posts)
}

// CreatePost godoc
// @Summary Create a post
// @Description Group-scoped posts require membership in the group.
// @Tags community
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreatePostRequest true "Post"
// @Success 201 {object} model.Post
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /community/posts [post]
func (h *CommunityHandler) CreatePost(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CreatePostRequest
	if err := bindStrict(c, &req); err != nil {
		return err
	}

	post, err := h.communityService.CreatePost(c.Request().Context(), userID, req.Content, req.GroupID, req.IsQuestion)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, post)
}

// ReplyToPost godoc
// @Summary Append a reply to a post
// @Tags community
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param postId path int true "Post ID"
// @Param request body ReplyRequest true "Reply"
// @Success 200 {object} model.Post
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /community/posts/{postId}/reply [post]
func (h *CommunityHandler) ReplyToPost(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	postID, err := strconv.ParseUint(c.Param("postId"), 10, 32)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrInvalidPostID)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	var req ReplyRequest
	if err := bindStrict(c, &req); err != nil {
		return err
	}

	post, err := h.communityService.ReplyToPost(c.Request().Context(), userID, uint(postID), req.Content)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, post)
}
