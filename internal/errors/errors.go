package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user record is missing.
	ErrUserNotFound = errors.New("user not found")
	// ErrGroupNotFound is returned when a group does not exist.
	ErrGroupNotFound = errors.New("group not found")
	// ErrPostNotFound is returned when a post does not exist.
	ErrPostNotFound = errors.New("post not found")
	// ErrProgramNotFound is returned when the user has no program set.
	ErrProgramNotFound = errors.New("no program found")
	// ErrContentRequired is returned when post or reply content is empty.
	ErrContentRequired = errors.New("content is required")
	// ErrGroupNameRequired is returned when a group is created without a name.
	ErrGroupNameRequired = errors.New("group name is required")
	// ErrInvalidPostID is returned when a post reference is malformed.
	ErrInvalidPostID = errors.New("invalid post ID")
	// ErrNotGroupMember is returned when posting into a group without membership.
	ErrNotGroupMember = errors.New("you must be a member to post in this group")
	// ErrAlreadyMember is returned on a duplicate group join.
	ErrAlreadyMember = errors.New("already a member of this group")
	// ErrCreatorCannotLeave is returned when a creator tries to leave their group.
	ErrCreatorCannotLeave = errors.New("creator cannot leave the group")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrGroupNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "GROUP_NOT_FOUND")
	case ErrPostNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "POST_NOT_FOUND")
	case ErrProgramNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "PROGRAM_NOT_FOUND")
	case ErrContentRequired:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "CONTENT_REQUIRED")
	case ErrGroupNameRequired:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "GROUP_NAME_REQUIRED")
	case ErrInvalidPostID:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_POST_ID")
	case ErrNotGroupMember:
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_GROUP_MEMBER")
	case ErrAlreadyMember:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "ALREADY_MEMBER")
	case ErrCreatorCannotLeave:
		return NewHTTPError(http.StatusForbidden, err.Error(), "CREATOR_CANNOT_LEAVE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
