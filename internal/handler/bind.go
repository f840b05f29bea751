package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"wallfit/internal/auth"
	"wallfit/internal/errors"
)

// bindStrict decodes a JSON body into v, rejecting unknown fields. Request
// payloads are closed shapes; anything the schema does not name is a client
// error, never silently stored.
func bindStrict(c echo.Context, v interface{}) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_BODY",
		})
	}
	if err := c.Validate(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_FAILED",
		})
	}
	return nil
}

// currentUserID pulls the authenticated user ID attached by the auth
// middleware. A missing ID means the route was wired without the guard.
func currentUserID(c echo.Context) (uint, error) {
	id, ok := auth.UserID(c)
	if !ok {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "no token provided",
			Code:  "TOKEN_MISSING",
		})
	}
	return id, nil
}
