package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"wallfit/internal/errors"
	"wallfit/internal/model"
	"wallfit/internal/service"
)

// ProgramHandler handles program endpoints.
type ProgramHandler struct {
	programService service.ProgramService
}

// NewProgramHandler creates a new program handler.
func NewProgramHandler(programService service.ProgramService) *ProgramHandler {
	return &ProgramHandler{programService: programService}
}

// SetProgramRequest represents a wholesale program replacement.
type SetProgramRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Exercises   []string `json:"exercises"`
	Nutrition   []string `json:"nutrition"`
}

// GetProgram godoc
// @Summary Get the authenticated user's program
// @Tags program
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Program
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /program [get]
func (h *ProgramHandler) GetProgram(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	program, err := h.programService.GetProgram(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, program)
}

// SetProgram godoc
// @Summary Replace the authenticated user's program
// @Tags program
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SetProgramRequest true "Program"
// @Success 200 {object} model.Program
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /program [post]
func (h *ProgramHandler) SetProgram(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req SetProgramRequest
	if err := bindStrict(c, &req); err != nil {
		return err
	}

	program, err := h.programService.SetProgram(c.Request().Context(), userID, model.Program{
		Title:       req.Title,
		Description: req.Description,
		Exercises:   req.Exercises,
		Nutrition:   req.Nutrition,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, program)
}

// ListSamplePrograms godoc
// @Summary List the sample program catalog
// @Tags program
// @Produce json
// @Success 200 {array} model.Program
// @Router /program/samples [get]
func (h *ProgramHandler) ListSamplePrograms(c echo.Context) error {
	return c.JSON(http.StatusOK, h.programService.SamplePrograms())
}
