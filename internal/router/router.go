package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"wallfit/internal/auth"
	"wallfit/internal/config"
	"wallfit/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	programHandler *handler.ProgramHandler,
	communityHandler *handler.CommunityHandler,
	groupHandler *handler.GroupHandler,
	seedHandler *handler.SeedHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowCredentials: true,
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/program/samples", programHandler.ListSamplePrograms)
	api.GET("/seed/demo", seedHandler.SeedDemo)

	// Secured routes (require a valid bearer credential)
	secured := api.Group("", auth.Middleware(jwtService))

	// Profile routes
	secured.GET("/profile", profileHandler.GetProfile)
	secured.PUT("/profile", profileHandler.UpdateProfile)

	// Program routes
	secured.GET("/program", programHandler.GetProgram)
	secured.POST("/program", programHandler.SetProgram)

	// Community post routes
	secured.GET("/community/posts", communityHandler.ListPosts)
	secured.POST("/community/posts", communityHandler.CreatePost)
	secured.POST("/community/posts/:postId/reply", communityHandler.ReplyToPost)

	// Community group routes
	secured.GET("/community/groups", groupHandler.ListGroups)
	secured.POST("/community/groups", groupHandler.CreateGroup)
	secured.GET("/community/groups/:id", groupHandler.GetGroup)
	secured.POST("/community/groups/:id/join", groupHandler.JoinGroup)
	secured.POST("/community/groups/:id/leave", groupHandler.LeaveGroup)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
