package auth

import (
	stderrors "errors"
	"net/http"

	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"wallfit/internal/errors"
)

// userIDKey is the echo context key under which the resolved user ID is stored.
const userIDKey = "userID"

// Middleware returns an echo middleware that verifies the bearer credential
// on every request and resolves it to a user ID for downstream handlers.
// Failures are reported distinctly so the client can decide whether to
// prompt re-login: missing credential and expiry yield 401, a malformed
// token or bad signature yields 403.
func Middleware(jwtService *JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return jwtService.ValidateToken(tokenString)
		},
		SuccessHandler: func(c echo.Context) {
			if claims, ok := c.Get("user").(*Claims); ok {
				c.Set(userIDKey, claims.UserID)
			}
		},
		ErrorHandler: func(c echo.Context, err error) error {
			var parseErr *echojwt.TokenParsingError
			if stderrors.As(err, &parseErr) {
				if stderrors.Is(parseErr, jwt.ErrTokenExpired) {
					return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
						Error: "token expired",
						Code:  "TOKEN_EXPIRED",
					})
				}
				return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
					Error: "invalid token",
					Code:  "TOKEN_INVALID",
				})
			}
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: "no token provided",
				Code:  "TOKEN_MISSING",
			})
		},
	})
}

// UserID returns the user ID attached to the request by Middleware.
func UserID(c echo.Context) (uint, bool) {
	id, ok := c.Get(userIDKey).(uint)
	return id, ok
}
