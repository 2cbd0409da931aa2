package httpapi

import (
	"net/http"
	"strings"

	"github.com/dmitrijs2005/credkeeper/internal/common"
	"github.com/dmitrijs2005/credkeeper/internal/server/auth"
	"github.com/labstack/echo/v4"
)

// claimsContextKey is the echo context key the guard stores decoded claims
// under for downstream handlers.
const claimsContextKey = "claims"

// accessGuard protects a route with bearer-token verification. The token is
// the second space-separated segment of the Authorization header; the scheme
// itself is not inspected. A missing token and an invalid/expired one are
// both rejected with 403, with distinct messages.
func (s *Server) accessGuard(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(common.AuthorizationHeaderName)

		parts := strings.Split(header, " ")
		if header == "" || len(parts) < 2 || parts[1] == "" {
			return c.JSON(http.StatusForbidden, messageResponse{Message: common.ErrNoToken.Error()})
		}

		claims, err := auth.ParseToken(parts[1], s.jwtSecret)
		if err != nil {
			return c.JSON(http.StatusForbidden, messageResponse{Message: common.ErrInvalidToken.Error()})
		}

		c.Set(claimsContextKey, claims)
		return next(c)
	}
}

// guardClaims returns the claims placed in the context by accessGuard.
// Only reachable from guarded handlers, so the assertion cannot fail.
func guardClaims(c echo.Context) *auth.Claims {
	return c.Get(claimsContextKey).(*auth.Claims)
}
