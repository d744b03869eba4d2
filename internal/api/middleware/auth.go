package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Auth validates the JWT and injects claims into context. The role claim
// travels as roles: ["ROLE_<role>"]; the prefix is stripped before injection
// so downstream checks compare bare role names.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			userID, _ := claims["sub"].(string)
			email, _ := claims["email"].(string)

			c.Set("user_id", userID)
			c.Set("email", email)
			c.Set("role", roleFromClaims(claims))

			return next(c)
		}
	}
}

// roleFromClaims extracts the bare role name from the roles claim.
func roleFromClaims(claims jwt.MapClaims) string {
	roles, ok := claims["roles"].([]interface{})
	if !ok || len(roles) == 0 {
		return ""
	}
	first, _ := roles[0].(string)
	return strings.TrimPrefix(first, "ROLE_")
}
