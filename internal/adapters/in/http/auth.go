package http

import (
	"errors"
	"fmt"
	"net/http"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/generated/servers"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

const tokenContextKey = "token"

var errUnauthenticated = errors.New("request is not authenticated")

// Claims are the bearer token claims issued by the identity provider. The
// subject is the actor's UUID.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTMiddleware verifies HS256 bearer tokens signed with secret.
func JWTMiddleware(secret []byte) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:    secret,
		SigningMethod: jwt.SigningMethodHS256.Alg(),
		ContextKey:    tokenContextKey,
		NewClaimsFunc: func(echo.Context) jwt.Claims {
			return new(Claims)
		},
		ErrorHandler: func(c echo.Context, _ error) error {
			return c.JSON(http.StatusUnauthorized, servers.Error{
				Code:    http.StatusUnauthorized,
				Message: "invalid or missing bearer token",
			})
		},
	})
}

// actorFrom resolves the authenticated actor from verified claims.
func actorFrom(c echo.Context) (actor.Actor, error) {
	token, ok := c.Get(tokenContextKey).(*jwt.Token)
	if !ok || token == nil {
		return actor.Actor{}, errUnauthenticated
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return actor.Actor{}, errUnauthenticated
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return actor.Actor{}, fmt.Errorf("%w: subject: %w", errUnauthenticated, err)
	}
	role, err := actor.ParseRole(claims.Role)
	if err != nil {
		return actor.Actor{}, fmt.Errorf("%w: %w", errUnauthenticated, err)
	}

	a, err := actor.NewActor(id, role)
	if err != nil {
		return actor.Actor{}, fmt.Errorf("%w: %w", errUnauthenticated, err)
	}
	return a, nil
}
