package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/labstack/echo/v4"
)

// OpenAPIValidator rejects requests that do not match doc with 400. The route
// is taken from echo's matched path with basePath stripped; paths the
// document does not describe pass through untouched.
//
// Security schemes are not checked here. JWTMiddleware has already verified
// the bearer token by the time this runs.
func OpenAPIValidator(doc *openapi3.T, basePath string) echo.MiddlewareFunc {
	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			route := findRoute(doc, basePath, c)
			if route == nil {
				return next(c)
			}

			names := c.ParamNames()
			values := c.ParamValues()
			pathParams := make(map[string]string, len(names))
			for i, name := range names {
				if i < len(values) {
					pathParams[name] = values[i]
				}
			}

			err := openapi3filter.ValidateRequest(c.Request().Context(), &openapi3filter.RequestValidationInput{
				Request:    c.Request(),
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			})
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, validationMessage(err)).SetInternal(err)
			}

			return next(c)
		}
	}
}

func findRoute(doc *openapi3.T, basePath string, c echo.Context) *routers.Route {
	path, ok := strings.CutPrefix(c.Path(), basePath)
	if !ok {
		return nil
	}

	segments := strings.Split(path, "/")
	for i, segment := range segments {
		if name, isParam := strings.CutPrefix(segment, ":"); isParam {
			segments[i] = "{" + name + "}"
		}
	}
	path = strings.Join(segments, "/")

	item := doc.Paths.Find(path)
	if item == nil {
		return nil
	}
	method := c.Request().Method
	operation := item.GetOperation(method)
	if operation == nil {
		return nil
	}

	route := &routers.Route{
		Spec:      doc,
		Path:      path,
		PathItem:  item,
		Method:    method,
		Operation: operation,
	}
	if len(doc.Servers) > 0 {
		route.Server = doc.Servers[0]
	}
	return route
}

// validationMessage keeps the reason and field of a schema mismatch and drops
// the schema dump kin-openapi appends to its errors.
func validationMessage(err error) string {
	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		if field := schemaErr.JSONPointer(); len(field) > 0 {
			return fmt.Sprintf("%s: %s", strings.Join(field, "."), schemaErr.Reason)
		}
		return schemaErr.Reason
	}

	var requestErr *openapi3filter.RequestError
	if errors.As(err, &requestErr) {
		if requestErr.Parameter != nil {
			return fmt.Sprintf("parameter %q: %s", requestErr.Parameter.Name, requestErr.Reason)
		}
		if requestErr.Reason != "" {
			return requestErr.Reason
		}
	}

	return err.Error()
}
