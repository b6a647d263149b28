package http

import (
	_ "embed"

	"comanda/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

//go:embed openapi.yaml
var openAPISpec []byte

// OpenAPISpec returns the raw OpenAPI document served at /openapi.yaml.
func OpenAPISpec() []byte {
	return openAPISpec
}

// RequestValidationMiddleware validates incoming requests against the
// embedded OpenAPI document before any handler runs: required fields,
// enums, formats and numeric bounds are all rejected in one place. Routes
// the document does not describe pass through untouched.
func RequestValidationMiddleware() (echo.MiddlewareFunc, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPISpec)
	if err != nil {
		return nil, err
	}
	if err = doc.Validate(loader.Context); err != nil {
		return nil, err
	}

	router, err := legacyrouter.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()

			// Routes outside the document (health, the document itself) are
			// not validated.
			route, pathParams, findErr := router.FindRoute(req)
			if findErr != nil {
				return next(ctx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options: &openapi3filter.Options{
					AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
				},
			}
			if validateErr := openapi3filter.ValidateRequest(req.Context(), input); validateErr != nil {
				return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request", validateErr))
			}

			return next(ctx)
		}
	}, nil
}
