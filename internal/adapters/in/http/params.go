package http

import (
	"cashrun/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// pathID binds the :id path parameter.
func pathID(ctx echo.Context) (kernel.UUID, error) {
	var raw openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &raw,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	if err != nil {
		return kernel.UUID{}, err
	}
	return kernel.UUIDFromGoogle(raw)
}

// queryInt binds an optional integer query parameter. Absent yields 0.
func queryInt(ctx echo.Context, name string) (int, error) {
	var value *int
	if err := runtime.BindQueryParameter("form", true, false, name, ctx.QueryParams(), &value); err != nil {
		return 0, err
	}
	if value == nil {
		return 0, nil
	}
	return *value, nil
}
